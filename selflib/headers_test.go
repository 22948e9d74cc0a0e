package selflib_test

import (
	"context"
	"io"
	"testing"

	"github.com/9seconds/selfip/selflib"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HeadersTestSuite struct {
	suite.Suite

	providerMock *ProviderMock
	r            *selflib.Resolver
}

func (suite *HeadersTestSuite) SetupTest() {
	suite.providerMock = &ProviderMock{}

	suite.providerMock.On("Name").Return("providerMock").Maybe()

	suite.r = selflib.NewResolver([]selflib.Provider{suite.providerMock},
		selflib.NoopLogger{}, 0)
}

func (suite *HeadersTestSuite) TearDownTest() {
	suite.providerMock.AssertExpectations(suite.T())
}

func (suite *HeadersTestSuite) resolveOk() {
	suite.providerMock.On("Lookup", mock.Anything).Return("1.2.3.4", nil).Once()
}

func (suite *HeadersTestSuite) resolveFailed() {
	suite.providerMock.On("Lookup", mock.Anything).Return("", io.EOF).Once()
}

func (suite *HeadersTestSuite) TestGetHeadersWithIPOk() {
	suite.resolveOk()

	suite.Equal(selflib.Headers{
		"Content-Type": "application/json",
		"X-Real-IP":    "1.2.3.4",
	}, suite.r.GetHeadersWithIP(context.Background()))
}

func (suite *HeadersTestSuite) TestGetHeadersWithIPFailed() {
	suite.resolveFailed()

	suite.Equal(selflib.Headers{
		"Content-Type": "application/json",
	}, suite.r.GetHeadersWithIP(context.Background()))
}

func (suite *HeadersTestSuite) TestAddIPToHeadersOk() {
	suite.resolveOk()

	existing := selflib.Headers{"Authorization": "Bearer x"}

	suite.Equal(selflib.Headers{
		"Authorization": "Bearer x",
		"X-Real-IP":     "1.2.3.4",
	}, suite.r.AddIPToHeaders(context.Background(), existing))
	suite.Equal(selflib.Headers{"Authorization": "Bearer x"}, existing)
}

func (suite *HeadersTestSuite) TestAddIPToHeadersFailed() {
	suite.resolveFailed()

	existing := selflib.Headers{"Authorization": "Bearer x"}
	headers := suite.r.AddIPToHeaders(context.Background(), existing)

	suite.Equal(selflib.Headers{"Authorization": "Bearer x"}, headers)
	suite.NotContains(headers, selflib.HeaderRealIP)

	headers["Another"] = "value"

	suite.Equal(selflib.Headers{"Authorization": "Bearer x"}, existing)
}

func (suite *HeadersTestSuite) TestAddIPToHeadersNil() {
	suite.resolveOk()

	suite.Equal(selflib.Headers{
		"X-Real-IP": "1.2.3.4",
	}, suite.r.AddIPToHeaders(context.Background(), nil))
}

func (suite *HeadersTestSuite) TestAddIPToHeadersOverridesRealIP() {
	suite.resolveOk()

	existing := selflib.Headers{"X-Real-IP": "10.0.0.1"}

	suite.Equal(selflib.Headers{
		"X-Real-IP": "1.2.3.4",
	}, suite.r.AddIPToHeaders(context.Background(), existing))
	suite.Equal("10.0.0.1", existing["X-Real-IP"])
}

func (suite *HeadersTestSuite) TestAddIPToHeadersReplacesRealIPInAnyCase() {
	suite.resolveOk()

	existing := selflib.Headers{
		"Authorization": "Bearer x",
		"X-Real-Ip":     "10.0.0.1",
		"x-real-ip":     "10.0.0.2",
	}
	headers := suite.r.AddIPToHeaders(context.Background(), existing)

	suite.Equal(selflib.Headers{
		"Authorization": "Bearer x",
		"X-Real-IP":     "1.2.3.4",
	}, headers)
	suite.Len(existing, 3)
	suite.Equal("10.0.0.1", existing["X-Real-Ip"])
}

func (suite *HeadersTestSuite) TestAddIPToHeadersKeepsRealIPInAnyCaseIfFailed() {
	suite.resolveFailed()

	existing := selflib.Headers{"X-Real-Ip": "10.0.0.1"}

	suite.Equal(selflib.Headers{
		"X-Real-Ip": "10.0.0.1",
	}, suite.r.AddIPToHeaders(context.Background(), existing))
}

func TestHeaders(t *testing.T) {
	suite.Run(t, &HeadersTestSuite{})
}
