package providers_test

import (
	"net/http"

	"github.com/9seconds/selfip/selflib"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"
)

type ProviderTestSuite struct {
	suite.Suite

	http selflib.HTTPClient
}

func (suite *ProviderTestSuite) SetupTest() {
	suite.http = selflib.NewHTTPClient(&http.Client{}, "test-agent", 0, 1)
}

type MockedProviderTestSuite struct {
	ProviderTestSuite
}

func (suite *MockedProviderTestSuite) SetupSuite() {
	httpmock.Activate()
}

func (suite *MockedProviderTestSuite) TearDownSuite() {
	httpmock.DeactivateAndReset()
}

func (suite *MockedProviderTestSuite) TearDownTest() {
	httpmock.Reset()
}
