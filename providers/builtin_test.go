package providers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/9seconds/selfip/providers"
	"github.com/9seconds/selfip/selflib"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"
)

type MockedBuiltinTestSuite struct {
	MockedProviderTestSuite
}

func (suite *MockedBuiltinTestSuite) TestUserAgentInfo() {
	prov := providers.NewUserAgentInfo(suite.http)

	httpmock.RegisterResponder("GET",
		"https://ip.useragentinfo.com/json",
		httpmock.NewStringResponder(http.StatusOK, `{
  "country": "中国",
  "province": "北京",
  "city": "北京",
  "isp": "电信",
  "net": "",
  "ip": "1.2.3.4",
  "code": 200,
  "desc": "success"
}`))

	ip, err := prov.Lookup(context.Background())

	suite.Equal(providers.NameUserAgentInfo, prov.Name())
	suite.NoError(err)
	suite.Equal("1.2.3.4", ip)
}

func (suite *MockedBuiltinTestSuite) TestIPify() {
	prov := providers.NewIPify(suite.http)

	httpmock.RegisterResponder("GET",
		"https://api.ipify.org?format=json",
		httpmock.NewStringResponder(http.StatusOK, `{"ip": "9.9.9.9"}`))

	ip, err := prov.Lookup(context.Background())

	suite.Equal(providers.NameIPify, prov.Name())
	suite.NoError(err)
	suite.Equal("9.9.9.9", ip)
}

func (suite *MockedBuiltinTestSuite) TestMissingField() {
	prov := providers.NewIPify(suite.http)

	httpmock.RegisterResponder("GET",
		"https://api.ipify.org?format=json",
		httpmock.NewStringResponder(http.StatusOK, `{"address": "9.9.9.9"}`))

	_, err := prov.Lookup(context.Background())

	suite.ErrorIs(err, providers.ErrNoIPInResponse)
}

func (suite *MockedBuiltinTestSuite) TestEmptyBody() {
	prov := providers.NewUserAgentInfo(suite.http)

	httpmock.RegisterResponder("GET",
		"https://ip.useragentinfo.com/json",
		httpmock.NewStringResponder(http.StatusOK, ""))

	_, err := prov.Lookup(context.Background())

	suite.Error(err)
}

func (suite *MockedBuiltinTestSuite) TestNonOKSuccessStatus() {
	prov := providers.NewIPify(suite.http)

	httpmock.RegisterResponder("GET",
		"https://api.ipify.org?format=json",
		httpmock.NewStringResponder(http.StatusAccepted, `{"ip": "9.9.9.9"}`))

	ip, err := prov.Lookup(context.Background())

	suite.ErrorContains(err, "unexpected status code: 202")
	suite.Empty(ip)
}

func (suite *MockedBuiltinTestSuite) TestNetworkError() {
	prov := providers.NewUserAgentInfo(suite.http)

	httpmock.RegisterResponder("GET",
		"https://ip.useragentinfo.com/json",
		httpmock.NewErrorResponder(http.ErrHandlerTimeout))

	_, err := prov.Lookup(context.Background())

	suite.ErrorIs(err, http.ErrHandlerTimeout)
}

func (suite *MockedBuiltinTestSuite) TestDefault() {
	names := []string{}

	for _, v := range providers.Default(suite.http) {
		suite.NotNil(v)

		names = append(names, v.Name())
	}

	suite.Equal([]string{
		providers.NameUserAgentInfo,
		providers.NameIPInfo,
		providers.NameIPify,
	}, names)
}

func (suite *MockedBuiltinTestSuite) TestDefaultUnknownName() {
	original := providers.DefaultNames

	defer func() {
		providers.DefaultNames = original
	}()

	providers.DefaultNames = []string{providers.NameIPify, "unknown"}

	suite.PanicsWithError(providers.ErrUnknownProvider.Error()+": unknown", func() {
		providers.Default(suite.http)
	})
}

func (suite *MockedBuiltinTestSuite) TestNew() {
	for _, name := range providers.DefaultNames {
		prov, err := providers.New(name, suite.http, nil)

		suite.NoError(err)
		suite.Equal(name, prov.Name())
	}
}

func (suite *MockedBuiltinTestSuite) TestNewUnknown() {
	_, err := providers.New("unknown", suite.http, nil)

	suite.ErrorIs(err, providers.ErrUnknownProvider)
}

func (suite *MockedBuiltinTestSuite) TestNewCustom() {
	_, err := providers.New(providers.NameCustom, suite.http, nil)

	suite.ErrorIs(err, providers.ErrEndpointIsRequired)

	prov, err := providers.New(providers.NameCustom, suite.http, map[string]string{
		"name":     "myip",
		"endpoint": "https://myip.example.com/",
		"field":    "data.address",
	})

	suite.NoError(err)
	suite.Equal("myip", prov.Name())

	httpmock.RegisterResponder("GET",
		"https://myip.example.com/",
		httpmock.NewStringResponder(http.StatusOK, `{"data": {"address": "4.4.4.4"}}`))

	ip, err := prov.Lookup(context.Background())

	suite.NoError(err)
	suite.Equal("4.4.4.4", ip)
}

func TestBuiltin(t *testing.T) {
	suite.Run(t, &MockedBuiltinTestSuite{})
}

type IntegrationBuiltinTestSuite struct {
	ProviderTestSuite
}

func (suite *IntegrationBuiltinTestSuite) TestLookup() {
	for _, prov := range []selflib.Provider{
		providers.NewUserAgentInfo(suite.http),
		providers.NewIPify(suite.http),
	} {
		ip, err := prov.Lookup(context.Background())

		suite.NoError(err, prov.Name())
		suite.NotEmpty(ip, prov.Name())
	}
}

func TestIntegrationBuiltin(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipped because of the short mode")
		return
	}

	suite.Run(t, &IntegrationBuiltinTestSuite{})
}
