package main

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/9seconds/selfip/providers"
	"github.com/9seconds/selfip/selflib"
	"github.com/hjson/hjson-go"
)

const (
	DefaultListen            = "127.0.0.1:8000"
	DefaultRateLimitInterval = 100 * time.Millisecond
	DefaultRateLimitBurst    = 10
)

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(b []byte) error {
	var v interface{}

	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("cannot unmarshal duration: %w", err)
	}

	vv, ok := v.(string)
	if !ok {
		return fmt.Errorf("incorrect duration: %v", v)
	}

	dur, err := time.ParseDuration(vv)
	if err != nil {
		return fmt.Errorf("cannot parse duration: %w", err)
	}

	d.Duration = dur

	return nil
}

type config struct {
	Listen            string           `json:"listen"`
	UserAgent         string           `json:"user_agent"`
	Timeout           duration         `json:"timeout"`
	RateLimitInterval duration         `json:"rate_limit_interval"`
	RateLimitBurst    uint             `json:"rate_limit_burst"`
	BasicAuth         configBasicAuth  `json:"basic_auth"`
	Providers         []configProvider `json:"providers"`
}

func (c config) GetListen() string {
	if c.Listen != "" {
		return c.Listen
	}

	return DefaultListen
}

func (c config) GetUserAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}

	return selflib.DefaultUserAgent + "/" + version
}

func (c config) GetTimeout() time.Duration {
	if c.Timeout.Duration == 0 {
		return selflib.DefaultProviderTimeout
	}

	return c.Timeout.Duration
}

func (c config) GetRateLimitInterval() time.Duration {
	if c.RateLimitInterval.Duration == 0 {
		return DefaultRateLimitInterval
	}

	return c.RateLimitInterval.Duration
}

func (c config) GetRateLimitBurst() int {
	if c.RateLimitBurst == 0 {
		return DefaultRateLimitBurst
	}

	return int(c.RateLimitBurst)
}

func (c config) GetProviders() []configProvider {
	if len(c.Providers) != 0 {
		return c.Providers
	}

	rv := make([]configProvider, len(providers.DefaultNames))

	for i, v := range providers.DefaultNames {
		rv[i].Name = v
	}

	return rv
}

type configBasicAuth struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

func (c configBasicAuth) Enabled() bool {
	return c.User != "" || c.Password != ""
}

type configProvider struct {
	Name               string            `json:"name"`
	SpecificParameters map[string]string `json:"specific_parameters"`
}

func (c configProvider) GetName() string {
	return c.Name
}

// GetDisplayName is a name which resolver uses for this provider.
// Custom providers may have several instances so they are named by
// 'name' parameter.
func (c configProvider) GetDisplayName() string {
	if c.Name == providers.NameCustom {
		if name := c.GetSpecificParameters()["name"]; name != "" {
			return name
		}
	}

	return c.Name
}

func (c configProvider) GetSpecificParameters() map[string]string {
	if c.SpecificParameters == nil {
		return map[string]string{}
	}

	return c.SpecificParameters
}

func parseConfig(content []byte) (*config, error) {
	conf := config{}

	if len(content) == 0 {
		return &conf, nil
	}

	rawMap := map[string]interface{}{}

	if err := hjson.Unmarshal(content, &rawMap); err != nil {
		return nil, fmt.Errorf("cannot parse json: %w", err)
	}

	rawBytes, err := json.Marshal(rawMap)
	if err != nil {
		return nil, fmt.Errorf("cannot normalize config: %w", err)
	}

	if err := json.Unmarshal(rawBytes, &conf); err != nil {
		return nil, fmt.Errorf("incorrect config: %w", err)
	}

	if _, _, err := net.SplitHostPort(conf.GetListen()); err != nil {
		return nil, fmt.Errorf("incorrect host:port for listen: %w", err)
	}

	if conf.Timeout.Duration < 0 {
		return nil, fmt.Errorf("incorrect timeout: %v", conf.Timeout.Duration)
	}

	seenProviderNames := map[string]struct{}{}

	for _, v := range conf.Providers {
		if v.GetName() == "" {
			return nil, fmt.Errorf("provider name is empty")
		}

		if _, ok := seenProviderNames[v.GetDisplayName()]; ok {
			return nil, fmt.Errorf("name %s is duplicated", v.GetDisplayName())
		}

		seenProviderNames[v.GetDisplayName()] = struct{}{}
	}

	return &conf, nil
}

func readConfig(path string) (*config, error) {
	if path == "" {
		return parseConfig(nil)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %w", err)
	}

	return parseConfig(content)
}
