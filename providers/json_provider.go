package providers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/9seconds/selfip/selflib"
)

type jsonProvider struct {
	name      string
	endpoint  string
	fieldPath []string
	headers   map[string]string
	client    selflib.HTTPClient
}

func (j jsonProvider) Name() string {
	return j.name
}

func (j jsonProvider) Lookup(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, j.endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("cannot build a request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	for k, v := range j.headers {
		req.Header.Set(k, v)
	}

	resp, err := j.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("cannot send a request: %w", err)
	}

	defer flushResponse(resp.Body)

	// HTTP client rejects only statuses >= 400.
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var jsonResponse interface{}

	jsonDecoder := json.NewDecoder(bufio.NewReader(resp.Body))

	if err := jsonDecoder.Decode(&jsonResponse); err != nil {
		return "", fmt.Errorf("cannot parse a response: %w", err)
	}

	ip, ok := extractField(jsonResponse, j.fieldPath)
	if !ok {
		return "", fmt.Errorf("%w: field %s", ErrNoIPInResponse, strings.Join(j.fieldPath, "."))
	}

	return ip, nil
}

// NewJSON returns a provider which makes GET request to endpoint and
// takes IP address from the JSON response. fieldPath is a dotted path
// to the field, like 'data.ip'. Empty path means 'ip'.
func NewJSON(name, endpoint, fieldPath string, client selflib.HTTPClient) selflib.Provider {
	return jsonProvider{
		name:      name,
		endpoint:  endpoint,
		fieldPath: parseFieldPath(fieldPath),
		client:    client,
	}
}
