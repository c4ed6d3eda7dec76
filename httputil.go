package marketdesk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// contains http utils shared by the gateways.

// GetJSON performs an HTTP GET request and unmarshals the JSON response into data.
//
// HTTP 429 is returned as a *RateLimitError tagged with provider, any other status
// above 399 as a *GatewayError.
func GetJSON(ctx context.Context, client *http.Client, provider, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return &GatewayError{Message: fmt.Sprintf("%s: %v", provider, err)}
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return &GatewayError{Message: fmt.Sprintf("%s: %v", provider, err), StatusCode: resp.StatusCode}
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{Provider: provider}
	}
	if resp.StatusCode >= 400 {
		return &GatewayError{
			Message:    fmt.Sprintf("%s: API request failed: %s", provider, strings.TrimSpace(buf.String())),
			StatusCode: resp.StatusCode,
		}
	}
	if err := json.Unmarshal(buf.Bytes(), data); err != nil {
		return &GatewayError{Message: fmt.Sprintf("%s: invalid response: %v", provider, err), StatusCode: resp.StatusCode}
	}
	return nil
}
