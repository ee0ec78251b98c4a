package requests

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"riftrewind/pkg/config"
	"time"
)

var client = &http.Client{Timeout: 15 * time.Second}

// Do a authenticated request to the Riot API.
// Return the response.
func AuthRequest(ctx context.Context, requestUrl string, method string, params map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, requestUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	if config.Riot.ApiKey == "" {
		return nil, fmt.Errorf("can't do a authenticated request without the API key")
	}

	// Build the query parameters.
	if len(params) > 0 {
		query := url.Values{}
		for key, value := range params {
			query.Set(key, value)
		}
		req.URL.RawQuery = query.Encode()
	}

	// Add the token from the .env
	req.Header.Set("X-Riot-Token", config.Riot.ApiKey)

	return client.Do(req)
}
