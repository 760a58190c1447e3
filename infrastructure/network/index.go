package network

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// NetworkController is a JSON HTTP client for a single upstream host with a
// bounded request timeout. A call that exceeds the timeout fails; it never
// hangs the request that issued it.
type NetworkController struct {
	BaseUrl string
	client  *http.Client
}

func NewNetworkController(baseUrl string, timeout time.Duration) *NetworkController {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &NetworkController{
		BaseUrl: baseUrl,
		client:  &http.Client{Timeout: timeout},
	}
}

// Post sends a JSON payload and returns the raw response body and status code.
func (nc *NetworkController) Post(ctx context.Context, path string, headers map[string]string, body any) (*[]byte, *int, error) {
	var buffer bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buffer).Encode(body); err != nil {
			return nil, nil, err
		}
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, nc.BaseUrl+path, &buffer)
	if err != nil {
		return nil, nil, err
	}
	request.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		request.Header.Set(key, value)
	}
	return nc.do(request)
}

func (nc *NetworkController) Get(ctx context.Context, path string, headers map[string]string) (*[]byte, *int, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, nc.BaseUrl+path, nil)
	if err != nil {
		return nil, nil, err
	}
	for key, value := range headers {
		request.Header.Set(key, value)
	}
	return nc.do(request)
}

func (nc *NetworkController) do(request *http.Request) (*[]byte, *int, error) {
	response, err := nc.client.Do(request)
	if err != nil {
		return nil, nil, err
	}
	defer response.Body.Close()
	payload, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, nil, err
	}
	return &payload, &response.StatusCode, nil
}
