package valuation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"valuegate.jvcp.co/infrastructure/network"
)

// Service is the external valuation collaborator. The arithmetic lives
// outside this codebase; the gate only forwards payloads to it.
type Service interface {
	Compute(ctx context.Context, payload map[string]any) (map[string]any, error)
}

// RemoteService forwards compute requests to the valuation backend.
type RemoteService struct {
	network *network.NetworkController
}

func NewRemoteService(baseURL string, timeout time.Duration) *RemoteService {
	return &RemoteService{
		network: network.NewNetworkController(baseURL, timeout),
	}
}

func (rs *RemoteService) Compute(ctx context.Context, payload map[string]any) (map[string]any, error) {
	response, statusCode, err := rs.network.Post(ctx, "/compute-valuation", nil, payload)
	if err != nil {
		return nil, fmt.Errorf("valuation service unreachable: %w", err)
	}
	if *statusCode != 200 {
		return nil, fmt.Errorf("valuation service responded with status %d", *statusCode)
	}
	var result map[string]any
	if err := json.Unmarshal(*response, &result); err != nil {
		return nil, fmt.Errorf("valuation service returned a malformed payload: %w", err)
	}
	return result, nil
}
