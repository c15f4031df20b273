package hyperion

import "context"

type StatusService struct {
	c *Client
}

// Health returns the service health report of the Hyperion node.
func (s *StatusService) Health(ctx context.Context) (*HealthResponse, error) {
	return execute[HealthResponse](ctx, s.c, epHealth, nil)
}
