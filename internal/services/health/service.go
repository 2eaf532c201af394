package health

import "time"

// Service encapsulates health-related checks.
type Service struct{}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{}
}

// Status returns a simple health payload.
func (s *Service) Status() map[string]any {
	return map[string]any{
		"status":      "ok",
		"component":   "brain",
		"server_time": time.Now().UTC().Format(time.RFC3339),
	}
}
