package assistant

// Service exposes the three assistant operations. Each one calls the model
// gateway, normalizes the raw output, and substitutes fallback content when
// the call or the parse fails. No operation ever returns an error: the end
// user must always receive a coherent chat message.
type Service struct {
	gateway Gateway
}

func NewService(gateway Gateway) *Service {
	return &Service{gateway: gateway}
}
