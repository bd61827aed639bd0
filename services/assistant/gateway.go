package assistant

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/huggingface"
)

var (
	// ErrMissingCredential means no API key is configured. It is returned
	// before any network call is made.
	ErrMissingCredential = errors.New("inference API key not configured")
	// ErrUpstreamUnavailable covers network-level failure: DNS, connection
	// refused, timeout.
	ErrUpstreamUnavailable = errors.New("inference endpoint unreachable")
	// ErrUpstream covers any non-success response from the endpoint.
	ErrUpstream = errors.New("inference endpoint returned an error")
)

// Gateway issues one fresh outbound call per invocation and returns the raw
// model output. It performs no semantic validation of the response shape.
type Gateway interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type HuggingFaceGateway struct {
	llm llms.Model
}

// NewHuggingFaceGateway builds the gateway. With an empty API key the
// gateway is still usable; every Generate call fails fast with
// ErrMissingCredential and the callers serve fallback content.
func NewHuggingFaceGateway(apiKey string) *HuggingFaceGateway {
	if apiKey == "" {
		log.Printf("[INFO] No inference API key configured, AI responses will use fallback content")
		return &HuggingFaceGateway{}
	}

	llm, err := huggingface.New(
		huggingface.WithToken(apiKey),
		huggingface.WithModel(ModelID),
	)
	if err != nil {
		log.Printf("[ERROR] Failed to initialize inference client: %v", err)
		return &HuggingFaceGateway{}
	}

	return &HuggingFaceGateway{llm: llm}
}

func (g *HuggingFaceGateway) Generate(ctx context.Context, prompt string) (string, error) {
	if g.llm == nil {
		return "", ErrMissingCredential
	}

	completion, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt)
	if err != nil {
		return "", classifyError(err)
	}

	return completion, nil
}

func classifyError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}
