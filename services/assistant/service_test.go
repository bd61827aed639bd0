package assistant

import "context"

// stubGateway is a scriptable Gateway for tests. It records every prompt it
// receives and replies with either the generate func, the canned error, or
// the canned output, in that priority order.
type stubGateway struct {
	output   string
	err      error
	generate func(prompt string) (string, error)
	prompts  []string
}

func (g *stubGateway) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.generate != nil {
		return g.generate(prompt)
	}
	if g.err != nil {
		return "", g.err
	}
	return g.output, nil
}
