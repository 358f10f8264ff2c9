package llmclient

import (
	"context"
	"fmt"
)

// FakeClient returns canned replies for offline development and tests.
// When no key is configured the gateway falls back to it so the rest of
// the stack stays exercisable.
type FakeClient struct {
	Reply string
	Err   error
}

func NewFakeClient() *FakeClient { return &FakeClient{} }

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) GenerateText(ctx context.Context, systemInstruction string, history []Turn, message string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	if f.Reply != "" {
		return f.Reply, nil
	}
	return fmt.Sprintf("(offline) %d prior turns; you asked: %s", len(history), message), nil
}
