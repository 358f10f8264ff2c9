package llmclient

import (
	"context"
	"errors"
)

// ErrEmptyReply is returned when the model responds without any text.
var ErrEmptyReply = errors.New("empty reply from model")

// Turn is one prior conversation exchange forwarded to the backend.
type Turn struct {
	Role string
	Text string
}

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Client defines the interface for completion backends. A single call
// carries a fixed system instruction, the prior turns, and the new message;
// implementations return plain reply text or an opaque error. Retries,
// caching, and error classification are not this layer's concern.
type Client interface {
	Name() string
	Close() error
	GenerateText(ctx context.Context, systemInstruction string, history []Turn, message string) (string, error)
}
