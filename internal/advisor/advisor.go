// Package advisor adapts the conversation session to a completion backend:
// it carries the fixed behavioral preamble, forwards the query with the
// prior turns, and extracts the reply text. It holds no conversation state
// of its own and never retries.
package advisor

import (
	"context"

	"designpro/internal/chat"
	"designpro/internal/llmclient"
)

// systemInstruction is constant across calls: persona, the current
// architecture summary, and answer-style directives.
const systemInstruction = `You are a World-Class System Design Architect.
You are helping a user design a movie ticket booking system like "BookMyShow".

Current System Overview:
- Microservices: User, Movie, Booking, Payment, Notification.
- Database: PostgreSQL (SQL) for Transactions, Redis for Distributed Locking, ElasticSearch for Search.
- Strategy: Optimistic locking for seat selection.

Answer the user's questions with high-level technical depth. Use markdown for lists and code blocks.
Focus on scalability, availability, and concurrency issues (like double booking).`

// Service implements chat.Advisor over an llmclient.Client.
type Service struct {
	cli llmclient.Client
}

func New(cli llmclient.Client) *Service {
	return &Service{cli: cli}
}

// Advise sends one completion request. The prior turns are forwarded as
// chat history; whether the backend honors them is best-effort, only the
// latest query is guaranteed to be transmitted. Failures propagate as-is.
func (s *Service) Advise(ctx context.Context, query string, history []chat.Message) (string, error) {
	turns := make([]llmclient.Turn, 0, len(history))
	for _, m := range history {
		turns = append(turns, llmclient.Turn{Role: string(m.Role), Text: m.Text})
	}
	return s.cli.GenerateText(ctx, systemInstruction, turns, query)
}

// SystemInstruction exposes the preamble for diagnostics.
func SystemInstruction() string { return systemInstruction }
