// Package chat owns the conversation state: the ordered turn log and the
// single-flight pending flag guarding the completion request lifecycle.
package chat

import (
	"context"
	"strings"
	"sync"
)

// ErrorFallback is appended verbatim as the model turn when the advisor
// fails, whatever the underlying cause.
const ErrorFallback = "Error: Failed to connect to Architect AI."

// Role identifies the speaker of a turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one conversation turn. Append order is conversation order.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Snapshot is an immutable view of the session handed to subscribers.
type Snapshot struct {
	Messages []Message `json:"messages"`
	Pending  bool      `json:"pending"`
}

// Advisor answers a query given the prior turn history. Any failure is
// opaque to the session; it never inspects error subtypes.
type Advisor interface {
	Advise(ctx context.Context, query string, history []Message) (string, error)
}

// Session is the single owner of conversation order. At most one advisor
// request is in flight at a time: Submit while pending is a silent no-op.
// State is guarded by a mutex so HTTP handlers may call in concurrently,
// but the pending flag alone carries the single-flight invariant.
type Session struct {
	advisor Advisor

	mu       sync.Mutex
	messages []Message
	pending  bool
	subs     map[int]chan Snapshot
	nextSub  int
}

func NewSession(advisor Advisor) *Session {
	return &Session{
		advisor: advisor,
		subs:    make(map[int]chan Snapshot),
	}
}

// Submit appends a user turn and dispatches the advisor call. It returns
// false without side effects when the trimmed query is empty or a request
// is already pending. The advisor runs asynchronously; its resolution
// appends exactly one model turn (the reply, or ErrorFallback) and clears
// pending. The in-flight call is never cancelled by the submitting caller.
func (s *Session) Submit(ctx context.Context, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return false
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return false
	}
	history := make([]Message, len(s.messages))
	copy(history, s.messages)
	s.messages = append(s.messages, Message{Role: RoleUser, Text: query})
	s.pending = true
	s.broadcastLocked()
	s.mu.Unlock()

	go s.resolve(context.WithoutCancel(ctx), query, history)
	return true
}

func (s *Session) resolve(ctx context.Context, query string, history []Message) {
	reply, err := s.advisor.Advise(ctx, query, history)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.messages = append(s.messages, Message{Role: RoleModel, Text: ErrorFallback})
	} else {
		s.messages = append(s.messages, Message{Role: RoleModel, Text: reply})
	}
	s.pending = false
	s.broadcastLocked()
}

// Messages returns a copy of the turn log in conversation order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Pending reports whether an advisor request is in flight.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// State returns the current snapshot.
func (s *Session) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe returns the current snapshot plus a channel receiving a
// snapshot after every state change, and a cancel func releasing the
// subscription. Slow subscribers miss intermediate snapshots rather than
// block the session.
func (s *Session) Subscribe() (Snapshot, <-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan Snapshot, 16)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
	return s.snapshotLocked(), ch, cancel
}

func (s *Session) snapshotLocked() Snapshot {
	msgs := make([]Message, len(s.messages))
	copy(msgs, s.messages)
	return Snapshot{Messages: msgs, Pending: s.pending}
}

func (s *Session) broadcastLocked() {
	snap := s.snapshotLocked()
	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}
