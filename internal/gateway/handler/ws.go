package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"designpro/internal/chat"
)

const (
	chatWSWriteWait = 10 * time.Second
	chatWSPongWait  = 60 * time.Second
	chatWSPingEvery = (chatWSPongWait * 9) / 10
)

var chatWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type chatWSInbound struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

type chatWSOutbound struct {
	Type     string         `json:"type"`
	Messages []chat.Message `json:"messages,omitempty"`
	Pending  bool           `json:"pending"`
	Accepted *bool          `json:"accepted,omitempty"`
	Code     string         `json:"code,omitempty"`
	Reason   string         `json:"reason,omitempty"`
}

// handleChatWS streams conversation snapshots to the client and accepts
// send requests inline. The snapshot after each state change is pushed as
// a "state" frame; submissions dropped by the single-flight guard are
// acknowledged with accepted=false.
func (h *Handler) handleChatWS(w http.ResponseWriter, r *http.Request) {
	conn, err := chatWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)

	if err := conn.SetReadDeadline(time.Now().Add(chatWSPongWait)); err != nil {
		log.Printf("chat ws set read deadline failed: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(chatWSPongWait))
	})

	writeCh := make(chan chatWSOutbound, 32)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(chatWSPingEvery)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case out := <-writeCh:
				if err := conn.SetWriteDeadline(time.Now().Add(chatWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(out); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(chatWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	snap, updates, cancel := h.session.Subscribe()
	defer cancel()

	pushChatWS(writeCh, stateFrame(snap))

	go func() {
		for {
			select {
			case <-done:
				return
			case snap, ok := <-updates:
				if !ok {
					return
				}
				pushChatWS(writeCh, stateFrame(snap))
			}
		}
	}()

	for {
		var in chatWSInbound
		if err := conn.ReadJSON(&in); err != nil {
			return
		}
		switch in.Type {
		case "send":
			accepted := h.session.Submit(r.Context(), in.Message)
			pushChatWS(writeCh, chatWSOutbound{
				Type:     "ack",
				Accepted: &accepted,
				Pending:  h.session.Pending(),
			})
		default:
			pushChatWS(writeCh, chatWSOutbound{
				Type:   "error",
				Code:   "invalid_argument",
				Reason: "unknown frame type: " + in.Type,
			})
		}
	}
}

func stateFrame(snap chat.Snapshot) chatWSOutbound {
	return chatWSOutbound{
		Type:     "state",
		Messages: snap.Messages,
		Pending:  snap.Pending,
	}
}

func pushChatWS(ch chan<- chatWSOutbound, out chatWSOutbound) {
	select {
	case ch <- out:
	default:
	}
}
