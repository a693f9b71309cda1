package ws

import (
	"CollegeAdmin/internal/lib/sl"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	feedWriteTimeout = 10 * time.Second
	feedIdleTimeout  = 60 * time.Second
	feedPingInterval = 30 * time.Second
	inboundLimit     = 512
	queueSize        = 64
)

// EventConnected is the first frame a subscriber receives.
const EventConnected = "connected"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  512,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Subscriber is one dashboard connection to the event feed. The feed is
// one-way: inbound frames are read and dropped.
type Subscriber struct {
	id    string
	user  string
	hub   *Hub
	conn  *websocket.Conn
	queue chan []byte
}

// Authenticator validates a token and returns the username.
type Authenticator interface {
	ValidateToken(token string) (string, error)
}

// ServeWs upgrades the request and subscribes the connection to the hub.
func ServeWs(hub *Hub, auth Authenticator, log *slog.Logger, w http.ResponseWriter, r *http.Request) {
	user, err := auth.ValidateToken(requestToken(r))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("websocket upgrade failed", sl.Err(err))
		return
	}

	sub := &Subscriber{
		id:    uuid.NewString(),
		user:  user,
		hub:   hub,
		conn:  conn,
		queue: make(chan []byte, queueSize),
	}
	if hello, err := json.Marshal(&Event{
		Type: EventConnected,
		Time: time.Now().UTC(),
		Data: map[string]string{"subscriber": sub.id},
	}); err == nil {
		sub.queue <- hello
	}

	hub.register <- sub

	go sub.deliver()
	go sub.drain()
}

// requestToken takes the token from the "token" query parameter, falling back
// to a Bearer authorization header.
func requestToken(r *http.Request) string {
	if token := r.URL.Query().Get("token"); token != "" {
		return token
	}
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

// drain keeps reading so pongs and close frames are processed, and unsubscribes
// once the peer goes away or stops answering pings.
func (s *Subscriber) drain() {
	defer func() {
		s.hub.unregister <- s
		s.conn.Close()
	}()

	s.conn.SetReadLimit(inboundLimit)
	_ = s.conn.SetReadDeadline(time.Now().Add(feedIdleTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(feedIdleTimeout))
	})

	for {
		_, reader, err := s.conn.NextReader()
		if err != nil {
			return
		}
		if _, err = io.Copy(io.Discard, reader); err != nil {
			return
		}
	}
}

// deliver writes queued events and keepalive pings until the hub closes the queue.
func (s *Subscriber) deliver() {
	ping := time.NewTicker(feedPingInterval)
	defer func() {
		ping.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case frame, open := <-s.queue:
			if !open {
				_ = s.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
					time.Now().Add(feedWriteTimeout))
				return
			}
			_ = s.conn.SetWriteDeadline(time.Now().Add(feedWriteTimeout))
			if err := s.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ping.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(feedWriteTimeout)); err != nil {
				return
			}
		}
	}
}
