package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/meltui/melt/internal/errors"
	"github.com/meltui/melt/internal/gallery"
	"github.com/meltui/melt/pkg/middleware"
	"github.com/meltui/melt/pkg/reactive"
	"github.com/meltui/melt/pkg/render"
	"github.com/meltui/melt/pkg/vdom"
)

// liveMessage is sent to the client.
type liveMessage struct {
	HTML  string `json:"html,omitempty"`
	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}

// failure builds an error message carrying a registered code.
func failure(code string, err error) liveMessage {
	me := errors.New(code)
	if err != nil {
		me = me.Wrap(err)
	}
	return liveMessage{Error: me.FormatCompact(), Code: me.Code}
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	d, err := s.demos.Get(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		s.metrics.RecordWebSocketError("upgrade")
		s.logger.Debug("websocket upgrade failed", "demo", name, "error", err)
		return
	}

	s.conns.Add(1)
	defer s.conns.Done()
	defer conn.Close()

	s.metrics.SessionStarted()
	defer s.metrics.SessionEnded()

	s.serveLive(r.Context(), conn, d)
}

// serveLive runs one session. Everything touching the session happens on
// this goroutine; a reader goroutine only decodes frames.
func (s *Server) serveLive(ctx context.Context, conn *websocket.Conn, d gallery.Demo) {
	defer reactive.ReleaseGoroutine()

	sess := gallery.NewSession(d, s.theme, s.config.Renderer)
	defer sess.Close()

	log := s.logger.With("demo", d.Name)

	reloads, unsubscribe := s.hub.subscribe()
	defer unsubscribe()

	if !s.pushRender(conn, sess, log) {
		return
	}

	events := make(chan vdom.Event)
	stop := make(chan struct{})
	defer close(stop)
	go s.readEvents(conn, events, stop, log)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !s.handleEvent(ctx, conn, sess, ev, log) {
				return
			}
		case <-reloads:
			if !s.pushRender(conn, sess, log) {
				return
			}
		case <-s.done:
			s.writeClose(conn, websocket.CloseGoingAway, "server shutting down")
			return
		}
	}
}

// readEvents decodes client frames until the connection fails. Malformed
// frames are answered with an error and skipped.
func (s *Server) readEvents(conn *websocket.Conn, events chan<- vdom.Event, stop <-chan struct{}, log *slog.Logger) {
	defer close(events)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				s.metrics.RecordWebSocketError("read")
				log.Debug("websocket read", "error", err)
			}
			return
		}
		var ev vdom.Event
		if err := json.Unmarshal(data, &ev); err != nil || ev.HID == "" || ev.Type == "" {
			s.metrics.RecordWebSocketError("decode")
			ev = vdom.Event{}
		}
		select {
		case events <- ev:
		case <-stop:
			return
		}
	}
}

func (s *Server) handleEvent(ctx context.Context, conn *websocket.Conn, sess *gallery.Session, ev vdom.Event, log *slog.Logger) bool {
	if ev.HID == "" {
		return s.write(conn, failure("M030", nil))
	}

	start := time.Now()
	_, span := s.tracing.StartEvent(ctx, sess.Demo().Name, ev)
	html, err := sess.Dispatch(ev)
	middleware.EndSpan(span, err)
	s.metrics.RecordEvent(sess.Demo().Name, ev.Type, time.Since(start), err)

	if err != nil {
		log.Debug("event failed", "hid", ev.HID, "event", ev.Type, "error", err)
		switch {
		case stderrors.Is(err, gallery.ErrSessionClosed):
			return false
		case stderrors.Is(err, render.ErrHandlerNotFound):
			return s.write(conn, failure("M031", err))
		default:
			return s.write(conn, failure("M032", err))
		}
	}
	return s.write(conn, liveMessage{HTML: html})
}

func (s *Server) pushRender(conn *websocket.Conn, sess *gallery.Session, log *slog.Logger) bool {
	html, err := sess.Render()
	if err != nil {
		log.Error("render", "error", err)
		return s.write(conn, failure("M032", err))
	}
	return s.write(conn, liveMessage{HTML: html})
}

func (s *Server) write(conn *websocket.Conn, msg liveMessage) bool {
	_ = conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	if err := conn.WriteJSON(msg); err != nil {
		s.metrics.RecordWebSocketError("write")
		return false
	}
	return true
}

func (s *Server) writeClose(conn *websocket.Conn, code int, text string) {
	deadline := time.Now().Add(s.config.WriteTimeout)
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), deadline)
}
