// Package ws streams cube state to renderer clients over websockets. Each
// connection owns its own Session.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/logging"
	"github.com/SeamusWaldron/cubestate/internal/protocol"
)

const (
	writeTimeout = 5 * time.Second
	readTimeout  = 60 * time.Second
	outQueue     = 256
)

// Server hands each websocket connection its own Session and streams the
// resulting move and state messages back to it.
type Server struct {
	log            logrus.FieldLogger
	scrambleLength int
	opts           []cubestate.Option

	upgrader websocket.Upgrader

	mu     sync.Mutex
	conns  map[*websocket.Conn]struct{}
	closed bool
}

// NewServer creates a server whose sessions scramble scrambleLength moves
// unless a request says otherwise. opts are passed to every new Session.
func NewServer(log logrus.FieldLogger, scrambleLength int, opts ...cubestate.Option) *Server {
	return &Server{
		log:            log,
		scrambleLength: scrambleLength,
		opts:           opts,
		conns:          make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  16 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // local renderers
		},
	}
}

// Routes returns a mux serving /ws and /healthz.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled. On shutdown every
// open websocket is closed before Serve returns.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.Routes()}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		s.closeConns()
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		// Hijacked websocket conns are not tracked by Shutdown.
		s.closeConns()
		if err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) track(conn *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) untrack(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}

func (s *Server) closeConns() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for conn := range s.conns {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		_ = conn.Close()
		delete(s.conns, conn)
	}
}

// Handler upgrades the request and runs one Session until the peer goes
// away or the server shuts down.
func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			s.log.WithError(err).Debug("websocket upgrade failed")
			return
		}
		defer conn.Close()
		if !s.track(conn) {
			return
		}
		defer s.untrack(conn)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		c := &client{
			log: s.log.WithField("remote", r.RemoteAddr),
			out: make(chan []byte, outQueue),
			ctx: ctx,
		}
		c.session = s.newSession(c)
		c.log.Info("renderer connected")

		// Writer goroutine.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				select {
				case <-ctx.Done():
					return
				case b := <-c.out:
					_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
					if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
						cancel()
						_ = conn.Close()
						return
					}
				}
			}
		}()

		// Reader loop.
		for {
			_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				break
			}
			c.handle(msg, s.scrambleLength)
		}
		cancel()
		<-done
		c.log.Info("renderer disconnected")
	}
}

func (s *Server) newSession(c *client) *cubestate.Session {
	logReport := logging.Reporter(c.log)
	report := func(d cubestate.Diagnostic) {
		logReport(d)
		if d.Kind == cubestate.DiagMalformedToken {
			c.pending = append(c.pending, d)
		}
	}

	opts := append(append([]cubestate.Option(nil), s.opts...), cubestate.WithReporter(report))
	sess := cubestate.NewSession(opts...)
	sess.OnMove(func(ev cubestate.MoveEvent) {
		c.send(protocol.NewMoveMsg(ev))
	})
	return sess
}

// client is the per-connection state. Only the reader loop touches
// session and pending; callbacks run on that goroutine.
type client struct {
	log     logrus.FieldLogger
	session *cubestate.Session
	out     chan []byte
	ctx     context.Context
	pending []cubestate.Diagnostic
}

func (c *client) handle(raw []byte, defaultLength int) {
	msg, err := protocol.DecodeClient(raw)
	if err != nil {
		c.log.WithError(err).Debug("rejected client message")
		c.send(protocol.NewErrorMsg(err))
		return
	}

	var sequence string
	switch msg.Type {
	case protocol.TypeState:
	case protocol.TypeApply:
		sequence = cubestate.FormatMoves(c.session.ApplySequence(msg.Sequence))
	case protocol.TypeScramble:
		n := defaultLength
		if msg.Length != nil {
			n = *msg.Length
		}
		sequence = c.session.Scramble(n)
	case protocol.TypeSolve:
		sequence = c.session.Solve()
	case protocol.TypeReset:
		c.session.Reset()
	}

	c.send(protocol.NewStateMsg(c.session.Snapshot(), sequence))

	for _, d := range c.pending {
		c.send(protocol.NewErrorMsg(fmt.Errorf("%s: %w", d.Message, d.Err)))
	}
	c.pending = c.pending[:0]
}

func (c *client) send(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		c.log.WithError(err).Error("failed to encode message")
		return
	}
	select {
	case c.out <- b:
	case <-c.ctx.Done():
	}
}
