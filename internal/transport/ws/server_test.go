package ws

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/logging"
)

type reply struct {
	Type     string             `json:"type"`
	Move     string             `json:"move"`
	Index    int                `json:"index"`
	After    cubestate.Snapshot `json:"after"`
	Snapshot cubestate.Snapshot `json:"snapshot"`
	Sequence string             `json:"sequence"`
	Solved   bool               `json:"solved"`
	Error    string             `json:"error"`
}

func dial(t *testing.T, opts ...cubestate.Option) *websocket.Conn {
	t.Helper()
	srv := NewServer(logging.New(io.Discard, "error"), 4, opts...)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, msg string) {
	t.Helper()
	if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func recv(t *testing.T, conn *websocket.Conn) reply {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var r reply
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
	return r
}

func TestServer_State(t *testing.T) {
	conn := dial(t)
	send(t, conn, `{"type":"state"}`)

	r := recv(t, conn)
	if r.Type != "state" || !r.Solved || !r.Snapshot.IsSolved() {
		t.Errorf("got %+v", r)
	}
}

func TestServer_ApplyStreamsMoves(t *testing.T) {
	conn := dial(t)
	send(t, conn, `{"type":"apply","sequence":"R X U"}`)

	m1 := recv(t, conn)
	m2 := recv(t, conn)
	if m1.Type != "move" || m1.Move != "R" || m1.Index != 0 {
		t.Errorf("first move = %+v", m1)
	}
	if m2.Type != "move" || m2.Move != "U" || m2.Index != 1 {
		t.Errorf("second move = %+v", m2)
	}

	st := recv(t, conn)
	if st.Type != "state" || st.Sequence != "R U" || st.Solved {
		t.Errorf("state = %+v", st)
	}
	if st.Snapshot != m2.After {
		t.Error("state snapshot should match the last move")
	}

	e := recv(t, conn)
	if e.Type != "error" || !strings.Contains(e.Error, `"X"`) {
		t.Errorf("error = %+v", e)
	}
}

func TestServer_ScrambleAndSolve(t *testing.T) {
	conn := dial(t, cubestate.WithSeed(3))
	send(t, conn, `{"type":"scramble"}`)
	for i := 0; i < 4; i++ {
		if r := recv(t, conn); r.Type != "move" {
			t.Fatalf("message %d = %+v, want move", i, r)
		}
	}
	st := recv(t, conn)
	scramble := st.Sequence
	if len(strings.Fields(scramble)) != 4 || st.Solved {
		t.Fatalf("scramble state = %+v", st)
	}

	send(t, conn, `{"type":"solve"}`)
	for i := 0; i < 4; i++ {
		recv(t, conn)
	}
	st = recv(t, conn)
	if !st.Solved || st.Sequence != cubestate.ReverseSequence(scramble) {
		t.Errorf("after solve = %+v", st)
	}
}

func TestServer_ResetAndRejects(t *testing.T) {
	conn := dial(t)

	send(t, conn, `{"type":"rotate"}`)
	if r := recv(t, conn); r.Type != "error" {
		t.Errorf("got %+v, want error", r)
	}

	send(t, conn, `{"type":"scramble","length":2}`)
	recv(t, conn)
	recv(t, conn)
	recv(t, conn)

	send(t, conn, `{"type":"reset"}`)
	if r := recv(t, conn); r.Type != "state" || !r.Solved {
		t.Errorf("after reset = %+v", r)
	}
}

func TestServer_Healthz(t *testing.T) {
	ts := httptest.NewServer(NewServer(logging.New(io.Discard, "error"), 20).Routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestServer_ShutdownClosesSessions(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := NewServer(logging.New(io.Discard, "error"), 4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ctx, ln) }()

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+ln.Addr().String()+"/ws", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	send(t, conn, `{"type":"state"}`)
	if r := recv(t, conn); r.Type != "state" {
		t.Fatalf("got %+v, want state", r)
	}

	cancel()
	select {
	case err := <-served:
		if err != nil {
			t.Fatalf("Serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}

	_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"apply","sequence":"R"}`))
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	if err == nil {
		t.Fatalf("session still answering after shutdown: %s", data)
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		t.Fatalf("connection left open after shutdown: %v", err)
	}
}
