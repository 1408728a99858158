// Package protocol defines the JSON messages exchanged with renderer
// clients over the websocket transport.
package protocol

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/SeamusWaldron/cubestate"
)

// Client message types.
const (
	TypeState    = "state"
	TypeApply    = "apply"
	TypeScramble = "scramble"
	TypeSolve    = "solve"
	TypeReset    = "reset"
)

// Server-only message types.
const (
	TypeMove  = "move"
	TypeError = "error"
)

// ErrInvalidMessage is returned for client messages that fail the schema.
var ErrInvalidMessage = errors.New("protocol: invalid client message")

const clientSchemaURL = "https://cubestate.local/schemas/client.schema.json"

//go:embed client.schema.json
var clientSchemaJSON []byte

var clientSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(clientSchemaURL, bytes.NewReader(clientSchemaJSON)); err != nil {
		return nil, err
	}
	return c.Compile(clientSchemaURL)
})

// ClientMsg is a request from a renderer client.
type ClientMsg struct {
	Type     string `json:"type"`
	Sequence string `json:"sequence,omitempty"`
	Length   *int   `json:"length,omitempty"`
}

// MoveMsg is sent once per applied move.
type MoveMsg struct {
	Type   string             `json:"type"`
	Move   string             `json:"move"`
	Index  int                `json:"index"`
	Before cubestate.Snapshot `json:"before"`
	After  cubestate.Snapshot `json:"after"`
}

// StateMsg carries the full cube after a request has been handled.
// Sequence is the notation the request applied, if any.
type StateMsg struct {
	Type     string             `json:"type"`
	Snapshot cubestate.Snapshot `json:"snapshot"`
	Sequence string             `json:"sequence"`
	Solved   bool               `json:"solved"`
}

// ErrorMsg reports a rejected message or a skipped move token.
type ErrorMsg struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// NewMoveMsg builds the message for one applied move.
func NewMoveMsg(ev cubestate.MoveEvent) MoveMsg {
	return MoveMsg{
		Type:   TypeMove,
		Move:   ev.Move.Notation(),
		Index:  ev.Index,
		Before: ev.Before,
		After:  ev.After,
	}
}

// NewStateMsg builds a state reply; Solved is taken from snap.
func NewStateMsg(snap cubestate.Snapshot, sequence string) StateMsg {
	return StateMsg{
		Type:     TypeState,
		Snapshot: snap,
		Sequence: sequence,
		Solved:   snap.IsSolved(),
	}
}

// NewErrorMsg wraps err for the client.
func NewErrorMsg(err error) ErrorMsg {
	return ErrorMsg{Type: TypeError, Error: err.Error()}
}

// DecodeClient validates b against the client schema and decodes it.
func DecodeClient(b []byte) (ClientMsg, error) {
	schema, err := clientSchema()
	if err != nil {
		return ClientMsg{}, fmt.Errorf("failed to compile client schema: %w", err)
	}

	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return ClientMsg{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if err := schema.Validate(raw); err != nil {
		return ClientMsg{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}

	var msg ClientMsg
	if err := json.Unmarshal(b, &msg); err != nil {
		return ClientMsg{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	return msg, nil
}
