// Package codec encodes admin API messages. JSON is registered with connect
// under the "json" name, so calls go out as application/json.
package codec

import (
	"fmt"

	"connectrpc.com/connect"
	"github.com/goccy/go-json"
)

const Name = "json"

var _ connect.Codec = JSON{}

// RawMessage is an already encoded message. It is sent and received as is.
type RawMessage []byte

func (m RawMessage) MarshalJSON() ([]byte, error) {
	if len(m) == 0 {
		return []byte("{}"), nil
	}

	return m, nil
}

func (m *RawMessage) UnmarshalJSON(data []byte) error {
	*m = append((*m)[:0], data...)

	return nil
}

// JSON is the connect codec of the admin service.
type JSON struct{}

func (JSON) Name() string {
	return Name
}

func (JSON) Marshal(msg any) ([]byte, error) {
	return Marshal(msg)
}

// Unmarshal leaves msg untouched when the body is empty.
func (JSON) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}

	return UnmarshalInto(data, msg)
}

func Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %T: %w", msg, err)
	}

	return data, nil
}

func UnmarshalInto(data []byte, msg any) error {
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("failed to decode %T: %w", msg, err)
	}

	return nil
}

// Decode is UnmarshalInto for a fresh value of T.
func Decode[T any](data []byte) (T, error) {
	var msg T

	err := UnmarshalInto(data, &msg)

	return msg, err
}

// Indent renders msg for people: two spaces per level.
func Indent(msg any) ([]byte, error) {
	data, err := json.MarshalIndent(msg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode %T: %w", msg, err)
	}

	return data, nil
}

func Valid(data []byte) bool {
	return json.Valid(data)
}
