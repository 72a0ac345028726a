package api

import (
	"bytes"
	"encoding/json"
)

// Envelope is the uniform wrapper the dashboard backend places around every
// response body.
type Envelope[T any] struct {
	IsSuccess bool   `json:"isSuccess"`
	Message   string `json:"message"`
	Data      *T     `json:"data"`
}

// RawEnvelope is an envelope whose payload has not been decoded yet.
// Transports return RawEnvelope; the facade decodes Data into the type the
// caller asked for.
type RawEnvelope struct {
	IsSuccess bool            `json:"isSuccess"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`

	// Errors holds per-field messages some endpoints attach to failed
	// envelopes.
	Errors map[string][]string `json:"errors,omitempty"`

	// StatusCode is the HTTP status the envelope arrived with.
	StatusCode int `json:"-"`
}

// HasData reports whether the envelope carries a non-null payload.
func (e *RawEnvelope) HasData() bool {
	trimmed := bytes.TrimSpace(e.Data)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// Decode unmarshals the envelope payload into target.
// A missing or null payload leaves target untouched.
func (e *RawEnvelope) Decode(target any) error {
	if !e.HasData() {
		return nil
	}
	return json.Unmarshal(e.Data, target)
}

// Typed decodes the raw envelope into an Envelope of T.
func Typed[T any](raw *RawEnvelope) (*Envelope[T], error) {
	env := &Envelope[T]{
		IsSuccess: raw.IsSuccess,
		Message:   raw.Message,
	}
	if raw.HasData() {
		var data T
		if err := json.Unmarshal(raw.Data, &data); err != nil {
			return nil, err
		}
		env.Data = &data
	}
	return env, nil
}
