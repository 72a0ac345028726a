package rest

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/api"
	"github.com/tidwall/gjson"
)

// msgNotEnvelope is the failure message for 2xx bodies without an envelope.
const msgNotEnvelope = "unexpected response format"

// messagePaths are the body members searched, in order, for a failure message.
var messagePaths = []string{"message", "Message", "title", "error.message", "error"}

// fieldErrorPaths are the body members searched for per-field messages.
var fieldErrorPaths = []string{"errors", "Errors"}

// decodeResponse turns a response into an envelope or a typed failure.
//
// 2xx responses must carry an envelope; 204 No Content is read as a
// successful envelope without data. Every other status is an HTTPFailure,
// even when the body is an envelope.
func decodeResponse(method, endpoint string, status int, body []byte) (*api.RawEnvelope, error) {
	if status < 200 || status > 299 {
		return nil, newHTTPFailure(method, endpoint, status, body, "")
	}

	if status == http.StatusNoContent {
		return &api.RawEnvelope{IsSuccess: true, StatusCode: status}, nil
	}

	if len(bytes.TrimSpace(body)) == 0 || !isEnvelope(body) {
		return nil, newHTTPFailure(method, endpoint, status, body, msgNotEnvelope)
	}

	env := &api.RawEnvelope{
		IsSuccess:  gjson.GetBytes(body, "isSuccess").Bool(),
		Message:    gjson.GetBytes(body, "message").String(),
		Errors:     fieldErrors(body),
		StatusCode: status,
	}
	if data := gjson.GetBytes(body, "data"); data.Exists() {
		env.Data = json.RawMessage(data.Raw)
	}

	return env, nil
}

// isEnvelope reports whether body is a JSON object with a boolean isSuccess.
func isEnvelope(body []byte) bool {
	if !gjson.ValidBytes(body) {
		return false
	}
	flag := gjson.GetBytes(body, "isSuccess")
	return flag.Type == gjson.True || flag.Type == gjson.False
}

func newHTTPFailure(method, endpoint string, status int, body []byte, fallback string) *api.HTTPFailure {
	f := &api.HTTPFailure{
		Method:     method,
		Endpoint:   endpoint,
		StatusCode: status,
		Body:       body,
		Message:    fallback,
	}
	if gjson.ValidBytes(body) {
		if msg := message(body); msg != "" && fallback == "" {
			f.Message = msg
		}
		f.FieldErrors = fieldErrors(body)
	}
	return f
}

// message returns the first non-empty string found at messagePaths.
func message(body []byte) string {
	for _, path := range messagePaths {
		r := gjson.GetBytes(body, path)
		if r.Type == gjson.String && r.Str != "" {
			return r.Str
		}
	}
	return ""
}

// fieldErrors extracts an object of field → message or field → [messages].
// Returns nil when no such object exists.
func fieldErrors(body []byte) map[string][]string {
	for _, path := range fieldErrorPaths {
		r := gjson.GetBytes(body, path)
		if !r.IsObject() {
			continue
		}

		out := map[string][]string{}
		r.ForEach(func(key, value gjson.Result) bool {
			switch {
			case value.IsArray():
				for _, item := range value.Array() {
					if item.Type == gjson.String {
						out[key.String()] = append(out[key.String()], item.Str)
					}
				}
			case value.Type == gjson.String:
				out[key.String()] = []string{value.Str}
			}
			return true
		})
		if len(out) > 0 {
			return out
		}
	}
	return nil
}
