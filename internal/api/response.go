package api

import (
	"encoding/json"

	"github.com/soukonline/cli/internal/models"
)

// Result is the uniform shape of every read operation: the decoded payload
// plus the backend's collection metadata. Entity payloads pass through the
// client unmodified.
type Result[T any] struct {
	Payload T
	Meta    models.Meta
}

// envelope mirrors the backend's {data, meta} wrapper on reads
type envelope[T any] struct {
	Data T           `json:"data"`
	Meta models.Meta `json:"meta"`
}

// WriteResponse is the raw body of a write call. The backend signals success
// with a status-like code at the root or nested inside data; it can return
// HTTP 200 with a business-level failure code in the body, so callers must
// classify rather than trust the transport status. Delete endpoints reply
// with a bare {message} and no code at all.
type WriteResponse struct {
	Code    int             `json:"code,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Nested decodes the code/message pair embedded in the data field, if the
// data field is an object carrying one
func (r *WriteResponse) Nested() (code int, message string) {
	if r == nil || len(r.Data) == 0 {
		return 0, ""
	}

	var nested struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(r.Data, &nested); err != nil {
		return 0, ""
	}
	return nested.Code, nested.Message
}
