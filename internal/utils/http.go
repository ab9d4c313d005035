package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxJSONBodyBytes bounds request bodies read by [DecodeJSON].
const MaxJSONBodyBytes = 8 << 20

var ErrTrailingJSON = errors.New("unexpected data after JSON value")

// WriteJSON marshals data, sets "Content-Type: application/json" and writes
// statusCode followed by the body. It returns the number of body bytes
// written.
//
// When data cannot be marshaled the response is 500 and the wrapped error is
// returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON decodes exactly one JSON value from r into v, reading at most
// [MaxJSONBodyBytes].
func DecodeJSON(r io.Reader, v any) error {
	dec := json.NewDecoder(io.LimitReader(r, MaxJSONBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}
	if dec.More() {
		return ErrTrailingJSON
	}
	return nil
}
