package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const maxJSONBodySize = 1 << 20

var ErrInvalidJSONBody = errors.New("invalid json body")

// ReadJSON decodes the request body into v. Bodies over 1MB and unknown fields are rejected.
func ReadJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("%w: empty body", ErrInvalidJSONBody)
	}
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodySize))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidJSONBody, err)
	}
	return nil
}
