package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-posts/internal/validators"
)

// maxBodySize bounds request bodies of create and update calls.
const maxBodySize = 1 << 20

// decodeBody reads a JSON body, checks it against schema, and decodes it
// into T. Every failure wraps [ErrInvalidBody], including a body longer
// than maxBodySize.
func decodeBody[T any](w http.ResponseWriter, r *http.Request, v validators.Validator, schema string) (T, error) {
	var in T

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		return in, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	var doc any
	if err = json.Unmarshal(body, &doc); err != nil {
		return in, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	if err = v.Validate(r.Context(), doc, schema); err != nil {
		return in, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	if err = json.Unmarshal(body, &in); err != nil {
		return in, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	return in, nil
}
