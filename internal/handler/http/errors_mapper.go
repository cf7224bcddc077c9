package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-posts/internal/app"
	"github.com/MKhiriev/go-posts/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidBody: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
	store.ErrIDExhausted:        http.StatusInternalServerError,
}

var statusMessages = map[int]string{
	http.StatusBadRequest:          app.MsgInvalidDataProvided,
	http.StatusInternalServerError: app.MsgInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err and a fixed message.
// The error itself is never sent to the client.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	http.Error(w, statusMessages[status], status)
}
