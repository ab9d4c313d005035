package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:              http.StatusBadRequest,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrDocumentNotFound: http.StatusNotFound,
	store.ErrCorruptDocument:  http.StatusInternalServerError,
	store.ErrDocumentNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrObjectStorage:      http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
