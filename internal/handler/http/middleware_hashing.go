package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// vaultHashing verifies the integrity hash of an uploaded vault document: the
// "hash" field must be the hex HMAC-SHA256 of the JSON encoding of
// "passwords". The body is restored for the next handler.
func (h *Handler) vaultHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(io.LimitReader(r.Body, utils.MaxJSONBodyBytes))
		if err != nil {
			log.Err(err).Str("func", "*Handler.vaultHashing").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		var req models.SaveDocumentRequest
		if err = json.Unmarshal(body, &req); err != nil {
			log.Err(err).Str("func", "*Handler.vaultHashing").Msg("failed to decode JSON")
			http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
			return
		}

		payload, err := json.Marshal(req.Passwords)
		if err != nil {
			log.Err(err).Str("func", "*Handler.vaultHashing").Msg("failed to marshal passwords")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if !h.hasher.Verify(payload, req.Hash) {
			log.Error().Str("func", "*Handler.vaultHashing").
				Str("hash from request", req.Hash).
				Msg("hashes are not equal")
			http.Error(w, ErrIntegrityCheckFailed.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
