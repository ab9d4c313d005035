package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getVault(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	accountID := chi.URLParam(r, accountIDParam)

	doc, err := h.services.VaultService.GetVault(r.Context(), accountID)
	if err != nil {
		status := statusFromError(err)
		if errors.Is(err, store.ErrDocumentNotFound) {
			log.Debug().Str("func", "*Handler.getVault").Msg("no vault document yet")
		} else {
			log.Err(err).Str("func", "*Handler.getVault").Msg("error getting vault document")
		}
		http.Error(w, http.StatusText(status), status)
		return
	}

	if _, err = utils.WriteJSON(w, doc, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getVault").Msg("error writing response")
	}
}

func (h *Handler) saveVault(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	accountID := chi.URLParam(r, accountIDParam)

	var req models.SaveDocumentRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		log.Err(err).Str("func", "*Handler.saveVault").Msg("invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.VaultService.SaveVault(r.Context(), accountID, req); err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.saveVault").Int("status", status).Msg("error saving vault document")
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
