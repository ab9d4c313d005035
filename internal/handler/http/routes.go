package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const accountIDParam = "accountID"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.accountOwner)

		r.Get("/api/vault/{"+accountIDParam+"}", h.getVault)
		r.With(h.vaultHashing).Put("/api/vault/{"+accountIDParam+"}", h.saveVault)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
