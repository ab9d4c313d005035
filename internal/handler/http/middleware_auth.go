package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/go-chi/chi/v5"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the token's account id in
// the request context under [utils.AccountIDCtxKey].
//
// Requests without a header, with a malformed header, or with an expired or
// otherwise invalid token are rejected with HTTP 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
				log.Err(err).Msg("token expired or invalid")
				http.Error(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
				return
			}
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.AccountIDCtxKey, token.AccountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// accountOwner rejects requests whose {accountID} differs from the account of
// the authenticated token with HTTP 403.
func (h *Handler) accountOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := utils.GetAccountIDFromContext(r.Context())
		if !ok || accountID == "" {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if requested := chi.URLParam(r, accountIDParam); requested != accountID {
			logger.FromRequest(r).Warn().
				Str("func", "*Handler.accountOwner").
				Msg("access to a different account's vault")
			http.Error(w, service.ErrForbidden.Error(), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the token from a "<scheme> <token>" header
// value.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
