package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testHashKey   = "hash-key"
	testSignKey   = "sign-key"
	testIssuer    = "go-pass-vault"
	testAccountID = "uid-1"
)

type testServer struct {
	handler *Handler
	vault   *mock.MockVaultService
	router  http.Handler
}

// newTestServer wires the router to a mocked vault service and a real auth
// service so that tokens are checked end to end.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	vault := mock.NewMockVaultService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3").AnyTimes()

	auth := mock.NewMockAuthService(ctrl)
	auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, raw string) (models.Token, error) {
		token, err := utils.ValidateAndParseJWTToken(raw, testSignKey, testIssuer)
		if err != nil {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
		return token, nil
	}).AnyTimes()

	h := NewHandler(&service.Services{
		AuthService:    auth,
		VaultService:   vault,
		AppInfoService: appInfo,
	}, testHashKey, logger.Nop())

	return &testServer{handler: h, vault: vault, router: h.Init()}
}

func bearer(t *testing.T, accountID string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, accountID, time.Hour, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}

func saveBody(t *testing.T, records []models.EncryptedRecord, hashKey string) []byte {
	t.Helper()
	payload, err := json.Marshal(records)
	require.NoError(t, err)

	body, err := json.Marshal(models.SaveDocumentRequest{
		Passwords: records,
		Length:    len(records),
		Hash:      utils.NewHasher(hashKey).HexSum(payload),
	})
	require.NoError(t, err)
	return body
}

var testRecords = []models.EncryptedRecord{{Site: "c2l0ZQ==", Username: "dXNlcg==", Password: "cGFzcw=="}}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svcs, testHashKey, log)
	require.NotNil(t, h)
	assert.Equal(t, svcs, h.services)
	assert.Equal(t, log, h.logger)
	assert.NotNil(t, h.hasher)
	assert.NotNil(t, h.traceIDs)

	assert.Nil(t, NewHandler(svcs, "", log).hasher)
}

// ─────────────────────────────────────────────
// GET /api/version
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	s := newTestServer(t)

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3", rr.Body.String())
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

// ─────────────────────────────────────────────
// GET /api/vault/{accountID}
// ─────────────────────────────────────────────

func TestGetVault(t *testing.T) {
	tests := []struct {
		name       string
		auth       string
		path       string
		setup      func(v *mock.MockVaultService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "document returned",
			path: "/api/vault/" + testAccountID,
			setup: func(v *mock.MockVaultService) {
				v.EXPECT().GetVault(gomock.Any(), testAccountID).Return(models.VaultDocument{Passwords: testRecords}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"passwords":[{"site":"c2l0ZQ==","username":"dXNlcg==","password":"cGFzcw=="}]}`,
		},
		{
			name: "no document",
			path: "/api/vault/" + testAccountID,
			setup: func(v *mock.MockVaultService) {
				v.EXPECT().GetVault(gomock.Any(), testAccountID).Return(models.VaultDocument{}, store.ErrDocumentNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "other account",
			path:       "/api/vault/uid-2",
			setup:      func(v *mock.MockVaultService) {},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no token",
			auth:       "-",
			path:       "/api/vault/" + testAccountID,
			setup:      func(v *mock.MockVaultService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "bad token",
			auth:       "Bearer nope",
			path:       "/api/vault/" + testAccountID,
			setup:      func(v *mock.MockVaultService) {},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			tt.setup(s.vault)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			switch tt.auth {
			case "":
				req.Header.Set("Authorization", bearer(t, testAccountID))
			case "-":
			default:
				req.Header.Set("Authorization", tt.auth)
			}

			rr := httptest.NewRecorder()
			s.router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

// ─────────────────────────────────────────────
// PUT /api/vault/{accountID}
// ─────────────────────────────────────────────

func TestSaveVault(t *testing.T) {
	s := newTestServer(t)
	s.vault.EXPECT().SaveVault(gomock.Any(), testAccountID, models.SaveDocumentRequest{
		Passwords: testRecords,
		Length:    1,
		Hash:      mustHash(t, testRecords),
	}).Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/api/vault/"+testAccountID, bytes.NewReader(saveBody(t, testRecords, testHashKey)))
	req.Header.Set("Authorization", bearer(t, testAccountID))

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestSaveVault_IntegrityCheckFailed(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPut, "/api/vault/"+testAccountID, bytes.NewReader(saveBody(t, testRecords, "other-key")))
	req.Header.Set("Authorization", bearer(t, testAccountID))

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), ErrIntegrityCheckFailed.Error())
}

func TestSaveVault_InvalidJSON(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPut, "/api/vault/"+testAccountID, bytes.NewBufferString(`{"passwords":`))
	req.Header.Set("Authorization", bearer(t, testAccountID))

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSaveVault_ValidationError(t *testing.T) {
	s := newTestServer(t)
	s.vault.EXPECT().SaveVault(gomock.Any(), testAccountID, gomock.Any()).Return(service.ErrValidation)

	req := httptest.NewRequest(http.MethodPut, "/api/vault/"+testAccountID, bytes.NewReader(saveBody(t, testRecords, testHashKey)))
	req.Header.Set("Authorization", bearer(t, testAccountID))

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSaveVault_OtherAccountForbidden(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPut, "/api/vault/uid-2", bytes.NewReader(saveBody(t, testRecords, testHashKey)))
	req.Header.Set("Authorization", bearer(t, testAccountID))

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestUnknownMethod_NotFound(t *testing.T) {
	s := newTestServer(t)

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/version", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func mustHash(t *testing.T, records []models.EncryptedRecord) string {
	t.Helper()
	payload, err := json.Marshal(records)
	require.NoError(t, err)
	return utils.NewHasher(testHashKey).HexSum(payload)
}

// ─────────────────────────────────────────────
// error mapping
// ─────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFromError(store.ErrDocumentNotFound))
	assert.Equal(t, http.StatusBadRequest, statusFromError(service.ErrValidation))
	assert.Equal(t, http.StatusForbidden, statusFromError(service.ErrForbidden))
	assert.Equal(t, http.StatusBadGateway, statusFromError(store.ErrObjectStorage))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(assert.AnError))
}
