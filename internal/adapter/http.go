package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/go-resty/resty/v2"
)

const vaultPath = "/api/vault/{accountID}"

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. appCfg.HashKey keys the integrity hash sent with every save.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHTTPAddress, err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{
		client: client,
		hasher: utils.NewHasher(appCfg.HashKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// GetDocument implements [ServerAdapter]. It sends
// GET /api/vault/{accountID} and decodes the returned document. A document
// without a passwords field decodes to an empty list.
func (h *httpServerAdapter) GetDocument(ctx context.Context, accountID string) (models.VaultDocument, error) {
	if accountID == "" {
		return models.VaultDocument{}, ErrEmptyAccountID
	}

	resp, err := h.authedRequest(ctx).
		SetPathParam("accountID", accountID).
		SetHeader("Accept", "application/json").
		Get(vaultPath)
	if err != nil {
		return models.VaultDocument{}, fmt.Errorf("get document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultDocument{}, err
	}

	var doc models.VaultDocument
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.VaultDocument{}, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}
	if doc.Passwords == nil {
		doc.Passwords = []models.EncryptedRecord{}
	}

	return doc, nil
}

// PutDocument implements [ServerAdapter]. It computes the integrity hash over
// records, sets the record count and sends PUT /api/vault/{accountID}.
func (h *httpServerAdapter) PutDocument(ctx context.Context, accountID string, records []models.EncryptedRecord) error {
	if accountID == "" {
		return ErrEmptyAccountID
	}
	if records == nil {
		records = []models.EncryptedRecord{}
	}

	hash, err := h.computeTransportHash(records)
	if err != nil {
		return err
	}

	req := models.SaveDocumentRequest{
		Passwords: records,
		Length:    len(records),
		Hash:      hash,
	}

	resp, err := h.authedRequest(ctx).
		SetPathParam("accountID", accountID).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put(vaultPath)
	if err != nil {
		return fmt.Errorf("put document request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().
		Str("func", "httpServerAdapter.PutDocument").
		Int("records", len(records)).
		Msg("vault document saved")
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) computeTransportHash(records []models.EncryptedRecord) (string, error) {
	payload, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	return h.hasher.HexSum(payload), nil
}
