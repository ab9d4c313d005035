package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultRetryCount   = 2
	defaultRetryWait    = 200 * time.Millisecond
	defaultRetryMaxWait = 2 * time.Second
)

// HTTPClient embeds *resty.Client so callers use the resty API directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that retries transport errors and
// 502/503/504 answers. Vault reads and whole-document writes are idempotent,
// so both are safe to replay.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(defaultRetryWait).
		SetRetryMaxWaitTime(defaultRetryMaxWait).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			switch resp.StatusCode() {
			case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
				return true
			}
			return false
		})

	return &HTTPClient{Client: client}
}
