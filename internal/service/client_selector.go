package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/models"
)

type backendSelector struct {
	local  Backend
	server adapter.ServerAdapter
}

// NewBackendSelector returns a selector over the device backend and the
// remote vault service. Either may be nil when that login method is not
// available.
func NewBackendSelector(local Backend, server adapter.ServerAdapter) BackendSelector {
	return &backendSelector{local: local, server: server}
}

func (s *backendSelector) Select(account models.Account) (Backend, error) {
	switch account.Method {
	case models.LoginMethodGoogle:
		if s.server == nil {
			return nil, ErrRemoteStoreNotConfigured
		}
		return NewRemoteBackend(s.server, account.ID), nil
	case models.LoginMethodManual:
		if s.local == nil {
			return nil, ErrLocalStoreNotConfigured
		}
		return s.local, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLoginMethod, account.Method)
	}
}
