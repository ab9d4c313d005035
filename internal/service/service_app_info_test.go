package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
		wantErr error
	}{
		{name: "plain", version: "1.0.0", want: "1.0.0"},
		{name: "trimmed", version: " 2.5.1\n", want: "2.5.1"},
		{name: "empty", version: "", wantErr: ErrVersionIsNotSpecified},
		{name: "blank", version: "   ", wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.ServerApp{Version: tt.version}, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, svc.GetAppVersion(context.Background()))
		})
	}
}
