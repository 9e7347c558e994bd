package share

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJIDFromPhone(t *testing.T) {
	tests := []struct {
		name        string
		phone       string
		countryCode string
		want        string
	}{
		{"formatted local number", "(11) 98888-0000", "55", "5511988880000"},
		{"already has country code", "55 11 98888-0000", "55", "5511988880000"},
		{"spaces and dots", "11 9.8888.0000", "55", "5511988880000"},
		{"no country code configured", "11988880000", "", "11988880000"},
		{"other country code", "912 345 678", "351", "351912345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jid, err := JIDFromPhone(tt.phone, tt.countryCode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, jid.User)
			assert.Equal(t, "s.whatsapp.net", jid.Server)
		})
	}
}

func TestJIDFromPhoneEmpty(t *testing.T) {
	_, err := JIDFromPhone("sem telefone", "55")
	assert.ErrorIs(t, err, ErrNoPhone)
}
