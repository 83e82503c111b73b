package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyUserAgent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		nome string
		ua   string
		want DeviceClass
	}{
		{"iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", DeviceMobile},
		{"android celular", "Mozilla/5.0 (Linux; Android 14; Pixel 8) Mobile Safari/537.36", DeviceMobile},
		{"android tablet", "Mozilla/5.0 (Linux; Android 14; SM-X910) Safari/537.36", DeviceTablet},
		{"ipad", "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X)", DeviceTablet},
		{"desktop", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/127.0", DeviceDesktop},
		{"vazio", "", DeviceDesktop},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.nome, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ClassifyUserAgent(tc.ua))
		})
	}
}
