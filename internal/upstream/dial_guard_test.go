package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRejectNonPublicAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		allowed bool
	}{
		{name: "public v4", address: "93.184.216.34:443", allowed: true},
		{name: "public v6", address: "[2606:2800:220:1:248:1893:25c8:1946]:443", allowed: true},
		{name: "loopback", address: "127.0.0.1:80"},
		{name: "loopback v6", address: "[::1]:80"},
		{name: "rfc1918 10/8", address: "10.0.0.5:80"},
		{name: "rfc1918 172.16/12", address: "172.16.3.4:80"},
		{name: "rfc1918 192.168/16", address: "192.168.1.1:80"},
		{name: "metadata link-local", address: "169.254.169.254:80"},
		{name: "unique local v6", address: "[fd00::1]:80"},
		{name: "v4-mapped loopback", address: "[::ffff:127.0.0.1]:80"},
		{name: "shared address space", address: "100.64.0.1:80"},
		{name: "unspecified", address: "0.0.0.0:80"},
		{name: "not an ip", address: "localhost:80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RejectNonPublicAddress("tcp", tt.address, nil)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrImageHostNotAllowed)
			}
		})
	}
}
