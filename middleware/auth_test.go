package middleware

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestExtractUserID(t *testing.T) {
	cases := []struct {
		name    string
		claims  jwt.MapClaims
		want    uint
		wantErr bool
	}{
		{"float64 from json", jwt.MapClaims{"id": float64(42)}, 42, false},
		{"numeric string", jwt.MapClaims{"id": "42"}, 42, false},
		{"uint", jwt.MapClaims{"id": uint(42)}, 42, false},
		{"int", jwt.MapClaims{"id": 42}, 42, false},
		{"missing", jwt.MapClaims{}, 0, true},
		{"non-numeric string", jwt.MapClaims{"id": "forty-two"}, 0, true},
		{"bool", jwt.MapClaims{"id": true}, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := extractUserID(tc.claims)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractRole(t *testing.T) {
	role, err := extractRole(jwt.MapClaims{"role": "vendor"})
	assert.NoError(t, err)
	assert.Equal(t, "vendor", role)

	_, err = extractRole(jwt.MapClaims{})
	assert.Error(t, err)

	_, err = extractRole(jwt.MapClaims{"role": 3})
	assert.Error(t, err)
}
