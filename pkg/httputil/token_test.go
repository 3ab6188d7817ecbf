package httputil

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetTokenFromRequest(t *testing.T) {
	t.Run("bearer header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/move", nil)
		r.Header.Set("Authorization", "Bearer abc")

		token, err := GetTokenFromRequest(r)
		require.NoError(t, err)
		require.Equal(t, "abc", token)
	})

	t.Run("raw header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/move", nil)
		r.Header.Set("Authorization", "abc")

		token, err := GetTokenFromRequest(r)
		require.NoError(t, err)
		require.Equal(t, "abc", token)
	})

	t.Run("query fallback", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/ws?token=xyz", nil)

		token, err := GetTokenFromRequest(r)
		require.NoError(t, err)
		require.Equal(t, "xyz", token)
	})

	t.Run("missing", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/move", nil)

		_, err := GetTokenFromRequest(r)
		require.ErrorIs(t, err, ErrNoToken)
	})
}
