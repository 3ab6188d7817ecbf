package uid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRequestID(t *testing.T) {
	a, b := NewRequestID(), NewRequestID()

	require.NotEqual(t, a, b)
	require.Len(t, a, 36)
	require.True(t, IsRequestID(a))
	require.False(t, IsRequestID("not-an-id"))
}
