package hasher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndCompare(t *testing.T) {
	t.Parallel()

	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("pw123")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", hash)

	assert.NoError(t, h.Compare(hash, "pw123"))
	assert.ErrorIs(t, h.Compare(hash, "wrong"), bcrypt.ErrMismatchedHashAndPassword)
}

func TestBcrypt_Salted(t *testing.T) {
	t.Parallel()

	h := NewBcrypt(bcrypt.MinCost)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestNewBcrypt_Cost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   int
		want int
	}{
		{name: "configured", in: 12, want: 12},
		{name: "too low", in: 0, want: DefaultCost},
		{name: "too high", in: 99, want: DefaultCost},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NewBcrypt(tt.in).cost)
		})
	}
}

func TestBcrypt_CompareGarbageHash(t *testing.T) {
	t.Parallel()

	assert.Error(t, NewBcrypt(bcrypt.MinCost).Compare("not-a-hash", "pw"))
}
