package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// plainStorage hides the Updater implementation of the wrapped storage.
type plainStorage struct{ Storage }

func TestUpdate_UsesUpdaterWhenAvailable(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()
	require.NoError(t, m.Set(ctx, "k", []byte("a")))

	err := Update(ctx, m, "k", func(cur []byte) ([]byte, error) {
		return append(cur, 'b'), nil
	})
	require.NoError(t, err)

	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("ab"), v)
}

func TestUpdate_FallsBackToGetSet(t *testing.T) {
	ctx := context.Background()
	s := plainStorage{NewMemoryStorage()}

	err := Update(ctx, s, "k", func(cur []byte) ([]byte, error) {
		require.Nil(t, cur)
		return []byte("fresh"), nil
	})
	require.NoError(t, err)

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("fresh"), v)
}

func TestUpdate_FnErrorLeavesValue(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	for name, s := range map[string]Storage{
		"updater": NewMemoryStorage(),
		"plain":   plainStorage{NewMemoryStorage()},
	} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set(ctx, "k", []byte("keep")))
			err := Update(ctx, s, "k", func([]byte) ([]byte, error) { return nil, boom })
			require.ErrorIs(t, err, boom)

			v, err := s.Get(ctx, "k")
			require.NoError(t, err)
			require.Equal(t, []byte("keep"), v)
		})
	}
}
