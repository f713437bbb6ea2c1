package kv

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_GetSetRemove(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()

	v, err := m.Get(ctx, "absent")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, m.Set(ctx, "k", []byte("v1")))
	require.NoError(t, m.Set(ctx, "k", []byte("v2")))
	v, err = m.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), v)

	require.NoError(t, m.Remove(ctx, "k"))
	require.NoError(t, m.Remove(ctx, "k"))
	v, err = m.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)
	require.NoError(t, m.Close())
}

func TestMemoryStorage_ValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()

	in := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", in))
	in[0] = 'X'

	out, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), out)

	out[1] = 'Y'
	again, _ := m.Get(ctx, "k")
	require.Equal(t, []byte("abc"), again)
}

func TestMemoryStorage_ConcurrentUpdatesAreSerialised(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Update(ctx, "counter", func(cur []byte) ([]byte, error) {
				var c int
				if cur != nil {
					_, _ = fmt.Sscan(string(cur), &c)
				}
				return []byte(fmt.Sprint(c + 1)), nil
			})
		}()
	}
	wg.Wait()

	v, err := m.Get(ctx, "counter")
	require.NoError(t, err)
	require.Equal(t, fmt.Sprint(n), string(v))
}
