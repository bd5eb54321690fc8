package cache

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetThenGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.json")
	c := New(path)

	_, found := c.Get("missing")
	require.False(t, found)

	require.NoError(t, c.Set("1_0xABC_token", "value"))
	v, found := c.Get("1_0xabc_TOKEN")
	require.True(t, found)
	require.Equal(t, "value", v)

	// a second cache on the same file sees the stored value
	v, found = New(path).Get("1_0xabc_token")
	require.True(t, found)
	require.Equal(t, "value", v)
}

func TestCorruptedFileIsIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	c := New(path)
	_, found := c.Get("anything")
	require.False(t, found)
	require.NoError(t, c.Set("k", "v"))

	v, found := New(path).Get("k")
	require.True(t, found)
	require.Equal(t, "v", v)
}

func TestConcurrentSet(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "cache.json"))
	var wg sync.WaitGroup
	for _, k := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func(k string) {
			defer wg.Done()
			require.NoError(t, c.Set(k, k))
		}(k)
	}
	wg.Wait()
	for _, k := range []string{"a", "b", "c", "d"} {
		v, found := c.Get(k)
		require.True(t, found)
		require.Equal(t, k, v)
	}
}
