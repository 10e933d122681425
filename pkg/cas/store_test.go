package cas

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/pion/logging"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	t.Run("put and get", func(t *testing.T) {
		s, err := NewStore(Config{})
		require.NoError(t, err)

		c, err := s.Put([]byte("hello world"))
		require.NoError(t, err)
		require.Equal(t, helloWorldCID, c.String())
		require.True(t, s.Has(c))

		data, err := s.Get(c)
		require.NoError(t, err)
		require.Equal(t, []byte("hello world"), data)
	})

	t.Run("dedup", func(t *testing.T) {
		s, err := NewStore(Config{})
		require.NoError(t, err)

		first, err := s.Put([]byte("same bytes"))
		require.NoError(t, err)
		second, err := s.Put([]byte("same bytes"))
		require.NoError(t, err)

		require.True(t, first.Equals(second))
		require.Equal(t, 1, s.Len())
	})

	t.Run("miss", func(t *testing.T) {
		s, err := NewStore(Config{})
		require.NoError(t, err)

		c, err := CID([]byte("never stored"))
		require.NoError(t, err)
		require.False(t, s.Has(c))

		_, err = s.Get(c)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("remove", func(t *testing.T) {
		s, err := NewStore(Config{})
		require.NoError(t, err)

		c, err := s.Put([]byte("short lived"))
		require.NoError(t, err)
		require.True(t, s.Remove(c))
		require.False(t, s.Remove(c))
		require.Equal(t, 0, s.Len())
	})

	t.Run("caller cannot mutate stored block", func(t *testing.T) {
		s, err := NewStore(Config{})
		require.NoError(t, err)

		data := []byte("immutable")
		c, err := s.Put(data)
		require.NoError(t, err)
		data[0] = 'X'

		got, err := s.Get(c)
		require.NoError(t, err)
		got[1] = 'Y'

		again, err := s.Get(c)
		require.NoError(t, err)
		require.Equal(t, []byte("immutable"), again)
	})

	t.Run("invalid capacity", func(t *testing.T) {
		_, err := NewStore(Config{Capacity: -1})
		require.ErrorIs(t, err, ErrInvalidCapacity)
	})
}

func TestStoreEviction(t *testing.T) {
	var out bytes.Buffer
	factory := &logging.DefaultLoggerFactory{
		Writer:          &out,
		DefaultLogLevel: logging.LogLevelDebug,
		ScopeLevels:     map[string]logging.LogLevel{},
	}

	s, err := NewStore(Config{Capacity: 2, LoggerFactory: factory})
	require.NoError(t, err)

	a, err := s.Put([]byte("a"))
	require.NoError(t, err)
	b, err := s.Put([]byte("b"))
	require.NoError(t, err)

	// Touch a so b is the least recently used.
	_, err = s.Get(a)
	require.NoError(t, err)

	c, err := s.Put([]byte("c"))
	require.NoError(t, err)

	require.Equal(t, 2, s.Len())
	require.True(t, s.Has(a))
	require.False(t, s.Has(b))
	require.True(t, s.Has(c))
	require.Contains(t, out.String(), "evicted block "+b.String())
}

func TestStoreConcurrentPut(t *testing.T) {
	s, err := NewStore(Config{})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = s.Put([]byte(fmt.Sprintf("block %d", j)))
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 50, s.Len())
	for j := 0; j < 50; j++ {
		c, err := CID([]byte(fmt.Sprintf("block %d", j)))
		require.NoError(t, err)
		data, err := s.Get(c)
		require.NoError(t, err)
		require.Equal(t, fmt.Sprintf("block %d", j), string(data))
	}
}

func TestStoreDuplicatePutRefreshesRecency(t *testing.T) {
	s, err := NewStore(Config{Capacity: 2})
	require.NoError(t, err)

	a, err := s.Put([]byte("a"))
	require.NoError(t, err)
	b, err := s.Put([]byte("b"))
	require.NoError(t, err)

	// Re-putting a makes b the least recently used.
	again, err := s.Put([]byte("a"))
	require.NoError(t, err)
	require.True(t, again.Equals(a))

	c, err := s.Put([]byte("c"))
	require.NoError(t, err)

	require.Equal(t, 2, s.Len())
	require.True(t, s.Has(a))
	require.False(t, s.Has(b))
	require.True(t, s.Has(c))
}
