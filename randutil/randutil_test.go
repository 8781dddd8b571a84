package randutil

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func read(t *testing.T, r io.Reader, n int) []byte {
	t.Helper()
	buf := make([]byte, n)
	_, err := io.ReadFull(r, buf)
	require.NoError(t, err)
	return buf
}

func TestSeeded(t *testing.T) {
	t.Run("Reproducible", func(t *testing.T) {
		a := read(t, Seeded(42), 256)
		b := read(t, Seeded(42), 256)
		assert.Equal(t, a, b)
	})

	t.Run("SeedsDiffer", func(t *testing.T) {
		a := read(t, Seeded(42), 64)
		b := read(t, Seeded(43), 64)
		assert.NotEqual(t, a, b)
	})

	t.Run("ChunkingInvariant", func(t *testing.T) {
		whole := read(t, Seeded(7), 100)

		r := Seeded(7)
		var parts []byte
		for _, n := range []int{1, 31, 64, 4} {
			parts = append(parts, read(t, r, n)...)
		}
		assert.Equal(t, whole, parts)
	})
}

func TestDefault(t *testing.T) {
	a := read(t, Default(), 32)
	b := read(t, Default(), 32)
	assert.False(t, bytes.Equal(a, b))
}

func TestLocked(t *testing.T) {
	const workers, chunk = 8, 64

	r := Locked(Seeded(1))
	assert.Same(t, r, Locked(r), "Locked should not wrap twice")

	var wg sync.WaitGroup
	out := make([][]byte, workers)
	for i := range out {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			buf := make([]byte, chunk)
			_, err := r.Read(buf)
			assert.NoError(t, err)
			out[i] = buf
		}(i)
	}
	wg.Wait()

	// Every chunk must be one of the contiguous chunks of the stream.
	want := read(t, Seeded(1), workers*chunk)
	seen := make(map[string]bool)
	for i := 0; i < workers; i++ {
		seen[string(want[i*chunk:(i+1)*chunk])] = true
	}
	for _, got := range out {
		assert.True(t, seen[string(got)], "chunk is not aligned to the stream")
	}
}
