package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedIDGeneratorSequence(t *testing.T) {
	gen := NewFixedIDGenerator("test")
	assert.Equal(t, "test-0001", gen.Generate())
	assert.Equal(t, "test-0002", gen.Generate())

	gen.Reset()
	assert.Equal(t, "test-0001", gen.Generate())
}

func TestFixedIDGeneratorDefaultPrefix(t *testing.T) {
	gen := NewFixedIDGenerator("")
	assert.Equal(t, "obs-0001", gen.Generate())
}

func TestFixedIDGeneratorConcurrent(t *testing.T) {
	gen := NewFixedIDGenerator("c")
	var wg sync.WaitGroup
	seen := make(chan string, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- gen.Generate()
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[string]struct{})
	for id := range seen {
		unique[id] = struct{}{}
	}
	assert.Len(t, unique, 100)
}
