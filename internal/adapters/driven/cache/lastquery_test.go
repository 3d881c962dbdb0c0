package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLastQueryStore(t *testing.T) {
	t.Run("recall after remember returns the query", func(t *testing.T) {
		s := NewLastQueryStore()

		s.Remember(7, "island")

		got, ok := s.Recall(7)
		assert.True(t, ok)
		assert.Equal(t, "island", got)
	})

	t.Run("recall for an unknown user is absent", func(t *testing.T) {
		s := NewLastQueryStore()

		_, ok := s.Recall(42)

		assert.False(t, ok)
	})

	t.Run("remember overwrites", func(t *testing.T) {
		s := NewLastQueryStore()

		s.Remember(7, "island")
		s.Remember(7, "mountain")

		got, _ := s.Recall(7)
		assert.Equal(t, "mountain", got)
	})

	t.Run("concurrent access is safe", func(t *testing.T) {
		s := NewLastQueryStore()

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(id int64) {
				defer wg.Done()
				s.Remember(id, "swamp")
				s.Recall(id)
			}(int64(i % 4))
		}
		wg.Wait()

		got, ok := s.Recall(0)
		assert.True(t, ok)
		assert.Equal(t, "swamp", got)
	})
}
