package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededRandomIsReproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestIntnStaysInRange(t *testing.T) {
	sources := map[string]Random{
		"crypto": New(),
		"seeded": NewSeeded(7),
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				v := src.Intn(10)
				assert.GreaterOrEqual(t, v, 0)
				assert.Less(t, v, 10)
			}
		})
	}
}

func TestIntnNonPositiveReturnsZero(t *testing.T) {
	assert.Equal(t, 0, New().Intn(0))
	assert.Equal(t, 0, NewSeeded(1).Intn(-3))
}
