package scraper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRandomPacer_Bounds(t *testing.T) {
	p := RandomPacer{Min: 10 * time.Millisecond, Max: 20 * time.Millisecond}
	for i := 0; i < 100; i++ {
		d := p.next()
		assert.GreaterOrEqual(t, d, p.Min)
		assert.Less(t, d, p.Max)
	}

	fixed := RandomPacer{Min: 5 * time.Millisecond, Max: time.Millisecond}
	assert.Equal(t, 5*time.Millisecond, fixed.next())
}

func TestRandomPacer_Wait(t *testing.T) {
	start := time.Now()
	err := RandomPacer{Min: 5 * time.Millisecond}.Wait(context.Background())
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, RandomPacer{Min: time.Hour}.Wait(ctx), context.Canceled)
}

func TestFixedPacer(t *testing.T) {
	assert.Equal(t, NoPause, FixedPacer(0))
	assert.Equal(t, RandomPacer{Min: time.Second, Max: time.Second}, FixedPacer(time.Second))
	assert.NoError(t, NoPause.Wait(context.Background()))
}
