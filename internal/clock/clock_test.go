package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bengobox/clock-service/internal/clock"
)

func TestSystem(t *testing.T) {
	before := time.Now()
	got := clock.System{}.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestFixed(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC)
	c := clock.Fixed{At: at}

	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now())
}

func TestFunc(t *testing.T) {
	calls := 0
	c := clock.Func(func() time.Time {
		calls++
		return time.Unix(int64(calls), 0)
	})

	assert.Equal(t, int64(1), c.Now().Unix())
	assert.Equal(t, int64(2), c.Now().Unix())
}
