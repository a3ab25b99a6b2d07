package jitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	base := 2 * time.Second

	for i := 0; i < 100; i++ {
		got := Duration(base, DefaultJitter)
		assert.GreaterOrEqual(t, got, base)
		assert.LessOrEqual(t, got, 3*time.Second)
	}
}

func TestDurationZeroFactor(t *testing.T) {
	assert.Equal(t, time.Second, Duration(time.Second, 0))
}

func TestExponentialBackoff(t *testing.T) {
	base, max := 2*time.Second, 30*time.Second

	testCases := []struct {
		name    string
		attempt int
		wantMin time.Duration
	}{
		{name: "first attempt", attempt: 0, wantMin: 2 * time.Second},
		{name: "doubles", attempt: 2, wantMin: 8 * time.Second},
		{name: "capped", attempt: 10, wantMin: 30 * time.Second},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExponentialBackoff(base, max, tc.attempt, DefaultJitter)
			assert.GreaterOrEqual(t, got, tc.wantMin)
			// джиттер добавляется поверх капа
			assert.LessOrEqual(t, got, time.Duration(float64(tc.wantMin)*(1+DefaultJitter)))
		})
	}
}
