package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunIntervalDefault(t *testing.T) {
	t.Setenv("LATE_FINE_INTERVAL_HOURS", "")
	assert.Equal(t, 24*time.Hour, runInterval())
}

func TestRunIntervalFromEnv(t *testing.T) {
	t.Setenv("LATE_FINE_INTERVAL_HOURS", "6")
	assert.Equal(t, 6*time.Hour, runInterval())
}
