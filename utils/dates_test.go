package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSameDayMonth(t *testing.T) {
	birth := time.Date(1990, time.March, 15, 8, 0, 0, 0, time.UTC)

	require.True(t, SameDayMonth(birth, time.Date(2026, time.March, 15, 23, 0, 0, 0, time.UTC)))
	require.False(t, SameDayMonth(birth, time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC)))
	require.False(t, SameDayMonth(birth, time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC)))
}
