package posting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsActive(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsActive(now.Add(-23*time.Hour), now))
	assert.False(t, IsActive(now.Add(-25*time.Hour), now))
	assert.True(t, IsActive(now.Add(72*time.Hour), now))
}

func TestIsActiveBoundary(t *testing.T) {
	// Exactly 24h old counts as archived: active is strictly after
	// the cutoff, archived is on or before it, so every deadline lands
	// in exactly one of the two sets.
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-24 * time.Hour)

	assert.False(t, IsActive(cutoff, now))
	assert.True(t, IsActive(cutoff.Add(time.Nanosecond), now))
	assert.False(t, IsActive(cutoff.Add(-time.Nanosecond), now))
}

func TestArchiveCutoff(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(-24*time.Hour), ArchiveCutoff(now))
}
