package cite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerCollectsInOrder(t *testing.T) {
	tracker := NewTracker(true)
	tracker.Add("kokkos", "Trott et al. (2022)")
	tracker.Add("omp", "Plimpton (1995)")

	entries := tracker.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "kokkos", entries[0].Key)
	assert.Equal(t, "omp", entries[1].Key)
}

func TestTrackerDeduplicates(t *testing.T) {
	tracker := NewTracker(true)
	tracker.Add("kokkos", "Trott et al. (2022)")
	tracker.Add("kokkos", "different text, same key")

	entries := tracker.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Trott et al. (2022)", entries[0].Reference)
}

func TestTrackerDisabled(t *testing.T) {
	tracker := NewTracker(false)
	assert.False(t, tracker.Enabled())

	tracker.Add("kokkos", "Trott et al. (2022)")
	assert.Empty(t, tracker.Entries())
	assert.Nil(t, tracker.Lines())
}

func TestTrackerIgnoresEmpty(t *testing.T) {
	tracker := NewTracker(true)
	tracker.Add("", "text")
	tracker.Add("key", "")
	assert.Empty(t, tracker.Entries())
}

func TestLines(t *testing.T) {
	tracker := NewTracker(true)
	assert.Nil(t, tracker.Lines())

	tracker.Add("omp", "Plimpton (1995)")
	lines := tracker.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "This run used features that request citation:", lines[0])
	assert.Equal(t, "  - Plimpton (1995)", lines[1])
}
