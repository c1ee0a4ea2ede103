package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopics(t *testing.T) {
	topics := Topics()
	assert.Equal(t, []string{"command-line", "packages", "suffixes"}, topics)
}

func TestSource(t *testing.T) {
	source, err := Source("suffixes")
	require.NoError(t, err)
	assert.Contains(t, source, "# Suffixes")
	assert.Contains(t, source, "hybrid kk omp")
}

func TestSourceUnknownTopic(t *testing.T) {
	_, err := Source("nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown doc topic nonexistent")
	assert.Contains(t, err.Error(), "command-line")
}

func TestRender(t *testing.T) {
	rendered, err := Render("packages")
	require.NoError(t, err)
	assert.Contains(t, rendered, "KOKKOS")
	assert.Contains(t, rendered, "Accelerator packages")
}

func TestRenderUnknownTopic(t *testing.T) {
	_, err := Render("nope")
	require.Error(t, err)
}
