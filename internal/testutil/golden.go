package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// GoldenString compares got against testdata/<name>.golden.
// Setting GOLDEN_UPDATE rewrites the golden file instead.
func GoldenString(t *testing.T, name string, got string) {
	t.Helper()

	goldenPath := filepath.Join("testdata", name+".golden")

	if os.Getenv("GOLDEN_UPDATE") != "" {
		require.NoError(t, os.MkdirAll("testdata", 0755))
		require.NoError(t, os.WriteFile(goldenPath, []byte(got), 0644))
		return
	}

	want, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "failed to read golden file %s", goldenPath)
	assert.Equal(t, string(want), got, "output mismatch for %s", name)
}
