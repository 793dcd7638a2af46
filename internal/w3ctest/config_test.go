package w3ctest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaclgo/shacl/internal/w3ctest"
)

func TestLoadRunConfigStripsComments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{
		// only run the core suite
		"manifestRoots": ["core"],
		"skip": [
			// not yet supported by the optimizer pass
			"sparql-based-constraints"
		]
	}`), 0o644))

	cfg, err := w3ctest.LoadRunConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"core"}, cfg.ManifestRoots)
	assert.Equal(t, []string{"sparql-based-constraints"}, cfg.Skip)
}

func TestLoadRunConfigMissingFile(t *testing.T) {
	_, err := w3ctest.LoadRunConfig(filepath.Join(t.TempDir(), "missing.jsonc"))
	assert.Error(t, err)
}
