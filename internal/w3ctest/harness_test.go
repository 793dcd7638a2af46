package w3ctest_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaclgo/shacl/internal/w3ctest"
)

// writeFile is a small helper writing N-Triples fixtures under dir.
func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

// buildFixtureManifest lays out one manifest with a single passing entry and
// one expected-failure entry, the two shapes under test.
func buildFixtureManifest(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, dir, "shapes-ok.nt", `<http://ex/PersonShape> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/ns/shacl#NodeShape> .
<http://ex/PersonShape> <http://www.w3.org/ns/shacl#targetNode> <http://ex/alice> .
`)
	writeFile(t, dir, "data-ok.nt", `<http://ex/alice> <http://ex/name> "Alice" .
`)
	writeFile(t, dir, "shapes-bad.nt", `this is not valid n-triples
`)
	writeFile(t, dir, "data-bad.nt", `<http://ex/bob> <http://ex/name> "Bob" .
`)

	manifest := `<http://ex/manifest> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2001/sw/DataAccess/tests/test-manifest#Manifest> .
<http://ex/manifest> <http://www.w3.org/2001/sw/DataAccess/tests/test-manifest#entries> _:list0 .
_:list0 <http://www.w3.org/1999/02/22-rdf-syntax-ns#first> <http://ex/test-ok> .
_:list0 <http://www.w3.org/1999/02/22-rdf-syntax-ns#rest> _:list1 .
_:list1 <http://www.w3.org/1999/02/22-rdf-syntax-ns#first> <http://ex/test-bad> .
_:list1 <http://www.w3.org/1999/02/22-rdf-syntax-ns#rest> <http://www.w3.org/1999/02/22-rdf-syntax-ns#nil> .
<http://ex/test-ok> <http://www.w3.org/2001/sw/DataAccess/tests/test-manifest#name> "passes cleanly" .
<http://ex/test-ok> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/ns/shacl-test#Validate> .
<http://ex/test-ok> <http://www.w3.org/2001/sw/DataAccess/tests/test-manifest#action> _:action0 .
_:action0 <http://www.w3.org/ns/shacl-test#shapesGraph> <shapes-ok.nt> .
_:action0 <http://www.w3.org/ns/shacl-test#dataGraph> <data-ok.nt> .
<http://ex/test-ok> <http://www.w3.org/2001/sw/DataAccess/tests/test-manifest#result> <http://ex/result-ok> .
<http://ex/test-bad> <http://www.w3.org/2001/sw/DataAccess/tests/test-manifest#name> "expects a malformed shapes graph" .
<http://ex/test-bad> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/ns/shacl-test#Validate> .
<http://ex/test-bad> <http://www.w3.org/2001/sw/DataAccess/tests/test-manifest#action> _:action1 .
_:action1 <http://www.w3.org/ns/shacl-test#shapesGraph> <shapes-bad.nt> .
_:action1 <http://www.w3.org/ns/shacl-test#dataGraph> <data-bad.nt> .
<http://ex/test-bad> <http://www.w3.org/2001/sw/DataAccess/tests/test-manifest#result> <http://www.w3.org/ns/shacl-test#Failure> .
`
	return writeFile(t, dir, "manifest.nt", manifest)
}

func TestHarnessRunsManifestEntries(t *testing.T) {
	manifestPath := buildFixtureManifest(t)
	root := filepath.Dir(manifestPath)

	h := w3ctest.New(w3ctest.RunConfig{ManifestRoots: []string{root}})
	outcomes, err := h.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	passed, failed, skipped := w3ctest.Summary(outcomes)
	assert.Equal(t, 2, passed)
	assert.Equal(t, 0, failed)
	assert.Equal(t, 0, skipped)
}

func TestHarnessHonoursSkipList(t *testing.T) {
	manifestPath := buildFixtureManifest(t)
	root := filepath.Dir(manifestPath)

	h := w3ctest.New(w3ctest.RunConfig{
		ManifestRoots: []string{root},
		Skip:          []string{"passes cleanly"},
	})
	outcomes, err := h.Run(context.Background())
	require.NoError(t, err)

	passed, failed, skipped := w3ctest.Summary(outcomes)
	assert.Equal(t, 1, passed)
	assert.Equal(t, 0, failed)
	assert.Equal(t, 1, skipped)
}

func TestHarnessEmptyManifestRootIsNotAnError(t *testing.T) {
	h := w3ctest.New(w3ctest.RunConfig{ManifestRoots: []string{t.TempDir()}})
	outcomes, err := h.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}
