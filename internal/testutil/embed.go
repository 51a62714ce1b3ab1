// Package testutil holds input files and expected renderings shared by the
// command-line tests.
package testutil

import (
	"embed"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestdataFS holds the embedded test data files.
//
//go:embed testdata
var TestdataFS embed.FS

// Read returns the content of an embedded test file, failing t if it does
// not exist.
func Read(t testing.TB, name string) string {
	t.Helper()
	data, err := fs.ReadFile(TestdataFS, "testdata/"+name)
	require.NoError(t, err, "reading test data file %q", name)
	return string(data)
}
