// Package gold implements golden files.
package gold

import (
	"flag"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const defaultDir = "_golden"

// Update reports whether golden files update is requested.
//
// Call Init() in TestMain to propagate.
var Update bool

// Init should be called in TestMain.
func Init() {
	flag.BoolVar(&Update, "update", false, "update golden files")
}

// Path returns path to golden file.
func Path(elems ...string) string {
	return filepath.Join(
		append([]string{defaultDir}, elems...)...,
	)
}

// ReadFile reads golden file.
func ReadFile(t testing.TB, elems ...string) []byte {
	t.Helper()

	p := Path(elems...)
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("golden file %s: %+v", path.Join(elems...), err)
	}

	return data
}

func writeFile(t testing.TB, data []byte, elems ...string) {
	t.Helper()

	p := Path(elems...)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
	require.NoError(t, os.WriteFile(p, data, 0o644))
}

// Bytes checks data against golden file, updating it when -update is set.
func Bytes(t testing.TB, data []byte, elems ...string) {
	t.Helper()
	require.NotEmpty(t, elems, "golden file name required")

	elems[len(elems)-1] += ".raw"
	if Update {
		writeFile(t, data, elems...)
	}

	expected := ReadFile(t, elems...)
	require.Equal(t, expected, data, "golden file mismatch")
}

// Str checks s against golden file, updating it when -update is set.
func Str(t testing.TB, s string, elems ...string) {
	t.Helper()
	require.NotEmpty(t, elems, "golden file name required")

	if Update {
		writeFile(t, []byte(s), elems...)
	}

	expected := ReadFile(t, elems...)
	require.Equal(t, string(expected), s, "golden file mismatch")
}
