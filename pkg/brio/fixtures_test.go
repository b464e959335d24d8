package brio

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

// TestFixtures runs every program under testdata/fixtures through both
// back-ends, requires their outputs to agree, and snapshots the result.
func TestFixtures(t *testing.T) {
	pattern := filepath.Join("..", "..", "testdata", "fixtures", "*.brio")
	files, err := filepath.Glob(pattern)
	require.NoError(t, err)
	require.NotEmpty(t, files, "no fixture programs found under testdata/fixtures")

	sort.Strings(files)

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".brio")
		t.Run(name, func(t *testing.T) {
			content, err := os.ReadFile(file)
			require.NoError(t, err)
			source := string(content)

			var interpreted strings.Builder
			engine, err := New(WithOutput(&interpreted))
			require.NoError(t, err)
			require.NoError(t, engine.Interpret(source), "interpreter failed on %s", file)

			var executed strings.Builder
			engine, err = New(WithOutput(&executed))
			require.NoError(t, err)
			require.NoError(t, engine.CompileAndRun(source), "vm failed on %s", file)

			require.Equal(t, interpreted.String(), executed.String(),
				"back-ends disagree on %s", file)

			snaps.MatchSnapshot(t, interpreted.String())
		})
	}
}

func TestMain(m *testing.M) {
	code := m.Run()
	snaps.Clean(m)
	os.Exit(code)
}
