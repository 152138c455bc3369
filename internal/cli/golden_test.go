package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()

	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestStatsGolden(t *testing.T) {
	run := runner(t)

	out, err := run("stats")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "stats_empty", []byte(out))

	_, err = run("add", "Ada", "90000", "E1")
	require.NoError(t, err)
	_, err = run("add", "Bo", "50000", "E2")
	require.NoError(t, err)

	out, err = run("stats")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "stats", []byte(out))
}
