package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadgrid/search"
)

// run executes the root command with args and captures both streams.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// writeFile writes content under a fresh temp dir and returns the path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const openMap = "...\n...\n...\n"

const splitMap = `..#..
..#..
..#..
..#..
..#..
`

func TestRoute(t *testing.T) {
	mapPath := writeFile(t, "open.txt", openMap)
	geo := filepath.Join(t.TempDir(), "route.geojson")

	stdout, _, err := run(t, "route", mapPath, "--from", "0,0", "--to", "2,2", "--tier", "urgent", "--geojson", geo, "--path")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Route found with A* Algorithm")
	assert.Contains(t, stdout, "2.8284")
	assert.Contains(t, stdout, "[(0, 0) (1, 1) (2, 2)]")
	assert.Contains(t, stdout, geo)

	data, err := os.ReadFile(geo)
	require.NoError(t, err)
	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	require.Len(t, fc.Features, 3)
	assert.Equal(t, "astar", fc.Features[0].Properties.MustString("strategy"))
}

func TestRoute_DefaultStrategyFromConfig(t *testing.T) {
	mapPath := writeFile(t, "open.txt", openMap)

	stdout, _, err := run(t, "route", mapPath, "--from", "0,0", "--to", "2,0")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Dijkstra's Algorithm")

	cfg := writeFile(t, "roadgrid.toml", "[routing]\ntier = \"routine\"\n")
	stdout, _, err = run(t, "--config", cfg, "route", mapPath, "--from", "0,0", "--to", "2,0")
	require.NoError(t, err)
	assert.Contains(t, stdout, "BFS Algorithm")

	stdout, _, err = run(t, "--config", cfg, "route", mapPath, "--from", "0,0", "--to", "2,0", "--strategy", "a*")
	require.NoError(t, err)
	assert.Contains(t, stdout, "A* Algorithm")
}

func TestRoute_NoPath(t *testing.T) {
	mapPath := writeFile(t, "split.map", splitMap)

	stdout, _, err := run(t, "route", mapPath, "--from", "0,0", "--to", "4,4", "--strategy", "bfs")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No route from (0, 0) to (4, 4)")
}

func TestRoute_Errors(t *testing.T) {
	mapPath := writeFile(t, "split.map", splitMap)

	_, _, err := run(t, "route", mapPath, "--from", "2,2", "--to", "0,0")
	assert.ErrorIs(t, err, search.ErrStartNotFound)

	_, _, err = run(t, "route", mapPath, "--from", "0,0", "--to", "zz")
	assert.ErrorContains(t, err, "invalid point")

	_, _, err = run(t, "route", mapPath, "--from", "0,0", "--to", "1,1", "--strategy", "greedy")
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)

	_, _, err = run(t, "route", mapPath, "--from", "0,0", "--to", "1,1", "--tier", "urgent", "--strategy", "bfs")
	assert.Error(t, err, "tier and strategy are exclusive")

	_, _, err = run(t, "route", mapPath, "--to", "1,1")
	assert.ErrorContains(t, err, "from")

	_, _, err = run(t, "route", filepath.Join(t.TempDir(), "none.txt"), "--from", "0,0", "--to", "1,1")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStats(t *testing.T) {
	mapPath := writeFile(t, "split.map", splitMap)

	stdout, _, err := run(t, "stats", mapPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "5×5")
	assert.Contains(t, stdout, "components")
	for _, line := range strings.Split(stdout, "\n") {
		if strings.HasPrefix(line, "components") {
			assert.True(t, strings.HasSuffix(strings.TrimSpace(line), "2"), line)
		}
		if strings.HasPrefix(line, "nodes") {
			assert.True(t, strings.HasSuffix(strings.TrimSpace(line), "20"), line)
		}
	}
}

const dispatchConfig = `
[depot]
x = 0
y = 0

[log]
level = "info"
format = "logfmt"

[[incidents]]
x = 1
y = 4
tier = "routine"
description = "pothole"

[[incidents]]
x = 4
y = 4
tier = "urgent"
description = "stranded"

[[incidents]]
x = 2
y = 2
tier = "urgent"
description = "inside wall"
`

func TestDispatch(t *testing.T) {
	mapPath := writeFile(t, "split.map", splitMap)
	cfg := writeFile(t, "roadgrid.toml", dispatchConfig)

	stdout, stderr, err := run(t, "--config", cfg, "dispatch", mapPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, `skipped "inside wall"`)
	assert.Contains(t, stdout, "stranded at (4, 4) unreachable (A* Algorithm)")
	assert.Contains(t, stdout, "pothole at (1, 4) via BFS Algorithm")
	assert.Contains(t, stderr, "incident resolved")

	stdout, _, err = run(t, "--config", cfg, "dispatch", mapPath, "--nearest", "0,3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pothole")
	assert.NotContains(t, stdout, "stranded at")
}

func TestDispatch_NoDepot(t *testing.T) {
	mapPath := writeFile(t, "split.map", splitMap)

	_, _, err := run(t, "dispatch", mapPath)
	assert.ErrorIs(t, err, errNoDepotConfigured)

	_, _, err = run(t, "dispatch", mapPath, "--depot", "0,0", "--nearest", "1,1")
	assert.ErrorContains(t, err, "no open incidents")
}

func TestVerbose(t *testing.T) {
	mapPath := writeFile(t, "open.txt", openMap)

	_, stderr, err := run(t, "-v", "stats", mapPath)
	require.NoError(t, err)
	assert.Contains(t, stderr, "graph built")

	_, stderr, err = run(t, "stats", mapPath)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "graph built")
}

func TestBadConfig(t *testing.T) {
	mapPath := writeFile(t, "open.txt", openMap)
	cfg := writeFile(t, "bad.toml", "[classifier]\nthreshold = 999\n")

	_, _, err := run(t, "--config", cfg, "stats", mapPath)
	assert.ErrorContains(t, err, "classifier.threshold")
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	defer SetVersion("", "", "")

	stdout, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "roadgrid 1.0.0")
	assert.Contains(t, stdout, "commit: abc123")
}
