package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroroute/mapfile"
)

const metro = "../../mapfile/testdata/metro.yaml"

func runCLI(args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI()
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "usage:")

	code, _, stderr = runCLI("teleport")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, `unknown command "teleport"`)

	code, stdout, _ := runCLI("help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "metroroute route")
}

func TestRun_Route(t *testing.T) {
	code, stdout, stderr := runCLI("route", "-map", metro, "-from", "3", "-to", "7")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "route: 3 -> 1 -> 4 -> 5 -> 7\n")
	assert.Contains(t, stdout, "stops: Urquinaona [L1] > Catalunya [L1] > Catalunya [L3] > Liceu [L3] > Drassanes [L3]\n")
	assert.Contains(t, stdout, "cost: 230 (astar, time)\n")
}

func TestRun_RouteTraceAndNoRoute(t *testing.T) {
	code, stdout, _ := runCLI("route", "-map", metro, "-from", "3", "-to", "7", "-algorithm", "bfs", "-trace")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "expand 3  g=0 h=0\n")

	code, stdout, _ = runCLI("route", "-map", metro, "-from", "7", "-to", "3")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "no route from 7 to 3")
}

func TestRun_RouteErrors(t *testing.T) {
	code, _, _ := runCLI("route", "-from", "1", "-to", "2")
	assert.Equal(t, exitUsage, code)

	code, _, stderr := runCLI("route", "-map", metro, "-from", "1", "-to", "2", "-algorithm", "dijkstra")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "unknown strategy")

	code, _, stderr = runCLI("route", "-map", metro, "-from", "1", "-to", "42")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "station not found")
}

func TestRun_Generate(t *testing.T) {
	code, stdout, stderr := runCLI("generate", "-rows", "2", "-cols", "3", "-seed", "4")
	require.Equal(t, exitOK, code, stderr)

	m, err := mapfile.Decode(bytes.NewBufferString(stdout))
	require.NoError(t, err)
	assert.Equal(t, 12, m.StationCount())
	assert.True(t, m.SameStop(0, 6))

	code, _, _ = runCLI("generate", "-rows", "1", "-cols", "3")
	assert.Equal(t, exitError, code)
}

func TestRun_GenerateToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "grid.yaml")
	code, stdout, stderr := runCLI("generate", "-rows", "2", "-cols", "2", "-out", out)
	require.Equal(t, exitOK, code, stderr)
	assert.Empty(t, stdout)

	m, err := mapfile.Load(out)
	require.NoError(t, err)
	assert.Equal(t, 8, m.StationCount())

	code, _, stderr = runCLI("generate", "-rows", "2", "-cols", "2", "-out", filepath.Join(t.TempDir(), "missing", "grid.yaml"))
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "no such file")

	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestRun_ServeNeedsMap(t *testing.T) {
	t.Setenv("METROROUTE_MAP", "")
	code, _, stderr := runCLI("serve")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "METROROUTE_MAP")
}
