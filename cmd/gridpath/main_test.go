package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_FourWay(t *testing.T) {
	code, out, _ := runCLI(t, "S00\n000\n00E\n", "-verify")
	require.Equal(t, exitOK, code)

	assert.Contains(t, out, "  1. (0,0)")
	assert.Contains(t, out, "  5. (2,2)")
	assert.Contains(t, out, "length: 5 cells, 4 steps")
	assert.Contains(t, out, "cost: 4.000")
	assert.Contains(t, out, "diagonal moves: 0")
	assert.Contains(t, out, "cardinal moves: 4")
}

func TestRun_EightWay(t *testing.T) {
	code, out, _ := runCLI(t, "S00\n000\n00E\n", "-movement", "eight", "-verify")
	require.Equal(t, exitOK, code)

	assert.Contains(t, out, "cost: 2.828")
	assert.Contains(t, out, "diagonal moves: 2")
	assert.True(t, strings.HasSuffix(out, "S . .\n. P .\n. . E\n"))
}

func TestRun_LongPathTruncated(t *testing.T) {
	code, out, _ := runCLI(t, "S00000000000E\n")
	require.Equal(t, exitOK, code)

	assert.Contains(t, out, "     ...")
	assert.Contains(t, out, "  5. (0,4)")
	assert.NotContains(t, out, "  6. (0,5)")
	assert.Contains(t, out, "  9. (0,8)")
	assert.Contains(t, out, " 13. (0,12)")
}

func TestRun_NoPath(t *testing.T) {
	code, out, _ := runCLI(t, "S1\n1E\n", "-movement", "eight", "-verify")
	assert.Equal(t, exitNoPath, code)
	assert.Equal(t, "no path found\nclearing 1 obstacle(s) would connect S and E: (1,0)\n", out)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		log   string
	}{
		{"UnknownFlag", "", []string{"-nope"}, "flag provided but not defined"},
		{"UnknownMovement", "SE\n", []string{"-movement", "hex"}, "unknown movement"},
		{"BadMaze", "S#E\n", nil, "invalid cell value"},
		{"MissingFile", "", []string{"-maze", filepath.Join(t.TempDir(), "absent.txt")}, "load maze"},
		{"BadSize", "", []string{"-random", "10by10"}, "want RxC"},
		{"BadDensity", "", []string{"-random", "5x5", "-density", "1.5"}, "density"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tc.stdin, tc.args...)
			assert.Equal(t, exitFailure, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, tc.log)
		})
	}
}

func TestRun_MazeFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(name, []byte("S0\n0E\n"), 0o644))

	code, out, _ := runCLI(t, "", "-maze", name, "-movement", "8")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "cost: 1.414")
}

func TestRun_RandomIsReproducible(t *testing.T) {
	args := []string{"-random", "15x20", "-density", "0.2", "-seed", "42", "-movement", "eight", "-verify"}
	code1, out1, _ := runCLI(t, "", args...)
	code2, out2, _ := runCLI(t, "", args...)

	assert.Equal(t, code1, code2)
	assert.Equal(t, out1, out2)
	assert.Contains(t, []int{exitOK, exitNoPath}, code1)
}

func TestRun_Exports(t *testing.T) {
	dir := t.TempDir()
	pngName := filepath.Join(dir, "out.png")
	geoName := filepath.Join(dir, "out.geojson")

	code, _, _ := runCLI(t, "S01\n000\n10E\n",
		"-movement", "eight", "-png", pngName, "-scale", "4", "-geojson", geoName)
	require.Equal(t, exitOK, code)

	f, err := os.Open(pngName)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())

	raw, err := os.ReadFile(geoName)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "FeatureCollection", doc["type"])
}

func TestParseSize(t *testing.T) {
	r, c, err := parseSize("20X30")
	require.NoError(t, err)
	assert.Equal(t, 20, r)
	assert.Equal(t, 30, c)

	_, _, err = parseSize("20x")
	assert.Error(t, err)
}
