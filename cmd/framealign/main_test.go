package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/framealign/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err = root.Execute()

	return out.String(), errOut.String(), err
}

func writeText(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func writeFrame(t *testing.T, dir, name string, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}
	fh, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	require.NoError(t, png.Encode(fh, img))
	require.NoError(t, fh.Close())
}

func TestLines_Text(t *testing.T) {
	dir := t.TempDir()
	a := writeText(t, dir, "a.txt", "intro\ncut\nscene\ncredits\n")
	b := writeText(t, dir, "b.txt", "intro\nscene\nextra\ncredits\n")

	out, logs, err := execute(t, "lines", a, b, "--log-level", "debug")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "3 perfect, 0 match, 1 insertion, 1 deletion, 2 gap runs")
	assert.Equal(t, "PDPIP", lines[1])
	assert.Equal(t, []string{"DELETION", "cut", "-"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"INSERTION", "-", "extra"}, strings.Fields(lines[5]))

	assert.Contains(t, logs, "run_id=")
	assert.Contains(t, logs, "msg=aligned")
	assert.Contains(t, logs, "msg=\"anchors found\"")
}

func TestLines_JSONAndMetrics(t *testing.T) {
	dir := t.TempDir()
	a := writeText(t, dir, "a.txt", "x\ny\nz\n")
	b := writeText(t, dir, "b.txt", "x\nz\n")
	metrics := filepath.Join(dir, "metrics.prom")

	out, _, err := execute(t, "lines", a, b, "--format", "json", "--metrics-out", metrics, "--log-format", "json")
	require.NoError(t, err)

	var rep struct {
		RunID  string         `json:"run_id"`
		Script string         `json:"script"`
		Counts map[string]int `json:"counts"`
		Rows   []struct {
			A    int    `json:"a"`
			B    int    `json:"b"`
			Op   string `json:"op"`
			From string `json:"from"`
			To   string `json:"to"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "PDP", rep.Script)
	assert.Len(t, rep.RunID, 36)
	assert.Equal(t, 2, rep.Counts["PERFECT"])
	require.Len(t, rep.Rows, 3)
	assert.Equal(t, "DELETION", rep.Rows[1].Op)
	assert.Equal(t, 1, rep.Rows[1].A)
	assert.Equal(t, -1, rep.Rows[1].B)
	assert.Equal(t, "y", rep.Rows[1].From)
	assert.Empty(t, rep.Rows[1].To)

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `framealign_alignments_total{result="ok",run_id="`+rep.RunID+`"} 1`)
	assert.Contains(t, string(prom), "framealign_anchors_total")
}

func TestLines_NoDivide(t *testing.T) {
	dir := t.TempDir()
	a := writeText(t, dir, "a.txt", "A\nA\nG\nG\nT\nA\nG\nC\nA\nC\nG\nT\n")
	b := writeText(t, dir, "b.txt", "A\nA\nA\nA\nG\nG\nT\nA\nC\nG\nT\n")

	out, logs, err := execute(t, "lines", a, b, "--no-divide", "--gap-open=-0.5", "--gap-extension=0", "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, "IIPPPPPDDDPPPP", strings.Split(out, "\n")[1])
	assert.NotContains(t, logs, "anchors found")
}

func TestFrames_WithCache(t *testing.T) {
	dirA, dirB, cache, tmp := t.TempDir(), t.TempDir(), t.TempDir(), t.TempDir()
	for k, c := range []color.Color{color.White, color.Black, color.RGBA{R: 255, A: 255}, color.RGBA{B: 255, A: 255}} {
		writeFrame(t, dirA, "f"+string(rune('0'+k))+".png", c)
	}
	for k, c := range []color.Color{color.White, color.RGBA{R: 255, A: 255}, color.RGBA{B: 255, A: 255}} {
		writeFrame(t, dirB, "f"+string(rune('0'+k))+".png", c)
	}
	metrics := filepath.Join(tmp, "m.prom")

	for run := 0; run < 2; run++ {
		out, _, err := execute(t, "frames", dirA, dirB, "--metric", "equal", "--cache-dir", cache, "--metrics-out", metrics)
		require.NoError(t, err)
		assert.Equal(t, "PDPP", strings.Split(out, "\n")[1])
		assert.Contains(t, out, filepath.Join(dirA, "f1.png"))

		prom, err := os.ReadFile(metrics)
		require.NoError(t, err)
		if run == 0 {
			assert.Contains(t, string(prom), `outcome="miss"`)
			assert.Regexp(t, `framealign_digest_cache_lookups\{outcome="hit",run_id="[^"]+"\} 0`, string(prom))
		} else {
			assert.Regexp(t, `framealign_digest_cache_lookups\{outcome="hit",run_id="[^"]+"\} 7`, string(prom))
		}
	}
}

func TestFrames_Perceptual(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()
	writeFrame(t, dirA, "1.png", color.White)
	writeFrame(t, dirA, "2.jpg.txt", color.Black)
	writeFrame(t, dirB, "1.png", color.White)

	out, _, err := execute(t, "frames", dirA, dirB, "--metric", "perceptual", "--hash-kind", "average", "--formats", "png")
	require.NoError(t, err)
	assert.Equal(t, "P", strings.Split(out, "\n")[1])
}

func TestConfigFileAndErrors(t *testing.T) {
	dir := t.TempDir()
	a := writeText(t, dir, "a.txt", "x\n")
	cfg := writeText(t, dir, "fa.yaml", "output: xml\n")

	_, _, err := execute(t, "lines", a, a, "--config", cfg)
	assert.ErrorIs(t, err, config.ErrInvalid)

	cfg = writeText(t, dir, "ok.yaml", "output: json\n")
	out, _, err := execute(t, "lines", a, a, "--config", cfg)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"))

	_, _, err = execute(t, "lines", a, filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "frames", dir)
	assert.Error(t, err)

	_, _, err = execute(t, "lines", a, a, "--log-level", "chatty")
	assert.Error(t, err)
}
