package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = "two1nine\neightwothree\nabcone2threexyz\nxtwone3four\n4nineeightseven2\nzoneight234\n7pqrstsixteen\n"

// run executes the CLI with args and stdin, returning stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{"TREBUCHET_MODE", "TREBUCHET_NORMALIZE", "TREBUCHET_LOG_LEVEL", "TREBUCHET_LOG_FORMAT", "TREBUCHET_OCR_LANG"} {
		t.Setenv(key, "")
	}

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSum_Stdin(t *testing.T) {
	out, _, err := run(t, sampleDoc, "sum")
	require.NoError(t, err)
	assert.Equal(t, "281\n", out)
}

func TestSum_Legacy(t *testing.T) {
	out, _, err := run(t, "1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet\n", "sum", "--legacy")
	require.NoError(t, err)
	assert.Equal(t, "142\n", out)
}

func TestSum_LegacyFromEnv(t *testing.T) {
	path := writeFile(t, "input.txt", sampleDoc)
	env := writeFile(t, "cli.env", "TREBUCHET_MODE=legacy\n")
	t.Cleanup(func() { os.Unsetenv("TREBUCHET_MODE") })

	for _, key := range []string{"TREBUCHET_MODE", "TREBUCHET_NORMALIZE", "TREBUCHET_LOG_LEVEL", "TREBUCHET_LOG_FORMAT", "TREBUCHET_OCR_LANG"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--env-file", env, "sum", path})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "209\n", stdout.String())
}

func TestSum_MultipleFiles(t *testing.T) {
	a := writeFile(t, "a.txt", "twone\n")
	b := writeFile(t, "b.html", "<html><body><p>eightwo</p></body></html>")

	out, _, err := run(t, "", "sum", a, b)
	require.NoError(t, err)
	assert.Equal(t, a+"\t21\n"+b+"\t82\ntotal\t103\n", out)
}

func TestSum_Normalize(t *testing.T) {
	out, _, err := run(t, "ａ１ｂ２\n", "sum", "--normalize")
	require.NoError(t, err)
	assert.Equal(t, "12\n", out)
}

func TestSum_ForcedFormat(t *testing.T) {
	out, _, err := run(t, "<html><body><p>one</p></body></html>", "sum", "--format", "text")
	require.NoError(t, err)
	// Scanned as raw text: "html", "body" and "p" tags hold no digits, "one" does.
	assert.Equal(t, "11\n", out)
}

func TestSum_MissingFile(t *testing.T) {
	_, stderr, err := run(t, "", "sum", "/nonexistent/input.txt")
	assert.Error(t, err)
	assert.Contains(t, stderr, "/nonexistent/input.txt")
}

func TestSum_UnknownFormat(t *testing.T) {
	_, stderr, err := run(t, "", "sum", "--format", "pdf")
	assert.Error(t, err)
	assert.Contains(t, stderr, "unknown format")
}

func TestSum_VerboseLogs(t *testing.T) {
	_, stderr, err := run(t, "one\nnothing\n", "sum", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "calibrated document")
	assert.Contains(t, stderr, "total=11")
}

func TestLines(t *testing.T) {
	out, stderr, err := run(t, "twone\nnothing\n7\n", "lines")
	require.NoError(t, err)
	assert.Equal(t, "1\t21\ttwone\n2\t0\tnothing\n3\t77\t7\n", out)
	assert.Contains(t, stderr, "no digit found")
	assert.Contains(t, stderr, "line=2")
}

func TestLines_TooManyArgs(t *testing.T) {
	_, _, err := run(t, "", "lines", "a", "b")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "trebuchet "+version+"\n", out)
}
