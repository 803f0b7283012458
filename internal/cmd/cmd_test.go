package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const guide = `# Guide

:::warning Important Notice
Be careful.
:::

:::tip
Just a tip.
:::

:::unknown
x
:::
`

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	err := run(args, strings.NewReader(stdin), &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRewriteStdin(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, ":::info Title\nbody\n:::\n", "rewrite")
	require.NoError(t, err)

	assert.Equal(t, "<div class=\"custom-block info\">\n<p class=\"custom-block-title\">Title</p>\nbody\n</div>\n", out)
}

func TestRewriteWrite(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "guide.md", guide)

	out, status, err := execute(t, "", "rewrite", "--write", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, status, "rewritten")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<div class="custom-block warning">`)
	assert.Contains(t, string(data), ":::unknown")

	_, status, err = execute(t, "", "rewrite", "-w", path)
	require.NoError(t, err)
	assert.Contains(t, status, "unchanged")
}

func TestRewriteWriteStdin(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "x", "rewrite", "--write")
	assert.ErrorIs(t, err, errWriteStdin)
}

func TestRewritePipe(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "doc.md", ":::note\nx\n:::\n")

	out, _, err := execute(t, "", "rewrite", path, "--", `read -r first; echo "got: $first"`)
	require.NoError(t, err)
	assert.Equal(t, "got: <div class=\"custom-block note\">\n", out)

	_, _, err = execute(t, "", "rewrite", path, "--", "exit 3")
	assert.EqualError(t, err, "command exited with 3")

	_, _, err = execute(t, "", "rewrite", path, "--")
	assert.ErrorIs(t, err, errMissingCommand)
}

func TestRewriteTooManyArgs(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "rewrite", "a.md", "b.md")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, ":::tip Hi\nSome **bold**.\n:::\n", "render")
	require.NoError(t, err)
	assert.Contains(t, out, `<div class="custom-block tip">`)
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.NotContains(t, out, "<html>")

	out, _, err = execute(t, "# Doc\n", "render", "--page", "--no-heading-ids")
	require.NoError(t, err)
	assert.Contains(t, out, "<title>Doc</title>")
	assert.Contains(t, out, "<h1>Doc</h1>")
}

func TestRenderOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "doc.md", ":::danger\nx\n:::\n")
	output := filepath.Join(dir, "doc.html")

	out, _, err := execute(t, "", "render", "-o", output, path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<div class="custom-block danger">`)
}

func TestList(t *testing.T) {
	t.Parallel()

	out, status, err := execute(t, guide, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Important Notice")
	assert.Contains(t, out, "3-5")
	assert.Contains(t, out, "7-9")
	assert.NotContains(t, out, "unknown")
	assert.Contains(t, status, "2 block(s)")

	out, _, err = execute(t, guide, "list", "--type", "warn*")
	require.NoError(t, err)
	assert.Contains(t, out, "warning")
	assert.NotContains(t, out, "tip")

	_, _, err = execute(t, guide, "list", "--type", "[")
	assert.Error(t, err)
}

func TestListQuiet(t *testing.T) {
	t.Parallel()

	_, status, err := execute(t, guide, "list", "-q")
	require.NoError(t, err)
	assert.Empty(t, status)
}

func TestCheck(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeFile(t, dir, "good.md", ":::tip\nx\n:::\n")
	bad := writeFile(t, dir, "bad.md", guide+"\n:::info\nopen\n")

	out, status, err := execute(t, "", "check", good)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, status, "no issues found")

	out, _, err = execute(t, "", "check", good, bad)
	assert.EqualError(t, err, "3 issue(s) found")
	assert.Contains(t, out, bad+":11: unknown block type: :::unknown")
	assert.Contains(t, out, bad+":13: closing fence outside of a block: :::")
	assert.Contains(t, out, bad+":15: unterminated block: :::info")
}

func TestBuildCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "docs")
	output := filepath.Join(dir, "site")

	writeFile(t, input, "index.md", guide)
	writeFile(t, input, "sub/page.md", ":::highlight\nx\n:::\n")
	cfg := writeFile(t, dir, "mdcallout.yaml", "input: "+input+"\noutput: "+output+"\nlog_level: error\n")

	_, status, err := execute(t, "", "build", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, status, "built 2 file(s): 3 block(s), 2 issue(s), 0 failed")

	data, err := os.ReadFile(filepath.Join(output, "sub", "page.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `<div class="custom-block highlight">`)
}

func TestBuildInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := writeFile(t, t.TempDir(), "mdcallout.yaml", "workers: 0\n")

	_, _, err := execute(t, "", "build", "-c", cfg)
	assert.Error(t, err)
}
