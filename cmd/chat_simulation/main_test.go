package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestSimulation_ArgumentMessages(t *testing.T) {
	out := run(t, "", "--seed", "5", "--cart-count", "2", "hello", "what is in my cart?")

	assert.Contains(t, out, "YOU: hello")
	assert.Contains(t, out, "[greeting]")
	assert.Contains(t, out, "You have 2 items in your cart")
}

func TestSimulation_StoreContext(t *testing.T) {
	out := run(t, "", "--store", "4", "tell me about this store")

	assert.Contains(t, out, "Browsing: Page Turner Books")
	assert.Contains(t, out, "You're browsing Page Turner Books")
}

func TestSimulation_Interactive(t *testing.T) {
	out := run(t, "show me laptops\n\nexit\nnever sent\n")

	assert.Contains(t, out, "YOU: show me laptops")
	assert.NotContains(t, out, "never sent")
}

func TestSimulation_Script(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nany deals today?\n\n"), 0o644))

	out := run(t, "", "--script", path)
	assert.Contains(t, out, "[pricing]")
	assert.Equal(t, 1, strings.Count(out, "YOU:"))
}

func TestSimulation_UnknownStore(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--store", "99", "hi"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
