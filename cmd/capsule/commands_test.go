package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/capsule/internal/avatar"
	"github.com/alexisbeaulieu97/capsule/internal/tokens"
	"github.com/alexisbeaulieu97/capsule/internal/ui/components"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
	capsuleerrors "github.com/alexisbeaulieu97/capsule/pkg/errors"
)

const chipCatalog = `version: "1.0"
components:
  - name: chip
    level: molecule
    base: ["inline-flex", "rounded-full"]
    axes:
      - name: size
        options: { sm: "px-2 text-xs", md: "px-3 text-sm" }
    defaults: { size: md }
    stories:
      - name: small
        select: { size: sm }
        label: Chip
`

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestResolveCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand("resolve", "button")
	require.NoError(t, err)
	assert.Equal(t, components.ButtonSpec.MustResolve(nil)+"\n", stdout)

	stdout, _, err = executeCommand("resolve", "Button", "--set", "variant=danger", "--set", "size=lg", "--class", "w-40")
	require.NoError(t, err)
	want := components.ButtonSpec.MustResolve(variant.Selection{"variant": "danger", "size": "lg"}, "w-40")
	assert.Equal(t, want+"\n", stdout)
}

func TestResolveCommandErrors(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand("resolve", "carousel")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown component "carousel"`)
	assert.Contains(t, err.Error(), "capsule list")

	_, _, err = executeCommand("resolve", "button", "--set", "size")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed selection")

	_, _, err = executeCommand("resolve", "button", "--set", "size=huge")
	var invalid *capsuleerrors.InvalidVariantError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "size", invalid.Axis)
	assert.Equal(t, "huge", invalid.Value)

	_, _, err = executeCommand("resolve", "button", "--display-prefix", "sparkles")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown display prefix")
}

func TestRenderCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand("render", "switch", "--checked", "--label", "Wi-Fi")
	require.NoError(t, err)
	assert.Contains(t, stdout, `aria-checked="true"`)
	assert.Contains(t, stdout, "Wi-Fi")
	assert.NotContains(t, stdout, "data-component")

	stdout, _, err = executeCommand("render", "switch", "--display-prefix", "text")
	require.NoError(t, err)
	assert.Contains(t, stdout, `data-component="[Atom] Switch"`)
	assert.Contains(t, stdout, `aria-checked="false"`)

	stdout, _, err = executeCommand("render", "button", "--story", "disabled")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Disabled")
	assert.Contains(t, stdout, "disabled")

	_, _, err = executeCommand("render", "button", "--story", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Button has no story "missing"`)
}

func TestSafelistCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand("safelist", "divider")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Equal(t, components.DividerSpec.Safelist(), lines)

	all, _, err := executeCommand("safelist")
	require.NoError(t, err)
	assert.Greater(t, len(strings.Split(all, "\n")), len(lines))
	assert.Contains(t, all, "border-dashed\n")
}

func TestListCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand("list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "NAME")
	assert.Contains(t, stdout, "AXES")
	// Buffers are not terminals, so levels use the text prefix.
	assert.Contains(t, stdout, "[Atom]")
	assert.Contains(t, stdout, "orientation(horizontal|vertical)")
	assert.Contains(t, stdout, "orientation=horizontal variant=solid")
}

func TestListCommandJSON(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand("list", "--json")
	require.NoError(t, err)

	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	assert.Equal(t, 13, payload.Count)
	assert.Equal(t, "Button", payload.Components[0].Name)
	assert.Equal(t, "atom", payload.Components[0].Level)
}

func TestCatalogFlagAddsComponents(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "catalog.yaml", chipCatalog)

	stdout, _, err := executeCommand("list", "--catalog", path, "--display-prefix", "text")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[Molecule] chip")

	stdout, _, err = executeCommand("resolve", "chip", "--catalog", path, "--set", "size=sm")
	require.NoError(t, err)
	assert.Contains(t, stdout, "px-2")
	assert.NotContains(t, stdout, "px-3")

	_, _, err = executeCommand("resolve", "chip", "--catalog", filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *capsuleerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestValidateCommand(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "catalog.yaml", chipCatalog)
	stdout, _, err := executeCommand("validate", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "is valid (1 components)")

	stdout, _, err = executeCommand("validate", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "is valid")

	clash := writeFile(t, "clash.yaml", strings.Replace(chipCatalog, "name: chip", "name: badge", 1))
	_, _, err = executeCommand("validate", "-c", clash)
	var validationErr *capsuleerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "already registered")

	broken := writeFile(t, "broken.yaml", strings.Replace(chipCatalog, "size: md }", "size: xl }", 1))
	_, _, err = executeCommand("validate", "-c", broken)
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Field, "defaults.size")

	_, _, err = executeCommand("validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no catalog given")
}

func TestInitialsAndAvatarCommands(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand("initials", "sebastian", "vargas")
	require.NoError(t, err)
	assert.Equal(t, "SV\n", stdout)

	stdout, _, err = executeCommand("initials", "  ")
	require.NoError(t, err)
	assert.Equal(t, "?\n", stdout)

	stdout, _, err = executeCommand("avatar", "Bob Johnson")
	require.NoError(t, err)
	index := avatar.IndexFor("Bob Johnson", len(avatar.DefaultPalette))
	assert.Contains(t, stdout, "initials: BJ\n")
	assert.Contains(t, stdout, "colour: "+avatar.DefaultPalette[index]+"\n")
}

func TestTokensCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand("tokens", "--family", "primary")
	require.NoError(t, err)
	assert.Contains(t, stdout, "primary-500")
	assert.Contains(t, stdout, tokens.Default().MustColor("primary-500"))
	assert.NotContains(t, stdout, "accent-500")
	assert.NotContains(t, stdout, "rounded")

	overrides := writeFile(t, "theme.toml", "[colors.primary]\n500 = \"#123456\"\n")
	stdout, _, err = executeCommand("tokens", "--overrides", overrides)
	require.NoError(t, err)
	assert.Contains(t, stdout, "#123456")
	assert.Contains(t, stdout, "rounded-full")

	bad := writeFile(t, "bad.toml", "[colors.primary]\n500 = \"blue\"\n")
	_, _, err = executeCommand("tokens", "--overrides", bad)
	var validationErr *capsuleerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestPreviewCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand("preview", "badge")
	require.NoError(t, err)
	for _, story := range []string{"default", "success", "outline", "subtle", "large"} {
		assert.Contains(t, stdout, story+"\n")
	}
	assert.Contains(t, stdout, "Pending")

	stdout, _, err = executeCommand("preview", "badge", "--set", "size=lg", "--label", "99+")
	require.NoError(t, err)
	assert.Contains(t, stdout, "99+")
}

func TestStorybookRequiresTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("running attached to a terminal")
	}

	_, _, err := executeCommand("storybook")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a terminal")
}
