package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/capsule/internal/displayname"
	"github.com/alexisbeaulieu97/capsule/internal/ui/components"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
	capsuleerrors "github.com/alexisbeaulieu97/capsule/pkg/errors"
)

func TestBuildCoversEveryStory(t *testing.T) {
	t.Parallel()

	r := components.Builtin(displayname.Config{})
	snap, err := Build(r)
	require.NoError(t, err)

	require.Len(t, snap, len(r.Names()))
	for _, entry := range r.Entries() {
		assert.Len(t, snap[entry.Name], len(entry.Stories), entry.Name)
	}
	assert.Equal(t, components.ButtonSpec.MustResolve(nil), snap["Button"]["default"])
	assert.Equal(t,
		components.ButtonSpec.MustResolve(variant.Selection{"variant": "danger", "size": "lg"}),
		snap["Button"]["danger"],
	)
}

func TestMarshalIsStableAndParses(t *testing.T) {
	t.Parallel()

	snap, err := Build(components.Builtin(displayname.Config{}))
	require.NoError(t, err)

	first, err := snap.Marshal()
	require.NoError(t, err)
	second, err := snap.Marshal()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(string(first), "Avatar:\n"), string(first[:40]))

	parsed, err := Parse("snapshot.yaml", first)
	require.NoError(t, err)
	assert.Equal(t, snap, parsed)

	_, err = Parse("snapshot.yaml", []byte("Button: [oops"))
	var parseErr *capsuleerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestCompareReportsClassDrift(t *testing.T) {
	t.Parallel()

	before := Snapshot{"Chip": {"default": "inline-flex px-3", "small": "inline-flex px-2"}}
	after := Snapshot{"Chip": {"default": "inline-flex px-4", "small": "inline-flex px-2"}}

	a, err := before.Marshal()
	require.NoError(t, err)
	b, err := after.Marshal()
	require.NoError(t, err)

	out, stats := Compare(a, b, "HEAD", "working tree")
	assert.Contains(t, out, "-  default: inline-flex px-3\n")
	assert.Contains(t, out, "+  default: inline-flex px-4\n")
	assert.Equal(t, 1, stats.Added)
	assert.Equal(t, 1, stats.Removed)

	out, stats = Compare(a, a, "HEAD", "working tree")
	assert.Empty(t, out)
	assert.False(t, stats.Changed())
}

func TestWriteCreatesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, Write(path, Snapshot{"Chip": {"default": "px-2"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Chip:\n  default: px-2\n", string(data))
}

func TestFromGitReadsCommittedRevisions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	commit := func(contents, message string) {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "testdata"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "testdata", "snapshot.yaml"), []byte(contents), 0o644))
		_, err := wt.Add("testdata/snapshot.yaml")
		require.NoError(t, err)
		_, err = wt.Commit(message, &git.CommitOptions{
			Author: &object.Signature{Name: "Capsule", Email: "capsule@example.com", When: time.Now()},
		})
		require.NoError(t, err)
	}
	commit("Chip:\n  default: px-3\n", "first")
	commit("Chip:\n  default: px-4\n", "second")

	head, err := FromGit(dir, "HEAD", "testdata/snapshot.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Chip:\n  default: px-4\n", string(head))

	previous, err := FromGit(filepath.Join(dir, "testdata"), "HEAD~1", filepath.Join(dir, "testdata", "snapshot.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Chip:\n  default: px-3\n", string(previous))

	_, err = FromGit(dir, "HEAD", "missing.yaml")
	require.ErrorIs(t, err, object.ErrFileNotFound)

	_, err = FromGit(dir, "no-such-branch", "testdata/snapshot.yaml")
	require.Error(t, err)

	_, err = FromGit(t.TempDir(), "HEAD", "snapshot.yaml")
	require.ErrorIs(t, err, git.ErrRepositoryNotExists)
}
