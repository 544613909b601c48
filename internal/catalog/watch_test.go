package catalog

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loadResult struct {
	cat *Catalog
	err error
}

func TestWatchReloadsOnWrite(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, chipCatalog)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := make(chan loadResult, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(cat *Catalog, err error) {
			results <- loadResult{cat: cat, err: err}
		})
	}()

	first := next(t, results)
	require.NoError(t, first.err)
	assert.Equal(t, "chip", first.cat.Components[0].Name)

	require.NoError(t, os.WriteFile(path, []byte("version: \"1.0\"\ncomponents:\n  - name: badge2\n"), 0o644))
	var reloaded loadResult
	require.Eventually(t, func() bool {
		select {
		case reloaded = <-results:
			return reloaded.err == nil && reloaded.cat.Components[0].Name == "badge2"
		default:
			return false
		}
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("version: [\n"), 0o644))
	require.Eventually(t, func() bool {
		select {
		case r := <-results:
			return r.err != nil
		default:
			return false
		}
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func next(t *testing.T, results <-chan loadResult) loadResult {
	t.Helper()

	select {
	case r := <-results:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for catalog load")
		return loadResult{}
	}
}
