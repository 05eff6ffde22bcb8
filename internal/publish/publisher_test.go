package publish_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen_server/internal/publish"
)

func TestPublishSiteWritesDocument(t *testing.T) {
	root := t.TempDir()
	p := publish.NewPublisher(root)

	url, err := p.PublishSite(context.Background(), "projekt-1", "<!DOCTYPE html><html></html>")
	require.NoError(t, err)
	assert.Equal(t, "/projekt-1/", url)

	data, err := os.ReadFile(filepath.Join(root, "projekt-1", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")
}

func TestPublishSiteOverwritesExisting(t *testing.T) {
	root := t.TempDir()
	p := publish.NewPublisher(root)
	ctx := context.Background()

	_, err := p.PublishSite(ctx, "projekt-1", "erste Version")
	require.NoError(t, err)
	_, err = p.PublishSite(ctx, "projekt-1", "zweite Version")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "projekt-1", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "zweite Version", string(data))
}

func TestPublishSiteSanitizesProjectID(t *testing.T) {
	root := t.TempDir()
	p := publish.NewPublisher(root)

	_, err := p.PublishSite(context.Background(), "../böse/../id", "inhalt")
	require.NoError(t, err)

	// Nothing may be written outside the publish root.
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), "..")
}

func TestPublishSiteEmptyProjectID(t *testing.T) {
	p := publish.NewPublisher(t.TempDir())
	_, err := p.PublishSite(context.Background(), "   ", "inhalt")
	assert.Error(t, err)
}

func TestPublishSiteRejectsDotOnlyProjectID(t *testing.T) {
	root := t.TempDir()
	p := publish.NewPublisher(root)
	ctx := context.Background()

	// Ids resolving to the publish root itself must not place
	// index.html there.
	for _, id := range []string{".", "..", "...", "-", ".-."} {
		_, err := p.PublishSite(ctx, id, "inhalt")
		assert.Error(t, err, "id %q", id)
	}

	_, err := os.Stat(filepath.Join(root, "index.html"))
	assert.True(t, os.IsNotExist(err))
}
