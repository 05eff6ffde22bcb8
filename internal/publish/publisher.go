// Package publish writes rendered documents into a static hosting root
// so a generated site can be served or downloaded after the chat ends.
package publish

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Publisher persists rendered HTML artifacts below a configured root
// directory, one subdirectory per project.
type Publisher struct {
	root string
}

// NewPublisher builds a Publisher rooted at dir (default "published").
func NewPublisher(dir string) *Publisher {
	if dir == "" {
		dir = "published"
	}
	return &Publisher{root: dir}
}

// PublishSite writes the document as <root>/<projectID>/index.html and
// returns the site's path relative to the hosting root. The write goes
// through a temp file and rename so a concurrent reader never sees a
// half-written document.
func (p *Publisher) PublishSite(ctx context.Context, projectID, html string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	projectID = sanitizeProjectID(projectID)
	if projectID == "" {
		return "", fmt.Errorf("publish: empty project id")
	}

	siteDir := filepath.Join(p.root, projectID)
	if err := os.MkdirAll(siteDir, 0755); err != nil {
		return "", fmt.Errorf("publish: create site dir: %w", err)
	}

	tmp, err := os.CreateTemp(siteDir, "index-*.html")
	if err != nil {
		return "", fmt.Errorf("publish: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(html); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("publish: write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("publish: close temp file: %w", err)
	}

	target := filepath.Join(siteDir, "index.html")
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("publish: move document into place: %w", err)
	}

	log.Printf("published project %s to %s", projectID, target)
	return "/" + projectID + "/", nil
}

// sanitizeProjectID keeps the project id usable as a single directory
// name. Path separators and dot segments must not escape the root, and
// an id made of nothing but dots and dashes would resolve to the root
// itself, so it is rejected as empty.
func sanitizeProjectID(id string) string {
	id = strings.TrimSpace(id)
	id = strings.ReplaceAll(id, string(os.PathSeparator), "-")
	id = strings.ReplaceAll(id, "/", "-")
	id = strings.ReplaceAll(id, "..", "-")
	if strings.Trim(id, ".-") == "" {
		return ""
	}
	return id
}
