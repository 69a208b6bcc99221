// Package fs provides file-based persistence for scrape runs.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/nyhetsindex"
)

// Ensure SnapshotWriter implements nyhetsindex.SnapshotWriter at compile
// time.
var _ nyhetsindex.SnapshotWriter = (*SnapshotWriter)(nil)

// SnapshotWriter writes each scrape run as a pretty-printed JSON array
// to a fixed path, for audit and debugging. The pipeline never reads the
// snapshot back.
type SnapshotWriter struct {
	path string
}

// NewSnapshotWriter creates a SnapshotWriter targeting the given path.
func NewSnapshotWriter(path string) *SnapshotWriter {
	return &SnapshotWriter{path: path}
}

// WriteSnapshot replaces the snapshot file with the given articles.
// The write is atomic: a temporary file is renamed into place.
func (w *SnapshotWriter) WriteSnapshot(ctx context.Context, articles []*nyhetsindex.Article) error {
	if articles == nil {
		articles = []*nyhetsindex.Article{}
	}

	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), w.path)
}
