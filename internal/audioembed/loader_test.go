// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package audioembed

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func writeGzipJSON(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "audio.json.gz")

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadKeyedForm(t *testing.T) {
	path := writeGzipJSON(t, `{"song_ids": [1, 2], "embeddings": [[1.0, 0.0], [0.0, 1.0]]}`)

	b, err := Load(path, "myna")
	if err != nil || b == nil {
		t.Fatalf("Load: (%v, %v)", b, err)
	}
	if b.Dim() != 2 {
		t.Fatalf("Dim() = %d, want 2", b.Dim())
	}
	row, ok := b.RowByID(2)
	if !ok || row[1] != 1.0 {
		t.Fatalf("RowByID(2) = (%v, %v)", row, ok)
	}
	if b.Tag() != "myna" {
		t.Fatalf("Tag() = %q, want myna", b.Tag())
	}
}

func TestLoadFlatForm(t *testing.T) {
	path := writeGzipJSON(t, `{"1": [0.5, 0.5], "2": [1.0, 0.0]}`)

	b, err := Load(path, "cnn")
	if err != nil || b == nil {
		t.Fatalf("Load: (%v, %v)", b, err)
	}
	if !b.Has(1) || !b.Has(2) {
		t.Fatal("expected both ids present")
	}
}

func TestLoadShapeMismatchIsAbsent(t *testing.T) {
	path := writeGzipJSON(t, `{"song_ids": [1, 2], "embeddings": [[1.0, 0.0]]}`)

	b, err := Load(path, "myna")
	if err != nil || b != nil {
		t.Fatalf("Load = (%v, %v), want (nil, nil) on shape mismatch", b, err)
	}
}

func TestLoadMissingPathIsAbsent(t *testing.T) {
	b, err := Load(filepath.Join(t.TempDir(), "missing.json.gz"), "myna")
	if err != nil || b != nil {
		t.Fatalf("Load(missing) = (%v, %v), want (nil, nil)", b, err)
	}
}
