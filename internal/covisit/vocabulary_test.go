// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package covisit

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathIsAbsent(t *testing.T) {
	v, err := Load("")
	if err != nil || v != nil {
		t.Fatalf("Load(\"\") = (%v, %v), want (nil, nil)", v, err)
	}
}

func TestLoadMissingFileIsAbsent(t *testing.T) {
	v, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil || v != nil {
		t.Fatalf("Load(missing) = (%v, %v), want (nil, nil)", v, err)
	}
}

func TestNeighboursSortedDescending(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.json")
	content := `{"1": [{"key": "2", "score": 0.4}, {"key": "3", "score": 0.9}, {"key": "4", "score": 0.6}]}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	v, err := Load(path)
	if err != nil || v == nil {
		t.Fatalf("Load: (%v, %v)", v, err)
	}

	got, ok := v.Neighbours("1", 2)
	if !ok {
		t.Fatal("key 1 should be present")
	}
	if len(got) != 2 || got[0].Key != "3" || got[1].Key != "4" {
		t.Fatalf("Neighbours(1, 2) = %+v, want [3 4] by descending score", got)
	}

	if _, ok := v.Neighbours("unknown", 5); ok {
		t.Fatal("unknown key should report false")
	}
}

func TestNilVocabularyIsSafe(t *testing.T) {
	var v *Vocabulary
	if v.Has("1") {
		t.Fatal("nil vocabulary must report Has == false")
	}
	if _, ok := v.Neighbours("1", 5); ok {
		t.Fatal("nil vocabulary must report Neighbours ok == false")
	}
}
