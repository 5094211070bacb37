package stopwords

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	s := New("the\nAnd \n\n  OF\n")

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	for _, w := range []string{"the", "and", "of"} {
		if !s.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
	if s.Contains("hello") {
		t.Error("Contains(hello) = true, want false")
	}
}

func TestDefault(t *testing.T) {
	s := Default()
	if s.Len() == 0 {
		t.Fatal("default set is empty")
	}
	// Spot-check a few entries from the bundled list.
	for _, w := range []string{"the", "hai", "kya"} {
		if !s.Contains(w) {
			t.Errorf("default set missing %q", w)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.txt")
	if err := os.WriteFile(path, []byte("foo\nbar\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !s.Contains("foo") || !s.Contains("bar") {
		t.Error("loaded set missing entries")
	}
}

func TestLoad_MissingFileIsFatal(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}
