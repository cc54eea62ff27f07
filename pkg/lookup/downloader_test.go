package lookup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureJMdict_LocalCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jmdict-test.json")
	content := []byte(`{"words":[]}`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	// The file exists, so EnsureJMdict must return immediately without
	// touching the network or the file.
	if err := EnsureJMdict(context.Background(), path); err != nil {
		t.Fatalf("EnsureJMdict failed with local file: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reread: %v", err)
	}
	if string(got) != string(content) {
		t.Fatalf("cached file was modified: %q", got)
	}
}
