package main_test

import (
	"context"
	"database/sql"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Builds the CLI and exercises the save/list/review-less flows fully
// offline (no Jisho, no dictionary download).
func TestCLI_Offline(t *testing.T) {
	tmp := t.TempDir()
	dbPath := filepath.Join(tmp, "kashinote.db")
	bin := filepath.Join(tmp, "kashinote.bin")

	build := exec.Command("go", "build", "-o", bin, "github.com/kashinote/kashinote/cmd/kashinote")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("failed to build CLI: %v", err)
	}

	run := func(args ...string) string {
		t.Helper()
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		cmd := exec.CommandContext(ctx, bin, append([]string{"-db", dbPath, "-offline"}, args...)...)
		cmd.Dir = tmp
		out, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("cli %v failed: %v\noutput:\n%s", args, err, out)
		}
		return string(out)
	}

	out := run("-save", "愛")
	if !strings.Contains(out, "Saved 愛") {
		t.Fatalf("unexpected save output:\n%s", out)
	}
	// Built-in gloss layer works offline.
	if !strings.Contains(out, "love") {
		t.Fatalf("expected built-in gloss in output:\n%s", out)
	}

	out = run("-list")
	if !strings.Contains(out, "1 words") || !strings.Contains(out, "愛") {
		t.Fatalf("unexpected list output:\n%s", out)
	}

	// The deck landed in the kv table.
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer conn.Close()
	var value string
	if err := conn.QueryRow(`SELECT value FROM kv WHERE key = 'kashinote.vocab'`).Scan(&value); err != nil {
		t.Fatalf("query deck: %v", err)
	}
	if !strings.Contains(value, "愛") {
		t.Fatalf("deck json missing saved word: %s", value)
	}

	out = run("-remove-word", "愛")
	if !strings.Contains(out, "Removed") {
		t.Fatalf("unexpected remove output:\n%s", out)
	}
	out = run("-list")
	if !strings.Contains(out, "empty") {
		t.Fatalf("deck should be empty:\n%s", out)
	}
}

func TestCLI_AnnotateFile(t *testing.T) {
	tmp := t.TempDir()
	dbPath := filepath.Join(tmp, "kashinote.db")
	bin := filepath.Join(tmp, "kashinote.bin")

	build := exec.Command("go", "build", "-o", bin, "github.com/kashinote/kashinote/cmd/kashinote")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("failed to build CLI: %v", err)
	}

	lyrics := filepath.Join(tmp, "lyrics.txt")
	if err := os.WriteFile(lyrics, []byte("君を想う\n"), 0o644); err != nil {
		t.Fatalf("write lyrics: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	cmd := exec.CommandContext(ctx, bin, "-db", dbPath, "-offline", "-file", lyrics)
	cmd.Dir = tmp
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("cli failed: %v\noutput:\n%s", err, out)
	}
	// 君 should come out annotated with its hiragana reading.
	if !strings.Contains(string(out), "君(きみ)") {
		t.Fatalf("expected annotated reading in output:\n%s", out)
	}
}
