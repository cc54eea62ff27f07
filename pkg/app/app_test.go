package app

import (
	"context"
	"errors"
	"testing"

	"github.com/kashinote/kashinote/pkg/kv"
	"github.com/kashinote/kashinote/pkg/tokenize"
	"github.com/kashinote/kashinote/pkg/vocab"
)

func newApp(t *testing.T) (*App, *kv.MemoryStore) {
	t.Helper()
	mem := kv.NewMemoryStore()
	a, err := New(mem, nil, nil, nil)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return a, mem
}

func TestKanaPreferenceDefaultsToHiragana(t *testing.T) {
	a, _ := newApp(t)
	if !a.UseHiragana() {
		t.Fatal("expected hiragana default")
	}
	if got := a.DisplayReading("ネコ"); got != "ねこ" {
		t.Errorf("DisplayReading = %q, want ねこ", got)
	}
}

func TestKanaPreferencePersists(t *testing.T) {
	a, mem := newApp(t)
	if err := a.SetUseHiragana(false); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := a.DisplayReading("ネコ"); got != "ネコ" {
		t.Errorf("katakana mode should keep readings, got %q", got)
	}

	reopened, err := New(mem, nil, nil, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.UseHiragana() {
		t.Fatal("preference did not survive reopen")
	}
}

func TestSaveToken(t *testing.T) {
	a, _ := newApp(t)
	tok := tokenize.Token{Surface: "行っ", BaseForm: "行く", Reading: "イッ", PartOfSpeech: "動詞"}
	entry, err := a.SaveToken(context.Background(), tok)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if entry.Word != "行っ" || entry.BaseForm != "行く" {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if entry.Reading != "いっ" {
		t.Errorf("reading = %q, want hiragana いっ", entry.Reading)
	}
	if entry.AddedAt.IsZero() {
		t.Error("AddedAt not stamped")
	}

	if _, err := a.SaveToken(context.Background(), tok); !errors.Is(err, vocab.ErrDuplicateWord) {
		t.Fatalf("expected ErrDuplicateWord, got %v", err)
	}
	if a.Store.Len() != 1 {
		t.Fatalf("duplicate save changed the deck")
	}
}

func TestSaveTokenReadingFallsBackToSurface(t *testing.T) {
	a, _ := newApp(t)
	tok := tokenize.Token{Surface: "ライブ", BaseForm: "ライブ"}
	entry, err := a.SaveToken(context.Background(), tok)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if entry.Reading != "らいぶ" {
		t.Errorf("reading = %q, want らいぶ", entry.Reading)
	}
}

func TestSaveTokenPersistenceWarning(t *testing.T) {
	a, mem := newApp(t)
	mem.FailSets = errors.New("quota")
	entry, err := a.SaveToken(context.Background(), tokenize.Token{Surface: "海", BaseForm: "海"})
	if !errors.Is(err, vocab.ErrPersistence) {
		t.Fatalf("expected persistence warning, got %v", err)
	}
	if entry == nil {
		t.Fatal("entry should still be returned on a persistence warning")
	}
	if a.Store.Len() != 1 {
		t.Fatal("entry lost from memory")
	}
}
