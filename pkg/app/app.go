// Package app wires the application together: the durable store, the
// vocabulary deck, the review engine, the lookup gateway and the user's
// kana preference live on one explicit context object instead of package
// globals, so a UI (the CLI here) holds exactly one handle.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/kashinote/kashinote/pkg/kana"
	"github.com/kashinote/kashinote/pkg/kv"
	"github.com/kashinote/kashinote/pkg/lookup"
	"github.com/kashinote/kashinote/pkg/review"
	"github.com/kashinote/kashinote/pkg/speech"
	"github.com/kashinote/kashinote/pkg/tokenize"
	"github.com/kashinote/kashinote/pkg/vocab"
)

// HiraganaKey is the kv key holding the kana preference as a
// boolean-in-a-string. Anything but "false" (including a missing key)
// means hiragana readings.
const HiraganaKey = "kashinote.hiragana"

// App is the application context.
type App struct {
	KV       kv.Store
	Store    *vocab.Store
	Engine   *review.Engine
	Lookup   *lookup.Gateway
	Analyzer *tokenize.Analyzer
	Speaker  speech.Speaker

	useHiragana bool
}

// New loads the deck and preferences from db and returns a ready context.
// gateway, analyzer and speaker may be nil when the caller does not need
// lookups, tokenization or speech.
func New(db kv.Store, gateway *lookup.Gateway, analyzer *tokenize.Analyzer, speaker speech.Speaker) (*App, error) {
	store := vocab.NewStore(db, "")
	if err := store.Load(); err != nil {
		return nil, err
	}
	if speaker == nil {
		speaker = speech.NopSpeaker{}
	}
	a := &App{
		KV:       db,
		Store:    store,
		Engine:   review.NewEngine(store),
		Lookup:   gateway,
		Analyzer: analyzer,
		Speaker:  speaker,
	}
	raw, ok, err := db.Get(HiraganaKey)
	if err != nil {
		return nil, err
	}
	a.useHiragana = !ok || raw != "false"
	return a, nil
}

// UseHiragana reports whether readings are displayed in hiragana.
func (a *App) UseHiragana() bool { return a.useHiragana }

// SetUseHiragana updates and persists the kana preference. The in-memory
// preference is updated even when persisting fails.
func (a *App) SetUseHiragana(v bool) error {
	a.useHiragana = v
	value := "true"
	if !v {
		value = "false"
	}
	if err := a.KV.Set(HiraganaKey, value); err != nil {
		return fmt.Errorf("%w: write kana preference: %v", vocab.ErrPersistence, err)
	}
	return nil
}

// DisplayReading converts a tokenizer reading (katakana) to the user's
// selected kana script.
func (a *App) DisplayReading(reading string) string {
	if a.useHiragana {
		return kana.ToHiragana(reading)
	}
	return reading
}

// ReadingFor returns the display reading for a token, falling back to the
// surface when the tokenizer produced none (common for rare words).
func (a *App) ReadingFor(tok tokenize.Token) string {
	if tok.Reading == "" {
		return a.DisplayReading(tok.Surface)
	}
	return a.DisplayReading(tok.Reading)
}

// SaveToken looks up the token's base form and commits it to the deck.
// The stored reading is in the currently selected kana script; it is not
// re-derived when the preference later changes. Returns the saved entry,
// or vocab.ErrDuplicateWord when the surface word is already saved.
func (a *App) SaveToken(ctx context.Context, tok tokenize.Token) (*vocab.Entry, error) {
	meaning := ""
	if a.Lookup != nil {
		meaning = a.Lookup.Lookup(ctx, tok.BaseForm)
	}
	entry := &vocab.Entry{
		Word:         tok.Surface,
		Reading:      a.ReadingFor(tok),
		PartOfSpeech: tok.PartOfSpeech,
		BaseForm:     tok.BaseForm,
		Meaning:      meaning,
	}
	if err := a.Store.Add(entry); err != nil {
		if errors.Is(err, vocab.ErrPersistence) {
			// Saved in memory; report the warning alongside the entry.
			return entry, err
		}
		return nil, err
	}
	return entry, nil
}
