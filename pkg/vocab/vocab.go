// Package vocab holds the saved-word data model and the persistent
// vocabulary deck built on top of a kv.Store.
package vocab

import (
	"errors"
	"time"
)

// Outcome is the result of a single flashcard answer.
type Outcome string

const (
	OutcomeAgain Outcome = "again"
	OutcomeGood  Outcome = "good"
)

// ReviewRecord is one answer in an entry's review history.
type ReviewRecord struct {
	Date   time.Time `json:"date"`
	Result Outcome   `json:"result"`
}

// Entry is a saved word. Review fields are mutated only by the review
// engine; everything else is fixed at save time (Reading is the display
// reading in the kana script the user had selected, not re-derived).
type Entry struct {
	Word         string         `json:"word"`
	Reading      string         `json:"reading"`
	PartOfSpeech string         `json:"pos"`
	BaseForm     string         `json:"baseForm"`
	Meaning      string         `json:"meaning"`
	AddedAt      time.Time      `json:"addedAt"`
	ReviewCount  int            `json:"reviewCount,omitempty"`
	MasteryLevel int            `json:"masteryLevel,omitempty"`
	LastReviewed []ReviewRecord `json:"lastReviewed,omitempty"`
}

var (
	// ErrDuplicateWord is returned by Add when the deck already holds an
	// entry with the same surface word.
	ErrDuplicateWord = errors.New("word already in deck")

	// ErrIndexOutOfRange is returned by Remove for an invalid position.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrPersistence marks a failed durable read or write. Operations that
	// return it have still completed in memory; the in-memory state stays
	// authoritative for the rest of the process.
	ErrPersistence = errors.New("persistence failure")
)
