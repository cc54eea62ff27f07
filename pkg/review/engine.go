// Package review drives flashcard sessions over the vocabulary deck.
//
// A session reviews a snapshot of the deck front to back. Answering
// "again" puts the same card back at the end of the queue; answering
// "good" raises its mastery level. Cards whose mastery level reaches the
// threshold during the session are collected and offered for removal when
// the session completes. This is deliberately a bounded counter over a
// requeueing array, not a scheduling SRS.
package review

import (
	"errors"
	"time"

	"github.com/kashinote/kashinote/pkg/vocab"
)

// MasteryThreshold is the cumulative "good" count at which a card is
// considered mastered and offered for removal.
const MasteryThreshold = 5

var (
	// ErrEmptyDeck is returned by StartSession when there is nothing to review.
	ErrEmptyDeck = errors.New("no words to review")

	// ErrNoSession is returned by card operations outside a session.
	ErrNoSession = errors.New("no review session in progress")

	// ErrSessionComplete is returned by card operations once the cursor has
	// passed the end of the queue; only EndSession is valid then.
	ErrSessionComplete = errors.New("review session complete")
)

// Report summarizes a naturally completed session.
type Report struct {
	// MasteredWords lists, in the order they crossed the threshold, the
	// distinct words that reached mastery this session.
	MasteredWords []string
	Count         int
}

type session struct {
	queue  []*vocab.Entry
	cursor int
	// total is the queue length at session start. Requeues grow the queue
	// but never total, so progress shown against it is a lower bound.
	total    int
	mastered []*vocab.Entry
}

// Engine is the review state machine. It is single-threaded by design:
// each operation runs to completion before the next, matching the
// one-user-action-at-a-time flow it serves.
type Engine struct {
	store   *vocab.Store
	sess    *session
	pending []*vocab.Entry // mastered set of the last completed session
	now     func() time.Time
}

// NewEngine creates an idle engine over store.
func NewEngine(store *vocab.Store) *Engine {
	return &Engine{store: store, now: time.Now}
}

// InSession reports whether a session is active.
func (e *Engine) InSession() bool { return e.sess != nil }

// StartSession begins a session over a snapshot of the current deck and
// returns the first card. It fails with ErrEmptyDeck when the deck is
// empty. Starting a session discards any pending mastery-removal offer
// from a previous session.
func (e *Engine) StartSession() (*vocab.Entry, error) {
	entries := e.store.List()
	if len(entries) == 0 {
		return nil, ErrEmptyDeck
	}
	e.sess = &session{queue: entries, total: len(entries)}
	e.pending = nil
	return entries[0], nil
}

// CurrentCard returns the card under the cursor. It fails with
// ErrNoSession when idle and ErrSessionComplete once every card has been
// answered.
func (e *Engine) CurrentCard() (*vocab.Entry, error) {
	if e.sess == nil {
		return nil, ErrNoSession
	}
	if e.sess.cursor >= len(e.sess.queue) {
		return nil, ErrSessionComplete
	}
	return e.sess.queue[e.sess.cursor], nil
}

// AnswerAgain records a failed answer on the current card: the review is
// logged, the card goes back to the end of the queue, and the cursor
// advances. Mastery level is untouched. The deck is persisted; a
// persistence failure is returned (wrapping vocab.ErrPersistence) but the
// in-memory changes stand.
func (e *Engine) AnswerAgain() error {
	card, err := e.CurrentCard()
	if err != nil {
		return err
	}
	card.ReviewCount++
	card.LastReviewed = append(card.LastReviewed, vocab.ReviewRecord{Date: e.now(), Result: vocab.OutcomeAgain})
	e.sess.queue = append(e.sess.queue, card)
	e.sess.cursor++
	return e.store.Persist()
}

// AnswerGood records a successful answer: review count and mastery level
// both increase and the cursor advances without requeueing. A card whose
// mastery level reaches MasteryThreshold joins the session's mastered set
// once. Persistence failures are reported as in AnswerAgain.
func (e *Engine) AnswerGood() error {
	card, err := e.CurrentCard()
	if err != nil {
		return err
	}
	card.ReviewCount++
	card.MasteryLevel++
	card.LastReviewed = append(card.LastReviewed, vocab.ReviewRecord{Date: e.now(), Result: vocab.OutcomeGood})
	if card.MasteryLevel >= MasteryThreshold && !e.sess.contains(card) {
		e.sess.mastered = append(e.sess.mastered, card)
	}
	e.sess.cursor++
	return e.store.Persist()
}

func (s *session) contains(card *vocab.Entry) bool {
	for _, m := range s.mastered {
		if m == card {
			return true
		}
	}
	return false
}

// IsComplete reports whether every queued card (including requeues) has
// been answered. False when idle.
func (e *Engine) IsComplete() bool {
	return e.sess != nil && e.sess.cursor >= len(e.sess.queue)
}

// Progress returns the number of answered cards, the current queue length
// and the snapshot total. The queue length can exceed the total after
// "again" answers; displaying answered/total past 100% is expected.
func (e *Engine) Progress() (answered, queueLen, total int) {
	if e.sess == nil {
		return 0, 0, 0
	}
	return e.sess.cursor, len(e.sess.queue), e.sess.total
}

// EndSession closes the session and returns a completion report, or nil
// when the session was abandoned before the end of the queue. Side
// effects already committed per answer are kept either way. When the
// report lists mastered words the caller may follow up with
// ConfirmMasteryRemoval; doing nothing leaves the entries in the deck
// with their elevated mastery level.
func (e *Engine) EndSession() *Report {
	sess := e.sess
	e.sess = nil
	if sess == nil || sess.cursor < len(sess.queue) || sess.total == 0 {
		return nil
	}
	words := make([]string, len(sess.mastered))
	for i, card := range sess.mastered {
		words[i] = card.Word
	}
	e.pending = sess.mastered
	return &Report{MasteredWords: words, Count: len(words)}
}

// ConfirmMasteryRemoval removes every word mastered in the last completed
// session from the deck and persists. Without a pending report it is a
// no-op. The offer is consumed even if persistence fails.
func (e *Engine) ConfirmMasteryRemoval() error {
	pending := e.pending
	e.pending = nil
	for _, card := range pending {
		if err := e.store.RemoveByWord(card.Word); err != nil {
			return err
		}
	}
	return nil
}
