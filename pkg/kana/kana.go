// Package kana converts between Japanese kana scripts.
package kana

import "strings"

const (
	katakanaLo = 'ァ' // ァ
	katakanaHi = 'ヶ' // ヶ
	// Katakana and hiragana blocks are parallel; shifting a katakana
	// codepoint down by 0x60 lands on its hiragana counterpart.
	kataToHiraOffset = 0x60
)

// ToHiragana maps every katakana character in s (ァ..ヶ) to its hiragana
// counterpart and leaves everything else untouched. It is idempotent:
// hiragana, kanji, latin and punctuation pass through unchanged.
func ToHiragana(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= katakanaLo && r <= katakanaHi {
			r -= kataToHiraOffset
		}
		b.WriteRune(r)
	}
	return b.String()
}

// HasKatakana reports whether s contains at least one character in the
// convertible katakana range.
func HasKatakana(s string) bool {
	for _, r := range s {
		if r >= katakanaLo && r <= katakanaHi {
			return true
		}
	}
	return false
}
