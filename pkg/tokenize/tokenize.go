// Package tokenize wraps the kagome morphological analyzer for lyrics
// text: tokens with readings and base forms, grouped by input line so a
// caller can render the lyrics as written.
package tokenize

import (
	"regexp"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Token is a single analyzed unit of text.
type Token struct {
	Surface      string // the text as it appears (e.g. "行っ")
	BaseForm     string // dictionary form (e.g. "行く"), the lookup key
	Reading      string // pronunciation in katakana (e.g. "イッ")
	PartOfSpeech string // primary POS label (e.g. "動詞")
	Features     []string
}

// Line is one line of lyrics and its tokens. Blank lines carry no tokens.
type Line struct {
	Text   string
	Tokens []Token
}

// Analyzer segments Japanese text.
type Analyzer struct {
	t *tokenizer.Tokenizer
}

// NewAnalyzer builds an analyzer over the bundled IPA dictionary.
func NewAnalyzer() (*Analyzer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Analyzer{t: t}, nil
}

// Analyze breaks text into tokens with readings and base forms.
func (a *Analyzer) Analyze(text string) []Token {
	var result []Token
	for _, token := range a.t.Tokenize(text) {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		if strings.TrimSpace(token.Surface) == "" {
			continue
		}

		features := token.Features()

		// IPA feature layout: 0 POS, 1-3 sub-POS, 4-5 conjugation,
		// 6 base form, 7 reading, 8 pronunciation.
		base := token.Surface
		if len(features) > 6 && features[6] != "*" {
			base = features[6]
		}
		reading := ""
		if len(features) > 7 && features[7] != "*" {
			reading = features[7]
		}
		pos := ""
		if len(features) > 0 {
			pos = features[0]
		}

		result = append(result, Token{
			Surface:      token.Surface,
			BaseForm:     base,
			Reading:      reading,
			PartOfSpeech: pos,
			Features:     features,
		})
	}
	return result
}

// AnalyzeLyrics tokenizes each line of text separately, preserving the
// line structure of the input (lyrics are line oriented; a blank line is
// a stanza break).
func (a *Analyzer) AnalyzeLyrics(text string) []Line {
	var lines []Line
	for _, raw := range strings.Split(text, "\n") {
		line := Line{Text: raw}
		if strings.TrimSpace(raw) != "" {
			line.Tokens = a.Analyze(raw)
		}
		lines = append(lines, line)
	}
	return lines
}

var reJapanese = regexp.MustCompile(`^[ぁ-んァ-ヶー一-龯]+$`)

// NeedsReading reports whether a token's surface is Japanese script and
// so worth annotating with its reading.
func NeedsReading(tok Token) bool {
	return reJapanese.MatchString(tok.Surface)
}

var (
	reRT = regexp.MustCompile(`(?si)<rt\b[^>]*>.*?</rt>`)
	reRP = regexp.MustCompile(`(?si)<rp\b[^>]*>.*?</rp>`)
)

// SanitizeRuby strips ruby annotation text (<rt>, <rp>) from HTML so
// pages that ship their own furigana do not tokenize every reading twice
// (e.g. "漢字" turning into "漢字かんじ").
func SanitizeRuby(content []byte) []byte {
	cleaned := reRT.ReplaceAll(content, []byte{})
	return reRP.ReplaceAll(cleaned, []byte{})
}
