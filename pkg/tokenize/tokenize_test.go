package tokenize

import (
	"strings"
	"testing"
)

func newAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer()
	if err != nil {
		t.Fatalf("new analyzer: %v", err)
	}
	return a
}

func TestAnalyzeBasics(t *testing.T) {
	a := newAnalyzer(t)
	tokens := a.Analyze("猫が好き")
	if len(tokens) == 0 {
		t.Fatal("expected tokens")
	}
	var joined strings.Builder
	for _, tok := range tokens {
		joined.WriteString(tok.Surface)
		if tok.BaseForm == "" {
			t.Errorf("token %q has empty base form", tok.Surface)
		}
	}
	if joined.String() != "猫が好き" {
		t.Errorf("surfaces do not reassemble input: %q", joined.String())
	}
}

func TestAnalyzeConjugatedVerb(t *testing.T) {
	a := newAnalyzer(t)
	tokens := a.Analyze("行った")
	if len(tokens) == 0 {
		t.Fatal("expected tokens")
	}
	if tokens[0].BaseForm != "行く" {
		t.Errorf("base form of 行っ = %q, want 行く", tokens[0].BaseForm)
	}
	if tokens[0].Reading == "" {
		t.Error("expected a reading for 行っ")
	}
	if tokens[0].PartOfSpeech != "動詞" {
		t.Errorf("POS = %q, want 動詞", tokens[0].PartOfSpeech)
	}
}

func TestAnalyzeLyricsKeepsLineStructure(t *testing.T) {
	a := newAnalyzer(t)
	lines := a.AnalyzeLyrics("君を想う\n\n夜の空")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if len(lines[0].Tokens) == 0 || len(lines[2].Tokens) == 0 {
		t.Error("expected tokens on non-blank lines")
	}
	if len(lines[1].Tokens) != 0 {
		t.Error("blank line should carry no tokens")
	}
	if lines[2].Text != "夜の空" {
		t.Errorf("line text = %q", lines[2].Text)
	}
}

func TestNeedsReading(t *testing.T) {
	cases := []struct {
		surface string
		want    bool
	}{
		{"漢字", true},
		{"ひらがな", true},
		{"カタカナー", true},
		{"hello", false},
		{"123", false},
		{"、", false},
	}
	for _, c := range cases {
		if got := NeedsReading(Token{Surface: c.surface}); got != c.want {
			t.Errorf("NeedsReading(%q) = %v, want %v", c.surface, got, c.want)
		}
	}
}

func TestSanitizeRuby(t *testing.T) {
	in := []byte(`<ruby>漢字<rp>(</rp><rt>かんじ</rt><rp>)</rp></ruby>`)
	out := string(SanitizeRuby(in))
	if strings.Contains(out, "かんじ") {
		t.Errorf("rt content not removed: %q", out)
	}
	if !strings.Contains(out, "漢字") {
		t.Errorf("base text lost: %q", out)
	}
}
