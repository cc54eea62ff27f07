package lookup

import (
	"encoding/json"
	"fmt"
	"os"
)

// JMdictEntry matches the structure of jmdict-simplified entries.
type JMdictEntry struct {
	ID    string          `json:"id"`
	Kanji []JMdictElement `json:"kanji"`
	Kana  []JMdictElement `json:"kana"`
	Sense []JMdictSense   `json:"sense"`
}

type JMdictElement struct {
	Text   string   `json:"text"`
	Common bool     `json:"common"`
	Tags   []string `json:"tags"`
}

type JMdictSense struct {
	PartOfSpeech []string      `json:"partOfSpeech"`
	Gloss        []JMdictGloss `json:"gloss"`
}

type JMdictGloss struct {
	Text string `json:"text"`
	Lang string `json:"lang"` // defaults to 'eng' if missing
}

// Dictionary is an in-memory JMdict index keyed by written form (both
// kanji and kana spellings).
type Dictionary struct {
	byText map[string][]*JMdictEntry
}

// LoadJMdict reads a jmdict-simplified JSON file (either the
// {"words": [...]} wrapper or a bare array) and indexes it.
func LoadJMdict(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var wrapper struct {
		Words []*JMdictEntry `json:"words"`
	}
	dec := json.NewDecoder(f)
	if err := dec.Decode(&wrapper); err == nil && len(wrapper.Words) > 0 {
		return indexEntries(wrapper.Words), nil
	}

	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}
	var entries []*JMdictEntry
	dec = json.NewDecoder(f)
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("parse dictionary as object or array: %w", err)
	}
	return indexEntries(entries), nil
}

func indexEntries(entries []*JMdictEntry) *Dictionary {
	d := &Dictionary{byText: make(map[string][]*JMdictEntry, len(entries))}
	for _, e := range entries {
		for _, k := range e.Kanji {
			d.byText[k.Text] = append(d.byText[k.Text], e)
		}
		for _, k := range e.Kana {
			d.byText[k.Text] = append(d.byText[k.Text], e)
		}
	}
	return d
}

// Len returns the number of indexed spellings.
func (d *Dictionary) Len() int { return len(d.byText) }

// Senses returns the senses of the first entry matching word, or nil.
func (d *Dictionary) Senses(word string) []Sense {
	entries := d.byText[word]
	if len(entries) == 0 {
		return nil
	}
	var out []Sense
	for _, s := range entries[0].Sense {
		sense := Sense{PartsOfSpeech: s.PartOfSpeech}
		for _, g := range s.Gloss {
			if g.Lang == "" || g.Lang == "eng" {
				sense.Glosses = append(sense.Glosses, g.Text)
			}
		}
		if len(sense.Glosses) > 0 {
			out = append(out, sense)
		}
	}
	return out
}
