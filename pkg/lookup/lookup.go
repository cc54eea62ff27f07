// Package lookup resolves a word's dictionary form to a formatted meaning
// description. Resolution walks a chain: built-in glosses, a local JMdict
// file when one is loaded, then the Jisho web API (directly and through
// relay prefixes). Lookup never fails; when every layer comes up empty it
// returns a blob pointing at manual lookup instead of an error.
package lookup

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Sense is one meaning of a word: part-of-speech tags plus glosses.
type Sense struct {
	PartsOfSpeech []string
	Glosses       []string
}

// maxSenses bounds how many senses of a single source are formatted.
const maxSenses = 3

// Gateway is the word-in, meaning-out collaborator the rest of the
// application depends on.
type Gateway struct {
	local  map[string]string
	jmdict *Dictionary
	jisho  *JishoClient
}

// NewGateway builds a gateway with the built-in gloss map and a default
// Jisho client. jmdict may be nil.
func NewGateway(jmdict *Dictionary) *Gateway {
	return &Gateway{
		local:  basicGlosses,
		jmdict: jmdict,
		jisho:  NewJishoClient(),
	}
}

// SetJishoClient swaps the remote client; pass nil to disable remote
// lookup entirely (offline mode).
func (g *Gateway) SetJishoClient(c *JishoClient) { g.jisho = c }

// Lookup resolves baseForm to a formatted meaning blob. It never returns
// an error: a total miss yields a manual-lookup fallback instead.
func (g *Gateway) Lookup(ctx context.Context, baseForm string) string {
	var b strings.Builder

	if gloss, ok := g.local[baseForm]; ok {
		fmt.Fprintf(&b, "基本字典: %s\n", gloss)
	}

	if g.jmdict != nil {
		writeSenses(&b, "JMdict", g.jmdict.Senses(baseForm))
	}

	if g.jisho != nil {
		senses, err := g.jisho.Definitions(ctx, baseForm)
		if err == nil {
			writeSenses(&b, "Jisho", senses)
		}
	}

	manual := ManualLookupURL(baseForm)
	if b.Len() == 0 {
		return fmt.Sprintf("No definition found. Look it up manually: %s\n", manual)
	}
	fmt.Fprintf(&b, "More: %s\n", manual)
	return b.String()
}

func writeSenses(b *strings.Builder, source string, senses []Sense) {
	if len(senses) == 0 {
		return
	}
	if len(senses) > maxSenses {
		senses = senses[:maxSenses]
	}
	fmt.Fprintf(b, "%s:\n", source)
	for i, s := range senses {
		pos := ""
		if len(s.PartsOfSpeech) > 0 {
			pos = " [" + strings.Join(s.PartsOfSpeech, ", ") + "]"
		}
		fmt.Fprintf(b, "  %d.%s %s\n", i+1, pos, strings.Join(s.Glosses, "; "))
	}
}

// ManualLookupURL is the Jisho search page for word, offered whenever
// automatic lookup is unavailable or incomplete.
func ManualLookupURL(word string) string {
	return "https://jisho.org/search/" + url.PathEscape(word)
}
