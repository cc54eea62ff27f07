// kashinote is a command line companion for studying Japanese lyrics:
// it segments pasted lyrics into annotated tokens, looks words up, keeps
// a personal vocabulary deck and runs flashcard review sessions over it.
package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-shiori/go-readability"
	"github.com/joho/godotenv"

	"github.com/kashinote/kashinote/pkg/app"
	"github.com/kashinote/kashinote/pkg/export"
	"github.com/kashinote/kashinote/pkg/kv"
	"github.com/kashinote/kashinote/pkg/lookup"
	"github.com/kashinote/kashinote/pkg/review"
	"github.com/kashinote/kashinote/pkg/speech"
	"github.com/kashinote/kashinote/pkg/tokenize"
	"github.com/kashinote/kashinote/pkg/vocab"
)

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// .env is optional; flags still win over it.
	_ = godotenv.Load()

	dbFlag := flag.String("db", envDefault("KASHINOTE_DB", "kashinote.db"), "Path to the SQLite database")
	fileFlag := flag.String("file", "", "Lyrics file to annotate (\"-\" for stdin)")
	urlFlag := flag.String("url", "", "Fetch a lyrics page and annotate its text")
	glossesFlag := flag.Bool("glosses", false, "Also print meanings for annotated words")
	saveFlag := flag.String("save", "", "Look up a word and save it to the deck")
	listFlag := flag.Bool("list", false, "List the vocabulary deck")
	removeFlag := flag.Int("remove", -1, "Remove the deck entry at this position (0-based)")
	removeWordFlag := flag.String("remove-word", "", "Remove a deck entry by word")
	clearFlag := flag.Bool("clear", false, "Empty the vocabulary deck")
	exportFlag := flag.String("export", "", "Export the deck to an .xlsx file")
	reviewFlag := flag.Bool("review", false, "Start an interactive flashcard session")
	kanaFlag := flag.String("kana", "", "Set reading script: hiragana or katakana")
	speakFlag := flag.String("speak", "", "Pronounce a word and exit")
	dictFlag := flag.String("dict", envDefault("KASHINOTE_DICT", ""), "Path to a JMdict-Simplified JSON file")
	downloadDict := flag.Bool("download-dict", false, "Auto-download the JMdict dictionary if missing")
	offlineFlag := flag.Bool("offline", false, "Skip remote lookups")
	speechCmd := flag.String("speech-cmd", envDefault("KASHINOTE_SPEECH_CMD", ""), "TTS command, e.g. \"espeak-ng -v ja\"")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := kv.OpenSQLite(*dbFlag)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	var dict *lookup.Dictionary
	dictPath := *dictFlag
	if *downloadDict {
		if dictPath == "" {
			dictPath = lookup.DefaultJMdictPath
		}
		if err := lookup.EnsureJMdict(ctx, dictPath); err != nil {
			log.Printf("Warning: dictionary download failed: %v. Continuing without it.", err)
		}
	}
	if dictPath != "" {
		if _, err := os.Stat(dictPath); err == nil {
			start := time.Now()
			dict, err = lookup.LoadJMdict(dictPath)
			if err != nil {
				log.Printf("Warning: failed to load dictionary: %v", err)
			} else {
				fmt.Printf("Dictionary loaded (%d spellings) in %v\n", dict.Len(), time.Since(start))
			}
		}
	}

	gateway := lookup.NewGateway(dict)
	if *offlineFlag {
		gateway.SetJishoClient(nil)
	}

	application, err := app.New(db, gateway, nil, speech.NewExecSpeaker(*speechCmd))
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	switch {
	case *kanaFlag != "":
		setKana(application, *kanaFlag)
	case *listFlag:
		listDeck(application)
	case *removeFlag >= 0:
		if err := application.Store.Remove(*removeFlag); err != nil {
			log.Fatalf("Remove failed: %v", err)
		}
		fmt.Println("Removed.")
	case *removeWordFlag != "":
		if err := application.Store.RemoveByWord(*removeWordFlag); err != nil {
			log.Fatalf("Remove failed: %v", err)
		}
		fmt.Println("Removed.")
	case *clearFlag:
		if err := application.Store.Clear(); err != nil {
			log.Fatalf("Clear failed: %v", err)
		}
		fmt.Println("Deck cleared.")
	case *exportFlag != "":
		if err := export.WriteXLSX(*exportFlag, application.Store.List()); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		fmt.Printf("Exported %d entries to %s\n", application.Store.Len(), *exportFlag)
	case *speakFlag != "":
		application.Speaker.Speak(*speakFlag)
		// Give the fire-and-forget player a moment before the process exits.
		time.Sleep(2 * time.Second)
	case *saveFlag != "":
		saveWord(ctx, application, *saveFlag)
	case *fileFlag != "" || *urlFlag != "":
		text := readLyrics(ctx, *fileFlag, *urlFlag)
		annotate(ctx, application, text, *glossesFlag)
	case *reviewFlag:
		runReview(application)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func setKana(a *app.App, script string) {
	switch script {
	case "hiragana":
		err := a.SetUseHiragana(true)
		warnPersist(err)
	case "katakana":
		err := a.SetUseHiragana(false)
		warnPersist(err)
	default:
		log.Fatalf("Unknown kana script %q (want hiragana or katakana)", script)
	}
	fmt.Printf("Readings will be shown in %s.\n", script)
}

func listDeck(a *app.App) {
	entries := a.Store.List()
	if len(entries) == 0 {
		fmt.Println("The deck is empty.")
		return
	}
	fmt.Printf("%d words:\n", len(entries))
	for i, e := range entries {
		fmt.Printf("%3d. %s (%s) %s — reviews %d, mastery %d/%d\n",
			i, e.Word, e.Reading, e.PartOfSpeech, e.ReviewCount, e.MasteryLevel, review.MasteryThreshold)
	}
}

func saveWord(ctx context.Context, a *app.App, word string) {
	analyzer := mustAnalyzer(a)
	tokens := analyzer.Analyze(word)
	if len(tokens) == 0 {
		log.Fatalf("Nothing to save in %q", word)
	}
	entry, err := a.SaveToken(ctx, tokens[0])
	if errors.Is(err, vocab.ErrDuplicateWord) {
		log.Fatalf("%q is already in the deck", tokens[0].Surface)
	}
	warnPersist(err)
	fmt.Printf("Saved %s (%s)\n%s", entry.Word, entry.Reading, entry.Meaning)
}

func mustAnalyzer(a *app.App) *tokenize.Analyzer {
	if a.Analyzer == nil {
		analyzer, err := tokenize.NewAnalyzer()
		if err != nil {
			log.Fatalf("Failed to create analyzer: %v", err)
		}
		a.Analyzer = analyzer
	}
	return a.Analyzer
}

func readLyrics(ctx context.Context, file, pageURL string) string {
	if pageURL != "" {
		return fetchPage(ctx, pageURL)
	}
	if file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("Failed to read stdin: %v", err)
		}
		return string(data)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", file, err)
	}
	return string(data)
}

// fetchPage pulls a lyrics page and extracts its readable text.
func fetchPage(ctx context.Context, pageURL string) string {
	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		log.Fatalf("Failed to create request: %v", err)
	}
	// Some lyrics sites refuse requests without a browser User-Agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept-Language", "ja,en;q=0.8")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("Failed to fetch URL: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("Got status %d fetching %s", resp.StatusCode, pageURL)
	}

	const maxBodySize = 10 * 1024 * 1024
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		log.Fatalf("Failed to read response: %v", err)
	}

	// Pages that ship furigana would otherwise tokenize every reading twice.
	body = tokenize.SanitizeRuby(body)

	parsedURL, _ := url.Parse(pageURL)
	article, err := readability.FromReader(bytes.NewReader(body), parsedURL)
	if err != nil {
		log.Fatalf("Failed to extract page text: %v", err)
	}
	fmt.Printf("Title: %s\n\n", article.Title)
	return article.TextContent
}

func annotate(ctx context.Context, a *app.App, text string, withGlosses bool) {
	analyzer := mustAnalyzer(a)
	lines := analyzer.AnalyzeLyrics(text)

	var baseForms []string
	for _, line := range lines {
		if len(line.Tokens) == 0 {
			fmt.Println()
			continue
		}
		var b strings.Builder
		for _, tok := range line.Tokens {
			if tokenize.NeedsReading(tok) {
				fmt.Fprintf(&b, "%s(%s)", tok.Surface, a.ReadingFor(tok))
				baseForms = append(baseForms, tok.BaseForm)
			} else {
				b.WriteString(tok.Surface)
			}
		}
		fmt.Println(b.String())
	}

	if !withGlosses || a.Lookup == nil || len(baseForms) == 0 {
		return
	}
	fmt.Println("\n--- glosses ---")
	meanings := a.Lookup.Prefetch(ctx, baseForms, 4)
	seen := make(map[string]bool)
	for _, base := range baseForms {
		if seen[base] {
			continue
		}
		seen[base] = true
		fmt.Printf("%s\n%s\n", base, meanings[base])
	}
}

func runReview(a *app.App) {
	eng := a.Engine
	if _, err := eng.StartSession(); err != nil {
		if errors.Is(err, review.ErrEmptyDeck) {
			fmt.Println("Nothing to review — the deck is empty.")
			return
		}
		log.Fatalf("Failed to start review: %v", err)
	}

	in := bufio.NewScanner(os.Stdin)
	for !eng.IsComplete() {
		card, err := eng.CurrentCard()
		if err != nil {
			log.Fatalf("Review state error: %v", err)
		}
		answered, queueLen, total := eng.Progress()
		fmt.Printf("\n[%d/%d (of %d)] %s (%s)\n", answered+1, queueLen, total, card.Word, card.Reading)
		fmt.Print("enter=flip, g=good, a=again, s=speak, q=quit > ")

		flipped := false
		answeredCard := false
		for !answeredCard {
			if !in.Scan() {
				fmt.Println()
				finishReview(a, in)
				return
			}
			switch strings.TrimSpace(in.Text()) {
			case "":
				if !flipped {
					fmt.Println(card.Meaning)
					flipped = true
				}
				fmt.Print("g=good, a=again, s=speak, q=quit > ")
			case "g":
				warnPersist(eng.AnswerGood())
				answeredCard = true
			case "a":
				warnPersist(eng.AnswerAgain())
				answeredCard = true
			case "s":
				a.Speaker.Speak(card.Reading)
				fmt.Print("> ")
			case "q":
				finishReview(a, in)
				return
			default:
				fmt.Print("g=good, a=again, s=speak, q=quit > ")
			}
		}
	}
	finishReview(a, in)
}

func finishReview(a *app.App, in *bufio.Scanner) {
	report := a.Engine.EndSession()
	if report == nil {
		fmt.Println("Session ended.")
		return
	}
	if report.Count == 0 {
		fmt.Println("Review complete — keep it up!")
		return
	}
	fmt.Printf("Review complete! You have mastered: %s\n", strings.Join(report.MasteredWords, "、"))
	fmt.Printf("Remove these %d words from the deck? [y/N] ", report.Count)
	if in.Scan() && strings.TrimSpace(in.Text()) == "y" {
		warnPersist(a.Engine.ConfirmMasteryRemoval())
		fmt.Printf("Removed %d mastered words.\n", report.Count)
	} else {
		fmt.Println("Keeping them for next time.")
	}
}

// warnPersist logs persistence failures without aborting: the in-memory
// state is still good for the rest of the run.
func warnPersist(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, vocab.ErrPersistence) {
		log.Printf("Warning: %v", err)
		return
	}
	log.Fatalf("Unexpected error: %v", err)
}
