package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// defaultRelays are request-forwarding prefixes tried after a direct call
// fails, for environments where jisho.org is not directly reachable. The
// full API URL is appended query-escaped.
var defaultRelays = []string{
	"https://api.allorigins.win/raw?url=",
	"https://api.codetabs.com/v1/proxy?quest=",
	"https://corsproxy.io/?",
}

// JishoClient queries the jisho.org word search API.
type JishoClient struct {
	// BaseURL is the Jisho instance, without trailing slash.
	BaseURL string
	// Relays are tried in order after the direct request fails. Empty
	// means direct only.
	Relays []string
	Client *http.Client
}

// NewJishoClient returns a client against the public jisho.org with the
// default relay chain.
func NewJishoClient() *JishoClient {
	return &JishoClient{
		BaseURL: "https://jisho.org",
		Relays:  defaultRelays,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type jishoResponse struct {
	Data []struct {
		Senses []struct {
			PartsOfSpeech      []string `json:"parts_of_speech"`
			EnglishDefinitions []string `json:"english_definitions"`
		} `json:"senses"`
	} `json:"data"`
}

// Definitions resolves word through the API, trying the direct endpoint
// first and then each relay. It returns the senses of the best match, or
// an error when every attempt failed or returned no data.
func (c *JishoClient) Definitions(ctx context.Context, word string) ([]Sense, error) {
	apiURL := fmt.Sprintf("%s/api/v1/search/words?keyword=%s", c.BaseURL, url.QueryEscape(word))

	attempts := make([]string, 0, len(c.Relays)+1)
	attempts = append(attempts, apiURL)
	for _, relay := range c.Relays {
		attempts = append(attempts, relay+url.QueryEscape(apiURL))
	}

	var lastErr error
	for _, attempt := range attempts {
		senses, err := c.fetch(ctx, attempt)
		if err != nil {
			lastErr = err
			continue
		}
		if len(senses) > 0 {
			return senses, nil
		}
		lastErr = fmt.Errorf("no results for %q", word)
	}
	return nil, lastErr
}

func (c *JishoClient) fetch(ctx context.Context, u string) ([]Sense, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jisho returned status %d", resp.StatusCode)
	}

	var parsed jishoResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	if len(parsed.Data) == 0 {
		return nil, nil
	}

	var senses []Sense
	for _, s := range parsed.Data[0].Senses {
		if len(s.EnglishDefinitions) == 0 {
			continue
		}
		senses = append(senses, Sense{
			PartsOfSpeech: s.PartsOfSpeech,
			Glosses:       s.EnglishDefinitions,
		})
	}
	return senses, nil
}
