package corpus

import (
	"embed"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default_corpus.yaml
var defaultCorpusFS embed.FS

// Store holds the ordered prompt sequence and the category metadata table.
// It is read-only after loading; queries never mutate it.
type Store struct {
	items []Item
	meta  map[string]Meta
}

// document is the on-disk corpus layout.
type document struct {
	Prompts    []Item          `yaml:"prompts"`
	Categories map[string]Meta `yaml:"categories"`
}

// New builds a Store directly from items and category metadata, normalizing
// engagement values the same way Load does.
func New(items []Item, meta map[string]Meta) *Store {
	normalized := make([]Item, len(items))
	copy(normalized, items)
	for i := range normalized {
		normalized[i].Engagement = ParseEngagement(string(normalized[i].Engagement))
	}
	if meta == nil {
		meta = make(map[string]Meta)
	}
	return &Store{items: normalized, meta: meta}
}

// Items returns the full ordered prompt sequence.
func (s *Store) Items() []Item {
	return s.items
}

// Len returns the number of prompts in the corpus.
func (s *Store) Len() int {
	return len(s.items)
}

// CategoryMeta returns display metadata for key, or the general fallback
// entry when key is unknown. It never fails.
func (s *Store) CategoryMeta(key string) Meta {
	if m, ok := s.meta[key]; ok {
		return m
	}
	if m, ok := s.meta[FallbackCategory]; ok {
		return m
	}
	return Meta{Label: "General", Style: "neutral"}
}

// Load builds a Store from the given source: an http(s) URL (fetched once, a
// static snapshot), a file path, or the embedded default corpus when source
// is empty.
func Load(source string) (*Store, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case source == "":
		data, err = defaultCorpusFS.ReadFile("default_corpus.yaml")
		if err != nil {
			return nil, fmt.Errorf("reading embedded corpus: %w", err)
		}
	case isHTTP(source):
		data, err = fetchSnapshot(source)
		if err != nil {
			return nil, fmt.Errorf("fetching corpus snapshot: %w", err)
		}
	default:
		data, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("reading corpus: %w", err)
		}
	}
	return parse(data)
}

func isHTTP(source string) bool {
	u, err := url.Parse(source)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

func fetchSnapshot(rawURL string) ([]byte, error) {
	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Get(rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func parse(data []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing corpus: %w", err)
	}

	if err := validate(&doc); err != nil {
		return nil, err
	}

	return New(doc.Prompts, doc.Categories), nil
}

// validate rejects structurally broken corpora. Unknown engagement values and
// category keys missing from the metadata table are deliberately NOT errors;
// they degrade to defined fallbacks at query/render time.
func validate(doc *document) error {
	seen := make(map[string]bool, len(doc.Prompts))
	for i, p := range doc.Prompts {
		if p.ID == "" {
			return fmt.Errorf("prompt %d: id is required", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("prompt %q: duplicate id", p.ID)
		}
		seen[p.ID] = true
		if strings.TrimSpace(p.Content) == "" {
			return fmt.Errorf("prompt %q: content is required", p.ID)
		}
		if len(p.Categories) == 0 {
			return fmt.Errorf("prompt %q: at least one category is required", p.ID)
		}
		if p.Source != "" {
			u, err := url.Parse(p.Source)
			if err != nil {
				return fmt.Errorf("prompt %q: invalid source url: %w", p.ID, err)
			}
			if u.Scheme != "http" && u.Scheme != "https" {
				return fmt.Errorf("prompt %q: source scheme must be http or https, got %q", p.ID, u.Scheme)
			}
		}
	}
	return nil
}
