package knowledge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Entry is one FAQ item: several phrasings of a question and the answer.
type Entry struct {
	Questions []string `yaml:"questions"`
	Answer    string   `yaml:"answer"`
}

type file struct {
	Entries []Entry `yaml:"entries"`
}

type indexedEntry struct {
	answer    string
	questions []map[string]bool
}

// Base answers questions from a YAML FAQ file and reloads it when the file changes.
type Base struct {
	path     string
	minScore float64
	log      Logger

	mu      sync.RWMutex
	entries []indexedEntry
}

// NewBase creates a knowledge base for path. Call Load before Answer.
func NewBase(path string, minScore float64, log Logger) *Base {
	return &Base{path: path, minScore: minScore, log: log}
}

// Load reads and indexes the FAQ file.
func (b *Base) Load() error {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return fmt.Errorf("read knowledge base %q: %w", b.path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse knowledge base %q: %w", b.path, err)
	}

	entries := make([]indexedEntry, 0, len(f.Entries))
	for i, e := range f.Entries {
		if strings.TrimSpace(e.Answer) == "" || len(e.Questions) == 0 {
			return fmt.Errorf("knowledge base %q: entry %d needs questions and an answer", b.path, i)
		}
		ie := indexedEntry{answer: strings.TrimSpace(e.Answer)}
		for _, q := range e.Questions {
			ie.questions = append(ie.questions, tokenSet(q))
		}
		entries = append(entries, ie)
	}

	b.mu.Lock()
	b.entries = entries
	b.mu.Unlock()

	return nil
}

// Answer returns the best matching answer, if any scores at least minScore.
func (b *Base) Answer(_ context.Context, text string) (string, bool) {
	query := tokenSet(text)
	if len(query) == 0 {
		return "", false
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	best, bestScore := "", 0.0
	for _, e := range b.entries {
		for _, q := range e.questions {
			if s := jaccard(query, q); s > bestScore {
				best, bestScore = e.answer, s
			}
		}
	}

	if bestScore < b.minScore || best == "" {
		return "", false
	}
	return best, true
}

// WatchAndReload reloads the file on every write until ctx is done.
// Editors often replace the file, so the parent directory is watched.
func (b *Base) WatchAndReload(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(b.path)); err != nil {
		return fmt.Errorf("watch dir of %q: %w", b.path, err)
	}

	target := filepath.Clean(b.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if err := b.Load(); err != nil {
					b.log.Error("KnowledgeBase: reload failed, keeping previous entries: %v", err)
					continue
				}
				b.log.Info("KnowledgeBase: reloaded %s", b.path)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

func tokenSet(s string) map[string]bool {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if b[w] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}
