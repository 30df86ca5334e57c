// Package phondict is the pronunciation dictionary oracle. It maps
// phonemic spellings to the English words they transcribe, and back. The
// data is a precomputed JSON artifact generated offline from CMUdict;
// after loading it is never mutated, so lookups need no synchronization.
package phondict

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Oracle answers "which English words does this phonemic spelling
// represent?" An empty answer means the spelling is not a word.
type Oracle interface {
	LookupWords(ipa string) []string
}

// Dict is the standard Oracle, backed by the CMUdict-derived artifact.
type Dict struct {
	entries    map[string][]string // word -> pronunciations
	ipaToWords map[string][]string // pronunciation -> words
}

type dictFile struct {
	Entries    map[string][]string `json:"entries"`
	IPAToWords map[string][]string `json:"ipaToWords"`
}

// Load reads the dictionary artifact at path. A missing or corrupt file
// is a startup-fatal condition for callers; degrading to "no words are
// ever valid" would be worse than crashing.
func Load(path string) (*Dict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary file: %w", err)
	}
	var df dictFile
	if err := json.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parsing dictionary file %v: %w", path, err)
	}
	if len(df.IPAToWords) == 0 {
		return nil, fmt.Errorf("dictionary file %v has no pronunciations", path)
	}
	d := &Dict{entries: df.Entries, ipaToWords: df.IPAToWords}
	log.Info().Str("path", path).Int("words", len(d.entries)).
		Int("pronunciations", len(d.ipaToWords)).Msg("loaded dictionary")
	return d, nil
}

var stressStripper = strings.NewReplacer("ˈ", "", "ˌ", "")

// LookupWords returns the English words matching the given phonemic
// spelling. If the exact spelling misses, it retries with stress markers
// stripped, so players may omit optional stress diacritics. No fuzzier
// matching than that.
func (d *Dict) LookupWords(ipa string) []string {
	normalized := strings.TrimSpace(ipa)
	if normalized == "" {
		return nil
	}
	if words := d.ipaToWords[normalized]; len(words) > 0 {
		out := make([]string, len(words))
		copy(out, words)
		return out
	}
	unstressed := stressStripper.Replace(normalized)
	if words := d.ipaToWords[unstressed]; len(words) > 0 {
		out := make([]string, len(words))
		copy(out, words)
		return out
	}
	return nil
}

// Pronunciations returns all phonemic spellings for an English word.
func (d *Dict) Pronunciations(word string) []string {
	normalized := strings.ToLower(strings.TrimSpace(word))
	normalized = strings.Map(func(r rune) rune {
		switch r {
		case '\'', '-', '(', ')':
			return -1
		}
		return r
	}, normalized)
	prons := d.entries[normalized]
	if len(prons) == 0 {
		return nil
	}
	out := make([]string, len(prons))
	copy(out, prons)
	return out
}

// HasWord reports whether the English word has any pronunciation.
func (d *Dict) HasWord(word string) bool {
	return len(d.Pronunciations(word)) > 0
}

// Stats describes the size of the loaded dictionary.
type Stats struct {
	Words          int
	Pronunciations int
}

func (d *Dict) Stats() Stats {
	return Stats{Words: len(d.entries), Pronunciations: len(d.ipaToWords)}
}

// AcceptAll is an Oracle for tests; every spelling resolves to itself.
type AcceptAll struct{}

func (AcceptAll) LookupWords(ipa string) []string {
	return []string{ipa}
}
