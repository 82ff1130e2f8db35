// Package wordnet parses Open English WordNet GWN-LMF JSON into per-headword
// sense data: parts of speech, definitions, examples, and synset-mate
// synonyms. Pure function: file path in, lookup structure out.
package wordnet

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/heartmarshall/aivocab-backend/internal/domain"
)

// Entry is the corpus data collected for one headword.
type Entry struct {
	PartOfSpeech []string
	Definitions  []domain.DictionaryDefinition
	Examples     []string
	Synonyms     []string
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalEntries int
	TotalSynsets int
	Headwords    int
}

// Lexicon is the parsed corpus, keyed by normalized headword.
type Lexicon struct {
	entries map[string]*Entry
	Stats   Stats
}

// posNames maps GWN-LMF part-of-speech tags to dictionary names.
// The satellite-adjective tag "s" folds into "adjective".
var posNames = map[string]string{
	"n": "noun",
	"v": "verb",
	"a": "adjective",
	"s": "adjective",
	"r": "adverb",
}

// GWN-LMF JSON internal types for deserialization.

type gwnDocument struct {
	Graph []gwnLexicon `json:"@graph"`
}

type gwnLexicon struct {
	Entries []gwnEntry  `json:"entry"`
	Synsets []gwnSynset `json:"synset"`
}

type gwnEntry struct {
	Lemma gwnLemma   `json:"lemma"`
	Sense []gwnSense `json:"sense"`
}

type gwnLemma struct {
	WrittenForm  string `json:"writtenForm"`
	PartOfSpeech string `json:"partOfSpeech"`
}

type gwnSense struct {
	Synset string `json:"synset"`
}

type gwnSynset struct {
	ID         string   `json:"@id"`
	Definition []string `json:"definition"`
	Example    []string `json:"example"`
}

// Parse reads a GWN-LMF JSON file and builds the headword lookup.
func Parse(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wordnet file: %w", err)
	}
	defer f.Close()

	var doc gwnDocument
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode wordnet JSON: %w", err)
	}

	return build(doc), nil
}

func build(doc gwnDocument) *Lexicon {
	lex := &Lexicon{entries: make(map[string]*Entry)}

	type senseRef struct {
		word string // original lemma form, for synonym display
		pos  string
	}

	for _, g := range doc.Graph {
		lex.Stats.TotalEntries += len(g.Entries)
		lex.Stats.TotalSynsets += len(g.Synsets)

		synsets := make(map[string]gwnSynset, len(g.Synsets))
		for _, s := range g.Synsets {
			synsets[s.ID] = s
		}

		// synsetID -> lemmas that carry a sense in it.
		members := make(map[string][]senseRef)
		for _, e := range g.Entries {
			pos, ok := posNames[e.Lemma.PartOfSpeech]
			if !ok {
				continue
			}
			for _, s := range e.Sense {
				members[s.Synset] = append(members[s.Synset], senseRef{
					word: strings.ReplaceAll(e.Lemma.WrittenForm, "_", " "),
					pos:  pos,
				})
			}
		}

		for _, e := range g.Entries {
			pos, ok := posNames[e.Lemma.PartOfSpeech]
			if !ok {
				continue
			}
			word := strings.ReplaceAll(e.Lemma.WrittenForm, "_", " ")
			key := domain.NormalizeWord(word)
			if key == "" {
				continue
			}

			entry := lex.entries[key]
			if entry == nil {
				entry = &Entry{}
				lex.entries[key] = entry
			}

			entry.PartOfSpeech = appendUnique(entry.PartOfSpeech, pos)

			for _, s := range e.Sense {
				syn, ok := synsets[s.Synset]
				if !ok {
					continue
				}
				for _, def := range syn.Definition {
					entry.Definitions = appendUniqueDef(entry.Definitions,
						domain.DictionaryDefinition{POS: pos, Def: def})
				}
				for _, ex := range syn.Example {
					entry.Examples = appendUnique(entry.Examples, ex)
				}
				// Synset mates are synonyms; the headword itself is excluded
				// case-insensitively.
				for _, mate := range members[s.Synset] {
					if strings.EqualFold(mate.word, word) {
						continue
					}
					entry.Synonyms = appendUnique(entry.Synonyms, mate.word)
				}
			}
		}
	}

	lex.Stats.Headwords = len(lex.entries)
	return lex
}

// Lookup returns the corpus data for a headword, or an empty Entry when the
// word is not in the corpus.
func (l *Lexicon) Lookup(word string) Entry {
	if e, ok := l.entries[domain.NormalizeWord(word)]; ok {
		return *e
	}
	return Entry{}
}

// Headwords returns all corpus headwords, sorted.
func (l *Lexicon) Headwords() []string {
	words := make([]string, 0, len(l.entries))
	for w := range l.entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

func appendUniqueDef(list []domain.DictionaryDefinition, d domain.DictionaryDefinition) []domain.DictionaryDefinition {
	for _, existing := range list {
		if existing == d {
			return list
		}
	}
	return append(list, d)
}
