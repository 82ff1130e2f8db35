package builder

import (
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/heartmarshall/aivocab-backend/internal/builder/supplement"
	"github.com/heartmarshall/aivocab-backend/internal/builder/wordnet"
	"github.com/heartmarshall/aivocab-backend/internal/domain"
)

// posKeys are the supplement row keys recognized as parts of speech; their
// values are translation runs.
var posKeys = map[string]bool{
	"adjective": true, "verb": true, "noun": true, "adverb": true,
	"suffix": true, "prefix": true, "preposition": true,
	"conjunction": true, "interjection": true,
}

// translationSplitter splits a translation run on half/full-width commas and
// half/full-width spaces.
var translationSplitter = regexp.MustCompile(`[,\s，　]+`)

// mergeRecord combines the supplement rows and the corpus entry for one
// headword into a normalized dictionary record. Every list in the result is
// sorted so a rebuild over the same inputs is byte-identical.
//
// Rules:
//   - part_of_speech: union of both sources
//   - raw_examples: union of both sources, exact-string dedup
//   - definitions: supplement definitions (untagged) first, then corpus
//     definitions tagged by part of speech
//   - translations: supplement only, per-POS deduplicated sets
//   - synonyms: corpus only, never containing the headword itself
func mergeRecord(word string, rows []supplement.Row, corpus wordnet.Entry) *domain.DictionaryRecord {
	posSet := map[string]bool{}
	defSet := map[string]bool{}
	exampleSet := map[string]bool{}
	translations := map[string]map[string]bool{}

	for _, row := range rows {
		if d, ok := row["definition"]; ok && d != "" {
			defSet[d] = true
		}
		if ex, ok := row["example"]; ok && ex != "" {
			exampleSet[ex] = true
		}
		for key, value := range row {
			if !posKeys[key] {
				continue
			}
			posSet[key] = true
			if translations[key] == nil {
				translations[key] = map[string]bool{}
			}
			for _, tr := range translationSplitter.Split(value, -1) {
				if tr != "" {
					translations[key][tr] = true
				}
			}
		}
	}

	for _, pos := range corpus.PartOfSpeech {
		posSet[pos] = true
	}
	for _, ex := range corpus.Examples {
		exampleSet[ex] = true
	}

	definitions := make([]domain.DictionaryDefinition, 0, len(defSet)+len(corpus.Definitions))
	for _, d := range sortedKeys(defSet) {
		definitions = append(definitions, domain.DictionaryDefinition{Def: d})
	}
	corpusDefs := append([]domain.DictionaryDefinition(nil), corpus.Definitions...)
	sort.Slice(corpusDefs, func(i, j int) bool {
		if corpusDefs[i].POS != corpusDefs[j].POS {
			return corpusDefs[i].POS < corpusDefs[j].POS
		}
		return corpusDefs[i].Def < corpusDefs[j].Def
	})
	definitions = append(definitions, corpusDefs...)

	finalTranslations := make(map[string][]string, len(translations))
	for pos, set := range translations {
		finalTranslations[pos] = sortedKeys(set)
	}

	synonyms := lo.Filter(lo.Uniq(corpus.Synonyms), func(s string, _ int) bool {
		return !strings.EqualFold(s, word)
	})
	sort.Strings(synonyms)

	return &domain.DictionaryRecord{
		Word:         domain.NormalizeWord(word),
		PartOfSpeech: sortedKeys(posSet),
		Definitions:  definitions,
		Translations: finalTranslations,
		RawExamples:  sortedKeys(exampleSet),
		Synonyms:     synonyms,
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := lo.Keys(set)
	sort.Strings(keys)
	return keys
}
