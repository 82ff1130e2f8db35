package word

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"github.com/heartmarshall/aivocab-backend/internal/domain"
	"github.com/heartmarshall/aivocab-backend/internal/provider"
)

// fallback definition used when the model's output cannot be salvaged.
// Japanese-facing product: the placeholder strings are what the client
// renders verbatim.
const (
	fallbackPartOfSpeech = "未分類"
	fallbackTranslation  = "データが取得できませんでした。"
)

// Enrich turns a headword into a complete card draft. The offline dictionary
// record is ground truth for the generation prompt; live phonetics from the
// dictionary API override whatever the model produced. Malformed model
// output degrades to a deterministic fallback, never to an error; only a
// failed generation call itself is surfaced.
func (s *Service) Enrich(ctx context.Context, headword string) (*domain.GeneratedWordInfo, error) {
	word := domain.NormalizeWord(headword)
	if word == "" {
		return nil, domain.NewValidationError("word", "must not be empty")
	}

	record, err := s.dict.GetByWord(ctx, word)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("fetch dictionary record: %w", err)
		}
		// Unknown words still get a generated entry, on empty ground truth.
		record = domain.EmptyDictionaryRecord(word)
	}

	live := s.fetchLiveData(ctx, word)

	prompt, err := buildPrompt(word, record)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.log.ErrorContext(ctx, "generation call failed",
			slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("generate entry for %q: %w", word, domain.ErrGeneration)
	}

	info, err := parseGenerated(raw)
	if err == nil {
		err = validateGenerated(info)
	}
	if err != nil {
		s.log.WarnContext(ctx, "generated entry unusable, using fallback",
			slog.String("word", word), slog.String("error", err.Error()))
		info = fallbackWordInfo(word)
	} else {
		sanitizeGenerated(info)
	}

	if live != nil {
		if p := live.PrimaryPhonetic(); p != nil {
			info.Phonetics = p
		}
	}

	return info, nil
}

// fetchLiveData fetches live dictionary data. Every failure mode is treated
// as "no live data": the enrichment call must not depend on a third-party
// API being up.
func (s *Service) fetchLiveData(ctx context.Context, word string) *provider.DictionaryResult {
	live, err := s.live.FetchEntry(ctx, word)
	if err != nil {
		s.log.WarnContext(ctx, "live dictionary lookup failed",
			slog.String("word", word), slog.String("error", err.Error()))
		return nil
	}
	return live
}

// buildPrompt embeds the dictionary record as ground truth and pins down the
// output schema. The model must not invent facts outside the record.
func buildPrompt(word string, record *domain.DictionaryRecord) (string, error) {
	recordJSON, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal dictionary record: %w", err)
	}

	return fmt.Sprintf(`You are an expert English-Japanese dictionary editor. You format trusted dictionary data into a specified JSON structure. Never invent facts that are not present in the dictionary data below.

# Dictionary data (ground truth):
%s

# Hard constraints:
1. Output ONLY a valid JSON object
2. No explanations, no comments, no Markdown
3. No text outside the JSON

# Your task for the word "%s":
- "definitions": group the Japanese translations by part of speech. Each object has "part_of_speech" (the part of speech written in Japanese, e.g. "名詞", "動詞") and "japanese" (a list of at most 3 of the most common Japanese translations fitting that part of speech). Each part_of_speech value must appear exactly once.
- "synonyms": pick at most 5 of the most common entries from the dictionary data's synonyms, no duplicates, English only. Use [] when there are none.
- "example_sentences": based on raw_examples, produce at most 3 pairs of a natural, concise English sentence that contains the word "%s" and its natural Japanese translation.

Output strictly in this JSON format (valid JSON only, nothing else):

{
  "english": "%s",
  "definitions": [
    {
      "part_of_speech": "名詞",
      "japanese": ["情報", "知識"]
    }
  ],
  "synonyms": ["data", "details"],
  "example_sentences": [
    {
      "english": "I need more information about the project.",
      "japanese": "そのプロジェクトに関するもっと多くの情報が必要です。"
    }
  ]
}`, recordJSON, word, word, word), nil
}

// fenceMarkers strips Markdown code-fence tokens before brace slicing.
var fenceMarkers = regexp.MustCompile("```json\\s*|\\s*```")

// parseGenerated parses the model output with a two-stage strategy: strict
// parse of the full text first, then fence stripping plus first-{ to last-}
// slicing. Both stages failing is the caller's cue to fall back.
func parseGenerated(raw string) (*domain.GeneratedWordInfo, error) {
	var info domain.GeneratedWordInfo
	if err := json.Unmarshal([]byte(raw), &info); err == nil {
		return &info, nil
	}

	extracted, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	info = domain.GeneratedWordInfo{}
	if err := json.Unmarshal([]byte(extracted), &info); err != nil {
		return nil, fmt.Errorf("parse extracted JSON: %w", err)
	}
	return &info, nil
}

// extractJSON strips code fences and returns the substring between the first
// { and the last }.
func extractJSON(s string) (string, error) {
	cleaned := fenceMarkers.ReplaceAllString(s, "")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end <= start {
		return "", errors.New("no JSON object found in response")
	}
	return cleaned[start : end+1], nil
}

// validateGenerated checks the parsed object against the schema: non-empty
// headword, at least one definition group, unique non-empty parts of speech,
// non-empty translation lists.
func validateGenerated(info *domain.GeneratedWordInfo) error {
	if info.English == "" {
		return errors.New("missing english headword")
	}
	if len(info.Definitions) == 0 {
		return errors.New("no definition groups")
	}

	seen := make(map[string]bool, len(info.Definitions))
	for _, def := range info.Definitions {
		if def.PartOfSpeech == "" {
			return errors.New("definition group without part of speech")
		}
		if seen[def.PartOfSpeech] {
			return fmt.Errorf("duplicate part of speech %q", def.PartOfSpeech)
		}
		seen[def.PartOfSpeech] = true
		if len(def.Japanese) == 0 {
			return fmt.Errorf("part of speech %q has no translations", def.PartOfSpeech)
		}
	}
	return nil
}

// sanitizeGenerated enforces the list bounds the prompt asks for, in case
// the model ignored them.
func sanitizeGenerated(info *domain.GeneratedWordInfo) {
	info.Synonyms = lo.Uniq(info.Synonyms)
	if len(info.Synonyms) > domain.MaxSynonyms {
		info.Synonyms = info.Synonyms[:domain.MaxSynonyms]
	}
	if info.Synonyms == nil {
		info.Synonyms = []string{}
	}

	if len(info.ExampleSentences) > domain.MaxExampleSentences {
		info.ExampleSentences = info.ExampleSentences[:domain.MaxExampleSentences]
	}
	if info.ExampleSentences == nil {
		info.ExampleSentences = []domain.ExampleSentence{}
	}
}

// fallbackWordInfo is the deterministic object returned when the model's
// output fails both parse stages or schema validation.
func fallbackWordInfo(word string) *domain.GeneratedWordInfo {
	return &domain.GeneratedWordInfo{
		English: word,
		Definitions: []domain.Definition{
			{PartOfSpeech: fallbackPartOfSpeech, Japanese: []string{fallbackTranslation}},
		},
		Synonyms:         []string{},
		ExampleSentences: []domain.ExampleSentence{},
	}
}
