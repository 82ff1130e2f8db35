package domain

import "time"

// Definition groups Japanese translations under a single part of speech.
// Within one GeneratedWordInfo or WordCard the part-of-speech values are
// mutually unique.
type Definition struct {
	PartOfSpeech string   `json:"part_of_speech" firestore:"part_of_speech"`
	Japanese     []string `json:"japanese" firestore:"japanese"`
}

// ExampleSentence is an English example paired with its Japanese translation.
type ExampleSentence struct {
	English  string `json:"english" firestore:"english"`
	Japanese string `json:"japanese" firestore:"japanese"`
}

// PhoneticInfo holds IPA text and an audio URL for a headword.
type PhoneticInfo struct {
	Text      string `json:"text,omitempty" firestore:"text"`
	Audio     string `json:"audio,omitempty" firestore:"audio"`
	SourceURL string `json:"sourceUrl,omitempty" firestore:"source_url"`
}

// GeneratedWordInfo is the validated output of the enrichment pipeline.
// Transient: it is only persisted when the user saves it as a WordCard.
type GeneratedWordInfo struct {
	English          string            `json:"english"`
	Definitions      []Definition      `json:"definitions"`
	Synonyms         []string          `json:"synonyms"`
	ExampleSentences []ExampleSentence `json:"example_sentences"`
	Phonetics        *PhoneticInfo     `json:"phonetics,omitempty"`
}

// Limits enforced on generated content.
const (
	MaxSynonyms         = 5
	MaxExampleSentences = 3
)

// WordCard is one saved vocabulary entry. A card belongs to exactly one
// wordbook; deleting the wordbook deletes its cards.
type WordCard struct {
	ID               string            `json:"id" firestore:"id"`
	WordbookID       string            `json:"wordbook_id" firestore:"wordbook_id"`
	OwnerID          string            `json:"owner_id" firestore:"owner_id"`
	English          string            `json:"english" firestore:"english"`
	Definitions      []Definition      `json:"definitions" firestore:"definitions"`
	Synonyms         []string          `json:"synonyms" firestore:"synonyms"`
	ExampleSentences []ExampleSentence `json:"example_sentences" firestore:"example_sentences"`
	Phonetics        *PhoneticInfo     `json:"phonetics,omitempty" firestore:"phonetics"`
	CreatedAt        time.Time         `json:"created_at" firestore:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at" firestore:"updated_at"`
}
