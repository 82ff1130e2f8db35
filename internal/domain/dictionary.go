package domain

// DictionaryDefinition is one English definition tagged with a part of speech.
type DictionaryDefinition struct {
	POS string `json:"pos" firestore:"pos"`
	Def string `json:"def" firestore:"def"`
}

// DictionaryRecord is the normalized dictionary entry produced by the build
// pipeline and stored keyed by lowercase headword. It merges the supplement
// file and the lexical corpus into one schema and serves as ground truth for
// LLM enrichment. Immutable after a build; re-created on full rebuilds.
type DictionaryRecord struct {
	Word         string                 `json:"word" firestore:"word"`
	PartOfSpeech []string               `json:"part_of_speech" firestore:"part_of_speech"`
	Definitions  []DictionaryDefinition `json:"definitions" firestore:"definitions"`
	Translations map[string][]string    `json:"translations,omitempty" firestore:"translations"`
	RawExamples  []string               `json:"raw_examples" firestore:"raw_examples"`
	Synonyms     []string               `json:"synonyms" firestore:"synonyms"`
}

// EmptyDictionaryRecord returns a record shell for a headword that is absent
// from the dictionary collection. Enrichment proceeds on empty data instead
// of failing with not-found.
func EmptyDictionaryRecord(word string) *DictionaryRecord {
	return &DictionaryRecord{
		Word:         word,
		PartOfSpeech: []string{},
		Definitions:  []DictionaryDefinition{},
		RawExamples:  []string{},
		Synonyms:     []string{},
	}
}
