// Package provider defines the neutral result types returned by external
// data providers and consumed by the service layer.
package provider

import "github.com/heartmarshall/aivocab-backend/internal/domain"

// DictionaryResult is the live data fetched for one headword from an
// external dictionary API.
type DictionaryResult struct {
	Word        string
	Definitions []DefinitionResult
	Phonetics   []domain.PhoneticInfo
}

// DefinitionResult is a single live definition with its part of speech and
// optional example sentence.
type DefinitionResult struct {
	PartOfSpeech string
	Definition   string
	Example      string
}

// PrimaryPhonetic returns the first phonetic entry with a non-empty audio
// URL, or nil when none has audio. Text-only transcriptions are not worth
// overriding the generated entry for.
func (r *DictionaryResult) PrimaryPhonetic() *domain.PhoneticInfo {
	for i := range r.Phonetics {
		if r.Phonetics[i].Audio != "" {
			return &r.Phonetics[i]
		}
	}
	return nil
}
