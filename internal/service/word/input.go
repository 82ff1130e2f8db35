package word

import "github.com/heartmarshall/aivocab-backend/internal/domain"

// CreateCardInput carries a card draft to be saved into a wordbook. Usually
// the (possibly user-edited) output of Enrich.
type CreateCardInput struct {
	WordbookID       string
	English          string
	Definitions      []domain.Definition
	Synonyms         []string
	ExampleSentences []domain.ExampleSentence
	Phonetics        *domain.PhoneticInfo
}

// Validate checks required fields and list bounds.
func (in CreateCardInput) Validate() error {
	var errs []domain.FieldError

	if in.WordbookID == "" {
		errs = append(errs, domain.FieldError{Field: "wordbook_id", Message: "must not be empty"})
	}
	if in.English == "" {
		errs = append(errs, domain.FieldError{Field: "english", Message: "must not be empty"})
	}
	if len(in.Definitions) == 0 {
		errs = append(errs, domain.FieldError{Field: "definitions", Message: "must contain at least one group"})
	}

	seen := make(map[string]bool, len(in.Definitions))
	for _, def := range in.Definitions {
		if def.PartOfSpeech == "" {
			errs = append(errs, domain.FieldError{Field: "definitions", Message: "part_of_speech must not be empty"})
			break
		}
		if seen[def.PartOfSpeech] {
			errs = append(errs, domain.FieldError{Field: "definitions", Message: "part_of_speech values must be unique"})
			break
		}
		seen[def.PartOfSpeech] = true
	}

	if len(in.Synonyms) > domain.MaxSynonyms {
		errs = append(errs, domain.FieldError{Field: "synonyms", Message: "too many entries"})
	}
	if len(in.ExampleSentences) > domain.MaxExampleSentences {
		errs = append(errs, domain.FieldError{Field: "example_sentences", Message: "too many entries"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
