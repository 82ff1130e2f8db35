package wordnet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGWN = `{
  "@graph": [
    {
      "entry": [
        {
          "lemma": {"writtenForm": "happy", "partOfSpeech": "a"},
          "sense": [{"synset": "syn-1"}]
        },
        {
          "lemma": {"writtenForm": "glad", "partOfSpeech": "a"},
          "sense": [{"synset": "syn-1"}]
        },
        {
          "lemma": {"writtenForm": "happy", "partOfSpeech": "r"},
          "sense": [{"synset": "syn-2"}]
        },
        {
          "lemma": {"writtenForm": "ice_cream", "partOfSpeech": "n"},
          "sense": [{"synset": "syn-3"}]
        },
        {
          "lemma": {"writtenForm": "oddball", "partOfSpeech": "x"},
          "sense": [{"synset": "syn-3"}]
        }
      ],
      "synset": [
        {"@id": "syn-1", "definition": ["feeling joy"], "example": ["a happy smile"]},
        {"@id": "syn-2", "definition": ["in a joyful manner"]},
        {"@id": "syn-3", "definition": ["frozen dessert"], "example": ["we shared an ice cream"]}
      ]
    }
  ]
}`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordnet.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleGWN), 0o644))
	return path
}

func TestParse(t *testing.T) {
	t.Parallel()

	lex, err := Parse(writeSample(t))
	require.NoError(t, err)

	t.Run("pos union across lemma entries", func(t *testing.T) {
		t.Parallel()
		e := lex.Lookup("happy")
		assert.ElementsMatch(t, []string{"adjective", "adverb"}, e.PartOfSpeech)
	})

	t.Run("definitions tagged by pos", func(t *testing.T) {
		t.Parallel()
		e := lex.Lookup("happy")
		require.Len(t, e.Definitions, 2)
		assert.Equal(t, "adjective", e.Definitions[0].POS)
		assert.Equal(t, "feeling joy", e.Definitions[0].Def)
	})

	t.Run("synonyms exclude headword", func(t *testing.T) {
		t.Parallel()
		e := lex.Lookup("happy")
		assert.Equal(t, []string{"glad"}, e.Synonyms)
		assert.NotContains(t, lex.Lookup("glad").Synonyms, "glad")
	})

	t.Run("underscores become spaces", func(t *testing.T) {
		t.Parallel()
		e := lex.Lookup("ice cream")
		assert.Equal(t, []string{"noun"}, e.PartOfSpeech)
		assert.Equal(t, []string{"we shared an ice cream"}, e.Examples)
	})

	t.Run("unknown pos tag dropped", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, lex.Lookup("oddball").PartOfSpeech)
	})

	t.Run("missing word yields empty entry", func(t *testing.T) {
		t.Parallel()
		e := lex.Lookup("absent")
		assert.Empty(t, e.PartOfSpeech)
		assert.Empty(t, e.Synonyms)
	})
}

func TestParseBadFile(t *testing.T) {
	t.Parallel()

	_, err := Parse(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
