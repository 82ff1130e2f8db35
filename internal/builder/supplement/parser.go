// Package supplement parses the hand-curated supplement source file into
// per-headword rows. Pure function: file path in, maps out. No database
// dependencies.
package supplement

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/heartmarshall/aivocab-backend/internal/domain"
)

// Row holds the key/value tokens of one supplement line, minus the leading
// word key. Values are unquoted.
type Row map[string]string

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines   int
	SkippedLines int
	Headwords    int
}

// keyValuePattern matches key="quoted value" or key=bare-token runs.
// Word values are NOT matched by this pattern on purpose: the word value run
// extends to the first occurrence of another key= token, which is how
// headwords containing spaces survive without quoting.
var keyValuePattern = regexp.MustCompile(`\b(\w+)=("[^"]*"|\S+)`)

// Parse reads a supplement file and groups its rows by normalized headword.
// Lines that do not start with "word=" or have an empty word value are
// skipped with a warning; a bad line never aborts the whole parse.
func Parse(path string, log *slog.Logger) (map[string][]Row, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open supplement file: %w", err)
	}
	defer f.Close()

	rows, stats := ParseReader(f, log)
	return rows, stats, nil
}

// ParseReader is the io.Reader form of Parse, used directly in tests.
func ParseReader(r io.Reader, log *slog.Logger) (map[string][]Row, Stats) {
	result := make(map[string][]Row)
	var stats Stats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\uFEFF"))
		if line == "" {
			continue
		}
		stats.TotalLines++

		if !strings.HasPrefix(line, "word=") {
			stats.SkippedLines++
			log.Warn("supplement line does not start with word=, skipping",
				slog.Int("line", lineNo))
			continue
		}

		word, row := splitLine(strings.TrimPrefix(line, "word="))
		if word == "" {
			stats.SkippedLines++
			log.Warn("supplement line has empty word value, skipping",
				slog.Int("line", lineNo))
			continue
		}

		key := domain.NormalizeWord(word)
		result[key] = append(result[key], row)
	}

	stats.Headwords = len(result)
	return result, stats
}

// splitLine separates the word value run from the remaining key=value tokens.
// The word value extends up to the first other key= token, so unquoted
// headwords with internal spaces parse correctly.
func splitLine(content string) (string, Row) {
	matches := keyValuePattern.FindAllStringSubmatchIndex(content, -1)

	wordPart := content
	row := Row{}

	if len(matches) > 0 {
		wordPart = content[:matches[0][0]]
		for _, m := range matches {
			key := content[m[2]:m[3]]
			value := strings.Trim(content[m[4]:m[5]], `"`)
			row[key] = value
		}
	}

	return strings.Trim(strings.TrimSpace(wordPart), `"`), row
}
