// Package wordlist parses word list files into import items.
// Each line has the form "english__translation1--translation2--...".
// Pure function: lines in, import items out. No database dependencies.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
	"github.com/heartmarshall/vocab-quiz/internal/service/vocabulary"
)

const (
	wordSeparator        = "__"
	translationSeparator = "--"
	maxLineBytes         = 64 * 1024
)

// Issue describes a line that was skipped or altered while parsing.
type Issue struct {
	Line   int
	Text   string
	Reason string
}

// Result holds the parsed items and the issues found on the way.
type Result struct {
	Items    []vocabulary.ImportItem
	Skipped  []Issue
	Warnings []Issue
}

// ParseFile reads and parses the word list at path on fs.
func ParseFile(fs afero.Fs, path string) (*Result, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	res, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return res, nil
}

// Parse reads a word list. Lines without the "__" separator, an English
// part or at least one translation are skipped. Translations beyond the
// fifth are dropped with a warning.
func Parse(r io.Reader) (*Result, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	res := &Result{}
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if line == "" {
			continue
		}

		english, rest, ok := strings.Cut(line, wordSeparator)
		if !ok {
			res.Skipped = append(res.Skipped, Issue{Line: lineNo, Text: line, Reason: "missing \"__\" separator"})
			continue
		}
		english = strings.TrimSpace(english)

		var translations []string
		for _, t := range strings.Split(rest, translationSeparator) {
			if t = strings.TrimSpace(t); t != "" {
				translations = append(translations, t)
			}
		}

		if english == "" || len(translations) == 0 {
			res.Skipped = append(res.Skipped, Issue{Line: lineNo, Text: line, Reason: "empty English word or translations"})
			continue
		}
		if len(translations) > domain.MaxTranslations {
			res.Warnings = append(res.Warnings, Issue{
				Line:   lineNo,
				Text:   english,
				Reason: fmt.Sprintf("kept the first %d of %d translations", domain.MaxTranslations, len(translations)),
			})
			translations = translations[:domain.MaxTranslations]
		}

		res.Items = append(res.Items, vocabulary.ImportItem{
			Line:      lineNo,
			WordInput: vocabulary.WordInput{EnglishText: english, Translations: translations},
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
	}

	return res, nil
}
