package vocabulary

import (
	"github.com/heartmarshall/vocab-quiz/internal/domain"
)

// WordInput holds the editable fields of a word.
type WordInput struct {
	EnglishText  string
	Translations []string
}

// toWord cleans the input and validates it as a storable word.
func (i WordInput) toWord() (*domain.Word, error) {
	translations, err := domain.NewTranslations(i.Translations)
	if err != nil {
		return nil, err
	}

	w := &domain.Word{
		EnglishText:  domain.CleanText(i.EnglishText),
		Translations: translations,
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// ListInput holds pagination parameters for List.
type ListInput struct {
	Limit  int
	Offset int
}

func (i ListInput) normalize() ListInput {
	if i.Limit <= 0 {
		i.Limit = defaultPageSize
	}
	if i.Limit > maxPageSize {
		i.Limit = maxPageSize
	}
	if i.Offset < 0 {
		i.Offset = 0
	}
	return i
}

// ImportItem is one word of a bulk import.
type ImportItem struct {
	Line int
	WordInput
}

// ImportError describes an item that was skipped during import.
type ImportError struct {
	Line        int
	EnglishText string
	Reason      string
}

// ImportResult summarizes a bulk import.
type ImportResult struct {
	Created int
	Updated int
	Skipped []ImportError
}
