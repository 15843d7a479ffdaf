package word

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
)

// wordRow mirrors a row of the words table. Slots 2..5 are nullable.
type wordRow struct {
	ID           uuid.UUID `db:"id"`
	EnglishText  string    `db:"english_text"`
	Translation1 string    `db:"translation_1"`
	Translation2 *string   `db:"translation_2"`
	Translation3 *string   `db:"translation_3"`
	Translation4 *string   `db:"translation_4"`
	Translation5 *string   `db:"translation_5"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type upsertRow struct {
	wordRow
	Inserted bool `db:"inserted"`
}

func (r wordRow) toDomain() domain.Word {
	return domain.Word{
		ID:          r.ID,
		EnglishText: r.EnglishText,
		Translations: domain.Translations{
			r.Translation1,
			lo.FromPtr(r.Translation2),
			lo.FromPtr(r.Translation3),
			lo.FromPtr(r.Translation4),
			lo.FromPtr(r.Translation5),
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func fromDomain(w *domain.Word) wordRow {
	id := w.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return wordRow{
		ID:           id,
		EnglishText:  w.EnglishText,
		Translation1: w.Translations[0],
		Translation2: nullable(w.Translations[1]),
		Translation3: nullable(w.Translations[2]),
		Translation4: nullable(w.Translations[3]),
		Translation5: nullable(w.Translations[4]),
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toDomainList(rows []wordRow) []domain.Word {
	return lo.Map(rows, func(r wordRow, _ int) domain.Word { return r.toDomain() })
}
