// Package word implements the Word repository using PostgreSQL.
package word

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-quiz/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-quiz/internal/domain"
)

const table = "words"

var columns = []string{
	"id", "english_text",
	"translation_1", "translation_2", "translation_3", "translation_4", "translation_5",
	"created_at", "updated_at",
}

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a word by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	return r.getOne(ctx, r.selectWords().Where(sq.Eq{"id": id}), id)
}

// GetByEnglishText returns the word whose English text matches text
// case-insensitively. An exact-case match wins over other spellings.
func (r *Repo) GetByEnglishText(ctx context.Context, text string) (*domain.Word, error) {
	b := r.selectWords().
		Where(sq.Expr("lower(english_text) = lower(?)", text)).
		OrderByClause("english_text = ? DESC", text)
	return r.getOne(ctx, b, text)
}

// Random returns one word picked uniformly at random.
// Returns domain.ErrNotFound when the table is empty.
func (r *Repo) Random(ctx context.Context) (*domain.Word, error) {
	return r.getOne(ctx, r.selectWords().OrderBy("random()"), "random")
}

func (r *Repo) selectWords() sq.SelectBuilder {
	return postgres.Builder.Select(columns...).From(table)
}

func (r *Repo) getOne(ctx context.Context, b sq.SelectBuilder, key any) (*domain.Word, error) {
	query, args, err := b.Limit(1).ToSql()
	if err != nil {
		return nil, err
	}

	var row wordRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "word", key)
	}

	w := row.toDomain()
	return &w, nil
}

// List returns one page of words, newest first, plus the total count.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Word, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := r.selectWords().
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	var rows []wordRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, postgres.MapError(err, "word", "list")
	}

	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return toDomainList(rows), total, nil
}

// Count returns the number of stored words.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, args, err := postgres.Builder.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "word", "count")
	}
	return n, nil
}

// SampleExcluding returns up to n distinct random words other than excludeID.
func (r *Repo) SampleExcluding(ctx context.Context, excludeID uuid.UUID, n int) ([]domain.Word, error) {
	query, args, err := r.selectWords().
		Where(sq.NotEq{"id": excludeID}).
		OrderBy("random()").
		Limit(uint64(n)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []wordRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "word", excludeID)
	}
	return toDomainList(rows), nil
}

// Create inserts a new word and returns the persisted record.
// A duplicate English text yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	now := time.Now().UTC()
	row := fromDomain(w)

	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(row.ID, row.EnglishText,
			row.Translation1, row.Translation2, row.Translation3, row.Translation4, row.Translation5,
			now, now).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out wordRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "word", w.EnglishText)
	}

	created := out.toDomain()
	return &created, nil
}

// Update overwrites the English text and translations of an existing word.
func (r *Repo) Update(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	row := fromDomain(w)

	query, args, err := postgres.Builder.
		Update(table).
		SetMap(map[string]any{
			"english_text":  row.EnglishText,
			"translation_1": row.Translation1,
			"translation_2": row.Translation2,
			"translation_3": row.Translation3,
			"translation_4": row.Translation4,
			"translation_5": row.Translation5,
			"updated_at":    sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": w.ID}).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out wordRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "word", w.ID)
	}

	updated := out.toDomain()
	return &updated, nil
}

// Upsert inserts w, or replaces the translations of the word with the same
// English text. created reports whether a new row was inserted.
func (r *Repo) Upsert(ctx context.Context, w *domain.Word) (*domain.Word, bool, error) {
	now := time.Now().UTC()
	row := fromDomain(w)

	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(row.ID, row.EnglishText,
			row.Translation1, row.Translation2, row.Translation3, row.Translation4, row.Translation5,
			now, now).
		Suffix(`ON CONFLICT (english_text) DO UPDATE SET
			translation_1 = EXCLUDED.translation_1,
			translation_2 = EXCLUDED.translation_2,
			translation_3 = EXCLUDED.translation_3,
			translation_4 = EXCLUDED.translation_4,
			translation_5 = EXCLUDED.translation_5,
			updated_at    = EXCLUDED.updated_at
			RETURNING ` + returning() + `, (xmax = 0) AS inserted`).
		ToSql()
	if err != nil {
		return nil, false, err
	}

	var out upsertRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, false, postgres.MapError(err, "word", w.EnglishText)
	}

	saved := out.toDomain()
	return &saved, out.Inserted, nil
}

// Delete removes a word by primary key.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "word", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "word", id)
	}
	return nil
}

// DeleteAll removes every word and returns how many were deleted.
func (r *Repo) DeleteAll(ctx context.Context) (int, error) {
	query, args, err := postgres.Builder.Delete(table).ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "word", "all")
	}
	return int(tag.RowsAffected()), nil
}

func returning() string {
	return strings.Join(columns, ", ")
}
