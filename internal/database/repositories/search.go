package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"notecards/internal/database/models"
	"strings"
)

type SearchRepository interface {
	SearchNotes(ctx context.Context, query string) ([]models.Note, error)
}

type searchRepository struct {
	db *sql.DB
}

func NewSearchRepository(db *sql.DB) SearchRepository {
	return &searchRepository{db: db}
}

func (s *searchRepository) SearchNotes(ctx context.Context, query string) ([]models.Note, error) {
	formattedQuery := formatTsQuery(query)
	if formattedQuery == "" {
		return []models.Note{}, nil
	}

	tsQuery := "to_tsquery('english', $1)"
	document := "to_tsvector('english', title || ' ' || coalesce(body, ''))"
	notesQuery := `
	SELECT ` + noteColumns + `
	FROM notes
	WHERE ` + document + ` @@ ` + tsQuery + `
	ORDER BY ts_rank(` + document + `, ` + tsQuery + `) DESC`

	rows, err := s.db.QueryContext(ctx, notesQuery, formattedQuery)
	if err != nil {
		return nil, fmt.Errorf("error searching notes: %w", err)
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		var note models.Note
		if err := scanNote(rows, &note); err != nil {
			return nil, fmt.Errorf("error scanning note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}
	return notes, nil
}

// formatTsQuery turns free text into a prefix-matching AND query, dropping
// characters that have meaning in tsquery syntax.
func formatTsQuery(query string) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '\'', '&', '|', '!', ':', '(', ')', '*', '<', '>', '\\':
			return ' '
		}
		return r
	}, query)

	words := strings.Fields(clean)
	for i, word := range words {
		words[i] = word + ":*"
	}
	return strings.Join(words, " & ")
}
