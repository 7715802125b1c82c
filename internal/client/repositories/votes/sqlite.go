package votes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dgidpl/startup-app/internal/client/models"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, id models.ID) (models.VoteDirection, bool, error) {
	query := `select direction from votes where idea_id = ?`
	row := r.db.QueryRowContext(ctx, query, string(id))

	var direction string
	err := row.Scan(&direction)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read vote: %w", err)
	}

	return models.VoteDirection(direction), true, nil
}

func (r *SQLiteRepository) Record(ctx context.Context, id models.ID, direction models.VoteDirection) error {
	// insert or ignore keeps the first recorded direction: the primary key on
	// idea_id makes a second vote for the same idea a silent no-op.
	query := `insert or ignore into votes (idea_id, direction) values (?, ?)`
	_, err := r.db.ExecContext(ctx, query, string(id), string(direction))
	if err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) All(ctx context.Context) (map[models.ID]models.VoteDirection, error) {
	query := `select idea_id, direction from votes`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select votes: %w", err)
	}
	defer rows.Close()

	result := make(map[models.ID]models.VoteDirection)
	for rows.Next() {
		var id, direction string
		if err := rows.Scan(&id, &direction); err != nil {
			return nil, err
		}
		result[models.ID(id)] = models.VoteDirection(direction)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
