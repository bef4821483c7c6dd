package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nkoval/centum/internal/db"
	"github.com/nkoval/centum/internal/domain"
)

// stateKey is the fixed key the single state record lives under.
const stateKey = "default"

// SQLiteChallengeRepo implements ChallengeRepo over a SQLite database.
// The whole state is one serialized payload; read-modify-write with a
// single writer, so no row versioning is needed.
type SQLiteChallengeRepo struct {
	db db.DBTX
}

// NewSQLiteChallengeRepo creates a new SQLiteChallengeRepo.
func NewSQLiteChallengeRepo(conn db.DBTX) *SQLiteChallengeRepo {
	return &SQLiteChallengeRepo{db: conn}
}

func (r *SQLiteChallengeRepo) Load(ctx context.Context) (*domain.ChallengeState, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT payload FROM challenge_state WHERE id = ?`, stateKey)

	var payload string
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			// Nothing stored yet: a fresh challenge.
			return domain.NewChallengeState(), nil
		}
		return nil, fmt.Errorf("loading challenge state: %w", err)
	}
	return decodeState([]byte(payload)), nil
}

func (r *SQLiteChallengeRepo) Save(ctx context.Context, state *domain.ChallengeState) error {
	payload, err := encodeState(state)
	if err != nil {
		return fmt.Errorf("encoding challenge state: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO challenge_state (id, payload, updated_at) VALUES (?, ?, ?)`,
		stateKey, string(payload), nowUTC())
	if err != nil {
		return fmt.Errorf("saving challenge state: %w", err)
	}
	return nil
}
