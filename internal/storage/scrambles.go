package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Scramble represents a generated scramble in the database.
type Scramble struct {
	ScrambleID   string
	CreatedAt    time.Time
	Length       int
	Policy       string
	Seed         *uint64
	ScrambleText string
	SolutionText *string
	SolvedAt     *time.Time
}

// ScrambleRepository provides CRUD operations for scrambles.
type ScrambleRepository struct {
	db *DB
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

const scrambleColumns = `scramble_id, created_at, length, policy, seed, scramble_text, solution_text, solved_at`

// Create stores a scramble and returns its ID. A zero seed is stored as NULL.
func (r *ScrambleRepository) Create(scramble string, length int, policy string, seed uint64) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var seedVal *int64
	if seed != 0 {
		s := int64(seed)
		seedVal = &s
	}

	_, err := r.db.Exec(`
		INSERT INTO scrambles (scramble_id, created_at, length, policy, seed, scramble_text)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), length, policy, seedVal, scramble)

	if err != nil {
		return "", fmt.Errorf("failed to create scramble: %w", err)
	}

	return id, nil
}

// MarkSolved records the solution applied to a scramble.
func (r *ScrambleRepository) MarkSolved(scrambleID, solution string) error {
	solvedAt := time.Now().UTC()

	result, err := r.db.Exec(`
		UPDATE scrambles
		SET solution_text = ?, solved_at = ?
		WHERE scramble_id = ?
	`, solution, solvedAt.Format(time.RFC3339), scrambleID)
	if err != nil {
		return fmt.Errorf("failed to mark scramble solved: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark scramble solved: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("scramble %s not found", scrambleID)
	}

	return nil
}

// Get retrieves a scramble by ID. It returns nil, nil when there is none.
func (r *ScrambleRepository) Get(scrambleID string) (*Scramble, error) {
	row := r.db.QueryRow(`SELECT `+scrambleColumns+` FROM scrambles WHERE scramble_id = ?`, scrambleID)

	s, err := scanScramble(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble: %w", err)
	}

	return s, nil
}

// GetLast retrieves the most recent scramble.
func (r *ScrambleRepository) GetLast() (*Scramble, error) {
	row := r.db.QueryRow(`
		SELECT ` + scrambleColumns + ` FROM scrambles
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`)

	s, err := scanScramble(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last scramble: %w", err)
	}

	return s, nil
}

// List retrieves recent scrambles, newest first. A non-positive limit
// returns all of them.
func (r *ScrambleRepository) List(limit int) ([]Scramble, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.Query(`
		SELECT `+scrambleColumns+` FROM scrambles
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var scrambles []Scramble
	for rows.Next() {
		s, err := scanScramble(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		scrambles = append(scrambles, *s)
	}

	return scrambles, rows.Err()
}

// Count returns the number of stored scrambles.
func (r *ScrambleRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM scrambles").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count scrambles: %w", err)
	}
	return count, nil
}

// Delete removes a scramble.
func (r *ScrambleRepository) Delete(scrambleID string) error {
	_, err := r.db.Exec("DELETE FROM scrambles WHERE scramble_id = ?", scrambleID)
	if err != nil {
		return fmt.Errorf("failed to delete scramble: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScramble(row rowScanner) (*Scramble, error) {
	var s Scramble
	var createdAtStr string
	var seed sql.NullInt64
	var solution, solvedAtStr sql.NullString

	err := row.Scan(
		&s.ScrambleID, &createdAtStr, &s.Length, &s.Policy,
		&seed, &s.ScrambleText, &solution, &solvedAtStr,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	if seed.Valid {
		v := uint64(seed.Int64)
		s.Seed = &v
	}
	if solution.Valid {
		s.SolutionText = &solution.String
	}
	if solvedAtStr.Valid {
		t, _ := time.Parse(time.RFC3339, solvedAtStr.String)
		s.SolvedAt = &t
	}

	return &s, nil
}
