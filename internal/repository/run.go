package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swtya/meshlint/internal/model"
)

type RunRepository struct {
	pool *pgxpool.Pool
}

func NewRunRepository(pool *pgxpool.Pool) *RunRepository {
	return &RunRepository{pool: pool}
}

// Create stores a completed lint run with its full report.
func (r *RunRepository) Create(ctx context.Context, sessionID, objectName string, totalProblems int, report json.RawMessage) (*model.Run, error) {
	var run model.Run
	err := r.pool.QueryRow(ctx,
		`INSERT INTO lint_runs (session_id, object_name, total_problems, report)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, session_id, object_name, total_problems, report, created_at`,
		sessionID, objectName, totalProblems, report,
	).Scan(&run.ID, &run.SessionID, &run.ObjectName, &run.TotalProblems, &run.Report, &run.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// Get returns one run by id, ErrNotFound when it does not exist.
func (r *RunRepository) Get(ctx context.Context, id int) (*model.Run, error) {
	var run model.Run
	err := r.pool.QueryRow(ctx,
		`SELECT id, session_id, object_name, total_problems, report, created_at
		 FROM lint_runs WHERE id = $1`, id,
	).Scan(&run.ID, &run.SessionID, &run.ObjectName, &run.TotalProblems, &run.Report, &run.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// List returns the most recent runs, newest first.
func (r *RunRepository) List(ctx context.Context, limit int) ([]model.Run, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, session_id, object_name, total_problems, report, created_at
		 FROM lint_runs ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		var run model.Run
		if err := rows.Scan(&run.ID, &run.SessionID, &run.ObjectName,
			&run.TotalProblems, &run.Report, &run.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// ListBySession returns a session's runs, newest first.
func (r *RunRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]model.Run, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, session_id, object_name, total_problems, report, created_at
		 FROM lint_runs WHERE session_id = $1
		 ORDER BY created_at DESC, id DESC LIMIT $2`, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		var run model.Run
		if err := rows.Scan(&run.ID, &run.SessionID, &run.ObjectName,
			&run.TotalProblems, &run.Report, &run.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
