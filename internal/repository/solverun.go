package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// SolveRun is one recorded solver invocation.
type SolveRun struct {
	SolveRunId    int64
	PlayerId      *int64
	Board         string
	Result        string
	Possibilities int
	Guaranteed    bool
	GuessSafety   *float64
	DurationMs    int64
	CreatedAt     pgtype.Timestamptz
}

type CreateSolveRunParams struct {
	PlayerId      *int64
	Board         string
	Result        string
	Possibilities int
	Guaranteed    bool
	GuessSafety   *float64
	DurationMs    int64
}

func (q *Queries) CreateSolveRun(ctx context.Context, params CreateSolveRunParams) (*SolveRun, error) {
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO solve_run
			(player_id, board, result, possibilities, guaranteed, guess_safety, duration_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING *`,
		params.PlayerId,
		params.Board,
		params.Result,
		params.Possibilities,
		params.Guaranteed,
		params.GuessSafety,
		params.DurationMs,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[SolveRun])
}

func (q *Queries) ListSolveRuns(ctx context.Context, playerId int64, limit int) ([]*SolveRun, error) {
	rows, _ := q.db.Query(
		ctx,
		`SELECT * FROM solve_run
		WHERE player_id = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		playerId, limit,
	)
	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[SolveRun])
}

func (q *Queries) FetchSolveRun(ctx context.Context, solveRunId int64) (*SolveRun, error) {
	rows, _ := q.db.Query(
		ctx, "SELECT * FROM solve_run WHERE solve_run_id = $1", solveRunId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[SolveRun])
}
