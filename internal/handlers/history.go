package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/sirupsen/logrus"

	"github.com/okhmat/minesweeper-solver/internal/config"
	"github.com/okhmat/minesweeper-solver/internal/middleware"
	"github.com/okhmat/minesweeper-solver/internal/repository"
)

const historyPageSize = 50

// History exposes a logged-in player's past solve runs.
type History struct {
	logger logrus.FieldLogger
	repo   *repository.Queries
}

func NewHistory(logger logrus.FieldLogger, repo *repository.Queries) *History {
	return &History{logger: logger, repo: repo}
}

type SolveRunDTO struct {
	SolveRunId    int64              `json:"solve_run_id"`
	Board         string             `json:"board"`
	Result        string             `json:"result"`
	Possibilities int                `json:"possibilities"`
	Guaranteed    bool               `json:"guaranteed"`
	GuessSafety   *float64           `json:"guess_safety,omitempty"`
	DurationMs    int64              `json:"duration_ms"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

func newSolveRunDTO(run *repository.SolveRun) *SolveRunDTO {
	return &SolveRunDTO{
		SolveRunId:    run.SolveRunId,
		Board:         run.Board,
		Result:        run.Result,
		Possibilities: run.Possibilities,
		Guaranteed:    run.Guaranteed,
		GuessSafety:   run.GuessSafety,
		DurationMs:    run.DurationMs,
		CreatedAt:     run.CreatedAt,
	}
}

func playerClaims(r *http.Request) (*config.PlayerClaims, bool) {
	claims, ok := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims)
	return claims, ok
}

func (h *History) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := playerClaims(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	runs, err := h.repo.ListSolveRuns(r.Context(), claims.PlayerId, historyPageSize)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to list solve runs")
		return
	}

	dtos := make([]*SolveRunDTO, 0, len(runs))
	for _, run := range runs {
		dtos = append(dtos, newSolveRunDTO(run))
	}
	sendJSONOrLog(w, h.logger, dtos)
}

func (h *History) Fetch(w http.ResponseWriter, r *http.Request) {
	claims, ok := playerClaims(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	run, err := h.repo.FetchSolveRun(r.Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to fetch solve run")
		return
	}
	if run.PlayerId == nil || *run.PlayerId != claims.PlayerId {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	sendJSONOrLog(w, h.logger, newSolveRunDTO(run))
}
