package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"

	"github.com/okhmat/minesweeper-solver/internal/config"
	"github.com/okhmat/minesweeper-solver/internal/grid"
	"github.com/okhmat/minesweeper-solver/internal/middleware"
	"github.com/okhmat/minesweeper-solver/internal/repository"
	"github.com/okhmat/minesweeper-solver/internal/solver"
)

// Solve serves the solver over HTTP: the request body is the board text,
// options ride in the query string. Runs are recorded when a repository is
// attached; a nil repository disables persistence.
type Solve struct {
	logger  logrus.FieldLogger
	repo    *repository.Queries
	decoder *schema.Decoder
}

func NewSolve(logger logrus.FieldLogger, repo *repository.Queries) *Solve {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return &Solve{logger: logger, repo: repo, decoder: decoder}
}

type SolveOptions struct {
	// All includes every discovered completion in the response.
	All bool `schema:"all"`
}

type GuessDTO struct {
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Safety float64 `json:"safety"`
}

type SolveResponse struct {
	Input         string    `json:"input"`
	Propagated    string    `json:"propagated,omitempty"`
	AlreadySolved bool      `json:"already_solved,omitempty"`
	Possibilities int       `json:"possibilities"`
	Grid          string    `json:"grid"`
	Guaranteed    bool      `json:"guaranteed"`
	Guess         *GuessDTO `json:"guess,omitempty"`
	Completions   []string  `json:"completions,omitempty"`
}

func newSolveResponse(res *solver.Result, includeCompletions bool) *SolveResponse {
	response := &SolveResponse{
		Input:         res.Input.String(),
		AlreadySolved: res.AlreadySolved,
		Possibilities: len(res.Possibilities),
		Guaranteed:    res.Report.Guaranteed,
	}
	if res.Propagated {
		response.Propagated = res.Working.String()
	}
	if res.AlreadySolved {
		response.Grid = res.Working.String()
	} else {
		response.Grid = res.Report.Grid
	}
	if g := res.Report.Guess; g != nil {
		response.Guess = &GuessDTO{X: g.Cell.X, Y: g.Cell.Y, Safety: g.Safety}
	}
	if includeCompletions {
		for _, p := range res.Possibilities {
			response.Completions = append(response.Completions, p.String())
		}
	}
	return response
}

func (h *Solve) Post(w http.ResponseWriter, r *http.Request) {
	var options SolveOptions
	if err := h.decoder.Decode(&options, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	board, err := grid.Parse(string(body))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	start := time.Now()
	res, err := solver.Solve(board, solver.Options{})
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	response := newSolveResponse(res, options.All)
	h.record(r, res, response, time.Since(start))
	sendJSONOrLog(w, h.logger, response)
}

func (h *Solve) record(
	r *http.Request, res *solver.Result, response *SolveResponse, took time.Duration,
) {
	if h.repo == nil {
		return
	}

	var playerId *int64
	if claims, ok := r.Context().
		Value(middleware.CtxPlayerClaims).(*config.PlayerClaims); ok {
		playerId = &claims.PlayerId
	}

	var safety *float64
	if response.Guess != nil {
		safety = &response.Guess.Safety
	}

	_, err := h.repo.CreateSolveRun(r.Context(), repository.CreateSolveRunParams{
		PlayerId:      playerId,
		Board:         response.Input,
		Result:        response.Grid,
		Possibilities: response.Possibilities,
		Guaranteed:    response.Guaranteed,
		GuessSafety:   safety,
		DurationMs:    int64(took / time.Millisecond),
	})
	if err != nil {
		h.logger.WithError(err).Error("unable to record solve run")
	}
}
