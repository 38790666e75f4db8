package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/okhmat/minesweeper-solver/internal/config"
	"github.com/okhmat/minesweeper-solver/internal/grid"
	"github.com/okhmat/minesweeper-solver/internal/solver"
)

type wsMessage struct {
	Type  string `json:"type"`
	Board string `json:"board,omitempty"`
	Error string `json:"error,omitempty"`

	Report *SolveResponse `json:"report,omitempty"`
}

// ConnectWS upgrades the connection and solves boards interactively: each
// text message is a board, each discovered completion is streamed back as
// it is found, and a final report message closes the exchange.
func (h *Solve) ConnectWS(ws *config.WebSocket) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := ws.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.WithError(err).Error("unable to upgrade connection")
			return
		}
		defer conn.Close()

		for {
			mt, buf, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if mt != websocket.TextMessage {
				continue
			}
			if err := h.solveToConn(conn, string(buf)); err != nil {
				h.logger.WithError(err).Debug("websocket write failed")
				return
			}
		}
	}
}

func (h *Solve) solveToConn(conn *websocket.Conn, text string) error {
	board, err := grid.Parse(text)
	if err != nil {
		return conn.WriteJSON(wsMessage{Type: "error", Error: err.Error()})
	}

	var writeErr error
	res, err := solver.Solve(board, solver.Options{
		OnPossibility: func(b *grid.Board) {
			if writeErr == nil {
				writeErr = conn.WriteJSON(wsMessage{Type: "possibility", Board: b.String()})
			}
		},
	})
	if writeErr != nil {
		return writeErr
	}
	if err != nil {
		return conn.WriteJSON(wsMessage{Type: "error", Error: err.Error()})
	}

	return conn.WriteJSON(wsMessage{
		Type:   "report",
		Report: newSolveResponse(res, false),
	})
}
