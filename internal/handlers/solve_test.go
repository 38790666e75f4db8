package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func postSolve(t *testing.T, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewSolve(testLogger(), nil)
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Post(w, r)
	return w
}

func TestSolvePost(t *testing.T) {
	w := postSolve(t, "/solve", "?1?")
	require.Equal(t, http.StatusOK, w.Code)

	var response SolveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "?1?", response.Input)
	assert.Equal(t, 2, response.Possibilities)
	assert.False(t, response.Guaranteed)
	require.NotNil(t, response.Guess)
	assert.InDelta(t, 0.5, response.Guess.Safety, 1e-9)
	assert.Equal(t, "@1?", response.Grid)
	assert.Empty(t, response.Completions)
}

func TestSolvePostWithCompletions(t *testing.T) {
	w := postSolve(t, "/solve?all=true", "?1?")
	require.Equal(t, http.StatusOK, w.Code)

	var response SolveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.ElementsMatch(t, []string{"x1?", "?1x"}, response.Completions)
}

func TestSolvePostAlreadySolved(t *testing.T) {
	w := postSolve(t, "/solve", "1?1")
	require.Equal(t, http.StatusOK, w.Code)

	var response SolveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.AlreadySolved)
	assert.Equal(t, "1x1", response.Grid)
	assert.Equal(t, "1x1", response.Propagated)
}

func TestSolvePostParseError(t *testing.T) {
	w := postSolve(t, "/solve", "???\n????")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "expected 3 found 4")
}

func TestSolvePostInconsistentBoard(t *testing.T) {
	w := postSolve(t, "/solve", "x1x")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "more than it should have")
}
