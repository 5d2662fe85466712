package http_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/reflex"
	"github.com/aretw0/reflex/pkg/action"
	httpadapter "github.com/aretw0/reflex/pkg/adapters/http"
	"github.com/aretw0/reflex/pkg/adapters/memory"
	"github.com/aretw0/reflex/pkg/domain"
	"github.com/aretw0/reflex/pkg/registry"
)

const testCatalog = `
name: test
commands:
  - name: press-enter
    description: Press the enter key
    steps:
      - tool: press
        with: {key: enter}
`

func newTestEngine(t *testing.T, calls *[]action.Extras) *reflex.Engine {
	t.Helper()

	reg := registry.New()
	reg.Register(registry.Tool{
		Name:   "press",
		Params: []string{"key", "n"},
		Fn: func(ctx context.Context, args action.Extras) error {
			*calls = append(*calls, args)
			return nil
		},
	})

	eng, err := reflex.New("",
		reflex.WithLoader(memory.NewLoader([]byte(testCatalog))),
		reflex.WithRegistry(reg),
		reflex.WithJournal(memory.NewJournal()),
	)
	require.NoError(t, err)
	return eng
}

func TestServer_ListCommands(t *testing.T) {
	var calls []action.Extras
	handler := httpadapter.NewHandler(newTestEngine(t, &calls))

	req := httptest.NewRequest("GET", "/commands", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)

	var infos []domain.CommandInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "press-enter", infos[0].Name)
	assert.Equal(t, "stop", infos[0].OnFailure)
}

func TestServer_ExecuteCommand(t *testing.T) {
	var calls []action.Extras
	handler := httpadapter.NewHandler(newTestEngine(t, &calls))

	req := httptest.NewRequest("POST", "/commands/press-enter/execute", strings.NewReader(`{"n": 1}`))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)

	var rec domain.ExecutionRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.True(t, rec.Success)
	assert.Equal(t, "press-enter", rec.Command)

	require.Len(t, calls, 1)
	assert.Equal(t, "enter", calls[0]["key"])
}

func TestServer_ExecuteUnknownCommand(t *testing.T) {
	var calls []action.Extras
	handler := httpadapter.NewHandler(newTestEngine(t, &calls))

	req := httptest.NewRequest("POST", "/commands/no-such/execute", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Empty(t, calls)
}

func TestServer_RedoAndJournal(t *testing.T) {
	var calls []action.Extras
	handler := httpadapter.NewHandler(newTestEngine(t, &calls))

	// Nothing to redo yet.
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("POST", "/redo", nil))
	assert.Equal(t, 404, w.Code)

	// Execute once, then redo it.
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("POST", "/commands/press-enter/execute", nil))
	require.Equal(t, 200, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("POST", "/redo", nil))
	assert.Equal(t, 200, w.Code)
	assert.Len(t, calls, 2)

	// Both runs are journaled.
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/journal?limit=10", nil))
	assert.Equal(t, 200, w.Code)

	var recs []domain.ExecutionRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recs))
	assert.Len(t, recs, 2)
}

func TestServer_Healthz(t *testing.T) {
	var calls []action.Extras
	handler := httpadapter.NewHandler(newTestEngine(t, &calls))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))
	assert.Equal(t, 200, w.Code)
}
