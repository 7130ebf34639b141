package adapter_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minbool.dev/pkg/minbool/internal/adapter"
	"minbool.dev/pkg/minbool/internal/domain"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	catalog, err := adapter.NewExampleCatalog()
	require.NoError(t, err)

	analyzer := domain.NewAnalyzer()
	server := adapter.NewAPIServer("", analyzer.Analyze, analyzer.Validate, domain.Stats, catalog)

	return server.Handler()
}

func postJSON(t *testing.T, handler http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), into))
}

func TestAPI_Parse(t *testing.T) {
	handler := newTestHandler(t)

	rec := postJSON(t, handler, "/api/parse", map[string]string{"expression": "A AND B"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Expression string   `json:"expression"`
		Variables  []string `json:"variables"`
		TruthTable struct {
			Variables []string `json:"variables"`
			Rows      []struct {
				Output  bool `json:"output"`
				Minterm int  `json:"minterm"`
			} `json:"rows"`
		} `json:"truthTable"`
		Simplification *struct {
			Expression string `json:"expression"`
		} `json:"simplification"`
	}
	decode(t, rec, &resp)

	assert.Equal(t, []string{"A", "B"}, resp.Variables)
	require.Len(t, resp.TruthTable.Rows, 4)
	assert.True(t, resp.TruthTable.Rows[3].Output)
	assert.Equal(t, 3, resp.TruthTable.Rows[3].Minterm)
	require.NotNil(t, resp.Simplification)
	assert.Equal(t, "AB", resp.Simplification.Expression)
}

func TestAPI_Parse_SyntaxError(t *testing.T) {
	handler := newTestHandler(t)

	rec := postJSON(t, handler, "/api/parse", map[string]string{"expression": "A AND"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error    string `json:"error"`
		Kind     string `json:"kind"`
		Position *int   `json:"position"`
	}
	decode(t, rec, &resp)

	assert.Equal(t, "SyntaxError", resp.Kind)
	assert.Contains(t, resp.Error, "unexpected end of expression")
	require.NotNil(t, resp.Position)
	assert.Equal(t, 5, *resp.Position)
}

func TestAPI_Parse_LexicalError(t *testing.T) {
	handler := newTestHandler(t)

	rec := postJSON(t, handler, "/api/parse", map[string]string{"expression": "A { B"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Kind string `json:"kind"`
	}
	decode(t, rec, &resp)
	assert.Equal(t, "LexicalError", resp.Kind)
}

func TestAPI_Parse_OmitsSimplificationAboveCap(t *testing.T) {
	handler := newTestHandler(t)

	rec := postJSON(t, handler, "/api/parse", map[string]string{
		"expression": "A OR B OR C OR D OR E OR F OR G",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Simplification *json.RawMessage `json:"simplification"`
	}
	decode(t, rec, &resp)
	assert.Nil(t, resp.Simplification)
}

func TestAPI_Validate(t *testing.T) {
	handler := newTestHandler(t)

	tests := []struct {
		name       string
		expression string
		valid      bool
	}{
		{"valid", "A XOR B", true},
		{"invalid", "A AND", false},
		{"lexical", "A = B", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, handler, "/api/validate", map[string]string{"expression": tt.expression})

			// validate never fails the request.
			require.Equal(t, http.StatusOK, rec.Code)

			var resp struct {
				Valid         bool   `json:"valid"`
				VariableCount int    `json:"variableCount"`
				Error         string `json:"error"`
			}
			decode(t, rec, &resp)

			assert.Equal(t, tt.valid, resp.Valid)
			if tt.valid {
				assert.Equal(t, 2, resp.VariableCount)
				assert.Empty(t, resp.Error)
			} else {
				assert.NotEmpty(t, resp.Error)
			}
		})
	}
}

func TestAPI_Simplify(t *testing.T) {
	handler := newTestHandler(t)

	rec := postJSON(t, handler, "/api/simplify", map[string]string{"expression": "A AND B OR A AND C"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Original   string `json:"original"`
		Simplified string `json:"simplified"`
		Statistics struct {
			MintermCount   int `json:"mintermCount"`
			EssentialCount int `json:"essentialCount"`
		} `json:"statistics"`
	}
	decode(t, rec, &resp)

	assert.Equal(t, "A AND B OR A AND C", resp.Original)
	assert.Equal(t, "AC + AB", resp.Simplified)
	assert.Equal(t, 3, resp.Statistics.MintermCount)
	assert.Equal(t, 2, resp.Statistics.EssentialCount)
}

func TestAPI_Simplify_CapExceeded(t *testing.T) {
	handler := newTestHandler(t)

	rec := postJSON(t, handler, "/api/simplify", map[string]string{
		"expression": "A OR B OR C OR D OR E OR F OR G",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Kind string `json:"kind"`
	}
	decode(t, rec, &resp)
	assert.Equal(t, "TooManyVariables", resp.Kind)
}

func TestAPI_Examples(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/examples", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var examples []struct {
		Name       string `json:"name"`
		Expression string `json:"expression"`
	}
	decode(t, rec, &examples)
	assert.NotEmpty(t, examples)
}

func TestAPI_BadRequestBody(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, handler, "/api/parse", map[string]string{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/parse", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
