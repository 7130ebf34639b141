package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	m "minbool.dev/pkg/minbool/internal/model"
)

// AnalyzeFunc runs one expression through the full pipeline.
type AnalyzeFunc func(ctx context.Context, expression string) (*m.Analysis, error)

// ValidateFunc produces an always-succeeding verdict for one expression.
type ValidateFunc func(ctx context.Context, expression string) m.Validation

// StatsFunc summarizes the minimization outcome of an analysis.
type StatsFunc func(analysis *m.Analysis) m.SimplifyStats

const (
	maxRequestBody  = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// APIServer exposes the pipeline over HTTP. Every request is processed
// fresh from the input string; the server holds no per-expression state.
type APIServer struct {
	addr     string
	analyze  AnalyzeFunc
	validate ValidateFunc
	stats    StatsFunc
	catalog  ExampleCatalog
}

// NewAPIServer wires the pipeline entry points into an HTTP server.
func NewAPIServer(addr string, analyze AnalyzeFunc, validate ValidateFunc, stats StatsFunc, catalog ExampleCatalog) *APIServer {
	return &APIServer{
		addr:     addr,
		analyze:  analyze,
		validate: validate,
		stats:    stats,
		catalog:  catalog,
	}
}

// Handler builds the route table.
func (s *APIServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/parse", s.handleParse)
	mux.HandleFunc("POST /api/validate", s.handleValidate)
	mux.HandleFunc("POST /api/simplify", s.handleSimplify)
	mux.HandleFunc("GET /api/examples", s.handleExamples)

	return logRequests(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *APIServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		slog.Info("api server listening", "addr", s.addr)

		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("api request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

type expressionRequest struct {
	Expression string `json:"expression"`
}

type errorResponse struct {
	Error    string `json:"error"`
	Kind     string `json:"kind,omitempty"`
	Position *int   `json:"position,omitempty"`
	Length   *int   `json:"length,omitempty"`
}

type rowJSON struct {
	Inputs  map[string]bool `json:"inputs"`
	Output  bool            `json:"output"`
	Minterm int             `json:"minterm"`
	Maxterm int             `json:"maxterm"`
}

type tableJSON struct {
	Variables []string  `json:"variables"`
	Rows      []rowJSON `json:"rows"`
}

type implicantJSON struct {
	Pattern  string `json:"pattern"`
	Minterms []int  `json:"minterms"`
	Term     string `json:"term"`
}

type statsJSON struct {
	MintermCount       int `json:"mintermCount"`
	PrimeCount         int `json:"primeCount"`
	EssentialCount     int `json:"essentialCount"`
	CanonicalLiterals  int `json:"canonicalLiterals"`
	SimplifiedLiterals int `json:"simplifiedLiterals"`
}

type simplificationJSON struct {
	Expression string          `json:"expression"`
	Prime      []implicantJSON `json:"primeImplicants"`
	Essential  []implicantJSON `json:"essentialImplicants"`
	Statistics statsJSON       `json:"statistics"`
}

type parseResponse struct {
	Expression     string              `json:"expression"`
	Variables      []string            `json:"variables"`
	TruthTable     tableJSON           `json:"truthTable"`
	Simplification *simplificationJSON `json:"simplification,omitempty"`
}

type validateResponse struct {
	Valid         bool     `json:"valid"`
	Variables     []string `json:"variables,omitempty"`
	VariableCount int      `json:"variableCount"`
	Error         string   `json:"error,omitempty"`
}

type simplifyResponse struct {
	Original   string    `json:"original"`
	Simplified string    `json:"simplified"`
	Statistics statsJSON `json:"statistics"`
}

func (s *APIServer) handleParse(w http.ResponseWriter, r *http.Request) {
	expression, ok := s.readExpression(w, r)
	if !ok {
		return
	}

	analysis, err := s.analyze(r.Context(), expression)
	if err != nil {
		writeInputError(w, err)
		return
	}

	resp := parseResponse{
		Expression: expression,
		Variables:  analysis.Variables,
		TruthTable: toTableJSON(analysis.Table),
	}

	if analysis.Minimized != nil {
		resp.Simplification = toSimplificationJSON(analysis, s.stats(analysis))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *APIServer) handleValidate(w http.ResponseWriter, r *http.Request) {
	expression, ok := s.readExpression(w, r)
	if !ok {
		return
	}

	verdict := s.validate(r.Context(), expression)

	writeJSON(w, http.StatusOK, validateResponse{
		Valid:         verdict.Valid,
		Variables:     verdict.Variables,
		VariableCount: verdict.VariableCount,
		Error:         verdict.Err,
	})
}

func (s *APIServer) handleSimplify(w http.ResponseWriter, r *http.Request) {
	expression, ok := s.readExpression(w, r)
	if !ok {
		return
	}

	analysis, err := s.analyze(r.Context(), expression)
	if err != nil {
		writeInputError(w, err)
		return
	}

	if analysis.Minimized == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: fmt.Sprintf("minimization supports at most %d variables, got %d",
				m.MaxMinimizeVariables, len(analysis.Variables)),
			Kind: "TooManyVariables",
		})

		return
	}

	writeJSON(w, http.StatusOK, simplifyResponse{
		Original:   expression,
		Simplified: analysis.Minimized.Expression,
		Statistics: toStatsJSON(s.stats(analysis)),
	})
}

func (s *APIServer) handleExamples(w http.ResponseWriter, _ *http.Request) {
	examples, err := s.catalog.Examples()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, examples)
}

func (s *APIServer) readExpression(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req expressionRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return "", false
	}

	if req.Expression == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "expression is required"})
		return "", false
	}

	return req.Expression, true
}

// writeInputError maps the error taxonomy onto a 400 payload with enough
// structure for a client to highlight the offending range.
func writeInputError(w http.ResponseWriter, err error) {
	resp := errorResponse{Error: err.Error()}

	var lexErr *m.LexicalError
	var synErr *m.SyntaxError
	var capErr *m.TooManyVariablesError

	switch {
	case errors.As(err, &lexErr):
		resp.Kind = "LexicalError"
		resp.Position = &lexErr.Position
	case errors.As(err, &synErr):
		resp.Kind = "SyntaxError"
		resp.Position = &synErr.Position
		resp.Length = &synErr.Length
	case errors.As(err, &capErr):
		resp.Kind = "TooManyVariables"
	default:
		writeJSON(w, http.StatusInternalServerError, resp)
		return
	}

	writeJSON(w, http.StatusBadRequest, resp)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func toTableJSON(table *m.TruthTable) tableJSON {
	out := tableJSON{Variables: table.Variables, Rows: make([]rowJSON, 0, len(table.Rows))}

	for _, row := range table.Rows {
		out.Rows = append(out.Rows, rowJSON{
			Inputs:  row.Inputs,
			Output:  row.Output,
			Minterm: row.Minterm,
			Maxterm: row.Maxterm,
		})
	}

	return out
}

func toImplicantsJSON(implicants []m.Implicant, variables []string) []implicantJSON {
	out := make([]implicantJSON, 0, len(implicants))
	for _, im := range implicants {
		out = append(out, implicantJSON{
			Pattern:  im.Pattern,
			Minterms: im.Minterms,
			Term:     im.Term(variables),
		})
	}

	return out
}

func toStatsJSON(stats m.SimplifyStats) statsJSON {
	return statsJSON(stats)
}

func toSimplificationJSON(analysis *m.Analysis, stats m.SimplifyStats) *simplificationJSON {
	minimized := analysis.Minimized

	return &simplificationJSON{
		Expression: minimized.Expression,
		Prime:      toImplicantsJSON(minimized.Prime, minimized.Variables),
		Essential:  toImplicantsJSON(minimized.Essential, minimized.Variables),
		Statistics: toStatsJSON(stats),
	}
}
