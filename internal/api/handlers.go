package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sells-group/formula-cli/internal/formula"
	"github.com/sells-group/formula-cli/internal/solve"
)

// maxBodyBytes bounds a solve request body.
const maxBodyBytes = 64 << 10

// SolveRequest is the POST /api/solve body. Field values may be JSON
// numbers, strings (parsed like typed input) or null (blank).
type SolveRequest struct {
	Category string         `json:"category"`
	Formula  string         `json:"formula"`
	Scenario string         `json:"scenario"`
	Fields   map[string]any `json:"fields"`
}

// VariableView is a variable with its display precision.
type VariableView struct {
	formula.Variable
	Precision int `json:"precision"`
}

// FormulaView is the GET /api/formulas/{id} body.
type FormulaView struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Category    string             `json:"category"`
	Description string             `json:"description"`
	Details     string             `json:"details,omitempty"`
	Decision    bool               `json:"decision"`
	Variables   []VariableView     `json:"variables"`
	Scenarios   []formula.Scenario `json:"scenarios,omitempty"`
}

func newFormulaView(def *formula.Definition) FormulaView {
	vars := make([]VariableView, len(def.Variables))
	for i, v := range def.Variables {
		vars[i] = VariableView{Variable: v, Precision: v.Kind.Precision()}
	}
	return FormulaView{
		ID:          def.ID,
		Name:        def.Name,
		Category:    def.Category,
		Description: def.Description,
		Details:     def.Details,
		Decision:    def.IsDecision(),
		Variables:   vars,
		Scenarios:   def.Scenarios,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRegistry(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.disp.Registry())
}

func (s *Server) handleFormula(w http.ResponseWriter, r *http.Request) {
	def, err := s.disp.Catalog().Formula(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, newFormulaView(def))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	defs := s.disp.Catalog().Search(r.URL.Query().Get("q"))
	out := make([]solve.Summary, 0, len(defs))
	for _, d := range defs {
		out = append(out, solve.Summarize(d))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var body SolveRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Formula == "" {
		writeError(w, http.StatusBadRequest, "formula is required")
		return
	}

	fields, err := solve.FieldTexts(body.Fields)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := s.disp.Solve(solve.Request{
		Category: body.Category,
		Formula:  body.Formula,
		Scenario: body.Scenario,
		Fields:   fields,
	})
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	zap.L().Debug("api: solved",
		zap.String("request_id", RequestID(r.Context())),
		zap.String("formula", out.Formula),
		zap.String("state", string(out.State)),
	)
	writeJSON(w, http.StatusOK, out)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, formula.ErrUnknownFormula),
		errors.Is(err, formula.ErrUnknownCategory),
		errors.Is(err, solve.ErrCategoryMismatch):
		return http.StatusNotFound
	case errors.Is(err, formula.ErrUnknownScenario):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("api: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
