package cli

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/clearsig/clarity/pkg/data"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func queryParamInt(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func queryParamFloat(r *http.Request, name string) *float64 {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

type analyzeRequest struct {
	Statement string `json:"statement"`
	Save      bool   `json:"save"`
	Locks     bool   `json:"locks"`
}

func analyzeAPIHandler(cfg *appConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		rep, err := cfg.Analyzer.Analyze(req.Statement)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		out := &analyzeResult{Report: rep}
		if req.Locks {
			locks, err := cfg.Analyzer.SuggestLocks(req.Statement)
			if err != nil {
				slog.Error("failed to suggest locks", "error", err)
				writeError(w, http.StatusInternalServerError, "failed to suggest locks")
				return
			}
			out.Locks = locks
		}

		if req.Save {
			if err := data.SaveReport(cfg.DB, rep); err != nil {
				slog.Error("failed to save analysis", "error", err)
				writeError(w, http.StatusInternalServerError, "failed to save analysis")
				return
			}
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func restateAPIHandler(cfg *appConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		restated, err := cfg.Analyzer.Restate(req.Statement)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, &restateResult{
			Statement:   req.Statement,
			Restatement: restated,
		})
	}
}

func historyAPIHandler(cfg *appConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := queryParamInt(r, "limit", historyResultLimitDefault)
		if limit <= 0 || limit > historyResultLimitDefault {
			limit = historyResultLimitDefault
		}

		q := &data.AnalysisSearchCriteria{
			Like:       optional(r.URL.Query().Get("like")),
			Since:      optional(r.URL.Query().Get("since")),
			MinClarity: queryParamFloat(r, "min_clarity"),
			MaxClarity: queryParamFloat(r, "max_clarity"),
			Metaphor:   optional(r.URL.Query().Get("metaphor")),
			Limit:      limit,
			Offset:     queryParamInt(r, "offset", 0),
		}

		list, err := data.SearchAnalyses(cfg.DB, q)
		if err != nil {
			slog.Error("failed to query history", "error", err, "criteria", q)
			writeError(w, http.StatusInternalServerError, "error querying history")
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}

func analysisAPIHandler(cfg *appConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		rec, err := data.GetAnalysis(cfg.DB, id)
		if err != nil {
			slog.Error("failed to get analysis", "error", err, "id", id)
			writeError(w, http.StatusInternalServerError, "error getting analysis")
			return
		}
		if rec == nil {
			writeError(w, http.StatusNotFound, "analysis not found")
			return
		}

		writeJSON(w, http.StatusOK, rec)
	}
}

func catalogAPIHandler(cfg *appConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, cfg.Analyzer.Catalog().Metaphors())
	}
}

func metaphorAPIHandler(cfg *appConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		cat := cfg.Analyzer.Catalog()

		m, ok := cat.Get(name)
		if !ok {
			writeError(w, http.StatusNotFound, "metaphor not found")
			return
		}

		writeJSON(w, http.StatusOK, &metaphorDetail{
			Metaphor: m,
			Chain:    cat.Chain(name),
		})
	}
}

func stateAPIHandler(cfg *appConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := data.GetDataState(cfg.DB)
		if err != nil {
			slog.Error("failed to get data state", "error", err)
			writeError(w, http.StatusInternalServerError, "error getting data state")
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}
