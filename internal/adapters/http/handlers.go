package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"svw.info/wordle/internal/domain"
	"svw.info/wordle/internal/orchestrator"
	"svw.info/wordle/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/analyze", h.handleAnalyze)
	mux.HandleFunc("/api/selfplay", h.handleSelfPlay)
	mux.HandleFunc("/api/colors", h.handleColors)
	mux.HandleFunc("/api/invalid", h.handleInvalid)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

// statusFor maps the analysis error taxonomy onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, orchestrator.ErrWordLength),
		errors.Is(err, orchestrator.ErrNotInDictionary):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ---- Analyze ----

type analyzeReq struct {
	Answer  domain.Word   `json:"answer"`
	Guesses []domain.Word `json:"guesses"`
	Save    bool          `json:"save,omitempty"`
}

type analyzeResp struct {
	Report *domain.Report `json:"report,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req analyzeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(analyzeResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	rep, err := h.UC.AnalyzeGame(r.Context(), req.Answer, req.Guesses, nil)
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(analyzeResp{Error: err.Error()})
		return
	}
	if req.Save {
		if err := h.UC.Save(r.Context(), rep); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(analyzeResp{Error: err.Error()})
			return
		}
	}
	_ = json.NewEncoder(w).Encode(analyzeResp{Report: rep})
}

// ---- Self play ----

type selfPlayReq struct {
	Answer domain.Word `json:"answer"`
}

type selfPlayResp struct {
	Plays []domain.AIPlay `json:"plays,omitempty"`
	Error string          `json:"error,omitempty"`
}

func (h *Handler) handleSelfPlay(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req selfPlayReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(selfPlayResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	plays, err := h.UC.SelfPlay(r.Context(), req.Answer, nil)
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(selfPlayResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(selfPlayResp{Plays: plays})
}

// ---- Colors ----

type colorsReq struct {
	Answer  domain.Word   `json:"answer"`
	Guesses []domain.Word `json:"guesses"`
}

type colorsResp struct {
	Colors []domain.CellColors `json:"colors,omitempty"`
	Error  string              `json:"error,omitempty"`
}

func (h *Handler) handleColors(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req colorsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(colorsResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	colors, err := h.UC.GuessColors(req.Answer, req.Guesses)
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(colorsResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(colorsResp{Colors: colors})
}

// ---- Invalid words ----

type invalidReq struct {
	Words []domain.Word `json:"words"`
}

type invalidResp struct {
	Invalid []domain.Word `json:"invalid"`
	Error   string        `json:"error,omitempty"`
}

func (h *Handler) handleInvalid(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req invalidReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(invalidResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	invalid, err := h.UC.InvalidWords(req.Words)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(invalidResp{Error: err.Error()})
		return
	}
	if invalid == nil {
		invalid = []domain.Word{}
	}
	_ = json.NewEncoder(w).Encode(invalidResp{Invalid: invalid})
}

// ---- Load / List ----

type loadReq struct {
	ID string `json:"id"`
}

type loadResp struct {
	Report *domain.Report `json:"report,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(loadResp{Error: "invalid JSON or missing id"})
		return
	}
	rep, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(loadResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(loadResp{Report: rep})
}

type listResp struct {
	Reports []domain.ReportMeta `json:"reports"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	reports, err := h.UC.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(listResp{Error: err.Error()})
		return
	}
	if reports == nil {
		reports = []domain.ReportMeta{}
	}
	_ = json.NewEncoder(w).Encode(listResp{Reports: reports})
}
