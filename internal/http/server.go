package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/denisok6893-rgb/flip-deal-scoring/internal/advisor"
	"github.com/denisok6893-rgb/flip-deal-scoring/internal/domain"
	"github.com/denisok6893-rgb/flip-deal-scoring/internal/export"
	"github.com/denisok6893-rgb/flip-deal-scoring/internal/scoring"
	"github.com/denisok6893-rgb/flip-deal-scoring/internal/share"
)

type Server struct {
	Log   *logrus.Logger
	Deals DealsStore
}

func NewServer(log *logrus.Logger, deals DealsStore) *Server {
	if log == nil {
		log = logrus.New()
	}
	return &Server{Log: log, Deals: deals}
}

func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/score", s.handleScore).Methods(http.MethodPost)
	r.HandleFunc("/validate", s.handleValidate).Methods(http.MethodPost)

	r.HandleFunc("/deals", s.handleDealsList).Methods(http.MethodGet)
	r.HandleFunc("/deals", s.handleDealCreate).Methods(http.MethodPost)
	r.HandleFunc("/deals/{id}", s.handleDealGet).Methods(http.MethodGet)
	r.HandleFunc("/deals/{id}", s.handleDealDelete).Methods(http.MethodDelete)
	r.HandleFunc("/deals/{id}/export", s.handleDealExport).Methods(http.MethodGet)

	r.HandleFunc("/share", s.handleShare).Methods(http.MethodPost)
	r.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	r.HandleFunc("/tutorial/seen", s.handleTutorialSeen).Methods(http.MethodPost)

	r.HandleFunc("/demo", s.handleDemo).Methods(http.MethodGet)
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		s.Log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   sw.status,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---- Scoring ----

type ScoreResponse struct {
	Result *domain.ScoreResult `json:"result"`
	Advice *advisor.Advice     `json:"advice,omitempty"`
}

type ValidationResponse struct {
	Errors []string `json:"errors"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var form domain.DealForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	in, msgs := scoring.ParseForm(form)
	if len(msgs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, ValidationResponse{Errors: msgs})
		return
	}

	res := scoring.Score(in)
	if res == nil {
		// Validation should have caught a non-positive ARV; keep the
		// "nothing to show yet" contract anyway.
		writeJSON(w, http.StatusOK, ScoreResponse{Result: nil})
		return
	}

	adv := advisor.For(in, *res)
	writeJSON(w, http.StatusOK, ScoreResponse{Result: res, Advice: &adv})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var form domain.DealForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	msgs := scoring.Validate(form)
	if msgs == nil {
		msgs = []string{}
	}
	writeJSON(w, http.StatusOK, ValidationResponse{Errors: msgs})
}

// ---- Saved deals ----

type DealsListResponse struct {
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
	Total  int           `json:"total"`
	Items  []DealSummary `json:"items"`
}

func (s *Server) handleDealsList(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r, 20, 0)

	deals, total, err := s.Deals.ListDeals(limit, offset)
	if err != nil {
		s.Log.WithError(err).Error("list deals")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage_error"})
		return
	}

	items := make([]DealSummary, 0, len(deals))
	for _, d := range deals {
		items = append(items, summarize(d))
	}
	writeJSON(w, http.StatusOK, DealsListResponse{
		Limit:  limit,
		Offset: offset,
		Total:  total,
		Items:  items,
	})
}

func (s *Server) handleDealCreate(w http.ResponseWriter, r *http.Request) {
	var form domain.DealForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	in, msgs := scoring.ParseForm(form)
	if len(msgs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, ValidationResponse{Errors: msgs})
		return
	}
	res := scoring.Score(in)
	if res == nil {
		writeJSON(w, http.StatusUnprocessableEntity, ValidationResponse{Errors: []string{scoring.MsgARV}})
		return
	}

	saved, err := s.Deals.CreateDeal(domain.SavedDeal{Input: in, Result: *res})
	if err != nil {
		s.Log.WithError(err).Error("create deal")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage_error"})
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleDealGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	d, ok, err := s.Deals.GetDeal(id)
	if err != nil {
		s.Log.WithError(err).Error("get deal")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage_error"})
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleDealDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ok, err := s.Deals.DeleteDeal(id)
	if err != nil {
		s.Log.WithError(err).Error("delete deal")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage_error"})
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleDealExport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	d, ok, err := s.Deals.GetDeal(id)
	if err != nil {
		s.Log.WithError(err).Error("export deal")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage_error"})
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "deal-"+d.ID+".csv"))
	if err := export.WriteDeal(w, d.Input, d.Result); err != nil {
		s.Log.WithError(err).Error("write csv")
	}
}

// ---- Sharing and stats ----

type ShareRequest struct {
	Platform        string  `json:"platform"`
	TotalScore      int     `json:"total_score"`
	ProfitMarginPct int     `json:"profit_margin_pct"`
	ExpectedProfit  float64 `json:"expected_profit"`
	MaxOffer        float64 `json:"max_offer"`
}

type ShareResponse struct {
	Share      share.Payload `json:"share"`
	ShareCount int           `json:"share_count"`
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	var req ShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	payload, err := share.Build(req.Platform, share.Summary{
		TotalScore:      req.TotalScore,
		ProfitMarginPct: req.ProfitMarginPct,
		ExpectedProfit:  req.ExpectedProfit,
		MaxOffer:        req.MaxOffer,
	})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	count, err := s.Deals.IncrementShareCount()
	if err != nil {
		s.Log.WithError(err).Error("increment share count")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage_error"})
		return
	}
	writeJSON(w, http.StatusOK, ShareResponse{Share: payload, ShareCount: count})
}

type StatsResponse struct {
	ShareCount   int  `json:"share_count"`
	SeenTutorial bool `json:"seen_tutorial"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	count, err := s.Deals.ShareCount()
	if err != nil {
		s.Log.WithError(err).Error("share count")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage_error"})
		return
	}
	seen, err := s.Deals.SeenTutorial()
	if err != nil {
		s.Log.WithError(err).Error("seen tutorial")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage_error"})
		return
	}
	writeJSON(w, http.StatusOK, StatsResponse{ShareCount: count, SeenTutorial: seen})
}

func (s *Server) handleTutorialSeen(w http.ResponseWriter, r *http.Request) {
	if err := s.Deals.SetSeenTutorial(); err != nil {
		s.Log.WithError(err).Error("set seen tutorial")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage_error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"seen_tutorial": true})
}

// ---- Helpers ----

func parseLimitOffset(r *http.Request, defLimit, defOffset int) (int, int) {
	q := r.URL.Query()

	limit := defLimit
	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = defLimit
	}
	// safety cap
	if limit > 200 {
		limit = 200
	}

	offset := defOffset
	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = defOffset
	}

	return limit, offset
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
