// Package server exposes the advisory operations over HTTP and a
// websocket feed of stored simulations.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"investment-panel/internal/domain"
	"investment-panel/internal/idhash"
	"investment-panel/internal/observability"
	"investment-panel/internal/profile"
	"investment-panel/internal/recommendation"
	"investment-panel/internal/simulation"
	"investment-panel/internal/storage"
	"investment-panel/internal/telemetry"
)

// Server wires runners and stores behind HTTP handlers.
type Server struct {
	clients     storage.ClientStore
	investments storage.InvestmentStore
	simulations storage.SimulationStore

	profiles    *profile.Runner
	simulator   *simulation.Runner
	recommender *recommendation.Runner
	feed        *Feed
	telemetry   *telemetry.Recorder
	logger      *log.Logger
	now         func() time.Time
}

// Options contains configuration for creating a Server.
type Options struct {
	Clients      storage.ClientStore
	Investments  storage.InvestmentStore
	Products     storage.ProductStore
	RiskProfiles storage.RiskProfileStore
	Simulations  storage.SimulationStore

	// Telemetry may be nil; requests then go unrecorded.
	Telemetry *telemetry.Recorder
	Logger    *log.Logger

	// Now overrides the clock; defaults to time.Now.
	Now func() time.Time
}

// New creates a Server.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	rec := opts.Telemetry
	if rec == nil {
		rec = telemetry.NewRecorder(telemetry.RecorderOptions{})
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Server{
		clients:     opts.Clients,
		investments: opts.Investments,
		simulations: opts.Simulations,
		profiles:    profile.NewRunner(opts.Investments, opts.RiskProfiles),
		simulator: simulation.NewRunner(simulation.RunnerOptions{
			ProductStore:    opts.Products,
			SimulationStore: opts.Simulations,
			Now:             now,
		}),
		recommender: recommendation.NewRunner(opts.Investments, opts.Products),
		feed:        NewFeed(logger),
		telemetry:   rec,
		logger:      logger,
		now:         now,
	}
}

// Handler builds the HTTP mux with telemetry wrapped around every
// advisory endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", observability.Handler())

	wrap := func(service string, h http.HandlerFunc) http.Handler {
		return s.telemetry.Middleware(service, h)
	}

	mux.Handle("POST /api/clients", wrap("clients/register", s.handleRegisterClient))
	mux.Handle("GET /api/clients", wrap("clients/list", s.handleListClients))
	mux.Handle("GET /api/clients/{clientID}", wrap("clients/get", s.handleGetClient))
	mux.Handle("POST /api/investments", wrap("investments/record", s.handleRecordInvestment))
	mux.Handle("GET /api/clients/{clientID}/profile", wrap("profiles/assess", s.handleAssessProfile))
	mux.Handle("GET /api/clients/{clientID}/recommendations", wrap("recommendations/list", s.handleRecommendations))
	mux.Handle("POST /api/simulations", wrap("simulations/run", s.handleRunSimulation))
	mux.Handle("GET /api/clients/{clientID}/simulations", wrap("simulations/history", s.handleSimulationHistory))
	mux.Handle("GET /api/simulations/grouped", wrap("simulations/grouped", s.handleGroupedSimulations))
	mux.Handle("GET /api/simulations/{simulationID}/profitability", wrap("simulations/profitability", s.handleProfitability))

	mux.HandleFunc("GET /ws/simulations", s.feed.Handler)

	return mux
}

// Close shuts down the websocket feed.
func (s *Server) Close() {
	s.feed.Close()
}

type registerClientRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
}

func (s *Server) handleRegisterClient(w http.ResponseWriter, r *http.Request) {
	var req registerClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Document == "" {
		writeError(w, http.StatusBadRequest, "name, email and document are required")
		return
	}

	client := &domain.Client{
		ClientID:     idhash.ComputeClientID(req.Email, req.Document),
		Name:         req.Name,
		Email:        req.Email,
		Document:     req.Document,
		RegisteredAt: s.now().UnixMilli(),
	}

	if err := s.clients.Insert(r.Context(), client); err != nil {
		s.writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, client)
}

func (s *Server) handleListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := s.clients.GetAll(r.Context())
	if err != nil {
		s.writeStorageError(w, err)
		return
	}
	if clients == nil {
		clients = []*domain.Client{}
	}
	writeJSON(w, http.StatusOK, clients)
}

func (s *Server) handleGetClient(w http.ResponseWriter, r *http.Request) {
	client, err := s.clients.GetByID(r.Context(), r.PathValue("clientID"))
	if err != nil {
		s.writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

type recordInvestmentRequest struct {
	ClientID        string   `json:"client_id"`
	ProductID       string   `json:"product_id"`
	AmountInvested  float64  `json:"amount_invested"`
	InvestedAt      *int64   `json:"invested_at,omitempty"`
	TermMonths      *int     `json:"term_months,omitempty"`
	Crisis          bool     `json:"crisis"`
	AmountWithdrawn *float64 `json:"amount_withdrawn,omitempty"`
}

func (s *Server) handleRecordInvestment(w http.ResponseWriter, r *http.Request) {
	var req recordInvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ClientID == "" || req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "client_id and product_id are required")
		return
	}

	nowMs := s.now().UnixMilli()
	investedAt := nowMs
	if req.InvestedAt != nil {
		investedAt = *req.InvestedAt
	}

	record := &domain.InvestmentRecord{
		InvestmentID: idhash.ComputeInvestmentID(
			req.ClientID, req.ProductID, req.AmountInvested, investedAt, req.AmountWithdrawn != nil),
		ClientID:        req.ClientID,
		ProductID:       req.ProductID,
		AmountInvested:  req.AmountInvested,
		InvestedAt:      investedAt,
		TermMonths:      req.TermMonths,
		Crisis:          req.Crisis,
		AmountWithdrawn: req.AmountWithdrawn,
		CreatedAt:       nowMs,
	}

	if err := s.investments.Insert(r.Context(), record); err != nil {
		s.writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

type assessmentResponse struct {
	ClientID    string `json:"client_id"`
	Score       int    `json:"score"`
	Tier        string `json:"tier"`
	Description string `json:"description"`
	CatalogTier string `json:"catalog_tier,omitempty"`
}

func (s *Server) handleAssessProfile(w http.ResponseWriter, r *http.Request) {
	clientID := r.PathValue("clientID")

	assessment, err := s.profiles.Run(r.Context(), clientID)
	if err != nil {
		s.writeStorageError(w, err)
		return
	}
	if assessment == nil {
		writeError(w, http.StatusNotFound, "client has no investment history")
		observability.RecordEmptyAssessment()
		return
	}
	observability.RecordScoreComputed()

	resp := assessmentResponse{
		ClientID:    assessment.ClientID,
		Score:       assessment.Score,
		Tier:        assessment.Tier,
		Description: assessment.Description,
	}
	if assessment.CatalogProfile != nil {
		resp.CatalogTier = assessment.CatalogProfile.Name
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	clientID := r.PathValue("clientID")

	products, err := s.recommender.Run(r.Context(), clientID)
	if err != nil {
		s.writeStorageError(w, err)
		return
	}
	observability.RecordRecommendation(len(products))
	writeJSON(w, http.StatusOK, products)
}

type runSimulationRequest struct {
	ClientID    string  `json:"client_id"`
	ProductType string  `json:"product_type"`
	Amount      float64 `json:"amount"`
	TermMonths  int     `json:"term_months"`
}

type simulationResponse struct {
	SimulationID  string  `json:"simulation_id"`
	Ref           string  `json:"ref"`
	ClientID      string  `json:"client_id"`
	ProductName   string  `json:"product_name"`
	InitialAmount float64 `json:"initial_amount"`
	TermMonths    int     `json:"term_months"`
	FinalAmount   float64 `json:"final_amount"`
	ReturnPercent float64 `json:"return_percent"`
	SimulatedAt   int64   `json:"simulated_at"`
}

func simulationToResponse(r *domain.SimulationResult) simulationResponse {
	return simulationResponse{
		SimulationID:  r.SimulationID,
		Ref:           idhash.ShortRef(r.SimulationID),
		ClientID:      r.ClientID,
		ProductName:   r.ProductName,
		InitialAmount: r.InitialAmount,
		TermMonths:    r.TermMonths,
		FinalAmount:   r.FinalAmount,
		ReturnPercent: r.ReturnPercent(),
		SimulatedAt:   r.SimulatedAt,
	}
}

func (s *Server) handleRunSimulation(w http.ResponseWriter, r *http.Request) {
	var req runSimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.simulator.Run(r.Context(), req.ClientID, req.ProductType, req.Amount, req.TermMonths)
	if err != nil {
		s.writeStorageError(w, err)
		return
	}
	observability.RecordSimulationRun(req.ProductType)

	s.feed.Broadcast(result)
	writeJSON(w, http.StatusCreated, simulationToResponse(result))
}

func (s *Server) handleSimulationHistory(w http.ResponseWriter, r *http.Request) {
	clientID := r.PathValue("clientID")

	results, err := s.simulations.GetByClientID(r.Context(), clientID)
	if err != nil {
		s.writeStorageError(w, err)
		return
	}

	resp := make([]simulationResponse, 0, len(results))
	for _, res := range results {
		resp = append(resp, simulationToResponse(res))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGroupedSimulations(w http.ResponseWriter, r *http.Request) {
	groups, err := s.simulations.GetGroupedByDayProduct(r.Context())
	if err != nil {
		s.writeStorageError(w, err)
		return
	}
	if groups == nil {
		groups = []*domain.SimulationDayGroup{}
	}
	writeJSON(w, http.StatusOK, groups)
}

type profitabilityResponse struct {
	SimulationID  string  `json:"simulation_id"`
	ReturnPercent float64 `json:"return_percent"`
	MinPercent    float64 `json:"min_percent"`
	Profitable    bool    `json:"profitable"`
}

func (s *Server) handleProfitability(w http.ResponseWriter, r *http.Request) {
	simulationID := r.PathValue("simulationID")

	minPercent := 0.0
	if raw := r.URL.Query().Get("min"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "min must be a number")
			return
		}
		minPercent = parsed
	}

	verdict, err := s.simulator.Profitability(r.Context(), simulationID, minPercent)
	if err != nil {
		s.writeStorageError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profitabilityResponse{
		SimulationID:  simulationID,
		ReturnPercent: verdict.ReturnPercent,
		MinPercent:    minPercent,
		Profitable:    verdict.Profitable,
	})
}

func (s *Server) writeStorageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, storage.ErrDuplicateKey):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, storage.ErrInvalidInput), errors.Is(err, simulation.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
