package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	awardcatalog "laureate/contexts/award-program/award-catalog"
	evaluationledger "laureate/contexts/award-program/evaluation-ledger"
	projectlifecycle "laureate/contexts/award-program/project-lifecycle"
	rankingengine "laureate/contexts/award-program/ranking-engine"
	accountservice "laureate/contexts/identity-access/account-service"
	policyservice "laureate/contexts/identity-access/policy-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "laureate/internal/platform/httpserver/docs"
)

type Server struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	addr        string
	awards      awardcatalog.Module
	projects    projectlifecycle.Module
	evaluations evaluationledger.Module
	ranking     rankingengine.Module
	accounts    accountservice.Module
	policy      policyservice.Module
}

func New(
	awards awardcatalog.Module,
	projects projectlifecycle.Module,
	evaluations evaluationledger.Module,
	ranking rankingengine.Module,
	accounts accountservice.Module,
	policyModule policyservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:         http.NewServeMux(),
		logger:      logger,
		addr:        addr,
		awards:      awards,
		projects:    projects,
		evaluations: evaluations,
		ranking:     ranking,
		accounts:    accounts,
		policy:      policyModule,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /awards", s.handleCreateAward)
	s.mux.HandleFunc("GET /awards", s.handleListAwards)
	s.mux.HandleFunc("GET /awards/{award_id}", s.handleGetAward)
	s.mux.HandleFunc("PUT /awards/{award_id}", s.handleUpdateAward)
	s.mux.HandleFunc("DELETE /awards/{award_id}", s.handleDeleteAward)
	s.mux.HandleFunc("GET /awards/{award_id}/winner", s.handleAwardWinner)
	s.mux.HandleFunc("GET /winners", s.handleListWinners)

	s.mux.HandleFunc("POST /projects", s.handleSubmitProject)
	s.mux.HandleFunc("GET /projects", s.handleListProjects)
	s.mux.HandleFunc("GET /projects/{project_id}", s.handleGetProject)
	s.mux.HandleFunc("PUT /projects/{project_id}", s.handleUpdateProject)
	s.mux.HandleFunc("DELETE /projects/{project_id}", s.handleWithdrawProject)

	s.mux.HandleFunc("POST /evaluations", s.handleCreateEvaluation)
	s.mux.HandleFunc("GET /evaluations", s.handleListEvaluations)
	s.mux.HandleFunc("GET /evaluations/queue", s.handlePendingQueue)
	s.mux.HandleFunc("GET /evaluations/{evaluation_id}", s.handleGetEvaluation)
	s.mux.HandleFunc("PUT /evaluations/{evaluation_id}", s.handleUpdateEvaluation)
	s.mux.HandleFunc("DELETE /evaluations/{evaluation_id}", s.handleDeleteEvaluation)

	s.mux.HandleFunc("POST /accounts", s.handleRegisterAccount)
	s.mux.HandleFunc("POST /accounts/login", s.handleLogin)
	s.mux.HandleFunc("GET /accounts", s.handleListAccounts)
	s.mux.HandleFunc("GET /accounts/{account_id}", s.handleGetAccount)
	s.mux.HandleFunc("PUT /accounts/{account_id}", s.handleUpdateAccount)
	s.mux.HandleFunc("DELETE /accounts/{account_id}", s.handleDeleteAccount)

	s.mux.HandleFunc("POST /policy/check", s.handlePolicyCheck)
}

// principal reads the caller identity the gateway injects. Both values may be
// empty; the policy layer decides what anonymous callers may do.
func principal(r *http.Request) (string, string) {
	return strings.TrimSpace(r.Header.Get("X-User-Id")),
		strings.TrimSpace(r.Header.Get("X-User-Role"))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
