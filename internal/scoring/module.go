// Package scoring provides the scoring bounded context module: the rule
// engine, the AI intent classifier and result query/export.
package scoring

import (
	apphttp "leadscore_backend/internal/http"
	"leadscore_backend/internal/scoring/classifier"
	"leadscore_backend/internal/scoring/handler"
	"leadscore_backend/internal/scoring/repository"
	"leadscore_backend/internal/scoring/service"
	"leadscore_backend/platform/logger"
	"leadscore_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the scoring bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the scoring module. The completion
// client is injected by the composition root; its lifecycle is owned there.
func NewModule(pool *pgxpool.Pool, client classifier.CompletionClient, failureMode string, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	cls := classifier.New(client, failureMode)
	svc := service.New(repo, cls, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "scoring"
}

// RegisterRoutes mounts scoring routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.POST("/score", m.handler.Score)
	ctx.API.GET("/results", m.handler.Results)
	ctx.API.GET("/results/export", m.handler.Export)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
