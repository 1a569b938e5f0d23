package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/http/middleware"
	"tripplanner/internal/llm"
	"tripplanner/internal/services"

	"github.com/gin-gonic/gin"
)

// PlanLog is the audit storage the plan endpoints need.
type PlanLog interface {
	services.PlanLogger
	Enabled() bool
	ListRecent(ctx context.Context, limit int) ([]models.PlanSummary, error)
}

// PlanHandler serves the trip planning endpoints.
type PlanHandler struct {
	Generator llm.Generator
	Tokens    services.PlanTokens
	Log       PlanLog
	Currency  string
	Now       func() time.Time
}

type reconcileRequest struct {
	Request models.TripForm `json:"request"`
	Draft   json.RawMessage `json:"draft"`
}

type exportRequest struct {
	Token string `json:"token" binding:"required"`
}

// POST /api/plans
func (h PlanHandler) CreatePlan(c *gin.Context) {
	plan, ok := h.generate(c)
	if !ok {
		return
	}
	h.respondPlan(c, plan)
}

// POST /api/plans/reconcile
func (h PlanHandler) ReconcilePlan(c *gin.Context) {
	var body reconcileRequest
	if !BindJSONOrError(c, &body) {
		return
	}
	req, ok := h.toRequest(c, body.Request)
	if !ok {
		return
	}
	draft, err := llm.ParseDraft(string(body.Draft))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	plan, err := h.service(c).ReconcileDraft(c.Request.Context(), req, draft)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.respondPlan(c, plan)
}

// POST /api/plans/pdf
func (h PlanHandler) CreatePlanPDF(c *gin.Context) {
	plan, ok := h.generate(c)
	if !ok {
		return
	}
	h.respondPDF(c, plan)
}

// POST /api/plans/export
func (h PlanHandler) ExportPlanPDF(c *gin.Context) {
	var body exportRequest
	if !BindJSONOrError(c, &body) {
		return
	}
	plan, err := h.Tokens.Verify(body.Token)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.respondPDF(c, plan)
}

// GET /api/plans/history
func (h PlanHandler) ListHistory(c *gin.Context) {
	if h.Log == nil || !h.Log.Enabled() {
		respondError(c, http.StatusServiceUnavailable, "audit_disabled", "database audit tidak dikonfigurasi", nil)
		return
	}
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(c, http.StatusBadRequest, "invalid_limit", "limit harus angka positif", nil)
			return
		}
		limit = min(n, 100)
	}
	rows, err := h.Log.ListRecent(c.Request.Context(), limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	out := make([]summaryView, 0, len(rows))
	for _, r := range rows {
		out = append(out, newSummaryView(r))
	}
	c.JSON(http.StatusOK, gin.H{"plans": out, "request_id": middleware.GetRequestID(c)})
}

func (h PlanHandler) generate(c *gin.Context) (models.ReconciledItinerary, bool) {
	var form models.TripForm
	if !BindJSONOrError(c, &form) {
		return models.ReconciledItinerary{}, false
	}
	req, ok := h.toRequest(c, form)
	if !ok {
		return models.ReconciledItinerary{}, false
	}
	plan, err := h.service(c).Plan(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return models.ReconciledItinerary{}, false
	}
	return plan, true
}

func (h PlanHandler) toRequest(c *gin.Context, form models.TripForm) (models.TripRequest, bool) {
	if form.Currency == "" {
		form.Currency = h.Currency
	}
	req, err := form.ToRequest()
	if err != nil {
		RespondDomainError(c, err)
		return models.TripRequest{}, false
	}
	return req, true
}

func (h PlanHandler) service(c *gin.Context) services.PlannerService {
	svc := services.PlannerService{
		Generator: h.Generator,
		RequestID: middleware.GetRequestID(c),
		Now:       h.Now,
	}
	if h.Log != nil && h.Log.Enabled() {
		svc.Log = h.Log
	}
	return svc
}

func (h PlanHandler) respondPlan(c *gin.Context, plan models.ReconciledItinerary) {
	token, err := h.Tokens.Sign(plan)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"plan":       newPlanView(plan),
		"markdown":   services.RenderMarkdown(plan),
		"token":      token,
		"request_id": middleware.GetRequestID(c),
	})
}

func (h PlanHandler) respondPDF(c *gin.Context, plan models.ReconciledItinerary) {
	docs := services.DocsService{RequestID: middleware.GetRequestID(c), Now: h.Now}
	pdfBytes, filename, err := docs.GeneratePlanPDF(plan)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
