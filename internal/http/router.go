package api

import (
	"log"
	stdhttp "net/http"

	intconfig "tripplanner/internal/config"
	h "tripplanner/internal/http/handlers"
	"tripplanner/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, plans h.PlanHandler) *gin.Engine {
	h.RegisterValidation()

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		mountPlans(api.Group("/plans"), plans)
	}

	h.SetRouter(r)
	return r
}

func mountPlans(g *gin.RouterGroup, plans h.PlanHandler) {
	g.POST("", plans.CreatePlan)
	g.POST("/reconcile", plans.ReconcilePlan)
	g.POST("/pdf", plans.CreatePlanPDF)
	g.POST("/export", plans.ExportPlanPDF)
	g.GET("/history", plans.ListHistory)
}
