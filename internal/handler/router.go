package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booking-billing/internal/handler/api"
	"booking-billing/internal/handler/middleware"
	"booking-billing/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	statementHandler *api.StatementHandler,
	billingHandler *api.BillingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, statementHandler, billingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	statementHandler *api.StatementHandler,
	billingHandler *api.BillingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		resources := apiGroup.Group("/resources/:id")
		{
			addRoutes(resources, []route{
				{Method: http.MethodGet, Path: "/billable-summary", Handler: billingHandler.BillableSummary},
				{Method: http.MethodGet, Path: "/conflicts", Handler: billingHandler.Conflicts},
				{Method: http.MethodGet, Path: "/statements", Handler: statementHandler.ListByResource},
			})
			addRoutes(resources, []route{
				{Method: http.MethodPost, Path: "/statements", Handler: statementHandler.Generate,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(middleware.RoleBilling)}},
				{Method: http.MethodPost, Path: "/activate", Handler: billingHandler.Reactivate,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(middleware.RoleAdmin)}},
			})
		}

		statements := apiGroup.Group("/statements")
		{
			addRoutes(statements, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: statementHandler.Get},
				{Method: http.MethodGet, Path: "/:id/transactions", Handler: statementHandler.ListTransactions},
			})
			addRoutes(statements, []route{
				{Method: http.MethodPost, Path: "/:id/pay", Handler: statementHandler.Pay,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(middleware.RoleBilling)}},
				{Method: http.MethodPost, Path: "/:id/reconcile", Handler: statementHandler.Reconcile,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(middleware.RoleBilling)}},
			})
		}

		billing := apiGroup.Group("/billing")
		{
			addRoutes(billing, []route{
				{Method: http.MethodGet, Path: "/reactivation-eligible", Handler: billingHandler.ReactivationEligible},
			})
			addRoutes(billing, []route{
				{Method: http.MethodPost, Path: "/sweep", Handler: billingHandler.Sweep,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(middleware.RoleAdmin)}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
