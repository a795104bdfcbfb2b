package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gear-rental/internal/domain/user"
	"gear-rental/internal/handler/api"
	"gear-rental/internal/handler/middleware"
	"gear-rental/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers the router mounts.
type Handlers struct {
	Auth         *api.AuthHandler
	Equipment    *api.EquipmentHandler
	Rental       *api.RentalHandler
	Customer     *api.CustomerHandler
	Verification *api.VerificationHandler
	Admin        *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, loginLimiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, loginLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// outermost, so panics in any later middleware are caught
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, loginLimiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	operator := authMiddleware.RequireRoleAtLeast(user.RoleOperator)
	admin := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{loginLimiter.Middleware()}},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		equipment := apiGroup.Group("/equipment")
		equipment.Use(authMiddleware.RequireAuth())
		{
			addRoutes(equipment, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Equipment.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Equipment.Get},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Equipment.Availability},
				{Method: http.MethodPost, Path: "", Handler: h.Equipment.Create, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Equipment.Update, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Equipment.Delete, Mw: []gin.HandlerFunc{admin}},
			})
		}

		rentals := apiGroup.Group("/rentals")
		rentals.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rentals, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Rental.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Rental.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Rental.Create, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodPost, Path: "/:id/equipment", Handler: h.Rental.AttachEquipment, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Rental.Cancel, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodPost, Path: "/:id/verification", Handler: h.Verification.Capture, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodGet, Path: "/:id/verification", Handler: h.Verification.Get},
				{Method: http.MethodGet, Path: "/:id/verification/signature", Handler: h.Verification.Signature},
			})
		}

		customers := apiGroup.Group("/customers")
		customers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(customers, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Customer.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Customer.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Customer.Upsert, Mw: []gin.HandlerFunc{operator}},
			})
		}

		calendar := apiGroup.Group("/calendar")
		calendar.Use(authMiddleware.RequireAuth())
		addRoutes(calendar, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Rental.Calendar},
		})

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(authMiddleware.RequireAuth(), admin)
		addRoutes(adminGroup, []route{
			{Method: http.MethodPost, Path: "/reconcile", Handler: h.Admin.Reconcile},
		})
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
