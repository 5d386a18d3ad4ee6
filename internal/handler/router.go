package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"library-clean-service/internal/handler/api"
	"library-clean-service/internal/handler/middleware"
	"library-clean-service/internal/pkg/config"
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
	logger *middleware.Logger,
	catalogHandler *api.CatalogHandler,
	borrowingHandler *api.BorrowingHandler,
	paymentHandler *api.PaymentHandler,
	reportHandler *api.ReportHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, catalogHandler, borrowingHandler, paymentHandler, reportHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	catalogHandler *api.CatalogHandler,
	borrowingHandler *api.BorrowingHandler,
	paymentHandler *api.PaymentHandler,
	reportHandler *api.ReportHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		books := apiGroup.Group("/books")
		{
			addRoutes(books, []route{
				{Method: http.MethodPost, Path: "", Handler: catalogHandler.AddBook},
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListBooks},
				{Method: http.MethodGet, Path: "/search", Handler: catalogHandler.SearchBooks},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/borrowings", Handler: borrowingHandler.BorrowBook},
			{Method: http.MethodPost, Path: "/returns", Handler: borrowingHandler.ReturnBook},
			{Method: http.MethodPost, Path: "/payments", Handler: paymentHandler.PayLateFee},
			{Method: http.MethodPost, Path: "/refunds", Handler: paymentHandler.Refund},
		})

		patrons := apiGroup.Group("/patrons")
		{
			addRoutes(patrons, []route{
				{Method: http.MethodGet, Path: "/:id/report", Handler: reportHandler.PatronReport},
				{Method: http.MethodGet, Path: "/:id/books/:bookId/late-fee", Handler: reportHandler.LateFee},
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
