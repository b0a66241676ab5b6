package handler

import (
	"net/http"

	md "github.com/libkeeper/library-service/pkg/middleware"
	"github.com/libkeeper/library-service/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	catalogSvc  CatalogService
	registrySvc RegistryService
	ledgerSvc   LedgerService
	log         *zap.Logger
}

func New(catalogSvc CatalogService, registrySvc RegistryService, ledgerSvc LedgerService, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc:  catalogSvc,
		registrySvc: registrySvc,
		ledgerSvc:   ledgerSvc,
		log:         log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/", h.Index)
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/books", h.GetBooks)
	api.GET("/books/search", h.SearchBooks)
	api.GET("/books/:id", h.GetBook)
	api.POST("/books", h.CreateBook)
	api.PUT("/books/:id", h.UpdateBook)
	api.DELETE("/books/:id", h.DeleteBook)
	api.GET("/categories", h.GetCategories)

	api.GET("/borrowers", h.GetBorrowers)
	api.POST("/borrowers", h.RegisterBorrower)

	api.POST("/borrow", h.BorrowBook)
	api.POST("/return", h.ReturnBook)
	api.GET("/borrowed", h.GetBorrowed)
	api.GET("/borrowed/overdue", h.GetOverdue)

	return e
}

func (h *Handler) Index(c echo.Context) error {
	return c.String(http.StatusOK, "Library Management System is live! Features: Books, Search, Categories, Borrowing")
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
