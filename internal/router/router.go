package router

import (
	"net/http"

	"github.com/DREXATROLL/muzrent-pro/internal/domain"
	"github.com/DREXATROLL/muzrent-pro/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListItems(c *ginext.Context)
	GetItem(c *ginext.Context)
	CreateItem(c *ginext.Context)
	SetMaintenance(c *ginext.Context)
	BookItem(c *ginext.Context)
	CancelRental(c *ginext.Context)
	ListMyRentals(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

type Options struct {
	Mode     string
	Verifier middleware.TokenVerifier
	// Metrics serves the Prometheus exposition; nil leaves /metrics unrouted.
	Metrics http.Handler
}

func InitRouter(opts Options, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(opts.Mode)
	router.Use(mw...)

	authn := middleware.Auth(opts.Verifier)
	admin := middleware.RequireRole(domain.RoleAdmin)

	api := router.Group("/api")
	{
		// Catalog
		api.GET("/items", h.ListItems)
		api.GET("/items/:id", h.GetItem)
		api.POST("/items", authn, admin, h.CreateItem)
		api.POST("/items/:id/maintenance", authn, admin, h.SetMaintenance)

		// Rentals
		api.POST("/items/:id/book", authn, h.BookItem)
		api.POST("/rentals/:id/cancel", authn, h.CancelRental)
		api.GET("/rentals", authn, h.ListMyRentals)

		// Users
		api.POST("/users", authn, admin, h.CreateUser)
		api.GET("/users", authn, admin, h.ListUsers)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	if opts.Metrics != nil {
		router.GET("/metrics", func(c *ginext.Context) {
			opts.Metrics.ServeHTTP(c.Writer, c.Request)
		})
	}

	return router
}
