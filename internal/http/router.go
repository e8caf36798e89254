// HTTP router registration.
package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"netzone/internal/http/handlers"
	"netzone/internal/http/middleware"
	"netzone/internal/modules/loyalty"
	"netzone/internal/modules/session"
	"netzone/internal/modules/tariff"
)

type RouterDeps struct {
	Sessions *session.Service
	Loyalty  *loyalty.Service
	Rates    *tariff.Holder
	// Optional pg-backed stores; nil disables the endpoints that need them.
	Payments    *session.Store
	TariffStore *tariff.Store
	Log         *zap.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log), middleware.Logging(deps.Log))

	stationHandler := handlers.NewStationHandler(deps.Sessions)
	r.GET("/api/stations", stationHandler.List)
	r.POST("/api/stations/:id/start", stationHandler.Start)
	r.POST("/api/stations/:id/stop", stationHandler.Stop)
	r.GET("/api/stations/:id/charge", stationHandler.Charge)

	customerHandler := handlers.NewCustomerHandler(deps.Loyalty)
	r.GET("/api/customers", customerHandler.Search)
	r.GET("/api/customers/:id", customerHandler.Get)
	r.POST("/api/customers/:id/topup", customerHandler.TopUp)

	tariffHandler := handlers.NewTariffHandler(deps.Rates, deps.TariffStore)
	r.GET("/api/tariff", tariffHandler.Get)
	r.PUT("/api/tariff", tariffHandler.Update)

	if deps.Payments != nil {
		paymentHandler := handlers.NewPaymentHandler(deps.Payments)
		r.GET("/api/payments", paymentHandler.Recent)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	return r
}
