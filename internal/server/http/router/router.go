package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"courierpay/internal/server/http/handlers"
	"courierpay/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.LedgerFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	balanceHandler := handlers.NewBalanceHandler(facade)

	api := engine.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(facade))

	protected.POST("/orders", orderHandler.Place)
	protected.GET("/orders/last", orderHandler.Last)
	protected.GET("/orders/:id", orderHandler.Get)
	protected.POST("/orders/:id/assign", orderHandler.Assign)
	protected.POST("/orders/:id/confirm", orderHandler.Confirm)
	protected.POST("/orders/:id/claim", orderHandler.Claim)
	protected.POST("/orders/:id/cancel", orderHandler.Cancel)

	protected.GET("/balance", balanceHandler.Own)
	protected.GET("/participants/:id/balance", balanceHandler.Participant)
	protected.POST("/balance/deposit", balanceHandler.Deposit)
	protected.POST("/balance/withdraw", balanceHandler.Withdraw)
	protected.POST("/balance/refund", balanceHandler.Refund)
	protected.GET("/payouts", balanceHandler.Payouts)

	return engine
}
