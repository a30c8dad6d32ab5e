package routes

import (
	coreport "github.com/stakeway/backoffice/internal/domain/port/core"
	"github.com/stakeway/backoffice/internal/infrastructure/adapter/api/handler"
	"github.com/stakeway/backoffice/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything SetupRoutes mounts
type Handlers struct {
	Auth        *handler.AuthHandler
	Transaction *handler.TransactionHandler
	Withdrawal  *handler.WithdrawalHandler
	Package     *handler.PackageHandler
	User        *handler.UserHandler
	Content     *handler.ContentHandler
}

// SetupRoutes configures all the routes for the API. Login is the only
// unauthenticated endpoint; everything else sits behind the admin token.
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	authorizer coreport.Authorizer,
	logger coreport.Logger,
) {
	api := router.Group("/api")

	api.POST("/auth/login", handlers.Auth.Login)

	admin := api.Group("")
	admin.Use(middleware.Auth(authorizer, logger))
	{
		admin.GET("/transactions", handlers.Transaction.List)
		admin.GET("/transactions/pending", handlers.Transaction.ListPending)
		admin.POST("/transactions/resolve", handlers.Transaction.Resolve)
		admin.POST("/transactions/:id/accrue", handlers.Transaction.Accrue)

		admin.GET("/withdrawals/tokens", handlers.Withdrawal.ListTokenWithdrawals)
		admin.POST("/withdrawals/tokens/resolve", handlers.Withdrawal.SettleTokenWithdrawal)
		admin.GET("/withdrawals/wallet", handlers.Withdrawal.ListWalletWithdrawals)
		admin.POST("/withdrawals/wallet/resolve", handlers.Withdrawal.SettleWalletWithdrawal)

		admin.GET("/packages", handlers.Package.List)
		admin.GET("/packages/:id", handlers.Package.Get)
		admin.POST("/packages", handlers.Package.Create)
		admin.PUT("/packages/:id", handlers.Package.Update)

		admin.GET("/users", handlers.User.List)
		admin.GET("/users/:username", handlers.User.GetByUsername)
		admin.PUT("/users/:id", handlers.User.Update)

		admin.GET("/notifications", handlers.Content.ListNotifications)
		admin.POST("/notifications", handlers.Content.CreateNotification)
		admin.PUT("/notifications/:id", handlers.Content.UpdateNotification)
		admin.DELETE("/notifications/:id", handlers.Content.DeleteNotification)

		admin.GET("/terms", handlers.Content.GetTerms)
		admin.PUT("/terms", handlers.Content.UpdateTerms)

		admin.GET("/stats", handlers.Content.GetStats)
		admin.PUT("/stats", handlers.Content.UpdateStats)

		admin.GET("/rate", handlers.Content.GetRate)
		admin.POST("/rate/refresh", handlers.Content.RefreshRate)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
