package routes

import (
	"github.com/rezaesmaeili3562-spec/login.b/internal/adapter/http/handlers"
	"github.com/rezaesmaeili3562-spec/login.b/internal/adapter/http/middlewares"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth    = "/auth"
	PathCatalog = "/catalog"
	PathCart    = "/cart"
	PathOrders  = "/orders"
	PathAdmin   = "/admin"
)

func addStorefrontRoutes(
	rg *gin.RouterGroup,
	authHandler *handlers.AuthHandler,
	catalogHandler *handlers.CatalogHandler,
	cartHandler *handlers.CartHandler,
	ordersHandler *handlers.OrdersHandler,
) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/code", authHandler.RequestCode)
		auth.POST("/verify", authHandler.VerifyCode)
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authHandler.Me)
		auth.PATCH("/profile", authHandler.UpdateProfile)
	}

	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/services", catalogHandler.ListServices)
		catalog.GET("/categories", catalogHandler.ListCategories)
	}

	cart := rg.Group(PathCart)
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddItem)
		cart.DELETE("/items/:item_id", cartHandler.RemoveItem)
		cart.PATCH("/items/:item_id/quantity", cartHandler.UpdateQuantity)
		cart.PATCH("/notes", cartHandler.UpdateNotes)
		cart.POST("/attachments", cartHandler.AddAttachment)
		cart.DELETE("/attachments/:attachment_id", cartHandler.RemoveAttachment)
		cart.POST("/submit", cartHandler.Submit)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", ordersHandler.ListMine)
		orders.GET("/:order_id", ordersHandler.GetByID)
		orders.GET("/:order_id/timeline", ordersHandler.Timeline)
		orders.GET("/:order_id/invoice", ordersHandler.Invoice)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler) {
	admin := rg.Group(PathAdmin, middlewares.RequireAdmin())
	{
		admin.GET("/orders", adminHandler.ListOrders)
		admin.PATCH("/orders/:order_id/status", adminHandler.UpdateStatus)
		admin.GET("/users", adminHandler.ListUsers)
	}
}
