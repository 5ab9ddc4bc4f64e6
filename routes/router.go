package routes

import (
	"github.com/gin-gonic/gin"

	"pastel-pos/controllers"
	"pastel-pos/middlewares"
)

func RegisterRoutes(r *gin.Engine) {

	r.POST("/login", controllers.Login)
	r.GET("/me", middlewares.AuthMiddleware(), controllers.Me)

	// Products
	products := r.Group("/products")
	products.Use(middlewares.AuthMiddleware())
	{
		products.GET("/", controllers.GetProducts)
		products.GET("/:id", controllers.GetProductByID)
		products.GET("/barcode/:code", controllers.GetProductByBarcode)
		products.GET("/export", middlewares.RoleMiddleware("admin"), controllers.ExportProducts)
		products.POST("/", middlewares.RoleMiddleware("admin"), controllers.CreateProduct)
		products.PUT("/:id", middlewares.RoleMiddleware("admin"), controllers.UpdateProduct)
		products.DELETE("/:id", middlewares.RoleMiddleware("admin"), controllers.DeleteProduct)
	}

	// Cart + checkout
	cart := r.Group("/cart")
	cart.Use(middlewares.AuthMiddleware())
	{
		cart.GET("/", controllers.GetCart)
		cart.POST("/items", controllers.AddCartItem)
		cart.PUT("/items/:productId", controllers.UpdateCartItem)
		cart.DELETE("/items/:productId", controllers.RemoveCartItem)
		cart.DELETE("/", controllers.ClearCart)
		cart.POST("/checkout", controllers.Checkout)
	}

	// Sales (read only: sales are immutable once created)
	sales := r.Group("/sales")
	sales.Use(middlewares.AuthMiddleware())
	{
		sales.GET("/", controllers.GetSales)
		sales.GET("/today", controllers.GetTodaySaleItems)
		sales.GET("/:id", controllers.GetSaleByID)
		sales.GET("/:id/receipt", controllers.GetSaleReceipt)
	}

	// Daily report
	reports := r.Group("/reports")
	reports.Use(middlewares.AuthMiddleware())
	{
		reports.GET("/daily", controllers.GetDailyReport)
		reports.GET("/daily/whatsapp-link", controllers.GetDailyReportWhatsAppLink)
		reports.POST("/daily/whatsapp", controllers.SendDailyReportWhatsApp)
	}

	// Dashboard (admin only)
	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("admin"))
	{
		dashboard.GET("/", controllers.GetDashboard)
	}

	// Cash sessions
	cashSessions := r.Group("/cash-sessions")
	cashSessions.Use(middlewares.AuthMiddleware())
	{
		cashSessions.POST("/", controllers.OpenCashSession)
		cashSessions.GET("/current", controllers.GetCurrentCashSession)
		cashSessions.POST("/close", controllers.CloseCashSession)
	}

	// Users (admin only)
	users := r.Group("/users")
	users.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("admin"))
	{
		users.GET("/", controllers.GetUsers)
	}
}
