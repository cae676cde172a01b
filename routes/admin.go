package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tokomebel/furniture-api/config"
	adminController "github.com/tokomebel/furniture-api/controllers/admin"
	categoryController "github.com/tokomebel/furniture-api/controllers/category"
	productController "github.com/tokomebel/furniture-api/controllers/product"
	transactionController "github.com/tokomebel/furniture-api/controllers/transaction"
	userControllers "github.com/tokomebel/furniture-api/controllers/user"
	"github.com/tokomebel/furniture-api/middleware"
	"github.com/tokomebel/furniture-api/upload"
)

// SetupAdminRoutes registers all "/admin/*" endpoints behind the token
// middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, uploads *upload.Manager) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		// ─────────── Admin Management ───────────
		adminMgmt := adminGroup.Group("/admins")
		{
			adminMgmt.GET("", adminController.GetAllAdmins(db))
			adminMgmt.POST("", adminController.CreateAdmin(db))
			adminMgmt.PUT("", adminController.UpdateAdmin(db))
			adminMgmt.DELETE("", adminController.DeleteAdmin(db))
		}

		// ─────────── User Management ───────────
		userMgmt := adminGroup.Group("/users")
		{
			userMgmt.GET("", userControllers.GetAllUsers(db))
			userMgmt.PUT("/role", userControllers.UpdateUserRole(db))
			userMgmt.DELETE("", userControllers.DeleteUser(db))
		}

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productController.GetAllProducts(db))
			productAdmin.POST("", productController.CreateProduct(db, uploads))
			productAdmin.PUT("/:id", productController.UpdateProduct(db, uploads))
			productAdmin.DELETE("/:id", productController.DeleteProduct(db))
			productAdmin.GET("/export-excel", productController.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", categoryController.GetAllCategories(db))
			categoryAdmin.POST("", categoryController.CreateCategory(db, uploads))
			categoryAdmin.PUT("/:id", categoryController.UpdateCategory(db, uploads))
			categoryAdmin.DELETE("/:id", categoryController.DeleteCategory(db))
		}

		// ─────────── Transaction History ───────────
		adminGroup.GET("/transactions", transactionController.GetTransactionHistory(db))
	}
}
