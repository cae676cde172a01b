package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tokomebel/furniture-api/auth"
	"github.com/tokomebel/furniture-api/config"
)

// SetupAuthRoutes registers the public login endpoint.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(db, cfg.JWTSecret))
	}
}
