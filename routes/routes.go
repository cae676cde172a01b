package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tokomebel/furniture-api/config"
	"github.com/tokomebel/furniture-api/upload"
)

// SetupRoutes is the single entry-point that wires up the public auth routes
// and the token-protected admin routes.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	uploads := upload.NewManager(cfg.UploadDir, cfg.PublicPath, cfg.DefaultImage)

	SetupAuthRoutes(r, db, cfg)
	SetupAdminRoutes(r, db, cfg, uploads)
}
