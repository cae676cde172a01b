package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tokomebel/furniture-api/models"
	"github.com/tokomebel/furniture-api/response"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler authenticates an admin against tbl_admins and returns a JWT.
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "email and password are required", err)
			return
		}

		var admin models.Admin
		if err := db.Where("email = ?", req.Email).First(&admin).Error; err != nil {
			response.Fail(c, http.StatusUnauthorized, "Invalid credentials", nil)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
			response.Fail(c, http.StatusUnauthorized, "Invalid credentials", nil)
			return
		}

		token, err := GenerateToken(admin.ID, admin.Email, jwtSecret)
		if err != nil {
			logrus.WithError(err).Error("failed to sign token")
			response.Internal(c, err)
			return
		}

		response.OK(c, gin.H{"token": token}, "Login success")
	}
}
