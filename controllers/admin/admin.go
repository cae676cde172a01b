package adminController

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tokomebel/furniture-api/models"
	"github.com/tokomebel/furniture-api/response"
)

type CreateAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
	Photo    string `json:"photo"`
}

type UpdateAdminRequest struct {
	Email    string  `json:"email" binding:"required"`
	Name     *string `json:"name"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Photo    *string `json:"photo"`
}

type DeleteAdminRequest struct {
	Email string `json:"email" binding:"required"`
}

// GetAllAdmins lists admins. Credential material is never projected.
func GetAllAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admins []models.Admin
		if err := db.Select("id", "name", "email", "role", "photo").Find(&admins).Error; err != nil {
			logrus.WithError(err).Error("failed to fetch admins")
			response.Internal(c, err)
			return
		}
		response.OK(c, admins, "Success GET data")
	}
}

// CreateAdmin inserts a new admin with a bcrypt-hashed password.
func CreateAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateAdminRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "name, email and password are required", err)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			response.Internal(c, err)
			return
		}

		admin := models.Admin{
			Name:     req.Name,
			Email:    req.Email,
			Password: string(hash),
			Role:     req.Role,
			Photo:    req.Photo,
		}
		res := db.Create(&admin)
		if res.Error != nil {
			logrus.WithError(res.Error).Error("failed to create admin")
			response.Internal(c, res.Error)
			return
		}

		response.OK(c, gin.H{"id": admin.ID, "isSuccess": res.RowsAffected}, "Success Added Data")
	}
}

// UpdateAdmin merges the supplied fields into the admin row keyed by email.
// Omitted fields keep their stored values.
func UpdateAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateAdminRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "email is required", err)
			return
		}

		var admin models.Admin
		if err := db.Where("email = ?", req.Email).First(&admin).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				response.NotFound(c, "Admin Not Found")
				return
			}
			response.Internal(c, err)
			return
		}

		if req.Name != nil {
			admin.Name = *req.Name
		}
		if req.Password != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				response.Internal(c, err)
				return
			}
			admin.Password = string(hash)
		}
		if req.Role != nil {
			admin.Role = *req.Role
		}
		if req.Photo != nil {
			admin.Photo = *req.Photo
		}

		res := db.Model(&models.Admin{}).Where("email = ?", req.Email).Updates(map[string]any{
			"name":     admin.Name,
			"password": admin.Password,
			"role":     admin.Role,
			"photo":    admin.Photo,
		})
		if res.Error != nil {
			logrus.WithError(res.Error).Error("failed to update admin")
			response.Internal(c, res.Error)
			return
		}
		if res.RowsAffected == 0 {
			response.NotFound(c, "Admin Not Found")
			return
		}

		response.OK(c, gin.H{"isSuccess": res.RowsAffected}, "Success Update Data")
	}
}

// DeleteAdmin removes the admin row keyed by email. Zero affected rows means
// the admin did not exist.
func DeleteAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DeleteAdminRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "email is required", err)
			return
		}

		res := db.Where("email = ?", req.Email).Delete(&models.Admin{})
		if res.Error != nil {
			logrus.WithError(res.Error).Error("failed to delete admin")
			response.Internal(c, res.Error)
			return
		}
		if res.RowsAffected == 0 {
			response.NotFound(c, "Admin Not Found")
			return
		}

		response.OK(c, gin.H{"isSuccess": res.RowsAffected}, "Success Delete Data")
	}
}
