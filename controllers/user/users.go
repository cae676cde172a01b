package userControllers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/tokomebel/furniture-api/models"
	"github.com/tokomebel/furniture-api/response"
)

type UpdateUserRoleRequest struct {
	UserID uint   `json:"id_user" binding:"required"`
	Role   string `json:"role" binding:"required"`
}

type DeleteUserRequest struct {
	UserID uint `json:"id_user" binding:"required"`
}

// GetAllUsers lists users projecting only public columns.
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Select("id_user", "username", "role").Find(&users).Error; err != nil {
			logrus.WithError(err).Error("failed to fetch users")
			response.Internal(c, err)
			return
		}
		response.OK(c, users, "Success GET all users")
	}
}

// UpdateUserRole sets a user's role. Zero affected rows means the user does
// not exist.
func UpdateUserRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateUserRoleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "id_user and role are required", err)
			return
		}

		res := db.Model(&models.User{}).Where("id_user = ?", req.UserID).Update("role", req.Role)
		if res.Error != nil {
			logrus.WithError(res.Error).Error("failed to update user role")
			response.Internal(c, res.Error)
			return
		}
		if res.RowsAffected == 0 {
			response.NotFound(c, "User Not Found")
			return
		}

		response.OK(c, gin.H{"isSuccess": res.RowsAffected}, "Success Update User Role")
	}
}

// DeleteUser removes a user by id.
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DeleteUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "id_user is required", err)
			return
		}

		res := db.Delete(&models.User{}, req.UserID)
		if res.Error != nil {
			logrus.WithError(res.Error).Error("failed to delete user")
			response.Internal(c, res.Error)
			return
		}
		if res.RowsAffected == 0 {
			response.NotFound(c, "User Not Found")
			return
		}

		response.OK(c, gin.H{"isSuccess": res.RowsAffected}, "Success Delete User")
	}
}
