package categoryController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/tokomebel/furniture-api/models"
	"github.com/tokomebel/furniture-api/response"
	"github.com/tokomebel/furniture-api/upload"
)

// GetAllCategories lists categories with projected columns.
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Select("id_category", "category_name", "categorys", "image").Find(&categories).Error; err != nil {
			logrus.WithError(err).Error("failed to fetch categories")
			response.Internal(c, err)
			return
		}
		response.OK(c, categories, "Success GET all categories")
	}
}

// CreateCategory inserts a new category from a multipart form. Without an
// attached file the row references the configured default image.
func CreateCategory(db *gorm.DB, uploads *upload.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryName := c.PostForm("category_name")
		if categoryName == "" {
			response.BadRequest(c, "category_name is required", nil)
			return
		}

		file, _ := c.FormFile("image")
		image, err := uploads.StoreOrDefault(file)
		if err != nil {
			logrus.WithError(err).Error("failed to save category image")
			response.Internal(c, err)
			return
		}

		category := models.Category{
			CategoryName: categoryName,
			Categorys:    c.PostForm("categorys"),
			Image:        image,
			Version:      1,
		}
		res := db.Create(&category)
		if res.Error != nil {
			logrus.WithError(res.Error).Error("failed to create category")
			response.Internal(c, res.Error)
			return
		}

		response.OK(c, gin.H{"id": category.ID, "isSuccess": res.RowsAffected > 0}, "Category added!")
	}
}

// UpdateCategory merges supplied form fields into an existing category,
// replacing the stored image when a new file is attached. The UPDATE is
// version-guarded like the product update.
func UpdateCategory(db *gorm.DB, uploads *upload.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			response.BadRequest(c, "Invalid category ID", err)
			return
		}

		var category models.Category
		if err := db.First(&category, uint(id)).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				response.NotFound(c, "Category Not Found")
				return
			}
			response.Internal(c, err)
			return
		}

		if v, ok := c.GetPostForm("category_name"); ok {
			category.CategoryName = v
		}
		if v, ok := c.GetPostForm("categorys"); ok {
			category.Categorys = v
		}

		if file, err := c.FormFile("image"); err == nil {
			image, err := uploads.Replace(category.Image, file)
			if err != nil {
				logrus.WithError(err).Error("failed to save category image")
				response.Internal(c, err)
				return
			}
			category.Image = image
		}

		res := db.Model(&models.Category{}).
			Where("id_category = ? AND version = ?", category.ID, category.Version).
			Updates(map[string]any{
				"category_name": category.CategoryName,
				"categorys":     category.Categorys,
				"image":         category.Image,
				"version":       category.Version + 1,
			})
		if res.Error != nil {
			logrus.WithError(res.Error).Error("failed to update category")
			response.Internal(c, res.Error)
			return
		}
		if res.RowsAffected == 0 {
			var count int64
			db.Model(&models.Category{}).Where("id_category = ?", category.ID).Count(&count)
			if count == 0 {
				response.NotFound(c, "Category Not Found")
				return
			}
			response.Fail(c, http.StatusConflict, "Category was modified concurrently, retry the update", nil)
			return
		}

		response.OK(c, gin.H{"isSuccess": res.RowsAffected}, "Success Update Category")
	}
}

// DeleteCategory removes a category by id. Products referencing it keep
// their id_category value; no cascade is attempted here.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			response.BadRequest(c, "Invalid category ID", err)
			return
		}

		res := db.Delete(&models.Category{}, uint(id))
		if res.Error != nil {
			logrus.WithError(res.Error).Error("failed to delete category")
			response.Internal(c, res.Error)
			return
		}
		if res.RowsAffected == 0 {
			response.NotFound(c, "Category Not Found")
			return
		}

		response.OK(c, gin.H{"isSuccess": res.RowsAffected}, "Success Delete Category")
	}
}
