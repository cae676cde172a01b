package productController

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/tokomebel/furniture-api/models"
	"github.com/tokomebel/furniture-api/response"
)

// GetAllProducts lists the catalog with optional search and category filters.
// Columns are projected explicitly, never selected with *.
func GetAllProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).
			Select("id_product", "product_name", "description", "price", "stock", "image", "id_category")

		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("product_name LIKE ? OR description LIKE ?", likePattern, likePattern)
		}

		if categoryID := c.Query("id_category"); categoryID != "" {
			cid, err := strconv.ParseUint(categoryID, 10, 64)
			if err != nil {
				response.BadRequest(c, "Invalid id_category", err)
				return
			}
			query = query.Where("id_category = ?", uint(cid))
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			logrus.WithError(err).Error("failed to fetch products")
			response.Internal(c, err)
			return
		}

		response.OK(c, products, "Success GET all products")
	}
}
