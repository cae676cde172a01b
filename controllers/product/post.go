package productController

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/tokomebel/furniture-api/models"
	"github.com/tokomebel/furniture-api/response"
	"github.com/tokomebel/furniture-api/upload"
)

// CreateProduct inserts a new catalog row from a multipart form. When no
// image file is attached the row references the configured default image, so
// the image column is never null.
func CreateProduct(db *gorm.DB, uploads *upload.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		productName := c.PostForm("product_name")
		priceStr := c.PostForm("price")
		if productName == "" || priceStr == "" {
			response.BadRequest(c, "product_name and price are required", nil)
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			response.BadRequest(c, "Invalid price", err)
			return
		}

		var stock int
		if v := c.PostForm("stock"); v != "" {
			stock, err = strconv.Atoi(v)
			if err != nil {
				response.BadRequest(c, "Invalid stock", err)
				return
			}
		}

		var categoryID uint
		if v := c.PostForm("id_category"); v != "" {
			cid, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				response.BadRequest(c, "Invalid id_category", err)
				return
			}
			categoryID = uint(cid)
		}

		// FormFile errors simply mean no file was attached
		file, _ := c.FormFile("image")
		image, err := uploads.StoreOrDefault(file)
		if err != nil {
			logrus.WithError(err).Error("failed to save product image")
			response.Internal(c, err)
			return
		}

		product := models.Product{
			ProductName: productName,
			Description: c.PostForm("description"),
			Price:       price,
			Stock:       stock,
			Image:       image,
			CategoryID:  categoryID,
			Version:     1,
		}
		res := db.Create(&product)
		if res.Error != nil {
			logrus.WithError(res.Error).Error("failed to create product")
			response.Internal(c, res.Error)
			return
		}

		response.OK(c, gin.H{"id": product.ID, "isSuccess": res.RowsAffected > 0}, "Product added!")
	}
}
