package productController

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

// UpdateProduct merges the supplied form fields into an existing product.
// Fields absent from the request keep their stored values. A new image file
// replaces the stored reference and removes the superseded file. The final
// UPDATE is conditional on the row version read during the fetch, so a
// concurrent writer cannot be silently overwritten.
func UpdateProduct(db *gorm.DB, uploads *upload.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			response.BadRequest(c, "Invalid product ID", err)
			return
		}

		var product models.Product
		if err := db.First(&product, uint(id)).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				response.NotFound(c, "Product Not Found")
				return
			}
			response.Internal(c, err)
			return
		}

		if v, ok := c.GetPostForm("product_name"); ok {
			product.ProductName = v
		}
		if v, ok := c.GetPostForm("description"); ok {
			product.Description = v
		}
		if v, ok := c.GetPostForm("price"); ok {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil {
				response.BadRequest(c, "Invalid price", err)
				return
			}
			product.Price = price
		}
		if v, ok := c.GetPostForm("stock"); ok {
			stock, err := strconv.Atoi(v)
			if err != nil {
				response.BadRequest(c, "Invalid stock", err)
				return
			}
			product.Stock = stock
		}
		if v, ok := c.GetPostForm("id_category"); ok {
			cid, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				response.BadRequest(c, "Invalid id_category", err)
				return
			}
			product.CategoryID = uint(cid)
		}

		if file, err := c.FormFile("image"); err == nil {
			image, err := uploads.Replace(product.Image, file)
			if err != nil {
				logrus.WithError(err).Error("failed to save product image")
				response.Internal(c, err)
				return
			}
			product.Image = image
		}

		res := db.Model(&models.Product{}).
			Where("id_product = ? AND version = ?", product.ID, product.Version).
			Updates(map[string]any{
				"product_name": product.ProductName,
				"description":  product.Description,
				"price":        product.Price,
				"stock":        product.Stock,
				"image":        product.Image,
				"id_category":  product.CategoryID,
				"version":      product.Version + 1,
			})
		if res.Error != nil {
			logrus.WithError(res.Error).Error("failed to update product")
			response.Internal(c, res.Error)
			return
		}
		if res.RowsAffected == 0 {
			// Row vanished or its version moved between fetch and update.
			var count int64
			db.Model(&models.Product{}).Where("id_product = ?", product.ID).Count(&count)
			if count == 0 {
				response.NotFound(c, "Product Not Found")
				return
			}
			response.Fail(c, http.StatusConflict, "Product was modified concurrently, retry the update", nil)
			return
		}

		response.OK(c, gin.H{"isSuccess": res.RowsAffected}, "Success Update Product")
	}
}
