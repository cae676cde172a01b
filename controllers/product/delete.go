package productController

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/tokomebel/furniture-api/models"
	"github.com/tokomebel/furniture-api/response"
)

// DeleteProduct removes a product by id. No dependent cleanup is performed:
// the stored image file and any order lines referencing the product are left
// behind.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			response.BadRequest(c, "Invalid product ID", err)
			return
		}

		res := db.Delete(&models.Product{}, uint(id))
		if res.Error != nil {
			logrus.WithError(res.Error).Error("failed to delete product")
			response.Internal(c, res.Error)
			return
		}
		if res.RowsAffected == 0 {
			response.NotFound(c, "Product Not Found")
			return
		}

		response.OK(c, gin.H{"isSuccess": res.RowsAffected}, "Success Delete Data")
	}
}
