package transactionController

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/tokomebel/furniture-api/models"
	"github.com/tokomebel/furniture-api/response"
)

// GetTransactionHistory returns the joined view of transaction headers,
// order lines, and catalog rows. Read-only; checkout itself lives in the
// storefront service.
func GetTransactionHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var records []models.TransactionRecord
		err := db.Table("transaction_history th").
			Select("th.id_order, th.id_user, th.total, th.status, th.created_at, op.id_product, op.quantity, p.product_name, p.price").
			Joins("JOIN order_product op ON th.id_order = op.id_order").
			Joins("JOIN tbl_products p ON op.id_product = p.id_product").
			Scan(&records).Error
		if err != nil {
			logrus.WithError(err).Error("failed to fetch transaction history")
			response.Internal(c, err)
			return
		}

		response.OK(c, records, "Success GET transaction history")
	}
}
