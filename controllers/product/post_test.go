package productController

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokomebel/furniture-api/models"
)

func TestCreateProductWithFile(t *testing.T) {
	db := setupTestDB(t)
	uploads := newTestUploads(t)
	r := productRouter(db, uploads)

	req := multipartRequest(t, http.MethodPost, "/admin/products", map[string]string{
		"product_name": "Chair",
		"description":  "oak chair",
		"price":        "100",
		"stock":        "5",
		"id_category":  "1",
	}, "chair.png", []byte("png-bytes"))
	w := serve(r, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Payload struct {
			ID        uint `json:"id"`
			IsSuccess bool `json:"isSuccess"`
		} `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotZero(t, body.Payload.ID)
	assert.True(t, body.Payload.IsSuccess)

	var stored models.Product
	require.NoError(t, db.First(&stored, body.Payload.ID).Error)
	assert.Equal(t, "Chair", stored.ProductName)
	assert.Equal(t, 100.0, stored.Price)
	assert.Equal(t, 5, stored.Stock)
	assert.Contains(t, stored.Image, "chair")

	// The file is retrievable at the stored reference.
	_, err := os.Stat(filepath.Join(uploads.Dir, filepath.Base(stored.Image)))
	assert.NoError(t, err)

	// A subsequent list includes the new row.
	listReq := multipartRequest(t, http.MethodGet, "/admin/products", nil, "", nil)
	listW := serve(r, listReq)
	require.Equal(t, http.StatusOK, listW.Code)
	assert.Contains(t, listW.Body.String(), "Chair")
	assert.Contains(t, listW.Body.String(), "chair")
}

func TestCreateProductWithoutFileUsesDefaultImage(t *testing.T) {
	db := setupTestDB(t)
	uploads := newTestUploads(t)
	r := productRouter(db, uploads)

	req := multipartRequest(t, http.MethodPost, "/admin/products", map[string]string{
		"product_name": "Table",
		"price":        "250",
	}, "", nil)
	w := serve(r, req)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Product
	require.NoError(t, db.Where("product_name = ?", "Table").First(&stored).Error)
	assert.Equal(t, "/image/default.png", stored.Image)
}

func TestCreateProductMissingRequiredFields(t *testing.T) {
	db := setupTestDB(t)
	r := productRouter(db, newTestUploads(t))

	req := multipartRequest(t, http.MethodPost, "/admin/products", map[string]string{
		"description": "no name, no price",
	}, "", nil)
	w := serve(r, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateProductInvalidPrice(t *testing.T) {
	db := setupTestDB(t)
	r := productRouter(db, newTestUploads(t))

	req := multipartRequest(t, http.MethodPost, "/admin/products", map[string]string{
		"product_name": "Chair",
		"price":        "cheap",
	}, "", nil)
	w := serve(r, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportProductsToExcel(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, "Wardrobe", 900, 2, "/image/wardrobe.png")
	r := productRouter(db, newTestUploads(t))

	req := multipartRequest(t, http.MethodGet, "/admin/products/export-excel", nil, "", nil)
	w := serve(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Header().Get("Content-Type"), "spreadsheetml"))
	assert.NotZero(t, w.Body.Len())
}
