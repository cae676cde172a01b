package productController

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokomebel/furniture-api/models"
)

func TestUpdateProductPartialMergePreservesUnsetFields(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "Chair", 100, 5, "/image/chair.png")
	r := productRouter(db, newTestUploads(t))

	req := multipartRequest(t, http.MethodPut, "/admin/products/1", map[string]string{
		"price": "120",
	}, "", nil)
	w := serve(r, req)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Product
	require.NoError(t, db.First(&stored, product.ID).Error)
	assert.Equal(t, 120.0, stored.Price)
	assert.Equal(t, "Chair", stored.ProductName)
	assert.Equal(t, "solid teak", stored.Description)
	assert.Equal(t, 5, stored.Stock)
	assert.Equal(t, "/image/chair.png", stored.Image)
}

func TestUpdateProductExplicitZeroStockApplies(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "Chair", 100, 5, "/image/chair.png")
	r := productRouter(db, newTestUploads(t))

	req := multipartRequest(t, http.MethodPut, "/admin/products/1", map[string]string{
		"stock": "0",
	}, "", nil)
	w := serve(r, req)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Product
	require.NoError(t, db.First(&stored, product.ID).Error)
	assert.Equal(t, 0, stored.Stock)
	assert.Equal(t, 100.0, stored.Price)
}

func TestUpdateProductNotFound(t *testing.T) {
	db := setupTestDB(t)
	r := productRouter(db, newTestUploads(t))

	req := multipartRequest(t, http.MethodPut, "/admin/products/999", map[string]string{
		"price": "120",
	}, "", nil)
	w := serve(r, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProductInvalidID(t *testing.T) {
	db := setupTestDB(t)
	r := productRouter(db, newTestUploads(t))

	req := multipartRequest(t, http.MethodPut, "/admin/products/abc", map[string]string{
		"price": "120",
	}, "", nil)
	w := serve(r, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProductReplacesImageAndDeletesOldFile(t *testing.T) {
	db := setupTestDB(t)
	uploads := newTestUploads(t)
	r := productRouter(db, uploads)

	// Create with a real file so there is an old file to delete.
	createReq := multipartRequest(t, http.MethodPost, "/admin/products", map[string]string{
		"product_name": "Chair",
		"price":        "100",
	}, "old.png", []byte("old"))
	require.Equal(t, http.StatusOK, serve(r, createReq).Code)

	var created models.Product
	require.NoError(t, db.Where("product_name = ?", "Chair").First(&created).Error)
	oldPath := filepath.Join(uploads.Dir, filepath.Base(created.Image))
	require.FileExists(t, oldPath)

	updateReq := multipartRequest(t, http.MethodPut, "/admin/products/1", nil, "new.png", []byte("new"))
	require.Equal(t, http.StatusOK, serve(r, updateReq).Code)

	var updated models.Product
	require.NoError(t, db.First(&updated, created.ID).Error)
	assert.NotEqual(t, created.Image, updated.Image)
	assert.NoFileExists(t, oldPath)
	assert.FileExists(t, filepath.Join(uploads.Dir, filepath.Base(updated.Image)))

	// Exactly one live file remains after the replacement.
	entries, err := os.ReadDir(uploads.Dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUpdateProductWithoutFileKeepsImage(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "Chair", 100, 5, "/image/chair.png")
	r := productRouter(db, newTestUploads(t))

	req := multipartRequest(t, http.MethodPut, "/admin/products/1", map[string]string{
		"product_name": "Armchair",
	}, "", nil)
	require.Equal(t, http.StatusOK, serve(r, req).Code)

	var stored models.Product
	require.NoError(t, db.First(&stored, product.ID).Error)
	assert.Equal(t, "/image/chair.png", stored.Image)
}

func TestUpdateProductStaleVersionConflicts(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "Chair", 100, 5, "/image/chair.png")
	r := productRouter(db, newTestUploads(t))

	// An UPDATE carrying a stale version must not touch the row.
	res := db.Model(&models.Product{}).
		Where("id_product = ? AND version = ?", product.ID, product.Version+10).
		Update("price", 1)
	require.NoError(t, res.Error)
	assert.Zero(t, res.RowsAffected)

	// Normal path still succeeds and bumps the version.
	req := multipartRequest(t, http.MethodPut, "/admin/products/1", map[string]string{
		"price": "120",
	}, "", nil)
	require.Equal(t, http.StatusOK, serve(r, req).Code)

	var stored models.Product
	require.NoError(t, db.First(&stored, product.ID).Error)
	assert.Equal(t, product.Version+1, stored.Version)
	assert.Equal(t, 120.0, stored.Price)
}
