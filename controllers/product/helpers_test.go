package productController

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tokomebel/furniture-api/models"
	"github.com/tokomebel/furniture-api/upload"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Category{}))
	return db
}

func newTestUploads(t *testing.T) *upload.Manager {
	t.Helper()
	return upload.NewManager(t.TempDir(), "/image", "/image/default.png")
}

func productRouter(db *gorm.DB, uploads *upload.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/products", GetAllProducts(db))
	r.POST("/admin/products", CreateProduct(db, uploads))
	r.PUT("/admin/products/:id", UpdateProduct(db, uploads))
	r.DELETE("/admin/products/:id", DeleteProduct(db))
	r.GET("/admin/products/export-excel", ExportProductsToExcel(db))
	return r
}

// multipartRequest builds a multipart form request. An empty fileName skips
// the file part entirely.
func multipartRequest(t *testing.T, method, url string, fields map[string]string, fileName string, fileContent []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := w.CreateFormFile("image", fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int, image string) models.Product {
	t.Helper()
	product := models.Product{
		ProductName: name,
		Description: "solid teak",
		Price:       price,
		Stock:       stock,
		Image:       image,
		CategoryID:  1,
		Version:     1,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}
