package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func sanitizeTestRouter(captured *map[string]interface{}) *gin.Engine {
	router := gin.New()
	router.POST("/echo", SanitizeInputMiddleware(), func(c *gin.Context) {
		body := map[string]interface{}{}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		*captured = body
		c.Status(http.StatusOK)
	})
	router.GET("/echo", SanitizeInputMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestSanitizeStripsMarkupFromNestedFields(t *testing.T) {
	var body map[string]interface{}
	router := sanitizeTestRouter(&body)

	payload := `{
		"translations": {
			"lv": {"name": "<script>alert(1)</script>Zobs", "description": "plain"},
			"en": {"name": "Tooth", "description": "<b>bold</b> text"}
		},
		"category_id": 3
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	translations := body["translations"].(map[string]interface{})
	lv := translations["lv"].(map[string]interface{})
	en := translations["en"].(map[string]interface{})
	require.Equal(t, "Zobs", lv["name"])
	require.Equal(t, "bold text", en["description"])
	require.EqualValues(t, 3, body["category_id"])
}

func TestSanitizeRejectsMalformedJSON(t *testing.T) {
	var body map[string]interface{}
	router := sanitizeTestRouter(&body)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSanitizeSkipsReadRequests(t *testing.T) {
	var body map[string]interface{}
	router := sanitizeTestRouter(&body)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
