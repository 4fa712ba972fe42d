package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
)

func searchWith(t *testing.T, q string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/inventions/search?q="+url.QueryEscape(q), nil)
	SearchInventions(c)
	return w
}

func TestSearchInventionsRejectsShortQuery(t *testing.T) {
	// The 2-character minimum counts runes, not bytes: a single multibyte
	// rune is still one character.
	for _, q := range []string{"", "a", " a ", "日"} {
		w := searchWith(t, q)
		if w.Code != http.StatusBadRequest {
			t.Errorf("q=%q: status = %d, want 400", q, w.Code)
		}
	}
}
