package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func postJSON(t *testing.T, handler gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	handler(c)
	return w
}

func TestCreateUserRejectsInvalidEmail(t *testing.T) {
	cases := []string{"plain", "missing@tld", "@nohost.com"}
	for _, email := range cases {
		w := postJSON(t, CreateUser, "/api/users", `{"username":"ada","email":"`+email+`"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("email %q: status = %d, want 400", email, w.Code)
		}
	}
}

func TestCreateUserRejectsMissingRequiredFields(t *testing.T) {
	w := postJSON(t, CreateUser, "/api/users", `{"email":"a@b.co"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
