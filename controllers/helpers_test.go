package controllers

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSortSpecDefaults(t *testing.T) {
	got := sortSpec("")
	if got[0].Key != "created_at" || got[0].Value != -1 {
		t.Fatalf("default sort = %v, want created_at desc", got)
	}
}

func TestSortSpecDirectionPerKey(t *testing.T) {
	cases := []struct {
		key  string
		want int
	}{
		{"created_at", -1},
		{"updated_at", -1},
		{"timestamp", -1},
		{"title", 1},
		{"average_rating", 1},
	}
	for _, tc := range cases {
		got := sortSpec(tc.key)
		if got[0].Key != tc.key || got[0].Value != tc.want {
			t.Errorf("sortSpec(%q) = %v, want direction %d", tc.key, got, tc.want)
		}
	}
}

func newPatchContext(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest("PUT", "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c
}

func TestBindPatchStripsImmutableFields(t *testing.T) {
	c := newPatchContext(t, `{"id":"x","_id":"y","created_at":"2020-01-01","title":"new"}`)

	patch, ok := bindPatch(c)
	if !ok {
		t.Fatal("bindPatch rejected a valid body")
	}
	for _, field := range []string{"id", "_id", "created_at"} {
		if _, present := patch[field]; present {
			t.Errorf("%s must never be patchable", field)
		}
	}
	if patch["title"] != "new" {
		t.Fatalf("title = %v", patch["title"])
	}
}

func TestBindPatchAcceptsEmptyBody(t *testing.T) {
	// A body with every field absent is a valid partial update that
	// touches nothing; it must bind to an empty patch, not an error.
	// Update handlers skip the store write for an empty patch, since the
	// store rejects an empty $set document.
	c := newPatchContext(t, `{}`)

	patch, ok := bindPatch(c)
	if !ok {
		t.Fatal("empty body must bind")
	}
	if len(patch) != 0 {
		t.Fatalf("patch = %v, want empty", patch)
	}
}

func TestBindPatchRejectsMalformedBody(t *testing.T) {
	c := newPatchContext(t, `{"title": `)
	if _, ok := bindPatch(c); ok {
		t.Fatal("malformed JSON must be rejected")
	}
}

func TestBoolQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/?is_mentor=true&seeking_mentorship=banana", nil)

	filter := bson.M{}
	boolQuery(c, "is_mentor", filter)
	boolQuery(c, "seeking_mentorship", filter)
	boolQuery(c, "collaboration_open", filter)

	if filter["is_mentor"] != true {
		t.Fatalf("is_mentor = %v", filter["is_mentor"])
	}
	if _, present := filter["seeking_mentorship"]; present {
		t.Fatal("unparsable boolean must be a no-op, not an error")
	}
	if _, present := filter["collaboration_open"]; present {
		t.Fatal("absent parameter must be a no-op")
	}
}
