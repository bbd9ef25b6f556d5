package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func withTestUser(h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userId", primitive.NewObjectID())
		h(c)
	}
}

func TestCreateBodyDetailsRejectsUnknownUnits(t *testing.T) {
	tests := []struct {
		body  string
		field string
	}{
		{`{"height_value":170,"height_unit":"m","weight_value":70,"weight_unit":"kg"}`, "height_unit"},
		{`{"height_value":170,"height_unit":"cm","weight_value":70,"weight_unit":"stone"}`, "weight_unit"},
	}

	for _, tt := range tests {
		w := postJSON(t, withTestUser(CreateBodyDetails(nil)), "/body/", tt.body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", tt.field, w.Code)
		}

		var resp validationResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("response is not valid json: %v", err)
		}
		if _, ok := resp.Fields[tt.field]; !ok {
			t.Fatalf("expected error attributed to %s, got %v", tt.field, resp.Fields)
		}
	}
}

func TestParsePaginationParams(t *testing.T) {
	page, limit, err := parsePaginationParams("", "")
	if err != nil || page != 1 || limit != 0 {
		t.Fatalf("expected defaults (1, 0), got (%d, %d, %v)", page, limit, err)
	}

	page, limit, err = parsePaginationParams("3", "25")
	if err != nil || page != 3 || limit != 25 {
		t.Fatalf("expected (3, 25), got (%d, %d, %v)", page, limit, err)
	}

	if _, _, err := parsePaginationParams("0", ""); err == nil {
		t.Fatal("expected error for page 0")
	}
	if _, _, err := parsePaginationParams("", "-5"); err == nil {
		t.Fatal("expected error for negative limit")
	}
	if _, _, err := parsePaginationParams("abc", ""); err == nil {
		t.Fatal("expected error for non-numeric page")
	}
}
