package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ai-slice/ai-slice-api/config"
	"github.com/ai-slice/ai-slice-api/models"
)

func TestGetUserReputation_EmptyForUnknownAccount(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	router := setupTestRouter()
	router.GET("/reputation/user/:id", GetUserReputation)

	req, _ := http.NewRequest(http.MethodGet, "/reputation/user/9999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// The listing never fails, even for accounts with no entries
	assert.Equal(t, http.StatusOK, w.Code)
	response := parseResponse(t, w)
	assert.True(t, response["success"].(bool))
	assert.Len(t, response["reputation"].([]interface{}), 0)
}

func TestSubmitRating(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	router := setupTestRouter()
	router.POST("/reputation/rating", SubmitRating)
	router.GET("/reputation/user/:id", GetUserReputation)

	w := postJSON(t, router, "/reputation/rating", map[string]interface{}{
		"userId":  1,
		"type":    "food",
		"rating":  4.0,
		"orderId": 1,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	response := parseResponse(t, w)
	assert.True(t, response["success"].(bool))

	// Out-of-range ratings and unknown order ids are accepted as-is
	w = postJSON(t, router, "/reputation/rating", map[string]interface{}{
		"userId":  1,
		"type":    "delivery",
		"rating":  999.0,
		"orderId": 424242,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ := http.NewRequest(http.MethodGet, "/reputation/user/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	listing := parseResponse(t, rec)
	entries := listing["reputation"].([]interface{})
	assert.Len(t, entries, 2)

	first := entries[0].(map[string]interface{})
	assert.Equal(t, "food", first["type"])
	assert.Equal(t, 4.0, first["rating"])
	assert.Equal(t, float64(1), first["orderId"])

	second := entries[1].(map[string]interface{})
	assert.Equal(t, "delivery", second["type"])
	assert.Equal(t, 999.0, second["rating"])
}

func TestReputationEntriesAreAppendOnly(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	db.Create(&models.ReputationEntry{UserID: 1, Type: "warning", Reason: "Insufficient funds - order rejected"})

	rating := 5.0
	db.Create(&models.ReputationEntry{UserID: 1, Type: "food", Rating: &rating})

	router := setupTestRouter()
	router.GET("/reputation/user/:id", GetUserReputation)

	req, _ := http.NewRequest(http.MethodGet, "/reputation/user/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	response := parseResponse(t, w)
	entries := response["reputation"].([]interface{})
	assert.Len(t, entries, 2)

	// Warning entries carry a reason but no rating
	warning := entries[0].(map[string]interface{})
	assert.Equal(t, "warning", warning["type"])
	assert.Equal(t, "Insufficient funds - order rejected", warning["reason"])
	assert.NotContains(t, warning, "rating")
}
