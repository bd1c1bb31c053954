package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ai-slice/ai-slice-api/config"
	"github.com/ai-slice/ai-slice-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// Auto-migrate all ledger models
	if err := db.AutoMigrate(
		&models.User{},
		&models.Dish{},
		&models.Order{},
		&models.Bid{},
		&models.ReputationEntry{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newPutRequest(t *testing.T, path string, body map[string]interface{}) *http.Request {
	t.Helper()

	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPut, path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err, "Response should be valid JSON")
	return response
}

func TestSignup(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	router := setupTestRouter()
	router.POST("/auth/signup", Signup)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, response map[string]interface{})
	}{
		{
			name: "Successfully register a customer",
			requestBody: map[string]interface{}{
				"name":     "New Customer",
				"email":    "new@example.com",
				"password": "secret123",
				"userType": "customer",
				"phone":    "555-1234",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, response map[string]interface{}) {
				assert.True(t, response["success"].(bool))
				user := response["user"].(map[string]interface{})
				assert.Equal(t, "New Customer", user["name"])
				assert.Equal(t, "new@example.com", user["email"])
				assert.Equal(t, "customer", user["userType"])
				assert.Equal(t, float64(0), user["walletBalance"], "New accounts start with an empty wallet")
				assert.Equal(t, false, user["isVIP"])
				assert.Equal(t, false, user["approved"], "New accounts wait for manager approval")
				assert.NotContains(t, user, "password", "Stored credential must not be echoed")
			},
		},
		{
			name: "Fail with missing email",
			requestBody: map[string]interface{}{
				"name":     "No Email",
				"password": "secret123",
				"userType": "customer",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Fail with missing password",
			requestBody: map[string]interface{}{
				"name":     "No Password",
				"email":    "nopass@example.com",
				"userType": "customer",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/auth/signup", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, w.Code)

			response := parseResponse(t, w)
			if tt.expectedStatus != http.StatusCreated {
				assert.False(t, response["success"].(bool))
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, response)
			}
		})
	}
}

func TestSignin(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	user := models.User{
		Name:     "Existing Customer",
		Email:    "customer@example.com",
		Password: "customer123",
		UserType: "customer",
		Approved: true,
	}
	db.Create(&user)

	router := setupTestRouter()
	router.POST("/auth/signin", Signin)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
	}{
		{
			name: "Successfully sign in with valid credentials",
			requestBody: map[string]interface{}{
				"email":    "customer@example.com",
				"password": "customer123",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Fail with wrong password",
			requestBody: map[string]interface{}{
				"email":    "customer@example.com",
				"password": "wrong",
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Fail with unknown email",
			requestBody: map[string]interface{}{
				"email":    "nobody@example.com",
				"password": "customer123",
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/auth/signin", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, w.Code)

			response := parseResponse(t, w)
			if tt.expectedStatus == http.StatusOK {
				assert.True(t, response["success"].(bool))
				userData := response["user"].(map[string]interface{})
				assert.Equal(t, "Existing Customer", userData["name"])
			} else {
				assert.False(t, response["success"].(bool))
				assert.Equal(t, "Invalid credentials", response["message"])
			}
		})
	}
}

func TestSignin_DuplicateEmailFirstRegistrationWins(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	// Email uniqueness is not enforced; sign-in resolves duplicates by
	// lowest id.
	first := models.User{Name: "First", Email: "dup@example.com", Password: "pw", UserType: "customer"}
	db.Create(&first)
	second := models.User{Name: "Second", Email: "dup@example.com", Password: "pw", UserType: "customer"}
	db.Create(&second)

	router := setupTestRouter()
	router.POST("/auth/signin", Signin)

	w := postJSON(t, router, "/auth/signin", map[string]interface{}{
		"email":    "dup@example.com",
		"password": "pw",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	response := parseResponse(t, w)
	userData := response["user"].(map[string]interface{})
	assert.Equal(t, "First", userData["name"])
	assert.Equal(t, float64(first.ID), userData["id"])
}
