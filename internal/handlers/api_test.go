package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akgundogan/farmgate-backend/internal/config"
	"github.com/akgundogan/farmgate-backend/internal/handlers"
	"github.com/akgundogan/farmgate-backend/internal/models"
	"github.com/akgundogan/farmgate-backend/internal/routes"
	"github.com/akgundogan/farmgate-backend/internal/services"
	"github.com/akgundogan/farmgate-backend/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()

	cfg := &config.Config{
		Port:        "3000",
		CORSOrigins: "*",
		JWTSecret:   testSecret,
		JWTExpiry:   time.Hour,
	}
	st := store.New()

	authHandler := handlers.NewAuthHandler(services.NewAuthService(st, cfg))
	productHandler := handlers.NewProductHandler(services.NewProductService(st))
	orderHandler := handlers.NewOrderHandler(services.NewOrderService(st))
	reviewHandler := handlers.NewReviewHandler(services.NewReviewService(st))
	dashboardHandler := handlers.NewDashboardHandler(services.NewDashboardService(st))
	healthHandler := handlers.NewHealthHandler(st)

	app := fiber.New()
	routes.Setup(app, cfg, authHandler, productHandler, orderHandler, reviewHandler, dashboardHandler, healthHandler)
	return app, st
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func doJSONList(t *testing.T, app *fiber.App, method, path, token string) (*http.Response, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}

func signupFarmer(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"name":           "Farmer " + email,
		"email":          email,
		"password":       "secret1",
		"userType":       "farmer",
		"additionalInfo": "demo farm",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestSignupEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"name":           "A",
		"email":          "a@b.com",
		"password":       "secret1",
		"userType":       "farmer",
		"additionalInfo": "x",
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Account created successfully", body["message"])
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), user["id"])
	assert.Equal(t, "a@b.com", user["email"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "passwordHash")
}

func TestSignupEndpoint_Validation(t *testing.T) {
	app, _ := newTestApp(t)

	valid := func() map[string]any {
		return map[string]any{
			"name":           "A",
			"email":          "a@b.com",
			"password":       "secret1",
			"userType":       "farmer",
			"additionalInfo": "x",
		}
	}

	tests := []struct {
		name        string
		mutate      func(m map[string]any)
		wantMessage string
	}{
		{"missing field", func(m map[string]any) { delete(m, "name") }, "All fields are required"},
		{"bad email", func(m map[string]any) { m["email"] = "nope" }, "Please enter a valid email address"},
		{"short password", func(m map[string]any) { m["password"] = "12345" }, "Password must be at least 6 characters long"},
		{"bad user type", func(m map[string]any) { m["userType"] = "admin" }, "Invalid user type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := valid()
			tt.mutate(payload)

			resp, body := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", payload)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}
}

func TestSignupEndpoint_DuplicateEmail(t *testing.T) {
	app, _ := newTestApp(t)
	signupFarmer(t, app, "a@b.com")

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"name":           "Different",
		"email":          "a@b.com",
		"password":       "other-password",
		"userType":       "buyer",
		"additionalInfo": "y",
	})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "User with this email already exists", body["message"])
}

func TestLoginEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	signupFarmer(t, app, "a@b.com")

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "a@b.com",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Login successful", body["message"])
	assert.NotEmpty(t, body["token"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "a@b.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid email or password", body["message"])

	// Unknown email must read exactly like a wrong password.
	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "nobody@b.com",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid email or password", body["message"])
}

func TestAuthGate(t *testing.T) {
	app, _ := newTestApp(t)

	// No token at all
	resp, body := doJSON(t, app, http.MethodGet, "/api/farmer/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Access token required", body["message"])

	// Garbage token
	resp, body = doJSON(t, app, http.MethodGet, "/api/farmer/products", "not-a-jwt", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Invalid token", body["message"])

	// Well-formed but expired token
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": 1, "email": "a@b.com", "userType": "farmer",
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	resp, body = doJSON(t, app, http.MethodGet, "/api/farmer/products", signed, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Invalid token", body["message"])

	// Token signed with the wrong secret
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": 1, "exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err = forged.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/farmer/products", signed, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestProfileAndLogout(t *testing.T) {
	app, _ := newTestApp(t)
	token := signupFarmer(t, app, "a@b.com")

	resp, body := doJSON(t, app, http.MethodGet, "/api/user/profile", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "a@b.com", body["email"])
	assert.NotContains(t, body, "password")

	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Logged out successfully", body["message"])

	// Logout revokes nothing; the token keeps working until expiry.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/user/profile", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProductEndpoints(t *testing.T) {
	app, _ := newTestApp(t)
	alice := signupFarmer(t, app, "alice@farm.com")
	bob := signupFarmer(t, app, "bob@farm.com")

	// Create two products for alice
	resp, created := doJSON(t, app, http.MethodPost, "/api/farmer/products", alice, map[string]any{
		"name": "Tomatoes", "description": "vine ripened", "price": 3.5,
		"category": "vegetables", "stock": 100, "minStock": 10, "image": "tomato.jpg",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Tomatoes", created["name"])
	productID := int64(created["id"].(float64))

	resp, _ = doJSON(t, app, http.MethodPost, "/api/farmer/products", alice, map[string]any{
		"name": "Honey", "price": 12.0,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Listing is owner-scoped and insertion-ordered
	resp, list := doJSONList(t, app, http.MethodGet, "/api/farmer/products", alice)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 2)
	assert.Equal(t, "Tomatoes", list[0]["name"])
	assert.Equal(t, "Honey", list[1]["name"])

	resp, list = doJSONList(t, app, http.MethodGet, "/api/farmer/products", bob)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, list)

	// Bob cannot touch alice's product: looks like a missing id
	path := fmt.Sprintf("/api/farmer/products/%d", productID)
	resp, body := doJSON(t, app, http.MethodPut, path, bob, map[string]any{"name": "Hijacked"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Product not found", body["message"])

	resp, body = doJSON(t, app, http.MethodDelete, path, bob, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Product not found", body["message"])

	// Alice updates her product
	resp, body = doJSON(t, app, http.MethodPut, path, alice, map[string]any{
		"name": "Cherry Tomatoes", "price": 4.25, "stock": 80,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Cherry Tomatoes", body["name"])
	assert.NotEmpty(t, body["updatedAt"])

	// Nonexistent id
	resp, body = doJSON(t, app, http.MethodPut, "/api/farmer/products/999", alice, map[string]any{"name": "X"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Product not found", body["message"])

	// Alice deletes her product
	resp, body = doJSON(t, app, http.MethodDelete, path, alice, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Product deleted successfully", body["message"])

	resp, list = doJSONList(t, app, http.MethodGet, "/api/farmer/products", alice)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 1)
	assert.Equal(t, "Honey", list[0]["name"])
}

func TestOrderEndpoints(t *testing.T) {
	app, st := newTestApp(t)
	alice := signupFarmer(t, app, "alice@farm.com")
	bob := signupFarmer(t, app, "bob@farm.com")

	// Orders enter the system externally; there is no creation endpoint.
	order := st.AddOrder(models.Order{FarmerID: 1, BuyerName: "Elif", Status: "pending", Total: 42.5})
	st.AddOrder(models.Order{FarmerID: 2, BuyerName: "Mark", Status: "pending", Total: 10})

	resp, list := doJSONList(t, app, http.MethodGet, "/api/farmer/orders", alice)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 1)
	assert.Equal(t, "Elif", list[0]["buyerName"])

	// Any status string is accepted verbatim
	path := fmt.Sprintf("/api/farmer/orders/%d/status", order.ID)
	resp, body := doJSON(t, app, http.MethodPut, path, alice, map[string]any{"status": "packed weird"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "packed weird", body["status"])
	assert.NotEmpty(t, body["updatedAt"])

	// Bob cannot update alice's order
	resp, body = doJSON(t, app, http.MethodPut, path, bob, map[string]any{"status": "stolen"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Order not found", body["message"])

	resp, body = doJSON(t, app, http.MethodPut, "/api/farmer/orders/999/status", alice, map[string]any{"status": "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Order not found", body["message"])
}

func TestReviewEndpoint(t *testing.T) {
	app, st := newTestApp(t)
	alice := signupFarmer(t, app, "alice@farm.com")

	st.AddReview(models.Review{FarmerID: 1, Reviewer: "Elif", Rating: 5, Comment: "fresh"})
	st.AddReview(models.Review{FarmerID: 2, Reviewer: "Mark", Rating: 1, Comment: "meh"})

	resp, list := doJSONList(t, app, http.MethodGet, "/api/farmer/reviews", alice)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 1)
	assert.Equal(t, "Elif", list[0]["reviewer"])
}

func TestDashboardEndpoint(t *testing.T) {
	app, st := newTestApp(t)
	alice := signupFarmer(t, app, "alice@farm.com")

	// Empty dashboard: all zeros, average rating exactly 0
	resp, body := doJSON(t, app, http.MethodGet, "/api/farmer/dashboard", alice, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), body["totalProducts"])
	assert.Equal(t, float64(0), body["averageRating"])

	st.CreateProduct(models.Product{FarmerID: 1, Name: "Tomatoes"})
	for i := 1; i <= 6; i++ {
		st.AddOrder(models.Order{FarmerID: 1, BuyerName: fmt.Sprintf("buyer-%d", i), Total: 10})
	}
	st.AddReview(models.Review{FarmerID: 1, Rating: 5})
	st.AddReview(models.Review{FarmerID: 1, Rating: 4})

	resp, body = doJSON(t, app, http.MethodGet, "/api/farmer/dashboard", alice, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["totalProducts"])
	assert.Equal(t, float64(6), body["totalOrders"])
	assert.Equal(t, float64(60), body["totalRevenue"])
	assert.Equal(t, 4.5, body["averageRating"])

	recent, ok := body["recentOrders"].([]any)
	require.True(t, ok)
	require.Len(t, recent, 5)
	first := recent[0].(map[string]any)
	last := recent[4].(map[string]any)
	assert.Equal(t, "buyer-2", first["buyerName"])
	assert.Equal(t, "buyer-6", last["buyerName"])
}

func TestHealthEndpoint(t *testing.T) {
	app, st := newTestApp(t)
	st.AddOrder(models.Order{FarmerID: 1, Total: 1})

	resp, body := doJSON(t, app, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(1), body["orders"])
}
