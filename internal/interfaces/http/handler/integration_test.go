package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	appidentity "github.com/backoffice/backend/internal/application/identity"
	"github.com/backoffice/backend/internal/infrastructure/auth"
	"github.com/backoffice/backend/internal/infrastructure/config"
	"github.com/backoffice/backend/internal/infrastructure/persistence"
	"github.com/backoffice/backend/internal/interfaces/http/handler"
	"github.com/backoffice/backend/internal/interfaces/http/middleware"
	"github.com/backoffice/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// envelope mirrors the response body shape for assertions.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	} `json:"error"`
	Meta *struct {
		Count int64 `json:"count"`
		Skip  int   `json:"skip"`
		Limit int   `json:"limit"`
	} `json:"meta"`
}

type testServer struct {
	engine *gin.Engine
	db     *persistence.Database
	users  *persistence.GormUserRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := persistence.NewTestDatabase()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	users := persistence.NewGormUserRepository(db.DB)
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-at-least-32-chars-long",
		AccessTokenExpiration: time.Hour,
		Issuer:                "backoffice-test",
	})
	authService := appidentity.NewAuthService(users, jwtService)
	userService := appidentity.NewUserService(users)
	currentUser := middleware.CurrentUser(jwtService, users)

	engine := gin.New()
	engine.Use(middleware.RequestID())

	router.NewRouter(engine).
		Register(handler.NewAuthHandler(authService, userService, currentUser)).
		Setup()

	itemRepo := persistence.NewGormItemRepository(db.DB)
	purchaseRepo := persistence.NewPurchaseRepository(db.DB)
	saleRepo := persistence.NewSaleRepository(db.DB)
	accountRepo := persistence.NewAccountRepository(db.DB)

	api := engine.Group("/api/v1", currentUser)
	registrars := []router.RouteRegistrar{
		handler.NewUserHandler(userService),
		handler.NewPermissionHandler(persistence.NewPermissionRepository(db.DB)),
		handler.NewStoreHandler(persistence.NewStoreRepository(db.DB)),
		handler.NewSupplierHandler(persistence.NewSupplierRepository(db.DB)),
		handler.NewCustomerTypeHandler(persistence.NewCustomerTypeRepository(db.DB)),
		handler.NewCustomerHandler(persistence.NewCustomerRepository(db.DB), persistence.NewCustomerTypeRepository(db.DB)),
		handler.NewItemCategoryHandler(persistence.NewItemCategoryRepository(db.DB)),
		handler.NewItemUnitHandler(persistence.NewItemUnitRepository(db.DB)),
		handler.NewItemHandler(
			itemRepo,
			persistence.NewItemCategoryRepository(db.DB),
			persistence.NewItemUnitRepository(db.DB),
		),
		handler.NewPurchaseHandler(purchaseRepo, persistence.NewSupplierRepository(db.DB), persistence.NewStoreRepository(db.DB)),
		handler.NewPurchaseItemHandler(persistence.NewPurchaseItemRepository(db.DB), purchaseRepo, itemRepo),
		handler.NewSaleHandler(saleRepo, persistence.NewCustomerRepository(db.DB), persistence.NewStoreRepository(db.DB)),
		handler.NewSaleItemHandler(persistence.NewSaleItemRepository(db.DB), saleRepo, itemRepo),
		handler.NewAccountHandler(accountRepo),
		handler.NewAccountTransactionHandler(persistence.NewAccountTransactionRepository(db.DB), accountRepo),
		handler.NewPaymentHandler(persistence.NewPaymentRepository(db.DB)),
	}
	for _, r := range registrars {
		r.RegisterRoutes(api)
	}

	return &testServer{engine: engine, db: db, users: users}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.engine.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

// signup registers an account and returns its bearer token.
func (ts *testServer) signup(t *testing.T, email string) string {
	t.Helper()

	rec, _ := ts.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":    email,
		"password": "secret-pass",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": "secret-pass",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var token struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &token))
	require.NotEmpty(t, token.AccessToken)
	return token.AccessToken
}

func TestAuthFlow(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":     "alice@example.com",
		"password":  "secret-pass",
		"full_name": "Alice",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	t.Run("duplicate email", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
			"email":    "Alice@Example.com",
			"password": "secret-pass",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "EMAIL_TAKEN", env.Error.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
			"email":    "alice@example.com",
			"password": "wrong-pass",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
		assert.Equal(t, "Incorrect email or password", env.Error.Message)
	})

	t.Run("unknown email uses the same error", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
			"email":    "nobody@example.com",
			"password": "secret-pass",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	})

	t.Run("me", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
			"email":    "alice@example.com",
			"password": "secret-pass",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		var token struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &token))
		assert.Equal(t, "bearer", token.TokenType)

		rec, env = ts.do(t, http.MethodGet, "/api/v1/auth/me", token.AccessToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var me struct {
			Email string `json:"email"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &me))
		assert.Equal(t, "alice@example.com", me.Email)
	})

	t.Run("me without token", func(t *testing.T) {
		rec, _ := ts.do(t, http.MethodGet, "/api/v1/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("update profile", func(t *testing.T) {
		token := ts.signup(t, "carol@example.com")

		rec, env := ts.do(t, http.MethodPut, "/api/v1/auth/me", token, gin.H{
			"full_name": "Carol Jones",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		var me struct {
			Email    string `json:"email"`
			FullName string `json:"full_name"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &me))
		assert.Equal(t, "carol@example.com", me.Email)
		assert.Equal(t, "Carol Jones", me.FullName)

		rec, env = ts.do(t, http.MethodPut, "/api/v1/auth/me", token, gin.H{
			"email": "alice@example.com",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "EMAIL_TAKEN", env.Error.Code)
	})

	t.Run("change password", func(t *testing.T) {
		token := ts.signup(t, "dave@example.com")

		rec, env := ts.do(t, http.MethodPut, "/api/v1/auth/me/password", token, gin.H{
			"current_password": "wrong-pass",
			"new_password":     "another-pass",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INCORRECT_PASSWORD", env.Error.Code)

		rec, env = ts.do(t, http.MethodPut, "/api/v1/auth/me/password", token, gin.H{
			"current_password": "secret-pass",
			"new_password":     "secret-pass",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "SAME_PASSWORD", env.Error.Code)

		rec, env = ts.do(t, http.MethodPut, "/api/v1/auth/me/password", token, gin.H{
			"current_password": "secret-pass",
			"new_password":     "another-pass",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		var msg struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &msg))
		assert.Equal(t, "Password updated successfully", msg.Message)

		rec, _ = ts.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
			"email":    "dave@example.com",
			"password": "another-pass",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPermissionResource(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.signup(t, "alice@example.com")
	bob := ts.signup(t, "bob@example.com")

	permissionID := create(t, ts, alice, "/api/v1/permissions", gin.H{
		"name":        "reports.read",
		"description": "Read-only reporting access",
	})

	t.Run("owner reads it back", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodGet, "/api/v1/permissions/"+permissionID, alice, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "reports.read", got.Name)
		assert.Equal(t, "Read-only reporting access", got.Description)
	})

	t.Run("other tenants are refused", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodGet, "/api/v1/permissions/"+permissionID, bob, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "FORBIDDEN", env.Error.Code)

		rec, _ = ts.do(t, http.MethodGet, "/api/v1/permissions", bob, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rename keeps the description", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodPut, "/api/v1/permissions/"+permissionID, alice, gin.H{
			"name": "reports.write",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "reports.write", got.Name)
		assert.Equal(t, "Read-only reporting access", got.Description)
	})

	t.Run("delete confirms and the row is gone", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodDelete, "/api/v1/permissions/"+permissionID, alice, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var msg struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &msg))
		assert.Equal(t, "Deleted successfully", msg.Message)

		rec, _ = ts.do(t, http.MethodGet, "/api/v1/permissions/"+permissionID, alice, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSupplierPhoneBounds(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.signup(t, "alice@example.com")

	t.Run("long phone is accepted", func(t *testing.T) {
		phone := strings.Repeat("0", 30)
		rec, env := ts.do(t, http.MethodPost, "/api/v1/suppliers", alice, gin.H{
			"name":  "Acme",
			"phone": phone,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var got struct {
			Phone string `json:"phone"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, phone, got.Phone)
	})

	t.Run("phone over 255 is rejected", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodPost, "/api/v1/suppliers", alice, gin.H{
			"name":  "Acme Too",
			"phone": strings.Repeat("0", 256),
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("customer phone gets the same bound", func(t *testing.T) {
		typeID := create(t, ts, alice, "/api/v1/customer-types", gin.H{"name": "Retail"})
		rec, _ := ts.do(t, http.MethodPost, "/api/v1/customers", alice, gin.H{
			"name":             "Jane",
			"phone":            strings.Repeat("1", 30),
			"customer_type_id": typeID,
		})
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})
}

func TestStoreResource(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.signup(t, "alice@example.com")
	bob := ts.signup(t, "bob@example.com")

	var storeID string
	rec, env := ts.do(t, http.MethodPost, "/api/v1/stores", alice, gin.H{
		"name":    "Main Street",
		"address": "1 Main St",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var created struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		OwnerID string `json:"owner_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	storeID = created.ID
	assert.Equal(t, "Main Street", created.Name)
	assert.NotEmpty(t, created.OwnerID)

	t.Run("create without name is rejected", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodPost, "/api/v1/stores", alice, gin.H{
			"address": "2 Side St",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("get", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodGet, "/api/v1/stores/"+storeID, alice, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			Name string `json:"name"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "Main Street", got.Name)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodGet, "/api/v1/stores/not-a-uuid", alice, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "BAD_REQUEST", env.Error.Code)
	})

	t.Run("absent id", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodGet, "/api/v1/stores/"+uuid.NewString(), alice, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})

	t.Run("cross tenant access is forbidden", func(t *testing.T) {
		for _, method := range []string{http.MethodGet, http.MethodDelete} {
			rec, env := ts.do(t, method, "/api/v1/stores/"+storeID, bob, nil)
			assert.Equal(t, http.StatusForbidden, rec.Code, method)
			require.NotNil(t, env.Error)
			assert.Equal(t, "FORBIDDEN", env.Error.Code)
			assert.Equal(t, "Not enough permissions", env.Error.Message)
		}
	})

	t.Run("list is owner scoped", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodGet, "/api/v1/stores", bob, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, env.Meta)
		assert.EqualValues(t, 0, env.Meta.Count)

		rec, env = ts.do(t, http.MethodGet, "/api/v1/stores", alice, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, env.Meta)
		assert.EqualValues(t, 1, env.Meta.Count)
	})

	t.Run("update", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodPut, "/api/v1/stores/"+storeID, alice, gin.H{
			"name": "Renamed",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			Name    string `json:"name"`
			Address string `json:"address"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "Renamed", got.Name)
		assert.Equal(t, "1 Main St", got.Address)
	})

	t.Run("delete confirms and is not repeatable", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodDelete, "/api/v1/stores/"+storeID, alice, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "Deleted successfully", got.Message)

		rec, env = ts.do(t, http.MethodDelete, "/api/v1/stores/"+storeID, alice, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}

func TestListPagination(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.signup(t, "alice@example.com")

	for i := 0; i < 5; i++ {
		rec, _ := ts.do(t, http.MethodPost, "/api/v1/stores", alice, gin.H{
			"name": fmt.Sprintf("Store %d", i),
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec, env := ts.do(t, http.MethodGet, "/api/v1/stores?skip=2&limit=2", alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.Meta)
	assert.EqualValues(t, 5, env.Meta.Count)
	assert.Equal(t, 2, env.Meta.Skip)
	assert.Equal(t, 2, env.Meta.Limit)

	var stores []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stores))
	require.Len(t, stores, 2)
	assert.Equal(t, "Store 2", stores[0].Name)
	assert.Equal(t, "Store 3", stores[1].Name)

	t.Run("limit above cap is rejected", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodGet, "/api/v1/stores?limit=1001", alice, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "BAD_REQUEST", env.Error.Code)
	})
}

func TestItemResource(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.signup(t, "alice@example.com")
	bob := ts.signup(t, "bob@example.com")

	createNamed := func(token, path, name string) string {
		rec, env := ts.do(t, http.MethodPost, path, token, gin.H{"name": name})
		require.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &got))
		return got.ID
	}

	categoryID := createNamed(alice, "/api/v1/item-categories", "Beverages")
	unitID := createNamed(alice, "/api/v1/item-units", "Bottle")

	t.Run("create with references", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodPost, "/api/v1/items", alice, gin.H{
			"title":            "Cola",
			"item_category_id": categoryID,
			"item_unit_id":     unitID,
			"stock":            2,
			"stock_minimum":    5,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			Title string `json:"title"`
			Stock int    `json:"stock"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "Cola", got.Title)
		assert.Equal(t, 2, got.Stock)
	})

	t.Run("missing category fails before any write", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodGet, "/api/v1/items", alice, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, env.Meta)
		before := env.Meta.Count

		rec, env = ts.do(t, http.MethodPost, "/api/v1/items", alice, gin.H{
			"title":        "Orphan",
			"item_unit_id": unitID,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		assert.Contains(t, env.Error.Message, "ItemCategoryID")

		rec, env = ts.do(t, http.MethodGet, "/api/v1/items", alice, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, env.Meta)
		assert.Equal(t, before, env.Meta.Count)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodPost, "/api/v1/items", alice, gin.H{
			"title":            "Ghost",
			"item_category_id": uuid.NewString(),
			"item_unit_id":     unitID,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_REFERENCE", env.Error.Code)
	})

	t.Run("foreign category reads as missing", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodPost, "/api/v1/items", bob, gin.H{
			"title":            "Stolen",
			"item_category_id": categoryID,
			"item_unit_id":     unitID,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_REFERENCE", env.Error.Code)
	})

	t.Run("negative stock is rejected", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodPost, "/api/v1/items", alice, gin.H{
			"title":            "Broken",
			"item_category_id": categoryID,
			"item_unit_id":     unitID,
			"stock":            -1,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_STOCK", env.Error.Code)
	})

	t.Run("low stock report", func(t *testing.T) {
		rec, _ := ts.do(t, http.MethodPost, "/api/v1/items", alice, gin.H{
			"title":            "Water",
			"item_category_id": categoryID,
			"item_unit_id":     unitID,
			"stock":            50,
			"stock_minimum":    5,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec, env := ts.do(t, http.MethodGet, "/api/v1/items/low-stock", alice, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, env.Meta)
		assert.EqualValues(t, 1, env.Meta.Count)

		var items []struct {
			Title string `json:"title"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &items))
		require.Len(t, items, 1)
		assert.Equal(t, "Cola", items[0].Title)
	})
}

func TestUserAdministration(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	alice := ts.signup(t, "alice@example.com")
	root := ts.signup(t, "root@example.com")

	// promote the second account to superuser directly in storage
	rootUser, err := ts.users.FindByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	rootUser.IsSuperuser = true
	require.NoError(t, ts.users.Save(ctx, rootUser))

	aliceUser, err := ts.users.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	aliceID := aliceUser.ID.String()

	t.Run("listing requires superuser", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodGet, "/api/v1/users", alice, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "FORBIDDEN", env.Error.Code)

		rec, env = ts.do(t, http.MethodGet, "/api/v1/users", root, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, env.Meta)
		assert.EqualValues(t, 2, env.Meta.Count)
	})

	t.Run("self read is allowed", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodGet, "/api/v1/users/"+aliceID, alice, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			Email string `json:"email"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "alice@example.com", got.Email)
	})

	t.Run("reading another account requires superuser", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodGet, "/api/v1/users/"+rootUser.ID.String(), alice, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "FORBIDDEN", env.Error.Code)

		rec, _ = ts.do(t, http.MethodGet, "/api/v1/users/"+aliceID, root, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("create with explicit flags", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodPost, "/api/v1/users", alice, gin.H{
			"email":    "mallory@example.com",
			"password": "secret-pass",
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec, env = ts.do(t, http.MethodPost, "/api/v1/users", root, gin.H{
			"email":        "carol@example.com",
			"password":     "secret-pass",
			"is_superuser": true,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			Email       string `json:"email"`
			IsSuperuser bool   `json:"is_superuser"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "carol@example.com", got.Email)
		assert.True(t, got.IsSuperuser)
	})

	t.Run("update can deactivate an account", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodPut, "/api/v1/users/"+aliceID, root, gin.H{
			"is_active": false,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			IsActive bool `json:"is_active"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.False(t, got.IsActive)

		// deactivated tokens stop working
		rec, _ = ts.do(t, http.MethodGet, "/api/v1/auth/me", alice, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec, _ = ts.do(t, http.MethodPut, "/api/v1/users/"+aliceID, root, gin.H{
			"is_active": true,
		})
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("self delete is rejected", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodDelete, "/api/v1/users/"+rootUser.ID.String(), root, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "SELF_DELETE", env.Error.Code)
	})

	t.Run("delete removes the account", func(t *testing.T) {
		rec, _ := ts.do(t, http.MethodDelete, "/api/v1/users/"+aliceID, root, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec, _ = ts.do(t, http.MethodGet, "/api/v1/auth/me", alice, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
