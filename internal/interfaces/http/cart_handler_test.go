package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoshop/ecoshop-api/internal/application/analytics"
	"github.com/ecoshop/ecoshop-api/internal/application/auth"
	"github.com/ecoshop/ecoshop-api/internal/application/dto"
	"github.com/ecoshop/ecoshop-api/internal/application/usecase"
	"github.com/ecoshop/ecoshop-api/internal/domain/entity"
	"github.com/ecoshop/ecoshop-api/internal/infrastructure/memstore"
	"github.com/ecoshop/ecoshop-api/internal/infrastructure/records"
	apphttp "github.com/ecoshop/ecoshop-api/internal/interfaces/http"
	pkgjwt "github.com/ecoshop/ecoshop-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildAPI arma la aplicación completa sobre un store en memoria con dos
// productos de catálogo.
func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	store := memstore.New()
	products := records.NewProductRepository(store)
	users := records.NewUserRepository(store)
	orders := records.NewOrderRepository(store)

	for _, p := range []*entity.Product{
		{ID: "p1", Name: "Cepillo de bambú", Price: decimal.RequireFromString("24.99"), Category: "personal-care", EcoRating: 5},
		{ID: "p2", Name: "Bolsa de algodón", Price: decimal.RequireFromString("18.99"), Category: "accessories", EcoRating: 4},
	} {
		_, err := products.Upsert(context.Background(), p)
		require.NoError(t, err)
	}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewUseCase(users, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		ProductUC:   usecase.NewProductUseCase(products),
		OrderUC:     usecase.NewOrderUseCase(orders, products, store, nil),
		UserUC:      usecase.NewUserUseCase(users),
		DashboardUC: analytics.NewDashboardUseCase(users, products, orders),
		Store:       store,
		Products:    products,
		JWTSecret:   testJWTSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeCart(t *testing.T, resp *http.Response) dto.CartResponse {
	t.Helper()
	defer resp.Body.Close()
	var out dto.CartResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func userToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, "u1", "ana@example.com", "user", testIssuer, testExpMin)
	require.NoError(t, err)
	return tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthHTTP_RegistroDuplicado_Retorna409(t *testing.T) {
	app := buildAPI(t)
	alta := dto.RegisterRequest{
		FirstName: "Ana", LastName: "Pérez",
		Email: "ana@example.com", Password: "secreta1",
	}

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", alta)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/register", "", alta)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "EMAIL_EXISTS", out.Code)
}

func TestAuthHTTP_LoginPasswordIncorrecto_Retorna401(t *testing.T) {
	app := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		FirstName: "Ana", LastName: "Pérez",
		Email: "ana@example.com", Password: "secreta1",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: "ana@example.com", Password: "equivocada",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Carrito vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestCartHTTP_SinToken_Retorna401(t *testing.T) {
	app := buildAPI(t)

	resp := doJSON(t, app, http.MethodGet, "/api/cart", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCartHTTP_FlujoCompleto(t *testing.T) {
	app := buildAPI(t)
	token := userToken(t)

	// Carrito inicial vacío.
	cart := decodeCart(t, doJSON(t, app, http.MethodGet, "/api/cart", token, nil))
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalItems)

	// Agregar dos veces el mismo producto acumula la línea.
	doJSON(t, app, http.MethodPost, "/api/cart/items", token,
		dto.AddCartItemRequest{ProductID: "p1", Quantity: 1}).Body.Close()
	cart = decodeCart(t, doJSON(t, app, http.MethodPost, "/api/cart/items", token,
		dto.AddCartItemRequest{ProductID: "p1", Quantity: 1}))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.True(t, cart.TotalPrice.Equal(decimal.RequireFromString("49.98")),
		"total=%s", cart.TotalPrice)

	// Fijar cantidad.
	cart = decodeCart(t, doJSON(t, app, http.MethodPut, "/api/cart/items/p1", token,
		dto.SetCartQuantityRequest{Quantity: 3}))
	assert.Equal(t, 3, cart.TotalItems)

	// Eliminar la línea.
	cart = decodeCart(t, doJSON(t, app, http.MethodDelete, "/api/cart/items/p1", token, nil))
	assert.Empty(t, cart.Items)
}

func TestCartHTTP_ProductoInexistente_Retorna404(t *testing.T) {
	app := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/cart/items", userToken(t),
		dto.AddCartItemRequest{ProductID: "fantasma", Quantity: 1})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Checkout vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckoutHTTP_CreaOrdenYVaciaCarrito(t *testing.T) {
	app := buildAPI(t)
	token := userToken(t)

	doJSON(t, app, http.MethodPost, "/api/cart/items", token,
		dto.AddCartItemRequest{ProductID: "p1", Quantity: 2}).Body.Close()

	resp := doJSON(t, app, http.MethodPost, "/api/orders", token, dto.CheckoutRequest{
		CustomerInfo: dto.CustomerInfoDTO{
			Email: "ana@example.com", FirstName: "Ana", LastName: "Pérez",
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var order dto.OrderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&order))
	resp.Body.Close()
	assert.Equal(t, entity.OrderConfirmed, order.Status)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("49.98")))

	cart := decodeCart(t, doJSON(t, app, http.MethodGet, "/api/cart", token, nil))
	assert.Empty(t, cart.Items, "el checkout vacía el carrito")

	// La orden aparece en el listado del comprador.
	respList := doJSON(t, app, http.MethodGet, "/api/orders", token, nil)
	defer respList.Body.Close()
	var list dto.OrderListResponse
	require.NoError(t, json.NewDecoder(respList.Body).Decode(&list))
	assert.Equal(t, 1, list.Total)
}

func TestCheckoutHTTP_CarritoVacio_Retorna400(t *testing.T) {
	app := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/orders", userToken(t), dto.CheckoutRequest{
		CustomerInfo: dto.CustomerInfoDTO{
			Email: "ana@example.com", FirstName: "Ana", LastName: "Pérez",
		},
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Back-office vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestAdminHTTP_UserNoPuedeCrearProductos(t *testing.T) {
	app := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products", userToken(t), dto.CreateProductRequest{
		Name: "Nuevo", Price: decimal.RequireFromString("5"), Category: "kitchen", EcoRating: 3,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminHTTP_AdminCreaProducto(t *testing.T) {
	app := buildAPI(t)
	tok, err := pkgjwt.Generate(testJWTSecret, "a1", "admin@ecoshop.com", "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doJSON(t, app, http.MethodPost, "/api/products", tok, dto.CreateProductRequest{
		Name: "Jabón artesanal", Price: decimal.RequireFromString("9.99"), Category: "personal-care", EcoRating: 4,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	assert.NotEmpty(t, created.ID)

	// El producto queda visible en el catálogo público.
	public := doJSON(t, app, http.MethodGet, "/api/products/"+created.ID, "", nil)
	defer public.Body.Close()
	assert.Equal(t, http.StatusOK, public.StatusCode)
}
