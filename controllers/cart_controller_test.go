package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "shop-backend/common/errors"
	"shop-backend/middleware"
	"shop-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCartAPI struct {
	view    *models.CartView
	cart    *models.Cart
	created bool
	err     error
}

func (f *fakeCartAPI) GetCart(context.Context, primitive.ObjectID, int, int) (*models.CartView, error) {
	return f.view, f.err
}

func (f *fakeCartAPI) AddToCart(context.Context, primitive.ObjectID, primitive.ObjectID, int) (*models.Cart, bool, error) {
	return f.cart, f.created, f.err
}

func (f *fakeCartAPI) UpdateCart(context.Context, primitive.ObjectID, primitive.ObjectID, int) (*models.Cart, error) {
	return f.cart, f.err
}

func (f *fakeCartAPI) RemoveFromCart(context.Context, primitive.ObjectID, primitive.ObjectID) (*models.Cart, error) {
	return f.cart, f.err
}

func cartRouter(api *fakeCartAPI, userID primitive.ObjectID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserContextKey, userID.Hex())
	})
	cc := NewCartController(api)
	r.GET("/user/get/cart", cc.GetCart)
	r.POST("/user/add/cart", cc.AddToCart)
	r.PATCH("/user/update/cart", cc.UpdateCart)
	r.DELETE("/user/remove/cart/:productId", cc.RemoveFromCart)
	return r
}

func TestGetCart_AbsentCartIsNullPayload(t *testing.T) {
	r := cartRouter(&fakeCartAPI{view: nil}, primitive.NewObjectID())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/get/cart", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !body.Success {
		t.Fatalf("expected success=true, body %s", w.Body.String())
	}
	if string(body.Data) != "null" {
		t.Fatalf("expected null data for absent cart, got %s", body.Data)
	}
}

func TestGetCart_ReturnsView(t *testing.T) {
	view := &models.CartView{
		UserID: primitive.NewObjectID(),
		Items:  []models.CartItemView{{Name: "Blender", Price: 49.99, Quantity: 2}},
	}
	r := cartRouter(&fakeCartAPI{view: view}, view.UserID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/get/cart", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Blender") {
		t.Fatalf("expected enriched item in body: %s", w.Body.String())
	}
}

func TestAddToCart_CreatedIs201(t *testing.T) {
	api := &fakeCartAPI{cart: &models.Cart{ID: primitive.NewObjectID()}, created: true}
	r := cartRouter(api, primitive.NewObjectID())

	payload := `{"productId":"` + primitive.NewObjectID().Hex() + `","quantity":2}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/add/cart", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 for first add, got %d", w.Code)
	}
}

func TestAddToCart_InvalidProductIDIs400(t *testing.T) {
	r := cartRouter(&fakeCartAPI{}, primitive.NewObjectID())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/add/cart", strings.NewReader(`{"productId":"nope","quantity":1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed product id, got %d", w.Code)
	}
}

func TestUpdateCart_ZeroQuantityReachesService(t *testing.T) {
	api := &fakeCartAPI{cart: &models.Cart{ID: primitive.NewObjectID()}}
	r := cartRouter(api, primitive.NewObjectID())

	payload := `{"productId":"` + primitive.NewObjectID().Hex() + `","quantity":0}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/user/update/cart", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// Explicit zero must bind, not fail validation.
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for explicit zero quantity, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateCart_MissingItemIs404(t *testing.T) {
	api := &fakeCartAPI{err: apperrors.WithMessage(apperrors.ErrNotFound, "Item not found in cart.")}
	r := cartRouter(api, primitive.NewObjectID())

	payload := `{"productId":"` + primitive.NewObjectID().Hex() + `","quantity":3}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/user/update/cart", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Item not found in cart.") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestRemoveFromCart_200(t *testing.T) {
	api := &fakeCartAPI{cart: &models.Cart{ID: primitive.NewObjectID()}}
	r := cartRouter(api, primitive.NewObjectID())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/user/remove/cart/"+primitive.NewObjectID().Hex(), nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
