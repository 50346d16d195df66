package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"food-delivery/cart"
	"food-delivery/delivery"
	"food-delivery/middleware"
	"food-delivery/utils"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The mongo collections stay nil on purpose: any handler path that touches
// the remote store before its preconditions pass would panic the test.
func newTestController() *CheckoutController {
	return &CheckoutController{
		Sessions:        cart.NewMemoryStore(),
		Estimator:       delivery.NewEstimator(),
		Locator:         &delivery.Resolver{},
		Trackers:        delivery.NewRegistry(),
		AdvanceInterval: 5 * time.Millisecond,
	}
}

func testClaims() *utils.Claims {
	return &utils.Claims{
		UserID: primitive.NewObjectID().Hex(),
		Email:  "customer@example.com",
		Role:   "user",
	}
}

func checkoutRequest(t *testing.T, claims *utils.Claims, method, restaurantID string, vars map[string]string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	r := httptest.NewRequest(method, "/checkout/"+restaurantID, &buf)
	if claims != nil {
		r = r.WithContext(context.WithValue(r.Context(), middleware.UserContextKey, claims))
	}
	if vars == nil {
		vars = map[string]string{}
	}
	vars["restaurantId"] = restaurantID
	return mux.SetURLVars(r, vars)
}

func TestConfirmOrderRequiresSession(t *testing.T) {
	cc := newTestController()
	w := httptest.NewRecorder()
	cc.ConfirmOrder(w, checkoutRequest(t, nil, http.MethodPost, "rest1", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestConfirmOrderEmptyCartRejected(t *testing.T) {
	cc := newTestController()
	claims := testClaims()

	w := httptest.NewRecorder()
	cc.ConfirmOrder(w, checkoutRequest(t, claims, http.MethodPost, "rest1", nil, nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "add items to your cart")
}

func TestConfirmOrderWithoutLocationRejected(t *testing.T) {
	cc := newTestController()
	claims := testClaims()
	key := cart.SessionKey(claims.UserID, "rest1")

	session := &cart.Session{RestaurantID: "rest1"}
	session.Cart.AddItem(primitive.NewObjectID().Hex(), "Burger Deluxe", 12.99)
	require.NoError(t, cc.Sessions.Save(context.Background(), key, session))

	w := httptest.NewRecorder()
	cc.ConfirmOrder(w, checkoutRequest(t, claims, http.MethodPost, "rest1", nil, nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "location")

	// The rejection must leave the cart untouched
	got, err := cc.Sessions.Get(context.Background(), key)
	require.NoError(t, err)
	require.Len(t, got.Cart.Lines, 1)
	assert.Equal(t, 1, got.Cart.Lines[0].Quantity)
}

func TestSetLocationFallsBackAndGeneratesEstimate(t *testing.T) {
	cc := newTestController()
	claims := testClaims()

	w := httptest.NewRecorder()
	cc.SetLocation(w, checkoutRequest(t, claims, http.MethodPost, "rest1", nil, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var view struct {
		Location *delivery.LatLng   `json:"location"`
		Estimate *delivery.Estimate `json:"estimate"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))

	require.NotNil(t, view.Location)
	assert.Equal(t, delivery.FallbackLocation, *view.Location)

	require.NotNil(t, view.Estimate)
	assert.GreaterOrEqual(t, view.Estimate.DistanceKm, 1.0)
	assert.LessOrEqual(t, view.Estimate.DistanceKm, 6.0)
	assert.GreaterOrEqual(t, view.Estimate.Minutes, 25)
	assert.Less(t, view.Estimate.Minutes, 45)
	assert.InDelta(t, delivery.FeeForDistance(view.Estimate.DistanceKm), view.Estimate.Fee, 1e-9)
}

func TestSetLocationUsesClientCoordinates(t *testing.T) {
	cc := newTestController()
	claims := testClaims()

	body := map[string]float64{"lat": 51.5074, "lng": -0.1278}
	w := httptest.NewRecorder()
	cc.SetLocation(w, checkoutRequest(t, claims, http.MethodPost, "rest1", nil, body))
	require.Equal(t, http.StatusOK, w.Code)

	var view struct {
		Location *delivery.LatLng `json:"location"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	require.NotNil(t, view.Location)
	assert.Equal(t, 51.5074, view.Location.Lat)
	assert.Equal(t, -0.1278, view.Location.Lng)
}

func TestUpdateQuantityRemovesZeroedLine(t *testing.T) {
	cc := newTestController()
	claims := testClaims()
	key := cart.SessionKey(claims.UserID, "rest1")
	itemID := primitive.NewObjectID().Hex()

	session := &cart.Session{RestaurantID: "rest1"}
	session.Cart.AddItem(itemID, "Caesar Salad", 8.99)
	require.NoError(t, cc.Sessions.Save(context.Background(), key, session))

	w := httptest.NewRecorder()
	req := checkoutRequest(t, claims, http.MethodPatch, "rest1", map[string]string{"itemId": itemID}, map[string]int{"delta": -1})
	cc.UpdateQuantity(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var view struct {
		Lines    []cart.Line `json:"lines"`
		Subtotal float64     `json:"subtotal"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.Empty(t, view.Lines)
	assert.Zero(t, view.Subtotal)
}

func TestGetCheckoutTotals(t *testing.T) {
	cc := newTestController()
	claims := testClaims()
	key := cart.SessionKey(claims.UserID, "rest1")

	session := &cart.Session{RestaurantID: "rest1"}
	burger := primitive.NewObjectID().Hex()
	session.Cart.AddItem(burger, "Burger Deluxe", 12.99)
	session.Cart.AddItem(burger, "Burger Deluxe", 12.99)
	session.Cart.AddItem(primitive.NewObjectID().Hex(), "Caesar Salad", 8.99)
	session.Estimate = &delivery.Estimate{DistanceKm: 3.0, Minutes: 30, Fee: 7.50}
	require.NoError(t, cc.Sessions.Save(context.Background(), key, session))

	w := httptest.NewRecorder()
	cc.GetCheckout(w, checkoutRequest(t, claims, http.MethodGet, "rest1", nil, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var view struct {
		Subtotal    float64 `json:"subtotal"`
		DeliveryFee float64 `json:"delivery_fee"`
		Total       float64 `json:"total"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.InDelta(t, 34.97, view.Subtotal, 1e-9)
	assert.InDelta(t, 7.50, view.DeliveryFee, 1e-9)
	assert.InDelta(t, 42.47, view.Total, 1e-9)
}
