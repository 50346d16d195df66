package cart

import (
	"time"

	"food-delivery/delivery"
)

// Session is the full state of one checkout: the cart, the delivery location
// once obtained, and the estimate generated for it. Sessions are keyed by
// user and restaurant and die when the order is confirmed or the store's TTL
// expires; nothing here outlives the checkout.
type Session struct {
	RestaurantID string             `json:"restaurant_id"`
	Cart         Cart               `json:"cart"`
	Location     *delivery.LatLng   `json:"location,omitempty"`
	Estimate     *delivery.Estimate `json:"estimate,omitempty"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// DeliveryFee returns the estimate's fee, or 0 if none has been generated
func (s *Session) DeliveryFee() float64 {
	if s.Estimate == nil {
		return 0
	}
	return s.Estimate.Fee
}

// HasLocation reports whether a delivery location has been obtained
func (s *Session) HasLocation() bool {
	return s.Location != nil
}
