package delivery

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Estimate is a synthetic delivery quote. No routing service is integrated,
// so distance and time are simulated; only the fee formula is fixed.
type Estimate struct {
	DistanceKm float64 `json:"distance_km"`
	Minutes    int     `json:"minutes"`
	Fee        float64 `json:"fee"`
}

const (
	feePerKm = 1.5
	baseFee  = 3.0
)

// Estimator generates delivery estimates on request
type Estimator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewEstimator creates an Estimator seeded from the current time
func NewEstimator() *Estimator {
	return &Estimator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Generate returns a new estimate: distance in [1.0, 6.0) km at one decimal,
// time as a whole number of minutes in [25, 45), and
// fee = distance*1.5 + 3.0 rounded to cents.
func (e *Estimator) Generate() Estimate {
	e.mu.Lock()
	defer e.mu.Unlock()

	distance := roundTo(e.rnd.Float64()*5+1, 1)
	minutes := e.rnd.Intn(20) + 25
	fee := FeeForDistance(distance)
	return Estimate{DistanceKm: distance, Minutes: minutes, Fee: fee}
}

// FeeForDistance computes the delivery fee for a distance in km
func FeeForDistance(distanceKm float64) float64 {
	return roundTo(distanceKm*feePerKm+baseFee, 2)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
