package matching

import "errors"

var (
	ErrInvalidWeight  = errors.New("invalid weight configuration")
	ErrInvalidRequest = errors.New("invalid match request")
)

// Weights configures the relative importance of the five scoring
// components. Values need not sum to 1; the aggregation normalizes by the
// sum of weights of components that had data.
type Weights struct {
	Skills     float64
	Experience float64
	Salary     float64
	Location   float64
	Industry   float64
}

func DefaultWeights() Weights {
	return Weights{
		Skills:     0.35,
		Experience: 0.20,
		Salary:     0.15,
		Location:   0.15,
		Industry:   0.15,
	}
}

// Validate rejects negative weights and the all-zero configuration.
func (w Weights) Validate() error {
	vals := [5]float64{w.Skills, w.Experience, w.Salary, w.Location, w.Industry}
	sum := 0.0
	for _, v := range vals {
		if v < 0 {
			return ErrInvalidWeight
		}
		sum += v
	}
	if sum == 0 {
		return ErrInvalidWeight
	}
	return nil
}
