package payments

import (
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// amounts are in US dollars, half a cent apart is considered the same
const tolerance = 0.005

type PaymentData struct {
	TourId string  `json:"tourId"`
	Amount float64 `json:"amount"`
}

func (data PaymentData) Validate() error {
	return validation.ValidateStruct(&data,
		validation.Field(&data.TourId, validation.Required),
		validation.Field(&data.Amount, validation.Required, validation.Min(0.0).Exclusive()),
	)
}

func (data PaymentData) matches(price float64) bool {
	return math.Abs(data.Amount-price) < tolerance
}
