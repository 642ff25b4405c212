package payments

import (
	"net/http"

	"github.com/silktrader/statuary/pkg/auth"
	"github.com/silktrader/statuary/pkg/content"
	JSON "github.com/silktrader/statuary/pkg/json-utilities"
	"github.com/silktrader/statuary/pkg/rest"
	"github.com/sirupsen/logrus"
)

type Store interface {
	User(userId string) (content.User, bool)
	Tour(tourId string) (content.PremiumTour, bool)
	CreatePurchase(data content.NewPurchase) (content.Purchase, bool)
	PurchasesByUser(userId string) []content.Purchase
}

// RegisterHandlers mounts the payment routes, which are only available to signed in users.
func RegisterHandlers(engine *rest.Engine, store Store) {
	var authenticated = auth.Auth(store)
	engine.Post("/payments", addPayment(store), authenticated)
	engine.Get("/payments", getPayments(store), authenticated)
}

/*
addPayment records the purchase of a premium tour by the authenticated user. No funds are moved here: the client
settles the transaction and reports the amount, which must match the tour's price.
*/
func addPayment(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		data, err := JSON.DecodeValidate[PaymentData](request)
		if err != nil {
			JSON.ValidationError(writer, err)
			return
		}

		tour, found := store.Tour(data.TourId)
		if !found {
			JSON.NotFound(writer, "Tour not found")
			return
		}
		if !data.matches(tour.Price) {
			JSON.BadRequestWithMessage(writer, "Amount doesn't match the tour's price")
			return
		}

		var user = auth.MustGetUser(request)
		purchase, created := store.CreatePurchase(content.NewPurchase{TourId: tour.TourId, UserId: user.UserId, Amount: tour.Price})
		if !created {
			JSON.Conflict(writer, "Tour already purchased")
			return
		}

		rest.Logger(request).WithFields(logrus.Fields{
			"payment": purchase.PurchaseId,
			"tour":    tour.TourId,
			"user":    user.UserId,
		}).Info("tour purchased")
		JSON.Created(writer, JSON.Envelope{"payment": purchase})
	}
}

func getPayments(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var user = auth.MustGetUser(request)
		JSON.Ok(writer, JSON.Envelope{"payments": store.PurchasesByUser(user.UserId)})
	}
}
