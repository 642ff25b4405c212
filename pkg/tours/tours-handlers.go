package tours

import (
	"net/http"

	"github.com/silktrader/statuary/pkg/auth"
	"github.com/silktrader/statuary/pkg/content"
	JSON "github.com/silktrader/statuary/pkg/json-utilities"
	"github.com/silktrader/statuary/pkg/rest"
)

type Store interface {
	User(userId string) (content.User, bool)
	Statue(statueId string) (content.Statue, bool)
	Tours() []content.PremiumTour
	Tour(tourId string) (content.PremiumTour, bool)
	CreateTour(data content.NewTour) content.PremiumTour
	HasPurchased(userId, tourId string) bool
}

func RegisterHandlers(engine *rest.Engine, store Store) {
	engine.Get("/tours", getTours(store))
	engine.Get("/tours/:id", getTour(store))
	engine.Post("/tours", addTour(store))
	engine.Get("/tours/:id/access", getAccess(store), auth.Auth(store))
}

func getTours(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		JSON.Ok(writer, JSON.Envelope{"tours": store.Tours()})
	}
}

// getTour returns the tour along with the statues it visits, in the tour's order. Statues removed since the tour
// was created are skipped.
func getTour(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		tour, found := store.Tour(rest.GetParam(request, "id"))
		if !found {
			JSON.NotFound(writer, "Tour not found")
			return
		}

		var statues = make([]content.Statue, 0, len(tour.StatueIds))
		for _, statueId := range tour.StatueIds {
			if statue, found := store.Statue(statueId); found {
				statues = append(statues, statue)
			}
		}
		JSON.Ok(writer, JSON.Envelope{"tour": tour, "statues": statues})
	}
}

func addTour(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		data, err := JSON.DecodeValidate[AddTourData](request)
		if err != nil {
			JSON.ValidationError(writer, err)
			return
		}

		for _, statueId := range data.StatueIds {
			if _, found := store.Statue(statueId); !found {
				JSON.NotFound(writer, "Statue not found: "+statueId)
				return
			}
		}

		var tour = store.CreateTour(data.toNewTour())
		rest.Logger(request).WithField("tour", tour.TourId).Info("tour created")
		JSON.Created(writer, JSON.Envelope{"tour": tour})
	}
}

// getAccess tells the authenticated user whether they own the tour.
func getAccess(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var tourId = rest.GetParam(request, "id")
		if _, found := store.Tour(tourId); !found {
			JSON.NotFound(writer, "Tour not found")
			return
		}
		var user = auth.MustGetUser(request)
		JSON.Ok(writer, JSON.Envelope{"purchased": store.HasPurchased(user.UserId, tourId)})
	}
}
