package statues

import (
	"net/http"

	"github.com/silktrader/statuary/pkg/content"
	JSON "github.com/silktrader/statuary/pkg/json-utilities"
	"github.com/silktrader/statuary/pkg/rest"
)

type Store interface {
	Statues() []content.Statue
	Statue(statueId string) (content.Statue, bool)
	NearbyStatues(lat, lon, radiusKm float64) []content.NearbyStatue
	CreateStatue(data content.NewStatue) content.Statue
	UpdateStatue(statueId string, update content.StatueUpdate) (content.Statue, bool)
}

func RegisterHandlers(engine *rest.Engine, store Store) {
	engine.Get("/statues", getStatues(store))
	engine.Get("/statues/:id", getStatue(store))
	engine.Post("/statues", addStatue(store))
	engine.Put("/statues/:id", updateStatue(store))
}

// getStatues lists every statue, unless `lat` and `lon` are given, in which case only those within `radius`
// kilometres are returned, closest first.
func getStatues(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		query, nearby, err := parseNearbyQuery(request.URL.Query())
		if err != nil {
			JSON.ValidationError(writer, err)
			return
		}
		if nearby {
			JSON.Ok(writer, JSON.Envelope{"statues": store.NearbyStatues(query.lat, query.lon, query.radius)})
			return
		}
		JSON.Ok(writer, JSON.Envelope{"statues": store.Statues()})
	}
}

func getStatue(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		if statue, found := store.Statue(rest.GetParam(request, "id")); found {
			JSON.Ok(writer, JSON.Envelope{"statue": statue})
		} else {
			JSON.NotFound(writer, "Statue not found")
		}
	}
}

func addStatue(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		data, err := JSON.DecodeValidate[AddStatueData](request)
		if err != nil {
			JSON.ValidationError(writer, err)
			return
		}

		var statue = store.CreateStatue(content.NewStatue{
			Name:         data.Name,
			Location:     data.Location.toLocation(),
			Description:  data.Description,
			ARModelURL:   data.ARModelURL,
			ThumbnailURL: data.ThumbnailURL,
		})
		rest.Logger(request).WithField("statue", statue.StatueId).Info("statue created")
		JSON.Created(writer, JSON.Envelope{"statue": statue})
	}
}

func updateStatue(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		data, err := JSON.DecodeValidate[UpdateStatueData](request)
		if err != nil {
			JSON.ValidationError(writer, err)
			return
		}

		if statue, found := store.UpdateStatue(rest.GetParam(request, "id"), data.toUpdate()); found {
			JSON.Ok(writer, JSON.Envelope{"statue": statue})
		} else {
			JSON.NotFound(writer, "Statue not found")
		}
	}
}
