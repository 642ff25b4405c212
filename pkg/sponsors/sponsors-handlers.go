package sponsors

import (
	"net/http"

	"github.com/silktrader/statuary/pkg/clock"
	"github.com/silktrader/statuary/pkg/content"
	JSON "github.com/silktrader/statuary/pkg/json-utilities"
	"github.com/silktrader/statuary/pkg/rest"
)

type Store interface {
	Statue(statueId string) (content.Statue, bool)
	Sponsors() []content.SponsorExhibit
	Sponsor(sponsorId string) (content.SponsorExhibit, bool)
	SponsorsByStatue(statueId string) []content.SponsorExhibit
	CreateSponsor(data content.NewSponsor) content.SponsorExhibit
}

// RegisterHandlers mounts the sponsor routes; the clock decides which campaigns are running.
func RegisterHandlers(engine *rest.Engine, store Store, clock clock.Clock) {
	engine.Get("/sponsors", getSponsors(store, clock))
	engine.Get("/sponsors/:id", getSponsor(store))
	engine.Post("/sponsors", addSponsor(store))
}

// getSponsors lists exhibits, optionally for a single statue; `active=true` drops campaigns not running now.
func getSponsors(store Store, clock clock.Clock) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var query = request.URL.Query()

		var sponsors []content.SponsorExhibit
		if statueId := query.Get("statueId"); statueId != "" {
			sponsors = store.SponsorsByStatue(statueId)
		} else {
			sponsors = store.Sponsors()
		}

		switch query.Get("active") {
		case "", "false":
		case "true":
			var now = clock.Now()
			var active = make([]content.SponsorExhibit, 0, len(sponsors))
			for _, sponsor := range sponsors {
				if sponsor.ActiveAt(now) {
					active = append(active, sponsor)
				}
			}
			sponsors = active
		default:
			JSON.BadRequestWithMessage(writer, "active must be true or false")
			return
		}

		JSON.Ok(writer, JSON.Envelope{"sponsors": sponsors})
	}
}

func getSponsor(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		if sponsor, found := store.Sponsor(rest.GetParam(request, "id")); found {
			JSON.Ok(writer, JSON.Envelope{"sponsor": sponsor})
		} else {
			JSON.NotFound(writer, "Sponsor not found")
		}
	}
}

func addSponsor(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		data, err := JSON.DecodeValidate[AddSponsorData](request)
		if err != nil {
			JSON.ValidationError(writer, err)
			return
		}

		if _, found := store.Statue(data.StatueId); !found {
			JSON.NotFound(writer, "Statue not found")
			return
		}

		var sponsor = store.CreateSponsor(content.NewSponsor{
			StatueId:     data.StatueId,
			BrandName:    data.BrandName,
			CampaignURL:  data.CampaignURL,
			ARContentURL: data.ARContentURL,
			StartDate:    data.StartDate,
			EndDate:      data.EndDate,
		})
		rest.Logger(request).WithField("sponsor", sponsor.SponsorId).Info("sponsor exhibit created")
		JSON.Created(writer, JSON.Envelope{"sponsor": sponsor})
	}
}
