package tours_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silktrader/statuary/pkg/content"
	"github.com/silktrader/statuary/pkg/content/contenttest"
	"github.com/silktrader/statuary/pkg/rest"
	"github.com/silktrader/statuary/pkg/rest/resttest"
	"github.com/silktrader/statuary/pkg/tours"
)

type tourEnvelope struct {
	Tour    content.PremiumTour `json:"tour"`
	Statues []content.Statue    `json:"statues"`
}

func setup(t *testing.T) (*content.Store, contenttest.Fixtures, *rest.Engine) {
	store, _, f := contenttest.NewStore()
	engine := resttest.NewEngine(t)
	tours.RegisterHandlers(engine, store)
	return store, f, engine
}

func TestGetTours(t *testing.T) {
	_, f, engine := setup(t)

	recorder := resttest.Get(t, engine, "/tours")
	require.Equal(t, http.StatusOK, recorder.Code)

	list := resttest.Decode[struct {
		Tours []content.PremiumTour `json:"tours"`
	}](t, recorder).Tours
	require.Len(t, list, 2)
	assert.Equal(t, f.Revolutionary.TourId, list[0].TourId)
	assert.Equal(t, f.Philosophy.TourId, list[1].TourId)
}

func TestGetTour(t *testing.T) {
	_, f, engine := setup(t)

	recorder := resttest.Get(t, engine, "/tours/"+f.Revolutionary.TourId)
	require.Equal(t, http.StatusOK, recorder.Code)

	body := resttest.Decode[tourEnvelope](t, recorder)
	assert.Equal(t, f.Revolutionary, body.Tour)
	require.Len(t, body.Statues, 2)
	assert.Equal(t, f.Liberty.StatueId, body.Statues[0].StatueId)
	assert.Equal(t, f.Bull.StatueId, body.Statues[1].StatueId)

	assert.Equal(t, http.StatusNotFound, resttest.Get(t, engine, "/tours/tour-missing").Code)
}

func TestAddTour(t *testing.T) {
	_, f, engine := setup(t)

	valid := func(changes map[string]interface{}) map[string]interface{} {
		body := map[string]interface{}{
			"title":     "Bronze Giants",
			"price":     0,
			"duration":  "30 min",
			"statueIds": []string{f.Bull.StatueId, f.Thinker.StatueId},
			"author":    map[string]interface{}{"name": "Bronze Club", "verified": false},
		}
		for k, v := range changes {
			if v == nil {
				delete(body, k)
			} else {
				body[k] = v
			}
		}
		return body
	}

	tests := []struct {
		name     string
		body     map[string]interface{}
		expected int
	}{
		{"free tour", valid(nil), http.StatusCreated},
		{"missing title", valid(map[string]interface{}{"title": nil}), http.StatusBadRequest},
		{"missing price", valid(map[string]interface{}{"price": nil}), http.StatusBadRequest},
		{"negative price", valid(map[string]interface{}{"price": -1}), http.StatusBadRequest},
		{"no statues", valid(map[string]interface{}{"statueIds": []string{}}), http.StatusBadRequest},
		{"blank statue id", valid(map[string]interface{}{"statueIds": []string{""}}), http.StatusBadRequest},
		{"missing author", valid(map[string]interface{}{"author": nil}), http.StatusBadRequest},
		{"unverified author", valid(map[string]interface{}{"author": map[string]string{"name": "Anon"}}), http.StatusBadRequest},
		{"rating above five", valid(map[string]interface{}{"rating": 5.5}), http.StatusBadRequest},
		{"unknown statue", valid(map[string]interface{}{"statueIds": []string{f.Bull.StatueId, "statue-missing"}}), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := resttest.Post(t, engine, "/tours", tt.body)
			require.Equal(t, tt.expected, recorder.Code, recorder.Body.String())
			if tt.expected == http.StatusCreated {
				tour := resttest.Decode[tourEnvelope](t, recorder).Tour
				assert.Equal(t, []string{f.Bull.StatueId, f.Thinker.StatueId}, tour.StatueIds)
				assert.Zero(t, tour.Price)
				assert.False(t, tour.Author.Verified)
			}
		})
	}
}

func TestTourAccess(t *testing.T) {
	store, f, engine := setup(t)
	store.CreatePurchase(content.NewPurchase{TourId: f.Philosophy.TourId, UserId: f.Guide.UserId, Amount: f.Philosophy.Price})

	access := func(tourId, bearer string) (int, bool) {
		recorder := resttest.Do(t, engine, resttest.Request{Method: http.MethodGet, Path: "/tours/" + tourId + "/access", Bearer: bearer})
		if recorder.Code != http.StatusOK {
			return recorder.Code, false
		}
		return recorder.Code, resttest.Decode[struct {
			Purchased bool `json:"purchased"`
		}](t, recorder).Purchased
	}

	code, purchased := access(f.Philosophy.TourId, f.Guide.UserId)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, purchased)

	code, purchased = access(f.Revolutionary.TourId, f.Guide.UserId)
	assert.Equal(t, http.StatusOK, code)
	assert.False(t, purchased)

	code, _ = access(f.Philosophy.TourId, "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = access("tour-missing", f.Guide.UserId)
	assert.Equal(t, http.StatusNotFound, code)
}
