package annotations_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silktrader/statuary/pkg/annotations"
	"github.com/silktrader/statuary/pkg/content"
	"github.com/silktrader/statuary/pkg/content/contenttest"
	"github.com/silktrader/statuary/pkg/rest"
	"github.com/silktrader/statuary/pkg/rest/resttest"
)

type annotationsEnvelope struct {
	Annotations []content.Annotation `json:"annotations"`
}

type annotationEnvelope struct {
	Annotation content.Annotation `json:"annotation"`
}

func setup(t *testing.T) (*content.Store, contenttest.Fixtures, *rest.Engine) {
	store, _, f := contenttest.NewStore()
	engine := resttest.NewEngine(t)
	annotations.RegisterHandlers(engine, store)
	return store, f, engine
}

func region() map[string]float64 {
	return map[string]float64{"x": 0, "y": 0.5, "width": 0.25, "height": 0.25}
}

func TestAddAnnotation(t *testing.T) {
	store, f, engine := setup(t)

	recorder := resttest.Post(t, engine, "/annotations", map[string]interface{}{
		"statueId": f.Bull.StatueId,
		"userId":   f.Explorer.UserId,
		"type":     "text",
		"content":  "Arturo Di Modica installed it without a permit.",
		"region":   region(),
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	annotation := resttest.Decode[annotationEnvelope](t, recorder).Annotation
	assert.Equal(t, content.Author{Username: f.Explorer.Username, Avatar: f.Explorer.Avatar}, annotation.Author)
	assert.Equal(t, content.Region{X: 0, Y: 0.5, Width: 0.25, Height: 0.25}, annotation.Region)
	assert.Zero(t, annotation.Votes)
	assert.True(t, contenttest.Epoch.Equal(annotation.CreatedAt.Time()))

	bull, _ := store.Statue(f.Bull.StatueId)
	assert.Equal(t, 1, bull.AnnotationCount)
}

func TestAddAnnotationValidation(t *testing.T) {
	_, f, engine := setup(t)

	valid := func(changes map[string]interface{}) map[string]interface{} {
		body := map[string]interface{}{
			"statueId": f.Bull.StatueId,
			"userId":   f.Explorer.UserId,
			"type":     "text",
			"content":  "Bronze, 3200 kg.",
			"region":   region(),
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
		body     interface{}
		expected int
	}{
		{"malformed body", "{", http.StatusBadRequest},
		{"missing statue id", valid(map[string]interface{}{"statueId": nil}), http.StatusBadRequest},
		{"missing user id", valid(map[string]interface{}{"userId": nil}), http.StatusBadRequest},
		{"unknown type", valid(map[string]interface{}{"type": "hologram"}), http.StatusBadRequest},
		{"text without content", valid(map[string]interface{}{"content": nil}), http.StatusBadRequest},
		{"audio without url", valid(map[string]interface{}{"type": "audio"}), http.StatusBadRequest},
		{"missing region", valid(map[string]interface{}{"region": nil}), http.StatusBadRequest},
		{"partial region", valid(map[string]interface{}{"region": map[string]float64{"x": 0.1, "y": 0.1}}), http.StatusBadRequest},
		{"region overflowing", valid(map[string]interface{}{"region": map[string]float64{"x": 1.2, "y": 0, "width": 0.1, "height": 0.1}}), http.StatusBadRequest},
		{"empty region", valid(map[string]interface{}{"region": map[string]float64{"x": 0.1, "y": 0, "width": 0, "height": 0.1}}), http.StatusBadRequest},
		{"unknown statue", valid(map[string]interface{}{"statueId": "statue-missing"}), http.StatusNotFound},
		{"unknown user", valid(map[string]interface{}{"userId": "user-missing"}), http.StatusNotFound},
		{"audio with url", valid(map[string]interface{}{"type": "audio", "contentUrl": "/audio/bull.mp3"}), http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := resttest.Post(t, engine, "/annotations", tt.body)
			assert.Equal(t, tt.expected, recorder.Code, recorder.Body.String())
		})
	}
}

func TestGetAnnotations(t *testing.T) {
	_, f, engine := setup(t)

	list := func(query string) []content.Annotation {
		recorder := resttest.Get(t, engine, "/annotations"+query)
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
		return resttest.Decode[annotationsEnvelope](t, recorder).Annotations
	}

	assert.Len(t, list(""), 2)
	assert.Len(t, list("?statueId="+f.Liberty.StatueId), 2)
	assert.Empty(t, list("?statueId="+f.Thinker.StatueId))

	byGuide := list("?userId=" + f.Guide.UserId)
	require.Len(t, byGuide, 1)
	assert.Equal(t, f.CrownStory.AnnotationId, byGuide[0].AnnotationId)

	paged := list("?statueId=" + f.Liberty.StatueId + "&limit=1&offset=1")
	require.Len(t, paged, 1)
	assert.Equal(t, f.CrownStory.AnnotationId, paged[0].AnnotationId)

	assert.Empty(t, list("?limit=0"))
	assert.Empty(t, list("?offset=10"))

	assert.Equal(t, http.StatusBadRequest, resttest.Get(t, engine, "/annotations?limit=-1").Code)
	assert.Equal(t, http.StatusBadRequest, resttest.Get(t, engine, "/annotations?offset=-1").Code)
	assert.Equal(t, http.StatusBadRequest, resttest.Get(t, engine, "/annotations?statueId=a&userId=b").Code)
}

func TestGetAnnotation(t *testing.T) {
	_, f, engine := setup(t)

	recorder := resttest.Get(t, engine, "/annotations/"+f.TorchNote.AnnotationId)
	require.Equal(t, http.StatusOK, recorder.Code)
	annotation := resttest.Decode[annotationEnvelope](t, recorder).Annotation
	assert.Equal(t, f.TorchNote.AnnotationId, annotation.AnnotationId)
	assert.Equal(t, f.TorchNote.Content, annotation.Content)
	assert.Equal(t, f.TorchNote.Author, annotation.Author)

	assert.Equal(t, http.StatusNotFound, resttest.Get(t, engine, "/annotations/annotation-missing").Code)
}

func TestUpdateAnnotation(t *testing.T) {
	_, f, engine := setup(t)

	recorder := resttest.Do(t, engine, resttest.Request{
		Method: http.MethodPut,
		Path:   "/annotations/" + f.TorchNote.AnnotationId,
		Body:   map[string]interface{}{"content": "The torch was replaced in 1986.", "votes": 99},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	annotation := resttest.Decode[annotationEnvelope](t, recorder).Annotation
	assert.Equal(t, "The torch was replaced in 1986.", annotation.Content)
	assert.Equal(t, f.TorchNote.Region, annotation.Region)
	assert.Zero(t, annotation.Votes)

	badRegion := resttest.Do(t, engine, resttest.Request{
		Method: http.MethodPut,
		Path:   "/annotations/" + f.TorchNote.AnnotationId,
		Body:   map[string]interface{}{"region": map[string]float64{"x": 0.5}},
	})
	assert.Equal(t, http.StatusBadRequest, badRegion.Code)

	missing := resttest.Do(t, engine, resttest.Request{
		Method: http.MethodPut, Path: "/annotations/annotation-missing", Body: map[string]string{"content": "?"},
	})
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestDeleteAnnotation(t *testing.T) {
	store, f, engine := setup(t)

	deleteRequest := resttest.Request{Method: http.MethodDelete, Path: "/annotations/" + f.TorchNote.AnnotationId}
	assert.Equal(t, http.StatusNoContent, resttest.Do(t, engine, deleteRequest).Code)
	assert.Equal(t, http.StatusNotFound, resttest.Do(t, engine, deleteRequest).Code)

	liberty, _ := store.Statue(f.Liberty.StatueId)
	assert.Equal(t, 1, liberty.AnnotationCount)
}

func TestVoteAnnotation(t *testing.T) {
	_, f, engine := setup(t)

	vote := func(direction string) *content.Annotation {
		recorder := resttest.Post(t, engine, "/annotations/"+f.CrownStory.AnnotationId+"/votes", map[string]string{"direction": direction})
		if recorder.Code != http.StatusOK {
			return nil
		}
		annotation := resttest.Decode[annotationEnvelope](t, recorder).Annotation
		return &annotation
	}

	require.NotNil(t, vote("up"))
	require.NotNil(t, vote("down"))
	last := vote("down")
	require.NotNil(t, last)
	assert.Equal(t, -1, last.Votes)

	assert.Nil(t, vote("sideways"))

	missing := resttest.Post(t, engine, "/annotations/annotation-missing/votes", map[string]string{"direction": "up"})
	assert.Equal(t, http.StatusNotFound, missing.Code)
}
