package annotations

import (
	"net/http"

	"github.com/silktrader/statuary/pkg/content"
	JSON "github.com/silktrader/statuary/pkg/json-utilities"
	"github.com/silktrader/statuary/pkg/rest"
)

type Store interface {
	User(userId string) (content.User, bool)
	Statue(statueId string) (content.Statue, bool)
	Annotation(annotationId string) (content.Annotation, bool)
	Annotations(page content.Page) []content.Annotation
	AnnotationsByStatue(statueId string, page content.Page) []content.Annotation
	AnnotationsByUser(userId string, page content.Page) []content.Annotation
	CreateAnnotation(data content.NewAnnotation) content.Annotation
	UpdateAnnotation(annotationId string, update content.AnnotationUpdate) (content.Annotation, bool)
	DeleteAnnotation(annotationId string) bool
	VoteAnnotation(annotationId string, up bool) (content.Annotation, bool)
}

func RegisterHandlers(engine *rest.Engine, store Store) {
	engine.Get("/annotations", getAnnotations(store))
	engine.Get("/annotations/:id", getAnnotation(store))
	engine.Post("/annotations", addAnnotation(store))
	engine.Put("/annotations/:id", updateAnnotation(store))
	engine.Delete("/annotations/:id", deleteAnnotation(store))
	engine.Post("/annotations/:id/votes", voteAnnotation(store))
}

// getAnnotations pages through annotations, optionally restricted to a statue or to an author.
func getAnnotations(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		page, err := rest.GetPage(request)
		if err != nil {
			JSON.ValidationError(writer, err)
			return
		}

		var query = request.URL.Query()
		var statueId, userId = query.Get("statueId"), query.Get("userId")
		switch {
		case statueId != "" && userId != "":
			JSON.BadRequestWithMessage(writer, "Filter by either statueId or userId")
		case statueId != "":
			JSON.Ok(writer, JSON.Envelope{"annotations": store.AnnotationsByStatue(statueId, page)})
		case userId != "":
			JSON.Ok(writer, JSON.Envelope{"annotations": store.AnnotationsByUser(userId, page)})
		default:
			JSON.Ok(writer, JSON.Envelope{"annotations": store.Annotations(page)})
		}
	}
}

func getAnnotation(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		if annotation, found := store.Annotation(rest.GetParam(request, "id")); found {
			JSON.Ok(writer, JSON.Envelope{"annotation": annotation})
		} else {
			JSON.NotFound(writer, "Annotation not found")
		}
	}
}

func addAnnotation(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		data, err := JSON.DecodeValidate[AddAnnotationData](request)
		if err != nil {
			JSON.ValidationError(writer, err)
			return
		}

		if _, found := store.Statue(data.StatueId); !found {
			JSON.NotFound(writer, "Statue not found")
			return
		}
		user, found := store.User(data.UserId)
		if !found {
			JSON.NotFound(writer, "User not found")
			return
		}

		var annotation = store.CreateAnnotation(content.NewAnnotation{
			StatueId:   data.StatueId,
			UserId:     user.UserId,
			Type:       data.Type,
			Content:    data.Content,
			ContentURL: data.ContentURL,
			Region:     data.Region.toRegion(),
			Author:     content.Author{Username: user.Username, Avatar: user.Avatar},
		})
		rest.Logger(request).WithField("annotation", annotation.AnnotationId).Info("annotation created")
		JSON.Created(writer, JSON.Envelope{"annotation": annotation})
	}
}

func updateAnnotation(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		data, err := JSON.DecodeValidate[UpdateAnnotationData](request)
		if err != nil {
			JSON.ValidationError(writer, err)
			return
		}

		if annotation, found := store.UpdateAnnotation(rest.GetParam(request, "id"), data.toUpdate()); found {
			JSON.Ok(writer, JSON.Envelope{"annotation": annotation})
		} else {
			JSON.NotFound(writer, "Annotation not found")
		}
	}
}

func deleteAnnotation(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var annotationId = rest.GetParam(request, "id")
		if !store.DeleteAnnotation(annotationId) {
			JSON.NotFound(writer, "Annotation not found")
			return
		}
		rest.Logger(request).WithField("annotation", annotationId).Info("annotation deleted")
		JSON.NoContent(writer)
	}
}

func voteAnnotation(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		data, err := JSON.DecodeValidate[VoteData](request)
		if err != nil {
			JSON.ValidationError(writer, err)
			return
		}

		if annotation, found := store.VoteAnnotation(rest.GetParam(request, "id"), data.Direction == up); found {
			JSON.Ok(writer, JSON.Envelope{"annotation": annotation})
		} else {
			JSON.NotFound(writer, "Annotation not found")
		}
	}
}
