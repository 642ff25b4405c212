package comments

import (
	"errors"
	"net/http"

	"github.com/silktrader/statuary/pkg/content"
	JSON "github.com/silktrader/statuary/pkg/json-utilities"
	"github.com/silktrader/statuary/pkg/rest"
	"github.com/sirupsen/logrus"
)

type Store interface {
	User(userId string) (content.User, bool)
	Statue(statueId string) (content.Statue, bool)
	CommentThread(commentId string) (content.Comment, bool)
	Comments(page content.Page) []content.Comment
	CommentsByStatue(statueId string, page content.Page) []content.Comment
	CommentsByUser(userId string, page content.Page) []content.Comment
	Replies(parentId string, page content.Page) []content.Comment
	CreateReply(data content.NewComment) (content.Comment, error)
	UpdateComment(commentId string, update content.CommentUpdate) (content.Comment, bool)
	DeleteComment(commentId string) int
	VoteComment(commentId string, up bool) (content.Comment, bool)
}

func RegisterHandlers(engine *rest.Engine, store Store) {
	engine.Get("/comments", getComments(store))
	engine.Get("/comments/:id", getThread(store))
	engine.Post("/comments", addComment(store))
	engine.Put("/comments/:id", updateComment(store))
	engine.Delete("/comments/:id", deleteComment(store))
	engine.Post("/comments/:id/votes", voteComment(store))
}

// getComments pages through flat comments, filtered by at most one of `statueId`, `userId` and `parentId`.
func getComments(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		page, err := rest.GetPage(request)
		if err != nil {
			JSON.ValidationError(writer, err)
			return
		}

		var query = request.URL.Query()
		var statueId, userId, parentId = query.Get("statueId"), query.Get("userId"), query.Get("parentId")

		var filters = 0
		for _, f := range []string{statueId, userId, parentId} {
			if f != "" {
				filters++
			}
		}
		if filters > 1 {
			JSON.BadRequestWithMessage(writer, "Filter by only one of statueId, userId or parentId")
			return
		}

		var comments []content.Comment
		switch {
		case statueId != "":
			comments = store.CommentsByStatue(statueId, page)
		case userId != "":
			comments = store.CommentsByUser(userId, page)
		case parentId != "":
			comments = store.Replies(parentId, page)
		default:
			comments = store.Comments(page)
		}
		JSON.Ok(writer, JSON.Envelope{"comments": comments})
	}
}

// getThread returns the comment along with its nested replies.
func getThread(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		if comment, found := store.CommentThread(rest.GetParam(request, "id")); found {
			JSON.Ok(writer, JSON.Envelope{"comment": comment})
		} else {
			JSON.NotFound(writer, "Comment not found")
		}
	}
}

func addComment(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		data, err := JSON.DecodeValidate[AddCommentData](request)
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

		// the parent is checked within the same critical section as the insert
		comment, err := store.CreateReply(content.NewComment{
			StatueId: data.StatueId,
			UserId:   user.UserId,
			ParentId: data.ParentId,
			Content:  data.Content,
			Author:   content.Author{Username: user.Username, Avatar: user.Avatar},
		})
		switch {
		case errors.Is(err, content.ErrParentNotFound):
			JSON.NotFound(writer, "Parent comment not found")
			return
		case errors.Is(err, content.ErrParentOnOtherStatue):
			JSON.BadRequestWithMessage(writer, "Parent comment belongs to another statue")
			return
		case err != nil:
			rest.Logger(request).WithError(err).Error("error while creating comment")
			JSON.InternalServerError(writer, err)
			return
		}
		rest.Logger(request).WithField("comment", comment.CommentId).Info("comment created")
		JSON.Created(writer, JSON.Envelope{"comment": comment})
	}
}

func updateComment(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		data, err := JSON.DecodeValidate[UpdateCommentData](request)
		if err != nil {
			JSON.ValidationError(writer, err)
			return
		}

		if comment, found := store.UpdateComment(rest.GetParam(request, "id"), content.CommentUpdate{Content: data.Content}); found {
			JSON.Ok(writer, JSON.Envelope{"comment": comment})
		} else {
			JSON.NotFound(writer, "Comment not found")
		}
	}
}

// deleteComment removes the comment and its replies.
func deleteComment(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var commentId = rest.GetParam(request, "id")
		var removed = store.DeleteComment(commentId)
		if removed == 0 {
			JSON.NotFound(writer, "Comment not found")
			return
		}
		rest.Logger(request).WithFields(logrus.Fields{"comment": commentId, "removed": removed}).Info("comment deleted")
		JSON.NoContent(writer)
	}
}

func voteComment(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		data, err := JSON.DecodeValidate[VoteData](request)
		if err != nil {
			JSON.ValidationError(writer, err)
			return
		}

		if comment, found := store.VoteComment(rest.GetParam(request, "id"), data.Direction == "up"); found {
			JSON.Ok(writer, JSON.Envelope{"comment": comment})
		} else {
			JSON.NotFound(writer, "Comment not found")
		}
	}
}
