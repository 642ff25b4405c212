package auth

import (
	"net/http"

	"github.com/silktrader/statuary/pkg/content"
	JSON "github.com/silktrader/statuary/pkg/json-utilities"
	"github.com/silktrader/statuary/pkg/rest"
)

// Store lists the content operations needed by the sign-in routes.
type Store interface {
	userFinder
	UserByFarcasterID(farcasterId string) (content.User, bool)
	SignIn(data content.NewUser) (content.User, bool)
}

func RegisterHandlers(engine *rest.Engine, store Store) {
	engine.Post("/auth", signIn(store))
	engine.Get("/auth", getByFarcasterId(store))
	engine.Get("/auth/me", getCurrentUser, Auth(store))
}

/*
signIn handles the POST "/auth" route. This is the only place where Farcaster ids are guaranteed unique:

  - a known Farcaster id refreshes the user's username and wallet, when provided
  - an unknown one registers a new user, with a placeholder username when none is given
*/
func signIn(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		data, err := JSON.DecodeValidate[SignInData](request)
		if err != nil {
			JSON.ValidationError(writer, err)
			return
		}

		user, created := store.SignIn(content.NewUser{
			FarcasterId:   data.FarcasterId,
			WalletAddress: data.WalletAddress,
			Username:      data.Username,
			Avatar:        data.Avatar,
		})
		if !created {
			rest.Logger(request).WithField("user", user.UserId).Debug("user signed in")
			JSON.Ok(writer, JSON.Envelope{"success": true, "user": user, "message": "User authenticated successfully"})
			return
		}
		rest.Logger(request).WithField("user", user.UserId).Info("user registered through sign-in")
		JSON.Created(writer, JSON.Envelope{"success": true, "user": user, "message": "User created successfully"})
	}
}

// getByFarcasterId handles the GET "/auth?farcasterId=" route.
func getByFarcasterId(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var farcasterId = request.URL.Query().Get("farcasterId")
		if farcasterId == "" {
			JSON.BadRequestWithMessage(writer, "Farcaster ID is required")
			return
		}
		if user, found := store.UserByFarcasterID(farcasterId); found {
			JSON.Ok(writer, JSON.Envelope{"user": user})
		} else {
			JSON.NotFound(writer, "User not found")
		}
	}
}

// getCurrentUser handles the authenticated GET "/auth/me" route.
func getCurrentUser(writer http.ResponseWriter, request *http.Request) {
	JSON.Ok(writer, JSON.Envelope{"user": MustGetUser(request)})
}
