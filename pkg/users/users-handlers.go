package users

import (
	"net/http"

	"github.com/silktrader/statuary/pkg/content"
	JSON "github.com/silktrader/statuary/pkg/json-utilities"
	"github.com/silktrader/statuary/pkg/rest"
)

type Store interface {
	Users() []content.User
	User(userId string) (content.User, bool)
	UserByFarcasterID(farcasterId string) (content.User, bool)
	CreateUserUnique(data content.NewUser) (content.User, bool)
	UpdateUser(userId string, update content.UserUpdate) (content.User, bool)
}

func RegisterHandlers(engine *rest.Engine, store Store) {
	engine.Get("/users", getUsers(store))
	engine.Get("/users/:id", getUser(store))
	engine.Post("/users", addUser(store))
	engine.Put("/users/:id", updateUser(store))
}

// getUsers fetches all existing users, or the one matching the `farcasterId` query parameter.
func getUsers(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		if farcasterId := request.URL.Query().Get("farcasterId"); farcasterId != "" {
			if user, found := store.UserByFarcasterID(farcasterId); found {
				JSON.Ok(writer, JSON.Envelope{"user": user})
			} else {
				JSON.NotFound(writer, "User not found")
			}
			return
		}
		JSON.Ok(writer, JSON.Envelope{"users": store.Users()})
	}
}

func getUser(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		if user, found := store.User(rest.GetParam(request, "id")); found {
			JSON.Ok(writer, JSON.Envelope{"user": user})
		} else {
			JSON.NotFound(writer, "User not found")
		}
	}
}

func addUser(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {

		// parse and validate the user data
		data, err := JSON.DecodeValidate[AddUserData](request)
		if err != nil {
			JSON.ValidationError(writer, err)
			return
		}

		// Farcaster ids identify users across sign-ins, they can't be shared
		user, created := store.CreateUserUnique(content.NewUser{
			FarcasterId:   data.FarcasterId,
			WalletAddress: data.WalletAddress,
			Username:      data.Username,
			Avatar:        data.Avatar,
		})
		if !created {
			JSON.Conflict(writer, "User with this Farcaster ID already exists")
			return
		}
		rest.Logger(request).WithField("user", user.UserId).Info("user created")
		JSON.Created(writer, JSON.Envelope{"user": user})
	}
}

func updateUser(store Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		data, err := JSON.DecodeValidate[UpdateUserData](request)
		if err != nil {
			JSON.ValidationError(writer, err)
			return
		}

		user, found := store.UpdateUser(rest.GetParam(request, "id"), content.UserUpdate{
			Username:      data.Username,
			WalletAddress: data.WalletAddress,
			Avatar:        data.Avatar,
		})
		if !found {
			JSON.NotFound(writer, "User not found")
			return
		}
		JSON.Ok(writer, JSON.Envelope{"user": user})
	}
}
