package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/silktrader/statuary/pkg/content"
	JSON "github.com/silktrader/statuary/pkg/json-utilities"
)

/* There are two solutions to avoiding cyclic imports between `auth` and handler packages:
1. merge them
2. adopt and maintain an interface as a dependency in the auth package
*/

type contextKey struct{}

type userFinder interface {
	User(userId string) (content.User, bool)
}

// Auth performs ridiculously simple checks on routes, ensuring that requests carry the id of an existing user as
// their bearer token. The id is handed out by the sign-in route.
func Auth(users userFinder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, request *http.Request) {

			var id, err = parseBearer(request)
			if err != nil {
				JSON.Unauthorised(w)
				return
			}

			// verify the user exists
			user, found := users.User(id)
			if !found {
				JSON.Unauthorised(w)
				return
			}

			// create a new context, stemming from the original one, adding the user for future reference
			next.ServeHTTP(w, request.WithContext(context.WithValue(request.Context(), contextKey{}, user)))
		})
	}
}

// parseBearer extracts the user id from the authorization header.
func parseBearer(request *http.Request) (string, error) {
	var header = request.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		if userId := strings.TrimSpace(header[7:]); userId != "" {
			return userId, nil
		}
	}
	return "", errors.New("bad authorization header")
}

// GetUser returns the authenticated user; false signals a route missing the Auth middleware.
func GetUser(request *http.Request) (content.User, bool) {
	user, ok := request.Context().Value(contextKey{}).(content.User)
	return user, ok
}

// MustGetUser is GetUser for routes known to be guarded by Auth.
func MustGetUser(request *http.Request) content.User {
	user, ok := GetUser(request)
	if !ok {
		panic("auth: missing Auth middleware")
	}
	return user
}
