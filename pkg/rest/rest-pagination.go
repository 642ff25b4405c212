package rest

import (
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/silktrader/statuary/pkg/content"
)

// DefaultLimit caps listings whose requests don't specify a `limit`.
const DefaultLimit = 50

// GetPage reads the `limit` and `offset` query parameters. Missing values default to DefaultLimit and zero,
// while negative or malformed ones are reported as validation errors.
func GetPage(request *http.Request) (content.Page, error) {
	var query = request.URL.Query()
	var page = content.Page{Limit: DefaultLimit}
	var errs = validation.Errors{}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			errs["limit"] = validation.NewError("validation_not_integer", "must be an integer")
		} else {
			page.Limit = limit
			errs["limit"] = validation.Validate(limit, validation.Min(0))
		}
	}
	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			errs["offset"] = validation.NewError("validation_not_integer", "must be an integer")
		} else {
			page.Offset = offset
			errs["offset"] = validation.Validate(offset, validation.Min(0))
		}
	}

	return page, errs.Filter()
}
