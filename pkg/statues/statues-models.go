package statues

import (
	"net/url"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/silktrader/statuary/pkg/content"
)

// defaultRadiusKm applies to nearby searches lacking an explicit radius.
const defaultRadiusKm = 10.0

var latitudeRules = []validation.Rule{validation.Min(-90.0), validation.Max(90.0)}
var longitudeRules = []validation.Rule{validation.Min(-180.0), validation.Max(180.0)}

// assets may be served by this API (relative paths) or elsewhere (absolute URLs)
var assetRules = []validation.Rule{validation.Length(0, 2048), is.RequestURI}

// LocationData uses pointers so that the equator and the prime meridian aren't mistaken for missing values.
type LocationData struct {
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
	Address string   `json:"address"`
}

func (data LocationData) Validate() error {
	return validation.ValidateStruct(&data,
		validation.Field(&data.Lat, append([]validation.Rule{validation.NotNil}, latitudeRules...)...),
		validation.Field(&data.Lon, append([]validation.Rule{validation.NotNil}, longitudeRules...)...),
		validation.Field(&data.Address, validation.Length(0, 256)),
	)
}

func (data LocationData) toLocation() content.Location {
	return content.Location{Lat: *data.Lat, Lon: *data.Lon, Address: data.Address}
}

type AddStatueData struct {
	Name         string        `json:"name"`
	Location     *LocationData `json:"location"`
	Description  string        `json:"description"`
	ARModelURL   string        `json:"arModelUrl"`
	ThumbnailURL string        `json:"thumbnailUrl"`
}

func (data AddStatueData) Validate() error {
	return validation.ValidateStruct(&data,
		validation.Field(&data.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&data.Location, validation.Required),
		validation.Field(&data.Description, validation.Length(0, 5000)),
		validation.Field(&data.ARModelURL, assetRules...),
		validation.Field(&data.ThumbnailURL, assetRules...),
	)
}

type UpdateStatueData struct {
	Name         *string       `json:"name"`
	Location     *LocationData `json:"location"`
	Description  *string       `json:"description"`
	ARModelURL   *string       `json:"arModelUrl"`
	ThumbnailURL *string       `json:"thumbnailUrl"`
}

func (data UpdateStatueData) Validate() error {
	return validation.ValidateStruct(&data,
		validation.Field(&data.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&data.Location),
		validation.Field(&data.Description, validation.Length(0, 5000)),
		validation.Field(&data.ARModelURL, assetRules...),
		validation.Field(&data.ThumbnailURL, assetRules...),
	)
}

func (data UpdateStatueData) toUpdate() content.StatueUpdate {
	var update = content.StatueUpdate{
		Name:         data.Name,
		Description:  data.Description,
		ARModelURL:   data.ARModelURL,
		ThumbnailURL: data.ThumbnailURL,
	}
	if data.Location != nil {
		var location = data.Location.toLocation()
		update.Location = &location
	}
	return update
}

type nearbyQuery struct {
	lat, lon, radius float64
}

/*
parseNearbyQuery reads the `lat`, `lon` and `radius` query parameters. It reports false, without errors, when
neither coordinate is present, which means no radius search was requested.
*/
func parseNearbyQuery(params url.Values) (query nearbyQuery, requested bool, err error) {
	var lat, lon, radius = params.Get("lat"), params.Get("lon"), params.Get("radius")
	if lat == "" && lon == "" {
		return query, false, nil
	}

	query.radius = defaultRadiusKm
	var errs = validation.Errors{}
	if query.lat, err = strconv.ParseFloat(lat, 64); err != nil {
		errs["lat"] = validation.NewError("validation_not_number", "must be a number")
	}
	if query.lon, err = strconv.ParseFloat(lon, 64); err != nil {
		errs["lon"] = validation.NewError("validation_not_number", "must be a number")
	}
	if radius != "" {
		if query.radius, err = strconv.ParseFloat(radius, 64); err != nil {
			errs["radius"] = validation.NewError("validation_not_number", "must be a number")
		}
	}
	if err = errs.Filter(); err != nil {
		return query, true, err
	}

	return query, true, validation.Errors{
		"lat":    validation.Validate(query.lat, latitudeRules...),
		"lon":    validation.Validate(query.lon, longitudeRules...),
		"radius": validation.Validate(query.radius, validation.Min(0.0), validation.Max(20038.0)),
	}.Filter()
}
