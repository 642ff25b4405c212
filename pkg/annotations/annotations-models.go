package annotations

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/silktrader/statuary/pkg/content"
)

var contentRules = []validation.Rule{validation.Length(0, 5000)}
var contentURLRules = []validation.Rule{validation.Length(0, 2048), is.RequestURI}

func typeRules() []validation.Rule {
	var types = make([]interface{}, len(content.AnnotationTypes))
	for i, t := range content.AnnotationTypes {
		types[i] = t
	}
	return []validation.Rule{validation.Required, validation.In(types...).Error("must be text, audio, video or image")}
}

// RegionData holds fractions of the statue's bounding box; pointers tell a zero offset apart from a missing one.
type RegionData struct {
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

func (data RegionData) Validate() error {
	return validation.ValidateStruct(&data,
		validation.Field(&data.X, validation.NotNil, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&data.Y, validation.NotNil, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&data.Width, validation.NotNil, validation.Min(0.0).Exclusive(), validation.Max(1.0)),
		validation.Field(&data.Height, validation.NotNil, validation.Min(0.0).Exclusive(), validation.Max(1.0)),
	)
}

func (data RegionData) toRegion() content.Region {
	return content.Region{X: *data.X, Y: *data.Y, Width: *data.Width, Height: *data.Height}
}

type AddAnnotationData struct {
	StatueId   string                 `json:"statueId"`
	UserId     string                 `json:"userId"`
	Type       content.AnnotationType `json:"type"`
	Content    string                 `json:"content"`
	ContentURL string                 `json:"contentUrl"`
	Region     *RegionData            `json:"region"`
}

// Validate demands text for text annotations and a media location for every other kind.
func (data AddAnnotationData) Validate() error {
	var media = data.Type != "" && data.Type != content.Text
	return validation.ValidateStruct(&data,
		validation.Field(&data.StatueId, validation.Required),
		validation.Field(&data.UserId, validation.Required),
		validation.Field(&data.Type, typeRules()...),
		validation.Field(&data.Content, append(contentRules, validation.When(data.Type == content.Text, validation.Required))...),
		validation.Field(&data.ContentURL, append(contentURLRules, validation.When(media, validation.Required))...),
		validation.Field(&data.Region, validation.Required),
	)
}

type UpdateAnnotationData struct {
	Content    *string     `json:"content"`
	ContentURL *string     `json:"contentUrl"`
	Region     *RegionData `json:"region"`
}

func (data UpdateAnnotationData) Validate() error {
	return validation.ValidateStruct(&data,
		validation.Field(&data.Content, contentRules...),
		validation.Field(&data.ContentURL, contentURLRules...),
		validation.Field(&data.Region),
	)
}

func (data UpdateAnnotationData) toUpdate() content.AnnotationUpdate {
	var update = content.AnnotationUpdate{Content: data.Content, ContentURL: data.ContentURL}
	if data.Region != nil {
		var region = data.Region.toRegion()
		update.Region = &region
	}
	return update
}

const (
	up   = "up"
	down = "down"
)

type VoteData struct {
	Direction string `json:"direction"`
}

func (data VoteData) Validate() error {
	return validation.ValidateStruct(&data,
		validation.Field(&data.Direction, validation.Required, validation.In(up, down)),
	)
}
