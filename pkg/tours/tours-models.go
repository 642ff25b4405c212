package tours

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/silktrader/statuary/pkg/content"
)

type TourAuthorData struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Verified *bool  `json:"verified"`
}

func (data TourAuthorData) Validate() error {
	return validation.ValidateStruct(&data,
		validation.Field(&data.Name, validation.Required, validation.Length(1, 128)),
		validation.Field(&data.Avatar, validation.Length(0, 2048)),
		validation.Field(&data.Verified, validation.NotNil),
	)
}

// AddTourData describes a premium tour; free tours have a zero price, hence the pointer.
type AddTourData struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Price        *float64        `json:"price"`
	Duration     string          `json:"duration"`
	ThumbnailURL string          `json:"thumbnailUrl"`
	StatueIds    []string        `json:"statueIds"`
	Rating       float64         `json:"rating"`
	ReviewCount  int             `json:"reviewCount"`
	Author       *TourAuthorData `json:"author"`
}

func (data AddTourData) Validate() error {
	return validation.ValidateStruct(&data,
		validation.Field(&data.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&data.Description, validation.Length(0, 5000)),
		validation.Field(&data.Price, validation.NotNil, validation.Min(0.0)),
		validation.Field(&data.Duration, validation.Length(0, 64)),
		validation.Field(&data.ThumbnailURL, validation.Length(0, 2048), is.RequestURI),
		validation.Field(&data.StatueIds, validation.Required, validation.Each(validation.Required)),
		validation.Field(&data.Rating, validation.Min(0.0), validation.Max(5.0)),
		validation.Field(&data.ReviewCount, validation.Min(0)),
		validation.Field(&data.Author, validation.Required),
	)
}

func (data AddTourData) toNewTour() content.NewTour {
	return content.NewTour{
		Title:        data.Title,
		Description:  data.Description,
		Price:        *data.Price,
		Duration:     data.Duration,
		ThumbnailURL: data.ThumbnailURL,
		StatueIds:    data.StatueIds,
		Rating:       data.Rating,
		ReviewCount:  data.ReviewCount,
		Author: content.TourAuthor{
			Name:     data.Author.Name,
			Avatar:   data.Author.Avatar,
			Verified: *data.Author.Verified,
		},
	}
}
