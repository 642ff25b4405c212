package sponsors

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/silktrader/statuary/pkg/ntime"
)

var errMissingDate = errors.New("cannot be blank")

func requiredDate(value interface{}) error {
	if date, ok := value.(ntime.NTime); !ok || !date.Valid() {
		return errMissingDate
	}
	return nil
}

type AddSponsorData struct {
	StatueId     string      `json:"statueId"`
	BrandName    string      `json:"brandName"`
	CampaignURL  string      `json:"campaignUrl"`
	ARContentURL string      `json:"arContentUrl"`
	StartDate    ntime.NTime `json:"startDate"`
	EndDate      ntime.NTime `json:"endDate"`
}

// Validate requires campaigns to last some time: the end date must follow the start date.
func (data AddSponsorData) Validate() error {
	return validation.ValidateStruct(&data,
		validation.Field(&data.StatueId, validation.Required),
		validation.Field(&data.BrandName, validation.Required, validation.Length(1, 128)),
		validation.Field(&data.CampaignURL, validation.Required, validation.Length(1, 2048), is.URL),
		validation.Field(&data.ARContentURL, validation.Length(0, 2048), is.RequestURI),
		validation.Field(&data.StartDate, validation.By(requiredDate)),
		validation.Field(&data.EndDate, validation.By(requiredDate), validation.By(func(interface{}) error {
			if data.StartDate.Valid() && !data.EndDate.After(data.StartDate) {
				return errors.New("must be after the start date")
			}
			return nil
		})),
	)
}
