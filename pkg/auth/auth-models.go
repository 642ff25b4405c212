package auth

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/silktrader/statuary/pkg/users"
)

type SignInData struct {
	FarcasterId   string `json:"farcasterId"`
	Username      string `json:"username"`
	WalletAddress string `json:"walletAddress"`
	Avatar        string `json:"avatar"`
}

func (data SignInData) Validate() error {
	return validation.ValidateStruct(&data,
		validation.Field(&data.FarcasterId, validation.Required, validation.Length(1, 64)),
		validation.Field(&data.Username, validation.Length(0, 64)),
		validation.Field(&data.WalletAddress, users.WalletAddressRules...),
	)
}
