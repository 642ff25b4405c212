package users

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var usernameRules = []validation.Rule{validation.Required, validation.Length(2, 64)}
var avatarRules = []validation.Rule{validation.Length(0, 2048)}

// WalletAddressRules accept empty values or EVM addresses, as used on Base.
var WalletAddressRules = []validation.Rule{
	validation.Match(regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)).Error("must be a 0x-prefixed 20 bytes hex address"),
}

type AddUserData struct {
	FarcasterId   string `json:"farcasterId"`
	WalletAddress string `json:"walletAddress"`
	Username      string `json:"username"`
	Avatar        string `json:"avatar"`
}

func (data AddUserData) Validate() error {
	return validation.ValidateStruct(&data,
		validation.Field(&data.Username, usernameRules...),
		validation.Field(&data.FarcasterId, validation.Length(0, 64)),
		validation.Field(&data.WalletAddress, WalletAddressRules...),
		validation.Field(&data.Avatar, avatarRules...),
	)
}

// UpdateUserData only carries the fields to change.
type UpdateUserData struct {
	Username      *string `json:"username"`
	WalletAddress *string `json:"walletAddress"`
	Avatar        *string `json:"avatar"`
}

func (data UpdateUserData) Validate() error {
	return validation.ValidateStruct(&data,
		validation.Field(&data.Username, validation.NilOrNotEmpty, validation.Length(2, 64)),
		validation.Field(&data.WalletAddress, WalletAddressRules...),
		validation.Field(&data.Avatar, avatarRules...),
	)
}
