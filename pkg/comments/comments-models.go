package comments

import validation "github.com/go-ozzo/ozzo-validation/v4"

var contentRules = []validation.Rule{validation.Length(1, 2000)}

type AddCommentData struct {
	StatueId string `json:"statueId"`
	UserId   string `json:"userId"`
	ParentId string `json:"parentId"`
	Content  string `json:"content"`
}

func (data AddCommentData) Validate() error {
	return validation.ValidateStruct(&data,
		validation.Field(&data.StatueId, validation.Required),
		validation.Field(&data.UserId, validation.Required),
		validation.Field(&data.Content, append([]validation.Rule{validation.Required}, contentRules...)...),
	)
}

type UpdateCommentData struct {
	Content *string `json:"content"`
}

func (data UpdateCommentData) Validate() error {
	return validation.ValidateStruct(&data,
		validation.Field(&data.Content, append([]validation.Rule{validation.NilOrNotEmpty}, contentRules...)...),
	)
}

type VoteData struct {
	Direction string `json:"direction"`
}

func (data VoteData) Validate() error {
	return validation.ValidateStruct(&data,
		validation.Field(&data.Direction, validation.Required, validation.In("up", "down")),
	)
}
