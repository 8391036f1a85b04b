package model

import "talentlink/shared/model"

const (
	TableName  = "providers"
	EntityName = "provider"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldName        = "name"
	FieldTitle       = "title"
	FieldCategory    = "category"
	FieldBio         = "bio"
	FieldAvatarURL   = "avatar_url"
	FieldRating      = "rating"
	FieldReviewCount = "review_count"
)

// Provider is a talent offering sessions. Every provider is backed by a
// user account, the friend gate and handoff payloads key off UserID.
type Provider struct {
	ID          string  `db:"id"`
	UserID      string  `db:"user_id"`
	Name        string  `db:"name"`
	Title       string  `db:"title"`
	Category    string  `db:"category"`
	Bio         *string `db:"bio"`
	AvatarURL   *string `db:"avatar_url"`
	Rating      float64 `db:"rating"`
	ReviewCount int     `db:"review_count"`
	model.Metadata
}
