package model

import "talentlink/shared/model"

const (
	TableName  = "wishlists"
	EntityName = "wishlist"

	FieldID         = "id"
	FieldUserID     = "user_id"
	FieldProviderID = "provider_id"
)

// Wishlist marks a provider a user wants to book later. At most one row
// exists per user and provider pair.
type Wishlist struct {
	ID         string `db:"id"`
	UserID     string `db:"user_id"`
	ProviderID string `db:"provider_id"`
	model.Metadata
}
