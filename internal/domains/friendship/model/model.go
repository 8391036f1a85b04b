package model

import (
	gDto "talentlink/shared/dto"
	"talentlink/shared/model"
)

const (
	TableName  = "friendships"
	EntityName = "friendship"

	FieldID           = "id"
	FieldUserID       = "user_id"
	FieldFriendUserID = "friend_user_id"
	FieldStatus       = "status"

	StatusPending  = "pending"
	StatusAccepted = "accepted"
)

// Friendship rows are directional, UserID sent the request to FriendUserID.
// An accepted row in either direction makes the pair friends.
type Friendship struct {
	ID           string `db:"id"`
	UserID       string `db:"user_id"`
	FriendUserID string `db:"friend_user_id"`
	Status       string `db:"status"`
	model.Metadata
}

// PairFilter matches friendship rows between two users in either direction.
func PairFilter(userID, otherUserID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorAnd,
				Filters: []any{
					gDto.Filter{
						ArgName:  "user_id_a",
						Field:    FieldUserID,
						Operator: gDto.FilterOperatorEq,
						Value:    userID,
						Table:    TableName,
					},
					gDto.Filter{
						ArgName:  "friend_user_id_a",
						Field:    FieldFriendUserID,
						Operator: gDto.FilterOperatorEq,
						Value:    otherUserID,
						Table:    TableName,
					},
				},
			},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorAnd,
				Filters: []any{
					gDto.Filter{
						ArgName:  "user_id_b",
						Field:    FieldUserID,
						Operator: gDto.FilterOperatorEq,
						Value:    otherUserID,
						Table:    TableName,
					},
					gDto.Filter{
						ArgName:  "friend_user_id_b",
						Field:    FieldFriendUserID,
						Operator: gDto.FilterOperatorEq,
						Value:    userID,
						Table:    TableName,
					},
				},
			},
		},
	}
}

// AcceptedPairFilter narrows PairFilter to accepted friendships only.
func AcceptedPairFilter(userID, otherUserID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    StatusAccepted,
				Table:    TableName,
			},
			PairFilter(userID, otherUserID),
		},
	}
}
