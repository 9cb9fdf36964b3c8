package dto

import "social-feed-api/internal/domain"

// ReactRequest represents a reaction to a post or comment
type ReactRequest struct {
	UserID uint                `json:"userId" binding:"required"`
	Kind   domain.ReactionKind `json:"kind" binding:"required"`
}

// ReactionTallyResponse maps every reaction kind to its count for one post.
// Kinds with no reactions are present with a zero count.
type ReactionTallyResponse struct {
	PostID uint                         `json:"post_id"`
	Counts map[domain.ReactionKind]int64 `json:"counts"`
}

// ReactorResponse pairs a user summary with the kind they reacted with
type ReactorResponse struct {
	UserID     uint                `json:"user_id"`
	Name       string              `json:"name"`
	ProfilePic string              `json:"profile_pic"`
	Reaction   domain.ReactionKind `json:"reaction"`
}

// TotalReactionCountResponse carries the unfiltered reaction row count
type TotalReactionCountResponse struct {
	Count int64 `json:"count"`
}
