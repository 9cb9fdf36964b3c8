package dto

import "social-feed-api/internal/domain"

// PostRecord is the raw post row shape for the read-only query endpoints
type PostRecord struct {
	PostID   uint   `json:"post_id"`
	Content  string `json:"content"`
	PostedAt string `json:"posted_at"`
	AuthorID uint   `json:"author_id"`
	GroupID  uint   `json:"group_id"`
}

// CommentRecord is the raw comment row shape. Exactly one of PostID and
// ParentID is set.
type CommentRecord struct {
	CommentID   uint   `json:"comment_id"`
	Content     string `json:"content"`
	CommentedAt string `json:"commented_at"`
	AuthorID    uint   `json:"author_id"`
	PostID      *uint  `json:"post_id"`
	ParentID    *uint  `json:"parent_id"`
}

// ReactionRecord is the raw reaction row shape. Exactly one of PostID and
// CommentID is set.
type ReactionRecord struct {
	ReactionID uint                `json:"reaction_id"`
	Kind       domain.ReactionKind `json:"kind"`
	ReactedAt  string              `json:"reacted_at"`
	ReactorID  uint                `json:"reactor_id"`
	PostID     *uint               `json:"post_id"`
	CommentID  *uint               `json:"comment_id"`
}
