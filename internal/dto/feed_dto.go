package dto

import "social-feed-api/internal/domain"

// ReactionSummary annotates a post, comment, or reply with its reaction
// count and the distinct kinds present, in first-seen order.
type ReactionSummary struct {
	Count int                   `json:"count"`
	Type  []domain.ReactionKind `json:"type"`
}

// ReplyView is one nested reply inside a comment view
type ReplyView struct {
	CommentID      uint            `json:"comment_id"`
	Commenter      UserResponse    `json:"commenter"`
	CommentedAt    string          `json:"commented_at"`
	CommentContent string          `json:"comment_content"`
	Reactions      ReactionSummary `json:"reactions"`
}

// CommentView is one top-level comment with its replies
type CommentView struct {
	CommentID      uint            `json:"comment_id"`
	Commenter      UserResponse    `json:"commenter"`
	CommentedAt    string          `json:"commented_at"`
	CommentContent string          `json:"comment_content"`
	Reactions      ReactionSummary `json:"reactions"`
	RepliesCount   int             `json:"replies_count"`
	Replies        []ReplyView     `json:"replies"`
}

// PostView is the fully assembled feed entry for one post
type PostView struct {
	PostID        uint            `json:"post_id"`
	PostedBy      UserResponse    `json:"posted_by"`
	PostedAt      string          `json:"posted_at"`
	PostContent   string          `json:"post_content"`
	Reactions     ReactionSummary `json:"reactions"`
	Comments      []CommentView   `json:"comments"`
	CommentsCount int             `json:"comments_count"`
}
