package dto

// CreatePostRequest represents the request to publish a post into a group
type CreatePostRequest struct {
	UserID  uint   `json:"userId" binding:"required"`
	GroupID uint   `json:"groupId" binding:"required"`
	Content string `json:"content"`
}

// CreatePostResponse carries the identifier of the created post
type CreatePostResponse struct {
	PostID uint `json:"post_id"`
}

// CreateCommentRequest represents the request to comment on a post
type CreateCommentRequest struct {
	UserID  uint   `json:"userId" binding:"required"`
	Content string `json:"content"`
}

// ReplyToCommentRequest represents the request to reply to a comment
type ReplyToCommentRequest struct {
	UserID  uint   `json:"userId" binding:"required"`
	Content string `json:"content"`
}

// CreateCommentResponse carries the identifier of the created comment or reply
type CreateCommentResponse struct {
	CommentID uint `json:"comment_id"`
}
