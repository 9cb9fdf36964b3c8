package domain

import "time"

// Comment represents a comment on a post or a reply to another comment.
// Exactly one of PostID and ParentID is set: top-level comments point at a
// post, replies point at their parent comment. Replies always create a new
// row, so reply chains are acyclic by construction.
type Comment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Content     string    `gorm:"type:varchar(1000);not null" json:"content"`
	CommentedAt time.Time `gorm:"type:timestamp;not null" json:"commented_at"`
	AuthorID    uint      `gorm:"not null;index:idx_comments_author_id" json:"author_id"`
	PostID      *uint     `gorm:"index:idx_comments_post_id" json:"post_id,omitempty"`
	ParentID    *uint     `gorm:"index:idx_comments_parent_id" json:"parent_id,omitempty"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
