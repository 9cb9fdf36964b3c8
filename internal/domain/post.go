package domain

import "time"

// Post represents content published by a user into a group
type Post struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Content  string    `gorm:"type:varchar(1000);not null" json:"content"`
	PostedAt time.Time `gorm:"type:timestamp;not null" json:"posted_at"`
	AuthorID uint      `gorm:"not null;index:idx_posts_author_id" json:"author_id"`
	GroupID  uint      `gorm:"not null;index:idx_posts_group_id" json:"group_id"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}
