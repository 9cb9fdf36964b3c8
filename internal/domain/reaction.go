package domain

import "time"

// ReactionKind is the closed set of supported reaction types
type ReactionKind string

const (
	ReactionWow        ReactionKind = "WOW"
	ReactionLit        ReactionKind = "LIT"
	ReactionLove       ReactionKind = "LOVE"
	ReactionHaha       ReactionKind = "HAHA"
	ReactionThumbsUp   ReactionKind = "THUMBS_UP"
	ReactionThumbsDown ReactionKind = "THUMBS_DOWN"
	ReactionAngry      ReactionKind = "ANGRY"
	ReactionSad        ReactionKind = "SAD"
)

// AllReactionKinds returns every supported kind in a stable order
func AllReactionKinds() []ReactionKind {
	return []ReactionKind{
		ReactionWow,
		ReactionLit,
		ReactionLove,
		ReactionHaha,
		ReactionThumbsUp,
		ReactionThumbsDown,
		ReactionAngry,
		ReactionSad,
	}
}

// IsValid reports whether k is one of the supported kinds
func (k ReactionKind) IsValid() bool {
	switch k {
	case ReactionWow, ReactionLit, ReactionLove, ReactionHaha,
		ReactionThumbsUp, ReactionThumbsDown, ReactionAngry, ReactionSad:
		return true
	}
	return false
}

// IsPositive reports whether k counts as a positive sentiment
func (k ReactionKind) IsPositive() bool {
	switch k {
	case ReactionWow, ReactionLove, ReactionLit, ReactionHaha, ReactionThumbsUp:
		return true
	}
	return false
}

// IsNegative reports whether k counts as a negative sentiment
func (k ReactionKind) IsNegative() bool {
	switch k {
	case ReactionThumbsDown, ReactionAngry, ReactionSad:
		return true
	}
	return false
}

// Reaction is a typed expression of sentiment attached to exactly one of
// {post, comment} by exactly one user. At most one reaction exists per
// (reactor, post) and per (reactor, comment); the services enforce this via
// replace/toggle, never by inserting duplicates.
type Reaction struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	Kind      ReactionKind `gorm:"type:varchar(20);not null" json:"kind"`
	ReactedAt time.Time    `gorm:"type:timestamp;not null" json:"reacted_at"`
	ReactorID uint         `gorm:"not null;index:idx_reactions_reactor_id" json:"reactor_id"`
	PostID    *uint        `gorm:"index:idx_reactions_post_id" json:"post_id,omitempty"`
	CommentID *uint        `gorm:"index:idx_reactions_comment_id" json:"comment_id,omitempty"`
}

// TableName specifies the table name for Reaction
func (Reaction) TableName() string {
	return "reactions"
}
