package repository

import (
	"context"

	"gorm.io/gorm"

	"social-feed-api/internal/domain"
)

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id uint) (*domain.Post, error)
	FindByAuthorID(ctx context.Context, authorID uint) ([]*domain.Post, error)
	FindAll(ctx context.Context) ([]*domain.Post, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	CountByAuthorID(ctx context.Context, authorID uint) (int64, error)
}

// postRepositoryImpl is the GORM implementation of PostRepository
type postRepositoryImpl struct {
	db *gorm.DB
}

// NewPostRepository creates a new instance of PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepositoryImpl{db: db}
}

// Create creates a new post
func (r *postRepositoryImpl) Create(ctx context.Context, post *domain.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// FindByID finds a post by ID
func (r *postRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByAuthorID returns a user's posts, newest first
func (r *postRepositoryImpl) FindByAuthorID(ctx context.Context, authorID uint) ([]*domain.Post, error) {
	var posts []*domain.Post
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// FindAll returns every post, newest first
func (r *postRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Post, error) {
	var posts []*domain.Post
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Delete removes a post together with its comments, the replies to those
// comments, and every reaction attached to any of them, in one transaction.
// The explicit deletes keep the cascade observable even when the schema's
// FK constraints are disabled (as in the SQLite test setup).
func (r *postRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var commentIDs []uint
		if err := tx.Model(&domain.Comment{}).
			Where("post_id = ?", id).
			Pluck("id", &commentIDs).Error; err != nil {
			return err
		}

		// Replies hang off top-level comments, one level per the view model,
		// but delete the whole chain to keep the table consistent.
		for len(commentIDs) > 0 {
			var replyIDs []uint
			if err := tx.Model(&domain.Comment{}).
				Where("parent_id IN ?", commentIDs).
				Pluck("id", &replyIDs).Error; err != nil {
				return err
			}

			if err := tx.Where("comment_id IN ?", commentIDs).Delete(&domain.Reaction{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", commentIDs).Delete(&domain.Comment{}).Error; err != nil {
				return err
			}

			commentIDs = replyIDs
		}

		if err := tx.Where("post_id = ?", id).Delete(&domain.Reaction{}).Error; err != nil {
			return err
		}

		return tx.Delete(&domain.Post{}, id).Error
	})
}

// Count returns the total number of posts
func (r *postRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Post{}).Count(&count).Error
	return count, err
}

// CountByAuthorID returns the number of posts authored by a user
func (r *postRepositoryImpl) CountByAuthorID(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Post{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}
