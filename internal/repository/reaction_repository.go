package repository

import (
	"context"

	"gorm.io/gorm"

	"social-feed-api/internal/domain"
)

// ReactionRepository defines the interface for reaction data access
type ReactionRepository interface {
	Create(ctx context.Context, reaction *domain.Reaction) error
	Update(ctx context.Context, reaction *domain.Reaction) error
	Delete(ctx context.Context, id uint) error
	FindByPostID(ctx context.Context, postID uint) ([]*domain.Reaction, error)
	FindByCommentID(ctx context.Context, commentID uint) ([]*domain.Reaction, error)
	FindByReactorAndComment(ctx context.Context, reactorID, commentID uint) (*domain.Reaction, error)
	FindByReactorID(ctx context.Context, reactorID uint) ([]*domain.Reaction, error)
	FindAll(ctx context.Context) ([]*domain.Reaction, error)
	ReplaceForPost(ctx context.Context, reactorID, postID uint, fresh *domain.Reaction) error
	CountAll(ctx context.Context) (int64, error)
	CountByPostID(ctx context.Context, postID uint) (int64, error)
}

// reactionRepositoryImpl is the GORM implementation of ReactionRepository
type reactionRepositoryImpl struct {
	db *gorm.DB
}

// NewReactionRepository creates a new instance of ReactionRepository
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepositoryImpl{db: db}
}

// Create creates a new reaction
func (r *reactionRepositoryImpl) Create(ctx context.Context, reaction *domain.Reaction) error {
	return r.db.WithContext(ctx).Create(reaction).Error
}

// Update saves all fields of a reaction
func (r *reactionRepositoryImpl) Update(ctx context.Context, reaction *domain.Reaction) error {
	return r.db.WithContext(ctx).Save(reaction).Error
}

// Delete removes a reaction by ID
func (r *reactionRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Reaction{}, id).Error
}

// FindByPostID returns the reactions on a post in creation order
func (r *reactionRepositoryImpl) FindByPostID(ctx context.Context, postID uint) ([]*domain.Reaction, error) {
	var reactions []*domain.Reaction
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("id ASC").
		Find(&reactions).Error
	if err != nil {
		return nil, err
	}
	return reactions, nil
}

// FindByCommentID returns the reactions on a comment in creation order
func (r *reactionRepositoryImpl) FindByCommentID(ctx context.Context, commentID uint) ([]*domain.Reaction, error) {
	var reactions []*domain.Reaction
	err := r.db.WithContext(ctx).
		Where("comment_id = ?", commentID).
		Order("id ASC").
		Find(&reactions).Error
	if err != nil {
		return nil, err
	}
	return reactions, nil
}

// FindByReactorAndComment returns the single reaction a user has on a comment
func (r *reactionRepositoryImpl) FindByReactorAndComment(ctx context.Context, reactorID, commentID uint) (*domain.Reaction, error) {
	var reaction domain.Reaction
	err := r.db.WithContext(ctx).
		Where("reactor_id = ? AND comment_id = ?", reactorID, commentID).
		First(&reaction).Error
	if err != nil {
		return nil, err
	}
	return &reaction, nil
}

// FindByReactorID returns every reaction a user has recorded
func (r *reactionRepositoryImpl) FindByReactorID(ctx context.Context, reactorID uint) ([]*domain.Reaction, error) {
	var reactions []*domain.Reaction
	err := r.db.WithContext(ctx).
		Where("reactor_id = ?", reactorID).
		Order("id ASC").
		Find(&reactions).Error
	if err != nil {
		return nil, err
	}
	return reactions, nil
}

// FindAll returns every reaction ordered by ID
func (r *reactionRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Reaction, error) {
	var reactions []*domain.Reaction
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&reactions).Error; err != nil {
		return nil, err
	}
	return reactions, nil
}

// ReplaceForPost atomically deletes any existing reactions by the reactor on
// the post and inserts the fresh row, so concurrent readers never observe
// two rows for the same (reactor, post) pair.
func (r *reactionRepositoryImpl) ReplaceForPost(ctx context.Context, reactorID, postID uint, fresh *domain.Reaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reactor_id = ? AND post_id = ?", reactorID, postID).
			Delete(&domain.Reaction{}).Error; err != nil {
			return err
		}
		return tx.Create(fresh).Error
	})
}

// CountAll returns the total number of reaction rows, unfiltered
func (r *reactionRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Reaction{}).Count(&count).Error
	return count, err
}

// CountByPostID returns the number of reactions on a post
func (r *reactionRepositoryImpl) CountByPostID(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Reaction{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}
