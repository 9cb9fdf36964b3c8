package repository

import (
	"context"

	"gorm.io/gorm"

	"social-feed-api/internal/domain"
)

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByID(ctx context.Context, id uint) (*domain.Comment, error)
	FindByPostID(ctx context.Context, postID uint) ([]*domain.Comment, error)
	FindByParentID(ctx context.Context, parentID uint) ([]*domain.Comment, error)
	FindAll(ctx context.Context) ([]*domain.Comment, error)
	CountByPostID(ctx context.Context, postID uint) (int64, error)
}

// commentRepositoryImpl is the GORM implementation of CommentRepository
type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

// Create creates a new comment or reply
func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// FindByID finds a comment by ID
func (r *commentRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByPostID returns the top-level comments of a post in creation order
func (r *commentRepositoryImpl) FindByPostID(ctx context.Context, postID uint) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// FindByParentID returns the replies to a comment in creation order
func (r *commentRepositoryImpl) FindByParentID(ctx context.Context, parentID uint) ([]*domain.Comment, error) {
	var replies []*domain.Comment
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("id ASC").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}

// FindAll returns every comment ordered by ID
func (r *commentRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// CountByPostID returns the number of top-level comments on a post
func (r *commentRepositoryImpl) CountByPostID(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}
