package repository

import (
	"context"

	"gorm.io/gorm"

	"social-feed-api/internal/domain"
)

// GroupRepository defines the interface for group data access
type GroupRepository interface {
	Create(ctx context.Context, group *domain.Group) error
	FindByID(ctx context.Context, id uint) (*domain.Group, error)
	FindAll(ctx context.Context) ([]*domain.Group, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// MembershipRepository defines the interface for membership data access
type MembershipRepository interface {
	Create(ctx context.Context, membership *domain.Membership) error
	FindByGroupAndMember(ctx context.Context, groupID, memberID uint) (*domain.Membership, error)
	FindByGroupID(ctx context.Context, groupID uint) ([]*domain.Membership, error)
	Update(ctx context.Context, membership *domain.Membership) error
	Delete(ctx context.Context, groupID, memberID uint) error
}

// groupRepositoryImpl is the GORM implementation of GroupRepository
type groupRepositoryImpl struct {
	db *gorm.DB
}

// NewGroupRepository creates a new instance of GroupRepository
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepositoryImpl{db: db}
}

// Create creates a new group
func (r *groupRepositoryImpl) Create(ctx context.Context, group *domain.Group) error {
	return r.db.WithContext(ctx).Create(group).Error
}

// FindByID finds a group by ID
func (r *groupRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Group, error) {
	var group domain.Group
	if err := r.db.WithContext(ctx).First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// FindAll returns every group ordered by ID
func (r *groupRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Group, error) {
	var groups []*domain.Group
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// Exists checks if a group exists
func (r *groupRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Group{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Delete removes a group and its memberships in one transaction
func (r *groupRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&domain.Membership{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Group{}, id).Error
	})
}

// Count returns the total number of groups
func (r *groupRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Group{}).Count(&count).Error
	return count, err
}

// membershipRepositoryImpl is the GORM implementation of MembershipRepository
type membershipRepositoryImpl struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new instance of MembershipRepository
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepositoryImpl{db: db}
}

// Create creates a new membership row
func (r *membershipRepositoryImpl) Create(ctx context.Context, membership *domain.Membership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

// FindByGroupAndMember finds the membership for a (group, member) pair
func (r *membershipRepositoryImpl) FindByGroupAndMember(ctx context.Context, groupID, memberID uint) (*domain.Membership, error) {
	var membership domain.Membership
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND member_id = ?", groupID, memberID).
		First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// FindByGroupID returns all memberships of a group ordered by ID
func (r *membershipRepositoryImpl) FindByGroupID(ctx context.Context, groupID uint) ([]*domain.Membership, error) {
	var memberships []*domain.Membership
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("id ASC").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// Update saves all fields of a membership
func (r *membershipRepositoryImpl) Update(ctx context.Context, membership *domain.Membership) error {
	return r.db.WithContext(ctx).Save(membership).Error
}

// Delete removes the membership for a (group, member) pair
func (r *membershipRepositoryImpl) Delete(ctx context.Context, groupID, memberID uint) error {
	return r.db.WithContext(ctx).
		Where("group_id = ? AND member_id = ?", groupID, memberID).
		Delete(&domain.Membership{}).Error
}
