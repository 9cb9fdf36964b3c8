package service

import (
	"context"

	"social-feed-api/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc    func(ctx context.Context, user *domain.User) error
	FindByIDFunc  func(ctx context.Context, id uint) (*domain.User, error)
	FindByIDsFunc func(ctx context.Context, ids []uint) ([]*domain.User, error)
	FindAllFunc   func(ctx context.Context) ([]*domain.User, error)
	ExistsFunc    func(ctx context.Context, id uint) (bool, error)
	UpdateFunc    func(ctx context.Context, user *domain.User) error
	DeleteFunc    func(ctx context.Context, id uint) error
	CountFunc     func(ctx context.Context) (int64, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []uint) ([]*domain.User, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockGroupRepository is a mock implementation of GroupRepository
type MockGroupRepository struct {
	CreateFunc   func(ctx context.Context, group *domain.Group) error
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Group, error)
	FindAllFunc  func(ctx context.Context) ([]*domain.Group, error)
	ExistsFunc   func(ctx context.Context, id uint) (bool, error)
	DeleteFunc   func(ctx context.Context, id uint) error
	CountFunc    func(ctx context.Context) (int64, error)
}

func (m *MockGroupRepository) Create(ctx context.Context, group *domain.Group) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, group)
	}
	return nil
}

func (m *MockGroupRepository) FindByID(ctx context.Context, id uint) (*domain.Group, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockGroupRepository) FindAll(ctx context.Context) ([]*domain.Group, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockGroupRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

func (m *MockGroupRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockGroupRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockMembershipRepository is a mock implementation of MembershipRepository
type MockMembershipRepository struct {
	CreateFunc               func(ctx context.Context, membership *domain.Membership) error
	FindByGroupAndMemberFunc func(ctx context.Context, groupID, memberID uint) (*domain.Membership, error)
	FindByGroupIDFunc        func(ctx context.Context, groupID uint) ([]*domain.Membership, error)
	UpdateFunc               func(ctx context.Context, membership *domain.Membership) error
	DeleteFunc               func(ctx context.Context, groupID, memberID uint) error
}

func (m *MockMembershipRepository) Create(ctx context.Context, membership *domain.Membership) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, membership)
	}
	return nil
}

func (m *MockMembershipRepository) FindByGroupAndMember(ctx context.Context, groupID, memberID uint) (*domain.Membership, error) {
	if m.FindByGroupAndMemberFunc != nil {
		return m.FindByGroupAndMemberFunc(ctx, groupID, memberID)
	}
	return nil, nil
}

func (m *MockMembershipRepository) FindByGroupID(ctx context.Context, groupID uint) ([]*domain.Membership, error) {
	if m.FindByGroupIDFunc != nil {
		return m.FindByGroupIDFunc(ctx, groupID)
	}
	return nil, nil
}

func (m *MockMembershipRepository) Update(ctx context.Context, membership *domain.Membership) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, membership)
	}
	return nil
}

func (m *MockMembershipRepository) Delete(ctx context.Context, groupID, memberID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, groupID, memberID)
	}
	return nil
}

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	CreateFunc               func(ctx context.Context, post *domain.Post) error
	FindByIDFunc             func(ctx context.Context, id uint) (*domain.Post, error)
	FindByAuthorIDFunc       func(ctx context.Context, authorID uint) ([]*domain.Post, error)
	FindAllFunc              func(ctx context.Context) ([]*domain.Post, error)
	DeleteFunc               func(ctx context.Context, id uint) error
	CountFunc                func(ctx context.Context) (int64, error)
	CountByAuthorIDFunc      func(ctx context.Context, authorID uint) (int64, error)
}

func (m *MockPostRepository) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, post)
	}
	return nil
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uint) (*domain.Post, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPostRepository) FindByAuthorID(ctx context.Context, authorID uint) ([]*domain.Post, error) {
	if m.FindByAuthorIDFunc != nil {
		return m.FindByAuthorIDFunc(ctx, authorID)
	}
	return nil, nil
}

func (m *MockPostRepository) FindAll(ctx context.Context) ([]*domain.Post, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockPostRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockPostRepository) CountByAuthorID(ctx context.Context, authorID uint) (int64, error) {
	if m.CountByAuthorIDFunc != nil {
		return m.CountByAuthorIDFunc(ctx, authorID)
	}
	return 0, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc         func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc       func(ctx context.Context, id uint) (*domain.Comment, error)
	FindByPostIDFunc   func(ctx context.Context, postID uint) ([]*domain.Comment, error)
	FindByParentIDFunc func(ctx context.Context, parentID uint) ([]*domain.Comment, error)
	FindAllFunc        func(ctx context.Context) ([]*domain.Comment, error)
	CountByPostIDFunc  func(ctx context.Context, postID uint) (int64, error)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uint) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByPostID(ctx context.Context, postID uint) ([]*domain.Comment, error) {
	if m.FindByPostIDFunc != nil {
		return m.FindByPostIDFunc(ctx, postID)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByParentID(ctx context.Context, parentID uint) ([]*domain.Comment, error) {
	if m.FindByParentIDFunc != nil {
		return m.FindByParentIDFunc(ctx, parentID)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindAll(ctx context.Context) ([]*domain.Comment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockCommentRepository) CountByPostID(ctx context.Context, postID uint) (int64, error) {
	if m.CountByPostIDFunc != nil {
		return m.CountByPostIDFunc(ctx, postID)
	}
	return 0, nil
}

// MockReactionRepository is a mock implementation of ReactionRepository
type MockReactionRepository struct {
	CreateFunc                  func(ctx context.Context, reaction *domain.Reaction) error
	UpdateFunc                  func(ctx context.Context, reaction *domain.Reaction) error
	DeleteFunc                  func(ctx context.Context, id uint) error
	FindByPostIDFunc            func(ctx context.Context, postID uint) ([]*domain.Reaction, error)
	FindByCommentIDFunc         func(ctx context.Context, commentID uint) ([]*domain.Reaction, error)
	FindByReactorAndCommentFunc func(ctx context.Context, reactorID, commentID uint) (*domain.Reaction, error)
	FindByReactorIDFunc         func(ctx context.Context, reactorID uint) ([]*domain.Reaction, error)
	FindAllFunc                 func(ctx context.Context) ([]*domain.Reaction, error)
	ReplaceForPostFunc          func(ctx context.Context, reactorID, postID uint, fresh *domain.Reaction) error
	CountAllFunc                func(ctx context.Context) (int64, error)
	CountByPostIDFunc           func(ctx context.Context, postID uint) (int64, error)
}

func (m *MockReactionRepository) Create(ctx context.Context, reaction *domain.Reaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, reaction)
	}
	return nil
}

func (m *MockReactionRepository) Update(ctx context.Context, reaction *domain.Reaction) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, reaction)
	}
	return nil
}

func (m *MockReactionRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockReactionRepository) FindByPostID(ctx context.Context, postID uint) ([]*domain.Reaction, error) {
	if m.FindByPostIDFunc != nil {
		return m.FindByPostIDFunc(ctx, postID)
	}
	return nil, nil
}

func (m *MockReactionRepository) FindByCommentID(ctx context.Context, commentID uint) ([]*domain.Reaction, error) {
	if m.FindByCommentIDFunc != nil {
		return m.FindByCommentIDFunc(ctx, commentID)
	}
	return nil, nil
}

func (m *MockReactionRepository) FindByReactorAndComment(ctx context.Context, reactorID, commentID uint) (*domain.Reaction, error) {
	if m.FindByReactorAndCommentFunc != nil {
		return m.FindByReactorAndCommentFunc(ctx, reactorID, commentID)
	}
	return nil, nil
}

func (m *MockReactionRepository) FindByReactorID(ctx context.Context, reactorID uint) ([]*domain.Reaction, error) {
	if m.FindByReactorIDFunc != nil {
		return m.FindByReactorIDFunc(ctx, reactorID)
	}
	return nil, nil
}

func (m *MockReactionRepository) FindAll(ctx context.Context) ([]*domain.Reaction, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockReactionRepository) ReplaceForPost(ctx context.Context, reactorID, postID uint, fresh *domain.Reaction) error {
	if m.ReplaceForPostFunc != nil {
		return m.ReplaceForPostFunc(ctx, reactorID, postID, fresh)
	}
	return nil
}

func (m *MockReactionRepository) CountAll(ctx context.Context) (int64, error) {
	if m.CountAllFunc != nil {
		return m.CountAllFunc(ctx)
	}
	return 0, nil
}

func (m *MockReactionRepository) CountByPostID(ctx context.Context, postID uint) (int64, error) {
	if m.CountByPostIDFunc != nil {
		return m.CountByPostIDFunc(ctx, postID)
	}
	return 0, nil
}
