package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"social-feed-api/internal/domain"
	"social-feed-api/internal/dto"
	"social-feed-api/internal/metrics"
	"social-feed-api/internal/repository"
	"social-feed-api/internal/response"
)

// GroupService defines the interface for group membership business logic
type GroupService interface {
	CreateGroup(ctx context.Context, req *dto.CreateGroupRequest) (*dto.CreateGroupResponse, error)
	AddMember(ctx context.Context, groupID uint, req *dto.AddMemberRequest) error
	RemoveMember(ctx context.Context, groupID uint, req *dto.RemoveMemberRequest) error
	PromoteToAdmin(ctx context.Context, groupID uint, req *dto.PromoteMemberRequest) error
	GetMembers(ctx context.Context, groupID uint) ([]*dto.MembershipResponse, error)
}

// groupServiceImpl is the implementation of GroupService
type groupServiceImpl struct {
	groupRepo      repository.GroupRepository
	membershipRepo repository.MembershipRepository
	userRepo       repository.UserRepository
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

// NewGroupService creates a new instance of GroupService
func NewGroupService(
	groupRepo repository.GroupRepository,
	membershipRepo repository.MembershipRepository,
	userRepo repository.UserRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) GroupService {
	return &groupServiceImpl{
		groupRepo:      groupRepo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		metrics:        m,
		logger:         logger,
	}
}

// CreateGroup creates a group, enrolls all requested members, and marks the
// creating user's membership as admin. The creator is enrolled even when
// absent from MemberIDs so the group never starts without an admin.
func (s *groupServiceImpl) CreateGroup(ctx context.Context, req *dto.CreateGroupRequest) (*dto.CreateGroupResponse, error) {
	if req.Name == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Group name must not be empty", "")
	}

	if err := s.requireUser(ctx, req.AdminUserID); err != nil {
		return nil, err
	}
	for _, memberID := range req.MemberIDs {
		if err := s.requireUser(ctx, memberID); err != nil {
			return nil, err
		}
	}

	group := &domain.Group{Name: req.Name}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create group", err.Error())
	}

	enrolled := map[uint]bool{}
	for _, memberID := range req.MemberIDs {
		if enrolled[memberID] {
			continue
		}
		membership := &domain.Membership{
			GroupID:  group.ID,
			MemberID: memberID,
			IsAdmin:  memberID == req.AdminUserID,
		}
		if err := s.membershipRepo.Create(ctx, membership); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to enroll member", err.Error())
		}
		enrolled[memberID] = true
	}

	if !enrolled[req.AdminUserID] {
		membership := &domain.Membership{
			GroupID:  group.ID,
			MemberID: req.AdminUserID,
			IsAdmin:  true,
		}
		if err := s.membershipRepo.Create(ctx, membership); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to enroll group admin", err.Error())
		}
	}

	if s.metrics != nil {
		s.metrics.IncrementGroupCreated()
	}

	s.logger.Info("Group created",
		zap.Uint("group_id", group.ID),
		zap.Uint("admin_user_id", req.AdminUserID),
		zap.Int("member_count", len(enrolled)),
	)

	return &dto.CreateGroupResponse{GroupID: group.ID}, nil
}

// AddMember adds a user to a group. The acting user must hold an admin
// membership in the group. Adding an existing member is a no-op.
func (s *groupServiceImpl) AddMember(ctx context.Context, groupID uint, req *dto.AddMemberRequest) error {
	if err := s.requireUser(ctx, req.NewMemberID); err != nil {
		return err
	}
	if err := s.requireGroup(ctx, groupID); err != nil {
		return err
	}
	if err := s.requireAdmin(ctx, groupID, req.ActingUserID); err != nil {
		return err
	}

	_, err := s.membershipRepo.FindByGroupAndMember(ctx, groupID, req.NewMemberID)
	if err == nil {
		// Already a member
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewAppError(response.ErrCodeInternal, "Failed to check membership", err.Error())
	}

	membership := &domain.Membership{GroupID: groupID, MemberID: req.NewMemberID}
	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to add member", err.Error())
	}

	return nil
}

// RemoveMember removes a user from a group, admin-gated like AddMember
func (s *groupServiceImpl) RemoveMember(ctx context.Context, groupID uint, req *dto.RemoveMemberRequest) error {
	if err := s.requireUser(ctx, req.MemberID); err != nil {
		return err
	}
	if err := s.requireGroup(ctx, groupID); err != nil {
		return err
	}
	if err := s.requireAdmin(ctx, groupID, req.ActingUserID); err != nil {
		return err
	}

	_, err := s.membershipRepo.FindByGroupAndMember(ctx, groupID, req.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "User is not a member of this group", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to check membership", err.Error())
	}

	if err := s.membershipRepo.Delete(ctx, groupID, req.MemberID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to remove member", err.Error())
	}

	return nil
}

// PromoteToAdmin marks a member's membership as admin. Promoting an existing
// admin is a no-op.
func (s *groupServiceImpl) PromoteToAdmin(ctx context.Context, groupID uint, req *dto.PromoteMemberRequest) error {
	if err := s.requireUser(ctx, req.MemberID); err != nil {
		return err
	}
	if err := s.requireGroup(ctx, groupID); err != nil {
		return err
	}
	if err := s.requireAdmin(ctx, groupID, req.ActingUserID); err != nil {
		return err
	}

	membership, err := s.membershipRepo.FindByGroupAndMember(ctx, groupID, req.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "User is not a member of this group", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to check membership", err.Error())
	}

	if membership.IsAdmin {
		return nil
	}

	membership.IsAdmin = true
	if err := s.membershipRepo.Update(ctx, membership); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to promote member", err.Error())
	}

	return nil
}

// GetMembers lists the memberships of a group
func (s *groupServiceImpl) GetMembers(ctx context.Context, groupID uint) ([]*dto.MembershipResponse, error) {
	if err := s.requireGroup(ctx, groupID); err != nil {
		return nil, err
	}

	memberships, err := s.membershipRepo.FindByGroupID(ctx, groupID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch members", err.Error())
	}

	responses := make([]*dto.MembershipResponse, len(memberships))
	for i, m := range memberships {
		responses[i] = &dto.MembershipResponse{
			GroupID:  m.GroupID,
			MemberID: m.MemberID,
			IsAdmin:  m.IsAdmin,
		}
	}
	return responses, nil
}

// requireUser fails with NOT_FOUND when the user does not exist
func (s *groupServiceImpl) requireUser(ctx context.Context, userID uint) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify user", err.Error())
	}
	if !exists {
		return response.NewAppError(response.ErrCodeNotFound, "User not found", "")
	}
	return nil
}

// requireGroup fails with NOT_FOUND when the group does not exist
func (s *groupServiceImpl) requireGroup(ctx context.Context, groupID uint) error {
	exists, err := s.groupRepo.Exists(ctx, groupID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify group", err.Error())
	}
	if !exists {
		return response.NewAppError(response.ErrCodeNotFound, "Group not found", "")
	}
	return nil
}

// requireAdmin fails with FORBIDDEN unless the acting user holds an admin
// membership in the group. A missing membership is also FORBIDDEN: outsiders
// get the same answer as non-admin members.
func (s *groupServiceImpl) requireAdmin(ctx context.Context, groupID, actingUserID uint) error {
	membership, err := s.membershipRepo.FindByGroupAndMember(ctx, groupID, actingUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeForbidden, "User is not an admin of this group", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to check admin membership", err.Error())
	}
	if !membership.IsAdmin {
		return response.NewAppError(response.ErrCodeForbidden, "User is not an admin of this group", "")
	}
	return nil
}
