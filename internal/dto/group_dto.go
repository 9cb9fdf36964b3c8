package dto

// CreateGroupRequest represents the request to create a new group.
// The admin user becomes a member with the admin flag set even when absent
// from MemberIDs.
type CreateGroupRequest struct {
	AdminUserID uint   `json:"adminUserId" binding:"required"`
	Name        string `json:"name"`
	MemberIDs   []uint `json:"memberIds"`
}

// CreateGroupResponse carries the identifier of the created group
type CreateGroupResponse struct {
	GroupID uint `json:"group_id"`
}

// AddMemberRequest represents the request to add a member to a group
type AddMemberRequest struct {
	ActingUserID uint `json:"actingUserId" binding:"required"`
	NewMemberID  uint `json:"newMemberId" binding:"required"`
}

// RemoveMemberRequest represents the request to remove a member from a group
type RemoveMemberRequest struct {
	ActingUserID uint `json:"actingUserId" binding:"required"`
	MemberID     uint `json:"memberId" binding:"required"`
}

// PromoteMemberRequest represents the request to promote a member to admin
type PromoteMemberRequest struct {
	ActingUserID uint `json:"actingUserId" binding:"required"`
	MemberID     uint `json:"memberId" binding:"required"`
}

// GroupResponse is the group summary shape
type GroupResponse struct {
	GroupID uint   `json:"group_id"`
	Name    string `json:"name"`
}

// MembershipResponse exposes a single membership row
type MembershipResponse struct {
	GroupID  uint `json:"group_id"`
	MemberID uint `json:"member_id"`
	IsAdmin  bool `json:"is_admin"`
}
