package domain

// Group represents a named collection of users
type Group struct {
	ID      uint         `gorm:"primaryKey" json:"id"`
	Name    string       `gorm:"type:varchar(100);not null" json:"name"`
	Members []Membership `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
}

// Membership is the join record between a group and a user.
// A (group_id, member_id) pair is unique; IsAdmin gates membership mutations.
type Membership struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	GroupID  uint `gorm:"not null;index:idx_memberships_group_id;uniqueIndex:uq_memberships_group_member" json:"group_id"`
	MemberID uint `gorm:"not null;index:idx_memberships_member_id;uniqueIndex:uq_memberships_group_member" json:"member_id"`
	IsAdmin  bool `gorm:"not null;default:false" json:"is_admin"`
}

// TableName specifies the table name for Group
func (Group) TableName() string {
	return "groups"
}

// TableName specifies the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}
