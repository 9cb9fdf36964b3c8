package domain

// User represents a person who can join groups, post, comment, and react
type User struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	ProfilePic string `gorm:"type:text" json:"profile_pic"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
