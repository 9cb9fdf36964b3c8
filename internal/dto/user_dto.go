package dto

// CreateUserRequest represents the request to create a new user
type CreateUserRequest struct {
	Name       string `json:"name" binding:"required,min=1"`
	ProfilePic string `json:"profilePic"`
}

// UpdateUserRequest represents a partial update of a user's fields
type UpdateUserRequest struct {
	Name       *string `json:"name,omitempty"`
	ProfilePic *string `json:"profilePic,omitempty"`
}

// UserResponse is the user summary shape used across views
type UserResponse struct {
	UserID     uint   `json:"user_id"`
	Name       string `json:"name"`
	ProfilePic string `json:"profile_pic"`
}

// AvatarPresignRequest asks for a presigned upload URL for a profile picture
type AvatarPresignRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

// AvatarPresignResponse carries the presigned PUT URL and the object key the
// client must echo back when confirming the upload
type AvatarPresignResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileKey   string `json:"fileKey"`
}

// ConfirmAvatarRequest finalizes an avatar upload
type ConfirmAvatarRequest struct {
	FileKey string `json:"fileKey" binding:"required"`
}
