package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"social-feed-api/internal/client"
	"social-feed-api/internal/domain"
	"social-feed-api/internal/dto"
	"social-feed-api/internal/repository"
	"social-feed-api/internal/response"
)

// UserService defines the interface for user account business logic
type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, id uint) (*dto.UserResponse, error)
	ListUsers(ctx context.Context) ([]*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id uint) error
	PresignAvatarUpload(ctx context.Context, id uint, req *dto.AvatarPresignRequest) (*dto.AvatarPresignResponse, error)
	ConfirmAvatarUpload(ctx context.Context, id uint, req *dto.ConfirmAvatarRequest) (*dto.UserResponse, error)
}

// userServiceImpl is the implementation of UserService
type userServiceImpl struct {
	userRepo repository.UserRepository
	storage  client.AvatarStorage
	logger   *zap.Logger
}

// NewUserService creates a new instance of UserService. storage may be nil
// when no object store is configured; the avatar endpoints then reject
// requests instead of failing at startup.
func NewUserService(userRepo repository.UserRepository, storage client.AvatarStorage, logger *zap.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		storage:  storage,
		logger:   logger,
	}
}

// CreateUser registers a new user
func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if req.Name == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "User name must not be empty", "")
	}

	user := &domain.User{
		Name:       req.Name,
		ProfilePic: req.ProfilePic,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create user", err.Error())
	}

	s.logger.Info("User created", zap.Uint("user_id", user.ID))

	resp := toUserResponse(user)
	return &resp, nil
}

// GetUser returns a user by ID
func (s *userServiceImpl) GetUser(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// ListUsers returns every user ordered by ID
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch users", err.Error())
	}

	responses := make([]*dto.UserResponse, len(users))
	for i, user := range users {
		resp := toUserResponse(user)
		responses[i] = &resp
	}
	return responses, nil
}

// UpdateUser updates the provided fields of a user
func (s *userServiceImpl) UpdateUser(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, response.NewAppError(response.ErrCodeValidation, "User name must not be empty", "")
		}
		user.Name = *req.Name
	}
	if req.ProfilePic != nil {
		user.ProfilePic = *req.ProfilePic
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update user", err.Error())
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// DeleteUser removes a user account. Content authored by the user is left in
// place.
func (s *userServiceImpl) DeleteUser(ctx context.Context, id uint) error {
	exists, err := s.userRepo.Exists(ctx, id)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify user", err.Error())
	}
	if !exists {
		return response.NewAppError(response.ErrCodeNotFound, "User not found", "")
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete user", err.Error())
	}

	s.logger.Info("User deleted", zap.Uint("user_id", id))
	return nil
}

// PresignAvatarUpload returns a presigned PUT URL for uploading a profile
// picture, plus the object key to confirm with afterwards.
func (s *userServiceImpl) PresignAvatarUpload(ctx context.Context, id uint, req *dto.AvatarPresignRequest) (*dto.AvatarPresignResponse, error) {
	if s.storage == nil {
		return nil, response.NewAppError(response.ErrCodeValidation, "Avatar storage is not configured", "")
	}
	if req.FileName == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "File name must not be empty", "")
	}

	exists, err := s.userRepo.Exists(ctx, id)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify user", err.Error())
	}
	if !exists {
		return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
	}

	uploadURL, fileKey, err := s.storage.GeneratePresignedURL(ctx, id, req.FileName, req.ContentType)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to generate upload URL", err.Error())
	}

	return &dto.AvatarPresignResponse{
		UploadURL: uploadURL,
		FileKey:   fileKey,
	}, nil
}

// ConfirmAvatarUpload records the uploaded object's public URL as the user's
// profile picture.
func (s *userServiceImpl) ConfirmAvatarUpload(ctx context.Context, id uint, req *dto.ConfirmAvatarRequest) (*dto.UserResponse, error) {
	if s.storage == nil {
		return nil, response.NewAppError(response.ErrCodeValidation, "Avatar storage is not configured", "")
	}
	if req.FileKey == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "File key must not be empty", "")
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	user.ProfilePic = s.storage.GetFileURL(req.FileKey)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update profile picture", err.Error())
	}

	s.logger.Info("Profile picture updated",
		zap.Uint("user_id", id),
		zap.String("file_key", req.FileKey),
	)

	resp := toUserResponse(user)
	return &resp, nil
}
