package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"social-feed-api/internal/client"
	"social-feed-api/internal/domain"
	"social-feed-api/internal/dto"
	"social-feed-api/internal/response"
)

func newUserService(userRepo *MockUserRepository, storage client.AvatarStorage) UserService {
	return NewUserService(userRepo, storage, zap.NewNop())
}

func TestCreateUser(t *testing.T) {
	t.Run("creates and returns the user", func(t *testing.T) {
		userRepo := &MockUserRepository{
			CreateFunc: func(ctx context.Context, user *domain.User) error {
				user.ID = 8
				return nil
			},
		}
		svc := newUserService(userRepo, nil)

		result, err := svc.CreateUser(context.Background(), &dto.CreateUserRequest{Name: "alice"})

		require.NoError(t, err)
		assert.Equal(t, uint(8), result.UserID)
		assert.Equal(t, "alice", result.Name)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		svc := newUserService(&MockUserRepository{}, nil)

		_, err := svc.CreateUser(context.Background(), &dto.CreateUserRequest{Name: ""})

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeValidation, appErr.Code)
	})
}

func TestGetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		userRepo := &MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*domain.User, error) {
				return &domain.User{ID: id, Name: "bob", ProfilePic: "https://cdn/pic.jpg"}, nil
			},
		}
		svc := newUserService(userRepo, nil)

		result, err := svc.GetUser(context.Background(), 2)

		require.NoError(t, err)
		assert.Equal(t, "bob", result.Name)
		assert.Equal(t, "https://cdn/pic.jpg", result.ProfilePic)
	})

	t.Run("missing is NOT_FOUND", func(t *testing.T) {
		userRepo := &MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*domain.User, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := newUserService(userRepo, nil)

		_, err := svc.GetUser(context.Background(), 2)

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
	})
}

func TestUpdateUser(t *testing.T) {
	name := "renamed"
	empty := ""

	t.Run("updates only the provided fields", func(t *testing.T) {
		var saved *domain.User
		userRepo := &MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*domain.User, error) {
				return &domain.User{ID: id, Name: "old", ProfilePic: "keep.jpg"}, nil
			},
			UpdateFunc: func(ctx context.Context, user *domain.User) error {
				saved = user
				return nil
			},
		}
		svc := newUserService(userRepo, nil)

		result, err := svc.UpdateUser(context.Background(), 2, &dto.UpdateUserRequest{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, "renamed", result.Name)
		require.NotNil(t, saved)
		assert.Equal(t, "keep.jpg", saved.ProfilePic)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		userRepo := &MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*domain.User, error) {
				return &domain.User{ID: id, Name: "old"}, nil
			},
		}
		svc := newUserService(userRepo, nil)

		_, err := svc.UpdateUser(context.Background(), 2, &dto.UpdateUserRequest{Name: &empty})

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeValidation, appErr.Code)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("deletes an existing user", func(t *testing.T) {
		deleted := false
		userRepo := &MockUserRepository{
			DeleteFunc: func(ctx context.Context, id uint) error {
				deleted = true
				return nil
			},
		}
		svc := newUserService(userRepo, nil)

		require.NoError(t, svc.DeleteUser(context.Background(), 2))
		assert.True(t, deleted)
	})

	t.Run("missing user is NOT_FOUND", func(t *testing.T) {
		userRepo := &MockUserRepository{
			ExistsFunc: func(ctx context.Context, id uint) (bool, error) {
				return false, nil
			},
		}
		svc := newUserService(userRepo, nil)

		err := svc.DeleteUser(context.Background(), 2)

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
	})
}

func TestPresignAvatarUpload(t *testing.T) {
	t.Run("returns upload URL and file key", func(t *testing.T) {
		storage := client.NewMockAvatarStorage()
		svc := newUserService(&MockUserRepository{}, storage)

		result, err := svc.PresignAvatarUpload(context.Background(), 2, &dto.AvatarPresignRequest{
			FileName:    "me.png",
			ContentType: "image/png",
		})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.FileKey, "avatars/2/"))
		assert.True(t, strings.HasSuffix(result.FileKey, ".png"))
		assert.Contains(t, result.UploadURL, result.FileKey)
	})

	t.Run("no storage configured is rejected", func(t *testing.T) {
		svc := newUserService(&MockUserRepository{}, nil)

		_, err := svc.PresignAvatarUpload(context.Background(), 2, &dto.AvatarPresignRequest{
			FileName:    "me.png",
			ContentType: "image/png",
		})

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeValidation, appErr.Code)
	})

	t.Run("missing user is NOT_FOUND", func(t *testing.T) {
		userRepo := &MockUserRepository{
			ExistsFunc: func(ctx context.Context, id uint) (bool, error) {
				return false, nil
			},
		}
		svc := newUserService(userRepo, client.NewMockAvatarStorage())

		_, err := svc.PresignAvatarUpload(context.Background(), 2, &dto.AvatarPresignRequest{
			FileName:    "me.png",
			ContentType: "image/png",
		})

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
	})
}

func TestConfirmAvatarUpload(t *testing.T) {
	storage := client.NewMockAvatarStorage()

	t.Run("stores the public URL", func(t *testing.T) {
		var saved *domain.User
		userRepo := &MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*domain.User, error) {
				return &domain.User{ID: id, Name: "carol"}, nil
			},
			UpdateFunc: func(ctx context.Context, user *domain.User) error {
				saved = user
				return nil
			},
		}
		svc := newUserService(userRepo, storage)

		result, err := svc.ConfirmAvatarUpload(context.Background(), 3, &dto.ConfirmAvatarRequest{
			FileKey: "avatars/3/2025/05/key.png",
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, storage.GetFileURL("avatars/3/2025/05/key.png"), saved.ProfilePic)
		assert.Equal(t, saved.ProfilePic, result.ProfilePic)
	})

	t.Run("empty file key is rejected", func(t *testing.T) {
		svc := newUserService(&MockUserRepository{}, storage)

		_, err := svc.ConfirmAvatarUpload(context.Background(), 3, &dto.ConfirmAvatarRequest{})

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeValidation, appErr.Code)
	})
}
