package client

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MockAvatarStorage implements AvatarStorage for testing without AWS credentials
type MockAvatarStorage struct {
	Bucket   string
	Region   string
	Endpoint string

	// Optional function overrides for custom test behavior
	GenerateFileKeyFunc      func(userID uint, fileExt string) string
	GeneratePresignedURLFunc func(ctx context.Context, userID uint, fileName, contentType string) (string, string, error)
	DeleteFileFunc           func(ctx context.Context, key string) error
	GetFileURLFunc           func(key string) string
}

// NewMockAvatarStorage creates a new mock avatar storage for testing
func NewMockAvatarStorage() *MockAvatarStorage {
	return &MockAvatarStorage{
		Bucket: "test-bucket",
		Region: "ap-northeast-2",
	}
}

// GenerateFileKey generates a unique avatar key
func (m *MockAvatarStorage) GenerateFileKey(userID uint, fileExt string) string {
	if m.GenerateFileKeyFunc != nil {
		return m.GenerateFileKeyFunc(userID, fileExt)
	}

	now := time.Now()
	return fmt.Sprintf("avatars/%d/%d/%02d/%s_%d%s",
		userID, now.Year(), now.Month(), uuid.New().String(), now.UnixNano(), fileExt)
}

// GeneratePresignedURL generates a mock presigned URL for testing
func (m *MockAvatarStorage) GeneratePresignedURL(ctx context.Context, userID uint, fileName, contentType string) (string, string, error) {
	if m.GeneratePresignedURLFunc != nil {
		return m.GeneratePresignedURLFunc(ctx, userID, fileName, contentType)
	}

	fileExt := filepath.Ext(fileName)
	if fileExt == "" {
		fileExt = ".bin"
	}

	fileKey := m.GenerateFileKey(userID, fileExt)

	now := time.Now().UTC().Format("20060102T150405Z")
	presignedURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s?X-Amz-Algorithm=AWS4-HMAC-SHA256&X-Amz-Credential=test-access-key%%2F%s%%2F%s%%2Fs3%%2Faws4_request&X-Amz-Date=%s&X-Amz-Expires=300&X-Amz-SignedHeaders=host&X-Amz-Signature=mocksignature123",
		m.Bucket,
		m.Region,
		fileKey,
		time.Now().UTC().Format("20060102"),
		m.Region,
		now,
	)

	return presignedURL, fileKey, nil
}

// DeleteFile simulates avatar deletion
func (m *MockAvatarStorage) DeleteFile(ctx context.Context, key string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}
	return nil
}

// GetFileURL returns the public URL for an avatar key
func (m *MockAvatarStorage) GetFileURL(key string) string {
	if m.GetFileURLFunc != nil {
		return m.GetFileURLFunc(key)
	}

	if m.Endpoint != "" && !strings.Contains(m.Endpoint, "amazonaws.com") {
		return fmt.Sprintf("%s/%s/%s", m.Endpoint, m.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", m.Bucket, m.Region, key)
}

// Ensure MockAvatarStorage implements AvatarStorage
var _ AvatarStorage = (*MockAvatarStorage)(nil)
