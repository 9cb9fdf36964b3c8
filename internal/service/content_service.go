package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"social-feed-api/internal/domain"
	"social-feed-api/internal/dto"
	"social-feed-api/internal/metrics"
	"social-feed-api/internal/repository"
	"social-feed-api/internal/response"
)

// ContentService defines the interface for post and comment business logic
type ContentService interface {
	CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*dto.CreatePostResponse, error)
	CreateComment(ctx context.Context, postID uint, req *dto.CreateCommentRequest) (*dto.CreateCommentResponse, error)
	ReplyToComment(ctx context.Context, commentID uint, req *dto.ReplyToCommentRequest) (*dto.CreateCommentResponse, error)
	DeletePost(ctx context.Context, userID, postID uint) error
	GetReplies(ctx context.Context, commentID uint) ([]*dto.ReplyView, error)
}

// contentServiceImpl is the implementation of ContentService
type contentServiceImpl struct {
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	reactionRepo repository.ReactionRepository
	userRepo     repository.UserRepository
	groupRepo    repository.GroupRepository
	metrics      *metrics.Metrics
	logger       *zap.Logger
	now          func() time.Time
}

// NewContentService creates a new instance of ContentService
func NewContentService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	reactionRepo repository.ReactionRepository,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) ContentService {
	return &contentServiceImpl{
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		reactionRepo: reactionRepo,
		userRepo:     userRepo,
		groupRepo:    groupRepo,
		metrics:      m,
		logger:       logger,
		now:          time.Now,
	}
}

// CreatePost publishes a post into a group. The author only has to exist;
// group membership is not checked here.
func (s *contentServiceImpl) CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*dto.CreatePostResponse, error) {
	if req.Content == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Post content must not be empty", "")
	}

	exists, err := s.userRepo.Exists(ctx, req.UserID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify user", err.Error())
	}
	if !exists {
		return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
	}

	exists, err = s.groupRepo.Exists(ctx, req.GroupID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify group", err.Error())
	}
	if !exists {
		return nil, response.NewAppError(response.ErrCodeNotFound, "Group not found", "")
	}

	post := &domain.Post{
		Content:  req.Content,
		PostedAt: s.now(),
		AuthorID: req.UserID,
		GroupID:  req.GroupID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create post", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementPostCreated()
	}

	s.logger.Info("Post created",
		zap.Uint("post_id", post.ID),
		zap.Uint("author_id", req.UserID),
		zap.Uint("group_id", req.GroupID),
	)

	return &dto.CreatePostResponse{PostID: post.ID}, nil
}

// CreateComment attaches a top-level comment to a post
func (s *contentServiceImpl) CreateComment(ctx context.Context, postID uint, req *dto.CreateCommentRequest) (*dto.CreateCommentResponse, error) {
	if req.Content == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Comment content must not be empty", "")
	}

	exists, err := s.userRepo.Exists(ctx, req.UserID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify user", err.Error())
	}
	if !exists {
		return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
	}

	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch post", err.Error())
	}

	comment := &domain.Comment{
		Content:     req.Content,
		CommentedAt: s.now(),
		AuthorID:    req.UserID,
		PostID:      &postID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementCommentCreated()
	}

	return &dto.CreateCommentResponse{CommentID: comment.ID}, nil
}

// ReplyToComment attaches a reply to an existing comment. Replying to a
// reply chains through ParentID; nothing is flattened.
func (s *contentServiceImpl) ReplyToComment(ctx context.Context, commentID uint, req *dto.ReplyToCommentRequest) (*dto.CreateCommentResponse, error) {
	if req.Content == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Reply content must not be empty", "")
	}

	exists, err := s.userRepo.Exists(ctx, req.UserID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify user", err.Error())
	}
	if !exists {
		return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
	}

	if _, err := s.commentRepo.FindByID(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Comment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comment", err.Error())
	}

	reply := &domain.Comment{
		Content:     req.Content,
		CommentedAt: s.now(),
		AuthorID:    req.UserID,
		ParentID:    &commentID,
	}
	if err := s.commentRepo.Create(ctx, reply); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create reply", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementCommentCreated()
	}

	return &dto.CreateCommentResponse{CommentID: reply.ID}, nil
}

// DeletePost removes a post and everything hanging off it. Only the author
// may delete.
func (s *contentServiceImpl) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch post", err.Error())
	}

	if post.AuthorID != userID {
		return response.NewAppError(response.ErrCodeForbidden, "Only the author can delete a post", "")
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete post", err.Error())
	}

	s.logger.Info("Post deleted with its comments and reactions",
		zap.Uint("post_id", postID),
		zap.Uint("author_id", userID),
	)

	return nil
}

// GetReplies returns the replies to a comment in creation order
func (s *contentServiceImpl) GetReplies(ctx context.Context, commentID uint) ([]*dto.ReplyView, error) {
	if _, err := s.commentRepo.FindByID(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Comment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comment", err.Error())
	}

	replies, err := s.commentRepo.FindByParentID(ctx, commentID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch replies", err.Error())
	}

	views := make([]*dto.ReplyView, 0, len(replies))
	for _, reply := range replies {
		commenter, err := s.userRepo.FindByID(ctx, reply.AuthorID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch commenter", err.Error())
		}

		reactions, err := s.reactionRepo.FindByCommentID(ctx, reply.ID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch reply reactions", err.Error())
		}

		views = append(views, &dto.ReplyView{
			CommentID:      reply.ID,
			Commenter:      toUserResponse(commenter),
			CommentedAt:    reply.CommentedAt.Format(viewTimeLayout),
			CommentContent: reply.Content,
			Reactions:      summarizeReactions(reactions),
		})
	}

	return views, nil
}
