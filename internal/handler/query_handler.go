package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"social-feed-api/internal/response"
	"social-feed-api/internal/service"
)

// QueryHandler exposes the read-only row-level query endpoints
type QueryHandler struct {
	queryService service.QueryService
	feedService  service.FeedService
}

func NewQueryHandler(queryService service.QueryService, feedService service.FeedService) *QueryHandler {
	return &QueryHandler{
		queryService: queryService,
		feedService:  feedService,
	}
}

// ListUsers handles GET /queries/users
func (h *QueryHandler) ListUsers(c *gin.Context) {
	users, err := h.queryService.AllUsers(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, users)
}

// ListGroups handles GET /queries/groups
func (h *QueryHandler) ListGroups(c *gin.Context) {
	groups, err := h.queryService.AllGroups(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, groups)
}

// ListPosts handles GET /queries/posts
func (h *QueryHandler) ListPosts(c *gin.Context) {
	posts, err := h.queryService.AllPosts(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, posts)
}

// ListComments handles GET /queries/comments
func (h *QueryHandler) ListComments(c *gin.Context) {
	comments, err := h.queryService.AllComments(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, comments)
}

// ListReactions handles GET /queries/reactions
func (h *QueryHandler) ListReactions(c *gin.Context) {
	reactions, err := h.queryService.AllReactions(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, reactions)
}

// ListPostsByUser handles GET /queries/users/:userId/posts
func (h *QueryHandler) ListPostsByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	posts, err := h.queryService.PostsByUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, posts)
}

// ListCommentsByPost handles GET /queries/posts/:postId/comments
func (h *QueryHandler) ListCommentsByPost(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	comments, err := h.queryService.CommentsByPost(c.Request.Context(), postID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, comments)
}

// ListReactionsByPost handles GET /queries/posts/:postId/reactions
func (h *QueryHandler) ListReactionsByPost(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	reactions, err := h.queryService.ReactionsByPost(c.Request.Context(), postID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, reactions)
}

// ListUserPostsWithDetails handles
// GET /queries/users/:userId/posts-with-comments-and-reactions
func (h *QueryHandler) ListUserPostsWithDetails(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	views, err := h.feedService.UserPosts(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, views)
}
