package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"social-feed-api/internal/response"
	"social-feed-api/internal/service"
)

type FeedHandler struct {
	feedService service.FeedService
}

func NewFeedHandler(feedService service.FeedService) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
	}
}

// GetGroupFeed handles GET /groups/:groupId/feed
func (h *FeedHandler) GetGroupFeed(c *gin.Context) {
	groupID, ok := parseIDParam(c, "groupId")
	if !ok {
		return
	}
	userID, ok := parseIDQuery(c, "userId")
	if !ok {
		return
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid offset")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid limit")
		return
	}

	feed, err := h.feedService.GroupFeed(c.Request.Context(), userID, groupID, offset, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, feed)
}

// GetPostView handles GET /posts/:postId/view
func (h *FeedHandler) GetPostView(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	view, err := h.feedService.PostView(c.Request.Context(), postID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, view)
}

// GetUserPosts handles GET /users/:userId/feed
func (h *FeedHandler) GetUserPosts(c *gin.Context) {
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

// GetPostsWithMoreCommentsThanReactions handles
// GET /analytics/posts/more-comments-than-reactions
func (h *FeedHandler) GetPostsWithMoreCommentsThanReactions(c *gin.Context) {
	ids, err := h.feedService.PostsWithMoreCommentsThanReactions(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, ids)
}

// GetPostsWithMorePositiveReactions handles
// GET /analytics/posts/more-positive-reactions
func (h *FeedHandler) GetPostsWithMorePositiveReactions(c *gin.Context) {
	posts, err := h.feedService.PostsWithMorePositiveReactions(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, posts)
}

// GetSilentGroupMembers handles GET /groups/:groupId/silent-members
func (h *FeedHandler) GetSilentGroupMembers(c *gin.Context) {
	groupID, ok := parseIDParam(c, "groupId")
	if !ok {
		return
	}

	members, err := h.feedService.SilentGroupMembers(c.Request.Context(), groupID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, members)
}
