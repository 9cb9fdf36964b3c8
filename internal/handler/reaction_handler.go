package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"social-feed-api/internal/dto"
	"social-feed-api/internal/response"
	"social-feed-api/internal/service"
)

type ReactionHandler struct {
	reactionService service.ReactionService
}

func NewReactionHandler(reactionService service.ReactionService) *ReactionHandler {
	return &ReactionHandler{
		reactionService: reactionService,
	}
}

// ReactToPost handles POST /posts/:postId/reactions
func (h *ReactionHandler) ReactToPost(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	var req dto.ReactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	if err := h.reactionService.ReactToPost(c.Request.Context(), postID, &req); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// ReactToComment handles POST /comments/:commentId/reactions
func (h *ReactionHandler) ReactToComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	var req dto.ReactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	if err := h.reactionService.ReactToComment(c.Request.Context(), commentID, &req); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// GetReactionTally handles GET /posts/:postId/reactions/tally
func (h *ReactionHandler) GetReactionTally(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	tally, err := h.reactionService.ReactionTally(c.Request.Context(), postID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, tally)
}

// GetReactors handles GET /posts/:postId/reactors
func (h *ReactionHandler) GetReactors(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	reactors, err := h.reactionService.Reactors(c.Request.Context(), postID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, reactors)
}

// GetTotalReactionCount handles GET /reactions/count
func (h *ReactionHandler) GetTotalReactionCount(c *gin.Context) {
	result, err := h.reactionService.TotalReactionCount(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// GetPostsReactedByUser handles GET /users/:userId/reacted-posts
func (h *ReactionHandler) GetPostsReactedByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	postIDs, err := h.reactionService.PostsReactedByUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, postIDs)
}
