package service

import (
	"social-feed-api/internal/domain"
	"social-feed-api/internal/dto"
)

// viewTimeLayout is the timestamp format used in assembled feed views
const viewTimeLayout = "2006-01-02 15:04:05"

// toUserResponse converts a domain.User to the user summary shape
func toUserResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		UserID:     user.ID,
		Name:       user.Name,
		ProfilePic: user.ProfilePic,
	}
}

// summarizeReactions folds reaction rows into {count, distinct kinds}.
// Kind order is first-seen, matching insertion order of the rows.
func summarizeReactions(reactions []*domain.Reaction) dto.ReactionSummary {
	kinds := make([]domain.ReactionKind, 0)
	seen := make(map[domain.ReactionKind]bool)
	for _, reaction := range reactions {
		if !seen[reaction.Kind] {
			seen[reaction.Kind] = true
			kinds = append(kinds, reaction.Kind)
		}
	}
	return dto.ReactionSummary{
		Count: len(reactions),
		Type:  kinds,
	}
}
