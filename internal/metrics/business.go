package metrics

// IncrementPostCreated increments the post creation counter
func (m *Metrics) IncrementPostCreated() {
	m.safeExecute("IncrementPostCreated", func() {
		m.PostCreatedTotal.Inc()
	})
}

// IncrementGroupCreated increments the group creation counter
func (m *Metrics) IncrementGroupCreated() {
	m.safeExecute("IncrementGroupCreated", func() {
		m.GroupCreatedTotal.Inc()
	})
}

// IncrementCommentCreated increments the comment creation counter
func (m *Metrics) IncrementCommentCreated() {
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentCreatedTotal.Inc()
	})
}

// IncrementReactionRecorded increments the reaction recorded counter
func (m *Metrics) IncrementReactionRecorded() {
	m.safeExecute("IncrementReactionRecorded", func() {
		m.ReactionRecordedTotal.Inc()
	})
}

// SetUsersTotal sets the total users gauge
func (m *Metrics) SetUsersTotal(count int64) {
	m.safeExecute("SetUsersTotal", func() {
		m.UsersTotal.Set(float64(count))
	})
}

// SetGroupsTotal sets the total groups gauge
func (m *Metrics) SetGroupsTotal(count int64) {
	m.safeExecute("SetGroupsTotal", func() {
		m.GroupsTotal.Set(float64(count))
	})
}

// SetPostsTotal sets the total posts gauge
func (m *Metrics) SetPostsTotal(count int64) {
	m.safeExecute("SetPostsTotal", func() {
		m.PostsTotal.Set(float64(count))
	})
}

// SetReactionsTotal sets the total reactions gauge
func (m *Metrics) SetReactionsTotal(count int64) {
	m.safeExecute("SetReactionsTotal", func() {
		m.ReactionsTotal.Set(float64(count))
	})
}
