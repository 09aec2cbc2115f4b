package domain

import "time"

// Post represents a fetched Moltbook post
type Post struct {
	ID           string
	Title        string
	Content      string
	URL          string
	Submolt      string
	AgentID      string
	Score        int
	CommentCount int
	CreatedAt    time.Time

	// derived and assigned during processing
	ContentHash  string
	Themes       []string // ordered by score, max 5
	Confidence   float64
	Sentiment    *float64 // polarity in [-1, 1], nil when no content or scorer absent
	Unclassified bool     // no theme scored above the minimal threshold

	FirstSeenAt time.Time
	LastSeenAt  time.Time
}

// Comment represents a fetched Moltbook comment
type Comment struct {
	ID        string
	PostID    string
	ParentID  string
	Content   string
	AgentID   string
	Score     int
	CreatedAt time.Time
}

// Agent represents a Moltbook agent (author) profile
type Agent struct {
	ID          string
	Name        string
	Description string
	Karma       int
	CreatedAt   time.Time
}

// Submolt represents a Moltbook community
type Submolt struct {
	Name            string
	DisplayName     string
	Description     string
	SubscriberCount int
	CreatedAt       time.Time
}
