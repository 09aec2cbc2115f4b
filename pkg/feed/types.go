package feed

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/umputun/moltwatch/pkg/domain"
)

// apiID accepts both string and numeric JSON identifiers
type apiID string

func (s *apiID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = apiID(v)
		return nil
	}
	*s = apiID(data)
	return nil
}

func (s apiID) String() string { return string(s) }

// apiTime accepts ISO 8601 strings and unix timestamps, the API is not
// consistent across endpoints
type apiTime struct {
	time.Time
}

func (t *apiTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
			if parsed, err := time.Parse(layout, s); err == nil {
				t.Time = parsed.UTC()
				return nil
			}
		}
		return nil // unknown layout, leave zero rather than fail the whole item
	}

	if sec, err := strconv.ParseFloat(string(data), 64); err == nil {
		t.Time = time.Unix(int64(sec), 0).UTC()
	}
	return nil
}

type apiPost struct {
	ID           apiID   `json:"id"`
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	URL          string  `json:"url"`
	Submolt      string  `json:"submolt"`
	AgentID      apiID   `json:"agent_id"`
	AuthorID     apiID   `json:"author_id"` // some endpoints use this name
	Score        int     `json:"score"`
	CommentCount int     `json:"comment_count"`
	NumComments  int     `json:"num_comments"`
	CreatedAt    apiTime `json:"created_at"`
}

func (p apiPost) toDomain() domain.Post {
	agentID := p.AgentID.String()
	if agentID == "" {
		agentID = p.AuthorID.String()
	}
	comments := p.CommentCount
	if comments == 0 {
		comments = p.NumComments
	}
	return domain.Post{
		ID:           p.ID.String(),
		Title:        p.Title,
		Content:      p.Content,
		URL:          p.URL,
		Submolt:      p.Submolt,
		AgentID:      agentID,
		Score:        p.Score,
		CommentCount: comments,
		CreatedAt:    p.CreatedAt.Time,
	}
}

type apiComment struct {
	ID        apiID   `json:"id"`
	ParentID  apiID   `json:"parent_id"`
	Content   string  `json:"content"`
	Body      string  `json:"body"`
	AgentID   apiID   `json:"agent_id"`
	AuthorID  apiID   `json:"author_id"`
	Score     int     `json:"score"`
	CreatedAt apiTime `json:"created_at"`
}

func (c apiComment) toDomain(postID string) domain.Comment {
	content := c.Content
	if content == "" {
		content = c.Body
	}
	agentID := c.AgentID.String()
	if agentID == "" {
		agentID = c.AuthorID.String()
	}
	return domain.Comment{
		ID:        c.ID.String(),
		PostID:    postID,
		ParentID:  c.ParentID.String(),
		Content:   content,
		AgentID:   agentID,
		Score:     c.Score,
		CreatedAt: c.CreatedAt.Time,
	}
}

type apiAgent struct {
	ID          apiID   `json:"id"`
	Name        string  `json:"name"`
	Username    string  `json:"username"`
	Description string  `json:"description"`
	Bio         string  `json:"bio"`
	Karma       int     `json:"karma"`
	TotalKarma  int     `json:"total_karma"`
	CreatedAt   apiTime `json:"created_at"`
}

func (a apiAgent) toDomain() domain.Agent {
	name := a.Name
	if name == "" {
		name = a.Username
	}
	id := a.ID.String()
	if id == "" {
		id = name
	}
	desc := a.Description
	if desc == "" {
		desc = a.Bio
	}
	karma := a.Karma
	if karma == 0 {
		karma = a.TotalKarma
	}
	return domain.Agent{ID: id, Name: name, Description: desc, Karma: karma, CreatedAt: a.CreatedAt.Time}
}

type apiSubmolt struct {
	Name            string  `json:"name"`
	DisplayName     string  `json:"display_name"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	SubscriberCount int     `json:"subscriber_count"`
	Subscribers     int     `json:"subscribers"`
	CreatedAt       apiTime `json:"created_at"`
}

func (s apiSubmolt) toDomain() domain.Submolt {
	display := s.DisplayName
	if display == "" {
		display = s.Title
	}
	subs := s.SubscriberCount
	if subs == 0 {
		subs = s.Subscribers
	}
	return domain.Submolt{
		Name:            s.Name,
		DisplayName:     display,
		Description:     s.Description,
		SubscriberCount: subs,
		CreatedAt:       s.CreatedAt.Time,
	}
}
