package repository

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/umputun/moltwatch/pkg/domain"
)

// StringList stores a []string as a JSON TEXT column
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal string list: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("unexpected type %T for string list", value)
	}
	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, l)
}

// KeywordMap stores a map[string]float64 as a JSON TEXT column
type KeywordMap map[string]float64

// Value implements driver.Valuer
func (m KeywordMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal keyword map: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (m *KeywordMap) Scan(value any) error {
	if value == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("unexpected type %T for keyword map", value)
	}
	if len(data) == 0 {
		*m = nil
		return nil
	}
	return json.Unmarshal(data, m)
}

// DetailsMap stores a map[string]any as a JSON TEXT column
type DetailsMap map[string]any

// Value implements driver.Valuer
func (m DetailsMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal details: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (m *DetailsMap) Scan(value any) error {
	if value == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("unexpected type %T for details", value)
	}
	if len(data) == 0 {
		*m = nil
		return nil
	}
	return json.Unmarshal(data, m)
}

type dbPost struct {
	ID           string          `db:"id"`
	Title        string          `db:"title"`
	Content      string          `db:"content"`
	URL          string          `db:"url"`
	Submolt      string          `db:"submolt"`
	AgentID      string          `db:"agent_id"`
	Score        int             `db:"score"`
	CommentCount int             `db:"comment_count"`
	CreatedAt    sql.NullTime    `db:"created_at"`
	ContentHash  string          `db:"content_hash"`
	Themes       StringList      `db:"themes"`
	Confidence   float64         `db:"confidence"`
	Sentiment    sql.NullFloat64 `db:"sentiment"`
	Unclassified bool            `db:"unclassified"`
	FirstSeenAt  time.Time       `db:"first_seen_at"`
	LastSeenAt   time.Time       `db:"last_seen_at"`
}

func (p *dbPost) toDomain() *domain.Post {
	post := &domain.Post{
		ID:           p.ID,
		Title:        p.Title,
		Content:      p.Content,
		URL:          p.URL,
		Submolt:      p.Submolt,
		AgentID:      p.AgentID,
		Score:        p.Score,
		CommentCount: p.CommentCount,
		ContentHash:  p.ContentHash,
		Themes:       p.Themes,
		Confidence:   p.Confidence,
		Unclassified: p.Unclassified,
		FirstSeenAt:  p.FirstSeenAt,
		LastSeenAt:   p.LastSeenAt,
	}
	if p.CreatedAt.Valid {
		post.CreatedAt = p.CreatedAt.Time
	}
	if p.Sentiment.Valid {
		v := p.Sentiment.Float64
		post.Sentiment = &v
	}
	return post
}

type dbTheme struct {
	Name         string       `db:"name"`
	Description  string       `db:"description"`
	Keywords     KeywordMap   `db:"keywords"`
	Goals        StringList   `db:"goals"`
	Parent       string       `db:"parent"`
	PostCount    int          `db:"post_count"`
	CreatedAt    time.Time    `db:"created_at"`
	DeprecatedAt sql.NullTime `db:"deprecated_at"`
}

func (t *dbTheme) toDomain() domain.Theme {
	theme := domain.Theme{
		Name:        t.Name,
		Description: t.Description,
		Keywords:    t.Keywords,
		Goals:       t.Goals,
		Parent:      t.Parent,
		PostCount:   t.PostCount,
		CreatedAt:   t.CreatedAt,
	}
	if t.DeprecatedAt.Valid {
		v := t.DeprecatedAt.Time
		theme.DeprecatedAt = &v
	}
	return theme
}

type dbChangelogEntry struct {
	ID         string       `db:"id"`
	Action     string       `db:"action"`
	Themes     StringList   `db:"themes"`
	Details    DetailsMap   `db:"details"`
	CreatedAt  time.Time    `db:"created_at"`
	ReviewedAt sql.NullTime `db:"reviewed_at"`
	ReviewedBy string       `db:"reviewed_by"`
	Approved   sql.NullBool `db:"approved"`
}

func (e *dbChangelogEntry) toDomain() domain.ChangelogEntry {
	entry := domain.ChangelogEntry{
		ID:         e.ID,
		Action:     domain.ChangeAction(e.Action),
		Themes:     e.Themes,
		Details:    e.Details,
		CreatedAt:  e.CreatedAt,
		ReviewedBy: e.ReviewedBy,
	}
	if e.ReviewedAt.Valid {
		v := e.ReviewedAt.Time
		entry.ReviewedAt = &v
	}
	if e.Approved.Valid {
		v := e.Approved.Bool
		entry.Approved = &v
	}
	return entry
}

type dbPollState struct {
	Endpoint     string       `db:"endpoint"`
	LastPostID   string       `db:"last_post_id"`
	LastPollAt   sql.NullTime `db:"last_poll_at"`
	NextPollAt   sql.NullTime `db:"next_poll_at"`
	ErrorCount   int          `db:"error_count"`
	LastError    string       `db:"last_error"`
	FetchedLast  int          `db:"fetched_last"`
	FetchedTotal int          `db:"fetched_total"`
}

func (s *dbPollState) toDomain() domain.EndpointPollState {
	state := domain.EndpointPollState{
		Endpoint:     s.Endpoint,
		LastPostID:   s.LastPostID,
		ErrorCount:   s.ErrorCount,
		LastError:    s.LastError,
		FetchedLast:  s.FetchedLast,
		FetchedTotal: s.FetchedTotal,
	}
	if s.LastPollAt.Valid {
		v := s.LastPollAt.Time
		state.LastPollAt = &v
	}
	if s.NextPollAt.Valid {
		v := s.NextPollAt.Time
		state.NextPollAt = &v
	}
	return state
}
