package scheduler

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/moltwatch/pkg/backoff"
	"github.com/umputun/moltwatch/pkg/dedup"
	"github.com/umputun/moltwatch/pkg/domain"
	"github.com/umputun/moltwatch/pkg/feed"
	"github.com/umputun/moltwatch/pkg/ratelimit"
)

// runPipeline executes one fetch-dedup-classify-persist cycle for the
// endpoint and returns the number of items the feed handed back
func (s *Scheduler) runPipeline(ctx context.Context, ep *endpoint) (int, error) {
	if err := s.waitBudget(ctx, ep.def.budget); err != nil {
		return 0, err
	}
	if ep.def.sort == "" {
		return s.pollSubmolts(ctx, ep)
	}
	return s.pollPosts(ctx, ep)
}

// waitBudget blocks until the shared rate budget frees a slot for the
// category, returns early only on context cancellation
func (s *Scheduler) waitBudget(ctx context.Context, budget ratelimit.Budget) error {
	for !s.budget.CanRequest(budget) {
		wait := s.budget.WaitTime()
		if wait <= 0 {
			wait = time.Second
		}
		s.metrics.BudgetWait()
		lgr.Printf("[DEBUG] budget %s exhausted, waiting %s", budget, wait)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil
}

// pollPosts fetches a page of posts and runs each through dedup,
// classification and persistence in feed order. LastPostID advances to the
// newest item observed only after the whole batch lands, so a failed batch is
// re-fetched next time.
func (s *Scheduler) pollPosts(ctx context.Context, ep *endpoint) (int, error) {
	start := time.Now()
	posts, err := s.feed.Posts(ctx, ep.def.sort, s.cfg.FetchLimit, ep.poll.LastPostID)
	s.budget.RecordRequest(ep.def.budget)
	s.recordRateHeaders()
	s.metrics.FetchLatency(time.Since(start))
	if err != nil {
		return 0, fmt.Errorf("fetch %s: %w", ep.def.name, err)
	}
	if len(posts) == 0 {
		return 0, nil
	}

	themes, err := s.store.GetThemes(ctx, true)
	if err != nil {
		return 0, fmt.Errorf("load active themes: %w", err)
	}

	var commentTargets []string
	for i := range posts {
		firstSeen, err := s.processPost(ctx, ep, &posts[i], themes)
		if err != nil {
			return 0, err
		}
		if firstSeen && s.cfg.IncludeComments && posts[i].CommentCount > 0 {
			commentTargets = append(commentTargets, posts[i].ID)
		}
	}

	// the feed returns newest first
	ep.poll.LastPostID = posts[0].ID

	if len(commentTargets) > 0 {
		s.fetchCommentBatch(ctx, commentTargets)
	}
	return len(posts), nil
}

// processPost runs dedup strictly before classification so theme post counts
// only move on first-seen items. Returns whether the post was new.
func (s *Scheduler) processPost(ctx context.Context, ep *endpoint, post *domain.Post, themes []domain.Theme) (bool, error) {
	post.ContentHash = dedup.ContentHash(post.ID, post.AgentID, post.Title, post.Submolt)

	dup, err := s.dedup.IsDuplicate(ctx, post)
	if err != nil {
		return false, fmt.Errorf("dedup check %s: %w", post.ID, err)
	}
	if dup {
		s.metrics.ItemDuplicate(ep.def.name)
		return false, nil
	}

	res := s.classifier.Classify(ctx, post.Title+"\n"+post.Content, themes)
	post.Themes = res.Assigned
	post.Confidence = res.Confidence
	post.Unclassified = res.Unclassified
	if s.sentiment != nil {
		post.Sentiment = s.sentiment(post.Content)
	}
	now := s.nowFunc()
	post.FirstSeenAt, post.LastSeenAt = now, now

	s.dbMutex.Lock()
	err = s.store.SavePost(ctx, post, res.Matched)
	s.dbMutex.Unlock()
	if err != nil {
		return false, fmt.Errorf("save post %s: %w", post.ID, err)
	}

	// the post is saved, a failed mark only means one extra dedup miss later
	if err := s.dedup.MarkSeen(ctx, post); err != nil {
		lgr.Printf("[WARN] failed to mark post %s seen: %v", post.ID, err)
	}
	s.metrics.ItemProcessed(ep.def.name)
	return true, nil
}

// fetchCommentBatch pulls comments for first-seen posts with a bounded number
// of concurrent requests. Comment failures never fail the post batch.
func (s *Scheduler) fetchCommentBatch(ctx context.Context, postIDs []string) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.MaxConcurrentComments)
	for _, id := range postIDs {
		g.Go(func() error {
			if err := s.fetchComments(gctx, id); err != nil {
				lgr.Printf("[WARN] failed to fetch comments for %s: %v", id, err)
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, they log instead
}

// fetchComments pulls and stores the top comments for one post
func (s *Scheduler) fetchComments(ctx context.Context, postID string) error {
	if err := s.waitBudget(ctx, ratelimit.BudgetComments); err != nil {
		return err
	}
	comments, err := s.feed.Comments(ctx, postID, feed.CommentsTop, s.cfg.CommentLimit)
	s.budget.RecordRequest(ratelimit.BudgetComments)
	s.recordRateHeaders()
	if err != nil {
		return fmt.Errorf("fetch comments: %w", err)
	}

	for i := range comments {
		s.dbMutex.Lock()
		err := s.store.SaveComment(ctx, &comments[i])
		s.dbMutex.Unlock()
		if err != nil {
			return fmt.Errorf("save comment %s: %w", comments[i].ID, err)
		}
	}
	return nil
}

// pollSubmolts refreshes the community directory, no dedup or classification
func (s *Scheduler) pollSubmolts(ctx context.Context, ep *endpoint) (int, error) {
	start := time.Now()
	subs, err := s.feed.Submolts(ctx)
	s.budget.RecordRequest(ep.def.budget)
	s.recordRateHeaders()
	s.metrics.FetchLatency(time.Since(start))
	if err != nil {
		return 0, fmt.Errorf("fetch %s: %w", ep.def.name, err)
	}

	for i := range subs {
		s.dbMutex.Lock()
		err := s.store.SaveSubmolt(ctx, &subs[i])
		s.dbMutex.Unlock()
		if err != nil {
			return 0, fmt.Errorf("save submolt %s: %w", subs[i].Name, err)
		}
	}
	return len(subs), nil
}

// recordRateHeaders feeds the latest server-reported rate limit state into the
// shared budget tracker
func (s *Scheduler) recordRateHeaders() {
	if info := s.feed.LastRateInfo(); info.Present {
		s.budget.UpdateFromHeaders(info.Limit, info.Remaining, info.ResetAt)
	}
}

// classifyError maps a pipeline failure to a backoff class and an optional
// server-provided minimum wait
func classifyError(err error, now time.Time) (backoff.ErrClass, time.Duration) {
	var apiErr *feed.APIError
	if errors.As(err, &apiErr) {
		return backoff.ClassifyStatus(apiErr.StatusCode), backoff.ParseRetryAfter(apiErr.RetryAfter, now)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return backoff.ClassTimeout, 0
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return backoff.ClassTimeout, 0
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return backoff.ClassConnection, 0
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return backoff.ClassConnection, 0
	}
	return backoff.ClassUnknown, 0
}
