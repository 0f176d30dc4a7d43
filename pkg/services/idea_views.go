package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/edgeboard/edgeboard-engine/pkg/jsonutil"
	"github.com/edgeboard/edgeboard-engine/pkg/models"
	"github.com/edgeboard/edgeboard-engine/pkg/store"
	"github.com/edgeboard/edgeboard-engine/pkg/views"
)

// IdeaViewService composes the idea pages. Methods that resolve user names
// accept an optional shared UserDirectory; nil makes the service build its
// own for the call.
type IdeaViewService interface {
	// ListIdeas fetches all ideas and composes the list view. Output length
	// and order match the stored collection exactly.
	ListIdeas(ctx context.Context, dir *UserDirectory) ([]views.Idea, error)
	// ComposeIdeas is ListIdeas over rows the caller already holds.
	ComposeIdeas(ctx context.Context, raw []models.Idea, dir *UserDirectory) ([]views.Idea, error)
	// ReviewQueue returns ideas with a readiness assessment, tagged with
	// their priority tier.
	ReviewQueue(ctx context.Context) ([]views.ReviewIdea, error)
	// IdeaForConversion joins an idea with its optional scoring record; the
	// record's fields win once it exists.
	IdeaForConversion(ctx context.Context, id string) (*views.ConversionIdea, error)
	// IdeaForApproval joins an idea with its submitter name and parses the
	// stored risk/assumption/alignment lists, empty on parse failure.
	IdeaForApproval(ctx context.Context, id string, dir *UserDirectory) (*views.ApprovalIdea, error)
}

type ideaViewService struct {
	ideas  store.IdeaStore
	users  store.UserStore
	logger *zap.Logger
}

// NewIdeaViewService creates the idea composer.
func NewIdeaViewService(ideas store.IdeaStore, users store.UserStore, logger *zap.Logger) IdeaViewService {
	return &ideaViewService{
		ideas:  ideas,
		users:  users,
		logger: logger.Named("idea-views"),
	}
}

var _ IdeaViewService = (*ideaViewService)(nil)

func (s *ideaViewService) directory(dir *UserDirectory) *UserDirectory {
	if dir != nil {
		return dir
	}
	return NewUserDirectory(s.users, s.logger)
}

func (s *ideaViewService) ListIdeas(ctx context.Context, dir *UserDirectory) ([]views.Idea, error) {
	raw, err := s.ideas.Ideas(ctx)
	if err != nil {
		s.logger.Error("Failed to list ideas", zap.Error(err))
		return nil, err
	}
	return s.ComposeIdeas(ctx, raw, dir)
}

func (s *ideaViewService) ComposeIdeas(ctx context.Context, raw []models.Idea, dir *UserDirectory) ([]views.Idea, error) {
	dir = s.directory(dir)

	out := make([]views.Idea, 0, len(raw))
	for _, idea := range raw {
		submitter, err := dir.Resolve(ctx, idea.SubmittedBy)
		if err != nil {
			return nil, err
		}
		out = append(out, views.Idea{
			ID:          idea.ID,
			Title:       idea.Title,
			Score:       idea.Score,
			Status:      idea.Status,
			EdgeStatus:  idea.EdgeStatus,
			Category:    idea.Category,
			Readiness:   idea.Readiness,
			SubmittedBy: submitter,
		})
	}
	return out, nil
}

func (s *ideaViewService) ReviewQueue(ctx context.Context) ([]views.ReviewIdea, error) {
	raw, err := s.ideas.Ideas(ctx)
	if err != nil {
		s.logger.Error("Failed to load review queue", zap.Error(err))
		return nil, err
	}

	out := make([]views.ReviewIdea, 0, len(raw))
	for _, idea := range raw {
		if idea.Readiness == "" {
			continue
		}
		out = append(out, views.ReviewIdea{
			ID:         idea.ID,
			Title:      idea.Title,
			Score:      idea.Score,
			Priority:   PriorityTier(idea.Score),
			EdgeStatus: StatusOrMissing(idea.EdgeStatus),
			Readiness:  ReadinessOrIncomplete(idea.Readiness),
			Category:   idea.Category,
		})
	}
	return out, nil
}

func (s *ideaViewService) IdeaForConversion(ctx context.Context, id string) (*views.ConversionIdea, error) {
	var (
		idea  *models.Idea
		score *models.IdeaScore
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		idea, err = s.ideas.Idea(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		score, err = s.ideas.IdeaScore(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &views.ConversionIdea{
		ID:       idea.ID,
		Title:    idea.Title,
		Problem:  idea.Problem,
		Solution: idea.Solution,
		Outcome:  idea.Outcome,
		Category: idea.Category,
		Score:    idea.Score,
		Time:     idea.EstimatedTime,
		Cost:     idea.EstimatedCost,
	}
	if score != nil {
		// The scoring record is authoritative once computed.
		out.Score = score.Overall
		out.Time = score.Time
		out.Cost = score.Cost
		out.Scored = true
	}
	return out, nil
}

func (s *ideaViewService) IdeaForApproval(ctx context.Context, id string, dir *UserDirectory) (*views.ApprovalIdea, error) {
	idea, err := s.ideas.Idea(ctx, id)
	if err != nil {
		return nil, err
	}

	submitter, err := s.directory(dir).Resolve(ctx, idea.SubmittedBy)
	if err != nil {
		return nil, err
	}

	return &views.ApprovalIdea{
		ID:          idea.ID,
		Title:       idea.Title,
		SubmittedBy: submitter,
		Problem:     idea.Problem,
		Solution:    idea.Solution,
		Outcome:     idea.Outcome,
		Risks:       jsonutil.StringListOrDefault(idea.Risks, []string{}),
		Assumptions: jsonutil.StringListOrDefault(idea.Assumptions, []string{}),
		Alignments:  jsonutil.StringListOrDefault(idea.Alignments, []string{}),
	}, nil
}
