package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/edgeboard/edgeboard-engine/pkg/models"
	"github.com/edgeboard/edgeboard-engine/pkg/store"
	"github.com/edgeboard/edgeboard-engine/pkg/views"
)

// EdgeViewService composes the edge inventory and the per-idea edge form.
type EdgeViewService interface {
	// EdgeList joins every edge with its idea title and child counts.
	// Unset confidence stays absent here; only the form view defaults it.
	EdgeList(ctx context.Context) ([]views.EdgeListItem, error)
	// EdgeDataForIdea is the reverse 1:1 lookup from idea to edge, with
	// outcome and metric nesting. Returns (nil, nil) when the idea has no
	// edge; that is a legitimate state, not an error.
	EdgeDataForIdea(ctx context.Context, ideaID string, dir *UserDirectory) (*views.EdgeData, error)
	// EdgeDataWithConfidence wraps EdgeDataForIdea for form pre-fill: a
	// missing edge yields the canonical empty structure and confidence
	// defaults to medium either way.
	EdgeDataWithConfidence(ctx context.Context, ideaID string, dir *UserDirectory) (*views.EdgeData, error)
}

type edgeViewService struct {
	edges  store.EdgeStore
	ideas  store.IdeaStore
	users  store.UserStore
	logger *zap.Logger
}

// NewEdgeViewService creates the edge composer.
func NewEdgeViewService(edges store.EdgeStore, ideas store.IdeaStore, users store.UserStore, logger *zap.Logger) EdgeViewService {
	return &edgeViewService{
		edges:  edges,
		ideas:  ideas,
		users:  users,
		logger: logger.Named("edge-views"),
	}
}

var _ EdgeViewService = (*edgeViewService)(nil)

// edgeRows is the fan-out read shared by the edge compositions.
type edgeRows struct {
	edges    []models.Edge
	outcomes []models.EdgeOutcome
	metrics  []models.EdgeMetric
}

func (s *edgeViewService) fetchRows(ctx context.Context) (*edgeRows, error) {
	var rows edgeRows

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows.edges, err = s.edges.Edges(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rows.outcomes, err = s.edges.EdgeOutcomes(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rows.metrics, err = s.edges.EdgeMetrics(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to read edge collections", zap.Error(err))
		return nil, err
	}
	return &rows, nil
}

func (s *edgeViewService) EdgeList(ctx context.Context) ([]views.EdgeListItem, error) {
	var (
		rows  *edgeRows
		ideas []models.Idea
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.fetchRows(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		ideas, err = s.ideas.Ideas(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	titleByIdea := make(map[string]string, len(ideas))
	for _, idea := range ideas {
		titleByIdea[idea.ID] = idea.Title
	}

	outcomesByEdge := GroupBy(rows.outcomes, func(o models.EdgeOutcome) string { return o.EdgeID })
	metricsByOutcome := GroupBy(rows.metrics, func(m models.EdgeMetric) string { return m.OutcomeID })

	out := make([]views.EdgeListItem, 0, len(rows.edges))
	for _, e := range rows.edges {
		outcomes := outcomesByEdge.Get(e.ID)

		// Two-level join: the edge's outcome ids select the metrics.
		metricsCount := 0
		for _, o := range outcomes {
			metricsCount += len(metricsByOutcome.Get(o.ID))
		}

		out = append(out, views.EdgeListItem{
			ID:            e.ID,
			IdeaID:        e.IdeaID,
			IdeaTitle:     titleByIdea[e.IdeaID],
			Status:        StatusOrMissing(e.Status),
			Confidence:    string(e.Confidence),
			OutcomesCount: len(outcomes),
			MetricsCount:  metricsCount,
		})
	}
	return out, nil
}

func (s *edgeViewService) EdgeDataForIdea(ctx context.Context, ideaID string, dir *UserDirectory) (*views.EdgeData, error) {
	rows, err := s.fetchRows(ctx)
	if err != nil {
		return nil, err
	}

	var edge *models.Edge
	for i := range rows.edges {
		if rows.edges[i].IdeaID == ideaID {
			edge = &rows.edges[i]
			break
		}
	}
	if edge == nil {
		return nil, nil
	}

	metricsByOutcome := GroupBy(rows.metrics, func(m models.EdgeMetric) string { return m.OutcomeID })

	outcomes := make([]views.Outcome, 0)
	for _, o := range rows.outcomes {
		if o.EdgeID != edge.ID {
			continue
		}
		metrics := make([]views.Metric, 0)
		for _, m := range metricsByOutcome.Get(o.ID) {
			metrics = append(metrics, views.Metric{
				ID:      m.ID,
				Name:    m.Name,
				Target:  m.Target,
				Unit:    m.Unit,
				Current: m.Current,
			})
		}
		outcomes = append(outcomes, views.Outcome{
			ID:          o.ID,
			Description: o.Description,
			Metrics:     metrics,
		})
	}

	if dir == nil {
		dir = NewUserDirectory(s.users, s.logger)
	}
	owner, err := dir.ResolveOptional(ctx, edge.Owner)
	if err != nil {
		return nil, err
	}

	completion := DeriveEdgeCompletion(edge, outcomes, owner)

	status := edge.Status
	if status == "" {
		status = completion.StatusLabel()
	}

	return &views.EdgeData{
		EdgeID:     edge.ID,
		IdeaID:     edge.IdeaID,
		Owner:      owner,
		Status:     status,
		Confidence: string(edge.Confidence),
		Impact: views.Impact{
			ShortTerm: edge.ImpactShortTerm,
			MidTerm:   edge.ImpactMidTerm,
			LongTerm:  edge.ImpactLongTerm,
		},
		Outcomes:          outcomes,
		CompletionPercent: completion.Percent(),
		IsComplete:        completion.IsComplete(),
	}, nil
}

func (s *edgeViewService) EdgeDataWithConfidence(ctx context.Context, ideaID string, dir *UserDirectory) (*views.EdgeData, error) {
	data, err := s.EdgeDataForIdea(ctx, ideaID, dir)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return &views.EdgeData{
			IdeaID:     ideaID,
			Owner:      "",
			Status:     EdgeStatusMissing,
			Confidence: string(models.ConfidenceMedium),
			Outcomes:   []views.Outcome{},
		}, nil
	}
	data.Confidence = ConfidenceOrMedium(models.Confidence(data.Confidence))
	return data, nil
}
