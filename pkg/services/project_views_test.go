package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edgeboard/edgeboard-engine/pkg/apperrors"
	"github.com/edgeboard/edgeboard-engine/pkg/store"
)

func newProjectService(seed store.EntityStore) ProjectViewService {
	edges := NewEdgeViewService(seed, seed, seed, zap.NewNop())
	return NewProjectViewService(seed, seed, seed, edges, zap.NewNop())
}

func TestListProjectsPassthrough(t *testing.T) {
	svc := newProjectService(seedStore())

	out, err := svc.ListProjects(context.Background())
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, "p1", out[0].ID)
	assert.Equal(t, "approved", out[0].Status)
	assert.Equal(t, 88, out[0].PriorityScore)
	assert.Equal(t, "u-ada", out[0].Lead)
	assert.Equal(t, "i1", out[0].LinkedIdeaID)
}

func TestProjectDetail(t *testing.T) {
	svc := newProjectService(seedStore())

	detail, err := svc.ProjectDetail(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "Onboarding revamp", detail.Project.Title)
	assert.Equal(t, "Ada Lovelace", detail.LeadName)

	require.Len(t, detail.Team, 2)
	assert.Equal(t, "Grace Hopper", detail.Team[0].Name)
	// Dangling user reference resolves to the sentinel.
	assert.Equal(t, UnknownUserName, detail.Team[1].Name)

	require.Len(t, detail.Tasks, 1)
	assert.Equal(t, "Grace Hopper", detail.Tasks[0].AssigneeName)
	assert.Equal(t, []string{"go", "react"}, detail.Tasks[0].Skills)

	require.Len(t, detail.Discussions, 1)
	assert.Equal(t, "Ada Lovelace", detail.Discussions[0].Author)

	assert.Len(t, detail.Milestones, 1)
	assert.Len(t, detail.Versions, 1)

	// Nested edge composition keyed by the linked idea.
	assert.Equal(t, "e1", detail.Edge.EdgeID)
	assert.Len(t, detail.Edge.Outcomes, 2)
	assert.Equal(t, "medium", detail.Edge.Confidence)
}

func TestProjectDetailNoLinkedIdea(t *testing.T) {
	svc := newProjectService(seedStore())

	// p2 links no idea: the edge lookup falls back to the project id, finds
	// nothing and yields the canonical empty edge. Never an error.
	detail, err := svc.ProjectDetail(context.Background(), "p2")
	require.NoError(t, err)

	assert.Empty(t, detail.Edge.Outcomes)
	assert.Equal(t, "medium", detail.Edge.Confidence)
	assert.Equal(t, "p2", detail.Edge.IdeaID)
}

func TestProjectDetailFailFast(t *testing.T) {
	boom := errors.New("tasks down")
	seed := &failingStore{Memory: seedStore(), tasksErr: boom}
	svc := newProjectService(seed)

	_, err := svc.ProjectDetail(context.Background(), "p1")
	assert.ErrorIs(t, err, boom)
}

func TestProjectDetailMissingProject(t *testing.T) {
	svc := newProjectService(seedStore())

	_, err := svc.ProjectDetail(context.Background(), "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProjectForEngineering(t *testing.T) {
	svc := newProjectService(seedStore())
	ctx := context.Background()

	out, err := svc.ProjectForEngineering(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "slow signup", out.Problem)
	assert.Equal(t, "activation up", out.ExpectedOutcome)
	assert.Equal(t, []string{"activation 60%"}, out.SuccessMetrics)
	assert.Equal(t, []string{"no schema changes"}, out.Constraints)
	require.NotNil(t, out.Idea)
	assert.Equal(t, "i1", out.Idea.ID)
	assert.Equal(t, "Ada Lovelace", out.Idea.SubmittedBy)
}

func TestProjectForEngineeringMalformedContext(t *testing.T) {
	svc := newProjectService(seedStore())

	// p2's business context is not JSON: every field defaults independently
	// and no idea is joined because none is linked.
	out, err := svc.ProjectForEngineering(context.Background(), "p2")
	require.NoError(t, err)
	assert.Equal(t, "", out.Problem)
	assert.Equal(t, "", out.ExpectedOutcome)
	assert.Equal(t, []string{}, out.SuccessMetrics)
	assert.Equal(t, []string{}, out.Constraints)
	assert.Nil(t, out.Idea)
}

func TestClarifications(t *testing.T) {
	svc := newProjectService(seedStore())

	out, err := svc.Clarifications(context.Background(), "p1", nil)
	require.NoError(t, err)
	require.Len(t, out, 2)

	pending := out[0]
	assert.Equal(t, "Grace Hopper", pending.AskedBy)
	assert.Equal(t, "pending", pending.Status)
	// Unanswered: no answer fields at all.
	assert.Equal(t, "", pending.Answer)
	assert.Equal(t, "", pending.AnsweredBy)
	assert.Equal(t, "", pending.AnsweredAt)

	answered := out[1]
	assert.Equal(t, "40k all-in", answered.Answer)
	assert.Equal(t, "Ada Lovelace", answered.AnsweredBy)
	assert.Equal(t, "2026-08-02", answered.AnsweredAt)
}
