package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/edgeboard/edgeboard-engine/pkg/apperrors"
	"github.com/edgeboard/edgeboard-engine/pkg/models"
	"github.com/edgeboard/edgeboard-engine/pkg/store"
	"github.com/edgeboard/edgeboard-engine/pkg/views"
)

// teamMembersLimit caps the team overview widget.
const teamMembersLimit = 6

// TeamViewService composes the team widget and the user-management table.
type TeamViewService interface {
	// TeamMembers excludes the current user and any user with no department
	// or a non-positive performance score, then truncates to the first 6 in
	// the order received. No sorting happens here: the upstream order is
	// assumed to already be the display ranking (the intended sort key is
	// not expressed anywhere in the data).
	TeamMembers(ctx context.Context) ([]views.TeamMember, error)
	// ManagedUsers excludes only the current user; everything else passes
	// through regardless of completeness, with role and status unvalidated.
	ManagedUsers(ctx context.Context) ([]views.ManagedUser, error)
}

type teamViewService struct {
	users  store.UserStore
	logger *zap.Logger
}

// NewTeamViewService creates the team composer.
func NewTeamViewService(users store.UserStore, logger *zap.Logger) TeamViewService {
	return &teamViewService{
		users:  users,
		logger: logger.Named("team-views"),
	}
}

var _ TeamViewService = (*teamViewService)(nil)

// fetch reads the user collection and the current user's id concurrently. A
// missing current-user row only disables the exclusion; it does not fail the
// page.
func (s *teamViewService) fetch(ctx context.Context) ([]models.User, string, error) {
	var (
		users     []models.User
		currentID string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.users.Users(gctx)
		return err
	})
	g.Go(func() error {
		current, err := s.users.CurrentUser(gctx)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		currentID = current.ID
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to read users", zap.Error(err))
		return nil, "", err
	}
	return users, currentID, nil
}

func (s *teamViewService) TeamMembers(ctx context.Context) ([]views.TeamMember, error) {
	users, currentID, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]views.TeamMember, 0, teamMembersLimit)
	for _, u := range users {
		if u.ID == currentID || u.Department == "" || u.Performance <= 0 {
			continue
		}
		out = append(out, views.TeamMember{
			ID:           u.ID,
			Name:         u.DisplayName(),
			Role:         u.Role,
			Department:   u.Department,
			Availability: u.Availability,
			Performance:  u.Performance,
			Strengths:    u.Strengths,
			Dimensions:   u.Dimensions,
			Status:       u.Status,
		})
		if len(out) == teamMembersLimit {
			break
		}
	}
	return out, nil
}

func (s *teamViewService) ManagedUsers(ctx context.Context) ([]views.ManagedUser, error) {
	users, currentID, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]views.ManagedUser, 0, len(users))
	for _, u := range users {
		if u.ID == currentID {
			continue
		}
		out = append(out, views.ManagedUser{
			ID:         u.ID,
			Name:       u.DisplayName(),
			Email:      u.Email,
			Role:       u.Role,
			Department: u.Department,
			Status:     u.Status,
		})
	}
	return out, nil
}
