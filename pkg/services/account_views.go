package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/edgeboard/edgeboard-engine/pkg/models"
	"github.com/edgeboard/edgeboard-engine/pkg/store"
	"github.com/edgeboard/edgeboard-engine/pkg/views"
)

// AccountViewService composes the account, profile and workspace pages.
type AccountViewService interface {
	// Account joins the account row with the company settings row.
	Account(ctx context.Context) (*views.Account, error)
	// Profile is the current user's own profile.
	Profile(ctx context.Context) (*views.Profile, error)
	// ActivityFeed joins each feed entry with its actor's display name.
	ActivityFeed(ctx context.Context, dir *UserDirectory) ([]views.Activity, error)
	// NotificationCategories joins each category with the current user's
	// preference; a category without a stored preference is fully opted out.
	NotificationCategories(ctx context.Context) ([]views.NotificationCategory, error)
	// CrunchColumns and Processes are passthrough workspace lookups backing
	// the board view.
	CrunchColumns(ctx context.Context) ([]views.CrunchColumn, error)
	Processes(ctx context.Context) ([]views.Process, error)
}

type accountViewService struct {
	workspace store.WorkspaceStore
	users     store.UserStore
	logger    *zap.Logger
}

// NewAccountViewService creates the account composer.
func NewAccountViewService(workspace store.WorkspaceStore, users store.UserStore, logger *zap.Logger) AccountViewService {
	return &accountViewService{
		workspace: workspace,
		users:     users,
		logger:    logger.Named("account-views"),
	}
}

var _ AccountViewService = (*accountViewService)(nil)

func (s *accountViewService) Account(ctx context.Context) (*views.Account, error) {
	var (
		account  *models.Account
		settings *models.CompanySettings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		account, err = s.workspace.Account(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		settings, err = s.workspace.CompanySettings(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to compose account view", zap.Error(err))
		return nil, err
	}

	return &views.Account{
		Name:            account.Name,
		Email:           account.Email,
		Plan:            account.Plan,
		Timezone:        settings.Timezone,
		Currency:        settings.Currency,
		FiscalYearStart: settings.FiscalYearStart,
	}, nil
}

func (s *accountViewService) Profile(ctx context.Context) (*views.Profile, error) {
	u, err := s.users.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return &views.Profile{
		ID:         u.ID,
		Name:       u.DisplayName(),
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
		Phone:      u.Phone,
		Bio:        u.Bio,
	}, nil
}

func (s *accountViewService) ActivityFeed(ctx context.Context, dir *UserDirectory) ([]views.Activity, error) {
	rows, err := s.workspace.Activities(ctx)
	if err != nil {
		s.logger.Error("Failed to read activities", zap.Error(err))
		return nil, err
	}

	if dir == nil {
		dir = NewUserDirectory(s.users, s.logger)
	}

	out := make([]views.Activity, 0, len(rows))
	for _, a := range rows {
		actor, err := dir.Resolve(ctx, a.Actor)
		if err != nil {
			return nil, err
		}
		out = append(out, views.Activity{
			ID:        a.ID,
			Actor:     actor,
			Action:    a.Action,
			Target:    a.Target,
			CreatedAt: a.CreatedAt,
		})
	}
	return out, nil
}

func (s *accountViewService) NotificationCategories(ctx context.Context) ([]views.NotificationCategory, error) {
	var (
		categories  []models.NotificationCategory
		preferences []models.NotificationPreference
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = s.workspace.NotificationCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		preferences, err = s.workspace.NotificationPreferences(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to compose notification categories", zap.Error(err))
		return nil, err
	}

	prefByCategory := make(map[string]models.NotificationPreference, len(preferences))
	for _, p := range preferences {
		prefByCategory[p.CategoryID] = p
	}

	out := make([]views.NotificationCategory, 0, len(categories))
	for _, c := range categories {
		pref := prefByCategory[c.ID]
		out = append(out, views.NotificationCategory{
			ID:          c.ID,
			Key:         c.Key,
			Label:       c.Label,
			Description: c.Description,
			Email:       pref.Email,
			InApp:       pref.InApp,
		})
	}
	return out, nil
}

func (s *accountViewService) CrunchColumns(ctx context.Context) ([]views.CrunchColumn, error) {
	rows, err := s.workspace.CrunchColumns(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]views.CrunchColumn, 0, len(rows))
	for _, c := range rows {
		out = append(out, views.CrunchColumn{ID: c.ID, Key: c.Key, Title: c.Title, Order: c.Order})
	}
	return out, nil
}

func (s *accountViewService) Processes(ctx context.Context) ([]views.Process, error) {
	rows, err := s.workspace.Processes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]views.Process, 0, len(rows))
	for _, p := range rows {
		out = append(out, views.Process{ID: p.ID, Name: p.Name, Status: p.Status})
	}
	return out, nil
}
