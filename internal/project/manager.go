package project

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/buildfy/backend/internal/feature"
	"github.com/buildfy/backend/internal/shared/id"
	"github.com/buildfy/backend/internal/shared/types"
)

// ErrProjectLimit signals the tier's project cap is reached.
var ErrProjectLimit = fmt.Errorf("project limit reached")

// Manager is the CRUD surface over the Store, applying tier limits and
// maintaining lastModified.
type Manager struct {
	store Store
	log   *zap.Logger
	now   func() time.Time
}

// NewManager builds a Manager. log may be nil.
func NewManager(store Store, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{store: store, log: log, now: time.Now}
}

// Create makes a new project with a default window and empty canvas.
// Free-tier users are capped at feature.FreeMaxProjects.
func (m *Manager) Create(ctx context.Context, name string, tier feature.Tier) (*types.Project, error) {
	ids, err := m.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if !feature.CanCreateProject(tier, len(ids)) {
		return nil, fmt.Errorf("%w: tier %s allows %d projects",
			ErrProjectLimit, feature.Normalize(string(tier)), feature.MaxProjects(tier))
	}
	if name == "" {
		name = "Untitled Project"
	}

	p := &types.Project{
		ID:           id.NewProjectID().String(),
		Name:         name,
		Widgets:      []types.Widget{},
		Window:       types.DefaultWindow(),
		LastModified: m.now(),
	}
	if err := m.write(ctx, p); err != nil {
		return nil, err
	}
	m.log.Info("project created", zap.String("project_id", p.ID), zap.String("name", name))
	return p, nil
}

// Load reads one project.
func (m *Manager) Load(ctx context.Context, projectID string) (*types.Project, error) {
	data, err := m.store.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	var p types.Project
	if err := sonic.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode project %s: %w", projectID, err)
	}
	return &p, nil
}

// Save persists the project, stamping lastModified.
func (m *Manager) Save(ctx context.Context, p *types.Project) error {
	if p.ID == "" {
		return fmt.Errorf("project id required")
	}
	p.LastModified = m.now()
	return m.write(ctx, p)
}

// Delete removes a project.
func (m *Manager) Delete(ctx context.Context, projectID string) error {
	if err := m.store.Delete(ctx, projectID); err != nil {
		return err
	}
	m.log.Info("project deleted", zap.String("project_id", projectID))
	return nil
}

// List returns dashboard summaries, most recently modified first.
func (m *Manager) List(ctx context.Context) ([]types.ProjectSummary, error) {
	ids, err := m.store.List(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]types.ProjectSummary, 0, len(ids))
	for _, pid := range ids {
		p, err := m.Load(ctx, pid)
		if err != nil {
			m.log.Warn("skipping unreadable project", zap.String("project_id", pid), zap.Error(err))
			continue
		}
		summaries = append(summaries, types.ProjectSummary{
			ID:           p.ID,
			Name:         p.Name,
			LastModified: p.LastModified,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].LastModified.Equal(summaries[j].LastModified) {
			return summaries[i].LastModified.After(summaries[j].LastModified)
		}
		return summaries[i].ID < summaries[j].ID
	})
	return summaries, nil
}

// Count returns how many projects exist.
func (m *Manager) Count(ctx context.Context) (int, error) {
	ids, err := m.store.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

func (m *Manager) write(ctx context.Context, p *types.Project) error {
	data, err := sonic.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode project %s: %w", p.ID, err)
	}
	return m.store.Set(ctx, p.ID, data)
}
