package project

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildfy/backend/internal/feature"
	"github.com/buildfy/backend/internal/shared/types"
)

func newManager() *Manager {
	return NewManager(NewMemStore(), nil)
}

func TestCreateLoadRoundTrip(t *testing.T) {
	m := newManager()
	ctx := context.Background()

	p, err := m.Create(ctx, "My App", feature.TierPro)
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "My App", p.Name)
	assert.Equal(t, types.DefaultWindow(), p.Window)
	assert.Empty(t, p.Widgets)

	loaded, err := m.Load(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, loaded.ID)
	assert.Equal(t, "My App", loaded.Name)
}

func TestCreateDefaultName(t *testing.T) {
	p, err := newManager().Create(context.Background(), "", feature.TierPro)
	require.NoError(t, err)
	assert.Equal(t, "Untitled Project", p.Name)
}

func TestFreeTierProjectLimit(t *testing.T) {
	m := newManager()
	ctx := context.Background()

	for i := 0; i < feature.FreeMaxProjects; i++ {
		_, err := m.Create(ctx, "p", feature.TierFree)
		require.NoError(t, err)
	}

	_, err := m.Create(ctx, "one too many", feature.TierFree)
	assert.ErrorIs(t, err, ErrProjectLimit)

	// A paid tier is not capped
	_, err = m.Create(ctx, "fine", feature.TierStandard)
	assert.NoError(t, err)
}

func TestSaveStampsLastModified(t *testing.T) {
	m := newManager()
	ctx := context.Background()

	p, err := m.Create(ctx, "p", feature.TierPro)
	require.NoError(t, err)

	stamp := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return stamp }

	p.Widgets = append(p.Widgets, types.Widget{ID: "button-1", Type: types.TypeButton})
	require.NoError(t, m.Save(ctx, p))

	loaded, err := m.Load(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, stamp.Equal(loaded.LastModified))
	assert.Len(t, loaded.Widgets, 1)
}

func TestSaveRequiresID(t *testing.T) {
	err := newManager().Save(context.Background(), &types.Project{Name: "anon"})
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	m := newManager()
	ctx := context.Background()

	p, err := m.Create(ctx, "p", feature.TierPro)
	require.NoError(t, err)

	require.NoError(t, m.Delete(ctx, p.ID))
	_, err = m.Load(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, m.Delete(ctx, p.ID), ErrNotFound)
}

func TestListSortsByLastModified(t *testing.T) {
	m := newManager()
	ctx := context.Background()

	older, err := m.Create(ctx, "older", feature.TierPro)
	require.NoError(t, err)
	newer, err := m.Create(ctx, "newer", feature.TierPro)
	require.NoError(t, err)

	m.now = func() time.Time { return time.Now().Add(time.Hour) }
	require.NoError(t, m.Save(ctx, newer))

	summaries, err := m.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, newer.ID, summaries[0].ID)
	assert.Equal(t, older.ID, summaries[1].ID)
}
