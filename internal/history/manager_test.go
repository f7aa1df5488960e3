package history

import (
	"testing"
	"time"

	"github.com/buildfy/backend/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(ids ...string) []types.Widget {
	ws := make([]types.Widget, 0, len(ids))
	for _, wid := range ids {
		ws = append(ws, types.Widget{
			ID:   wid,
			Type: types.TypeButton,
			Size: types.Size{Width: 120, Height: 40},
		})
	}
	return ws
}

// withClock pins the manager to a controllable clock.
func withClock(m *Manager) *time.Time {
	now := time.Unix(1700000000, 0)
	m.now = func() time.Time { return now }
	return &now
}

func TestUndoRedoSingleEdit(t *testing.T) {
	m := New(snapshot("a"))

	m.Record(snapshot("a", "b"), ActionAddComponent)

	var restored []types.Widget
	require.True(t, m.Undo(func(s []types.Widget) { restored = s }))
	assert.Equal(t, snapshot("a"), restored)

	require.True(t, m.Redo(func(s []types.Widget) { restored = s }))
	assert.Equal(t, snapshot("a", "b"), restored)
}

func TestUndoAtInitialEntry(t *testing.T) {
	m := New(snapshot("a"))

	assert.False(t, m.Undo(nil))
	assert.False(t, m.CanUndo())
}

func TestRedoWithoutUndo(t *testing.T) {
	m := New(nil)
	m.Record(snapshot("a"), ActionAddComponent)

	assert.False(t, m.Redo(nil))
}

func TestIdenticalSnapshotSkipped(t *testing.T) {
	m := New(snapshot("a"))

	m.Record(snapshot("a"), ActionUpdate)

	assert.Equal(t, 0, m.Depth())
}

func TestRapidUpdatesCoalesce(t *testing.T) {
	m := New(snapshot("a"))
	now := withClock(m)

	m.Record(snapshot("a", "b"), ActionAddComponent)
	for i := 0; i < 50; i++ {
		*now = now.Add(5 * time.Millisecond)
		m.Record(snapshot("a", "c"), ActionUpdate)
		m.Record(snapshot("a", "d"), ActionUpdate)
	}

	// The add plus one coalesced update
	assert.Equal(t, 2, m.Depth())

	var restored []types.Widget
	require.True(t, m.Undo(func(s []types.Widget) { restored = s }))
	assert.Equal(t, snapshot("a", "b"), restored)
}

func TestUpdatesBeyondWindowDoNotCoalesce(t *testing.T) {
	m := New(snapshot("a"))
	now := withClock(m)

	m.Record(snapshot("b"), ActionUpdate)
	*now = now.Add(CoalesceWindow + time.Millisecond)
	m.Record(snapshot("c"), ActionUpdate)

	assert.Equal(t, 2, m.Depth())
}

func TestActionChangeBreaksCoalescing(t *testing.T) {
	m := New(snapshot("a"))
	now := withClock(m)

	m.Record(snapshot("b"), ActionUpdate)
	*now = now.Add(time.Millisecond)
	m.Record(snapshot("c"), ActionAddComponent)
	*now = now.Add(time.Millisecond)
	m.Record(snapshot("d"), ActionUpdate)

	assert.Equal(t, 3, m.Depth())
}

func TestCoalescingNeverReplacesInitialEntry(t *testing.T) {
	m := New(snapshot("a"))
	withClock(m)

	m.Record(snapshot("b"), ActionUpdate)

	var restored []types.Widget
	require.True(t, m.Undo(func(s []types.Widget) { restored = s }))
	assert.Equal(t, snapshot("a"), restored)
}

func TestNewEditClearsRedo(t *testing.T) {
	m := New(snapshot("a"))

	m.Record(snapshot("b"), ActionAddComponent)
	require.True(t, m.Undo(nil))
	require.True(t, m.CanRedo())

	m.Record(snapshot("c"), ActionAddComponent)
	assert.False(t, m.CanRedo())
}

func TestRecordSuppressedWhileRestoring(t *testing.T) {
	m := New(snapshot("a"))
	m.Record(snapshot("b"), ActionAddComponent)

	require.True(t, m.Undo(func(s []types.Widget) {
		// Simulates a listener echoing the restored state back
		m.Record(s, ActionUpdate)
	}))

	assert.Equal(t, 0, m.Depth())
	assert.True(t, m.CanRedo())
}

func TestUndoBreaksCoalescingChain(t *testing.T) {
	m := New(snapshot("a"))
	withClock(m)

	m.Record(snapshot("b"), ActionUpdate)
	require.True(t, m.Undo(nil))
	require.True(t, m.Redo(nil))
	m.Record(snapshot("c"), ActionUpdate)

	// The post-redo update must not collapse into the redone entry
	assert.Equal(t, 2, m.Depth())
}

func TestSnapshotsAreIsolated(t *testing.T) {
	m := New(nil)
	live := snapshot("a")
	live[0].Props = map[string]interface{}{"text": "before"}

	m.Record(live, ActionAddComponent)
	live[0].Props["text"] = "after"

	var restored []types.Widget
	m.Record(snapshot("b"), ActionAddComponent)
	require.True(t, m.Undo(func(s []types.Widget) { restored = s }))
	assert.Equal(t, "before", restored[0].Props["text"])
}
