package history

import (
	"bytes"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/buildfy/backend/internal/shared/types"
)

// ActionType classifies the edit that produced a snapshot.
type ActionType string

const (
	ActionInit         ActionType = "INIT"
	ActionAddComponent ActionType = "ADD_COMPONENT"
	ActionUpdate       ActionType = "UPDATE_COMPONENT"
	ActionDelete       ActionType = "DELETE_COMPONENT"
)

// CoalesceWindow bounds how far apart two UPDATE_COMPONENT records may
// be and still collapse into a single undo step. A continuous drag
// records on every pointer move; without coalescing it would produce
// hundreds of entries.
const CoalesceWindow = 300 * time.Millisecond

// Entry is one undoable state: a deep copy of the widget list plus the
// action that produced it.
type Entry struct {
	Snapshot []types.Widget
	Action   ActionType
}

// Manager keeps undo/redo stacks of widget-list snapshots.
type Manager struct {
	mu         sync.Mutex
	undo       []Entry
	redo       []Entry
	lastPush   time.Time
	lastAction ActionType
	restoring  bool
	now        func() time.Time
}

// New seeds the undo stack with the initial widget list so Undo can
// never walk past the project's opening state.
func New(initial []types.Widget) *Manager {
	return &Manager{
		undo: []Entry{{Snapshot: types.CloneWidgets(initial), Action: ActionInit}},
		now:  time.Now,
	}
}

// Record pushes a snapshot onto the undo stack and clears the redo
// stack. Snapshots structurally identical to the current top are
// dropped. Consecutive UPDATE_COMPONENT records inside CoalesceWindow
// replace the top instead of appending. Records issued while an
// undo/redo is applying its snapshot are suppressed.
func (m *Manager) Record(widgets []types.Widget, action ActionType) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.restoring {
		return
	}
	top := &m.undo[len(m.undo)-1]
	if structurallyEqual(top.Snapshot, widgets) {
		return
	}

	entry := Entry{Snapshot: types.CloneWidgets(widgets), Action: action}
	now := m.now()

	if action == ActionUpdate && m.lastAction == ActionUpdate &&
		len(m.undo) > 1 && now.Sub(m.lastPush) < CoalesceWindow {
		*top = entry
	} else {
		m.undo = append(m.undo, entry)
	}
	m.redo = nil
	m.lastPush = now
	m.lastAction = action
}

// Undo steps back one entry, invoking apply with a copy of the restored
// snapshot while recording is suppressed. Returns false when only the
// initial entry remains. apply runs without the manager's lock held so
// it may call back into Record; such echoes are dropped.
func (m *Manager) Undo(apply func(snapshot []types.Widget)) bool {
	m.mu.Lock()
	if len(m.undo) <= 1 {
		m.mu.Unlock()
		return false
	}
	top := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, top)
	snap := types.CloneWidgets(m.undo[len(m.undo)-1].Snapshot)
	m.beginRestoreLocked()
	m.mu.Unlock()

	m.applyAndFinish(apply, snap)
	return true
}

// Redo reapplies the most recently undone entry.
func (m *Manager) Redo(apply func(snapshot []types.Widget)) bool {
	m.mu.Lock()
	if len(m.redo) == 0 {
		m.mu.Unlock()
		return false
	}
	entry := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, entry)
	snap := types.CloneWidgets(entry.Snapshot)
	m.beginRestoreLocked()
	m.mu.Unlock()

	m.applyAndFinish(apply, snap)
	return true
}

func (m *Manager) beginRestoreLocked() {
	m.restoring = true
	// A jump breaks the coalescing chain
	m.lastAction = ""
}

func (m *Manager) applyAndFinish(apply func([]types.Widget), snapshot []types.Widget) {
	if apply != nil {
		apply(snapshot)
	}
	m.mu.Lock()
	m.restoring = false
	m.mu.Unlock()
}

// CanUndo reports whether an edit is available to revert.
func (m *Manager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undo) > 1
}

// CanRedo reports whether an undone edit is available to reapply.
func (m *Manager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.redo) > 0
}

// Depth returns the number of undoable edits.
func (m *Manager) Depth() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undo) - 1
}

func structurallyEqual(a, b []types.Widget) bool {
	ab, err := sonic.Marshal(a)
	if err != nil {
		return false
	}
	bb, err := sonic.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ab, bb)
}
