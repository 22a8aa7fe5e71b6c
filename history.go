package easel

// History is a linear undo/redo stack of full-buffer snapshots.
//
// Snapshots record the buffer as it stood *before* each committed edit
// (copy-on-write: the Surface captures the copy when a stroke starts and
// commits it when the stroke finishes). The cursor counts committed,
// undoable edits; it sits in [0, len(snapshots)].
//
// Undo is symmetric: before stepping back it saves the current live
// buffer into the slot it is vacating, so a later redo restores that
// state bit-for-bit rather than merely discarding forward history.
// Committing a new checkpoint while undone truncates everything at and
// beyond the cursor; new edits invalidate redo history.
//
// History never retains the live buffer it is handed; it stores copies
// only. It is owned by a Surface and shares its single-owner model.
type History struct {
	snapshots []*PixBuf
	cursor    int
}

// Checkpoint commits an edit whose pre-edit state is pre.
// Any redo tail beyond the cursor is discarded first. History takes
// ownership of pre; callers must pass a copy they will not mutate.
func (h *History) Checkpoint(pre *PixBuf) {
	h.snapshots = append(h.snapshots[:h.cursor], pre)
	h.cursor = len(h.snapshots)
}

// Undo steps back one edit. It returns the buffer to make live and true,
// or nil and false when there is nothing to undo (cursor at 0).
//
// live is the current live buffer; it is copied into the vacated slot so
// a subsequent Redo can restore it exactly.
func (h *History) Undo(live *PixBuf) (*PixBuf, bool) {
	if h.cursor == 0 {
		return nil, false
	}
	saved := live.Clone()
	if h.cursor == len(h.snapshots) {
		h.snapshots = append(h.snapshots, saved)
	} else {
		h.snapshots[h.cursor] = saved
	}
	h.cursor--
	return h.snapshots[h.cursor].Clone(), true
}

// Redo steps forward one edit. It returns the buffer to make live and
// true, or nil and false when the cursor is already at the last snapshot.
func (h *History) Redo() (*PixBuf, bool) {
	if h.cursor >= len(h.snapshots)-1 {
		return nil, false
	}
	h.cursor++
	return h.snapshots[h.cursor].Clone(), true
}

// CanUndo reports whether an Undo would change the live buffer.
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether a Redo would change the live buffer.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.snapshots)-1
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}

// Cursor returns the current cursor position.
func (h *History) Cursor() int {
	return h.cursor
}

// Reset discards all snapshots. Called when a new canvas is loaded.
func (h *History) Reset() {
	h.snapshots = nil
	h.cursor = 0
}
