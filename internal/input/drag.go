package input

// Drag tracks whether a button is held and where the pointer last mapped to.
// It belongs to the host's input layer; the mapper itself is stateless.
type Drag struct {
	active   bool
	col, row int
	moved    bool
}

// Press starts a drag at the given grid position.
func (d *Drag) Press(col, row int) {
	d.active = true
	d.col, d.row = col, row
	d.moved = false
}

// Release ends the drag.
func (d *Drag) Release() {
	d.active = false
	d.moved = false
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool { return d.active }

// Move records a new pointer position and reports whether the grid cell
// changed since the last call. Moves outside an active drag are ignored.
func (d *Drag) Move(col, row int) bool {
	if !d.active {
		return false
	}
	if col == d.col && row == d.row {
		return false
	}
	d.col, d.row = col, row
	d.moved = true
	return true
}

// Moved reports whether the pointer has left the press cell during this drag.
func (d *Drag) Moved() bool { return d.moved }

// Position returns the last recorded grid position.
func (d *Drag) Position() (int, int) { return d.col, d.row }
