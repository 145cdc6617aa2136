package entity

// Cell - the content of a board position: either empty or a mark held by an Owner.
// The zero value is an empty cell; the only way to build a marked cell is Mark.
type Cell struct {
	owner Owner
}

// EmptyCell - a cell without a mark.
var EmptyCell = Cell{}

// Mark - returns a cell marked by owner. owner must be OwnerA or OwnerB;
// callers holding an unchecked Owner test IsValid first.
func Mark(owner Owner) Cell {
	return Cell{owner: owner}
}

func (that Cell) IsEmpty() bool {
	return that.owner == 0
}

// Owner - reports who holds the cell; ok is false for an empty cell.
func (that Cell) Owner() (Owner, bool) {
	if that.IsEmpty() {
		return 0, false
	}
	return that.owner, true
}

// HeldBy - true if the cell is marked by owner.
func (that Cell) HeldBy(owner Owner) bool {
	return !that.IsEmpty() && that.owner == owner
}

func (that Cell) Symbol() rune {
	if that.IsEmpty() {
		return '.'
	}
	return that.owner.Symbol()
}

func (that Cell) String() string {
	if that.IsEmpty() {
		return "Empty"
	}
	return "Mark(" + that.owner.String() + ")"
}
