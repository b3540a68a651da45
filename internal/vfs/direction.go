package vfs

// Direction is which way a sync copies data.
type Direction int

const (
	// Load copies persistent storage into the in-memory filesystem.
	Load Direction = iota
	// Save copies the in-memory filesystem into persistent storage.
	Save
)

func DirectionFromLoad(isLoad bool) Direction {
	if isLoad {
		return Load
	}
	return Save
}

func (d Direction) IsLoad() bool {
	return d == Load
}

func (d Direction) String() string {
	if d == Load {
		return "load"
	}
	return "save"
}
