// Package layout describes the Launchpad Pro control surface as the M8
// emulator addresses it: which note/CC numbers exist, and what role each
// one plays on the virtual device.
package layout

// Role classifies a control number on the surface.
type Role int

const (
	RoleUnknown Role = iota
	RoleGridPad      // 8x8 main grid, notes 11-88
	RoleTrack        // top row track selectors, 91-98
	RoleNav          // right column navigation, 89/79/69/59
	RoleFunction     // bottom function buttons, 104-106
)

func (r Role) String() string {
	switch r {
	case RoleGridPad:
		return "grid"
	case RoleTrack:
		return "track"
	case RoleNav:
		return "nav"
	case RoleFunction:
		return "function"
	}
	return "unknown"
}

// NavDirection identifies one of the four navigation buttons.
type NavDirection int

const (
	NavNone NavDirection = iota
	NavUp
	NavRight
	NavDown
	NavLeft
)

func (d NavDirection) String() string {
	switch d {
	case NavUp:
		return "up"
	case NavRight:
		return "right"
	case NavDown:
		return "down"
	case NavLeft:
		return "left"
	}
	return "none"
}

// Function identifies one of the bottom-row function buttons.
type Function int

const (
	FnNone Function = iota
	FnOption
	FnEdit
	FnShift
)

// Launchpad Pro control numbers used by the M8 layout.
const (
	TrackFirst = 91 // track 0 selector; tracks run 91..98 left to right
	TrackLast  = 98

	NavUpNote    = 89
	NavRightNote = 79
	NavDownNote  = 69
	NavLeftNote  = 59

	OptionNote = 104
	EditNote   = 105
	ShiftNote  = 106

	NumTracks = 8
)

// Control is the resolved identity of a surface control: its role plus the
// coordinates that role defines. Fields outside the role are zero.
type Control struct {
	ID   uint8
	Role Role

	// RoleGridPad
	Row, Col int // 1..8, bottom-left pad is row 1 col 1

	// RoleTrack
	Track int // 0..7

	// RoleNav
	Dir NavDirection

	// RoleFunction
	Fn Function
}

// Discrete (non-range) controls, declared as data rather than scattered
// membership tests.
var discrete = map[uint8]Control{
	NavUpNote:    {ID: NavUpNote, Role: RoleNav, Dir: NavUp},
	NavRightNote: {ID: NavRightNote, Role: RoleNav, Dir: NavRight},
	NavDownNote:  {ID: NavDownNote, Role: RoleNav, Dir: NavDown},
	NavLeftNote:  {ID: NavLeftNote, Role: RoleNav, Dir: NavLeft},
	OptionNote:   {ID: OptionNote, Role: RoleFunction, Fn: FnOption},
	EditNote:     {ID: EditNote, Role: RoleFunction, Fn: FnEdit},
	ShiftNote:    {ID: ShiftNote, Role: RoleFunction, Fn: FnShift},
}

// Lookup resolves a control number to its role and coordinates. Unknown
// numbers resolve to RoleUnknown; they are never an error.
func Lookup(id uint8) Control {
	if c, ok := discrete[id]; ok {
		return c
	}

	if id >= TrackFirst && id <= TrackLast {
		return Control{ID: id, Role: RoleTrack, Track: int(id - TrackFirst)}
	}

	// Grid pads are the two-digit numbers whose digits are both 1..8:
	// note = row*10 + col, bottom-left is 11, top-right is 88.
	row := int(id / 10)
	col := int(id % 10)
	if row >= 1 && row <= 8 && col >= 1 && col <= 8 {
		return Control{ID: id, Role: RoleGridPad, Row: row, Col: col}
	}

	return Control{ID: id, Role: RoleUnknown}
}

// GridPads returns every grid pad control number in row-major order,
// bottom row first.
func GridPads() []uint8 {
	pads := make([]uint8, 0, 64)
	for row := 1; row <= 8; row++ {
		for col := 1; col <= 8; col++ {
			pads = append(pads, uint8(row*10+col))
		}
	}
	return pads
}

// TrackSelector returns the control number for track i (0..7).
func TrackSelector(i int) uint8 {
	return uint8(TrackFirst + i)
}

// NavButtons returns the four navigation control numbers.
func NavButtons() []uint8 {
	return []uint8{NavUpNote, NavRightNote, NavDownNote, NavLeftNote}
}
