package session

// Virtual key codes, as documented for the scripting API. F8 is the
// conventional execute key on report selection screens.
const (
	VKeyEnter        = 0
	VKeyF2           = 2
	VKeyF3           = 3 // Back
	VKeyF5           = 5
	VKeyF6           = 6
	VKeyF7           = 7
	VKeyF8           = 8 // Execute
	VKeyF9           = 9
	VKeyF12          = 12 // Cancel
	VKeyShiftF4      = 16 // Save As
	VKeyCtrlShiftF12 = 36
)

// VKeyNames maps CLI-friendly key names to codes.
var VKeyNames = map[string]int{
	"enter":          VKeyEnter,
	"f2":             VKeyF2,
	"f3":             VKeyF3,
	"back":           VKeyF3,
	"f5":             VKeyF5,
	"f6":             VKeyF6,
	"f7":             VKeyF7,
	"f8":             VKeyF8,
	"execute":        VKeyF8,
	"f9":             VKeyF9,
	"f12":            VKeyF12,
	"cancel":         VKeyF12,
	"shift-f4":       VKeyShiftF4,
	"ctrl-shift-f12": VKeyCtrlShiftF12,
}
