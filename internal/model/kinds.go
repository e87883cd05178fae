package model

// Kind is the interaction capability of a control. Every resolved control is
// tagged with exactly one Kind; accessors validate the Kind before acting.
type Kind string

const (
	KindText     Kind = "text"     // GuiTextField / GuiCTextField
	KindLabel    Kind = "label"    // GuiLabel (read-only text)
	KindCheckbox Kind = "checkbox" // GuiCheckBox
	KindRadio    Kind = "radio"    // GuiRadioButton
	KindCombo    Kind = "combo"    // GuiComboBox
	KindButton   Kind = "button"   // GuiButton
	KindTab      Kind = "tab"      // GuiTab
	KindGrid     Kind = "grid"     // GuiGridView
	KindTable    Kind = "table"    // GuiTableControl
	KindWindow   Kind = "window"   // GuiMainWindow / GuiModalWindow
	KindShell    Kind = "shell"    // GuiShell containers
	KindUnknown  Kind = "unknown"  // anything else; address and raw type only
)

// TypeMap maps raw scripting types to capability kinds.
var TypeMap = map[string]Kind{
	"GuiTextField":      KindText,
	"GuiCTextField":     KindText,
	"GuiPasswordField":  KindText,
	"GuiLabel":          KindLabel,
	"GuiCheckBox":       KindCheckbox,
	"GuiRadioButton":    KindRadio,
	"GuiComboBox":       KindCombo,
	"GuiButton":         KindButton,
	"GuiTab":            KindTab,
	"GuiGridView":       KindGrid,
	"GuiTableControl":   KindTable,
	"GuiMainWindow":     KindWindow,
	"GuiModalWindow":    KindWindow,
	"GuiFrameWindow":    KindWindow,
	"GuiShell":          KindShell,
	"GuiContainerShell": KindShell,
}

// MapType converts a raw scripting type to a Kind, KindUnknown when unmapped.
func MapType(rawType string) Kind {
	if k, ok := TypeMap[rawType]; ok {
		return k
	}
	return KindUnknown
}

// Address prefixes encode the control type in the scripting ID, e.g.
// "wnd[0]/usr/ctxtGD-TAB". PrefixKind maps each prefix to its capability.
var PrefixKind = map[string]Kind{
	"ctxt": KindText,
	"txt":  KindText,
	"lbl":  KindLabel,
	"chk":  KindCheckbox,
	"rad":  KindRadio,
	"cmb":  KindCombo,
	"btn":  KindButton,
	"tabp": KindTab,
}

// PrefixType maps an address prefix to the raw scripting type used by
// name+type lookups.
var PrefixType = map[string]string{
	"ctxt": "GuiCTextField",
	"txt":  "GuiTextField",
	"lbl":  "GuiLabel",
	"chk":  "GuiCheckBox",
	"rad":  "GuiRadioButton",
	"cmb":  "GuiComboBox",
	"btn":  "GuiButton",
	"tabp": "GuiTab",
}

// SetPrefixOrder is the ordered probe list used when writing a field by name
// without knowing its concrete type. The order matters: most selection-screen
// inputs are GuiCTextFields, plain text fields next, combo boxes last.
var SetPrefixOrder = []string{"ctxt", "txt", "cmb"}

// GetPrefixOrder is the ordered probe list used when reading a field by name.
// Labels come last so editable fields win when both exist under one name.
var GetPrefixOrder = []string{"txt", "ctxt", "lbl"}
