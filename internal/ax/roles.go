package ax

// Canonical role names emitted in snapshots. Only these roles are
// interesting enough to record; everything else is traversed through.
const (
	RoleButton     = "button"
	RoleStaticText = "static-text"
	RoleTextField  = "text-field"
	RoleCheckbox   = "checkbox"
	RoleMenuItem   = "menu-item"
	RoleTab        = "tab"
)

// RoleMap maps raw platform roles to canonical ones. Absence from the map
// means the role is not interesting: such elements are walked through but
// never emitted as snapshot nodes.
var RoleMap = map[string]string{
	"AXButton":     RoleButton,
	"AXStaticText": RoleStaticText,
	"AXTextField":  RoleTextField,
	"AXTextArea":   RoleTextField,
	"AXCheckBox":   RoleCheckbox,
	"AXMenuItem":   RoleMenuItem,
	"AXTabGroup":   RoleTab,
	// macOS tab bars expose individual tabs as radio buttons.
	"AXRadioButton": RoleTab,
}

// TextInputRoles restricts type-action targeting to elements that accept
// text.
var TextInputRoles = map[string]bool{
	RoleTextField: true,
}

// MapRole converts a raw platform role to its canonical name. ok is false
// for roles outside the allow-list.
func MapRole(raw string) (role string, ok bool) {
	role, ok = RoleMap[raw]
	return role, ok
}
