// Package style defines the class-name contract of a floating chat widget.
//
// Every widget has eight styled roles. A widget either uses the built-in
// class names for all of them (default mode) or supplies its own class name
// for every one of them (custom mode). Mixing the two is rejected.
package style

import (
	ferrors "github.com/zhubert/floatchat/internal/errors"
)

// Role identifies one styled element of a widget.
type Role int

const (
	Container Role = iota
	FloatButton
	Panel
	PanelHeader
	PanelTitle
	PanelCloseButton
	PanelChat
	PanelMessageInput

	numRoles
)

// NumRoles is the number of styled roles.
const NumRoles = int(numRoles)

var roleFields = [numRoles]string{
	Container:         "container_class",
	FloatButton:       "float_btn_class",
	Panel:             "panel_class",
	PanelHeader:       "panel_header_row_class",
	PanelTitle:        "panel_title_class",
	PanelCloseButton:  "panel_close_btn_class",
	PanelChat:         "panel_chat_class",
	PanelMessageInput: "panel_msg_txt_class",
}

var defaultClasses = ClassSet{
	Container:         "gfc-container",
	FloatButton:       "gfc-float-btn",
	Panel:             "gfc-panel",
	PanelHeader:       "gfc-panel-header",
	PanelTitle:        "gfc-panel-title",
	PanelCloseButton:  "gfc-panel-close-btn",
	PanelChat:         "gfc-panel-chat",
	PanelMessageInput: "gfc-panel-msg-txt",
}

// Markers appended to role classes for globally anchored widgets.
const (
	GlobalAnchorMarker = "gfc-global-anchor"
	FixedMarker        = "gfc-fixed"
)

// String returns the serialized field name of the role, e.g. "panel_class".
func (r Role) String() string {
	if r < 0 || r >= numRoles {
		return "unknown_class"
	}
	return roleFields[r]
}

// Default returns the built-in class name for the role.
func (r Role) Default() string {
	if r < 0 || r >= numRoles {
		return ""
	}
	return defaultClasses[r]
}

// Roles returns all roles in contract order.
func Roles() []Role {
	roles := make([]Role, 0, numRoles)
	for r := Role(0); r < numRoles; r++ {
		roles = append(roles, r)
	}
	return roles
}

// ParseRole maps a serialized field name back to its role.
func ParseRole(field string) (Role, bool) {
	for r, name := range roleFields {
		if name == field {
			return Role(r), true
		}
	}
	return 0, false
}

// ClassSet maps every role to a class name. The empty string means unset.
// ClassSet is an array, so assignment copies it; a validated set cannot be
// altered through another reference.
type ClassSet [numRoles]string

// Defaults returns the fully populated built-in class set.
func Defaults() ClassSet {
	return defaultClasses
}

// Get returns the class name bound to a role.
func (s ClassSet) Get(r Role) string {
	if r < 0 || r >= numRoles {
		return ""
	}
	return s[r]
}

// With returns a copy of the set with role r bound to class.
func (s ClassSet) With(r Role, class string) ClassSet {
	if r >= 0 && r < numRoles {
		s[r] = class
	}
	return s
}

// IsDefault reports whether every role is bound to its built-in class.
func (s ClassSet) IsDefault() bool {
	return s == defaultClasses
}

// Validate enforces the class contract and returns the effective set.
//
// With useDefault, any supplied class must equal the role's default and unset
// roles are filled in. Without it, every role must be supplied; the error
// lists all missing roles at once. Validating an already valid set returns it
// unchanged.
func Validate(set ClassSet, useDefault bool) (ClassSet, error) {
	if useDefault {
		out := set
		for r := Role(0); r < numRoles; r++ {
			v := set[r]
			if v == "" {
				out[r] = defaultClasses[r]
				continue
			}
			if v != defaultClasses[r] {
				return ClassSet{}, ferrors.ConflictingOverride(r.String(), v, defaultClasses[r])
			}
		}
		return out, nil
	}

	var missing []string
	for r := Role(0); r < numRoles; r++ {
		if set[r] == "" {
			missing = append(missing, r.String())
		}
	}
	if len(missing) > 0 {
		return ClassSet{}, ferrors.MissingOverride(missing)
	}
	return set, nil
}
