package panel

// ToggleVisibility flips a standalone panel's collapsed flag and reports what
// should be shown afterwards: the float button while collapsed, the panel
// while open. It does not touch any Stack.
func ToggleVisibility(isCollapsed bool) (iconVisible, panelVisible, newCollapsed bool) {
	newCollapsed = !isCollapsed
	return newCollapsed, !newCollapsed, newCollapsed
}
