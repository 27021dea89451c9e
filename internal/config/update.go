package config

import (
	"github.com/zhubert/floatchat/internal/style"
)

// Partial is a set of optional field changes. Nil fields are left as they
// are; Classes entries replace the class of their role.
type Partial struct {
	InstanceName  *string
	AnchorMode    *AnchorMode
	Collapsed     *bool
	UseDefaultCSS *bool
	Title         *string
	Icon          *string
	IconType      *IconType
	MinHeight     *string
	MaxHeight     *string
	Classes       map[style.Role]string
}

// String returns a pointer to v, for Partial fields.
func String(v string) *string { return &v }

// IsEmpty reports whether the partial changes nothing.
func (p Partial) IsEmpty() bool {
	return p.InstanceName == nil && p.AnchorMode == nil && p.Collapsed == nil &&
		p.UseDefaultCSS == nil && p.Title == nil && p.Icon == nil && p.IconType == nil &&
		p.MinHeight == nil && p.MaxHeight == nil && len(p.Classes) == 0
}

// apply overlays p onto f.
func (f Fields) apply(p Partial) Fields {
	if p.InstanceName != nil {
		f.InstanceName = *p.InstanceName
	}
	if p.AnchorMode != nil {
		f.AnchorMode = *p.AnchorMode
	}
	if p.Collapsed != nil {
		f.Collapsed = Bool(*p.Collapsed)
	}
	if p.UseDefaultCSS != nil {
		f.UseDefaultCSS = Bool(*p.UseDefaultCSS)
	}
	if p.Title != nil {
		f.Title = *p.Title
	}
	if p.Icon != nil {
		f.Icon = *p.Icon
	}
	if p.IconType != nil {
		f.IconType = *p.IconType
	}
	if p.MinHeight != nil {
		f.MinHeight = *p.MinHeight
	}
	if p.MaxHeight != nil {
		f.MaxHeight = *p.MaxHeight
	}
	for role, class := range p.Classes {
		f.Classes = f.Classes.With(role, class)
	}
	return f
}

// Update returns a new configuration with p applied to cfg. The result is
// validated as a whole; on error cfg is still the caller's valid value.
//
// Classes already bound in cfg stay bound, so switching a custom config back
// to use_default_css=true fails unless every class is reset to its default
// (or to "") in the same update.
func Update(cfg InstanceConfig, p Partial) (InstanceConfig, error) {
	if p.IsEmpty() {
		return cfg, nil
	}
	return Build(cfg.Fields().apply(p))
}

// UpdateMap is Update with a generic mapping using serialized field names.
func UpdateMap(cfg InstanceConfig, m map[string]any) (InstanceConfig, error) {
	p, err := partialFromMap(m)
	if err != nil {
		return InstanceConfig{}, err
	}
	return Update(cfg, p)
}
