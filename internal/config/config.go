// Package config builds and validates floating chat instance configurations.
//
// An InstanceConfig is a value: it is built once through Build (or one of the
// FromMap, FromSource, Load entry points) and never mutated. Update applies a
// partial change to a copy and revalidates the whole object, so an invalid
// combination can never be observed.
package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	ferrors "github.com/zhubert/floatchat/internal/errors"
	"github.com/zhubert/floatchat/internal/style"
)

// AnchorMode selects what a widget is positioned against.
type AnchorMode string

const (
	// AnchorLocal positions the widget relative to an anchor element.
	AnchorLocal AnchorMode = "local"
	// AnchorGlobal pins the widget to the viewport.
	AnchorGlobal AnchorMode = "global"
)

// IconType selects how the float button icon is interpreted.
type IconType string

const (
	IconText  IconType = "text"
	IconImage IconType = "image"
)

// Defaults applied to unset fields
const (
	DefaultTitle     = "Chatbot"
	DefaultIcon      = "💬"
	DefaultMinHeight = "180px"
	DefaultMaxHeight = "50vh"
)

// InstanceConfig is the validated configuration of one widget instance.
type InstanceConfig struct {
	instanceName  string
	anchorMode    AnchorMode
	collapsed     bool
	useDefaultCSS bool
	title         string
	icon          string
	iconType      IconType
	minHeight     string
	maxHeight     string
	classes       style.ClassSet
}

func (c InstanceConfig) InstanceName() string    { return c.instanceName }
func (c InstanceConfig) AnchorMode() AnchorMode  { return c.anchorMode }
func (c InstanceConfig) Collapsed() bool         { return c.collapsed }
func (c InstanceConfig) UseDefaultCSS() bool     { return c.useDefaultCSS }
func (c InstanceConfig) Title() string           { return c.title }
func (c InstanceConfig) Icon() string            { return c.icon }
func (c InstanceConfig) IconType() IconType      { return c.iconType }
func (c InstanceConfig) MinHeight() string       { return c.minHeight }
func (c InstanceConfig) MaxHeight() string       { return c.maxHeight }
func (c InstanceConfig) Classes() style.ClassSet { return c.classes }

// Class returns the class name bound to a role.
func (c InstanceConfig) Class(r style.Role) string { return c.classes.Get(r) }

// IsGlobal reports whether the widget is pinned to the viewport.
func (c InstanceConfig) IsGlobal() bool { return c.anchorMode == AnchorGlobal }

// MinHeightLength returns the parsed minimum height.
func (c InstanceConfig) MinHeightLength() Length { return mustLength(c.minHeight) }

// MaxHeightLength returns the parsed maximum height.
func (c InstanceConfig) MaxHeightLength() Length { return mustLength(c.maxHeight) }

// Fields is the explicit-field source for Build. Zero values mean "use the
// default"; Collapsed and UseDefaultCSS are pointers because their default is
// true.
type Fields struct {
	InstanceName  string
	AnchorMode    AnchorMode
	Collapsed     *bool
	UseDefaultCSS *bool
	Title         string
	Icon          string
	IconType      IconType
	MinHeight     string
	MaxHeight     string
	Classes       style.ClassSet
}

// Bool returns a pointer to v, for the optional boolean fields.
func Bool(v bool) *bool { return &v }

// Fields returns the explicit fields that rebuild c.
func (c InstanceConfig) Fields() Fields {
	return Fields{
		InstanceName:  c.instanceName,
		AnchorMode:    c.anchorMode,
		Collapsed:     Bool(c.collapsed),
		UseDefaultCSS: Bool(c.useDefaultCSS),
		Title:         c.title,
		Icon:          c.icon,
		IconType:      c.iconType,
		MinHeight:     c.minHeight,
		MaxHeight:     c.maxHeight,
		Classes:       c.classes,
	}
}

// Default returns a configuration with every field at its default.
func Default() InstanceConfig {
	cfg, err := Build(Fields{})
	if err != nil {
		// Defaults always satisfy the contract.
		panic(err)
	}
	return cfg
}

// NewInstanceName generates an instance name of the form "bot-xxxxxxxx".
func NewInstanceName() string {
	return "bot-" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// Build validates explicit fields and returns the configuration.
func Build(f Fields) (InstanceConfig, error) {
	const op = ferrors.Op("config.Build")

	cfg := InstanceConfig{
		instanceName:  f.InstanceName,
		anchorMode:    f.AnchorMode,
		collapsed:     true,
		useDefaultCSS: true,
		title:         f.Title,
		icon:          f.Icon,
		iconType:      f.IconType,
		minHeight:     f.MinHeight,
		maxHeight:     f.MaxHeight,
	}
	if f.Collapsed != nil {
		cfg.collapsed = *f.Collapsed
	}
	if f.UseDefaultCSS != nil {
		cfg.useDefaultCSS = *f.UseDefaultCSS
	}
	if cfg.instanceName == "" {
		cfg.instanceName = NewInstanceName()
	}
	if cfg.anchorMode == "" {
		cfg.anchorMode = AnchorLocal
	}
	if cfg.title == "" {
		cfg.title = DefaultTitle
	}
	if cfg.icon == "" {
		cfg.icon = DefaultIcon
	}
	if cfg.iconType == "" {
		cfg.iconType = IconText
	}
	if cfg.minHeight == "" {
		cfg.minHeight = DefaultMinHeight
	}
	if cfg.maxHeight == "" {
		cfg.maxHeight = DefaultMaxHeight
	}

	if strings.IndexFunc(cfg.instanceName, unicode.IsSpace) >= 0 {
		return InstanceConfig{}, ferrors.ConfigInvalid(op, fmt.Sprintf("instance_name %q must not contain whitespace", cfg.instanceName))
	}
	switch cfg.anchorMode {
	case AnchorLocal, AnchorGlobal:
	default:
		return InstanceConfig{}, ferrors.ConfigInvalid(op, fmt.Sprintf("unknown anchor_mode %q (must be local or global)", cfg.anchorMode))
	}
	switch cfg.iconType {
	case IconText, IconImage:
	default:
		return InstanceConfig{}, ferrors.ConfigInvalid(op, fmt.Sprintf("unknown icon_type %q (must be text or image)", cfg.iconType))
	}
	if _, err := ParseLength(cfg.minHeight); err != nil {
		return InstanceConfig{}, ferrors.ConfigInvalid(op, fmt.Sprintf("min_height: %v", err))
	}
	if _, err := ParseLength(cfg.maxHeight); err != nil {
		return InstanceConfig{}, ferrors.ConfigInvalid(op, fmt.Sprintf("max_height: %v", err))
	}

	classes, err := style.Validate(f.Classes, cfg.useDefaultCSS)
	if err != nil {
		return InstanceConfig{}, err
	}
	cfg.classes = classes

	return cfg, nil
}
