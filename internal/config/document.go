package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	ferrors "github.com/zhubert/floatchat/internal/errors"
	"github.com/zhubert/floatchat/internal/style"
)

// document is the serialized shape of an InstanceConfig, shared by the JSON
// and YAML encodings and by mapping sources. Pointers distinguish absent
// fields from empty ones.
type document struct {
	InstanceName        *string `json:"instance_name,omitempty" yaml:"instance_name,omitempty"`
	AnchorMode          *string `json:"anchor_mode,omitempty" yaml:"anchor_mode,omitempty"`
	Collapsed           *bool   `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
	UseDefaultCSS       *bool   `json:"use_default_css,omitempty" yaml:"use_default_css,omitempty"`
	Title               *string `json:"title,omitempty" yaml:"title,omitempty"`
	Icon                *string `json:"icon,omitempty" yaml:"icon,omitempty"`
	IconType            *string `json:"icon_type,omitempty" yaml:"icon_type,omitempty"`
	MinHeight           *string `json:"min_height,omitempty" yaml:"min_height,omitempty"`
	MaxHeight           *string `json:"max_height,omitempty" yaml:"max_height,omitempty"`
	ContainerClass      *string `json:"container_class,omitempty" yaml:"container_class,omitempty"`
	FloatBtnClass       *string `json:"float_btn_class,omitempty" yaml:"float_btn_class,omitempty"`
	PanelClass          *string `json:"panel_class,omitempty" yaml:"panel_class,omitempty"`
	PanelHeaderRowClass *string `json:"panel_header_row_class,omitempty" yaml:"panel_header_row_class,omitempty"`
	PanelTitleClass     *string `json:"panel_title_class,omitempty" yaml:"panel_title_class,omitempty"`
	PanelCloseBtnClass  *string `json:"panel_close_btn_class,omitempty" yaml:"panel_close_btn_class,omitempty"`
	PanelChatClass      *string `json:"panel_chat_class,omitempty" yaml:"panel_chat_class,omitempty"`
	PanelMsgTxtClass    *string `json:"panel_msg_txt_class,omitempty" yaml:"panel_msg_txt_class,omitempty"`
}

// classFields returns the class pointers in role order.
func (d *document) classFields() [style.NumRoles]**string {
	return [style.NumRoles]**string{
		style.Container:         &d.ContainerClass,
		style.FloatButton:       &d.FloatBtnClass,
		style.Panel:             &d.PanelClass,
		style.PanelHeader:       &d.PanelHeaderRowClass,
		style.PanelTitle:        &d.PanelTitleClass,
		style.PanelCloseButton:  &d.PanelCloseBtnClass,
		style.PanelChat:         &d.PanelChatClass,
		style.PanelMessageInput: &d.PanelMsgTxtClass,
	}
}

// documentOf returns the complete document for cfg; every field is present.
func documentOf(cfg InstanceConfig) document {
	d := document{
		InstanceName:  String(cfg.instanceName),
		AnchorMode:    String(string(cfg.anchorMode)),
		Collapsed:     Bool(cfg.collapsed),
		UseDefaultCSS: Bool(cfg.useDefaultCSS),
		Title:         String(cfg.title),
		Icon:          String(cfg.icon),
		IconType:      String(string(cfg.iconType)),
		MinHeight:     String(cfg.minHeight),
		MaxHeight:     String(cfg.maxHeight),
	}
	for r, field := range d.classFields() {
		*field = String(cfg.classes[r])
	}
	return d
}

// partial converts the document into a Partial containing exactly the fields
// it carries.
func (d document) partial() Partial {
	p := Partial{
		InstanceName:  d.InstanceName,
		Collapsed:     d.Collapsed,
		UseDefaultCSS: d.UseDefaultCSS,
		Title:         d.Title,
		Icon:          d.Icon,
		MinHeight:     d.MinHeight,
		MaxHeight:     d.MaxHeight,
	}
	if d.AnchorMode != nil {
		m := AnchorMode(*d.AnchorMode)
		p.AnchorMode = &m
	}
	if d.IconType != nil {
		t := IconType(*d.IconType)
		p.IconType = &t
	}
	for r, field := range d.classFields() {
		if *field != nil {
			if p.Classes == nil {
				p.Classes = make(map[style.Role]string)
			}
			p.Classes[style.Role(r)] = **field
		}
	}
	return p
}

// build validates the document as a fresh configuration.
func (d document) build() (InstanceConfig, error) {
	return Build(Fields{}.apply(d.partial()))
}

// decodeJSON strictly decodes data into a document. Unknown fields and values
// of the wrong type are rejected.
func decodeJSON(data []byte) (document, error) {
	var d document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return document{}, err
	}
	if dec.More() {
		return document{}, fmt.Errorf("unexpected data after config object")
	}
	return d, nil
}

func partialFromMap(m map[string]any) (Partial, error) {
	const op = ferrors.Op("config.FromMap")
	data, err := json.Marshal(m)
	if err != nil {
		return Partial{}, ferrors.ConfigInvalid(op, err.Error())
	}
	d, err := decodeJSON(data)
	if err != nil {
		return Partial{}, ferrors.ConfigInvalid(op, err.Error())
	}
	return d.partial(), nil
}

// FromMap builds a configuration from a generic mapping keyed by the
// serialized field names ("title", "anchor_mode", "panel_class", ...).
// Unknown keys and mistyped values are rejected.
func FromMap(m map[string]any) (InstanceConfig, error) {
	p, err := partialFromMap(m)
	if err != nil {
		return InstanceConfig{}, err
	}
	return Build(Fields{}.apply(p))
}

// ToMap returns the configuration as a mapping with every serialized field.
func ToMap(cfg InstanceConfig) map[string]any {
	d := documentOf(cfg)
	m := map[string]any{
		"instance_name":   *d.InstanceName,
		"anchor_mode":     *d.AnchorMode,
		"collapsed":       *d.Collapsed,
		"use_default_css": *d.UseDefaultCSS,
		"title":           *d.Title,
		"icon":            *d.Icon,
		"icon_type":       *d.IconType,
		"min_height":      *d.MinHeight,
		"max_height":      *d.MaxHeight,
	}
	for _, r := range style.Roles() {
		m[r.String()] = cfg.Class(r)
	}
	return m
}
