package config

import (
	"reflect"
	"regexp"
	"strings"
	"testing"

	ferrors "github.com/zhubert/floatchat/internal/errors"
	"github.com/zhubert/floatchat/internal/style"
)

func customClasses() style.ClassSet {
	return style.ClassSet{"c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8"}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.AnchorMode() != AnchorLocal {
		t.Errorf("anchor mode = %q, want local", cfg.AnchorMode())
	}
	if cfg.Title() != "Chatbot" {
		t.Errorf("title = %q, want Chatbot", cfg.Title())
	}
	if !cfg.Collapsed() {
		t.Error("default config should be collapsed")
	}
	if !cfg.UseDefaultCSS() {
		t.Error("default config should use default css")
	}
	if cfg.Class(style.Container) != "gfc-container" {
		t.Errorf("container class = %q, want gfc-container", cfg.Class(style.Container))
	}
	if cfg.IconType() != IconText || cfg.Icon() != DefaultIcon {
		t.Errorf("icon = %q (%s), want default text icon", cfg.Icon(), cfg.IconType())
	}
	if cfg.MinHeight() != "180px" || cfg.MaxHeight() != "50vh" {
		t.Errorf("heights = %s/%s, want 180px/50vh", cfg.MinHeight(), cfg.MaxHeight())
	}
	if !regexp.MustCompile(`^bot-[0-9a-f]{8}$`).MatchString(cfg.InstanceName()) {
		t.Errorf("generated instance name %q has unexpected shape", cfg.InstanceName())
	}
}

func TestDefault_UniqueNames(t *testing.T) {
	if Default().InstanceName() == Default().InstanceName() {
		t.Error("generated instance names should differ")
	}
}

func TestBuild_ExplicitFields(t *testing.T) {
	cfg, err := Build(Fields{
		InstanceName: "bot-standard",
		AnchorMode:   AnchorGlobal,
		Collapsed:    Bool(false),
		Title:        "My Bot",
		Icon:         "path/to/icon.png",
		IconType:     IconImage,
		MinHeight:    "10",
		MaxHeight:    "80%",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.InstanceName() != "bot-standard" || !cfg.IsGlobal() || cfg.Collapsed() {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.IconType() != IconImage || cfg.Icon() != "path/to/icon.png" {
		t.Errorf("icon = %q (%s)", cfg.Icon(), cfg.IconType())
	}
	if cfg.MinHeightLength() != (Length{Value: 10}) {
		t.Errorf("min height = %+v", cfg.MinHeightLength())
	}
	if cfg.MaxHeightLength() != (Length{Value: 80, Unit: UnitPercent}) {
		t.Errorf("max height = %+v", cfg.MaxHeightLength())
	}
}

func TestBuild_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
	}{
		{"anchor mode", Fields{AnchorMode: "floating"}},
		{"icon type", Fields{IconType: "svg"}},
		{"min height", Fields{MinHeight: "tall"}},
		{"max height", Fields{MaxHeight: "-3px"}},
		{"instance name whitespace", Fields{InstanceName: "my bot"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.fields)
			if !ferrors.Is(err, ferrors.KindInvalid) {
				t.Errorf("expected invalid config error, got %v", err)
			}
			if !ferrors.IsConfigError(err) {
				t.Error("expected config error")
			}
		})
	}
}

func TestBuild_CSSDefaultConflict(t *testing.T) {
	_, err := Build(Fields{Classes: style.ClassSet{}.With(style.Container, "my-container")})
	if !ferrors.Is(err, ferrors.KindConflictingOverride) {
		t.Fatalf("expected conflicting override, got %v", err)
	}
	if !strings.Contains(err.Error(), `cannot set custom "container_class"`) {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestBuild_CSSCustomSuccess(t *testing.T) {
	cfg, err := Build(Fields{UseDefaultCSS: Bool(false), Classes: customClasses()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Classes() != customClasses() {
		t.Errorf("classes = %v, want %v", cfg.Classes(), customClasses())
	}
}

func TestBuild_CSSCustomMissingMessageInput(t *testing.T) {
	_, err := Build(Fields{
		UseDefaultCSS: Bool(false),
		Classes:       customClasses().With(style.PanelMessageInput, ""),
	})
	if !ferrors.Is(err, ferrors.KindMissingOverride) {
		t.Fatalf("expected missing override, got %v", err)
	}
	if roles := ferrors.GetRoles(err); !reflect.DeepEqual(roles, []string{"panel_msg_txt_class"}) {
		t.Errorf("roles = %v, want [panel_msg_txt_class]", roles)
	}
	if !strings.Contains(err.Error(), "missing: panel_msg_txt_class") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestFields_RoundTrip(t *testing.T) {
	cfg, err := Build(Fields{UseDefaultCSS: Bool(false), Classes: customClasses(), Title: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := Build(cfg.Fields())
	if err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	if again != cfg {
		t.Errorf("rebuild changed config:\n got %+v\nwant %+v", again, cfg)
	}
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]any{"title": "Dict Bot", "anchor_mode": "global"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Title() != "Dict Bot" || cfg.AnchorMode() != AnchorGlobal {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestFromMap_CustomClasses(t *testing.T) {
	m := map[string]any{"use_default_css": false}
	for _, r := range style.Roles() {
		m[r.String()] = "my-" + r.Default()
	}
	cfg, err := FromMap(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Class(style.Panel) != "my-gfc-panel" {
		t.Errorf("panel class = %q", cfg.Class(style.Panel))
	}
}

func TestFromMap_Rejects(t *testing.T) {
	tests := []struct {
		name string
		m    map[string]any
	}{
		{"unknown key", map[string]any{"label": "x"}},
		{"wrong type", map[string]any{"collapsed": "yes"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromMap(tt.m)
			if !ferrors.Is(err, ferrors.KindInvalid) {
				t.Errorf("expected invalid config error, got %v", err)
			}
		})
	}
}

func TestToMap_FromMap(t *testing.T) {
	cfg, err := Build(Fields{InstanceName: "m", AnchorMode: AnchorGlobal, Collapsed: Bool(false)})
	if err != nil {
		t.Fatal(err)
	}
	m := ToMap(cfg)
	if len(m) != 9+style.NumRoles {
		t.Errorf("ToMap has %d keys, want %d", len(m), 9+style.NumRoles)
	}
	again, err := FromMap(m)
	if err != nil {
		t.Fatalf("FromMap(ToMap()) failed: %v", err)
	}
	if again != cfg {
		t.Errorf("map round trip changed config")
	}
}

func TestFromSource_InstanceNameShorthand(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"my-bot-instance", "my-bot-instance"},
		{"my bot", "my-bot"},
		{"  support \t desk ", "support-desk"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			cfg, err := FromSource(tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.InstanceName() != tt.want {
				t.Errorf("instance name = %q, want %q", cfg.InstanceName(), tt.want)
			}
			if cfg.Title() != DefaultTitle {
				t.Errorf("title = %q, want default", cfg.Title())
			}
		})
	}

	cfg, err := FromSource("   ")
	if err != nil {
		t.Fatalf("blank source: %v", err)
	}
	if !strings.HasPrefix(cfg.InstanceName(), "bot-") {
		t.Errorf("blank source name = %q, want generated", cfg.InstanceName())
	}
}

func TestUpdate(t *testing.T) {
	cfg, err := Build(Fields{Title: "Original", InstanceName: "test"})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := Update(cfg, Partial{Title: String("New Title")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title() != "New Title" {
		t.Errorf("title = %q, want New Title", updated.Title())
	}
	if updated.InstanceName() != "test" {
		t.Errorf("instance name changed to %q", updated.InstanceName())
	}
	if cfg.Title() != "Original" {
		t.Error("Update must not modify the original config")
	}
}

func TestUpdate_EmptyIsNoop(t *testing.T) {
	cfg := Default()
	got, err := Update(cfg, Partial{})
	if err != nil || got != cfg {
		t.Errorf("empty update = (%+v, %v), want original", got, err)
	}
}

func TestUpdate_Revalidates(t *testing.T) {
	cfg := Default()

	_, err := Update(cfg, Partial{Classes: map[style.Role]string{style.Container: "bad-idea"}})
	if !ferrors.Is(err, ferrors.KindConflictingOverride) {
		t.Fatalf("expected conflicting override, got %v", err)
	}
	if cfg.Class(style.Container) != "gfc-container" {
		t.Error("failed update must leave the original untouched")
	}
}

func TestUpdate_SwitchToCustom(t *testing.T) {
	cfg := Default()

	// Switching modes keeps the already-bound (default) classes, which are
	// a complete custom set.
	custom, err := Update(cfg, Partial{
		UseDefaultCSS: Bool(false),
		Classes:       map[style.Role]string{style.Panel: "my-panel"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if custom.Class(style.Panel) != "my-panel" || custom.Class(style.PanelChat) != "gfc-panel-chat" {
		t.Errorf("unexpected classes: %v", custom.Classes())
	}

	// Going back to default mode with a custom class still bound fails.
	_, err = Update(custom, Partial{UseDefaultCSS: Bool(true)})
	if !ferrors.Is(err, ferrors.KindConflictingOverride) {
		t.Errorf("expected conflicting override, got %v", err)
	}

	// Resetting the class in the same update succeeds.
	back, err := Update(custom, Partial{
		UseDefaultCSS: Bool(true),
		Classes:       map[style.Role]string{style.Panel: ""},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !back.Classes().IsDefault() {
		t.Errorf("classes = %v, want defaults", back.Classes())
	}
}

func TestUpdateMap(t *testing.T) {
	cfg := Default()

	updated, err := UpdateMap(cfg, map[string]any{"title": "Mapped", "collapsed": false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title() != "Mapped" || updated.Collapsed() {
		t.Errorf("unexpected config: %+v", updated)
	}

	if _, err := UpdateMap(cfg, map[string]any{"container_class": "bad-idea"}); !ferrors.Is(err, ferrors.KindConflictingOverride) {
		t.Errorf("expected conflicting override, got %v", err)
	}
	if _, err := UpdateMap(cfg, map[string]any{"nope": 1}); !ferrors.Is(err, ferrors.KindInvalid) {
		t.Errorf("expected invalid config error, got %v", err)
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in      string
		want    Length
		wantErr bool
	}{
		{"180px", Length{180, UnitPx}, false},
		{"50vh", Length{50, UnitVH}, false},
		{"40%", Length{40, UnitPercent}, false},
		{"1.5em", Length{1.5, UnitEm}, false},
		{"2rem", Length{2, UnitRem}, false},
		{"12", Length{12, UnitRows}, false},
		{" 8px ", Length{8, UnitPx}, false},
		{"", Length{}, true},
		{"px", Length{}, true},
		{"tall", Length{}, true},
		{"-1px", Length{}, true},
		{"NaNpx", Length{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLength(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLength(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLength(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLength_Rows(t *testing.T) {
	tests := []struct {
		length   Length
		viewport int
		want     int
	}{
		{Length{180, UnitPx}, 40, 11},
		{Length{50, UnitVH}, 40, 20},
		{Length{25, UnitPercent}, 40, 10},
		{Length{3, UnitEm}, 40, 3},
		{Length{7, UnitRows}, 40, 7},
		{Length{0, UnitPx}, 40, 1},
	}
	for _, tt := range tests {
		t.Run(tt.length.String(), func(t *testing.T) {
			if got := tt.length.Rows(tt.viewport); got != tt.want {
				t.Errorf("Rows(%d) = %d, want %d", tt.viewport, got, tt.want)
			}
		})
	}
}

func TestLength_String(t *testing.T) {
	for _, s := range []string{"180px", "50vh", "40%", "1.5em", "2rem", "12"} {
		l, err := ParseLength(s)
		if err != nil {
			t.Fatal(err)
		}
		if l.String() != s {
			t.Errorf("String() = %q, want %q", l.String(), s)
		}
	}
}
