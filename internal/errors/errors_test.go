package errors

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindConflictingOverride, "conflicting override"},
		{KindMissingOverride, "missing override"},
		{KindInvalid, "invalid"},
		{KindPersistence, "persistence error"},
		{KindNotInitialized, "not initialized"},
		{KindNotFound, "not found"},
		{KindIO, "I/O error"},
		{Kind(999), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "test.Op", Context: "some context", Err: errors.New("underlying error")},
			expected: "test.Op: some context: underlying error",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "test.Op", Err: errors.New("underlying error")},
			expected: "test.Op: underlying error",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("underlying error")},
			expected: "underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestE(t *testing.T) {
	tests := []struct {
		name      string
		args      []interface{}
		wantOp    Op
		wantKind  Kind
		wantRoles []string
	}{
		{
			name:     "with all args",
			args:     []interface{}{Op("test.Op"), KindNotFound, "context", errors.New("error")},
			wantOp:   "test.Op",
			wantKind: KindNotFound,
		},
		{
			name:      "with roles",
			args:      []interface{}{Op("style.Validate"), KindMissingOverride, Roles{"a", "b"}, "missing"},
			wantOp:    "style.Validate",
			wantKind:  KindMissingOverride,
			wantRoles: []string{"a", "b"},
		},
		{
			name:     "with just error",
			args:     []interface{}{errors.New("simple error")},
			wantKind: KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := E(tt.args...)
			e, ok := err.(*Error)
			if !ok {
				t.Fatalf("E() returned %T, want *Error", err)
			}
			if e.Op != tt.wantOp {
				t.Errorf("E().Op = %q, want %q", e.Op, tt.wantOp)
			}
			if e.Kind != tt.wantKind {
				t.Errorf("E().Kind = %v, want %v", e.Kind, tt.wantKind)
			}
			if e.Err == nil {
				t.Error("E().Err should never be nil")
			}
			if len(tt.wantRoles) > 0 && !reflect.DeepEqual([]string(e.Roles), tt.wantRoles) {
				t.Errorf("E().Roles = %v, want %v", e.Roles, tt.wantRoles)
			}
		})
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     Kind
		expected bool
	}{
		{"matching kind", E(Op("test"), KindNotFound, "not found"), KindNotFound, true},
		{"non-matching kind", E(Op("test"), KindNotFound, "not found"), KindInvalid, false},
		{"plain error", errors.New("regular error"), KindNotFound, false},
		{"nil error", nil, KindNotFound, false},
		{"wrapped error", fmt.Errorf("wrapped: %w", E(Op("test"), KindIO, "io")), KindIO, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.kind); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetKind(t *testing.T) {
	if got := GetKind(E(Op("test"), KindPersistence, "x")); got != KindPersistence {
		t.Errorf("GetKind() = %v, want %v", got, KindPersistence)
	}
	if got := GetKind(errors.New("regular")); got != KindUnknown {
		t.Errorf("GetKind() = %v, want %v", got, KindUnknown)
	}
	if got := GetKind(nil); got != KindUnknown {
		t.Errorf("GetKind(nil) = %v, want %v", got, KindUnknown)
	}
}

func TestConflictingOverride(t *testing.T) {
	err := ConflictingOverride("container_class", "my-container", "gfc-container")

	if !Is(err, KindConflictingOverride) {
		t.Error("ConflictingOverride should return KindConflictingOverride error")
	}
	if !IsConfigError(err) {
		t.Error("ConflictingOverride should be a config error")
	}
	if roles := GetRoles(err); !reflect.DeepEqual(roles, []string{"container_class"}) {
		t.Errorf("roles = %v, want [container_class]", roles)
	}
	if !strings.Contains(err.Error(), `cannot set custom "container_class"`) {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestMissingOverride(t *testing.T) {
	err := MissingOverride([]string{"panel_chat_class", "panel_msg_txt_class"})

	if !Is(err, KindMissingOverride) {
		t.Error("MissingOverride should return KindMissingOverride error")
	}
	if !IsConfigError(err) {
		t.Error("MissingOverride should be a config error")
	}
	if !strings.Contains(err.Error(), "missing: panel_chat_class, panel_msg_txt_class") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestPersistenceFailed(t *testing.T) {
	underlying := errors.New("permission denied")
	err := PersistenceFailed(Op("config.Save"), "/tmp/x.json", underlying)

	if !IsPersistenceError(err) {
		t.Error("PersistenceFailed should be a persistence error")
	}
	if IsConfigError(err) {
		t.Error("PersistenceFailed should not be a config error")
	}
	if !errors.Is(err, underlying) {
		t.Error("PersistenceFailed should wrap the underlying error")
	}
}

func TestNotInitialized(t *testing.T) {
	err := NotInitialized("bot-1")

	if !Is(err, KindNotInitialized) {
		t.Error("NotInitialized should return KindNotInitialized error")
	}
	if !strings.Contains(err.Error(), "components not initialized") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestErrorChaining(t *testing.T) {
	innerErr := errors.New("original error")
	middleErr := E(Op("middle.Op"), KindIO, innerErr)
	outerErr := E(Op("outer.Op"), KindPersistence, middleErr)

	if !errors.Is(outerErr, innerErr) {
		t.Error("Should be able to find inner error through chain")
	}
	if GetKind(outerErr) != KindPersistence {
		t.Error("GetKind should return outer error's kind")
	}
}
