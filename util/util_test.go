package util

import (
	"testing"
	"time"
)

func TestPtr(t *testing.T) {
	if p := Ptr(42); *p != 42 {
		t.Errorf("expected *p=42, got %d", *p)
	}
	if s := Ptr("hello"); *s != "hello" {
		t.Errorf("expected *s=hello, got %s", *s)
	}
}

func TestDeref(t *testing.T) {
	v := 42
	if Deref(&v) != 42 {
		t.Error("expected Deref to return 42")
	}
	var p *int
	if Deref(p) != 0 {
		t.Error("expected Deref of nil to return zero value")
	}
	var tp *time.Time
	if !Deref(tp).IsZero() {
		t.Error("expected Deref of nil time pointer to return zero time")
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "", "hello", "world"); got != "hello" {
		t.Errorf("expected 'hello', got %q", got)
	}
	if got := Coalesce(0, 0, 42); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if got := Coalesce(time.Duration(0), time.Minute); got != time.Minute {
		t.Errorf("expected 1m, got %v", got)
	}
	if got := Coalesce("", ""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"sk_short", "***"},
		{"sk_0123456789abcdef", "sk_***cdef"},
		{"  sk_0123456789abcdef ", "sk_***cdef"},
		{"0123456789abcdef", "***cdef"},
		{"averylongprefix_0123456789", "***6789"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := MaskAPIKey(tc.input); got != tc.want {
				t.Errorf("MaskAPIKey(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
