package shared

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple name", "Go", "go"},
		{"spaces collapse to hyphens", "Emacs Lisp", "emacs-lisp"},
		{"c++ keeps a distinct slug", "C++", "c-plus-plus"},
		{"c# keeps a distinct slug", "C#", "c-sharp"},
		{"f# keeps a distinct slug", "F#", "f-sharp"},
		{"dot net prefix", ".NET Framework", "dot-net-framework"},
		{"standalone plus", "Google Apps Script+", "google-apps-scriptplus"},
		{"accents fold", "Café BASIC", "cafe-basic"},
		{"punctuation collapses", "Objective-C++", "objective-c-plus-plus"},
		{"leading and trailing junk trims", "  --Ruby--  ", "ruby"},
		{"mixed case", "TypeScript", "typescript"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.in); got != tc.want {
				t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFold(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Café", "cafe"},
		{"São Paulo", "sao paulo"},
		{"Go", "go"},
		{"ÀÉÎÕÜ", "aeiou"},
	}

	for _, tc := range cases {
		if got := Fold(tc.in); got != tc.want {
			t.Errorf("Fold(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatTagName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"unit-testing", "Unit Testing"},
		{"docker", "Docker"},
		{"ruby-on-rails", "Ruby On Rails"},
		{"a--b", "A  B"},
	}

	for _, tc := range cases {
		if got := FormatTagName(tc.in); got != tc.want {
			t.Errorf("FormatTagName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if a == "" || b == "" {
		t.Fatal("expected non-empty IDs")
	}
	if a == b {
		t.Error("expected unique IDs")
	}
	if len(a) != 36 {
		t.Errorf("expected a UUID string, got %q", a)
	}
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger(nil)
	if logger == nil {
		t.Fatal("expected a logger")
	}

	child := WithLogger(logger, "component", "test")
	if child == nil {
		t.Fatal("expected a child logger")
	}
}
