package store

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateCategoryTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr error
	}{
		// Valid titles
		{name: "three characters", title: "Pop", wantErr: nil},
		{name: "typical title", title: "Classic Rock", wantErr: nil},
		{name: "exactly 100 runes", title: strings.Repeat("a", 100), wantErr: nil},
		{name: "multibyte runes count as one", title: "Zażółć", wantErr: nil},
		{name: "padding trimmed before check", title: "  Jazz  ", wantErr: nil},

		// Violations
		{name: "empty string", title: "", wantErr: ErrTitleInvalid},
		{name: "whitespace only", title: "   ", wantErr: ErrTitleInvalid},
		{name: "two characters", title: "ab", wantErr: ErrTitleInvalid},
		{name: "two characters after trim", title: " ab ", wantErr: ErrTitleInvalid},
		{name: "101 runes", title: strings.Repeat("a", 101), wantErr: ErrTitleInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategoryTitle(tt.title)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateCategoryTitle(%q) = %v, want nil", tt.title, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateCategoryTitle(%q) = %v, want %v", tt.title, err, tt.wantErr)
			}
		})
	}
}

func TestDeriveSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple word", in: "Jazz", want: "jazz"},
		{name: "spaces become hyphens", in: "Classic Rock", want: "classic-rock"},
		{name: "underscores become hyphens", in: "lo_fi", want: "lo-fi"},
		{name: "punctuation stripped", in: "Drum & Bass!", want: "drum-bass"},
		{name: "consecutive separators collapse", in: "a  --  b", want: "a-b"},
		{name: "leading and trailing trimmed", in: " -edge- ", want: "edge"},
		{name: "digits kept", in: "Top 40", want: "top-40"},
		{name: "only punctuation", in: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveSlug(tt.in); got != tt.want {
				t.Errorf("DeriveSlug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDeriveSlugIsIdempotent(t *testing.T) {
	in := "Synth Pop 2024"
	once := DeriveSlug(in)
	if twice := DeriveSlug(once); twice != once {
		t.Errorf("DeriveSlug(DeriveSlug(%q)) = %q, want %q", in, twice, once)
	}
}
