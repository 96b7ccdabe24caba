package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-recordform/pkg/model"
)

func TestParseChoices(t *testing.T) {
	cases := []struct {
		name     string
		fullType string
		want     []string
	}{
		{
			name:     "enum",
			fullType: "ENUM('x','y')",
			want:     []string{"x", "y"},
		},
		{
			name:     "lowercase enum",
			fullType: "enum('new','open','closed')",
			want:     []string{"new", "open", "closed"},
		},
		{
			name:     "set",
			fullType: "set('a','b','c','d')",
			want:     []string{"a", "b", "c", "d"},
		},
		{
			name:     "escaped quote",
			fullType: "enum('it''s','plain')",
			want:     []string{"it's", "plain"},
		},
		{
			name:     "empty option",
			fullType: "set('','a')",
			want:     []string{"", "a"},
		},
		{
			name:     "missing parentheses",
			fullType: "ENUM",
			want:     nil,
		},
		{
			name:     "unbalanced parentheses",
			fullType: "enum)'a'(",
			want:     nil,
		},
		{
			name:     "empty input",
			fullType: "",
			want:     nil,
		},
		{
			name:     "empty body",
			fullType: "enum()",
			want:     nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := model.ParseChoices(tc.fullType)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("choices mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFieldLabel(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"status", "Status:"},
		{"Status", "Status:"},
		{"last_seen", "Last_seen:"},
		{"_hidden", "_hidden:"},
		{"7days", "7days:"},
		{"", ":"},
	}

	for _, tc := range cases {
		if got := model.FieldLabel(tc.name); got != tc.want {
			t.Errorf("FieldLabel(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
