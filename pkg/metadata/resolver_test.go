package metadata

import (
	"context"
	"testing"
)

func TestParseServerVersion(t *testing.T) {
	cases := []struct {
		in   string
		want ServerVersion
	}{
		{"5.7.42-log", ServerVersion{5, 7}},
		{"8.0.36", ServerVersion{8, 0}},
		{"5.5", ServerVersion{5, 5}},
		{"10.11.2-MariaDB", ServerVersion{10, 11}},
		{"5", ServerVersion{}},
		{"", ServerVersion{}},
		{"abc.def", ServerVersion{}},
	}
	for _, tc := range cases {
		if got := ParseServerVersion(tc.in); got != tc.want {
			t.Errorf("ParseServerVersion(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestServerVersion_AtLeast(t *testing.T) {
	cases := []struct {
		v    ServerVersion
		want bool
	}{
		{ServerVersion{5, 5}, true},
		{ServerVersion{5, 7}, true},
		{ServerVersion{8, 0}, true},
		{ServerVersion{5, 4}, false},
		{ServerVersion{4, 9}, false},
		{ServerVersion{}, false},
	}
	for _, tc := range cases {
		if got := tc.v.AtLeast(5, 5); got != tc.want {
			t.Errorf("%+v.AtLeast(5,5) = %v, want %v", tc.v, got, tc.want)
		}
	}
}

func TestSQLResolver_SkipsUnsupportedServer(t *testing.T) {
	// A pre-5.5 server never reaches the database, so a nil connection is
	// safe here.
	r := NewSQLResolver(nil, ServerVersion{5, 1})
	fullType, err := r.FullColumnType(context.Background(), "app", "tickets", "status")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fullType != "" {
		t.Fatalf("full type = %q, want empty", fullType)
	}
}

func TestSQLResolver_NilReceiverAndConnection(t *testing.T) {
	var r *SQLResolver
	if fullType, err := r.FullColumnType(context.Background(), "a", "b", "c"); err != nil || fullType != "" {
		t.Fatalf("nil resolver: (%q, %v), want empty, nil", fullType, err)
	}

	r = NewSQLResolver(nil, ServerVersion{8, 0})
	if fullType, err := r.FullColumnType(context.Background(), "a", "b", "c"); err != nil || fullType != "" {
		t.Fatalf("nil connection: (%q, %v), want empty, nil", fullType, err)
	}
}
