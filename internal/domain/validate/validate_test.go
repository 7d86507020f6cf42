package validate

import (
	"errors"
	"testing"
)

type kind string

func TestRules(t *testing.T) {
	cases := []struct {
		name string
		err  error
		ok   bool
	}{
		{"required ok", Required("title", "Rabies"), true},
		{"required blank", Required("title", "   "), false},
		{"date ok", Date("date", "2026-02-26"), true},
		{"date bad", Date("date", "26/02/2026"), false},
		{"clock ok", Clock("time", "09:00"), true},
		{"clock bad", Clock("time", "9am"), false},
		{"rating low", Rating("mood", 0), false},
		{"rating high", Rating("mood", 6), false},
		{"rating ok", Rating("mood", 5), true},
		{"enum ok", OneOf("type", kind("dog"), "dog", "cat"), true},
		{"enum bad", OneOf("type", kind("fish"), "dog", "cat"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.ok && tc.err != nil {
				t.Fatalf("expected nil, got %v", tc.err)
			}
			if !tc.ok && !errors.Is(tc.err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", tc.err)
			}
		})
	}
}

func TestFirst(t *testing.T) {
	if err := First(nil, nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	err := First(nil, Required("name", ""), Required("email", ""))
	if err == nil || err.Error() != "invalid input: name required" {
		t.Fatalf("unexpected error: %v", err)
	}
}
