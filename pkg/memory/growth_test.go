package memory

import (
	"errors"
	"math"
	"testing"
)

func TestFixedPolicy_NeverGrows(t *testing.T) {
	_, err := FixedPolicy{}.GrowToSize(20, 10, 1024)
	if !errors.Is(err, ErrGrowthNotAllowed) {
		t.Fatalf("GrowToSize error = %v, want ErrGrowthNotAllowed", err)
	}
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("ErrGrowthNotAllowed should wrap ErrCapacityExceeded, got %v", err)
	}
}

func TestExponentialPolicy_GrowToSize(t *testing.T) {
	tests := []struct {
		name                     string
		needed, current, maxSize int
		want                     int
	}{
		{"doubles", 20, 16, 1024, 32},
		{"needed wins over doubling", 100, 16, 1024, 100},
		{"clamped to max", 600, 512, 1000, 1000},
		{"exactly max is fine", 1024, 512, 1024, 1024},
		{"zero current grows to needed", 8, 0, 1024, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExponentialPolicy{}.GrowToSize(tt.needed, tt.current, tt.maxSize)
			if err != nil {
				t.Fatalf("GrowToSize(%d, %d, %d) error: %v", tt.needed, tt.current, tt.maxSize, err)
			}
			if got != tt.want {
				t.Fatalf("GrowToSize(%d, %d, %d) = %d, want %d", tt.needed, tt.current, tt.maxSize, got, tt.want)
			}
		})
	}
}

func TestLinearPolicy_GrowToSize(t *testing.T) {
	tests := []struct {
		name                     string
		needed, current, maxSize int
		want                     int
	}{
		{"grows by half", 110, 100, 1024, 150},
		{"needed wins", 200, 100, 1024, 200},
		{"clamped to max", 130, 128, 150, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LinearPolicy{}.GrowToSize(tt.needed, tt.current, tt.maxSize)
			if err != nil {
				t.Fatalf("GrowToSize(%d, %d, %d) error: %v", tt.needed, tt.current, tt.maxSize, err)
			}
			if got != tt.want {
				t.Fatalf("GrowToSize(%d, %d, %d) = %d, want %d", tt.needed, tt.current, tt.maxSize, got, tt.want)
			}
		})
	}
}

func TestPercentagePolicy_GrowToSize(t *testing.T) {
	p := NewPercentagePolicy(10)

	got, err := p.GrowToSize(105, 100, 1000)
	if err != nil {
		t.Fatalf("GrowToSize error: %v", err)
	}
	if got != 110 {
		t.Fatalf("GrowToSize(105, 100, 1000) = %d, want 110", got)
	}

	// Needed beyond the percentage step wins.
	got, err = p.GrowToSize(500, 100, 1000)
	if err != nil {
		t.Fatalf("GrowToSize error: %v", err)
	}
	if got != 500 {
		t.Fatalf("GrowToSize(500, 100, 1000) = %d, want 500", got)
	}
}

func TestPercentagePolicy_DefaultRate(t *testing.T) {
	p := NewPercentagePolicy(0)
	if p.Percent != DefaultGrowthPercent {
		t.Fatalf("Percent = %v, want %v", p.Percent, DefaultGrowthPercent)
	}
}

func TestPolicies_NeededExceedsMax(t *testing.T) {
	policies := map[string]GrowthPolicy{
		"exponential": ExponentialPolicy{},
		"linear":      LinearPolicy{},
		"percentage":  NewPercentagePolicy(10),
	}
	for name, p := range policies {
		t.Run(name, func(t *testing.T) {
			_, err := p.GrowToSize(2000, 100, 1000)
			if !errors.Is(err, ErrCapacityExceeded) {
				t.Fatalf("GrowToSize error = %v, want ErrCapacityExceeded", err)
			}
		})
	}
}

// Growth arithmetic must saturate at the ceiling instead of wrapping when
// the computed capacity would overflow the platform size.
func TestPolicies_SaturateNearMaxInt(t *testing.T) {
	huge := math.MaxInt - 10
	policies := map[string]GrowthPolicy{
		"exponential": ExponentialPolicy{},
		"linear":      LinearPolicy{},
		"percentage":  NewPercentagePolicy(50),
	}
	for name, p := range policies {
		t.Run(name, func(t *testing.T) {
			got, err := p.GrowToSize(huge, huge-1, math.MaxInt)
			if err != nil {
				t.Fatalf("GrowToSize error: %v", err)
			}
			if got < huge || got > math.MaxInt {
				t.Fatalf("GrowToSize = %d, want in [%d, %d]", got, huge, math.MaxInt)
			}
		})
	}
}

// Postcondition from the growth contract: for any needed <= max, the result
// is in [max(needed, current), max].
func TestPolicies_Postconditions(t *testing.T) {
	policies := map[string]GrowthPolicy{
		"exponential": ExponentialPolicy{},
		"linear":      LinearPolicy{},
		"percentage":  NewPercentagePolicy(25),
	}
	cases := []struct{ needed, current, maxSize int }{
		{1, 0, 16},
		{16, 16, 16},
		{17, 16, 64},
		{100, 64, 100},
		{1000, 999, 1000},
		{4096, 1024, 1 << 20},
	}
	for name, p := range policies {
		for _, c := range cases {
			got, err := p.GrowToSize(c.needed, c.current, c.maxSize)
			if err != nil {
				t.Fatalf("%s: GrowToSize(%d, %d, %d) error: %v", name, c.needed, c.current, c.maxSize, err)
			}
			lo := c.needed
			if c.current > lo {
				lo = c.current
			}
			if got < lo || got > c.maxSize {
				t.Fatalf("%s: GrowToSize(%d, %d, %d) = %d, want in [%d, %d]",
					name, c.needed, c.current, c.maxSize, got, lo, c.maxSize)
			}
		}
	}
}
