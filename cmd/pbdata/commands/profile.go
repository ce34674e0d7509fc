package commands

import (
	"fmt"

	"github.com/pbyhre/pb-cpp-data/pkg/memory"
)

// Profile configures the buffer built by the fill command. It can be loaded
// from a YAML or JSON file with -f and overridden by individual flags.
type Profile struct {
	// Policy is one of "fixed", "exponential", "linear", "percentage".
	Policy string `yaml:"policy" json:"policy"`

	// Percent is the growth rate for the percentage policy.
	Percent float64 `yaml:"percent,omitempty" json:"percent,omitempty"`

	// InitialSize is the buffer's initial allocation in bytes.
	InitialSize int `yaml:"initial_size" json:"initial_size"`

	// MaxSize is the buffer's size ceiling in bytes; 0 means unbounded.
	MaxSize int `yaml:"max_size,omitempty" json:"max_size,omitempty"`

	// Lazy defers allocation until the first write.
	Lazy bool `yaml:"lazy,omitempty" json:"lazy,omitempty"`
}

// DefaultProfile returns the profile used when no file or flags are given.
func DefaultProfile() Profile {
	return Profile{
		Policy:      "exponential",
		Percent:     memory.DefaultGrowthPercent,
		InitialSize: 4096,
	}
}

// GrowthPolicy resolves the profile's policy name to a memory.GrowthPolicy.
func (p Profile) GrowthPolicy() (memory.GrowthPolicy, error) {
	switch p.Policy {
	case "fixed":
		return memory.FixedPolicy{}, nil
	case "exponential", "":
		return memory.ExponentialPolicy{}, nil
	case "linear":
		return memory.LinearPolicy{}, nil
	case "percentage":
		return memory.NewPercentagePolicy(p.Percent), nil
	default:
		return nil, fmt.Errorf("unknown growth policy %q (want fixed, exponential, linear or percentage)", p.Policy)
	}
}

// Options returns the memory options implied by the profile.
func (p Profile) Options() []memory.Option {
	var opts []memory.Option
	if p.MaxSize > 0 {
		opts = append(opts, memory.WithMaxSize(p.MaxSize))
	}
	if p.Lazy {
		opts = append(opts, memory.WithLazyInit())
	}
	return opts
}
