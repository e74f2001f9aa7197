package openaddr

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Config holds configuration settings for a Table instance
type Config struct {
	Capacity   int             // requested capacity, normalized by Policy
	LoadFactor float64         // must be in (0, 1]
	Probing    ProbingStrategy // defaults to QuadraticProbing
	Policy     CapacityPolicy  // defaults to PowerOfTwo
	Logger     *zerolog.Logger // defaults to a disabled logger
}

// DefaultConfig returns a fresh copy of the default configuration
func DefaultConfig() *Config {
	nop := zerolog.Nop()
	return &Config{
		Capacity:   DefaultCapacity,
		LoadFactor: DefaultLoadFactor,
		Probing:    QuadraticProbing{},
		Policy:     PowerOfTwo{},
		Logger:     &nop,
	}
}

// checkConfig validates the capacity and load factor and fills in any
// missing collaborators with their defaults. It never modifies conf.
func checkConfig(conf *Config) (*Config, error) {
	if conf == nil {
		return DefaultConfig(), nil
	}
	if conf.Capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrIllegalCapacity, conf.Capacity)
	}
	if conf.LoadFactor <= 0 || conf.LoadFactor > 1 {
		return nil, fmt.Errorf("%w: %v", ErrIllegalLoadFactor, conf.LoadFactor)
	}
	def := DefaultConfig()
	checked := *conf
	if checked.Probing == nil {
		checked.Probing = def.Probing
	}
	if checked.Policy == nil {
		checked.Policy = def.Policy
	}
	if checked.Logger == nil {
		checked.Logger = def.Logger
	}
	return &checked, nil
}

func (conf *Config) String() string {
	var sb strings.Builder
	sb.WriteString("Capacity: ")
	fmt.Fprintf(&sb, "%d", conf.Capacity)
	sb.WriteString("\n")
	sb.WriteString("LoadFactor: ")
	fmt.Fprintf(&sb, "%.2f", conf.LoadFactor)
	sb.WriteString("\n")
	sb.WriteString("Probing: ")
	fmt.Fprintf(&sb, "%T", conf.Probing)
	sb.WriteString("\n")
	sb.WriteString("Policy: ")
	fmt.Fprintf(&sb, "%T", conf.Policy)
	sb.WriteString("\n")
	return sb.String()
}
