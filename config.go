package urlform

import (
	"errors"
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/signadot/urlform/policy"
)

var ErrConfig = errors.New("config error")

// Config is the file form of an Encoder's policies.  Empty fields keep the
// defaults.
//
//	alphabetize = false
//	array = "index-in-brackets"
//	key = "snake-case"
//	date = "iso8601"
//	space = "plus"
type Config struct {
	Alphabetize *bool  `toml:"alphabetize" json:"alphabetize,omitempty" yaml:"alphabetize,omitempty"`
	Array       string `toml:"array" json:"array,omitempty" yaml:"array,omitempty"`
	Bool        string `toml:"bool" json:"bool,omitempty" yaml:"bool,omitempty"`
	Data        string `toml:"data" json:"data,omitempty" yaml:"data,omitempty"`
	Date        string `toml:"date" json:"date,omitempty" yaml:"date,omitempty"`
	DateLayout  string `toml:"date_layout" json:"date_layout,omitempty" yaml:"date_layout,omitempty"`
	Key         string `toml:"key" json:"key,omitempty" yaml:"key,omitempty"`
	KeyPath     string `toml:"key_path" json:"key_path,omitempty" yaml:"key_path,omitempty"`
	Nil         string `toml:"nil" json:"nil,omitempty" yaml:"nil,omitempty"`
	Space       string `toml:"space" json:"space,omitempty" yaml:"space,omitempty"`
	// Allowed adds to policy.DefaultQueryAllowed.
	Allowed string `toml:"allowed" json:"allowed,omitempty" yaml:"allowed,omitempty"`
}

// LoadConfig reads a TOML config file.  Unknown keys are an error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}
	if undec := md.Undecoded(); len(undec) != 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return nil, fmt.Errorf("%w: %s: unknown keys %v", ErrConfig, path, keys)
	}
	return cfg, nil
}

// ParseConfig reads a TOML config from text.
func ParseConfig(text string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.Decode(text, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return cfg, nil
}

// Options converts the config to encoder options.
func (c *Config) Options() ([]Option, error) {
	var opts []Option
	if c.Alphabetize != nil {
		opts = append(opts, WithAlphabetize(*c.Alphabetize))
	}
	if c.Array != "" {
		a, err := policy.ParseArrayStyle(c.Array)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithArray(a))
	}
	if c.Bool != "" {
		b, err := policy.ParseBoolStyle(c.Bool)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithBool(b))
	}
	if c.Data != "" {
		d, err := policy.ParseDataStyle(c.Data)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithData(d))
	}
	switch {
	case c.DateLayout != "":
		opts = append(opts, WithDate(policy.DateLayout(c.DateLayout)))
	case c.Date != "":
		d, err := policy.ParseDateStyle(c.Date)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithDate(d))
	}
	if c.Key != "" {
		k, err := policy.ParseKeyStyle(c.Key)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithKey(k))
	}
	if c.KeyPath != "" {
		k, err := policy.ParseKeyPathStyle(c.KeyPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithKeyPath(k))
	}
	if c.Nil != "" {
		n, err := policy.ParseNilStyle(c.Nil)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithNil(n))
	}
	if c.Space != "" {
		s, err := policy.ParseSpaceStyle(c.Space)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithSpace(s))
	}
	if c.Allowed != "" {
		var cs policy.CharSet
		if err := cs.UnmarshalText([]byte(c.Allowed)); err != nil {
			return nil, err
		}
		opts = append(opts, WithAllowed(policy.DefaultQueryAllowed.Union(cs)))
	}
	return opts, nil
}

// Encoder returns an Encoder configured by c.
func (c *Config) Encoder() (*Encoder, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return New(opts...), nil
}
