package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/urlform"
	"github.com/signadot/urlform/encode"
	"github.com/signadot/urlform/policy/script"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Verbose bool `cli:"name=v desc='log debug messages to stderr'"`

	InFormat *inputFormat
	Config   *urlform.Config

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**inputFormat) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := parseInputFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) configOpt(_ *cli.Context, a string) (any, error) {
	c, err := urlform.LoadConfig(a)
	if err != nil {
		return nil, err
	}
	cfg.Config = c
	return a, nil
}

func (cfg *MainConfig) inFormat() inputFormat {
	if cfg.InFormat == nil {
		return formatJSON
	}
	return *cfg.InFormat
}

// colors returns the colors to use writing to w, if any.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	colorsSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorsSet = opt.Value != nil
			break
		}
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

// PolicyConfig holds the encoding flags shared by encode, tree and diff.
type PolicyConfig struct {
	Array      string `cli:"name=array desc='array keys: brackets, no-brackets, indexed'"`
	Bool       string `cli:"name=bool desc='booleans: numeric, literal'"`
	Data       string `cli:"name=data desc='byte strings: base64, deferred'"`
	Date       string `cli:"name=date desc='times: deferred, seconds, milliseconds, iso8601'"`
	DateLayout string `cli:"name=date-layout desc='times in a go time layout'"`
	Key        string `cli:"name=key desc='keys: as-is, snake-case, kebab-case, capitalized, upper-case, lower-case'"`
	KeyPath    string `cli:"name=keypath desc='sub keys: brackets, dots'"`
	Nil        string `cli:"name=nil desc='nils: drop-key, drop-value, null'"`
	Space      string `cli:"name=space desc='spaces: percent, plus'"`
	Allowed    string `cli:"name=allowed desc='extra characters left unescaped'"`
	Unsorted   bool   `cli:"name=unsorted desc='keep insertion order'"`

	KeyExpr  string `cli:"name=key-expr desc='expr expression computing keys'"`
	DateExpr string `cli:"name=date-expr desc='expr expression computing times'"`

	Patch string `cli:"name=patch desc='json patch file applied to inputs'"`
	Merge string `cli:"name=merge desc='json merge patch file applied to inputs'"`
}

// config overlays the flags on base.
func (p *PolicyConfig) config(base *urlform.Config) *urlform.Config {
	res := &urlform.Config{}
	if base != nil {
		*res = *base
	}
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&res.Array, p.Array)
	set(&res.Bool, p.Bool)
	set(&res.Data, p.Data)
	set(&res.Date, p.Date)
	set(&res.DateLayout, p.DateLayout)
	set(&res.Key, p.Key)
	set(&res.KeyPath, p.KeyPath)
	set(&res.Nil, p.Nil)
	set(&res.Space, p.Space)
	set(&res.Allowed, p.Allowed)
	if p.Unsorted {
		f := false
		res.Alphabetize = &f
	}
	return res
}

func (p *PolicyConfig) encoder(mainCfg *MainConfig, w io.Writer) (*urlform.Encoder, error) {
	opts, err := p.config(mainCfg.Config).Options()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if p.KeyExpr != "" {
		f, err := script.KeyEncoding(p.KeyExpr)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		opts = append(opts, urlform.WithKey(f))
	}
	if p.DateExpr != "" {
		f, err := script.DateEncoding(p.DateExpr)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		opts = append(opts, urlform.WithDate(f))
	}
	if c := mainCfg.colors(w); c != nil {
		opts = append(opts, urlform.WithColors(c))
	}
	return urlform.New(opts...), nil
}

type EncodeConfig struct {
	*MainConfig
	Policy *PolicyConfig

	Jobs int `cli:"name=j desc='number of inputs encoded at once'"`

	Encode *cli.Command
}

type TreeConfig struct {
	*MainConfig
	Policy *PolicyConfig

	At string `cli:"name=at desc='kpath of the subtree to show'"`

	Tree *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Policy *PolicyConfig

	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type ServeConfig struct {
	*MainConfig

	Serve *cli.Command
}
