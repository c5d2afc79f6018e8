package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "config",
			Description: "toml file of encoding policies",
			Type:        cli.NamedFuncOpt(cfg.configOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y, toml/t, cbor/c, jsonc",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "urlform").
		WithSynopsis("urlform [opts] command [opts]").
		WithDescription("urlform encodes structured documents as application/x-www-form-urlencoded text.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return urlformMain(cfg, cc, args)
		}).
		WithSubs(
			EncodeCommand(cfg),
			TreeCommand(cfg),
			DiffCommand(cfg),
			ServeCommand(cfg))
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg, Policy: &PolicyConfig{}}
	opts := withPolicyOpts(cfg, cfg.Policy)
	cmd := cli.NewCommand("encode").
		WithAliases("e", "enc").
		WithSynopsis("encode [opts] [files]").
		WithDescription(encodeDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return encodeFiles(cfg, cc, args)
		})
	cfg.Encode = cmd
	return cmd
}

const encodeDescription = `encode form encodes each input document on its own line.

Inputs are read from the named files, or stdin when none are given or the
name is '-'.  Policy flags override the -config file.

Policies

  -array    brackets (a[]=1), no-brackets (a=1), indexed (a[0]=1)
  -bool     numeric (1/0), literal (true/false)
  -data     base64, deferred
  -date     deferred, seconds, milliseconds, iso8601
  -nil      drop-key, drop-value (a=), null (a=null)
  -key      as-is, snake-case, kebab-case, capitalized, upper-case, lower-case
  -keypath  brackets (a[b]=1), dots (a.b=1)
  -space    percent (%20), plus (+)

-key-expr and -date-expr take expr expressions, see
github.com/expr-lang/expr.  A key expression sees 'key' and the functions
snake, kebab, capitalize, upper and lower.  A date expression sees 't',
'unix', 'unixMilli' and 'rfc3339'.

-patch applies an RFC 6902 JSON patch and -merge an RFC 7386 merge patch
to each input before encoding.`

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg, Policy: &PolicyConfig{}}
	opts := withPolicyOpts(cfg, cfg.Policy)
	return cli.NewCommandAt(&cfg.Tree, "tree").
		WithAliases("t").
		WithSynopsis("tree [-at kpath] [opts] [files]").
		WithDescription("show the component tree of inputs as yaml").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tree(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Policy: &PolicyConfig{}}
	opts := withPolicyOpts(cfg, cfg.Policy)
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [opts] a b").
		WithDescription("diff the form encodings of two documents, one pair per line").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Serve, "serve").
		WithSynopsis("serve").
		WithDescription(serveDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}

const serveDescription = `serve answers JSON-RPC 2.0 requests on stdin and stdout.

Methods

  urlform/encode  {"value": any, "config": {...}} -> {"query": string}
  urlform/pairs   {"value": any, "config": {...}} -> {"pairs": [[k, v], ...]}

config takes the keys of a -config file.  It is applied over the -config
file given to urlform.`

// withPolicyOpts returns the options of cfg followed by the policy options.
func withPolicyOpts(cfg any, pCfg *PolicyConfig) []*cli.Opt {
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	pOpts, err := cli.StructOpts(pCfg)
	if err != nil {
		panic(err)
	}
	return append(opts, pOpts...)
}
