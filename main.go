package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/repr"
	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/astrender/ast"
	"github.com/pontaoski/astrender/render"
	"github.com/pontaoski/astrender/treefile"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/astrender", "astrender")

// setupLogging installs the stderr formatter and the global level.
func setupLogging(level string) error {
	lvl, err := capnslog.ParseLevel(level)
	if err != nil {
		return tracerr.Wrap(err)
	}
	capnslog.SetFormatter(capnslog.NewPrettyFormatter(os.Stderr, lvl >= capnslog.DEBUG))
	capnslog.SetGlobalLogLevel(lvl)
	return nil
}

// renderFile loads a tree file and renders it into memory, so that a fault
// never leaves half a file behind.
func renderFile(tree string, indent int) ([]byte, error) {
	node, err := treefile.Load(tree)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	if err := render.Render(&b, node, indent); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func dumpFile(tree string, indent int) ([]byte, error) {
	node, err := treefile.Load(tree)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	if err := ast.Fprint(&b, node, indent); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func writeOutput(output string, data []byte) error {
	if output == "" {
		_, err := os.Stdout.Write(data)
		return tracerr.Wrap(err)
	}
	return tracerr.Wrap(os.WriteFile(output, data, 0o644))
}

// settings merges the config file with the command line flags.
func settings(c *cli.Context) (renderConfig, error) {
	path := c.String("config")
	if path == "" {
		path = findConfig(".")
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return cfg, err
	}
	if path != "" {
		plog.Debugf("using config %s", path)
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("indent") {
		cfg.Indent = c.Int("indent")
	}
	if err := cfg.validate(); err != nil {
		return cfg, tracerr.Wrap(err)
	}
	return cfg, setupLogging(cfg.LogLevel)
}

func treeArg(c *cli.Context) (string, error) {
	tree := c.Args().First()
	if tree == "" {
		return "", tracerr.Errorf("no tree file provided")
	}
	return tree, nil
}

func indentFlag(usage string) cli.Flag {
	return &cli.IntFlag{
		Name:  "indent",
		Usage: usage,
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "astrender",
		Usage:     "render syntax trees back to source",
		UsageText: "astrender [global options] command [command options] TREE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "config file (default: render.yaml, render.yml or render.toml if present)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG or TRACE",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "write a default " + defaultConfigFile,
				Action: func(c *cli.Context) error {
					if err := writeDefaultConfig(defaultConfigFile); err != nil {
						return err
					}
					fmt.Printf("wrote %s\n", defaultConfigFile)
					return nil
				},
			},
			{
				Name:      "render",
				Usage:     "render a tree file as source text",
				ArgsUsage: "TREE",
				Flags: []cli.Flag{
					indentFlag("spaces per indentation level (default: from config, else 4)"),
					&cli.StringFlag{
						Name:  "output",
						Usage: "write to `FILE` instead of stdout",
					},
					&cli.BoolFlag{
						Name:  "watch",
						Usage: "render again every time TREE changes",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := settings(c)
					if err != nil {
						return err
					}
					tree, err := treeArg(c)
					if err != nil {
						return err
					}
					output := c.String("output")

					once := func() error {
						data, err := renderFile(tree, cfg.Indent)
						if err != nil {
							return err
						}
						return writeOutput(output, data)
					}

					if !c.Bool("watch") {
						return once()
					}

					if err := once(); err != nil {
						tracerr.PrintSourceColor(err)
					}
					ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
					defer stop()
					return watchFile(ctx, tree, func() {
						if err := once(); err != nil {
							tracerr.PrintSourceColor(err)
						}
					})
				},
			},
			{
				Name:      "dump",
				Usage:     "print the node structure of a tree file",
				ArgsUsage: "TREE",
				Flags: []cli.Flag{
					indentFlag("indentation of the outermost node"),
					&cli.BoolFlag{
						Name:  "repr",
						Usage: "print every field instead of the kind outline",
					},
				},
				Action: func(c *cli.Context) error {
					// the config indent is a render setting; only a flag moves the dump
					if _, err := settings(c); err != nil {
						return err
					}
					tree, err := treeArg(c)
					if err != nil {
						return err
					}

					if c.Bool("repr") {
						node, err := treefile.Load(tree)
						if err != nil {
							return err
						}
						repr.Println(node, repr.Indent("  "), repr.OmitEmpty(true))
						return nil
					}

					data, err := dumpFile(tree, c.Int("indent"))
					if err != nil {
						return err
					}
					return writeOutput("", data)
				},
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		tracerr.PrintSourceColor(err)
		os.Exit(1)
	}
}
