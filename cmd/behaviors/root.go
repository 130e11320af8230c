package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/grindlemire/go-tui-behaviors/internal/debug"
)

// runner drives a demo on the configured backend.
type runner func(cfg Config, d demo) error

func runBackend(cfg Config, d demo) error {
	if cfg.Backend == BackendTcell {
		return runTcell(d)
	}
	return runTea(d)
}

// cli holds the state shared by the command tree.
type cli struct {
	v       *viper.Viper
	cfgFile string
	cfg     Config
	run     runner
}

func newCLI(run runner) *cli {
	return &cli{v: newViper(), run: run}
}

func (c *cli) bind(key string, fs *pflag.FlagSet, name string) {
	if err := c.v.BindPFlag(key, fs.Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", name, err))
	}
}

func (c *cli) rootCommand(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "behaviors",
		Short: "Interactive demos of the widget behavior layers",
		Long: `behaviors runs small terminal widgets composed from the behavior layers:
a tab strip driven by keys, clicks and swipes, and a mode switcher.

Settings come from flags, BEHAVIORS_* environment variables and an optional
YAML file given with --config.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return debug.Close()
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgFile, "config", "", "YAML config file")
	pf.String("backend", BackendTea, "terminal backend (tea|tcell)")
	pf.String("log-file", "", "write debug logs to this file")
	pf.String("log-level", "info", "log level (debug|info|warn|error)")
	c.bind("backend", pf, "backend")
	c.bind("log_file", pf, "log-file")
	c.bind("log_level", pf, "log-level")

	root.AddCommand(c.tabsCommand(), c.modesCommand(), versionCommand())
	return root
}

func (c *cli) setup(*cobra.Command, []string) error {
	cfg, err := loadConfig(c.v, c.cfgFile)
	if err != nil {
		return err
	}
	c.cfg = cfg
	if cfg.LogFile != "" {
		if err := debug.Init(cfg.LogFile); err != nil {
			return err
		}
	}
	debug.SetLevel(cfg.LogLevel)
	debug.Log("config: backend=%s tabs=%+v modes=%+v", cfg.Backend, cfg.Tabs, cfg.Modes)
	return nil
}

func (c *cli) tabsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tabs",
		Short: "Run the tab strip demo",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			ts, err := newTabsDemo(c.cfg)
			if err != nil {
				return err
			}
			return c.run(c.cfg, ts)
		},
	}
	fs := cmd.Flags()
	fs.String("position", "top", "tab row position (top|bottom|left|right)")
	fs.Bool("wrap", false, "wrap from the last tab to the first")
	fs.Bool("collapsible", false, "let Enter and Space collapse the page")
	fs.Int("width", 48, "layout width in cells")
	fs.StringSlice("pages", nil, "page captions")
	c.bind("tabs.position", fs, "position")
	c.bind("tabs.wrap", fs, "wrap")
	c.bind("tabs.collapsible", fs, "collapsible")
	c.bind("tabs.width", fs, "width")
	c.bind("tabs.pages", fs, "pages")
	return cmd
}

func (c *cli) modesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modes",
		Short: "Run the mode switcher demo",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return c.run(c.cfg, newModesDemo(c.cfg))
		},
	}
	fs := cmd.Flags()
	fs.StringSlice("names", nil, "mode names")
	fs.Bool("wrap", true, "wrap from the last mode to the first")
	c.bind("modes.names", fs, "names")
	c.bind("modes.wrap", fs, "wrap")
	return cmd
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "behaviors %s\n", version)
		},
	}
}
