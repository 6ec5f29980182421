package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"trenchsniffer.io/web/internal/config"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

// flags holds command-line overrides applied on top of config.Load.
type flags struct {
	addr      string
	templates string
	public    string
	content   string
	dev       bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	serve := newServeCmd(&f)

	root := &cobra.Command{
		Use:           "trench-web",
		Short:         "TrenchSniffer marketing site",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.PersistentFlags().StringVar(&f.addr, "addr", "", "HTTP listen address (default from TRENCH_WEB_PORT or PORT)")
	root.PersistentFlags().StringVar(&f.templates, "templates", "", "templates directory")
	root.PersistentFlags().StringVar(&f.public, "public", "", "public assets directory")
	root.PersistentFlags().StringVar(&f.content, "content", "", "site content YAML (default embedded)")
	root.PersistentFlags().BoolVar(&f.dev, "dev", false, "reload templates on change and log to the console")

	root.AddCommand(serve, newExportCmd(&f), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "trench-web %s\n", buildVersion())
		},
	}
}

func buildVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}

// loadConfig resolves env configuration and applies any flags that were set.
func loadConfig(f *flags, opts ...config.Option) (config.Config, error) {
	cfg, err := config.Load(opts...)
	if err != nil {
		return config.Config{}, err
	}
	if f.addr != "" {
		cfg.Server.Addr = f.addr
	}
	if f.templates != "" {
		cfg.Paths.Templates = f.templates
	}
	if f.public != "" {
		cfg.Paths.Public = f.public
	}
	if f.content != "" {
		cfg.Paths.Content = f.content
	}
	if f.dev {
		cfg.Dev = true
	}
	return cfg, nil
}
