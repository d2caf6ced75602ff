// Package main provides the teamcover CLI: it reads a list of two-person
// teams and prints the smallest set of employees that represents every team.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/teamcover/bipartite"
	"github.com/katalvlaran/teamcover/config"
	"github.com/katalvlaran/teamcover/cover"
	"github.com/katalvlaran/teamcover/teams"
)

const appName = "teamcover"

// Version is the current teamcover CLI version.
var Version = "0.1.0"

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var (
		configPath string
		flags      = config.Default()
	)

	cmd := &cobra.Command{
		Use:   appName + " [input-file]",
		Short: "Invite the fewest employees so every team is represented",
		Long: `teamcover reads a team count followed by that many "a b" pairs, where a works
at location A and b at location B, and prints the size of a minimum set of
employees covering every team followed by one employee id per line.

Input is read from the given file, or from stdin when no file is given.`,
		Version:      Version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			overrideFromFlags(cmd, &cfg, flags)
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := newLogger(errOut, cfg.Level())

			src := in
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				src = f
			}

			return run(src, out, cfg, logger)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML configuration file")
	f.IntVar(&flags.Prefer, "prefer", flags.Prefer, "employee to invite when a minimum cover allows it (0 disables)")
	f.IntVar(&flags.MaxVertices, "max-vertices", flags.MaxVertices, "maximum number of distinct employees")
	f.IntVar(&flags.MaxTeams, "max-teams", flags.MaxTeams, "maximum number of teams the input may announce")
	f.IntVar(&flags.IDBound, "id-bound", flags.IDBound, "employee ids must be below this value")
	f.BoolVar(&flags.Verify, "verify", flags.Verify, "check the cover against every team before printing")
	f.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "log level (debug, info, warn, error)")

	return cmd
}

// overrideFromFlags copies explicitly set flags over cfg.
func overrideFromFlags(cmd *cobra.Command, cfg *config.Config, flags config.Config) {
	fs := cmd.Flags()
	if fs.Changed("prefer") {
		cfg.Prefer = flags.Prefer
	}
	if fs.Changed("max-vertices") {
		cfg.MaxVertices = flags.MaxVertices
	}
	if fs.Changed("max-teams") {
		cfg.MaxTeams = flags.MaxTeams
	}
	if fs.Changed("id-bound") {
		cfg.IDBound = flags.IDBound
	}
	if fs.Changed("verify") {
		cfg.Verify = flags.Verify
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = flags.LogLevel
	}
}

func newLogger(w io.Writer, level logrus.Level) *logrus.Entry {
	root := logrus.New()
	root.SetOutput(w)
	root.SetLevel(level)

	return root.WithField("app", appName)
}

// run parses the teams, computes the cover and writes it to out.
func run(in io.Reader, out io.Writer, cfg config.Config, logger *logrus.Entry) error {
	list, err := teams.Parse(in, cfg.IDBound, cfg.ParseOptions()...)
	if err != nil {
		return err
	}
	g, err := teams.Build(list, cfg.GraphOptions()...)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"teams":     len(list),
		"edges":     g.EdgeCount(),
		"employees": g.VertexCount(),
	}).Debug("team graph built")

	prefer := bipartite.ID(cfg.Prefer)
	res, err := cover.MinimumVertexCover(g,
		cover.WithInclude(prefer),
		cover.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	if cfg.Verify {
		if err = cover.Validate(g, res.Vertices); err != nil {
			return fmt.Errorf("verify: %w", err)
		}
	}

	fields := logrus.Fields{"invited": res.Size(), "phases": res.Phases}
	if prefer != bipartite.NIL && g.HasVertex(prefer) {
		fields["prefer"] = prefer
		fields["prefer_invited"] = res.Included
	}
	logger.WithFields(fields).Info("minimum cover computed")

	return teams.WriteCover(out, res.Vertices)
}
