// Command seqdemo replays reference sequences of operations on the containers
// of this module, printing the state of the container after each step.
//
// Usage:
//
//	seqdemo [array|slist|dlist|clist|all] [flags]
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/segmentio/sequence/container/array"
)

type config struct {
	logLevel  string
	logFormat string
	capacity  int
}

func main() {
	if err := newCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		log.Fatal(err)
	}
}

func newCommand(stdout, stderr io.Writer) *cobra.Command {
	conf := config{}
	logger := log.New()

	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)

	cmd := &cobra.Command{
		Use:           fmt.Sprintf("seqdemo [%s|all]", strings.Join(names, "|")),
		Short:         "Replay reference operations on sequence containers",
		Args:          cobra.MaximumNArgs(1),
		ValidArgs:     append(names, "all"),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogger(logger, stderr, conf)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			selected := names
			if len(args) == 1 && args[0] != "all" {
				if _, ok := scenarios[args[0]]; !ok {
					return fmt.Errorf("unknown container %q, expected one of %s or all", args[0], strings.Join(names, ", "))
				}
				selected = args[:1]
			}

			options := []array.Option{array.Capacity(conf.capacity)}

			for _, name := range selected {
				r := &reporter{
					out: stdout,
					log: logger.WithField("container", name),
				}
				logger.WithField("container", name).Debug("starting scenario")
				if err := scenarios[name](r, options); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&conf.logLevel, "log-level", "info", "logging level (trace, debug, info, warn, error)")
	flags.StringVar(&conf.logFormat, "log-format", "text", "logging format (text or json)")
	flags.IntVar(&conf.capacity, "capacity", array.DefaultCapacity, "initial capacity of growable arrays")
	return cmd
}

func configureLogger(logger *log.Logger, w io.Writer, conf config) error {
	level, err := log.ParseLevel(conf.logLevel)
	if err != nil {
		return err
	}

	switch conf.logFormat {
	case "text":
		logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("unsupported log format: %q", conf.logFormat)
	}

	logger.SetOutput(w)
	logger.SetLevel(level)
	return nil
}
