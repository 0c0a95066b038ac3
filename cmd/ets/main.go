// Command ets runs a file of logistics events and queries, printing query results to stdout.
//
//	ets [-config ets.toml] [-log-level debug] [-summary] events.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/CristianoRez/Entangled-Threads/Logistics"
	"github.com/CristianoRez/Entangled-Threads/config"
	"github.com/CristianoRez/Entangled-Threads/logutil"
)

type options struct {
	configFile string
	logLevel   string
	summary    bool
	events     string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process: it returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ets", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts options
	fs.StringVar(&opts.configFile, "config", "", "toml configuration file")
	fs.StringVar(&opts.logLevel, "log-level", "", "overrides log.level of the configuration")
	fs.BoolVar(&opts.summary, "summary", false, "print customers and packages after the run")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: ets [flags] events.txt")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, "Error: no event file")
		fs.Usage()
		return 1
	}
	opts.events = fs.Arg(0)
	if err := execute(opts, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func execute(opts options, stdout io.Writer) error {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.summary {
		cfg.Output.Summary = true
	}
	logger, err := logutil.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	f, err := os.Open(opts.events)
	if err != nil {
		return err
	}
	defer f.Close()
	q, err := Logistics.Parse(f)
	if err != nil {
		logger.Error("parse", zap.String("file", opts.events), zap.Error(err))
		return err
	}

	r := Logistics.NewRegistry(cfg.Registry.Sizes(), logger)
	if err = r.Run(q, stdout); err != nil {
		logger.Error("run", zap.String("file", opts.events), zap.Int("applied", r.Len()), zap.Error(err))
		return err
	}
	if cfg.Output.Summary {
		if _, err = r.Summary().WriteTo(stdout); err != nil {
			return err
		}
	}
	_, err = r.Close()
	return err
}
