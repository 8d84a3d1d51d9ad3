// Command prlimit shows and changes the resource limits of a process, or runs
// a command with the given limits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/criyle/go-prlimit/config"
	"github.com/criyle/go-prlimit/internal/logger"
	"github.com/criyle/go-prlimit/pkg/rlimit"
	"go.uber.org/zap"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		pid                 int
		sets                arrayFlags
		configPath, output  string
		logLevel, logFormat string
		noHeadings          bool
	)

	fs := flag.NewFlagSet("prlimit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [options] [command [args...]]\n", fs.Name())
		fs.PrintDefaults()
	}
	fs.IntVar(&pid, "pid", 0, "Set the target process (0 for self)")
	fs.Var(&sets, "set", "Set a limit as resource=soft:hard (repeatable)")
	fs.StringVar(&configPath, "config", "", "Load limits from a yaml profile")
	fs.StringVar(&output, "output", "", "Set output format (table, raw), default table on terminal")
	fs.BoolVar(&noHeadings, "noheadings", false, "Don't print table headings")
	fs.StringVar(&logLevel, "log-level", "", "Set log level (debug, info, warn, error)")
	fs.StringVar(&logFormat, "log-format", "", "Set log format (console, json)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	pidSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "pid" {
			pidSet = true
		}
	})

	usageError := func(format string, v ...interface{}) int {
		fmt.Fprintf(stderr, "prlimit: "+format+"\n", v...)
		fs.Usage()
		return exitUsage
	}

	format, err := outputFormat(output, stdout)
	if err != nil {
		return usageError("%v", err)
	}

	cfg := config.Config{}
	if configPath != "" {
		if cfg, err = config.Load(configPath); err != nil {
			fmt.Fprintf(stderr, "prlimit: %v\n", err)
			return exitError
		}
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	log, err := logger.New(cfg.Log, stderr)
	if err != nil {
		return usageError("%v", err)
	}
	defer func() {
		_ = log.Sync()
	}()

	rs, err := cfg.Requests()
	if err != nil {
		fmt.Fprintf(stderr, "prlimit: %s: %v\n", configPath, err)
		return exitError
	}
	for _, s := range sets {
		r, err := rlimit.ParseRequest(s)
		if err != nil {
			return usageError("%v", err)
		}
		rs = append(rs, r)
	}

	if pidSet {
		cfg.Pid = pid
	}
	if cfg.Pid < 0 {
		return usageError("invalid pid %d", cfg.Pid)
	}

	if command := fs.Args(); len(command) > 0 {
		if cfg.Pid != 0 {
			return usageError("a command cannot be combined with a pid")
		}
		if err := apply(log, 0, rs); err != nil {
			fmt.Fprintf(stderr, "prlimit: %v\n", err)
			return exitError
		}
		log.Debug("exec", zap.Strings("args", command))
		err := execCommand(command)
		fmt.Fprintf(stderr, "prlimit: exec %s: %v\n", command[0], err)
		return exitError
	}

	var (
		rows   []rlimit.RLimit
		runErr error
	)
	if len(rs) == 0 {
		rows, runErr = rlimit.List(cfg.Pid)
	} else {
		results, err := rs.Apply(cfg.Pid)
		for _, r := range results {
			log.Debug("limit changed", zap.Int("pid", cfg.Pid), zap.Stringer("result", r))
			rows = append(rows, rlimit.RLimit{Res: r.Resource, Rlim: r.New})
		}
		runErr = err
	}

	if format == formatTable {
		err = writeTable(stdout, rows, !noHeadings)
	} else {
		err = writeRaw(stdout, rows)
	}
	if err == nil {
		err = runErr
	}
	if err != nil {
		log.Debug("prlimit failed", zap.Int("pid", cfg.Pid), zap.Error(err))
		fmt.Fprintf(stderr, "prlimit: %v\n", err)
		return exitError
	}
	return exitOK
}

func apply(log *zap.Logger, pid int, rs rlimit.RLimits) error {
	results, err := rs.Apply(pid)
	for _, r := range results {
		log.Debug("limit changed", zap.Int("pid", pid), zap.Stringer("result", r))
	}
	return err
}
