// Command kvargs-example declares and binds its arguments with kvargs, and
// prints what it got.
//
// Any of these work:
//  kvargs-example infile outfile
//  kvargs-example infile outfile 1
//  kvargs-example infile snkfile=outfile method=4
//  kvargs-example srcfile=infile snkfile=outfile method=2 log_level=debug
//
// And these fail:
//  kvargs-example outfile
//  kvargs-example infile outfile 0
//  kvargs-example infile snkfile=outfile 4
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/anacrolix/kvargs"
)

const appendix = `  Methods are:

    1 -> method 1
    2 -> method 2
    3 -> method 3
    4 -> method 4
`

type config struct {
	Srcfile  string
	Snkfile  string
	Method   int
	LogLevel slog.Level
	LogJSON  bool     `kvargs:"log_json"`
	Ignored  []string `kvargs:"_ignored_"`
}

func declare(m *kvargs.Manager) error {
	for _, p := range []struct {
		name string
		opts []kvargs.ParamOpt
	}{
		{"srcfile", []kvargs.ParamOpt{kvargs.Desc("input file path"), kvargs.Type(kvargs.ExistingPath)}},
		{"snkfile", []kvargs.ParamOpt{kvargs.Desc("output file path"), kvargs.Type(kvargs.ExistingPath)}},
		{"method", []kvargs.ParamOpt{kvargs.Desc("method nr: 1-4"), kvargs.Type(kvargs.IntRange(1, 4)), kvargs.TypeName("int 1-4"), kvargs.Default(3)}},
		{"log_level", []kvargs.ParamOpt{kvargs.Desc("debug, info, warn or error"), kvargs.Type(kvargs.LogLevel), kvargs.Default(slog.LevelInfo)}},
		{"log_json", []kvargs.ParamOpt{kvargs.Desc("log as JSON"), kvargs.Type(kvargs.Bool), kvargs.Default(false)}},
	} {
		if err := m.Add(p.name, p.opts...); err != nil {
			return err
		}
	}
	return nil
}

func configureLogging(cfg config) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler
	if cfg.LogJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func main() {
	var cfg config
	m := kvargs.New(kvargs.Appendix(appendix))
	_, err := m.With(declare, kvargs.Scope(&cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n\n", err)
		m.WriteUsage(os.Stderr)
		os.Exit(2)
	}
	configureLogging(cfg)
	slog.Debug("arguments bound", "config", cfg)
	fmt.Println(cfg.Srcfile)
	fmt.Println(cfg.Snkfile)
	fmt.Printf("you asked for method: %d\n", cfg.Method)
	if len(cfg.Ignored) != 0 {
		fmt.Printf("ignored: %q\n", cfg.Ignored)
	}
}
