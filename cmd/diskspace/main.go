package main

import (
	_ "embed"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"diskspace/pkg/capacity"
	"diskspace/pkg/config"
	"diskspace/pkg/diskspace"
	"diskspace/pkg/humanizer"
	"diskspace/pkg/log"
	"diskspace/pkg/models"
	"diskspace/pkg/server"
)

//go:embed VERSION
var Version string

const usageText = `Usage:
  diskspace [flags] PATH...   print capacity of the filesystem backing each directory
  diskspace [flags] serve     serve GET /stat over HTTP

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("diskspace", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprint(stderr, usageText)
		flags.PrintDefaults()
	}

	configPath := flags.String("config", "", "YAML config file")
	humanizeFlag := flags.String("humanize", "", "Render sizes: off, binary or decimal")
	jsonOutput := flags.Bool("json", false, "Print one JSON object per path")
	logLevel := flags.String("log-level", "", "Log level (debug, info, warn, error)")
	listen := flags.String("listen", "", "HTTP listen address for serve")
	showVersion := flags.Bool("version", false, "Print version and exit")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(stdout, strings.TrimSpace(Version))
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "diskspace:", err)
		return 2
	}
	if err := applyFlags(cfg, *humanizeFlag, *logLevel, *listen); err != nil {
		fmt.Fprintln(stderr, "diskspace:", err)
		return 2
	}

	log.Configure(stderr, cfg.LogFormat, cfg.LogLevel)

	if flags.NArg() == 0 {
		flags.Usage()
		return 2
	}

	if flags.Arg(0) == "serve" {
		srv := server.NewStatServer(cfg, strings.TrimSpace(Version), nil)
		if err := srv.Start(); err != nil {
			log.Error().Err(err).Msg("Server failed")
			return 1
		}
		return 0
	}

	return printStats(stdout, flags.Args(), cfg.Humanize, *jsonOutput)
}

func applyFlags(cfg *config.Config, humanizeFlag, logLevel, listen string) error {
	if humanizeFlag != "" {
		mode, err := humanizer.ParseMode(humanizeFlag)
		if err != nil {
			return err
		}
		cfg.Humanize = mode
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if listen != "" {
		cfg.Listen = listen
	}
	return cfg.Validate()
}

type jsonLine struct {
	Path  string               `json:"path"`
	Stats *models.Report       `json:"stats,omitempty"`
	Error *capacity.QueryError `json:"error,omitempty"`
}

// printStats queries every path and returns the process exit status.
func printStats(out io.Writer, paths []string, mode humanizer.Mode, asJSON bool) int {
	status := 0
	encoder := json.NewEncoder(out)

	for _, path := range paths {
		report, err := diskspace.Stat(path, diskspace.Options{Humanize: mode})
		if err != nil {
			status = 1
		}

		if asJSON {
			line := jsonLine{Path: path, Stats: report}
			errors.As(err, &line.Error)
			if encErr := encoder.Encode(line); encErr != nil {
				log.Error().Err(encErr).Msg("Failed to write output")
				return 1
			}
			continue
		}

		if err != nil {
			fmt.Fprintf(out, "%s\terror: %v\n", path, err)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", path, formatReport(report))
	}

	return status
}

func formatReport(report *models.Report) string {
	if report.Humanized() {
		h := report.Human
		return fmt.Sprintf("total=%s free=%s available=%s used=%s", h.Total, h.Free, h.Available, h.Used)
	}

	b := report.Bytes
	return fmt.Sprintf("total=%s free=%s available=%s used=%s",
		humanize.Comma(int64(b.Total)),     //nolint:gosec // disk sizes fit in int64
		humanize.Comma(int64(b.Free)),      //nolint:gosec // disk sizes fit in int64
		humanize.Comma(int64(b.Available)), //nolint:gosec // disk sizes fit in int64
		humanize.Comma(int64(b.Used)),      //nolint:gosec // disk sizes fit in int64
	)
}
