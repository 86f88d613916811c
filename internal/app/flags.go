package app

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// Options are the command-line options
type Options struct {
	ConfigPath  string
	BaseURL     string
	LogPath     string
	MetricsAddr string
	InitConfig  bool

	// one-shot search
	Print      bool
	Query      string
	DocketType string
	From       string
	To         string
	Agencies   []string
	CfrParts   []int
	Statuses   []string
}

// ParseFlags parses args (without the program name). It returns
// pflag.ErrHelp when usage was requested; usage has then been written to out.
func ParseFlags(args []string, out io.Writer) (Options, error) {
	var opts Options

	flagSet := pflag.NewFlagSet("mirrsearch", pflag.ContinueOnError)
	flagSet.SetOutput(out)
	flagSet.StringVar(&opts.ConfigPath, "config", "", "config file (default: user config dir/mirrsearch/config.toml)")
	flagSet.StringVar(&opts.BaseURL, "url", "", "search endpoint base URL, overrides search.base_url")
	flagSet.StringVar(&opts.LogPath, "log", "mirrsearch.log", "log file")
	flagSet.StringVar(&opts.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address at /metrics")
	flagSet.BoolVar(&opts.InitConfig, "init-config", false, "write the effective config to the config file and exit")

	flagSet.BoolVar(&opts.Print, "print", false, "run one search, print the results as JSON and exit")
	flagSet.StringVarP(&opts.Query, "query", "q", "", "search text (with --print)")
	flagSet.StringVar(&opts.DocketType, "docket-type", "", "docket type (with --print)")
	flagSet.StringVar(&opts.From, "from", "", "start year (with --print)")
	flagSet.StringVar(&opts.To, "to", "", "end year (with --print)")
	flagSet.StringArrayVar(&opts.Agencies, "agency", nil, "agency code, repeatable; the first one is sent (with --print)")
	flagSet.IntSliceVar(&opts.CfrParts, "cfr-part", nil, "CFR part, repeatable; the first one is sent (with --print)")
	flagSet.StringArrayVar(&opts.Statuses, "status", nil, "docket status, repeatable (with --print)")

	flagSet.Usage = func() {
		fmt.Fprintf(out, "Usage: mirrsearch [flags]\n\nTerminal search for regulatory dockets.\n\nFlags:\n%s", flagSet.FlagUsages())
	}

	if err := flagSet.Parse(args); err != nil {
		return opts, err
	}
	if flagSet.NArg() > 0 {
		return opts, fmt.Errorf("unexpected argument: %s", flagSet.Arg(0))
	}
	return opts, nil
}
