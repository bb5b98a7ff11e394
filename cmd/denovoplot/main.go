// denovoplot draws the number of candidate de novo variants per proband
// under two filtering strategies as a swarm plot, and shows it in a window.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/carbocation/denovoplot/compileinfoprint"
)

// summaryBins is the number of histogram buckets printed by -summary.
const summaryBins = 10

func main() {
	var out string
	var port int
	var summarize bool

	flag.StringVar(&out, "out", "", "(Optional) Write the chart to this PNG file instead of opening a window.")
	flag.IntVar(&port, "port", 0, "(Optional) Serve the chart over HTTP on this port instead of opening a window, until the page's close button is pressed.")
	flag.BoolVar(&summarize, "summary", false, "(Optional) Print per-strategy counts, means, medians and histograms to stderr.")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <input.tsv>\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "The input is tab-delimited: an index column followed by two numeric columns, one per filtering strategy. It may be compressed and may be a gs:// path.")
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config{
		Input:     flag.Arg(0),
		Out:       out,
		Port:      port,
		Summarize: summarize,
	}

	if err := run(ctx, cfg); err != nil {
		log.Fatalln(err)
	}
}
