// Command modelinfo prints the fit-facing parameter schemas of the
// emission-model channels.
//
// Usage:
//
//	modelinfo [flags] [channel-name ...]
//
// Without arguments it prints the schema of every channel.
//
// Examples:
//
//	modelinfo ic
//	modelinfo synchrotron pp
//	modelinfo -grid 1,2,4,8
//	modelinfo -grid 1,2,4,8 -midpoints
//	modelinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-gamma/emission"
	"github.com/cwbudde/algo-gamma/fit"
	"github.com/cwbudde/algo-gamma/grid"
)

type channelEntry struct {
	name    string
	alias   string
	channel emission.Channel
}

var registry = []channelEntry{
	{"inverse-compton", "ic", emission.ChannelInverseCompton},
	{"synchrotron", "sync", emission.ChannelSynchrotron},
	{"pion-decay", "pp", emission.ChannelPionDecay},
}

func main() {
	gridSpec := flag.String("grid", "", "comma-separated keV bin edges; prints the evaluator grid they merge into")
	midpoints := flag.Bool("midpoints", false, "insert bin midpoints into the grid preview")
	all := flag.Bool("all", false, "show all channels")
	list := flag.Bool("list", false, "list available channel names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: modelinfo [flags] [channel-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints parameter schemas of emission-model channels.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints every channel.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  modelinfo ic\n")
		fmt.Fprintf(os.Stderr, "  modelinfo synchrotron pp\n")
		fmt.Fprintf(os.Stderr, "  modelinfo -grid 1,2,4,8 -midpoints\n")
		fmt.Fprintf(os.Stderr, "  modelinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	if *gridSpec != "" {
		printGrid(*gridSpec, *midpoints)
		return
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching channels\n")
		os.Exit(1)
	}

	printSchemas(entries)
}

func printList() {
	for _, e := range registry {
		fmt.Printf("%s (%s)\n", e.name, e.alias)
	}
}

func resolveEntries(names []string) []channelEntry {
	byName := make(map[string]channelEntry, 2*len(registry))
	for _, e := range registry {
		byName[e.name] = e
		byName[e.alias] = e
	}

	var result []channelEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown channel %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printSchemas(entries []channelEntry) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Channel\tParameter\tValue\tMin\tMax\tState\tUnit\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "-------\t---------\t-----\t---\t---\t-----\t----\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, e := range entries {
		for _, s := range e.channel.Schema() {
			state := "free"
			if s.Frozen {
				state = "frozen"
			}

			if _, err := fmt.Fprintf(tw, "%s\t%s\t%g\t%s\t%s\t%s\t%s\n",
				e.name,
				s.Name,
				s.Val,
				fmtBound(s.Min),
				fmtBound(s.Max),
				state,
				s.Unit,
			); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
				return
			}
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printGrid(spec string, midpoints bool) {
	lo, hi, err := parseEdges(spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	merge := grid.Merge
	if midpoints {
		merge = grid.MergeMidpoints
	}

	points, err := merge(lo, hi)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Point\tkeV\teV\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "-----\t---\t--\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for i, p := range points {
		if _, err := fmt.Fprintf(tw, "%d\t%g\t%g\n", i, p, p*1e3); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// parseEdges turns a comma-separated boundary list like "1,2,4,8" into the
// low/high edge arrays of the bins it bounds, the shape fitting frameworks
// hand to models.
func parseEdges(spec string) (lo, hi []float64, err error) {
	parts := strings.Split(spec, ",")
	if len(parts) < 2 {
		return nil, nil, fmt.Errorf("grid spec %q: want at least two comma-separated edges", spec)
	}

	bounds := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("grid spec %q: bad edge %q: %v", spec, part, err)
		}
		bounds[i] = v
	}

	n := len(bounds) - 1

	return bounds[:n], bounds[1:], nil
}

func fmtBound(v float64) string {
	switch v {
	case fit.NoMin:
		return "-inf"
	case fit.NoMax:
		return "inf"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
