package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/compscope/internal/blend"
	"github.com/sells-group/compscope/internal/research"
	"github.com/sells-group/compscope/internal/soc"
)

var (
	researchTitle    string
	researchLocation string
	researchSOC      string
)

var researchCmd = &cobra.Command{
	Use:   "research",
	Short: "Run a compensation research query",
	Example: `  compscope research --title "senior data engineer" --location "Austin, TX"
  compscope research --title "registered nurse" --location "Boise, ID" --soc 29-1141.00`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if researchTitle == "" {
			return eris.New("--title is required")
		}

		socOverride := ""
		if researchSOC != "" {
			socOverride = soc.Clean(researchSOC)
			if socOverride == "" {
				return eris.Errorf("--soc %q is not a valid SOC code", researchSOC)
			}
		}

		env, err := initPipeline(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		res, err := env.Pipeline.Run(ctx, researchTitle, researchLocation, socOverride)
		if err != nil {
			if eris.Is(err, research.ErrNoOccupationMatch) {
				return eris.Errorf("no occupation found for %q; try a more common job title", researchTitle)
			}
			return err
		}

		printResult(cmd, res)
		return nil
	},
}

func printResult(cmd *cobra.Command, res *research.Result) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Occupation: %s (%s) [%s %.2f]\n",
		res.Match.Title, res.Match.Code, res.Match.Method, res.Match.Confidence)
	fmt.Fprintf(out, "Location:   %s\n\n", describeGeo(res))

	if len(res.Observations) == 0 {
		fmt.Fprintln(out, "No wage data found in any source.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SOURCE\tLEVEL\tGEOGRAPHY\tMEDIAN\tDETAIL")
	for _, o := range res.Observations {
		detail := ""
		switch {
		case o.Year != "":
			detail = "survey " + o.Year
		case o.Postings > 0:
			detail = fmt.Sprintf("%d postings", o.Postings)
		}
		if o.Min > 0 && o.Max > 0 {
			detail += fmt.Sprintf(" (%s-%s)", FormatUSD(o.Min), FormatUSD(o.Max))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			o.SourceID, o.Level, o.GeoLabel, FormatUSD(o.Median), strings.TrimSpace(detail))
	}
	w.Flush() //nolint:errcheck

	fmt.Fprintln(out, "\nLocal medians:")
	seen := map[string]bool{}
	for _, o := range res.Observations {
		if seen[o.SourceID] {
			continue
		}
		seen[o.SourceID] = true
		if v, ok := blend.LocalMedian(o.SourceID, res.Observations); ok {
			fmt.Fprintf(out, "  %-10s %s\n", o.SourceID, FormatUSD(v))
		}
	}

	if res.Estimate == nil {
		fmt.Fprintln(out, "\nNo blended estimate: no blendable source returned data.")
		return
	}
	fmt.Fprintf(out, "\nBlended estimate: %s  (range %s-%s, %d contributing, %s)\n",
		FormatUSD(res.Estimate.Value),
		FormatUSD(res.Estimate.Min), FormatUSD(res.Estimate.Max),
		res.Estimate.Contributors, res.Estimate.Scope)
}

func describeGeo(res *research.Result) string {
	var parts []string
	if res.Geo.Metro != nil {
		parts = append(parts, res.Geo.Metro.Name)
	}
	if res.Geo.State != nil {
		parts = append(parts, res.Geo.State.Name)
	}
	parts = append(parts, "United States")
	return strings.Join(parts, " / ")
}

func init() {
	researchCmd.Flags().StringVar(&researchTitle, "title", "", "free-text job title (required)")
	researchCmd.Flags().StringVar(&researchLocation, "location", "", `location as "City, ST"`)
	researchCmd.Flags().StringVar(&researchSOC, "soc", "", "pin the SOC occupation code instead of ranking matches")
	rootCmd.AddCommand(researchCmd)
}
