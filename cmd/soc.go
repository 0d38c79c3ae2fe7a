package main

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/compscope/internal/soc"
	"github.com/sells-group/compscope/pkg/onet"
)

var socCmd = &cobra.Command{
	Use:   "soc",
	Short: "SOC occupation utilities",
}

var socMatchCmd = &cobra.Command{
	Use:   "match <job title>",
	Short: "Match a free-text job title to SOC occupations",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := []soc.MatcherOption{}
		if cfg.ONET.Username != "" && cfg.ONET.Password != "" {
			client := onet.NewClient(cfg.ONET.Username, cfg.ONET.Password, onet.WithBaseURL(cfg.ONET.BaseURL))
			opts = append(opts, soc.WithExternal(soc.NewONETExternal(client)))
		}
		matcher := soc.NewMatcher(opts...)

		title := strings.Join(args, " ")
		matches := matcher.Match(cmd.Context(), title)
		if len(matches) == 0 {
			return eris.Errorf("no occupation found for %q", title)
		}

		out := cmd.OutOrStdout()
		for _, m := range matches {
			fmt.Fprintf(out, "%s  %-40s  %.2f  %s\n", m.Code, m.Title, m.Confidence, m.Method)
		}
		return nil
	},
}

var socCleanCmd = &cobra.Command{
	Use:   "clean <code>",
	Short: "Normalize an SOC code and show its rollups",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := soc.Clean(args[0])
		if c == "" {
			return eris.Errorf("%q is not a recognizable SOC code", args[0])
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Canonical: %s\n", c)
		fmt.Fprintf(out, "Series:    %s\n", soc.ForSeries(c))
		fmt.Fprintf(out, "Group:     %s (%s)\n", soc.MajorGroup(c), soc.Describe(c))
		if chain := soc.FallbackChain(c); len(chain) > 0 {
			fmt.Fprintf(out, "Fallbacks: %s\n", strings.Join(chain, " -> "))
		}
		return nil
	},
}

func init() {
	socCmd.AddCommand(socMatchCmd)
	socCmd.AddCommand(socCleanCmd)
	rootCmd.AddCommand(socCmd)
}
