package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sells-group/compscope/internal/geo"
	"github.com/sells-group/compscope/pkg/geocode"
)

var geoCmd = &cobra.Command{
	Use:   "geo",
	Short: "Geography resolution utilities",
}

var geoResolveCmd = &cobra.Command{
	Use:   "resolve <location>",
	Short: "Resolve a location string to OEWS geography",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := []geo.Option{}
		if cfg.Geocode.Enabled {
			opts = append(opts,
				geo.WithGeocoder(geocode.NewClient(geocode.WithBaseURL(cfg.Geocode.BaseURL))))
		}
		resolver := geo.NewResolver(opts...)

		res := resolver.Resolve(cmd.Context(), strings.Join(args, " "))
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Input: %s\n", res.Input)
		if res.Metro != nil {
			fmt.Fprintf(out, "Metro: %s (CBSA %s, area %s)\n", res.Metro.Name, res.Metro.CBSA, res.Metro.AreaCode)
		} else {
			fmt.Fprintln(out, "Metro: none")
		}
		if res.State != nil {
			fmt.Fprintf(out, "State: %s (FIPS %s, area %s)\n", res.State.Name, res.State.FIPS, res.State.AreaCode)
		} else {
			fmt.Fprintln(out, "State: none")
		}
		fmt.Fprintln(out, "National: area 0000000")
		return nil
	},
}

func init() {
	geoCmd.AddCommand(geoResolveCmd)
	rootCmd.AddCommand(geoCmd)
}
