// Package cli implements the launchctl command, a terminal client for the
// dashboard JSON API.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"launchdash/internal/domain"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCmd builds the launchctl command tree writing to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	var (
		host   string
		output string
	)

	rootCmd := &cobra.Command{
		Use:           "launchctl",
		Short:         "Launch analytics dashboard CLI",
		Long:          "Command-line client for the launch analytics dashboard API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// Precedence: flag > env > default.
			envOverride(cmd.Flags(), "host", "LAUNCHDASH_HOST", &host)
			envOverride(cmd.Flags(), "output", "LAUNCHDASH_OUTPUT", &output)
		},
	}

	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "dashboard server base URL")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "output format: table or json")

	rootCmd.AddCommand(newSitesCmd(out, &host, &output))
	rootCmd.AddCommand(newDistributionCmd(out, &host, &output))
	rootCmd.AddCommand(newCorrelationCmd(out, &host, &output))

	return rootCmd
}

func newSitesCmd(out io.Writer, host, output *string) *cobra.Command {
	return &cobra.Command{
		Use:   "sites",
		Short: "List launch sites",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := NewClient(*host).Sites()
			if err != nil {
				return err
			}
			if *output == "json" {
				return printJSON(out, resp)
			}
			for _, site := range resp.Sites {
				fmt.Fprintln(out, site)
			}
			return nil
		},
	}
}

func newDistributionCmd(out io.Writer, host, output *string) *cobra.Command {
	var site string
	cmd := &cobra.Command{
		Use:   "distribution",
		Short: "Show the launch success distribution",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dist, err := NewClient(*host).Distribution(site)
			if err != nil {
				return err
			}
			if *output == "json" {
				return printJSON(out, dist)
			}
			fmt.Fprintln(out, dist.Title)
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LABEL\tCOUNT\tSHARE")
			for _, slice := range dist.Slices {
				fmt.Fprintf(w, "%s\t%d\t%.1f%%\n", slice.Label, slice.Count, slice.Fraction*100)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&site, "site", domain.SiteAll, "launch site, or ALL")
	return cmd
}

func newCorrelationCmd(out io.Writer, host, output *string) *cobra.Command {
	var (
		site string
		min  float64
		max  float64
	)
	cmd := &cobra.Command{
		Use:   "correlation",
		Short: "Show payload/outcome correlation points",
		RunE: func(cmd *cobra.Command, _ []string) error {
			corr, err := NewClient(*host).Correlation(site, min, max)
			if err != nil {
				return err
			}
			if *output == "json" {
				return printJSON(out, corr)
			}
			fmt.Fprintln(out, corr.Title)
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PAYLOAD (KG)\tOUTCOME\tBOOSTER\tSITE")
			for _, p := range corr.Points {
				fmt.Fprintf(w, "%.0f\t%s\t%s\t%s\n",
					p.PayloadMass, domain.OutcomeLabel(p.Outcome), p.Booster, p.Site)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&site, "site", domain.SiteAll, "launch site, or ALL")
	cmd.Flags().Float64Var(&min, "min", -1, "minimum payload mass in kg (server default: observed min)")
	cmd.Flags().Float64Var(&max, "max", -1, "maximum payload mass in kg (server default: observed max)")
	return cmd
}

// envOverride applies an environment fallback when the flag was not set
// explicitly.
func envOverride(flags *pflag.FlagSet, name, envKey string, target *string) {
	if flags.Changed(name) {
		return
	}
	if v := os.Getenv(envKey); v != "" {
		*target = v
	}
}

func printJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
