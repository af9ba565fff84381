package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/meltui/melt/internal/gallery"
)

func demosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demos",
		Short: "List the gallery demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := gallery.Default()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, d := range reg.List() {
				fmt.Fprintf(tw, "%s\t%s\n", d.Name, d.Doc.Summary)
			}
			return tw.Flush()
		},
	}
}
