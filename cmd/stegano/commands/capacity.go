package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// capacity <inpath>: report how much data the image can hold.
func capacityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capacity <inpath>",
		Short: "Show how many bytes an image can hide",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := appCtx.Messages.Capacity(cmd.Context(), args[0], appCtx.Suite.Overhead())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Image:        %dx%d (%d carrier bytes)\n", report.Width, report.Height, report.CarrierBytes)
			fmt.Fprintf(out, "Max data:     %d bytes\n", report.MaxPayload)
			fmt.Fprintf(out, "With key:     %d bytes (%s)\n", report.MaxSealed, appCtx.Suite)
			return nil
		},
	}
}
