package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"stegano/internal/domain"
	"stegano/internal/store"
)

// encode <inpath> <data>: hide data in the image at <inpath>.
func encodeCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "encode <inpath> <data>",
		Short: "Hide data in an image (use - to read data from stdin)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Key problems surface before the image is touched.
			env, err := envelopeFromFlags()
			if err != nil {
				return err
			}
			var sealer domain.Sealer
			if env != nil {
				defer env.Destroy()
				sealer = env
			}

			inPath := args[0]
			data := []byte(args[1])
			if args[1] == "-" {
				if data, err = io.ReadAll(cmd.InOrStdin()); err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}
			if outPath == "" {
				outPath = store.OutputPath(inPath)
			}

			report, err := appCtx.Messages.Hide(cmd.Context(), inPath, outPath, data, sealer)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Encoded %d bytes into %s (%d of %d bytes used)\n",
				len(data), report.OutPath, report.PayloadBytes, report.Capacity)
			return nil
		},
	}
	addKeyFlags(cmd)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default <inpath without extension>-e.png)")
	return cmd
}
