package commands

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"stegano/internal/domain"
)

// notUTF8 replaces decoded data that is not valid UTF-8 text.
const notUTF8 = "Not UTF8"

// decode <inpath>: print the data hidden in the image at <inpath>.
func decodeCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "decode <inpath>",
		Short: "Reveal the data hidden in an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envelopeFromFlags()
			if err != nil {
				return err
			}
			var sealer domain.Sealer
			if env != nil {
				defer env.Destroy()
				sealer = env
			}

			data, err := appCtx.Messages.Reveal(cmd.Context(), args[0], sealer)
			if err != nil {
				return err
			}
			if raw {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Decoded Data:\n%s\n", renderText(data))
			return nil
		},
	}
	addKeyFlags(cmd)
	cmd.Flags().BoolVar(&raw, "raw", false, "write the decoded bytes to stdout unchanged")
	return cmd
}

// renderText returns data as text, or notUTF8 when it is not valid UTF-8.
func renderText(data []byte) string {
	if !utf8.Valid(data) {
		return notUTF8
	}
	return string(data)
}
