package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"stegano/internal/crypto"
	"stegano/internal/util/memzero"
)

func fingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the fingerprint of a key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := loadKey()
			if err != nil {
				return err
			}
			if key == nil {
				return errors.New("no key given (-k, --key-hex or $STEGANO_KEY)")
			}
			defer wipe(key)
			if len(key) != crypto.KeySize {
				return fmt.Errorf("%w: must be %d bytes, got %d", crypto.ErrInvalidKeyLength, crypto.KeySize, len(key))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", crypto.Fingerprint(key))
			return nil
		},
	}
	addKeyFlags(cmd)
	return cmd
}

// wipe zeroes key material parsed from flags.
func wipe(key []byte) { memzero.Zero(key) }
