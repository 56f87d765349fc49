package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"stegano/internal/crypto"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a random 32-byte key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := crypto.GenerateKey()
			if err != nil {
				return err
			}
			defer wipe(key)
			fmt.Fprintf(cmd.OutOrStdout(), "Key (hex):   %s\nFingerprint: %s\n", hex.EncodeToString(key), crypto.Fingerprint(key))
			return nil
		},
	}
}
