package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stegano/internal/app"
	"stegano/internal/crypto"
)

var (
	verbose    bool
	workers    int
	cipherName string
	appCtx     *app.Wire

	keyRaw string
	keyHex string
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "stegano",
		Short:        "Hide and reveal data in the low bits of an image",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.NewWire(app.Config{
				Verbose: verbose,
				Workers: workers,
				Cipher:  cipherName,
			})
			if err != nil {
				return err
			}
			appCtx = w
			appCtx.Log.Debug("app wired",
				zap.String("command", cmd.Name()),
				zap.String("cipher", appCtx.Suite.String()),
				zap.Int("workers", workers),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				_ = appCtx.Log.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	root.PersistentFlags().IntVar(&workers, "workers", 1, "goroutines used to embed/extract large payloads")
	root.PersistentFlags().StringVar(&cipherName, "cipher", "aes-siv", "envelope cipher when hiding with a key (aes-siv, xchacha20poly1305)")

	root.AddCommand(encodeCmd(), decodeCmd(), capacityCmd(), keygenCmd(), fingerprintCmd())
	return root
}

// addKeyFlags registers the key flags shared by encode, decode and fingerprint.
func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&keyRaw, "key", "k", "", "key, exactly 32 bytes (default $"+app.KeyEnv+")")
	cmd.Flags().StringVar(&keyHex, "key-hex", "", "key as 64 hex characters")
}

// loadKey returns the key selected by flags or the environment, or nil when
// none was given.
func loadKey() ([]byte, error) {
	raw := keyRaw
	if raw == "" && keyHex == "" {
		raw = app.KeyFromEnv()
	}
	return crypto.ParseKey(raw, keyHex)
}

// envelopeFromFlags validates the key, if any, and returns a ready envelope.
// A nil envelope and nil error mean no key was given.
func envelopeFromFlags() (*crypto.Envelope, error) {
	key, err := loadKey()
	if err != nil || key == nil {
		return nil, err
	}
	defer wipe(key)
	return appCtx.Envelope(key)
}
