package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/galaxy-admin/internal/service"
)

func (a *App) vaultCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Vault key maintenance",
	}
	cmd.AddCommand(a.vaultRotateCommand())
	return cmd
}

func (a *App) vaultRotateCommand() *cobra.Command {
	var (
		file string
		opts service.VaultOptions
	)

	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Prepend a new key to the encryption keys of a vault file",
		Long: `Generates a new Fernet key and puts it first in the encryption_keys list of
the YAML vault configuration in --file. Galaxy encrypts with the first key
and decrypts with any of them.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			before, after, err := service.NewVaultService(opts, a.log).Rotate(file)
			if err != nil {
				return err
			}
			a.printf("loaded %d keys, wrote %d keys to %s\n", before, after, file)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Vault configuration file")
	cmd.Flags().IntVar(&opts.MaxKeys, "maxkeys", 0, "Keep at most this many keys, 0 keeps all")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
