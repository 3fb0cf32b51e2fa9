package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// InitResult is the JSON payload of the init command.
type InitResult struct {
	SchemaVersion int    `json:"schema_version"`
	ConfigPath    string `json:"config_path"`
	ConfigWritten bool   `json:"config_written"`
}

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or upgrade the store",
		Long: `Create the products and clients tables, applying any pending schema
migrations. Writes the configuration file with the effective settings when it
does not exist yet.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(f *OutputFormatter, s *session) error {
				version, err := s.store.SchemaVersion(cmd.Context())
				if err != nil {
					return err
				}

				result := InitResult{SchemaVersion: version, ConfigPath: rootOpts.ConfigPath}
				if _, err := os.Stat(rootOpts.ConfigPath); os.IsNotExist(err) {
					if err := s.cfg.Save(rootOpts.ConfigPath); err != nil {
						return err
					}
					result.ConfigWritten = true
					s.log.Info("configuration written", zap.String("path", rootOpts.ConfigPath))
				}

				if f.JSON() {
					return f.Success(result)
				}
				f.Info("Banco de dados pronto (schema versão %d).", result.SchemaVersion)
				if result.ConfigWritten {
					f.Info("Configuração gravada em %s.", result.ConfigPath)
				}
				return nil
			})
		},
	}
}
