package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agiangrant/carousel"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a config file and print the options a carousel would use",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		explicit := cfgFile
		if len(args) == 1 {
			explicit = args[0]
		}
		path, err := resolveConfigPath(explicit)
		if err != nil {
			return err
		}

		stderrLogger().Debug("validating", "path", path)
		opts, err := carousel.LoadOptions(path)
		if err != nil {
			return err
		}
		data, err := carousel.MarshalOptions(opts)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s is valid; resolved options:\n", path)
		_, err = out.Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
