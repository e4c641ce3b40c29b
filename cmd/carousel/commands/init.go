package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/agiangrant/carousel"
)

var (
	initForce     bool
	initElementID string
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter " + ConfigFileName,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		path, err := writeStarterConfig(dir, initElementID, initForce)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "  ✓ Created %s\n", path)
		fmt.Fprintln(out, "")
		fmt.Fprintln(out, "Next steps:")
		fmt.Fprintf(out, "  carousel validate %s\n", path)
		fmt.Fprintf(out, "  carousel preview --config %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing file")
	initCmd.Flags().StringVar(&initElementID, "id", carousel.DefaultElementID, "id of the slide container element")
	rootCmd.AddCommand(initCmd)
}

// writeStarterConfig writes the default options, with pager and controls
// turned on, to dir/carousel.toml.
func writeStarterConfig(dir, elementID string, force bool) (string, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err == nil && !force {
		return "", errors.Errorf("%s already exists (use --force to overwrite)", path)
	}

	opts := carousel.DefaultOptions()
	opts.ElementID = elementID
	opts.Pager = true
	opts.Controls = true

	data, err := carousel.MarshalOptions(opts)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "create %s", dir)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrapf(err, "write %s", path)
	}
	return path, nil
}
