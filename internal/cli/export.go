package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ironsheep/colorpick/internal/control"
	"github.com/ironsheep/colorpick/internal/export"
)

// now is the export clock.
var now = time.Now

func newExportCmd(flags *globalFlags) *cobra.Command {
	var (
		format string
		output string
	)
	formats := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		formats[i] = string(f)
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the history as CSS variables, JSON, a Tailwind config or text",
		Example: `  colorpick export --format css
  colorpick export --format tailwind --output tailwind.colors.js
  colorpick export --format json --output .   # writes palette-YYYY-MM-DD.json`,
		Args: cobra.NoArgs,
		RunE: withController(flags, func(cmd *cobra.Command, args []string, a *app, ctrl *control.Controller) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			res, err := ctrl.Export(f, now())
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), res.Content)
				return nil
			}
			path := output
			if info, err := os.Stat(output); err == nil && info.IsDir() {
				path = filepath.Join(output, res.Filename)
			}
			if err := os.WriteFile(path, []byte(res.Content+"\n"), 0o644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			a.log.Info("palette exported", "format", f, "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatCSS), "export format: "+strings.Join(formats, ", "))
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file, or into a directory under the default file name")
	return cmd
}
