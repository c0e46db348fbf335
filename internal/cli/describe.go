package cli

import (
	"encoding/json"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ironsheep/colorpick/internal/capture"
	"github.com/ironsheep/colorpick/internal/colormodel"
	"github.com/ironsheep/colorpick/internal/control"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// Encodings accepted by --copy.
var copyEncodings = []string{"hex", "rgb", "hsl", "cmyk"}

// encoding returns the display string of d for one of copyEncodings.
func encoding(d control.Details, name string) (string, error) {
	switch strings.ToLower(name) {
	case "hex":
		return d.Hex, nil
	case "rgb":
		return d.RGB.String(), nil
	case "hsl":
		return d.HSL.String(), nil
	case "cmyk":
		return d.CMYK.String(), nil
	default:
		return "", fmt.Errorf("unknown encoding %q (want %s)", name, strings.Join(copyEncodings, ", "))
	}
}

func newDescribeCmd(flags *globalFlags) *cobra.Command {
	var (
		asJSON bool
		copyAs string
	)
	cmd := &cobra.Command{
		Use:   "describe HEX",
		Short: "Show every encoding, the name and the harmonies of a color",
		Long: `Describes a "#RRGGBB" color (the leading # is optional). Malformed input
is described as black.`,
		Example: `  colorpick describe '#3498DB'
  colorpick describe ff8800 --json
  colorpick describe 3498db --copy hsl`,
		Args: cobra.ExactArgs(1),
		RunE: withController(flags, func(cmd *cobra.Command, args []string, a *app, ctrl *control.Controller) error {
			d := ctrl.Describe(args[0])
			if err := printDetails(cmd.OutOrStdout(), d, asJSON); err != nil {
				return err
			}
			return copyEncoding(cmd, d, copyAs)
		}),
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the description as JSON")
	cmd.Flags().StringVar(&copyAs, "copy", "", "copy an encoding to the clipboard: hex, rgb, hsl or cmyk")
	return cmd
}

func newSampleCmd(flags *globalFlags) *cobra.Command {
	var (
		path   string
		x, y   int
		copyAs string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Pick the color of one pixel of an image and record it in history",
		Example: `  colorpick sample --image screenshot.png --x 120 --y 48
  colorpick sample --image screenshot.png --x 0 --y 0 --copy rgb`,
		Args: cobra.NoArgs,
		RunE: withController(flags, func(cmd *cobra.Command, args []string, a *app, ctrl *control.Controller) error {
			ctx := commandContext(cmd)
			img, err := capture.FileGrabber{Path: path}.Grab(ctx)
			if err != nil {
				return err
			}
			frame := capture.NewFrame(img)
			hex, err := frame.SampleHex(x, y)
			if err != nil {
				return fmt.Errorf("cannot sample (%d,%d) of %s: %w", x, y, boundsString(frame.Bounds()), err)
			}
			ctrl.Record(ctx, hex)
			a.log.Debug("sampled", "image", path, "x", x, "y", y, "hex", hex)

			d := ctrl.Describe(hex)
			if err := printDetails(cmd.OutOrStdout(), d, asJSON); err != nil {
				return err
			}
			return copyEncoding(cmd, d, copyAs)
		}),
	}
	cmd.Flags().StringVar(&path, "image", "", "image file to sample (PNG, JPEG, GIF or BMP)")
	cmd.Flags().IntVar(&x, "x", 0, "pixel column")
	cmd.Flags().IntVar(&y, "y", 0, "pixel row")
	cmd.Flags().StringVar(&copyAs, "copy", "", "copy an encoding to the clipboard: hex, rgb, hsl or cmyk")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the description as JSON")
	_ = cmd.MarkFlagRequired("image")
	return cmd
}

func boundsString(r image.Rectangle) string {
	return fmt.Sprintf("%dx%d image", r.Dx(), r.Dy())
}

func copyEncoding(cmd *cobra.Command, d control.Details, name string) error {
	if name == "" {
		return nil
	}
	text, err := encoding(d, name)
	if err != nil {
		return err
	}
	if err := writeClipboard(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Copied %s to clipboard\n", text)
	return nil
}

func printDetails(w io.Writer, d control.Details, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(d)
	}

	fmt.Fprintf(w, "%s  %s\n\n", swatch(d.Hex, d.Contrast), d.Name)
	fmt.Fprintf(w, "HEX   %s\n", d.Hex)
	fmt.Fprintf(w, "RGB   %s\n", d.RGB)
	fmt.Fprintf(w, "HSL   %s\n", d.HSL)
	fmt.Fprintf(w, "CMYK  %s\n", d.CMYK)
	fmt.Fprintf(w, "HSV   %d°, %d%%, %d%%\n", d.HSV.H, d.HSV.S, d.HSV.V)
	fmt.Fprintf(w, "Lab   %.2f, %.2f, %.2f\n", d.Lab.L, d.Lab.A, d.Lab.B)
	fmt.Fprintf(w, "\nHarmonies  %s\n", strings.Join(swatches(d.Harmonies[:]), " "))
	return nil
}

// swatch renders hex on its own color with readable text.
func swatch(hex string, contrast colormodel.Contrast) string {
	fg := colormodel.White
	if contrast == colormodel.ContrastBlack {
		fg = colormodel.Black
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg)).
		Bold(true).
		Padding(0, 2).
		Render(hex)
}

func swatches(hexes []string) []string {
	out := make([]string, len(hexes))
	for i, h := range hexes {
		out[i] = swatch(h, colormodel.ContrastColor(h))
	}
	return out
}
