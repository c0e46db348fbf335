package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ironsheep/colorpick/internal/colormodel"
	"github.com/ironsheep/colorpick/internal/control"
	"github.com/ironsheep/colorpick/internal/history"
	"github.com/ironsheep/colorpick/internal/naming"
)

func newHistoryCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List and edit picked colors",
		Long: `History holds up to 50 colors, most recent first. Pinned colors are listed
before the others and are never evicted.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List the history",
			Args:  cobra.NoArgs,
			RunE: withController(flags, func(cmd *cobra.Command, args []string, a *app, ctrl *control.Controller) error {
				return printEntries(cmd.OutOrStdout(), ctrl.History(), a.names)
			}),
		},
		&cobra.Command{
			Use:   "pin HEX",
			Short: "Pin or unpin a color",
			Args:  cobra.ExactArgs(1),
			RunE: withController(flags, func(cmd *cobra.Command, args []string, a *app, ctrl *control.Controller) error {
				if !ctrl.TogglePin(commandContext(cmd), args[0]) {
					return fmt.Errorf("color %q is not in history", args[0])
				}
				return printEntries(cmd.OutOrStdout(), ctrl.History(), a.names)
			}),
		},
		&cobra.Command{
			Use:   "delete HEX",
			Short: "Remove a color, pinned or not",
			Args:  cobra.ExactArgs(1),
			RunE: withController(flags, func(cmd *cobra.Command, args []string, a *app, ctrl *control.Controller) error {
				if !ctrl.DeleteEntry(commandContext(cmd), args[0]) {
					return fmt.Errorf("color %q is not in history", args[0])
				}
				return printEntries(cmd.OutOrStdout(), ctrl.History(), a.names)
			}),
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every unpinned color",
			Args:  cobra.NoArgs,
			RunE: withController(flags, func(cmd *cobra.Command, args []string, a *app, ctrl *control.Controller) error {
				n := ctrl.ClearUnpinned(commandContext(cmd))
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d colors\n", n)
				return nil
			}),
		},
	)
	return cmd
}

func newPaletteCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Save the history as a named palette and load it back",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "save NAME",
			Short: "Save the current history as a palette",
			Args:  cobra.ExactArgs(1),
			RunE: withController(flags, func(cmd *cobra.Command, args []string, a *app, ctrl *control.Controller) error {
				p, err := ctrl.SavePalette(commandContext(cmd), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved palette %q (%d colors) as %s\n", p.Name, len(p.Colors), p.ID)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "list",
			Short: "List saved palettes",
			Args:  cobra.NoArgs,
			RunE: withController(flags, func(cmd *cobra.Command, args []string, a *app, ctrl *control.Controller) error {
				return printPalettes(cmd.OutOrStdout(), ctrl.Palettes())
			}),
		},
		&cobra.Command{
			Use:   "load ID",
			Short: "Replace the history with a palette",
			Args:  cobra.ExactArgs(1),
			RunE: withController(flags, func(cmd *cobra.Command, args []string, a *app, ctrl *control.Controller) error {
				if _, err := ctrl.LoadPalette(commandContext(cmd), args[0]); err != nil {
					return err
				}
				return printEntries(cmd.OutOrStdout(), ctrl.History(), a.names)
			}),
		},
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a palette",
			Args:  cobra.ExactArgs(1),
			RunE: withController(flags, func(cmd *cobra.Command, args []string, a *app, ctrl *control.Controller) error {
				return ctrl.DeletePalette(commandContext(cmd), args[0])
			}),
		},
	)
	return cmd
}

func printEntries(w io.Writer, entries []history.Entry, names *naming.Table) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "History is empty")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		pin := ""
		if e.Pinned {
			pin = "pinned"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", swatch(e.Hex, colormodel.ContrastColor(e.Hex)), e.Hex, names.Name(e.Hex), pin)
	}
	return tw.Flush()
}

func printPalettes(w io.Writer, palettes []history.Palette) error {
	if len(palettes) == 0 {
		fmt.Fprintln(w, "No saved palettes")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCOLORS\tCREATED")
	for _, p := range palettes {
		created := "-"
		if !p.CreatedAt.IsZero() {
			created = p.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", p.ID, p.Name, len(p.Colors), created)
	}
	return tw.Flush()
}
