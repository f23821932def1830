package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhofstett/qss"
	"github.com/mhofstett/qss/gradient"
	"github.com/mhofstett/qss/qssdbg"
	"github.com/mhofstett/qss/style/qssom/douceuradapter"
	"github.com/mhofstett/qss/theme"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "qssdump",
		Short:         "qssdump inspects widget stylesheets and resolved paints",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newTreeCmd())
	cmd.AddCommand(newDotCmd())
	return cmd
}

// loadRuleSet reads a stylesheet file, or the built-in navigation-pane
// theme when path is "-".
func loadRuleSet(path string) (*qss.RuleSet, error) {
	if path == "-" {
		return theme.Load()
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sheet, err := douceuradapter.Parse(string(source))
	if err != nil {
		return nil, err
	}
	return qss.NewRuleSet(sheet)
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <stylesheet> <widget-id> [state]",
		Short: "Resolve the paint description for a widget and state",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := loadRuleSet(args[0])
			if err != nil {
				return err
			}
			state := qss.Default
			if len(args) == 3 {
				if state, err = qss.ParseState(args[2]); err != nil {
					return err
				}
			}
			paint, err := rs.Resolve(args[1], state)
			if err != nil {
				return err
			}
			printPaint(cmd, args[1], state, paint)
			return nil
		},
	}
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <stylesheet>",
		Short: "Print the rule set as an indented tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := loadRuleSet(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), qssdbg.Tree(rs))
			return nil
		},
	}
}

func newDotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dot <stylesheet>",
		Short: "Emit the rule set as a GraphViz (DOT) diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := loadRuleSet(args[0])
			if err != nil {
				return err
			}
			qssdbg.ToGraphViz(rs, cmd.OutOrStdout(), nil)
			return nil
		},
	}
}

func printPaint(cmd *cobra.Command, id string, state qss.State, paint qss.PaintDescription) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", id, state)
	fmt.Fprintf(out, "  margins:    top %dpx, right %dpx, bottom %dpx, left %dpx\n",
		paint.Margins.Top, paint.Margins.Right, paint.Margins.Bottom, paint.Margins.Left)
	fmt.Fprintf(out, "  padding:    top %dpx, right %dpx, bottom %dpx, left %dpx\n",
		paint.Padding.Top, paint.Padding.Right, paint.Padding.Bottom, paint.Padding.Left)
	fmt.Fprintf(out, "  border:     %dpx %s %s\n",
		paint.Border.Width, paint.Border.Style, hex(paint.Border.Color))
	var solid color.RGBA
	var linear gradient.Linear
	bg := qss.BackgroundPattern[string](paint.Background)
	fmt.Fprintf(out, "  background: %s\n", bg.OneOf(qss.BackgroundPatterns[string]{
		Unset:    "toolkit native",
		Solid:    bg.WithSolid(&solid).Const("solid " + hex(solid)),
		Gradient: bg.WithGradient(&linear).Const(linear.String()),
	}))
	fmt.Fprintf(out, "  text:       %s, align %s\n", hex(paint.TextColor), paint.TextAlign)
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
