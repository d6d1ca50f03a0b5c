package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vanderheijden86/walkthrough/pkg/catalog"
	"github.com/vanderheijden86/walkthrough/pkg/export"
	"github.com/vanderheijden86/walkthrough/pkg/mockup"
	"github.com/vanderheijden86/walkthrough/pkg/ui"
	"github.com/vanderheijden86/walkthrough/pkg/version"
)

func newStepsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "steps",
		Short: "List the tutorial steps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				return export.WriteCatalogJSON(cmd.OutOrStdout(), catalog.Steps())
			}
			fmt.Fprintln(cmd.OutOrStdout(), stepsTable(catalog.Steps()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the catalog as JSON")
	return cmd
}

func stepsTable(steps []catalog.Step) string {
	faint := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	rows := make([][]string, 0, len(steps))
	for _, s := range steps {
		logs := "-"
		if n := len(s.TerminalLines()); n > 0 {
			logs = strconv.Itoa(n) + " lines"
		}
		rows = append(rows, []string{
			strconv.Itoa(s.ID),
			s.Title,
			s.DisplayURL(),
			mockup.For(s.Interface).Heading,
			logs,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(faint)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("#", "STEP", "URL", "MOCKUP", "CONSOLE").
		Rows(rows...)
	return t.String()
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	var (
		step  int
		width int
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one settled frame of the walkthrough",
		Long: "Print the walkthrough as it looks after stepping from 1 to --step.\n" +
			"Without --step, an interactive terminal gets a picker; otherwise step 1 is used.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("step") {
				picked, err := pickStep()
				if err != nil {
					return err
				}
				step = picked
			}
			if width <= 0 {
				width = terminalWidth()
			}
			cfg, _ := loadConfig(cmd, *root)
			out, err := ui.Snapshot(step, width, ui.WithConfig(cfg))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().IntVar(&step, "step", 1, "Step to render (1-6)")
	cmd.Flags().IntVar(&width, "width", 0, "Render width in cells (default: terminal width)")
	return cmd
}

// isTerminal checks if stdin is connected to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 100
}

// pickStep asks for a step on a terminal and defaults to step 1 elsewhere.
func pickStep() (int, error) {
	if !isTerminal() {
		return catalog.FirstID(), nil
	}
	options := make([]huh.Option[int], 0, catalog.Len())
	for _, s := range catalog.Steps() {
		options = append(options, huh.NewOption(strconv.Itoa(s.ID)+" · "+s.Title, s.ID))
	}
	picked := catalog.FirstID()
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Which step should be rendered?").
				Description("Steps before it count as visited.").
				Options(options...).
				Value(&picked),
		),
	).WithTheme(huh.ThemeDracula())
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return 0, errors.New("render cancelled")
		}
		return 0, err
	}
	return picked, nil
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write snapshots of the walkthrough",
	}
	cmd.AddCommand(newSnapshotExportCmd("svg"))
	cmd.AddCommand(newSnapshotExportCmd("png"))
	return cmd
}

func newSnapshotExportCmd(format string) *cobra.Command {
	var (
		step int
		all  bool
		out  string
	)
	cmd := &cobra.Command{
		Use:   format,
		Short: "Write " + format + " snapshots of the mockup, rail and console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return errors.New("--out is required")
			}
			if all && cmd.Flags().Changed("step") {
				return errors.New("--step and --all are mutually exclusive")
			}
			if all {
				paths, err := export.SaveAllStepSnapshots(out, format)
				if err != nil {
					return err
				}
				for _, p := range paths {
					fmt.Fprintln(cmd.OutOrStdout(), p)
				}
				return nil
			}
			if err := export.SaveStepSnapshot(export.StepSnapshotOptions{
				Path:   out,
				Format: format,
				StepID: step,
			}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().IntVar(&step, "step", 1, "Step to export (1-6)")
	cmd.Flags().BoolVar(&all, "all", false, "Export every step; --out names a directory")
	cmd.Flags().StringVar(&out, "out", "", "Output file (or directory with --all)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
