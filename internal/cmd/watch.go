package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Iron-Ham/sprout/internal/errors"
	"github.com/Iron-Ham/sprout/internal/growth"
	"github.com/Iron-Ham/sprout/internal/tui/view"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Grow a plant without the TUI",
	Long: `Grow a plant and print one status line per virtual day until harvest.

Useful when stdout is not a terminal, e.g. piping into a file:
  sprout watch --plant "🥕 Cenoura" --area 200 > growth.log

Interrupt with Ctrl+C to stop early.`,
	RunE: runWatch,
}

var (
	watchPlant string
	watchArea  string
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchPlant, "plant", "", "plant to grow (see 'sprout plants')")
	watchCmd.Flags().StringVar(&watchArea, "area", "", "planted area in m²")
	_ = watchCmd.MarkFlagRequired("plant")
	_ = watchCmd.MarkFlagRequired("area")
}

func runWatch(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	return runHeadless(cmd.Context(), rt, watchPlant, watchArea, cmd.OutOrStdout())
}

// runHeadless plants and follows the session on a real ticker until harvest
// or until SIGINT/SIGTERM cancels ctx.
func runHeadless(ctx context.Context, rt *runtime, plant, area string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	now := time.Now()
	if err := rt.controller.StartPlantingText(plant, area, now); err != nil {
		if errors.IsUserFacing(err) {
			return fmt.Errorf("%s (%s)", view.InvalidInput, errors.ReasonOf(err))
		}
		return errors.Wrap(err, "cannot start planting")
	}

	ticker := time.NewTicker(rt.cfg.TUI.RefreshInterval())
	defer ticker.Stop()

	return followGrowth(ctx, rt.controller, now, ticker.C, out)
}

// followGrowth prints the session's progress for every time received on
// ticks until the plant is harvested. It returns nil when ctx is cancelled.
func followGrowth(ctx context.Context, ctrl *growth.Controller, start time.Time, ticks <-chan time.Time, out io.Writer) error {
	ctrl.SetPhaseChangeCallback(func(_, newPhase growth.Phase, _ growth.Snapshot) {
		fmt.Fprintln(out, view.Caption(newPhase))
	})
	defer ctrl.SetPhaseChangeCallback(nil)

	snap := ctrl.Advance(start)
	fmt.Fprintln(out, view.GrowthTitle(snap.Plant))
	fmt.Fprintln(out, view.Caption(snap.Phase))
	fmt.Fprintln(out, statusLine(snap))
	lastDay := snap.ElapsedDays

	for snap.State == growth.StateGrowing {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "interrompido")
			return nil
		case now := <-ticks:
			snap = ctrl.Advance(now)
			if snap.ElapsedDays != lastDay {
				lastDay = snap.ElapsedDays
				fmt.Fprintln(out, statusLine(snap))
			}
		}
	}

	fmt.Fprintln(out, view.HarvestMessage(snap.Plant))
	return nil
}

// statusLine renders one plain progress line, e.g.
// "Dias: 3 / 10 [█████████░░░░░░░░░░░░░░░░░░░░░]".
func statusLine(snap growth.Snapshot) string {
	return view.DaysLabel(snap.ElapsedDays, snap.TotalDays) + " " + view.RenderProgressBar(snap.Progress(), 30)
}
