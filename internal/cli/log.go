package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newWaterCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "water <delta>",
		Short: "Add glasses of water (use -- before a negative delta to remove)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid delta %q: %w", args[0], err)
			}
			e, err := openEnv(true)
			if err != nil {
				return err
			}
			defer e.close()
			if err := e.selectDate(date); err != nil {
				return err
			}
			rec := e.session.UpdateWater(delta)
			fmt.Fprintf(cmd.OutOrStdout(), "water: %d/%d glasses\n", rec.Water.Consumed, rec.Water.Goal)
			return persistResult(cmd.OutOrStdout(), e)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD), defaults to today")
	return cmd
}

func newStepsCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "steps <count>",
		Short: "Set the day's step count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil || count < 0 {
				return fmt.Errorf("invalid step count %q", args[0])
			}
			e, err := openEnv(true)
			if err != nil {
				return err
			}
			defer e.close()
			if err := e.selectDate(date); err != nil {
				return err
			}
			rec := e.session.UpdateSteps(count)
			fmt.Fprintf(cmd.OutOrStdout(), "steps: %d/%d\n", rec.Steps.Count, rec.Steps.Goal)
			return persistResult(cmd.OutOrStdout(), e)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD), defaults to today")
	return cmd
}
