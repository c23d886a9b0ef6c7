package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sadopc/fittrack/internal/stats"
)

type todayOutput struct {
	Date              string            `json:"date"`
	Record            stats.DailyRecord `json:"record"`
	CaloriesRemaining int               `json:"calories_remaining"`
	WaterRemaining    int               `json:"water_remaining"`
	Progress          map[string]int    `json:"progress_percent"`
	SleepQuality      string            `json:"sleep_quality"`
}

func newTodayCmd() *cobra.Command {
	var date string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the day's totals and progress toward goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(true)
			if err != nil {
				return err
			}
			defer e.close()
			if err := e.selectDate(date); err != nil {
				return err
			}
			return printToday(cmd.OutOrStdout(), e.session.Key(), e.session.Active(), asJSON)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD), defaults to today")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func buildTodayOutput(key string, rec stats.DailyRecord) todayOutput {
	out := todayOutput{
		Date:              key,
		Record:            rec,
		CaloriesRemaining: stats.CaloriesRemaining(rec),
		WaterRemaining:    stats.WaterRemaining(rec),
		Progress:          make(map[string]int),
		SleepQuality:      stats.SleepQualityLabel(rec.Sleep.Quality),
	}
	for _, m := range stats.Metrics(rec) {
		out.Progress[m.Name] = int(m.Percent())
	}
	return out
}

func printToday(w io.Writer, key string, rec stats.DailyRecord, asJSON bool) error {
	out := buildTodayOutput(key, rec)
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(w, "Date: %s\n", key)
	for _, m := range stats.Metrics(rec) {
		fmt.Fprintf(w, "  %-9s %8.6g / %-8.6g %-8s %3d%%\n", m.Name, m.Value, m.Goal, m.Unit, out.Progress[m.Name])
	}
	fmt.Fprintf(w, "  burned %d kcal, %d kcal remaining\n", rec.Calories.Burned, out.CaloriesRemaining)
	fmt.Fprintf(w, "  %d more glasses to go\n", out.WaterRemaining)
	fmt.Fprintf(w, "  %d%% of daily step goal\n", stats.StepsPercentRounded(rec))
	fmt.Fprintf(w, "  sleep quality %d/10 (%s)\n", rec.Sleep.Quality, out.SleepQuality)
	return nil
}
