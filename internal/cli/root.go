package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sadopc/fittrack/internal/config"
	"github.com/sadopc/fittrack/internal/logging"
	"github.com/sadopc/fittrack/internal/store"
	"github.com/sadopc/fittrack/internal/tracker"
	"github.com/sadopc/fittrack/internal/tui"
)

var (
	configPath string
	dbPath     string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fittrack",
		Short:         "fittrack tracks diet, exercise, water, steps and sleep from your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(false)
			if err != nil {
				return err
			}
			defer env.close()

			p := tea.NewProgram(tui.NewApp(env.session, env.store), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to TOML config file")
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")

	cmd.AddCommand(newTodayCmd(), newWaterCmd(), newStepsCmd())
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type env struct {
	cfg     *config.Config
	store   *store.Store
	session *tracker.Session
}

// openEnv loads config, sets up logging, opens the database and starts a
// session on today. Subcommands also log to stderr when configured to.
func openEnv(allowConsole bool) (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName: cfg.LogFile,
		LogToStderr: allowConsole && cfg.LogToStderr,
		LogLevel:    cfg.LogLevel,
	})
	log.Debugf("using database: [%s]", cfg.DBPath)

	s, err := store.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	bed, wake := s.SleepSchedule()
	session := tracker.NewSession(s, tracker.Options{
		Goals: s.Goals(cfg.Goals),
		Bed:   bed,
		Wake:  wake,
		Date:  time.Now(),
	})
	return &env{cfg: cfg, store: s, session: session}, nil
}

func (e *env) close() {
	if err := e.store.Close(); err != nil {
		log.WithError(err).Error("close database")
	}
}

// selectDate activates date on the session when it is non-empty.
func (e *env) selectDate(date string) error {
	if date == "" {
		return nil
	}
	return e.session.SelectKey(date)
}

func persistResult(w io.Writer, e *env) error {
	if err := e.session.LastPersistError(); err != nil {
		return fmt.Errorf("saving: %w", err)
	}
	fmt.Fprintf(w, "saved %s\n", e.session.Key())
	return nil
}
