package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pwalczyk/jobtrack/internal/db"
	"github.com/pwalczyk/jobtrack/internal/i18n"
	"github.com/pwalczyk/jobtrack/internal/lifecycle"
	"github.com/pwalczyk/jobtrack/internal/model"
	"github.com/pwalczyk/jobtrack/internal/notify"
	"github.com/pwalczyk/jobtrack/internal/schedule"
	"github.com/pwalczyk/jobtrack/internal/settings"
	"github.com/pwalczyk/jobtrack/internal/ui"
	"github.com/pwalczyk/jobtrack/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "jobtrack",
	Short: "Track job applications locally",
}

func Execute() error {
	rootCmd.Version = version.GetVersionInfo()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg := loadSettings()
		if cfg.Reminder.Enabled && os.Getenv("JOBTRACK_NO_REMINDER") != "1" {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			go func() {
				schedule.RunConfigured(ctx, cfg.Reminder, func() { fireFollowUpReminder(cfg) })
			}()
			// on process exit, signal cancels
			_ = cancel
		}
		return nil
	}

	rootCmd.AddCommand(
		addCmd, editCmd, listCmd,
		applyCmd, rejectCmd, archiveCmd, favoriteCmd, deleteCmd,
		calendarCmd, exportCmd, importCmd, langCmd,
	)
}

func fireFollowUpReminder(cfg settings.Settings) {
	dbh, err := openDB()
	if err != nil {
		return
	}
	defer dbh.Close()

	cutoff := time.Now().AddDate(0, 0, -cfg.Reminder.AfterDays)
	waiting, err := db.CountAwaitingReply(dbh, cutoff)
	if err != nil || waiting == 0 {
		return
	}
	title, msg := notify.FormatFollowUpPrompt(cfg.Language, waiting)
	_ = notify.Info(title, msg)
}

// loadSettings never fails the command over a bad settings file; the
// defaults always work.
func loadSettings() settings.Settings {
	svc, err := settings.NewService()
	if err != nil {
		return settings.Default()
	}
	cfg, err := svc.Load()
	if err != nil {
		return settings.Default()
	}
	return cfg
}

func openDB() (*sql.DB, error) {
	prompter := ui.NewTermPrompter()
	return db.Open(prompter.Confirm)
}

func newOps(dbh *sql.DB) lifecycle.Ops {
	return lifecycle.Ops{
		DB:        dbh,
		Prompter:  ui.NewTermPrompter(),
		Translate: i18n.Translator(loadSettings().Language),
	}
}

// findApplication resolves a command-line key to one record. It accepts the
// stored RFC3339 timestamp, the display format, or a unique prefix of either.
func findApplication(dbh *sql.DB, arg string) (model.JobApplication, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return model.JobApplication{}, fmt.Errorf("missing application key")
	}

	apps, err := db.GetAllApplications(dbh)
	if err != nil {
		return model.JobApplication{}, err
	}

	var matches []model.JobApplication
	for _, app := range apps {
		stored := db.Key(app.CreatedAt)
		display := app.CreatedAt.Local().Format(model.DisplayDateTime)
		if stored == arg || display == arg {
			return app, nil
		}
		if strings.HasPrefix(stored, arg) || strings.HasPrefix(display, arg) {
			matches = append(matches, app)
		}
	}

	switch len(matches) {
	case 0:
		return model.JobApplication{}, fmt.Errorf("no application matches %q", arg)
	case 1:
		return matches[0], nil
	default:
		return model.JobApplication{}, fmt.Errorf("%q matches %d applications, be more specific", arg, len(matches))
	}
}
