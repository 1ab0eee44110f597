package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/parkervanroy/sith/internal/config"
	"github.com/parkervanroy/sith/internal/detect"
	"github.com/parkervanroy/sith/internal/logging"
	"github.com/parkervanroy/sith/internal/pathutil"
	"github.com/parkervanroy/sith/internal/static"
	"github.com/parkervanroy/sith/internal/timeutil"
	"github.com/parkervanroy/sith/internal/tracker"
	"github.com/parkervanroy/sith/report"
	"github.com/parkervanroy/sith/stats"
	"github.com/parkervanroy/sith/store"
	"github.com/parkervanroy/sith/timer"
	"github.com/parkervanroy/sith/tray"
)

const (
	envNoColor     = "NO_COLOR"
	envSithNoColor = "SITH_NO_COLOR"
)

var logFile io.Closer

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// openConfig imports a legacy config on first run and loads the config
// store.
func openConfig() (*config.Store, error) {
	imported, err := config.ImportLegacy(
		pathutil.LegacyConfigPath(),
		pathutil.ConfigFilePath(),
	)
	if err != nil {
		slog.Warn("legacy config import failed", slog.Any("error", err))
	}

	if imported {
		report.Imported("config", pathutil.LegacyConfigPath())
	}

	return config.Open(pathutil.ConfigFilePath())
}

func openStore(cfg *config.Config) (store.DB, error) {
	return store.Open(
		cfg.Store,
		pathutil.SummaryFilePath(),
		pathutil.DBFilePath(),
	)
}

func migrateSummary(db store.DB) error {
	from, err := store.Migrate(db, pathutil.LegacySummaryPaths())
	if err != nil {
		return err
	}

	if from != "" {
		report.Imported("summary", from)
	}

	return nil
}

// defaultAction runs the tracker until the user quits.
func defaultAction(ctx *cli.Context) error {
	cfgStore, err := openConfig()
	if err != nil {
		return err
	}

	db, err := openStore(cfgStore.Current())
	if err != nil {
		return err
	}

	defer db.Close()

	if err = migrateSummary(db); err != nil {
		slog.Warn("legacy summary import failed", slog.Any("error", err))
	}

	var d detect.Detector = detect.New()

	if demo := ctx.String("demo"); demo != "" {
		d = detect.Static{App: demo}
	}

	snaps := make(chan tracker.Snapshot, 1)

	tr, err := tracker.New(
		d,
		cfgStore,
		db,
		tracker.WithStatusFile(pathutil.StatusFilePath()),
		tracker.WithNotifier(&tracker.DesktopNotifier{
			Icon: filepath.Join(pathutil.DataDir(), static.IconFile),
		}),
		tracker.WithSnapshotHandler(tracker.Channel(snaps)),
	)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	err = cfgStore.Watch(runCtx, func(c *config.Config) {
		slog.Info("config changed on disk", slog.String("config", c.String()))
	})
	if err != nil {
		slog.Warn("config changes will not be picked up", slog.Any("error", err))
	}

	if ctx.Bool("tray") {
		return tray.Run(runCtx, cfgStore, tr, snaps)
	}

	return timer.Run(runCtx, cfgStore, tr, snaps, !pterm.PrintColor)
}

// summaryAction prints the report for the selected period.
func summaryAction(ctx *cli.Context) error {
	f, err := config.Filter(ctx)
	if err != nil {
		return err
	}

	cfgStore, err := openConfig()
	if err != nil {
		return err
	}

	cfg := cfgStore.Current()

	db, err := store.OpenReadOnly(
		cfg.Store,
		pathutil.SummaryFilePath(),
		pathutil.DBFilePath(),
	)
	if err != nil {
		return err
	}

	defer db.Close()

	return stats.Show(
		ctx.App.Writer,
		db,
		f,
		timeutil.DisplayStyle(cfg.TimeDisplayStyle),
		ctx.Bool("json"),
	)
}

// statusAction prints what the running tracker is doing.
func statusAction(ctx *cli.Context) error {
	st, err := tracker.ReadStatus(pathutil.StatusFilePath(), time.Now())
	if errors.Is(err, tracker.ErrNotRunning) {
		report.NotRunning()
		return nil
	}

	if err != nil {
		return err
	}

	style := timeutil.StyleClock

	if cfgStore, err := config.Open(pathutil.ConfigFilePath()); err == nil {
		style = timeutil.DisplayStyle(cfgStore.Current().TimeDisplayStyle)
	}

	fmt.Fprint(ctx.App.Writer, formatStatus(st, style))

	return nil
}

// settingsAction opens the interactive settings form.
func settingsAction(_ *cli.Context) error {
	cfgStore, err := openConfig()
	if err != nil {
		return err
	}

	return config.PromptSettings(cfgStore)
}

// editConfigAction handles the edit-config command which opens the sith
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	// Writes the default document on first use.
	cfgStore, err := openConfig()
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, cfgStore.Path())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func guideAction(ctx *cli.Context) error {
	_, err := fmt.Fprint(ctx.App.Writer, static.Guide())
	return err
}

// migrateAction imports legacy files explicitly.
func migrateAction(_ *cli.Context) error {
	cfgStore, err := openConfig()
	if err != nil {
		return err
	}

	db, err := openStore(cfgStore.Current())
	if err != nil {
		return err
	}

	defer db.Close()

	from, err := store.Migrate(db, pathutil.LegacySummaryPaths())
	if err != nil {
		return err
	}

	if from == "" {
		pterm.Info.Println("nothing to migrate")
		return nil
	}

	report.Imported("summary", from)

	return nil
}

func setupLogging() {
	w, err := logging.Setup(pathutil.LogFilePath())
	if err != nil {
		logging.Discard()
		pterm.Warning.Printfln("logging disabled: %v", err)

		return
	}

	logFile = w
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if SITH_NO_COLOR is set
	if _, exists := os.LookupEnv(envSithNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	setupLogging()

	if err := static.Install(pathutil.DataDir()); err != nil {
		slog.Warn("installing static files failed", slog.Any("error", err))
	}

	slog.Debug("starting sith", slog.Any("args", ctx.Args().Slice()))

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting sith")

	if logFile != nil {
		return logFile.Close()
	}

	return nil
}
