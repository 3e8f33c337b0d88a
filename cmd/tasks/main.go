package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/slok/tasks/cmd/tasks/commands"
	"github.com/slok/tasks/internal/conventions"
	"github.com/slok/tasks/internal/log"
	loglogrus "github.com/slok/tasks/internal/log/logrus"
	metricsprometheus "github.com/slok/tasks/internal/metrics/prometheus"
)

const (
	// Version is the application version (set via ldflags).
	Version = "dev"
)

// Run runs the main application.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	if err := loadEnvFile(); err != nil {
		return err
	}

	app := kingpin.New("tasks", "Local task list manager.")
	app.DefaultEnvars()
	rootCmd := commands.NewRootCommand(app)

	// Setup commands (registers flags).
	addCmd := commands.NewAddCommand(rootCmd, app)
	editCmd := commands.NewEditCommand(rootCmd, app)
	removeCmd := commands.NewRemoveCommand(rootCmd, app)
	listCmd := commands.NewListCommand(rootCmd, app)
	showCmd := commands.NewShowCommand(rootCmd, app)
	themeCmd := commands.NewThemeCommand(rootCmd, app)
	exportCmd := commands.NewExportCommand(rootCmd, app)
	importCmd := commands.NewImportCommand(rootCmd, app)
	doctorCmd := commands.NewDoctorCommand(rootCmd, app)

	cmds := map[string]commands.Command{
		addCmd.Name():    addCmd,
		editCmd.Name():   editCmd,
		removeCmd.Name(): removeCmd,
		listCmd.Name():   listCmd,
		showCmd.Name():   showCmd,
		themeCmd.Name():  themeCmd,
		exportCmd.Name(): exportCmd,
		importCmd.Name(): importCmd,
		doctorCmd.Name(): doctorCmd,
	}

	// Parse command.
	cmdName, err := app.Parse(args[1:])
	if err != nil {
		return fmt.Errorf("invalid command configuration: %w", err)
	}

	// Set standard input/output.
	rootCmd.Stdin = stdin
	rootCmd.Stdout = stdout
	rootCmd.Stderr = stderr

	// Auto-suppress logging for commands that produce printer output so log lines don't
	// mix with it in the terminal. Users can still enable logging with --debug.
	printerCommands := map[string]bool{
		"list":  true,
		"show":  true,
		"theme": true,
	}
	if printerCommands[cmdName] && !rootCmd.Debug && rootCmd.LogFile == "" {
		rootCmd.NoLog = true
	}

	// Set logger.
	rootCmd.Logger = getLogger(ctx, *rootCmd)

	// Set metrics.
	reg := prometheus.NewRegistry()
	recorder, err := metricsprometheus.NewRecorder(metricsprometheus.RecorderConfig{Registry: reg})
	if err != nil {
		return fmt.Errorf("could not create metrics recorder: %w", err)
	}
	rootCmd.MetricsRecorder = recorder

	if rootCmd.MetricsTextfile != "" {
		defer func() {
			if werr := prometheus.WriteToTextfile(rootCmd.MetricsTextfile, reg); werr != nil {
				rootCmd.Logger.Warningf("Could not write metrics textfile: %s", werr)
			}
		}()
	}

	var g run.Group

	// OS signals.
	{
		signalCtx, signalCancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer signalCancel()

		g.Add(
			func() error {
				<-signalCtx.Done()
				rootCmd.Logger.Debugf("Termination signal received")
				return nil
			},
			func(_ error) {
				signalCancel()
			},
		)
	}

	// Execute command.
	{
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		g.Add(
			func() error {
				err := cmds[cmdName].Run(ctx)
				if err != nil {
					return fmt.Errorf("%q command failed: %w", cmdName, err)
				}
				return nil
			},
			func(_ error) {
				cancel()
			},
		)
	}

	return g.Run()
}

// loadEnvFile loads the optional env file into the process environment so flags can be
// set from it, variables already set are not overridden.
func loadEnvFile() error {
	path := os.Getenv("TASKS_ENV_FILE")
	if path == "" {
		path = conventions.EnvFile
	}

	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load env file %s: %w", path, err)
	}

	return nil
}

// getLogger returns the application logger.
func getLogger(ctx context.Context, config commands.RootCommand) log.Logger {
	if config.NoLog {
		return log.Noop
	}

	// If logger not disabled use logrus logger.
	logrusLog := logrus.New()
	logrusLog.Out = config.Stderr // By default logger goes to stderr (so it can split stdout prints).
	if config.LogFile != "" {
		logrusLog.Out = &lumberjack.Logger{
			Filename:   config.LogFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		}
		config.NoColor = true
	}
	logrusLogEntry := logrus.NewEntry(logrusLog)

	if config.Debug {
		logrusLogEntry.Logger.SetLevel(logrus.DebugLevel)
	}

	// Log format.
	switch config.LoggerType {
	case commands.LoggerTypeDefault:
		logrusLogEntry.Logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !config.NoColor,
			DisableColors: config.NoColor,
		})
	case commands.LoggerTypeJSON:
		logrusLogEntry.Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger := loglogrus.NewLogrus(logrusLogEntry).WithValues(log.Kv{
		"version": Version,
	})

	logger.Debugf("Debug level is enabled") // Will log only when debug enabled.

	return logger
}

func main() {
	ctx := context.Background()
	err := Run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
