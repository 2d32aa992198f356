package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/maxgas/maxgas/internal/config"
	"github.com/maxgas/maxgas/internal/journal"
	"github.com/maxgas/maxgas/internal/logging"
	"github.com/maxgas/maxgas/internal/submit"
	"github.com/maxgas/maxgas/internal/tui"
)

const shutdownTimeout = 2 * time.Second

func main() {
	history := flag.Int("history", 0, "print the last N journaled submissions and exit")
	resetJournal := flag.Bool("reset-journal", false, "delete all journaled submissions and exit")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, logFile, err := logging.New(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer logFile.Close()

	recorders := submit.Recorders{submit.NewConsoleRecorder(logger)}
	var store *journal.Store
	if cfg.Journal.Enabled || *history > 0 || *resetJournal {
		db, err := journal.Open(cfg.Journal.Path)
		if err != nil {
			log.Fatalf("journal: %v", err)
		}
		defer db.Close()
		store = journal.NewStore(db)
		if cfg.Journal.Enabled {
			recorders = append(recorders, store)
		}
	}

	switch {
	case *resetJournal:
		if err := store.Reset(ctx); err != nil {
			log.Fatalf("reset journal: %v", err)
		}
		fmt.Println("journal cleared")
		return
	case *history > 0:
		if err := printHistory(ctx, os.Stdout, store, *history); err != nil {
			log.Fatalf("history: %v", err)
		}
		return
	}

	svc := &submit.Service{
		Submitter: submit.Simulated{Delay: cfg.UI.SubmitDelay},
		Recorder:  recorders,
	}
	logger.Info().
		Str("start_screen", cfg.UI.StartScreen).
		Dur("submit_delay", cfg.UI.SubmitDelay).
		Bool("journal", cfg.Journal.Enabled).
		Msg("starting")

	app := tui.New(ctx, cfg, svc, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, runErr := p.Run()
	app.Close()
	// the journal must outlive the cancelled submission's outcome write
	waitCtx, waitCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	if err := app.Wait(waitCtx); err != nil {
		logger.Warn().Err(err).Msg("submission still running at exit")
	}
	waitCancel()
	if runErr != nil {
		logger.Error().Err(runErr).Msg("program exited")
		fmt.Printf("error: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info().Msg("bye")
}

func printHistory(ctx context.Context, w io.Writer, store *journal.Store, n int) error {
	entries, err := store.Recent(ctx, n)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "no submissions recorded")
		return nil
	}
	for _, e := range entries {
		elapsed := "-"
		if e.FinishedAt != nil {
			elapsed = e.FinishedAt.Sub(e.SubmittedAt).Round(time.Millisecond).String()
		}
		line := fmt.Sprintf("%s  %s  %-9s  %-8s  %s",
			e.SubmittedAt.Local().Format(time.DateTime), e.ID, e.Outcome, elapsed, e.PhoneMasked)
		if e.Error != nil {
			line += "  " + *e.Error
		}
		fmt.Fprintln(w, line)
	}
	return nil
}
