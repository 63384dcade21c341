package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"todo-planner/internal/bot"
	"todo-planner/internal/config"
	"todo-planner/internal/repository"
	"todo-planner/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("todoplanner: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "todoplanner",
		Short:        "Telegram bot that keeps a hierarchical to-do tree per chat",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a TOML config file (default: $CONFIG_FILE)")
	return cmd
}

func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := repository.NewDB(cfg.DatabaseURL, cfg.DBLogLevel)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	journalRepo := repository.NewJournalRepository(db)

	sessions := service.NewSessionService()
	commandSvc := service.NewCommandService(sessions, journalRepo)
	digestSvc := service.NewDigestService(sessions)

	telegramBot, err := bot.New(cfg.TelegramToken, userRepo, commandSvc, digestSvc, &cfg)
	if err != nil {
		return err
	}

	sendDigests := func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := telegramBot.SendDigests(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("digest: %v", err)
		}
	}

	scheduler := service.NewSchedulerService(time.Local)
	switch {
	case cfg.DigestTime != "":
		if _, err := scheduler.ScheduleDaily(cfg.DigestTime, sendDigests); err != nil {
			return err
		}
		log.Printf("[info] digest scheduled daily at %s", cfg.DigestTime)
	case cfg.ReportInterval > 0:
		if _, err := scheduler.ScheduleInterval(cfg.ReportInterval, sendDigests); err != nil {
			return err
		}
		log.Printf("[info] digest scheduled every %s", cfg.ReportInterval)
	}
	if scheduler.Jobs() > 0 {
		scheduler.Start()
		defer scheduler.Stop()
	}

	log.Println("To-do planner bot started.")
	if err := telegramBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Println("Shutdown complete.")
	return nil
}
