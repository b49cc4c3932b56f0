package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aliskhannn/jeopardy-bot/internal/config"
	"github.com/aliskhannn/jeopardy-bot/internal/delivery/telegram"
	"github.com/aliskhannn/jeopardy-bot/internal/game"
	"github.com/aliskhannn/jeopardy-bot/internal/jservice"
	"github.com/aliskhannn/jeopardy-bot/internal/logger"
)

func main() {
	// Load .env if present, real environment wins.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("telegram authorization failed", zap.Error(err))
	}
	zl.Info("authorized", zap.String("account", bot.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Show the welcome screen",
		},
		{
			Command:     "play",
			Description: "Deal a new trivia board",
		},
		{
			Command:     "help",
			Description: "How to play",
		},
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := jservice.New(cfg.JService.BaseURL, cfg.JService.Timeout, zl)

	games := game.NewService(client, game.Config{
		CategoryCount:    cfg.Game.CategoryCount,
		PoolSize:         cfg.Game.PoolSize,
		CluesPerCategory: cfg.Game.CluesPerCategory,
	}, zl)

	handler := telegram.NewHandler(bot, zl, games)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zl.Fatal("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}
