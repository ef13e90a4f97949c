package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"gopkg.in/telebot.v3"

	"shift-wage-bot/config"
	"shift-wage-bot/internal/app/service"
	"shift-wage-bot/internal/delivery/api"
	"shift-wage-bot/internal/delivery/telegram"
	"shift-wage-bot/internal/repository/sqlite"
	"shift-wage-bot/internal/wage"
	"shift-wage-bot/pkg/calendar"
	"shift-wage-bot/pkg/logger"
	"shift-wage-bot/pkg/workerpool"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Ошибка загрузки конфига: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Info("Запуск Telegram Shift Wage Bot...")

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatalf("Ошибка часового пояса: %v", err)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		logger.Fatalf("Ошибка подключения к базе: %v", err)
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		logger.Fatalf("Ошибка миграции: %v", err)
	}

	pool := workerpool.NewWorkerPool(cfg.Workers, cfg.QueueSize)
	defer pool.Close()
	async := service.NewAsyncService(pool)

	shiftRepo := sqlite.NewSqliteShiftRepo(db, loc)
	ruleRepo := sqlite.NewSqliteRuleRepo(db)
	settings := service.NewSettingsService(sqlite.NewSqliteSettingsRepo(db), cfg.WageDefaults())
	wages := &service.WageServiceImpl{
		Shifts:   shiftRepo,
		Rules:    ruleRepo,
		Settings: settings,
		Async:    async,
		Engine:   wage.NewEngine(wage.NoFestiveDays{}),
		Location: loc,
	}

	bot, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) {
			logger.WithError(err).Error("telebot error")
		},
	})
	if err != nil {
		logger.Fatalf("Ошибка запуска бота: %v", err)
	}

	handler := &telegram.Handler{
		Bot:       bot,
		Shifts:    service.NewShiftService(shiftRepo),
		Wages:     wages,
		Rules:     service.NewRuleService(ruleRepo),
		Settings:  settings,
		Employees: service.NewEmployeeService(sqlite.NewSqliteEmployeeRepo(db)),
		Async:     async,
		Calendar:  &calendar.CalendarController{Location: loc},
		Location:  loc,
	}
	handler.Register()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var srv *http.Server
	if cfg.HTTPAddr != "" {
		srv = &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           api.NewRouter(api.NewHandler(wages, loc)),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			logger.Infof("HTTP API слушает %s", cfg.HTTPAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Errorf("HTTP API остановлен с ошибкой: %v", err)
			}
		}()
	}

	go bot.Start()
	logger.Info("Бот запущен!")

	<-ctx.Done()
	logger.Info("Остановка...")
	bot.Stop()
	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warnf("HTTP API: %v", err)
		}
	}
}
