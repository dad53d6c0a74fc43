// Package app assembles the exhibition bot from its parts: configuration,
// infrastructure bootstrap and the wiring of the lead-collection flow into
// the Telegram runtime.
package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	tele "gopkg.in/telebot.v4"

	"github.com/izzat1998/exhibition-bot/core/bootstrap"
	"github.com/izzat1998/exhibition-bot/core/cmd"
	tg "github.com/izzat1998/exhibition-bot/core/telegram"
	"github.com/izzat1998/exhibition-bot/core/telegram/commands"
	"github.com/izzat1998/exhibition-bot/core/telegram/helpers"
	"github.com/izzat1998/exhibition-bot/core/telegram/router"
	"github.com/izzat1998/exhibition-bot/core/telegram/state"
	"github.com/izzat1998/exhibition-bot/internal/api"
	"github.com/izzat1998/exhibition-bot/internal/form"
	"github.com/izzat1998/exhibition-bot/internal/journal"
)

// App holds everything the running bot needs.
type App struct {
	cfg   *Config
	db    *sqlx.DB
	mgr   state.Manager
	files *botFiles
	reg   *tg.Registry
}

// Bootstrap initializes infrastructure and wires the conversation flow.
// The database is optional; without it the bot runs with journaling off.
func Bootstrap(carrier cmd.ConfigCarrier) (cmd.TelegramApp, error) {
	cfg, ok := carrier.(*Config)
	if !ok {
		return nil, fmt.Errorf("app: unexpected config type %T", carrier)
	}

	res, err := bootstrap.Run(bootstrap.Options{
		Config:   cfg.CoreConfig(),
		Database: cfg.Database,
	})
	if err != nil {
		return nil, err
	}

	client := api.New(api.Config{
		BaseURL:        cfg.Core.API.BaseURL,
		Token:          cfg.Core.Telegram.Token,
		TimeoutSeconds: cfg.Core.API.TimeoutSeconds,
	})

	var store *journal.Store
	var recorder form.Recorder
	if res.DB != nil {
		store = journal.New(res.DB)
		recorder = store
	}

	mgr := state.NewMemoryManager()
	files := &botFiles{}
	flow := form.New(mgr, client, files, recorder)

	reg := tg.NewRegistry()
	flow.Register(reg)
	if store != nil {
		reg.RegisterCommand("/recent", commands.Command{
			Handler:     recentCommand(store),
			Description: "Show an agent's latest submissions",
			AdminOnly:   true,
			Hidden:      true,
		})
	}

	return &App{
		cfg:   cfg,
		db:    res.DB,
		mgr:   mgr,
		files: files,
		reg:   reg,
	}, nil
}

// TelegramRunOptions builds the runtime wiring for the bot.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	core := a.cfg.CoreConfig()

	routes := router.CommandRoutes(a.reg, router.CommandRouteOptions{
		AdminID: core.Telegram.AdminID,
	})
	routes = append(routes, router.CallbackRoute(a.reg, router.CallbackOptions{}))
	routes = append(routes, router.TextRoutes(a.mgr, a.reg, router.TextOptions{
		UnknownText: func(c tele.Context) error {
			return helpers.SendText(c, "I did not understand that. Type /help to see what I can do.")
		},
		UnknownPhoto: func(c tele.Context) error {
			return helpers.SendText(c, "I was not expecting a photo. Start a lead with /lead first.")
		},
	})...)

	return tg.RunOptions{
		Config:      core,
		Registry:    a.reg,
		Middlewares: tg.DefaultMiddlewares(core, nil),
		Routes:      routes,
		OnStart: func(_ context.Context, rt tg.Runtime) error {
			a.files.bind(rt.Bot)
			return nil
		},
		OnStop: func(_ context.Context, _ tg.Runtime) error {
			if a.db != nil {
				return a.db.Close()
			}
			return nil
		},
	}, nil
}
