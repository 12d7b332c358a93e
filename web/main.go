package main

import (
	"context"
	"encoding/base64"
	"log"

	"github.com/gin-gonic/gin"

	"tempora.io/tempora/core"
	"tempora.io/tempora/infrastructure/communication"
	"tempora.io/tempora/infrastructure/devops"
	"tempora.io/tempora/store"
	"tempora.io/tempora/web/handlers/template"
	"tempora.io/tempora/web/handlers/timesheet"
	"tempora.io/tempora/web/middlewares"
)

func main() {
	ctx := context.Background()

	cfg, err := devops.Load(ctx)
	if err != nil {
		log.Fatal(err)
	}

	db, err := store.Open(cfg.DSN, cfg.MaxConnections, store.LogLevelWarn)
	if err != nil {
		log.Fatal(err)
	}
	if err := store.Migrate(db); err != nil {
		log.Fatal(err)
	}

	engine := core.NewEngine(store.NewTemplateStore(db), store.NewTimesheetStore(db))

	notify := &communication.Notifier{}
	if cfg.Slack.Token != "" {
		notify.Slack = communication.NewSlack(cfg.Slack.Token, communication.SlackOption{
			InfoChannelID:  cfg.Slack.InfoChannel,
			ErrorChannelID: cfg.Slack.ErrorChannel,
		})
	}
	if cfg.Email.From != "" {
		mailer, err := communication.NewMailer(ctx, cfg.Email.From)
		if err != nil {
			log.Printf("email notifications disabled: %v", err)
		} else {
			notify.Mailer = mailer
		}
	}

	jwtSecret, err := base64.StdEncoding.DecodeString(cfg.SigningSecret)
	if err != nil {
		log.Fatal("Failed to decode JWT secret:", err)
	}

	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	protected := r.Group("/api/v1.0")
	protected.Use(middlewares.Authentication(jwtSecret))
	{
		template.Register(protected, engine)
		timesheet.Register(protected, engine, notify)
	}

	r.Run(cfg.Listen)
}
