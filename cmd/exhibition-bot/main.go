package main

import (
	"log"

	"github.com/izzat1998/exhibition-bot/core/cmd"
	"github.com/izzat1998/exhibition-bot/internal/app"
)

func main() {
	err := cmd.Run(cmd.Options{
		ConfigEnvVar:      "CONFIG_PATH",
		DefaultConfigPath: "config.yaml",
		LoadConfig:        app.LoadConfig,
		Bootstrap:         app.Bootstrap,
	})
	if err != nil {
		log.Fatalf("exhibition-bot: %v", err)
	}
}
