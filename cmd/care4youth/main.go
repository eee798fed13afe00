package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/Care4Youth/care4youth"
	"github.com/Care4Youth/care4youth/internal/config"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

var (
	confPath = flag.String("config", "./config.toml", "Config path")
)

func main() {
	flag.Parse()

	// .env is optional; the config file plus real env vars are enough
	godotenv.Load()

	if err := config.Load(*confPath); err != nil {
		slog.Error("Couldn't load config", slog.Any("err", err))
		os.Exit(1)
	}

	slog.SetDefault(slog.New(care4youth.GetSlogHandler(config.C.Common.Debug, os.Stdout)))

	app := &cli.App{
		Name:    "Care4Youth",
		Usage:   "Control the donation website",
		Version: care4youth.Version,
		// flags won't be used, they are here so an error isnt thrown
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Config path",
				Value: "./config.toml",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "web",
				Usage:  "Website/API",
				Action: Web,
			},
		},
		DefaultCommand: "web",
	}
	if err := app.Run(os.Args); err != nil {
		slog.Error("App exited with error", slog.Any("err", err))
		os.Exit(1)
	}
}
