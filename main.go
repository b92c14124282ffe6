package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"quill/app/config"
	"quill/app/logger"
	"quill/service"

	"github.com/rs/zerolog/log"
)

const CliVersion = "1.0.0"

var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches the command line and exits with the command's status.
func RealMain() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
		exit(0)
	case "version":
		fmt.Printf("quill version %s\n", CliVersion)
		exit(0)
	case "serve":
		exit(serve())
	case "db":
		cfg, ok := loadConfig()
		if !ok {
			exit(1)
			return
		}
		exit(service.HandleCommand(cfg, os.Args[2:]))
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: quill <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the JSON API server.
  db <init|clean|backup|restore <file>|help>
                                 Manage the database.

Configuration is read from the environment and an optional .env file:
  QUILL_ENV, QUILL_ADDR, QUILL_DATA_DIR, QUILL_BACKUP_DIR,
  QUILL_LOG_LEVEL, QUILL_SHUTDOWN_TIMEOUT
`
	fmt.Println(helpText)
}

func loadConfig() (*config.Config, bool) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		return nil, false
	}
	logger.Init(cfg.Env, cfg.LogLevel)
	return cfg, true
}

// serve runs the API until SIGINT or SIGTERM.
func serve() int {
	cfg, ok := loadConfig()
	if !ok {
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := service.RunAppServer(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("server failed")
		return 1
	}
	return 0
}
