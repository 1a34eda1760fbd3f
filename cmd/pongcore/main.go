package main

import (
	"fmt"
	"os"

	"github.com/lromero/pongcore/internal/app"
	"github.com/lromero/pongcore/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	logger, logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	application := app.NewApp(cfg, logger)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pongcore [options]               Play against the computer")
	fmt.Fprintln(os.Stderr, "  pongcore --left human --right human   Two players on one keyboard")
	fmt.Fprintln(os.Stderr, "  pongcore --demo                  Watch an ambient demo match")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --left <kind>       Left player: human or ai (default: human)")
	fmt.Fprintln(os.Stderr, "  --right <kind>      Right player: human or ai (default: ai)")
	fmt.Fprintln(os.Stderr, "  --points <n>        Points to win (default: 10)")
	fmt.Fprintln(os.Stderr, "  --time-limit <d>    Match time limit, 0 to disable (default: 10m)")
	fmt.Fprintln(os.Stderr, "  --tuning <file>     YAML file overriding gameplay tuning")
	fmt.Fprintln(os.Stderr, "  --persist <url>     Record matches and goals to this API")
	fmt.Fprintln(os.Stderr, "  --record <file>     Write a replay of the match")
	fmt.Fprintln(os.Stderr, "  --debug             Write debug logs to logs/pongcore.log")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  w/s                 Move left paddle")
	fmt.Fprintln(os.Stderr, "  up/down             Move right paddle (or left when playing solo)")
	fmt.Fprintln(os.Stderr, "  p or space          Pause / resume")
	fmt.Fprintln(os.Stderr, "  q                   Quit")
}
