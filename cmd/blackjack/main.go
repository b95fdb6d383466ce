package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/atakolday/educational-blackjack/internal/config"
	"github.com/atakolday/educational-blackjack/internal/game"
	"github.com/atakolday/educational-blackjack/internal/logger"
	"github.com/atakolday/educational-blackjack/internal/sound"
	"github.com/atakolday/educational-blackjack/internal/ui"
)

func main() {
	// A .env file can carry the BLACKJACK_* overrides.
	_ = godotenv.Load()

	configPath := flag.String("config", "configs/config.yaml", "path to the table configuration")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("could not load %s, using defaults: %v", *configPath, err)
		cfg = config.Default()
	}

	// The terminal belongs to bubbletea, so everything logs to a file.
	if err := logger.Init(); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Close()

	snd := sound.NewManager()
	defer snd.Close()

	g := game.New(&cfg.Game)

	p := tea.NewProgram(ui.New(g, cfg, snd), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.LogError("program error: %v", err)
		log.Fatalf("error running program: %v", err)
	}
}
