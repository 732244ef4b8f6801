package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/birdfeed/internal/platform/tui"
	"github.com/vovakirdan/birdfeed/internal/storage"
)

var (
	flagBoard bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [setting]",
	Short: "Show high scores for a countdown setting",
	Long: `Display the top high scores for games played with the given countdown
setting in minutes. Without a setting, the rules' default setting is used.

Examples:
  birdfeed scores
  birdfeed scores 5
  birdfeed scores --board`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Browse every setting in an interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) error {
	rules, err := loadRules()
	if err != nil {
		return err
	}

	setting := rules.Countdown.DefaultSetting
	if len(args) == 1 {
		setting, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid setting %q: %w", args[0], err)
		}
		if setting < rules.Countdown.MinSetting || setting > rules.Countdown.MaxSetting {
			return fmt.Errorf("setting %d out of range %d..%d",
				setting, rules.Countdown.MinSetting, rules.Countdown.MaxSetting)
		}
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, setting, width, height)
	}

	scores, err := store.TopScores(setting, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %d minute countdown\n", setting)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'birdfeed play --setting %d' to set the first high score!\n", setting)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-10s  %-7s  %-12s  %s\n", "Rank", "Score", "Dandelions", "Berries", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-10s  %-7s  %-12s  %s\n", "----", "-----", "----------", "-------", "------", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-10d  %-7d  %-12s  %s\n",
			i+1, entry.Score, entry.Dandelions, entry.Berries, player, dateStr)
	}

	fmt.Println()
	if totals, err := store.Totals(); err == nil {
		fmt.Printf("All settings: %d games, %d dandelions, %d berries, best %d\n",
			totals.Games, totals.Dandelions, totals.Berries, totals.BestScore)
	}
	return nil
}
