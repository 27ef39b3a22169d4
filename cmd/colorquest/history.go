package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-quest/internal/history"
	"github.com/vovakirdan/color-quest/internal/platform/tui"
	"github.com/vovakirdan/color-quest/internal/storage"
)

var (
	flagHistoryClear bool
	flagHistoryLimit int
	flagHistoryUser  string
	flagHistoryKeys  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the ranked history",
	Long: `Display the saved games, best first.

Games played over SSH are kept per SSH user; pass --user to see them.

Examples:
  colorquest history
  colorquest history --limit 10
  colorquest history --user alice
  colorquest history --keys
  colorquest history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the history")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 0, "Show at most this many games (0 = all)")
	historyCmd.Flags().StringVar(&flagHistoryUser, "user", "", "Show the history of an SSH user")
	historyCmd.Flags().BoolVar(&flagHistoryKeys, "keys", false, "List every stored history")
}

func runHistory(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(os.Stderr, cfg.Log.Level)

	db, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	if flagHistoryKeys {
		printKeys(ctx, db, cfg.History.Key)
		return
	}

	key := cfg.History.Key
	if flagHistoryUser != "" {
		key = tui.HistoryKey(key, flagHistoryUser)
	}
	store := historyStore(db, cfg, key, logger)

	if flagHistoryClear {
		if err := store.Clear(ctx); err != nil {
			db.Close()
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	printHistory(store.Load(ctx), flagHistoryLimit)
}

func printHistory(records []history.Record, limit int) {
	fmt.Println("History")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No games played yet.")
		fmt.Println()
		fmt.Println("Run 'colorquest play' to start!")
		return
	}

	shown := records
	if limit > 0 && limit < len(shown) {
		shown = shown[:limit]
	}

	// Print header
	fmt.Printf("  %-4s  %-20s  %-8s  %-5s  %s\n", "Rank", "Player", "Level", "Score", "Date")
	fmt.Printf("  %-4s  %-20s  %-8s  %-5s  %s\n", "----", "------", "-----", "-----", "----")

	for i, r := range shown {
		dateStr := r.Date.Local().Format("02/01/2006 15:04")
		fmt.Printf("  %-4d  %-20s  %-8s  %-5d  %s\n", i+1, r.PlayerName, r.Level.Title(), r.Score, dateStr)
	}

	// Show best game
	fmt.Println()
	if best, ok := history.Best(records); ok {
		bold := color.New(color.Bold)
		bold.Printf("Best: %s with %d (%s)\n", best.PlayerName, best.Score, best.Level.Title())
	}
}

func printKeys(ctx context.Context, db *storage.Store, prefix string) {
	entries, err := db.Entries(ctx, prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing histories: %v\n", err)
		return
	}
	if len(entries) == 0 {
		fmt.Println("No stored histories.")
		return
	}

	fmt.Printf("  %-40s  %-8s  %s\n", "Key", "Bytes", "Updated")
	fmt.Printf("  %-40s  %-8s  %s\n", "---", "-----", "-------")
	for _, e := range entries {
		fmt.Printf("  %-40s  %-8d  %s\n", e.Key, e.Size, e.UpdatedAt.Local().Format("02/01/2006 15:04"))
	}
}
