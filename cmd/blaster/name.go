package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-blaster/internal/storage"
)

var nameCmd = &cobra.Command{
	Use:   "name",
	Short: "Show the saved player name",
	Long: `Show, set or clear the player name remembered between games.

Examples:
  blaster name
  blaster name set Ada
  blaster name clear`,
	Args: cobra.NoArgs,
	Run:  runName,
}

var nameSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Save a player name",
	Args:  cobra.MinimumNArgs(1),
	Run:   runNameSet,
}

var nameClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the saved player name",
	Args:  cobra.NoArgs,
	Run:   runNameClear,
}

func init() {
	nameCmd.AddCommand(nameSetCmd)
	nameCmd.AddCommand(nameClearCmd)
}

// openStore opens the preferences database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening preferences database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runName(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	name, err := store.PlayerName()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading player name: %v\n", err)
		return
	}
	if name == "" {
		fmt.Println("No player name saved.")
		fmt.Println()
		fmt.Println("Set one with 'blaster name set <name>' or when starting 'blaster play'.")
		return
	}
	fmt.Println(name)
}

func runNameSet(_ *cobra.Command, args []string) {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: name must not be blank")
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	if err := store.SetPlayerName(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving player name: %v\n", err)
		return
	}
	fmt.Printf("Name set: %s\n", name)
}

func runNameClear(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	if err := store.SetPlayerName(""); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing player name: %v\n", err)
		return
	}
	fmt.Println("Player name cleared.")
}
