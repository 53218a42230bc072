package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"starbar/internal/logging"
	"starbar/internal/rating"
	"starbar/internal/ratings"
	"starbar/internal/service"
	"starbar/internal/termbar"
)

var (
	dbPathFlag string
	ratingDB   *ratings.RatingDB
	svc        *service.Service
	maxFlag    int
)

func cliLogger(msg string) {
	log.Printf("[starbar-cli] %s", msg)
}

// ScreenFunc opens the terminal used by the rate command.
type ScreenFunc func() (tcell.Screen, error)

// NewRootCmd creates the root command for the CLI application.
// getServiceAndDB opens the service and database for a --dbpath value, and
// newScreen opens the terminal for the rate command. Tests pass their own to
// use a temporary database and a simulation screen.
func NewRootCmd(getServiceAndDB func(dbPath string, logger logging.LoggerFunc) (*service.Service, *ratings.RatingDB, error), newScreen ScreenFunc) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "starbar-cli",
		Short: "StarBar CLI - manage star ratings",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// PostRun is skipped when a command fails
			if ratingDB != nil {
				ratingDB.Close()
			}
			var err error
			svc, ratingDB, err = getServiceAndDB(dbPathFlag, cliLogger)
			if err != nil {
				return fmt.Errorf("failed to initialize service and ratings DB: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if ratingDB != nil {
				ratingDB.Close()
				ratingDB = nil
			}
		},
		SilenceUsage: true,
	}

	// Set command
	setCmd := &cobra.Command{
		Use:   "set [item] [rating]",
		Short: "Store a rating for an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[1], 32)
			if err != nil {
				return fmt.Errorf("invalid rating '%s': %w", args[1], err)
			}
			stored, err := svc.SetRating(args[0], float32(value), maxFlag)
			if err != nil {
				return err
			}
			cmd.Printf("%s: %s\n", args[0], formatRating(stored, maxFlag))
			return nil
		},
	}
	setCmd.Flags().IntVar(&maxFlag, "max", rating.DefaultMaxStars, "Number of stars in the scale")
	rootCmd.AddCommand(setCmd)

	// Get command
	getCmd := &cobra.Command{
		Use:   "get [item]",
		Short: "Show the rating of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, found, err := svc.GetRating(args[0])
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("no rating for '%s'", args[0])
			}
			cmd.Printf("%s: %s\n", rec.Item, formatRating(rec.Rating, rec.Max))
			return nil
		},
	}
	rootCmd.AddCommand(getCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every stored rating",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := svc.ListRatings()
			if err != nil {
				return err
			}
			if len(records) == 0 {
				cmd.Println("No ratings found in the database.")
				return nil
			}
			for _, rec := range records {
				cmd.Printf("%s: %s (updated %s)\n", rec.Item, formatRating(rec.Rating, rec.Max), humanize.Time(rec.Updated))
			}
			return nil
		},
	}
	rootCmd.AddCommand(listCmd)

	// Remove command
	removeCmd := &cobra.Command{
		Use:   "remove [item]",
		Short: "Delete the rating of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.RemoveRating(args[0]); err != nil {
				return err
			}
			cmd.Printf("Removed '%s'\n", args[0])
			return nil
		},
	}
	rootCmd.AddCommand(removeCmd)

	// Summary command
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the average rating and how many items have each star count",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := svc.Summary()
			if err != nil {
				return err
			}
			if summary.Count == 0 {
				cmd.Println("No ratings found in the database.")
				return nil
			}
			cmd.Printf("%s rated, average %.2f\n", humanize.Comma(int64(summary.Count))+" "+pluralItems(summary.Count), summary.Average)
			stars := make([]int, 0, len(summary.Stars))
			for s := range summary.Stars {
				stars = append(stars, s)
			}
			sort.Sort(sort.Reverse(sort.IntSlice(stars)))
			for _, s := range stars {
				cmd.Printf("%2d %s %d\n", s, starString(s), summary.Stars[s])
			}
			return nil
		},
	}
	rootCmd.AddCommand(summaryCmd)

	// Rate command
	rateCmd := &cobra.Command{
		Use:   "rate [item]",
		Short: "Pick a rating for an item with the mouse in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item := args[0]
			max := maxFlag
			var current float32
			rec, found, err := svc.GetRating(item)
			if err != nil {
				return err
			}
			if found {
				current = rec.Rating
				if !cmd.Flags().Changed("max") {
					max = rec.Max
				}
			}

			screen, err := newScreen()
			if err != nil {
				return fmt.Errorf("failed to open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("failed to initialize terminal: %w", err)
			}
			model := rating.NewModel(max, rating.DefaultMinStars, current)
			saved, err := termbar.Prompt(screen, "Rate: "+item, model)
			screen.Fini()
			if err != nil {
				return err
			}
			if !saved {
				cmd.Println("Cancelled.")
				return nil
			}

			stored, err := svc.SetRating(item, model.Rating(), max)
			if err != nil {
				return err
			}
			cmd.Printf("%s: %s\n", item, formatRating(stored, max))
			return nil
		},
	}
	rateCmd.Flags().IntVar(&maxFlag, "max", rating.DefaultMaxStars, "Number of stars in the scale")
	rootCmd.AddCommand(rateCmd)

	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "dbpath", "", "Directory holding the ratings database")

	return rootCmd
}

// formatRating renders rating as stars followed by the numbers, for example
// "★★★☆☆ 3/5".
func formatRating(value float32, max int) string {
	model := rating.NewModel(max, 0, value)
	stars := make([]rune, 0, max)
	for i := 0; i < max; i++ {
		if model.Filled(i) {
			stars = append(stars, termbar.FilledRune)
		} else {
			stars = append(stars, termbar.EmptyRune)
		}
	}
	return fmt.Sprintf("%s %g/%d", string(stars), value, max)
}

func starString(n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = termbar.FilledRune
	}
	return string(out)
}

func pluralItems(n int) string {
	if n == 1 {
		return "item"
	}
	return "items"
}

func main() {
	getSvcAndDBFunc := func(dbPath string, logger logging.LoggerFunc) (*service.Service, *ratings.RatingDB, error) {
		rdb, err := ratings.NewRatingDB(dbPath, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open ratings DB: %w", err)
		}
		return service.NewService(rdb, logger), rdb, nil
	}
	rootCmd := NewRootCmd(getSvcAndDBFunc, tcell.NewScreen)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
