package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sudoku_engine_go/internal/generator"
	"sudoku_engine_go/internal/solver"
	"sudoku_engine_go/internal/store"
	"sudoku_engine_go/internal/types"
	"sudoku_engine_go/internal/visualizer"
)

var (
	verbose bool
	logger  *zap.Logger

	// generate flags
	difficultyName string
	seed           int64
	count          int
	workers        int
	upload         bool
	showSolution   bool
	jsonOut        bool

	// count flags
	limit int
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Generate, solve and validate 9x9 Sudoku puzzles",
	Long: `sudoku is a constraint-satisfaction engine for 9x9 Sudoku.

Grids on the command line use the flat 81-digit format, row-major,
with 0 for blank cells:

  530070000600195000098000060800060003400803001700020006060000280000419005000080079`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate puzzles with a unique solution",
	RunE: func(cmd *cobra.Command, args []string) error {
		diff, err := types.ParseDifficulty(difficultyName)
		if err != nil {
			return err
		}

		var puzzles []*types.Puzzle
		if count > 1 {
			puzzles = generator.GenerateBatch(count, diff, seed, workers, nil)
		} else {
			p, err := generator.New(seed).Generate(diff)
			if err != nil {
				return err
			}
			puzzles = []*types.Puzzle{p}
		}

		var st *store.Store
		if upload {
			st, err = store.New(logger)
			if err != nil {
				return err
			}
			if err := st.Authenticate(); err != nil {
				return err
			}
		}

		for _, p := range puzzles {
			if jsonOut {
				data, err := p.ToJSON()
				if err != nil {
					return err
				}
				fmt.Println(string(data))
			} else {
				fmt.Printf("%s (seed %d, %d clues)\n", p.Difficulty, p.Seed, p.Clues)
				visualizer.Fprint(os.Stdout, &p.Grid)
				fmt.Println(p.Grid.String())
				if showSolution {
					fmt.Println("solution:")
					visualizer.Fprint(os.Stdout, &p.Solution)
					fmt.Println(p.Solution.String())
				}
			}
			if st != nil {
				id, err := st.Upload(p)
				if err != nil {
					return err
				}
				fmt.Printf("uploaded as %s\n", id)
			}
		}
		return nil
	},
}

var solveCmd = &cobra.Command{
	Use:   "solve <grid>",
	Short: "Complete a puzzle, or report that none exists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grid, err := types.ParseGrid(args[0])
		if err != nil {
			return err
		}
		if !grid.IsConsistent() {
			return fmt.Errorf("grid has conflicting digits")
		}
		if !solver.Solve(&grid) {
			return fmt.Errorf("no completion exists")
		}
		visualizer.Fprint(os.Stdout, &grid)
		fmt.Println(grid.String())
		return nil
	},
}

var countCmd = &cobra.Command{
	Use:   "count <grid>",
	Short: "Count completions of a puzzle up to a limit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grid, err := types.ParseGrid(args[0])
		if err != nil {
			return err
		}
		if limit < 1 {
			return fmt.Errorf("limit must be at least 1")
		}
		n := solver.CountSolutions(&grid, limit)
		switch {
		case n == 0:
			fmt.Println("0 solutions")
		case n >= limit:
			fmt.Printf("%d or more solutions\n", limit)
		default:
			fmt.Printf("%d solution(s)\n", n)
		}
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <grid>",
	Short: "Check a grid for row/column/box conflicts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grid, err := types.ParseGrid(args[0])
		if err != nil {
			return err
		}
		if !grid.IsConsistent() {
			return fmt.Errorf("grid has conflicting digits")
		}
		fmt.Printf("consistent, %d cells filled\n", grid.FilledCells())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	generateCmd.Flags().StringVarP(&difficultyName, "difficulty", "d", "medium", "easy|medium|hard|expert")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 = time-based)")
	generateCmd.Flags().IntVarP(&count, "count", "n", 1, "number of puzzles to generate")
	generateCmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines for batch generation (0 = NumCPU)")
	generateCmd.Flags().BoolVar(&upload, "upload", false, "upload generated puzzles to PocketBase")
	generateCmd.Flags().BoolVar(&showSolution, "solution", false, "print the solution as well")
	generateCmd.Flags().BoolVar(&jsonOut, "json", false, "emit each puzzle as a JSON document")

	countCmd.Flags().IntVar(&limit, "limit", 2, "stop counting at this many solutions")

	rootCmd.AddCommand(generateCmd, solveCmd, countCmd, checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
