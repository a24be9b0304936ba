package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"optica/internal/render"
	"optica/internal/report"
	"optica/internal/university"
	"optica/internal/watch"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose   bool
	inputPath string
	indexed   bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "optica",
	Short: "optica - generic lens/traversal reports over immutable records",
	Long: `optica runs the standard report operations (read name, uppercase name,
total budget, double budgets) against a university record, using either the
structural traversal nexus or the dynamically derived per-department lenses.

Records are loaded from a YAML file, or the built-in urjc sample is used
when no input is given.`,
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
		logger = logger.With(zap.String("run_id", uuid.New().String()[:8]))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, args)
	},
}

// reportCmd prints the standard report for the input record
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the report operations and print a summary",
	RunE:  runReport,
}

// doubleCmd applies DoubleBudgets and prints the result
var doubleCmd = &cobra.Command{
	Use:   "double",
	Short: "Double every department budget and print the summary",
	RunE:  runDouble,
}

// checkCmd compares the two nexus variants against the same input
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that the structural and indexed variants agree",
	RunE:  runCheck,
}

// watchCmd re-runs the report whenever the input file changes
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the report on every change to the input file",
	RunE:  runWatch,
}

var doubleTimes int

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "University YAML file (default: built-in sample)")
	rootCmd.PersistentFlags().BoolVar(&indexed, "indexed", false, "Use the dynamically derived per-department lenses")

	doubleCmd.Flags().IntVar(&doubleTimes, "times", 1, "How many times to double")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(doubleCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadInput reads the configured input file, falling back to the sample.
func loadInput() (university.University, error) {
	if inputPath == "" {
		logger.Debug("no input file, using built-in sample")
		return university.Sample(), nil
	}
	u, err := university.Load(inputPath)
	if err != nil {
		return university.University{}, err
	}
	logger.Debug("loaded university",
		zap.String("path", inputPath),
		zap.String("name", u.Name),
		zap.Int("departments", len(u.Departments)))
	return u, nil
}

// operations is the variant-independent view the commands work with.
type operations struct {
	readName     func(university.University) string
	upperName    func(university.University) university.University
	totalBudget  func(university.University) int
	doubleBudget func(university.University) university.University
}

func structuralOps() operations {
	r := report.NewReporter[university.University, university.Department](university.Schema{})
	return operations{
		readName:     r.ReadName,
		upperName:    r.UpperName,
		totalBudget:  r.TotalBudget,
		doubleBudget: r.DoubleBudgets,
	}
}

func indexedOps() operations {
	r := report.NewIndexedReporter[university.University, university.Department](university.IndexedSchema{})
	return operations{
		readName:     r.ReadName,
		upperName:    r.UpperName,
		totalBudget:  r.TotalBudget,
		doubleBudget: r.DoubleBudgets,
	}
}

func selectedOps() operations {
	if indexed {
		logger.Debug("using indexed nexus variant")
		return indexedOps()
	}
	return structuralOps()
}

func summarize(ops operations, u university.University) render.Summary {
	budgets := make([]int, len(u.Departments))
	for i, d := range u.Departments {
		budgets[i] = d.Budget
	}
	return render.Summary{
		Name:      ops.readName(u),
		Community: u.Community,
		Budgets:   budgets,
		Total:     ops.totalBudget(u),
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	u, err := loadInput()
	if err != nil {
		return err
	}
	fmt.Println(render.RenderSummary(summarize(selectedOps(), u)))
	return nil
}

func runDouble(cmd *cobra.Command, args []string) error {
	u, err := loadInput()
	if err != nil {
		return err
	}
	ops := selectedOps()
	for i := 0; i < doubleTimes; i++ {
		u = ops.doubleBudget(u)
	}
	logger.Info("doubled budgets",
		zap.Int("times", doubleTimes),
		zap.Int("total", ops.totalBudget(u)))
	fmt.Println(render.RenderSummary(summarize(ops, u)))
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	u, err := loadInput()
	if err != nil {
		return err
	}
	structural, idx := structuralOps(), indexedOps()

	failures := 0
	check := func(name string, ok bool, detail string) {
		if !ok {
			failures++
		}
		fmt.Println(render.RenderCheck(name, ok, detail))
	}

	check("readName", structural.readName(u) == idx.readName(u), "")
	check("totalBudget",
		structural.totalBudget(u) == idx.totalBudget(u),
		"")
	if diff := cmp.Diff(structural.upperName(u), idx.upperName(u)); diff != "" {
		check("upperName", false, diff)
	} else {
		check("upperName", true, "")
	}
	if diff := cmp.Diff(structural.doubleBudget(u), idx.doubleBudget(u)); diff != "" {
		check("doubleBudgets", false, diff)
	} else {
		check("doubleBudgets", true, "")
	}

	if failures > 0 {
		return fmt.Errorf("%d variant check(s) failed", failures)
	}
	logger.Info("variants agree", zap.String("name", u.Name))
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	if inputPath == "" {
		return fmt.Errorf("watch requires --input")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Received shutdown signal")
		cancel()
	}()

	ops := selectedOps()
	w := watch.New(logger, inputPath, 500*time.Millisecond, func(path string) error {
		u, err := university.Load(path)
		if err != nil {
			return err
		}
		fmt.Println(render.RenderSummary(summarize(ops, u)))
		return nil
	})

	logger.Info("watching input", zap.String("path", inputPath))
	return w.Run(ctx)
}
