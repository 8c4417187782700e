package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gmelli/agentic-planner-cli/internal/config"
	"github.com/gmelli/agentic-planner-cli/internal/executor"
	"github.com/gmelli/agentic-planner-cli/internal/models"
	"github.com/gmelli/agentic-planner-cli/internal/planner"
	"github.com/gmelli/agentic-planner-cli/internal/providers/llm"
	"github.com/gmelli/agentic-planner-cli/internal/tools"
)

const banner = "=================================================="

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println("\nOperation cancelled by user")
		} else if ge := (*goalError)(nil); errors.As(err, &ge) {
			fmt.Printf("ERROR: %s\n", ge.msg)
			fmt.Printf("HELP: %s\n", ge.help)
		} else {
			fmt.Printf("Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath  string
		maxSteps int
		verbose  bool
		explain  bool
	)

	cmd := &cobra.Command{
		Use:   "agentic [goal]",
		Short: "Break down a research goal into search-and-summarize steps and execute them",
		Long: `Agentic Planner CLI - Break down goals into actionable steps.

Good examples:
  "Find information about quantum computing"
  "Research artificial intelligence trends"
  "Explain machine learning basics"

Avoid math problems, code generation, and debugging requests; this tool
searches and summarizes web content.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("max-steps") {
				maxSteps = cfg.Execution.DefaultMaxSteps
			}
			return run(cmd.Context(), runOptions{
				goal:     strings.TrimSpace(args[0]),
				cfg:      cfg,
				maxSteps: maxSteps,
				verbose:  verbose,
				explain:  explain,
			})
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to config file")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "maximum number of steps to execute")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	cmd.Flags().BoolVar(&explain, "explain", false, "show how the model decomposes the goal")
	return cmd
}

type runOptions struct {
	goal     string
	cfg      *config.Config
	maxSteps int
	verbose  bool
	explain  bool
}

func run(ctx context.Context, opts runOptions) error {
	if gerr := validateGoal(opts.goal, opts.cfg.Validation); gerr != nil {
		return gerr
	}

	if opts.verbose {
		fmt.Println("AGENTIC PLANNER CLI - Technical Demonstration")
		fmt.Println(banner)
		fmt.Println("Architecture: Goal -> Plan (LLM) -> Execute (Search + Summarize)")
		fmt.Println(banner)
	}

	// Model handles are built once; a construction failure aborts startup.
	planClient, err := llm.New(ctx, opts.cfg.LLM, opts.cfg.LLM.PlanningModel, opts.cfg.Generation.PlanningMaxTokens)
	if err != nil {
		return fmt.Errorf("loading planning model: %w", err)
	}
	sumClient, err := llm.New(ctx, opts.cfg.LLM, opts.cfg.LLM.SummarizationModel, opts.cfg.Generation.SummaryMaxLength)
	if err != nil {
		return fmt.Errorf("loading summarization model: %w", err)
	}

	registry := tools.NewRegistry()
	search := tools.NewSearchTool(opts.cfg.Search)
	search.Verbose = opts.verbose
	summarize := tools.NewSummarizeTool(sumClient, opts.cfg.Generation)
	summarize.Verbose = opts.verbose
	registry.Register(search)
	registry.Register(summarize)

	pl := planner.New(planClient)
	pl.Verbose = opts.verbose

	planStart := time.Now()
	plan, reasoning := pl.Plan(ctx, opts.goal)
	planDuration := time.Since(planStart)
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(plan.Steps) == 0 {
		return errors.New("could not generate a valid plan")
	}

	if opts.explain {
		printReasoning(opts.goal, reasoning, plan)
	}

	exec := executor.New(registry, opts.maxSteps)
	exec.Verbose = opts.verbose
	execStart := time.Now()
	result := exec.ExecutePlan(ctx, plan, opts.goal)
	execDuration := time.Since(execStart)
	if err := ctx.Err(); err != nil {
		return err
	}

	if opts.verbose || opts.explain {
		printTimings(planDuration, execDuration)
	}

	fmt.Println("\n" + banner)
	if opts.verbose {
		fmt.Println("FINAL RESULT - Agentic Planning Complete")
	} else {
		fmt.Println("FINAL RESULT:")
	}
	fmt.Println(banner)
	fmt.Println(result)
	return nil
}

func printReasoning(goal, reasoning string, plan *models.Plan) {
	fmt.Println("\nMODEL REASONING:")
	fmt.Printf("  Original goal: %q\n", goal)
	fmt.Printf("  Extracted search terms: %q\n", planner.DeriveQuery(goal))
	if reasoning != "" {
		fmt.Printf("  Model output: %q\n", reasoning)
	} else {
		fmt.Println("  Model output unavailable; fixed fallback plan in use")
	}
	fmt.Println("  Parsed execution plan:")
	for i, step := range plan.Steps {
		fmt.Printf("    Step %d: %s(%q)\n", i+1, step.Tool, step.Argument)
	}
}

func printTimings(planDuration, execDuration time.Duration) {
	total := planDuration + execDuration
	if total <= 0 {
		total = time.Nanosecond
	}
	fmt.Println("\nPERFORMANCE BREAKDOWN:")
	fmt.Printf("  Planning:  %.1fms (%.1f%%)\n", toMillis(planDuration), float64(planDuration)/float64(total)*100)
	fmt.Printf("  Execution: %.1fms (%.1f%%)\n", toMillis(execDuration), float64(execDuration)/float64(total)*100)
	fmt.Printf("  Total:     %.1fms\n", toMillis(total))
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
