package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/HannesWell/hipparchus/internal/config"
	"github.com/HannesWell/hipparchus/internal/export"
	"github.com/HannesWell/hipparchus/internal/field"
	"github.com/HannesWell/hipparchus/internal/integrators"
	"github.com/HannesWell/hipparchus/internal/viz"
)

var (
	configFile  string
	duration    float64
	minStep     float64
	maxStep     float64
	absTol      float64
	relTol      float64
	initialStep float64
	maxEvals    int
	plotWidth   int
	outFile     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hipparchus",
		Short: "adaptive step-size ODE integration lab",
	}

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "integrate a model with adaptive step-size control",
		Args:  cobra.ExactArgs(1),
		RunE:  runModel,
	}
	addRunFlags(runCmd)
	runCmd.Flags().IntVar(&plotWidth, "width", 70, "plot width")
	runCmd.Flags().StringVar(&outFile, "out", "", "write the trajectory to a file (.csv or .json)")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "integrate with a live step-size view",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	estimateCmd := &cobra.Command{
		Use:   "estimate [model]",
		Short: "print the estimated initial step for a model",
		Args:  cobra.ExactArgs(1),
		RunE:  runEstimate,
	}
	addRunFlags(estimateCmd)

	rootCmd.AddCommand(runCmd, liveCmd, estimateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "integration interval")
	cmd.Flags().Float64Var(&minStep, "min-step", config.DefaultMinStep, "minimal step magnitude")
	cmd.Flags().Float64Var(&maxStep, "max-step", config.DefaultMaxStep, "maximal step magnitude")
	cmd.Flags().Float64Var(&absTol, "abs-tol", config.DefaultAbsTol, "absolute tolerance")
	cmd.Flags().Float64Var(&relTol, "rel-tol", config.DefaultRelTol, "relative tolerance")
	cmd.Flags().Float64Var(&initialStep, "initial-step", 0, "fixed initial step (0 = estimate)")
	cmd.Flags().IntVar(&maxEvals, "evals", config.DefaultMaxEvals, "evaluation budget")
}

// loadConfig merges the optional config file with command-line flags;
// explicit flags win over file values.
func loadConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.Model = model
	if cmd.Flags().Changed("time") || cfg.Duration == 0 {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("min-step") {
		cfg.MinStep = minStep
	}
	if cmd.Flags().Changed("max-step") {
		cfg.MaxStep = maxStep
	}
	if cmd.Flags().Changed("abs-tol") {
		cfg.AbsTol = absTol
	}
	if cmd.Flags().Changed("rel-tol") {
		cfg.RelTol = relTol
	}
	if cmd.Flags().Changed("initial-step") {
		cfg.InitialStep = initialStep
	}
	if cmd.Flags().Changed("evals") {
		cfg.MaxEvaluations = maxEvals
	}
	return cfg, nil
}

func setup(cmd *cobra.Command, model string) (*config.Config, *integrators.RK45[field.Real], error) {
	cfg, err := loadConfig(cmd, model)
	if err != nil {
		return nil, nil, err
	}
	rk := integrators.NewRK45(cfg.NewControl())
	rk.SetMaxEvaluations(cfg.MaxEvaluations)
	return cfg, rk, nil
}

func runModel(cmd *cobra.Command, args []string) error {
	cfg, rk, err := setup(cmd, args[0])
	if err != nil {
		return err
	}
	sys, y0, err := cfg.System()
	if err != nil {
		return err
	}

	run, err := rk.Start(sys, field.Real(0), y0, cfg.Duration)
	if err != nil {
		return err
	}
	traj := export.NewTrajectory(cfg.Model, cfg.Duration)
	traj.Record(0, 0, reals(y0))
	series := []float64{y0[0].Real()}
	for !run.Done() {
		if err := run.Advance(); err != nil {
			return err
		}
		state := reals(run.State().CompleteState())
		traj.Record(run.Time().Real(), run.StepSize(), state)
		series = append(series, state[0])
	}

	final := run.State()
	stats := run.Stats()
	traj.Accepted = stats.Accepted
	traj.Rejected = stats.Rejected
	traj.Evaluations = stats.Evaluations

	fmt.Println(asciigraph.Plot(series, asciigraph.Height(15), asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("%s: y[0] per accepted step", cfg.Model))))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "final time\t%.6f\n", final.Time().Real())
	for i, y := range final.CompleteState() {
		fmt.Fprintf(w, "y[%d]\t%.8f\n", i, y.Real())
	}
	fmt.Fprintf(w, "accepted steps\t%d\n", stats.Accepted)
	fmt.Fprintf(w, "rejected steps\t%d\n", stats.Rejected)
	fmt.Fprintf(w, "evaluations\t%d\n", stats.Evaluations)
	fmt.Fprintf(w, "step min\t%.3e\n", stats.StepSizes.Min())
	fmt.Fprintf(w, "step mean\t%.3e\n", stats.StepSizes.Mean())
	fmt.Fprintf(w, "step max\t%.3e\n", stats.StepSizes.Max())
	if err := w.Flush(); err != nil {
		return err
	}

	if outFile != "" {
		return export.Write(outFile, traj)
	}
	return nil
}

func reals(ys []field.Real) []float64 {
	out := make([]float64, len(ys))
	for i, y := range ys {
		out[i] = y.Real()
	}
	return out
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, rk, err := setup(cmd, args[0])
	if err != nil {
		return err
	}
	sys, y0, err := cfg.System()
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(viz.NewModel(rk, sys, y0, cfg.Duration, cfg.Model)).Run()
	return err
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg, rk, err := setup(cmd, args[0])
	if err != nil {
		return err
	}
	sys, y0, err := cfg.System()
	if err != nil {
		return err
	}
	run, err := rk.Start(sys, field.Real(0), y0, cfg.Duration)
	if err != nil {
		return err
	}
	fmt.Printf("estimated initial step for %s: %.6e\n", cfg.Model, run.StepSize())
	return nil
}
