package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/trajplan/internal/batch"
	"github.com/san-kum/trajplan/internal/config"
	"github.com/san-kum/trajplan/internal/diagnostics"
	"github.com/san-kum/trajplan/internal/pathgeom"
	"github.com/san-kum/trajplan/internal/sampler"
	"github.com/san-kum/trajplan/internal/scenario"
	"github.com/san-kum/trajplan/internal/store"
	"github.com/san-kum/trajplan/internal/trajopt"
	"github.com/san-kum/trajplan/internal/tui"
	"github.com/san-kum/trajplan/internal/tuning"
	"github.com/san-kum/trajplan/internal/vecn"
)

var (
	dataDir      string
	configFile   string
	presetName   string
	maxDeviation float64
	timeStep     float64
	xAxis        int
	yAxis        int
	canvasWidth  int
	canvasHeight int
	samples      int
	svgScale     float64
	sampleTime   float64
	batchNames   []string
	tuneParam    string
	tuneValues   string
)

// main is the entry point for the trajplan CLI: it registers commands
// and flags for building, inspecting, and exporting time-optimal
// trajectories, then executes the resolved command.
func main() {
	rootCmd := &cobra.Command{
		Use:   "trajplan",
		Short: "time-optimal trajectory generation over waypoints",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".trajplan", "data directory")

	buildCmd := &cobra.Command{
		Use:   "build [scenario]",
		Short: "solve a trajectory from a preset or config file and save it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBuild,
	}
	buildCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	buildCmd.Flags().Float64Var(&maxDeviation, "max-deviation", config.DefaultMaxDeviation, "corner blend tolerance")
	buildCmd.Flags().Float64Var(&timeStep, "time-step", config.DefaultTimeStep, "sampling time step")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenario presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  runList,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the solved path-velocity profile for a run",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "draw the configuration-space projection of a run's path",
		Args:  cobra.ExactArgs(1),
		RunE:  runPhase,
	}
	phaseCmd.Flags().IntVar(&xAxis, "x-axis", 0, "waypoint dimension for x-axis")
	phaseCmd.Flags().IntVar(&yAxis, "y-axis", 1, "waypoint dimension for y-axis")
	phaseCmd.Flags().IntVar(&canvasWidth, "width", 60, "canvas width in characters")
	phaseCmd.Flags().IntVar(&canvasHeight, "height", 20, "canvas height in characters")
	phaseCmd.Flags().IntVar(&samples, "samples", 300, "arc-length samples")

	svgCmd := &cobra.Command{
		Use:   "svg [run_id]",
		Short: "export a run's configuration-space projection as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  runSVG,
	}
	svgCmd.Flags().IntVar(&xAxis, "x-axis", 0, "waypoint dimension for x-axis")
	svgCmd.Flags().IntVar(&yAxis, "y-axis", 1, "waypoint dimension for y-axis")
	svgCmd.Flags().IntVar(&canvasWidth, "width", 60, "canvas width in characters")
	svgCmd.Flags().IntVar(&canvasHeight, "height", 20, "canvas height in characters")
	svgCmd.Flags().IntVar(&samples, "samples", 300, "arc-length samples")
	svgCmd.Flags().Float64Var(&svgScale, "scale", 4, "pixels per sub-pixel dot")

	sampleCmd := &cobra.Command{
		Use:   "sample [run_id]",
		Short: "sample position and velocity at a given time",
		Args:  cobra.ExactArgs(1),
		RunE:  runSample,
	}
	sampleCmd.Flags().Float64Var(&sampleTime, "t", 0, "time to sample, in seconds")

	scrubCmd := &cobra.Command{
		Use:   "scrub [run_id]",
		Short: "interactively scrub through a solved trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runScrub,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run's profile as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportJSON,
	}

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "build several preset scenarios concurrently",
		RunE:  runBatch,
	}
	batchCmd.Flags().StringSliceVar(&batchNames, "scenario", nil, "scenario name (repeatable); defaults to all presets")

	tuneCmd := &cobra.Command{
		Use:   "tune [scenario]",
		Short: "grid-search max-deviation for the fastest blended trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runTune,
	}
	tuneCmd.Flags().StringVar(&tuneParam, "param", "max_deviation", "parameter name to search")
	tuneCmd.Flags().StringVar(&tuneValues, "values", "0,0.05,0.1,0.2", "comma-separated candidate values")

	rootCmd.AddCommand(buildCmd, presetsCmd, listCmd, plotCmd, phaseCmd, svgCmd, sampleCmd, scrubCmd, exportJSONCmd, batchCmd, tuneCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, name, err := resolveConfig(args)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("max-deviation") || cmd.Flags().Changed("time-step") {
		c := *cfg
		if cmd.Flags().Changed("max-deviation") {
			c.MaxDeviation = maxDeviation
		}
		if cmd.Flags().Changed("time-step") {
			c.TimeStep = timeStep
		}
		cfg = &c
	}

	result, buildErr := scenario.Build(cfg)
	if result == nil {
		return buildErr
	}
	if buildErr != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", buildErr)
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runID, err := st.Save(name, cfg.MaxVelocity, cfg.MaxAcceleration, cfg.MaxDeviation, cfg.TimeStep, result.Traj)
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n", name)
	fmt.Printf("valid: %v\n", result.Traj.IsValid())
	fmt.Printf("duration: %.4fs\n", result.Traj.Duration())
	fmt.Printf("profile steps: %d\n", len(result.Traj.Profile()))
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func resolveConfig(args []string) (*config.Config, string, error) {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		if cfg.MaxDeviation == 0 {
			cfg.MaxDeviation = maxDeviation
		}
		return cfg, cfg.Name, nil
	}

	name := "zig-zag"
	if len(args) > 0 {
		name = args[0]
	}
	cfg := config.GetPreset(name)
	if cfg == nil {
		return nil, "", fmt.Errorf("unknown scenario: %s (see 'trajplan presets')", name)
	}
	return cfg, name, nil
}

func runList(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tVALID\tDURATION\tSTEPS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%.4fs\t%d\n",
			run.ID, run.Scenario, run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Valid, run.Duration, run.Steps)
	}
	return w.Flush()
}

func loadRunTrajectory(runID string) (*store.RunMetadata, *trajopt.Trajectory, error) {
	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	cfg := config.GetPreset(meta.Scenario)
	if cfg == nil {
		return nil, nil, fmt.Errorf("cannot reconstruct path for scenario %q: no matching preset", meta.Scenario)
	}
	path := pathgeom.Build(cfg.WaypointVectors(), meta.MaxDeviation)
	traj := trajopt.New(path, vecn.Vector(meta.MaxVelocity), vecn.Vector(meta.MaxAcceleration), meta.TimeStep)
	return meta, traj, nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	meta, traj, err := loadRunTrajectory(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("run: %s (%s)\n\n", args[0], meta.Scenario)
	fmt.Println(diagnostics.PathVelocityProfile(traj, 80, 15))

	vel, acc := diagnostics.LimitCurves(traj, 200, 80, 12)
	fmt.Println()
	fmt.Println(vel)
	fmt.Println()
	fmt.Println(acc)
	return nil
}

func runPhase(cmd *cobra.Command, args []string) error {
	_, traj, err := loadRunTrajectory(args[0])
	if err != nil {
		return err
	}
	out, err := diagnostics.PathProjectionString(traj.Path(), xAxis, yAxis, canvasWidth, canvasHeight, samples)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func runSVG(cmd *cobra.Command, args []string) error {
	_, traj, err := loadRunTrajectory(args[0])
	if err != nil {
		return err
	}
	canvas, err := diagnostics.PathProjection(traj.Path(), xAxis, yAxis, canvasWidth, canvasHeight, samples)
	if err != nil {
		return err
	}
	fmt.Println(diagnostics.CanvasToSVG(canvas, svgScale))
	return nil
}

func runSample(cmd *cobra.Command, args []string) error {
	_, traj, err := loadRunTrajectory(args[0])
	if err != nil {
		return err
	}
	cursor := sampler.NewCursor()
	cfg, vel := sampler.Sample(traj, cursor, sampleTime)

	parts := make([]string, len(cfg))
	for i, v := range cfg {
		parts[i] = strconv.FormatFloat(v, 'f', 6, 64)
	}
	velParts := make([]string, len(vel))
	for i, v := range vel {
		velParts[i] = strconv.FormatFloat(v, 'f', 6, 64)
	}

	fmt.Printf("t=%.4f\n", sampleTime)
	fmt.Printf("position: [%s]\n", strings.Join(parts, ", "))
	fmt.Printf("velocity: [%s]\n", strings.Join(velParts, ", "))
	return nil
}

func runScrub(cmd *cobra.Command, args []string) error {
	_, traj, err := loadRunTrajectory(args[0])
	if err != nil {
		return err
	}
	if !traj.IsValid() {
		return fmt.Errorf("cannot scrub an invalid trajectory: %w", traj.Err())
	}
	p := tea.NewProgram(tui.NewModel(traj))
	_, err = p.Run()
	return err
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	meta, traj, err := loadRunTrajectory(args[0])
	if err != nil {
		return err
	}
	return store.ExportJSONStdout(meta.Scenario, meta.MaxDeviation, traj)
}

func runBatch(cmd *cobra.Command, args []string) error {
	names := batchNames
	if len(names) == 0 {
		names = config.ListPresets()
	}
	reg := scenario.NewRegistry()

	fmt.Printf("building %d scenarios...\n", len(names))
	start := time.Now()
	results := batch.Run(context.Background(), reg, names)
	elapsed := time.Since(start)

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tSTATUS\tDURATION\tRUN ID")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%s\tERROR: %v\t-\t-\n", r.Name, r.Err)
			continue
		}
		cfg := config.GetPreset(r.Name)
		runID, err := st.Save(r.Name, cfg.MaxVelocity, cfg.MaxAcceleration, cfg.MaxDeviation, cfg.TimeStep, r.Scenario.Traj)
		if err != nil {
			fmt.Fprintf(w, "%s\tSAVE ERROR: %v\t-\t-\n", r.Name, err)
			continue
		}
		fmt.Fprintf(w, "%s\tok\t%.4fs\t%s\n", r.Name, r.Scenario.Traj.Duration(), runID)
	}
	w.Flush()
	fmt.Printf("completed in %v\n", elapsed)
	return nil
}

func runTune(cmd *cobra.Command, args []string) error {
	base := config.GetPreset(args[0])
	if base == nil {
		return fmt.Errorf("unknown scenario: %s", args[0])
	}

	valueStrs := strings.Split(tuneValues, ",")
	values := make([]float64, 0, len(valueStrs))
	for _, s := range valueStrs {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", s, err)
		}
		values = append(values, v)
	}

	gs := tuning.NewGridSearch([]string{tuneParam}, [][]float64{values})

	best, bestDuration, err := gs.Search(context.Background(), func(params map[string]float64) *config.Config {
		cfg := *base
		if v, ok := params[tuneParam]; ok {
			cfg.MaxDeviation = v
		}
		return &cfg
	})
	if err != nil {
		return err
	}
	if best == nil {
		fmt.Println("no valid parameter combination found")
		return nil
	}

	fmt.Printf("best %s: %v\n", tuneParam, best[tuneParam])
	fmt.Printf("duration: %.4fs\n", bestDuration)
	return nil
}
