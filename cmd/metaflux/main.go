package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ecodyn/metaflux/internal/analysis"
	"github.com/ecodyn/metaflux/internal/config"
	"github.com/ecodyn/metaflux/internal/experiment"
	"github.com/ecodyn/metaflux/internal/storage"
	"github.com/ecodyn/metaflux/internal/tui"
	"github.com/ecodyn/metaflux/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	noChart    bool
	noSave     bool
	// warming sweep bounds
	tMin   float64
	tMax   float64
	tSteps int
	// live view
	liveDt float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "metaflux",
		Short: "metabolic food-web simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".metaflux", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and chart the trajectories",
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "YAML run configuration")
	runCmd.Flags().StringVar(&preset, "preset", "single-species", "named preset")
	runCmd.Flags().BoolVar(&noChart, "no-chart", false, "skip terminal charts")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip persisting the run")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run-id]",
		Short: "export a stored run as JSON to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	warmingCmd := &cobra.Command{
		Use:   "warming",
		Short: "run a temperature gradient and chart final biomasses",
		RunE:  runWarming,
	}
	warmingCmd.Flags().StringVar(&configFile, "config", "", "YAML run configuration")
	warmingCmd.Flags().StringVar(&preset, "preset", "warming", "named preset")
	warmingCmd.Flags().Float64Var(&tMin, "tmin", 283, "gradient start temperature (K)")
	warmingCmd.Flags().Float64Var(&tMax, "tmax", 303, "gradient stop temperature (K)")
	warmingCmd.Flags().IntVar(&tSteps, "steps", 11, "number of gradient temperatures")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the web evolve in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "YAML run configuration")
	liveCmd.Flags().StringVar(&preset, "preset", "chain", "named preset")
	liveCmd.Flags().Float64Var(&liveDt, "dt", 0.05, "integration step per frame")

	rootCmd.AddCommand(runCmd, presetsCmd, listCmd, exportCmd, warmingCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, string, error) {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		return cfg, "custom", err
	}
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return nil, "", fmt.Errorf("unknown preset %q", preset)
	}
	return cfg, preset, nil
}

func compartmentNames(cfg *config.Config) []string {
	names := make([]string, len(cfg.Compartments))
	counts := map[string]int{}
	for i, cc := range cfg.Compartments {
		counts[cc.Kind]++
		names[i] = fmt.Sprintf("%s %d", cc.Kind, counts[cc.Kind])
	}
	return names
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, name, err := loadConfig()
	if err != nil {
		return err
	}

	exp, err := experiment.New(cfg)
	if err != nil {
		return err
	}
	traj, err := exp.Run()
	if err != nil {
		return err
	}

	if !noChart {
		fmt.Print(viz.Chart(traj, compartmentNames(cfg)))
	}

	stats := analysis.SummarizeAll(traj)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "compartment\tmean\tstd\tmin\tmax\tfinal")
	for i, s := range stats {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			compartmentNames(cfg)[i], s.Mean, s.Std, s.Min, s.Max, s.Final)
	}
	w.Flush()

	mb := analysis.NewMassBalance(exp.Context())
	fmt.Printf("\nmass-balance residual (worst): %.3e\n", mb.CheckTrajectory(traj))

	if !noSave {
		store := storage.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.Save(name, cfg.Temperature, cfg.Start, cfg.Stop, cfg.Step, traj)
		if err != nil {
			return err
		}
		fmt.Printf("saved run %s\n", runID)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	ids, err := store.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tpreset\ttemperature\tsamples")
	for _, id := range ids {
		meta, err := store.LoadMetadata(id)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%d\n", meta.ID, meta.Preset, meta.Temperature, meta.Samples)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.LoadMetadata(args[0])
	if err != nil {
		return err
	}
	traj, err := store.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta.Preset, meta.Temperature, traj)
}

func runWarming(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	exp, err := experiment.New(cfg)
	if err != nil {
		return err
	}
	points, err := exp.Warming(tMin, tMax, tSteps)
	if err != nil {
		return err
	}

	names := compartmentNames(cfg)
	for i := range cfg.Compartments {
		finals := make([]float64, len(points))
		for k, p := range points {
			finals[k] = p.Trajectory.Final()[i]
		}
		caption := fmt.Sprintf("%s final vs temperature [%.0fK..%.0fK]", names[i], tMin, tMax)
		fmt.Println(viz.GradientChart(finals, caption))
		fmt.Println()
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	webCtx, err := cfg.BuildContext()
	if err != nil {
		return err
	}
	return tui.Run(webCtx, cfg.InitState(), liveDt, compartmentNames(cfg))
}
