package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/erichobson/deep-frying-simulation/internal/analysis"
	"github.com/erichobson/deep-frying-simulation/internal/config"
	"github.com/erichobson/deep-frying-simulation/internal/frying"
	"github.com/erichobson/deep-frying-simulation/internal/gui"
	"github.com/erichobson/deep-frying-simulation/internal/storage"
	"github.com/erichobson/deep-frying-simulation/internal/telemetry"
	"github.com/erichobson/deep-frying-simulation/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	dt         float64
	duration   float64
	oilTemp    float64
	seed       int64

	sweepFrom float64
	sweepTo   float64
	sweepStep float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "frysim",
		Short: "deep fryer physics sandbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg, newSimulation(cfg))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".frysim", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	rootCmd.PersistentFlags().Float64Var(&duration, "time", config.DefaultDuration, "duration (headless run)")
	rootCmd.PersistentFlags().Float64Var(&oilTemp, "temp", config.DefaultOilTemp, "oil temperature")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless frying session and record it",
		RunE:  runHeadless,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "bubble spectrum and drying rate analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run series to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and series to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep oil temperatures and compare outcomes",
		RunE:  sweepTemperatures,
	}
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", frying.MinOilTemp, "first oil temperature")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", frying.MaxOilTemp, "last oil temperature")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 5, "temperature step")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tOIL\tTARGET\tDURATION")
			for _, name := range names {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.0f°C\t%.0f°C\t%.0fs\n", name, p.Oil.Temperature, p.Oil.Target, p.Duration)
			}
			return w.Flush()
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the graphical fryer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg, newSimulation(cfg))
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, analyzeCmd, exportCSVCmd, exportJSONCmd, sweepCmd, presetsCmd, guiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: preset, then config
// file, then explicit flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("temp") {
		cfg.Oil.Temperature = oilTemp
		cfg.Oil.Target = oilTemp
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	return cfg, nil
}

func newSimulation(cfg *config.Config) *frying.Simulation {
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	sim := frying.NewSimulation(cfg.Scene().Layout(), cfg.Oil.Temperature, rng)
	sim.Oil.SetTarget(cfg.Oil.Target)
	return sim
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sim := newSimulation(cfg)
	sim.SpawnFry(
		mgl64.Vec2{cfg.DropX(), cfg.DropY()},
		mgl64.Vec2{cfg.Fry.Width, cfg.Fry.Height},
	)

	rec := telemetry.NewRecorder(
		telemetry.NewTimeToDone(0.95),
		telemetry.NewPeakBubbles(),
		telemetry.NewFinalMoisture(),
		telemetry.NewMeanTempGap(),
	)

	presetName := preset
	if presetName == "" {
		presetName = "custom"
	}

	fmt.Printf("frying for %.0fs at %.0f°C...\n", cfg.Duration, cfg.Oil.Target)
	start := time.Now()

	steps := int(cfg.Duration / cfg.Dt)
	for i := 0; i < steps; i++ {
		sim.Step(cfg.Dt)
		rec.Observe(sim)
	}

	elapsed := time.Since(start)

	runID, err := st.Save(presetName, cfg.Dt, cfg.Duration, cfg.Seed, cfg.Oil.Target, rec.Values(), rec.Samples())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", steps)
	fmt.Println("\nmetrics:")
	names := make([]string, 0)
	values := rec.Values()
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, values[name])
	}

	return nil
}

func sweepTemperatures(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if sweepStep <= 0 {
		return fmt.Errorf("step must be positive")
	}

	var temperatures []float64
	for t := sweepFrom; t <= sweepTo+1e-9; t += sweepStep {
		temperatures = append(temperatures, t)
	}

	sweep := &telemetry.Sweep{
		Layout:       cfg.Scene().Layout(),
		Dt:           cfg.Dt,
		Duration:     cfg.Duration,
		DropPosition: mgl64.Vec2{cfg.DropX(), cfg.DropY()},
		FrySize:      mgl64.Vec2{cfg.Fry.Width, cfg.Fry.Height},
		SeedStart:    cfg.Seed,
		Metrics: func() []telemetry.Metric {
			return []telemetry.Metric{
				telemetry.NewTimeToDone(0.95),
				telemetry.NewPeakBubbles(),
				telemetry.NewFinalMoisture(),
				telemetry.NewMeanTempGap(),
			}
		},
	}

	fmt.Printf("sweeping %d temperatures over %.0fs each...\n\n", len(temperatures), cfg.Duration)
	points, err := sweep.Run(cmd.Context(), temperatures)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OIL\tTIME_TO_DONE\tPEAK_BUBBLES\tFINAL_H2O\tMEAN_GAP")
	for _, p := range points {
		fmt.Fprintf(w, "%.0f°C\t%.1fs\t%.0f\t%.3f\t%.1f°C\n",
			p.OilTemperature,
			p.Values["time_to_done"],
			p.Values["peak_bubbles"],
			p.Values["final_moisture"],
			p.Values["mean_temp_gap"],
		)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tDURATION\tDT\tOIL")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1fs\t%.4fs\t%.0f°C\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.OilTarget,
		)
	}

	return w.Flush()
}

var plotColumns = []struct {
	column  string
	caption string
}{
	{"oil_temp", "oil temperature (°C)"},
	{"fry_temp", "fry core temperature (°C)"},
	{"moisture", "moisture fraction"},
	{"cookedness", "cookedness"},
	{"crust", "crust formation"},
	{"bubbles", "live bubble count"},
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	columns, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(columns["time"]) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	fmt.Printf("samples: %d\n\n", len(columns["time"]))

	for _, pc := range plotColumns {
		data := columns[pc.column]
		if len(data) == 0 {
			continue
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(pc.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	columns, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	counts := columns["bubbles"]
	if len(counts) == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("analysis: %s\n", meta.ID)
	fmt.Printf("preset: %s\n\n", meta.Preset)

	summary := analysis.Summarize(counts)
	fmt.Printf("bubbles: mean %.2f  stddev %.2f  peak %.0f\n",
		summary.Mean, summary.StdDev, summary.Max)

	rate := analysis.MoistureDecayRate(columns["time"], columns["moisture"])
	fmt.Printf("drying rate: %.6f /s\n\n", rate)

	mags := analysis.BubbleSpectrum(counts)
	plotData := mags[:len(mags)/4]

	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("bubble activity spectrum"),
	)
	fmt.Println(graph)
	fmt.Println()

	freq := analysis.DominantFrequency(mags, meta.Dt)
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	file, err := os.Open(fmt.Sprintf("%s/%s/series.csv", dataDir, runID))
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(os.Stdout, file)
	return err
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	columns, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	out := struct {
		Metadata *storage.RunMetadata `json:"metadata"`
		Series   map[string][]float64 `json:"series"`
	}{meta, columns}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
