package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"impedance/internal/consts"
	"impedance/pkg/analysis"
	"impedance/pkg/chart"
	"impedance/pkg/component"
	"impedance/pkg/netlist"
	"impedance/pkg/util"
)

var (
	fStart = flag.Float64("start", consts.DefaultFStart, "sweep start frequency in Hz")
	fStop  = flag.Float64("stop", consts.DefaultFStop, "sweep stop frequency in Hz")
	points = flag.Int("n", consts.DefaultPoints, "number of sweep points")
	outDir = flag.String("o", ".", "output directory for chart files")
	quiet  = flag.Bool("q", false, "skip the result table, write charts only")
)

func main() {
	flag.Parse()
	if flag.NArg() > 1 {
		log.Fatal("Usage: impedance [netlist_file]")
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Error creating output directory: %v", err)
	}

	sweep := analysis.NewSweep(*fStart, *fStop, *points, analysis.ScaleDecade)

	var err error
	if flag.NArg() == 1 {
		err = runNetlist(flag.Arg(0), sweep)
	} else {
		err = runDemo(sweep)
	}
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// runDemo sweeps a fixed set of components and RC filters and writes
// one chart per item.
func runDemo(sweep *analysis.Sweep) error {
	r, err := component.NewResistor("R1", 10e3)
	if err != nil {
		return err
	}
	c, err := component.NewCapacitor("C1", 1e-6)
	if err != nil {
		return err
	}
	l, err := component.NewInductor("L1", 10e-3)
	if err != nil {
		return err
	}

	singles := []struct {
		comp component.Component
		file string
	}{
		{r, "resistor.png"},
		{c, "capacitor.png"},
		{l, "inductor.png"},
	}
	for _, s := range singles {
		imp := analysis.NewImpedanceSweep(s.comp)
		if err := runAnalysis(imp, sweep); err != nil {
			return err
		}
		if err := saveChart(imp.GetResults(), s.file, s.comp.Label(), "Impedance [Ω]", true); err != nil {
			return err
		}
	}

	// RC filters, measured at the junction terminal
	filters := []struct {
		ckt  *component.Series
		file string
	}{
		{component.NewSeries("lowpass", r, c), "lowpass.png"},
		{component.NewSeries("highpass", c, r), "highpass.png"},
	}
	for _, f := range filters {
		resp := analysis.NewResponseSweep(&component.Probe{Circuit: f.ckt, Terminal: 2})
		if err := runAnalysis(resp, sweep); err != nil {
			return err
		}
		if !*quiet {
			printResults(f.ckt.GetName(), resp.GetResults())
		}
		if err := saveChart(resp.GetResults(), f.file, f.ckt.GetName(), "Response", false); err != nil {
			return err
		}
	}

	// Non-inverting vs inverting divider branches on one chart
	cmpSweep := analysis.NewResponseSweep(
		component.NewDivider("plus", r, c),
		component.NewDivider("minus", r, r),
	)
	if err := runAnalysis(cmpSweep, sweep); err != nil {
		return err
	}
	results := cmpSweep.GetResults()
	mag, phase := splitColumns(results)
	path := filepath.Join(*outDir, "compare.png")
	fmt.Printf("Writing %s\n", path)
	return chart.Overlay(path, "Divider branches", "Response", results["FREQ"], mag, phase)
}

// runNetlist sweeps the circuit described in a netlist file. A .ac
// card in the file overrides the command line sweep.
func runNetlist(path string, sweep *analysis.Sweep) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading netlist file: %v", err)
	}

	data, err := netlist.Parse(string(content))
	if err != nil {
		return fmt.Errorf("parsing netlist: %v", err)
	}
	if data.Title != "" {
		fmt.Println(data.Title)
	}

	comp, terminal, err := netlist.Build(data)
	if err != nil {
		return err
	}

	if data.ACParam.Points > 0 {
		sweep = analysis.NewSweep(data.ACParam.FStart, data.ACParam.FStop,
			data.ACParam.Points, data.ACParam.Sweep)
	}

	var an analysis.Analysis
	magLabel := "Impedance [Ω]"
	logMag := true
	if terminal > 0 {
		ckt, ok := comp.(*component.Series)
		if !ok {
			return fmt.Errorf(".probe: terminal %d needs a series combination, %s is %s",
				terminal, comp.GetName(), comp.GetType())
		}
		an = analysis.NewResponseSweep(&component.Probe{Circuit: ckt, Terminal: terminal})
		magLabel = "Response"
		logMag = false
	} else {
		an = analysis.NewImpedanceSweep(comp)
	}

	if err := an.Setup(sweep); err != nil {
		return err
	}
	if err := an.Execute(); err != nil {
		return err
	}

	if !*quiet {
		printResults(comp.GetName(), an.GetResults())
	}
	return saveChart(an.GetResults(), comp.GetName()+".png", comp.Label(), magLabel, logMag)
}

func runAnalysis(an analysis.Analysis, sweep *analysis.Sweep) error {
	if err := an.Setup(sweep); err != nil {
		return err
	}
	return an.Execute()
}

// saveChart writes the single swept variable as a Bode chart under
// the output directory.
func saveChart(results map[string][]float64, file, title, magLabel string, logMag bool) error {
	mag, phase := splitColumns(results)
	if len(mag) != 1 {
		return fmt.Errorf("chart %s: want exactly 1 variable, got %d", file, len(mag))
	}

	var name string
	for n := range mag {
		name = n
	}

	path := filepath.Join(*outDir, file)
	fmt.Printf("Writing %s\n", path)
	return chart.Bode(path, title, magLabel, results["FREQ"], mag[name], phase[name], logMag)
}

// splitColumns separates the result map into per-variable magnitude
// and phase columns.
func splitColumns(results map[string][]float64) (mag, phase map[string][]float64) {
	mag = make(map[string][]float64)
	phase = make(map[string][]float64)
	for name, values := range results {
		switch {
		case strings.HasSuffix(name, "_MAG"):
			mag[strings.TrimSuffix(name, "_MAG")] = values
		case strings.HasSuffix(name, "_PHASE"):
			phase[strings.TrimSuffix(name, "_PHASE")] = values
		}
	}
	return mag, phase
}

func printResults(title string, results map[string][]float64) {
	freqs := results["FREQ"]

	var names []string
	for name := range results {
		if strings.HasSuffix(name, "_MAG") {
			names = append(names, strings.TrimSuffix(name, "_MAG"))
		}
	}
	sort.Strings(names)

	fmt.Printf("\n%s (%d frequency points):\n", title, len(freqs))
	fmt.Println("Frequency      Magnitude/Phase")
	fmt.Println("-----------------------------------------------")
	for i, freq := range freqs {
		fmt.Printf("%-13s", util.FormatFrequency(freq))
		for _, name := range names {
			fmt.Printf("%s  ", util.FormatMagnitudePhase(name,
				results[name+"_MAG"][i], results[name+"_PHASE"][i]))
		}
		fmt.Println()
	}
	fmt.Println()
}
