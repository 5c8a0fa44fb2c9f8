// Command pythiabench benchmarks the core Pythia PRF operations and
// optionally renders a latency chart.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/virgilsecurity/pythia-go/pkg/pythia"
)

// operationResult holds the per-iteration latency samples for one
// benchmarked operation, in the order they were measured.
type operationResult struct {
	Name        string
	SamplesNs   []float64
	TotalNs     float64
	MeanNs      float64
}

func main() {
	iterations := flag.Int("iterations", 100, "Number of iterations for each benchmark")
	chartPath := flag.String("chart", "", "Write a PNG latency chart to this path (empty to skip)")
	flag.Parse()

	if *iterations < 1 {
		fmt.Fprintln(os.Stderr, "Error: iterations must be at least 1")
		os.Exit(1)
	}

	if err := pythia.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize pythia core: %v\n", err)
		os.Exit(1)
	}
	defer pythia.Deinit()

	fmt.Println("Running Pythia PRF benchmarks...")
	results, err := runAll(*iterations)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running benchmarks: %v\n", err)
		os.Exit(1)
	}

	for _, r := range results {
		fmt.Printf("%-10s mean=%10.0fns total=%12.0fns (n=%d)\n", r.Name, r.MeanNs, r.TotalNs, len(r.SamplesNs))
	}

	if *chartPath != "" {
		if err := renderChart(*chartPath, results); err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Latency chart written to %s\n", *chartPath)
	}

	fmt.Println("Benchmarks completed successfully!")
}

func runAll(iterations int) ([]operationResult, error) {
	msk := []byte("bench-master-key")
	s := []byte("bench-salt")
	w := []byte("bench-user")
	tweak := []byte("bench-tweak")
	message := []byte("bench-message")

	results := make([]operationResult, 0, 4)

	blindSamples := make([]float64, iterations)
	for i := 0; i < iterations; i++ {
		start := time.Now()
		if _, _, err := pythia.Blind(message); err != nil {
			return nil, fmt.Errorf("blind: %w", err)
		}
		blindSamples[i] = float64(time.Since(start).Nanoseconds())
	}
	results = append(results, summarize("blind", blindSamples))

	x, _, err := pythia.Blind(message)
	if err != nil {
		return nil, fmt.Errorf("blind: %w", err)
	}

	evalSamples := make([]float64, iterations)
	var lastEval pythia.EvalResult
	for i := 0; i < iterations; i++ {
		start := time.Now()
		res, err := pythia.Eval(w, tweak, x, msk, s)
		if err != nil {
			return nil, fmt.Errorf("eval: %w", err)
		}
		evalSamples[i] = float64(time.Since(start).Nanoseconds())
		lastEval = res
	}
	results = append(results, summarize("eval", evalSamples))

	proveSamples := make([]float64, iterations)
	var lastProof pythia.Proof
	for i := 0; i < iterations; i++ {
		start := time.Now()
		proof, err := pythia.Prove(x, lastEval.TTilde, lastEval.Kw, lastEval.Y)
		if err != nil {
			return nil, fmt.Errorf("prove: %w", err)
		}
		proveSamples[i] = float64(time.Since(start).Nanoseconds())
		lastProof = proof
	}
	results = append(results, summarize("prove", proveSamples))

	verifySamples := make([]float64, iterations)
	for i := 0; i < iterations; i++ {
		start := time.Now()
		if _, err := pythia.Verify(x, tweak, lastEval.Y, lastProof); err != nil {
			return nil, fmt.Errorf("verify: %w", err)
		}
		verifySamples[i] = float64(time.Since(start).Nanoseconds())
	}
	results = append(results, summarize("verify", verifySamples))

	return results, nil
}

func summarize(name string, samples []float64) operationResult {
	var total float64
	for _, v := range samples {
		total += v
	}
	return operationResult{
		Name:      name,
		SamplesNs: samples,
		TotalNs:   total,
		MeanNs:    total / float64(len(samples)),
	}
}

// renderChart writes one continuous series per operation, x-axis the
// iteration index and y-axis latency in nanoseconds, matching the style
// of a standard go-chart/v2 line chart.
func renderChart(path string, results []operationResult) error {
	series := make([]chart.Series, 0, len(results))
	for _, r := range results {
		xValues := make([]float64, len(r.SamplesNs))
		for i := range xValues {
			xValues[i] = float64(i)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    r.Name,
			XValues: xValues,
			YValues: r.SamplesNs,
		})
	}

	graph := chart.Chart{
		Title: "Pythia PRF operation latency",
		XAxis: chart.XAxis{
			Name: "iteration",
		},
		YAxis: chart.YAxis{
			Name: "nanoseconds",
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
