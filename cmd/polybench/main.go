// Command polybench times the multiplication strategies (schoolbook,
// Karatsuba, FFT convolution) over an NTT-friendly prime field across a
// sweep of operand degrees, and writes a JSON report plus an HTML line
// chart of the medians.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/montanaflynn/stats"

	"github.com/ishandutta2007/altruct/fft"
	"github.com/ishandutta2007/altruct/poly"
	"github.com/ishandutta2007/altruct/ring"
	"github.com/ishandutta2007/altruct/sampling"
)

type point struct {
	Degree   int     `json:"degree"`
	MeanMs   float64 `json:"mean_ms"`
	MedianMs float64 `json:"median_ms"`
	StdMs    float64 `json:"std_ms"`
}

type engine struct {
	name string
	ring *poly.Ring[uint64]
}

func parseDegrees(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		if d < 1 {
			return nil, fmt.Errorf("degree %d out of range", d)
		}
		out = append(out, d)
	}
	return out, nil
}

func buildEngines(field *ring.PrimeField) []engine {
	schoolbook := poly.NewStandardMultiplier[uint64](field)
	schoolbook.Threshold = math.MaxInt

	return []engine{
		{"schoolbook", poly.NewRing[uint64](field, poly.WithMultiplier[uint64](schoolbook))},
		{"karatsuba", poly.NewRing[uint64](field)},
		{"fft", poly.NewRing[uint64](field, poly.WithMultiplier[uint64](fft.NewMultiplier[uint64](field)))},
	}
}

func timeMul(r *poly.Ring[uint64], p1, p2 *poly.Poly[uint64], runs int) ([]float64, *poly.Poly[uint64]) {
	durs := make([]float64, runs)
	var prod *poly.Poly[uint64]
	for i := range durs {
		start := time.Now()
		prod = r.Mul(p1, p2)
		durs[i] = float64(time.Since(start).Nanoseconds()) / 1e6
	}
	return durs, prod
}

func summarize(degree int, durs []float64) point {
	mean, _ := stats.Mean(durs)
	median, _ := stats.Median(durs)
	stddev, _ := stats.StandardDeviation(durs)
	return point{Degree: degree, MeanMs: mean, MedianMs: median, StdMs: stddev}
}

func toLineItems(points []point) []opts.LineData {
	out := make([]opts.LineData, len(points))
	for i, p := range points {
		out[i] = opts.LineData{Value: p.MedianMs}
	}
	return out
}

func renderChart(path string, q uint64, runs int, degrees []int, results map[string][]point, order []string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "dense polynomial multiplication",
			Subtitle: fmt.Sprintf("q=%d, %d runs per point, median ms", q, runs),
		}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "polybench", Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ms"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "degree"}),
	)

	xLabels := make([]string, len(degrees))
	for i, d := range degrees {
		xLabels[i] = strconv.Itoa(d)
	}
	line.SetXAxis(xLabels)
	for _, name := range order {
		line.AddSeries(name, toLineItems(results[name]))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return line.Render(f)
}

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func main() {
	logQ := flag.Int("logq", 40, "bit size of the NTT-friendly prime modulus")
	rootOrder := flag.Int("order", 1<<16, "power-of-two root order; bounds the largest product the fft engine accepts")
	degreeList := flag.String("degrees", "64,128,256,512,1024,2048,4096", "comma-separated operand degrees to sweep")
	runs := flag.Int("runs", 7, "timed runs per degree and engine")
	outDir := flag.String("out", "bench-reports", "output directory for the reports")
	label := flag.String("label", "polybench", "label deriving the deterministic input stream")
	flag.Parse()

	degrees, err := parseDegrees(*degreeList)
	if err != nil {
		log.Fatalf("degrees: %v", err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}

	q, err := ring.NTTFriendlyPrime(*logQ, *rootOrder)
	if err != nil {
		log.Fatalf("prime search: %v", err)
	}
	field, err := ring.NewPrimeField(q)
	if err != nil {
		log.Fatalf("field: %v", err)
	}

	prng, err := sampling.NewLabeledPRNG(*label)
	if err != nil {
		log.Fatalf("prng: %v", err)
	}
	smp := sampling.NewUniformSampler(prng, field)

	engines := buildEngines(field)
	order := make([]string, len(engines))
	for i, e := range engines {
		order[i] = e.name
	}

	results := make(map[string][]point, len(engines))
	for _, d := range degrees {
		p1 := smp.ReadPoly(d + 1)
		p2 := smp.ReadPoly(d + 1)

		var want *poly.Poly[uint64]
		for _, e := range engines {
			log.Printf("[polybench] degree %d, engine %s", d, e.name)
			durs, prod := timeMul(e.ring, p1, p2, *runs)
			if want == nil {
				want = prod
			} else if !want.Equal(prod) {
				log.Fatalf("engine %s disagrees at degree %d", e.name, d)
			}
			results[e.name] = append(results[e.name], summarize(d, durs))
		}
	}

	ts := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(*outDir, fmt.Sprintf("mul_sweep_%s.json", ts))
	if err := saveJSON(jsonPath, results); err != nil {
		log.Printf("warn: save stats: %v", err)
	}

	htmlPath := filepath.Join(*outDir, fmt.Sprintf("mul_sweep_%s.html", ts))
	if err := renderChart(htmlPath, q, *runs, degrees, results, order); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Sweep chart:", htmlPath)
	fmt.Println("Stats JSON:", jsonPath)
}
