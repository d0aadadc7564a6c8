// Command datagen generates person records from the command line,
// without a running server. Records stream to stdout or a file as
// NDJSON or CSV; -bench measures raw generation throughput instead.
package main

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"github.com/hlynes/personagen/filter"
	"github.com/hlynes/personagen/locale"
	"github.com/hlynes/personagen/persona"
)

// chunkSize bounds how many records are held in memory at once.
const chunkSize = 1000

var csvHeader = []string{
	"position", "full_name", "address", "latitude", "longitude",
	"height_cm", "weight_kg", "eye_color", "phone", "email",
}

func main() {
	var (
		localeCode string
		seed       int64
		count      int
		start      int64
		output     string
		format     string
		filterExpr string
		quiet      bool
		bench      bool
	)

	flag.StringVar(&localeCode, "locale", "en_US", "Locale code")
	flag.Int64Var(&seed, "seed", 12345, "Generation seed")
	flag.IntVar(&count, "count", 1000, "Number of records to generate")
	flag.Int64Var(&start, "start", 0, "Global position of the first record")
	flag.StringVar(&output, "output", "-", "Output file (- for stdout)")
	flag.StringVar(&format, "format", "ndjson", "Output format: ndjson, csv")
	flag.StringVar(&filterExpr, "filter", "", "CEL expression records must match")
	flag.BoolVar(&quiet, "quiet", false, "Suppress the progress bar")
	flag.BoolVar(&bench, "bench", false, "Measure generation throughput and exit")
	flag.Parse()

	store, err := locale.NewMemoryStore(locale.Builtin()...)
	if err != nil {
		log.Fatalf("Failed to load locale data: %v", err)
	}
	defer store.Close()
	gen := persona.New(store)

	if bench {
		if err := runBench(gen, localeCode, seed); err != nil {
			log.Fatalf("Benchmark failed: %v", err)
		}
		return
	}

	if count < 1 {
		log.Fatal("Count must be at least 1")
	}
	if format != "ndjson" && format != "csv" {
		log.Fatalf("Unknown format: %s (use: ndjson, csv)", format)
	}

	var flt *filter.Filter
	if filterExpr != "" {
		flt, err = filter.Compile(filterExpr)
		if err != nil {
			log.Fatalf("Invalid filter expression: %v", err)
		}
	}

	out := os.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", output, err)
		}
		defer f.Close()
		out = f
	}

	cw := &countingWriter{w: out}
	w := bufio.NewWriterSize(cw, 1<<16)

	var enc *json.Encoder
	var csvw *csv.Writer
	switch format {
	case "ndjson":
		enc = json.NewEncoder(w)
	case "csv":
		csvw = csv.NewWriter(w)
		if err := csvw.Write(csvHeader); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
	}

	var bar *progressbar.ProgressBar
	if !quiet {
		bar = progressbar.NewOptions(count,
			progressbar.OptionSetDescription("generating"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("records"),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}

	began := time.Now()
	written := 0
	for done := 0; done < count; done += chunkSize {
		n := chunkSize
		if count-done < n {
			n = count - done
		}
		records, err := gen.Series(localeCode, seed, start+int64(done), n)
		if err != nil {
			log.Fatalf("Generation failed: %v", err)
		}
		records, err = flt.Apply(records)
		if err != nil {
			log.Fatalf("Filter evaluation failed: %v", err)
		}

		for i := range records {
			if format == "csv" {
				err = csvw.Write(csvRow(&records[i]))
			} else {
				err = enc.Encode(&records[i])
			}
			if err != nil {
				log.Fatalf("Failed to write output: %v", err)
			}
		}
		written += len(records)
		if bar != nil {
			bar.Add(n)
		}
	}

	if csvw != nil {
		csvw.Flush()
		if err := csvw.Error(); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("Failed to flush output: %v", err)
	}
	if bar != nil {
		bar.Finish()
	}

	elapsed := time.Since(began)
	rate := float64(count) / elapsed.Seconds()
	fmt.Fprintf(os.Stderr, "Generated %s records in %.2fs (%s records/s)\n",
		humanize.Comma(int64(count)), elapsed.Seconds(), humanize.Comma(int64(rate)))
	if flt != nil {
		fmt.Fprintf(os.Stderr, "%s records matched the filter\n", humanize.Comma(int64(written)))
	}
	target := output
	if target == "-" {
		target = "stdout"
	}
	fmt.Fprintf(os.Stderr, "Wrote %s to %s\n", humanize.Bytes(uint64(cw.n)), target)
}

// csvRow formats a record for CSV output. Coordinates keep the same
// six decimal places the HTTP API presents.
func csvRow(rec *persona.Record) []string {
	return []string{
		strconv.FormatInt(rec.Position, 10),
		rec.FullName,
		rec.Address,
		strconv.FormatFloat(rec.Latitude, 'f', 6, 64),
		strconv.FormatFloat(rec.Longitude, 'f', 6, 64),
		strconv.Itoa(rec.HeightCm),
		strconv.Itoa(rec.WeightKg),
		rec.EyeColor,
		rec.Phone,
		rec.Email,
	}
}

// runBench measures generation throughput across increasing record
// counts and prints a summary table.
func runBench(gen *persona.Generator, localeCode string, seed int64) error {
	tiers := []int{10_000, 50_000, 100_000, 500_000, 1_000_000}

	type result struct {
		count      int
		seconds    float64
		throughput float64
	}
	results := make([]result, 0, len(tiers))

	for _, count := range tiers {
		fmt.Printf("Generating %s users...\n", humanize.Comma(int64(count)))
		began := time.Now()
		for done := 0; done < count; done += chunkSize {
			n := chunkSize
			if count-done < n {
				n = count - done
			}
			if _, err := gen.Series(localeCode, seed, int64(done), n); err != nil {
				return err
			}
		}
		seconds := time.Since(began).Seconds()
		throughput := float64(count) / seconds
		results = append(results, result{count, seconds, throughput})
		fmt.Printf("  Time: %.2fs, Throughput: %.0f users/s\n", seconds, throughput)
	}

	fmt.Println()
	fmt.Println("Benchmark Results")
	fmt.Println("Batch Size | Time (s) | Throughput (users/s)")
	for _, r := range results {
		fmt.Printf("%10d | %8.2f | %20.0f\n", r.count, r.seconds, r.throughput)
	}
	return nil
}

// countingWriter tracks how many bytes pass through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
