// Command wfcgen is a presentation shell over internal/builder: it loads
// a sample artifact (image or text), runs builder.Build, and reports the
// solve history, try count, and elapsed time. It performs no rendering
// or windowing of its own — it is a thin CLI collaborator, out of scope
// per spec.md §1's "every other part of the repository ... is a thin
// presentation shell".
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/tilefield/wfcgen/internal/builder"
	"github.com/tilefield/wfcgen/internal/catalog"
	"github.com/tilefield/wfcgen/internal/config"
	"github.com/tilefield/wfcgen/internal/logger"
)

func main() {
	configFile := flag.String("config", "", "path to a build config YAML file (defaults used if absent)")
	loggingConfig := flag.String("logging", "", "path to a logging config YAML file")
	sampleFile := flag.String("sample", "", "path to a sample image (image mode) or text map (text mode)")
	textMode := flag.Bool("text", false, "treat -sample as a CR+LF textual schematic instead of an image")
	seed := flag.Int64("seed", 0, "RNG seed (default: derived from the current time)")
	maxAttempts := flag.Int("max-attempts", 0, "bound the build retry loop; 0 means unbounded")
	showFinal := flag.Bool("print", true, "print the final grid as a row-major variant-index table")
	flag.Parse()

	logCfg, err := logger.LoadConfig(*loggingConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wfcgen: failed to load logging config: %v\n", err)
	}
	if err := logger.Initialize(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "wfcgen: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	cfg := config.DefaultConfig()
	if *configFile != "" {
		loaded, err := config.LoadConfig(*configFile)
		if err != nil {
			logger.Errorf("failed to load build config %s: %v", *configFile, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *maxAttempts > 0 {
		cfg.MaxAttempts = *maxAttempts
	}

	if *sampleFile == "" {
		fmt.Fprintln(os.Stderr, "wfcgen: -sample is required")
		flag.Usage()
		os.Exit(2)
	}

	source, err := loadSource(*sampleFile, *textMode)
	if err != nil {
		logger.Errorf("failed to load sample %s: %v", *sampleFile, err)
		os.Exit(1)
	}

	seedValue := *seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seedValue))

	result, err := builder.Build(context.Background(), cfg, source, rng)
	if err != nil {
		logger.Errorf("build failed: %v", err)
		os.Exit(1)
	}

	fmt.Printf("solved after %d attempt(s) in %s (%d snapshots)\n", result.Tries, result.Elapsed, result.Ledger.Len())

	if *showFinal {
		final := result.Ledger.At(result.Ledger.Len() - 1)
		fmt.Print(renderGrid(final.Size, final.Values))
	}
}

// loadSource reads sampleFile from disk and wraps it as a builder.Source,
// dispatching on textMode.
func loadSource(path string, textMode bool) (builder.Source, error) {
	if textMode {
		data, err := os.ReadFile(path)
		if err != nil {
			return builder.Source{}, err
		}
		return builder.Source{Text: string(data)}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return builder.Source{}, err
	}
	defer f.Close()

	img, err := catalog.DecodeSample(f)
	if err != nil {
		return builder.Source{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return builder.Source{Image: img}, nil
}

// renderGrid formats a size x size row-major variant-index snapshot as a
// plain text table, -1 rendered as a dot for uncollapsed/pruned cells.
func renderGrid(size int, values []int) string {
	var sb strings.Builder
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := values[y*size+x]
			if v < 0 {
				sb.WriteString("  . ")
				continue
			}
			fmt.Fprintf(&sb, "%3d ", v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
