// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mtxmult/tiled"
)

// Phase holds the wall-clock durations of one phase across repetitions.
type Phase struct {
	Runs []time.Duration `yaml:"runs"`
	Min  time.Duration   `yaml:"min"`
	Mean time.Duration   `yaml:"mean"`
}

func newPhase(runs []time.Duration) Phase {
	if len(runs) == 0 {
		return Phase{}
	}

	return Phase{
		Runs: runs,
		Min:  lo.Min(runs),
		Mean: lo.Sum(runs) / time.Duration(len(runs)),
	}
}

// Report is the machine-readable outcome of Run.
type Report struct {
	Config   Config      `yaml:"config"`
	Host     Host        `yaml:"host"`
	Single   Phase       `yaml:"single"`
	Tiled    Phase       `yaml:"tiled"`
	Stats    tiled.Stats `yaml:"stats"`
	Speedup  float64     `yaml:"speedup"`
	Verified bool        `yaml:"verified"`
}

// speedup is the ratio of the best single-threaded time to the best tiled
// time, or 0 when the tiled phase was too fast to measure.
func speedup(single, tiled Phase) float64 {
	if tiled.Min <= 0 {
		return 0
	}

	return float64(single.Min) / float64(tiled.Min)
}

// WriteYAML encodes the report as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("bench: encode report: %w", err)
	}

	return enc.Close()
}

// WriteSummary prints the closing speedup line in human-readable form,
// e.g. "Speedup: 3.42x (4,096 tasks in 256 groups, 8 workers)".
func (r *Report) WriteSummary(w io.Writer) error {
	p := message.NewPrinter(language.English)
	var err error
	if r.Speedup == 0 {
		_, err = p.Fprintf(w, "Speedup: n/a (%d tasks in %d groups, %d workers)\n",
			r.Stats.Tasks, r.Stats.Groups, r.Stats.Workers)
	} else {
		_, err = p.Fprintf(w, "Speedup: %.2fx (%d tasks in %d groups, %d workers)\n",
			r.Speedup, r.Stats.Tasks, r.Stats.Groups, r.Stats.Workers)
	}

	return err
}
