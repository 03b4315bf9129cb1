// SPDX-License-Identifier: EPL-2.0

// Command crossmix analyzes audio tracks from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/stemstation/crossmix"
	"github.com/stemstation/crossmix/analysis"
	"github.com/stemstation/crossmix/audio"
	"github.com/stemstation/crossmix/formats/wav"
	"github.com/stemstation/crossmix/store"
)

var version = "0.1.0"

// CLI defines the command-line interface
type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version information"`

	Analyze AnalyzeCmd `cmd:"" help:"Analyze audio files and print track characteristics"`
	List    ListCmd    `cmd:"" help:"List analyses stored in a database"`
}

// AnalyzeCmd decodes one or more tracks and prints their analysis.
type AnalyzeCmd struct {
	DB     string   `help:"SQLite database to persist analyses to" type:"path"`
	Depth  float64  `default:"10" help:"Seconds of audio to inspect at each end for intro/outro detection"`
	Export string   `help:"Write the first file as mono 16-bit WAV to this path" type:"path"`
	Rate   int      `default:"44100" help:"Sample rate for --export output"`
	Files  []string `arg:"" name:"files" help:"Audio files to analyze" type:"existingfile"`
}

func (c *AnalyzeCmd) Run() error {
	registry := crossmix.DefaultRegistry()

	var st *store.Store
	if c.DB != "" {
		var err error
		st, err = store.Open(c.DB)
		if err != nil {
			return err
		}
		defer st.Close()
	}

	for i, path := range c.Files {
		src, err := crossmix.OpenFile(registry, path)
		if err != nil {
			return err
		}

		if i == 0 && c.Export != "" {
			if err := exportMono(src, c.Export, c.Rate); err != nil {
				src.Close()
				return err
			}
			// The source is consumed by the export; reopen for analysis.
			src.Close()
			src, err = crossmix.OpenFile(registry, path)
			if err != nil {
				return err
			}
		}

		opts := analysis.DefaultOptions()
		if c.Depth > 0 {
			opts.DepthSeconds = c.Depth
		}

		ta, err := crossmix.AnalyzeSource(src, opts)
		src.Close()
		if err != nil {
			return fmt.Errorf("analyzing %s: %w", path, err)
		}

		printAnalysis(path, ta)

		if st != nil {
			if err := st.Save(path, ta); err != nil {
				return err
			}
		}
	}

	return nil
}

func printAnalysis(path string, ta analysis.TrackAnalysis) {
	fmt.Printf("%s\n", path)
	fmt.Printf("  tempo:    %.1f BPM\n", ta.Tempo)
	fmt.Printf("  key:      %s\n", ta.Key)
	fmt.Printf("  energy:   %.3f\n", ta.Energy)
	fmt.Printf("  peak:     %.3f\n", ta.PeakLevel)
	fmt.Printf("  centroid: %.0f Hz\n", ta.SpectralCentroid)
	if ta.HasIntro {
		fmt.Printf("  intro:    ends at %.2fs\n", ta.IntroEnd)
	}
	if ta.HasOutro {
		fmt.Printf("  outro:    starts at %.2fs\n", ta.OutroStart)
	}
	fmt.Printf("  silence:  %.2fs - %.2fs\n", ta.SilenceStart, ta.SilenceEnd)
}

// exportMono writes src as a mono 16-bit PCM WAV file at rate.
func exportMono(src audio.Source, path string, rate int) error {
	pcm, outRate, err := audio.ResampleToMono16(src, rate, src.BufSize())
	if err != nil {
		return fmt.Errorf("resampling for export: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := wav.WriteWAV16(f, outRate, pcm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// ListCmd prints the analyses stored in a database.
type ListCmd struct {
	DB string `arg:"" help:"SQLite database created by analyze --db" type:"existingfile"`
}

func (c *ListCmd) Run() error {
	st, err := store.Open(c.DB)
	if err != nil {
		return err
	}
	defer st.Close()

	ids, err := st.TrackIDs()
	if err != nil {
		return err
	}

	for _, id := range ids {
		ta, err := st.Load(id)
		if err != nil {
			return err
		}
		fmt.Printf("%-40s %6.1f BPM  %-9s energy %.3f\n", id, ta.Tempo, ta.Key, ta.Energy)
	}

	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("crossmix"),
		kong.Description("Track analysis and crossfade mixing toolkit"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "crossmix: %v\n", err)
		os.Exit(1)
	}
}
