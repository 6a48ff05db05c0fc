// Command afalign aligns narration audio against its synthesized text
// and writes a SMIL or JSON sync map.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/syncalign"
	"github.com/katalvlaran/syncalign/config"
	"github.com/katalvlaran/syncalign/output"
	"github.com/spf13/pflag"
)

func main() {
	var (
		configFile      = pflag.StringP("config-file", "c", "", "YAML config file (defaults apply when omitted).")
		skipPenalty     = pflag.Float64P("skip-penalty", "s", -1, "Skip-transition penalty (overrides config).")
		radius          = pflag.IntP("radius", "r", -1, "FastDTW-BD search radius (overrides config).")
		timesAsDuration = pflag.Bool("times-as-duration", false, "Render begin/end as Go durations instead of clock strings.")
		format          = pflag.StringP("format", "f", "", "Output format: smil or json (overrides config).")
		outFile         = pflag.StringP("out", "o", "", "Output file path (defaults to stdout).")
		textFiles       = pflag.StringArray("text", nil, "Text WAV source, repeatable, in narration order.")
		audioFiles      = pflag.StringArray("audio", nil, "Audio WAV source, repeatable, in narration order.")
		aacAudio        = pflag.StringArray("aac-audio", nil, "Audio AAC/ADTS source requiring transcoding, repeatable.")
	)

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "afalign - forced alignment of narration text against recorded audio.\n\n")
		fmt.Fprintf(os.Stderr, "Usage: afalign --text a.wav --text b.wav --audio a.mp3.wav --audio b.mp3.wav [options]\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	cfg := config.DefaultConfig()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			log.Fatal("loading config", "err", err)
		}
		cfg = loaded
	}
	if *skipPenalty >= 0 {
		cfg.SkipPenalty = *skipPenalty
	}
	if *radius > 0 {
		cfg.Radius = *radius
	}
	if *format != "" {
		cfg.OutputFormat = *format
	}
	if *timesAsDuration {
		cfg.TimesAsDuration = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", "err", err)
	}

	if len(*textFiles) == 0 {
		log.Fatal("at least one --text source is required")
	}
	if len(*audioFiles) == 0 && len(*aacAudio) == 0 {
		log.Fatal("at least one --audio or --aac-audio source is required")
	}

	texts := make([]syncalign.TextSource, len(*textFiles))
	for i, p := range *textFiles {
		texts[i] = syncalign.TextSource{Path: p}
	}

	audios := make([]syncalign.AudioSource, 0, len(*audioFiles)+len(*aacAudio))
	for _, p := range *audioFiles {
		audios = append(audios, syncalign.AudioSource{Path: p, Format: syncalign.FormatWAV})
	}
	for _, p := range *aacAudio {
		audios = append(audios, syncalign.AudioSource{Path: p, Format: syncalign.FormatAAC})
	}

	opts := syncalign.DefaultOptions()
	opts.SkipPenalty = cfg.SkipPenalty
	opts.Radius = cfg.Radius
	opts.MFCC.WindowSeconds = cfg.WindowSeconds
	opts.MFCC.NumFilters = cfg.NumFilters
	opts.MFCC.NumCoefs = cfg.NumCoefs

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sm, err := syncalign.Align(ctx, texts, audios, opts)
	if err != nil {
		log.Fatal("alignment failed", "err", err)
	}

	out := os.Stdout
	if *outFile != "" {
		f, ferr := os.Create(*outFile)
		if ferr != nil {
			log.Fatal("creating output file", "err", ferr)
		}
		defer f.Close()
		out = f
	}

	tf := output.TimeFormatClock
	if cfg.TimesAsDuration {
		tf = output.TimeFormatDuration
	}

	for _, textName := range sm.Texts() {
		var writeErr error
		switch cfg.OutputFormat {
		case "json":
			writeErr = output.WriteJSON(out, &sm, textName, tf)
		default:
			writeErr = output.WriteSMIL(out, &sm, textName, tf)
		}
		if writeErr != nil {
			log.Fatal("writing output", "text", textName, "err", writeErr)
		}
	}
}
