// Package fixer runs the logo clean-up pipeline: load, clear the border
// connected checkerboard, save.
package fixer

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ironsheep/logo-fix/internal/config"
	"github.com/ironsheep/logo-fix/internal/imaging"
)

// toneReportSize is how many removed colours are kept in a Report.
const toneReportSize = 4

// Report describes a completed run.
type Report struct {
	InputPath   string              `json:"input_path"`
	OutputPaths []string            `json:"output_paths"`
	Image       *imaging.ImageInfo  `json:"image"`
	Fill        *imaging.FillResult `json:"fill"`
	Tones       []imaging.Tone      `json:"tones"`
}

// Run loads cfg.InputPath, removes its checkerboard background and writes
// the result to each of cfg.OutputPaths in order. The input may also be one
// of the outputs, in which case it is overwritten.
func Run(cfg *config.Config) (*Report, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	if len(cfg.OutputPaths) == 0 {
		return nil, errors.New("no output paths configured")
	}

	img, info, err := imaging.Load(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.InputPath, err)
	}
	if cfg.Debug() {
		log.Printf("Loaded %s: %dx%d %s (alpha=%v, %d bytes)",
			cfg.InputPath, info.Width, info.Height, info.SourceModel, info.HasAlpha, info.FileSizeBytes)
	}

	fill := imaging.RemoveBackground(img)
	tones := imaging.BackgroundTones(fill, toneReportSize)
	if cfg.Debug() {
		log.Printf("Flood fill visited %d of %d pixels, cleared %d",
			fill.Visited, fill.Width*fill.Height, fill.Cleared)
		for _, tone := range tones {
			log.Printf("  removed %s (hsl %d,%d,%d): %d pixels, %.1f%%",
				tone.Hex, tone.HSL.H, tone.HSL.S, tone.HSL.L, tone.Pixels, tone.Percentage)
		}
	}

	if err := imaging.Save(img, cfg.OutputPaths...); err != nil {
		return nil, fmt.Errorf("save: %w", err)
	}

	return &Report{
		InputPath:   cfg.InputPath,
		OutputPaths: cfg.OutputPaths,
		Image:       info,
		Fill:        fill,
		Tones:       tones,
	}, nil
}

// Message is the one-line confirmation printed after a successful run.
func (r *Report) Message() string {
	return "Logo fixed and saved to " + joinPaths(r.OutputPaths)
}

func joinPaths(paths []string) string {
	switch len(paths) {
	case 0:
		return ""
	case 1:
		return paths[0]
	}
	return strings.Join(paths[:len(paths)-1], ", ") + " and " + paths[len(paths)-1]
}
