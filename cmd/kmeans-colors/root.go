package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/kmeans-colors/internal/colorspace"
	"github.com/ironsheep/kmeans-colors/internal/imaging"
	"github.com/ironsheep/kmeans-colors/internal/kmeans"
	"github.com/ironsheep/kmeans-colors/internal/palette"
)

// clusterable is a color point the CLI can cluster, print, and rasterize.
type clusterable[P any] interface {
	colorspace.Point[P]
	NRGBA() color.NRGBA
	Hex() string
}

var (
	flagK           int
	flagIterations  int
	flagRuns        int
	flagFactor      float64
	flagRGB         bool
	flagSeed        int64
	flagTransparent bool
	flagPct         bool
	flagSort        bool
	flagPalette     bool
	flagProportion  bool
	flagHeight      int
	flagWidth       int
	flagNoFile      bool
	flagOut         string
	flagExt         string
	flagResize      int
	flagVerbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "kmeans-colors [flags] <image>...",
	Short: "Extract a k-means color palette from images",
	Long: `kmeans-colors clusters the pixels of each input image with an
accelerated k-means algorithm and reports the resulting palette, sorted
from darkest to lightest. It can also write a recolored copy of the image
where every pixel is replaced by its cluster's color, and a swatch strip
of the palette itself.

Clustering runs in CIE L*a*b* space by default, which groups colors the
way the eye does; pass --rgb to cluster raw sRGB values instead.`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	Version:      fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
	RunE:         runExtract,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVarP(&flagIterations, "iterations", "i", 20, "maximum k-means iterations per run")
	pf.IntVarP(&flagRuns, "runs", "r", 3, "number of independent runs, best result kept")
	pf.Float64VarP(&flagFactor, "factor", "f", -1, "convergence threshold on score improvement (default 5.0 for Lab, 0.0025 for RGB)")
	pf.BoolVar(&flagRGB, "rgb", false, "cluster in sRGB space instead of Lab")
	pf.Int64VarP(&flagSeed, "seed", "s", 0, "random seed for reproducible results")
	pf.BoolVar(&flagTransparent, "transparent", false, "exclude non-opaque pixels and keep them transparent in output")
	pf.BoolVar(&flagPct, "pct", false, "print the percentage share of each color")
	pf.StringVarP(&flagOut, "out", "o", "", "output file (single input only; default derives from the input name)")
	pf.StringVarP(&flagExt, "ext", "e", "png", "output file extension/format (png, jpg, bmp)")
	pf.IntVar(&flagResize, "resize", 0, "downsample inputs so no dimension exceeds this size (0 = off)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "log per-file convergence details to stderr")

	f := rootCmd.Flags()
	f.IntVarP(&flagK, "k", "k", 8, "number of colors in the palette")
	f.BoolVar(&flagSort, "sort", false, "order output by frequency instead of luminance")
	f.BoolVarP(&flagPalette, "palette", "p", false, "write a palette swatch strip image")
	f.BoolVar(&flagProportion, "proportional", false, "size palette swatches proportionally to their share")
	f.IntVar(&flagHeight, "height", 40, "palette strip height in pixels")
	f.IntVar(&flagWidth, "width", 0, "palette strip width in pixels (0 = height * k)")
	f.BoolVar(&flagNoFile, "no-file", false, "skip writing the recolored image")
}

func runExtract(cmd *cobra.Command, args []string) error {
	if flagOut != "" && len(args) > 1 {
		return fmt.Errorf("--out requires a single input image")
	}

	cache := imaging.NewImageCache()
	for _, path := range args {
		img, err := cache.Load(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		img = imaging.Downsample(img, flagResize)

		if flagRGB {
			samples, mask := imaging.RGBPixels(img, flagTransparent)
			err = extractOne(path, img, samples, mask)
		} else {
			samples, mask := imaging.LabPixels(img, flagTransparent)
			err = extractOne(path, img, samples, mask)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func extractOne[P clusterable[P]](path string, img image.Image, samples []P, mask []bool) error {
	if len(samples) == 0 {
		return fmt.Errorf("no opaque pixels to cluster")
	}

	res, err := kmeans.BestOf(samples, flagK, flagRuns, flagIterations, convergence(), flagSeed)
	if err != nil {
		return err
	}
	if flagVerbose {
		log.Printf("%s: score %.4f after %d iterations (converged=%v)",
			path, res.Score, res.Iterations, res.Converged)
	}

	mode := palette.SortLuminance
	if flagSort {
		mode = palette.SortFrequency
	}
	entries, err := palette.Build(res, mode)
	if err != nil {
		return err
	}
	printPalette(path, entries)

	if flagPalette {
		strip, err := imaging.PaletteStrip(entries, flagWidth, flagHeight, flagProportion)
		if err != nil {
			return err
		}
		if err := imaging.SaveImage(outputPath(path, "-palette"), strip); err != nil {
			return err
		}
	}

	if flagNoFile {
		return nil
	}
	values := kmeans.MapToCentroids(res.Centroids, res.Assignment)
	bounds := img.Bounds()
	out, err := imaging.Recolor(values, mask, bounds.Dx(), bounds.Dy())
	if err != nil {
		return err
	}
	return imaging.SaveImage(outputPath(path, ""), out)
}

// convergence returns the score-improvement threshold, defaulting per
// color space when --factor was not given.
func convergence() float64 {
	if flagFactor >= 0 {
		return flagFactor
	}
	if flagRGB {
		return 0.0025
	}
	return 5.0
}

// outputPath derives the output file name for an input image. An explicit
// --out wins for the main output; derived names append suffix and the
// configured extension to the input's stem.
func outputPath(input, suffix string) string {
	if flagOut != "" && suffix == "" {
		return flagOut
	}
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(filepath.Dir(input), stem+suffix+"."+flagExt)
}

func printPalette[P clusterable[P]](path string, entries []palette.Entry[P]) {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if flagPct {
			parts = append(parts, fmt.Sprintf("%s %.2f%%", e.Color.Hex(), e.Weight*100))
		} else {
			parts = append(parts, e.Color.Hex())
		}
	}
	fmt.Printf("%s: %s\n", path, strings.Join(parts, ", "))

	if flagVerbose {
		for _, e := range entries {
			c := imaging.Describe(e.Color.NRGBA())
			log.Printf("  %s rgb(%d,%d,%d) hsl(%d,%d%%,%d%%) %d px (%.2f%%)",
				c.Hex, c.RGB.R, c.RGB.G, c.RGB.B,
				c.HSL.H, c.HSL.S, c.HSL.L,
				e.Count, e.Weight*100)
		}
	}
}
