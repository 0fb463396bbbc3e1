package main

import (
	"fmt"
	"image"
	"log"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ironsheep/kmeans-colors/internal/colorspace"
	"github.com/ironsheep/kmeans-colors/internal/imaging"
	"github.com/ironsheep/kmeans-colors/internal/kmeans"
	"github.com/ironsheep/kmeans-colors/internal/palette"
)

var (
	flagColors  []string
	flagReplace bool
)

var findCmd = &cobra.Command{
	Use:   "find [flags] <image>...",
	Short: "Recolor images using a fixed set of colors",
	Long: `find matches every pixel of each input image to the nearest of the
supplied colors and writes the recolored result.

Without --replace the supplied colors are used directly as fixed
centroids: no clustering happens, every pixel simply snaps to its nearest
match. With --replace the image is first clustered into as many clusters
as there are supplied colors; the clusters are then substituted, darkest
cluster for the first color, lightest for the last.`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runFind,
}

func init() {
	f := findCmd.Flags()
	f.StringSliceVarP(&flagColors, "colors", "c", nil, "comma-separated hex colors to match against (required)")
	f.BoolVar(&flagReplace, "replace", false, "cluster first, then substitute cluster colors")
	_ = findCmd.MarkFlagRequired("colors")

	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
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
			fixed, err := parseColors(colorspace.RGBFromHex)
			if err != nil {
				return err
			}
			samples, mask := imaging.RGBPixels(img, flagTransparent)
			err = findOne(path, img, samples, mask, fixed)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		} else {
			fixed, err := parseColors(colorspace.LabFromHex)
			if err != nil {
				return err
			}
			samples, mask := imaging.LabPixels(img, flagTransparent)
			err = findOne(path, img, samples, mask, fixed)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
	}
	return nil
}

func parseColors[P any](parse func(string) (P, error)) ([]P, error) {
	if len(flagColors) == 0 {
		return nil, fmt.Errorf("no colors supplied")
	}
	out := make([]P, 0, len(flagColors))
	for _, s := range flagColors {
		p, err := parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func findOne[P clusterable[P]](path string, img image.Image, samples []P, mask []bool, fixed []P) error {
	if len(samples) == 0 {
		return fmt.Errorf("no opaque pixels to match")
	}

	var values []P
	if !flagReplace {
		// One exact pass against the user's centroids; nothing moves.
		matches, err := kmeans.MatchFixed(samples, fixed, nil)
		if err != nil {
			return err
		}
		values = make([]P, len(matches))
		assignment := make([]int, len(matches))
		for i, m := range matches {
			values[i] = m.Value
			assignment[i] = m.Index
		}
		if flagPct {
			res := &kmeans.Result[P]{Centroids: fixed, Assignment: assignment}
			entries, err := palette.Build(res, palette.SortLuminance)
			if err != nil {
				return err
			}
			printPalette(path, entries)
		}
	} else {
		res, err := kmeans.BestOf(samples, len(fixed), flagRuns, flagIterations, convergence(), flagSeed)
		if err != nil {
			return err
		}
		if flagVerbose {
			log.Printf("%s: score %.4f after %d iterations (converged=%v)",
				path, res.Score, res.Iterations, res.Converged)
		}
		entries, err := palette.Build(res, palette.SortLuminance)
		if err != nil {
			return err
		}

		// Substitute user colors for the clusters in luminance order:
		// first color replaces the darkest cluster, and so on. Clusters
		// beyond the entry count (empty ones) keep their own color.
		replacement := slices.Clone(res.Centroids)
		for i, e := range entries {
			if i < len(fixed) {
				replacement[e.Index] = fixed[i]
			}
		}
		if flagPct {
			printed := slices.Clone(entries)
			for i := range printed {
				if i < len(fixed) {
					printed[i].Color = fixed[i]
				}
			}
			printPalette(path, printed)
		}
		values = kmeans.MapToCentroids(replacement, res.Assignment)
	}

	bounds := img.Bounds()
	out, err := imaging.Recolor(values, mask, bounds.Dx(), bounds.Dy())
	if err != nil {
		return err
	}
	return imaging.SaveImage(outputPath(path, ""), out)
}
