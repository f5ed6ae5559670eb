package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatches/internal/archive"
	"github.com/jmylchreest/swatches/internal/colour"
	"github.com/jmylchreest/swatches/internal/image"
	"github.com/jmylchreest/swatches/pkg/swatches"
)

func newExtractCmd(a *app) *cobra.Command {
	var (
		colours   int
		algorithm string
		name      string
		output    string
		seed      uint64
		format    archive.Format
	)

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract a palette from an image into a .swatches file",
		Long: `Extract the dominant colours of an image and write them as a .swatches file.

Supported image formats: JPEG, PNG, GIF, WebP. Colours are ordered from most
to least dominant. The same --seed always yields the same palette.

Examples:
  # 16 colours from a wallpaper, written to wallpaper.swatches
  swatches extract wallpaper.jpg

  # A full 30-slot palette with a custom name
  swatches extract -c 30 -n "Sunset" -o sunset.swatches sunset.webp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if colours < 1 || colours > swatches.MaxSwatches {
				return fmt.Errorf("--colours must be between 1 and %d, got %d", swatches.MaxSwatches, colours)
			}

			extractor, err := colour.NewExtractor(colour.Algorithm(algorithm), seed)
			if err != nil {
				return fmt.Errorf("failed to create extractor: %w", err)
			}

			a.logger.Debug("loading image", "path", path)
			img, err := image.NewFileLoader().Load(path)
			if err != nil {
				return fmt.Errorf("failed to load image: %w", err)
			}
			bounds := img.Bounds()
			a.logger.Debug("extracting colours", "width", bounds.Dx(), "height", bounds.Dy(), "count", colours, "algorithm", algorithm)

			rgbs, err := extractor.Extract(img, colours)
			if err != nil {
				return fmt.Errorf("failed to extract colours: %w", err)
			}

			slots := make([]*swatches.Swatch, len(rgbs))
			for i, c := range rgbs {
				v := c.Triple()
				slots[i] = swatches.NewSwatch(colour.SpaceRGB, v[0], v[1], v[2])
			}

			if name == "" {
				name = baseName(path)
			}
			if output == "" {
				output = baseName(path) + ".swatches"
			}
			if !cmd.Flags().Changed("format") {
				format = a.cfg.DefaultFormat
			}

			data, err := a.codec.Encode(name, slots, format)
			if err != nil {
				return err
			}
			if err := writeOutput(output, data, format == archive.FormatBytes, cmd.OutOrStdout()); err != nil {
				return err
			}
			if output != stdio {
				status(cmd.ErrOrStderr(), a.quiet, "Extracted %d colours from %s into %s", len(slots), path, output)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&colours, "colours", "c", 16, fmt.Sprintf("number of colours to extract (1-%d)", swatches.MaxSwatches))
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(colour.AlgorithmKMeans), "extraction algorithm (kmeans)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "palette name (default: image file name)")
	cmd.Flags().StringVarP(&output, "output", "o", "", `output path (default: <image>.swatches, "-" for stdout)`)
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed for clustering")
	formatFlag(cmd.Flags(), &format)

	return cmd
}
