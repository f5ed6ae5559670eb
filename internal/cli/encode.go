package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatches/internal/archive"
	"github.com/jmylchreest/swatches/pkg/swatches"
)

func newEncodeCmd(a *app) *cobra.Command {
	var (
		name    string
		colours []string
		input   string
		output  string
		format  archive.Format
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Build a .swatches file from colours or a JSON palette",
		Long: `Build a .swatches file from --colour specifications, a JSON palette, or both.

Colours may be given as space:a,b,c, space(a,b,c), #hex, or "-" for an empty
slot. A JSON palette has the form
  {"name": "My palette", "swatches": [[[255, 0, 0], "rgb"], null]}
and may contain comments. Colours from --colour are appended after the
palette's own. At most 30 slots are written; the rest are dropped.

Examples:
  # Three primaries
  swatches encode -n Primaries -c rgb:255,0,0 -c rgb:0,255,0 -c "#0000ff" -o primaries.swatches

  # Leave a gap in the second slot
  swatches encode -n Gap -c "hsl(30, 100, 50)" -c - -c hsv:200,60,80 -o gap.swatches

  # From JSON, xz-compressed
  swatches encode -i palette.jsonc -o palette.swatches.xz

  # Base64 for embedding
  swatches encode -i palette.json -f base64`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var slots []*swatches.Swatch
			paletteName := ""

			if input != "" {
				data, err := readInput(input, cmd.InOrStdin())
				if err != nil {
					return err
				}
				p, err := parsePaletteJSON(data)
				if err != nil {
					return fmt.Errorf("invalid palette %s: %w", input, err)
				}
				paletteName = p.Name
				slots = p.Swatches
			}
			if cmd.Flags().Changed("name") {
				paletteName = name
			}

			extra, err := parseColourSpecs(colours)
			if err != nil {
				return err
			}
			slots = append(slots, extra...)

			if input == "" && len(colours) == 0 {
				return fmt.Errorf("nothing to encode: provide --colour or --input")
			}

			if !cmd.Flags().Changed("format") {
				format = a.cfg.DefaultFormat
			}
			if len(slots) > swatches.MaxSwatches {
				a.logger.Warn("palette has too many slots, extra slots dropped", "slots", len(slots), "max", swatches.MaxSwatches)
			}

			data, err := a.codec.Encode(paletteName, slots, format)
			if err != nil {
				return err
			}
			if err := writeOutput(output, data, format == archive.FormatBytes, cmd.OutOrStdout()); err != nil {
				return err
			}

			if output != stdio {
				status(cmd.ErrOrStderr(), a.quiet, "Wrote %s (%d slots)", output, min(len(slots), swatches.MaxSwatches))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "palette name")
	cmd.Flags().StringArrayVarP(&colours, "colour", "c", nil, "colour to add (space:a,b,c, space(a,b,c), #hex or -), repeatable")
	cmd.Flags().StringVarP(&input, "input", "i", "", `JSON/JSONC palette file ("-" for stdin)`)
	cmd.Flags().StringVarP(&output, "output", "o", stdio, `output path ("-" for stdout)`)
	formatFlag(cmd.Flags(), &format)

	return cmd
}
