package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatches/internal/archive"
	"github.com/jmylchreest/swatches/pkg/swatches"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		space  string
		format archive.Format
	)

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert between .swatches files and JSON palettes",
		Long: `Convert a palette between the .swatches container and its JSON form.

The kind of each side is chosen by extension: .json and .jsonc are JSON
palettes, anything else is a .swatches container. A trailing .gz, .xz or
.bz2 adds or removes compression. "-" reads stdin or writes JSON to stdout.

Examples:
  # Inspect a palette as editable JSON in RGB
  swatches convert --space rgb mypalette.swatches mypalette.json

  # Rebuild it after editing
  swatches convert mypalette.json mypalette.swatches

  # Recompress
  swatches convert mypalette.swatches mypalette.swatches.xz`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]
			space = a.spaceOrDefault(space)
			if err := a.codec.CheckSpace(space); err != nil {
				return err
			}

			data, err := readInput(in, cmd.InOrStdin())
			if err != nil {
				return err
			}

			var p *swatches.Palette
			if isJSONPath(in) {
				p, err = parsePaletteJSON(data)
			} else {
				p, err = a.codec.Decode(data, space)
			}
			if err != nil {
				return err
			}
			a.logger.Debug("read palette", "path", in, "name", p.Name, "slots", p.Len())

			if out == stdio || isJSONPath(out) {
				if err := a.toSpace(p, space); err != nil {
					return err
				}
				encoded, err := json.MarshalIndent(p, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode palette: %w", err)
				}
				return writeOutput(out, append(encoded, '\n'), false, cmd.OutOrStdout())
			}

			if !cmd.Flags().Changed("format") {
				format = a.cfg.DefaultFormat
			}
			encoded, err := a.codec.EncodePalette(p, format)
			if err != nil {
				return err
			}
			if err := writeOutput(out, encoded, format == archive.FormatBytes, cmd.OutOrStdout()); err != nil {
				return err
			}
			status(cmd.ErrOrStderr(), a.quiet, "Wrote %s (%d slots)", out, min(p.Len(), swatches.MaxSwatches))
			return nil
		},
	}

	cmd.Flags().StringVarP(&space, "space", "s", "", "colour space for JSON output (default from config)")
	formatFlag(cmd.Flags(), &format)

	return cmd
}

// toSpace converts every filled slot of p into space in place.
func (a *app) toSpace(p *swatches.Palette, space string) error {
	for i, s := range p.All() {
		if s == nil || s.Space == space {
			continue
		}
		if err := a.codec.CheckSpace(s.Space); err != nil {
			return err
		}
		v, err := a.converter.Convert(s.Space, space, s.Values)
		if err != nil {
			return fmt.Errorf("swatch %d: %w", i+1, err)
		}
		p.Swatches[i] = &swatches.Swatch{Values: v, Space: space}
	}
	return nil
}
