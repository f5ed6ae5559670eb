package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatches/internal/colour"
	"github.com/jmylchreest/swatches/pkg/swatches"
)

// Output modes for show.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputHex   = "hex"
)

func newShowCmd(a *app) *cobra.Command {
	var (
		space   string
		output  string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print the colours in a .swatches file",
		Long: `Decode a .swatches file and print its colours in the requested space.

Empty slots are shown in place. Files ending in .gz, .xz or .bz2 are
decompressed first; "-" reads from stdin.

Examples:
  # Show a palette as HSV (the stored space)
  swatches show mypalette.swatches

  # Show as RGB with colour previews
  swatches show --space rgb --preview mypalette.swatches

  # Print hex codes only, one per slot
  swatches show --output hex mypalette.swatches

  # Dump the JSON palette representation in Lab
  swatches show -s lab -o json mypalette.swatches`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			space = a.spaceOrDefault(space)
			if err := a.codec.CheckSpace(space); err != nil {
				return err
			}

			data, err := readInput(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			p, err := a.codec.Decode(data, space)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !cmd.Flags().Changed("preview") {
				preview = isTerminal(out)
			}
			return a.printPalette(out, p, output, preview)
		},
	}

	cmd.Flags().StringVarP(&space, "space", "s", "", "colour space to show values in (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format (table, json, hex)")
	cmd.Flags().BoolVar(&preview, "preview", false, "show colour previews (default: when stdout is a terminal)")

	return cmd
}

func (a *app) printPalette(w io.Writer, p *swatches.Palette, output string, preview bool) error {
	switch output {
	case outputJSON:
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode palette: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err

	case outputHex:
		for _, s := range p.All() {
			if s == nil {
				fmt.Fprintln(w, "-")
				continue
			}
			rgb, err := colour.ToRGBIn(a.converter, s.Space, s.Values)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, rgb.Hex())
		}
		return nil

	case outputTable:
		return a.printTable(w, p, preview)

	default:
		return fmt.Errorf("unknown output format: %s (valid: %s, %s, %s)", output, outputTable, outputJSON, outputHex)
	}
}

func (a *app) printTable(w io.Writer, p *swatches.Palette, preview bool) error {
	name := p.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(w, "%s: %d slots, %d filled\n\n", name, p.Len(), p.Filled())

	headers := []string{"#", "Space", "Values", "Hex"}
	if preview {
		headers = append([]string{"Colour"}, headers...)
	}
	table := NewTable(headers)
	width := a.cfg.PreviewWidth
	if preview {
		table.SetColumnWidth(0, width)
	}

	for i, s := range p.All() {
		row := []string{strconv.Itoa(i + 1), "", "", ""}
		var rgb colour.RGB
		if s != nil {
			var err error
			rgb, err = colour.ToRGBIn(a.converter, s.Space, s.Values)
			if err != nil {
				return err
			}
			row = []string{strconv.Itoa(i + 1), s.Space, formatValues(s.Values), rgb.Hex()}
		} else {
			row[1] = "empty"
		}

		if preview {
			block := colour.EmptyPreview(width)
			if s != nil {
				block = colour.Preview(rgb, width)
			}
			row = append([]string{block}, row...)
		}
		table.AddRow(row)
	}

	_, err := fmt.Fprint(w, table.Render())
	return err
}

// formatValues prints a triple with at most two decimals per component.
func formatValues(v [3]float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(math.Round(x*100)/100, 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}
