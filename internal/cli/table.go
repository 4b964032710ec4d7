package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nakamura-oss/cubescan/internal/scan"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Inspect or build a BGR-to-confidence scoring table",
}

var tableShowCmd = &cobra.Command{
	Use:   "show <b,g,r>",
	Short: "Print the six per-color confidence scores for a packed BGR value",
	Long: `Show looks up a single BGR triple (given as "b,g,r", each 0-255)
in a scoring table and prints its six per-color confidence scores in
U,R,F,D,L,B order.

Example:
  cubescan table show 12,200,45 --table colors.tbl`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tablePath, _ := cmd.Flags().GetString("table")
		if tablePath == "" {
			return fmt.Errorf("--table is required")
		}

		b, g, r, err := parseBGRTriple(args[0])
		if err != nil {
			return fmt.Errorf("parse BGR triple: %w", err)
		}

		table, err := loadScoreTable(tablePath)
		if err != nil {
			return fmt.Errorf("load score table: %w", err)
		}

		scores := table.Score(scan.PackBGR(b, g, r))
		for c := scan.Color(0); c < scan.NumColors; c++ {
			fmt.Printf("%s: %d\n", c, scores[c])
		}
		return nil
	},
}

// refsFileJSON is the labeled-swatch input to 'table build': a map from
// single-letter color name to a list of [b, g, r] reference triples.
type refsFileJSON map[string][][3]int

var colorNameToID = map[string]scan.Color{
	"U": scan.ColorU,
	"R": scan.ColorR,
	"F": scan.ColorF,
	"D": scan.ColorD,
	"L": scan.ColorL,
	"B": scan.ColorB,
}

var tableBuildCmd = &cobra.Command{
	Use:   "build <refs-file>",
	Short: "Synthesize a scoring table from labeled reference swatches",
	Long: `Build reads a JSON file mapping each of the six face letters to a
list of reference BGR swatches, scores every packed BGR value by inverse
squared distance to its nearest swatch per color, and writes the
resulting table to --out.

This stands in for the offline color-calibration pipeline a real scanner
would use; it is not part of the hot match path.

Example:
  cubescan table build refs.json --out colors.tbl`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath, _ := cmd.Flags().GetString("out")
		if outPath == "" {
			return fmt.Errorf("--out is required")
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read refs file: %w", err)
		}

		var raw refsFileJSON
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parse refs file: %w", err)
		}

		refs := make(map[scan.Color][][3]byte, len(raw))
		for name, swatches := range raw {
			color, ok := colorNameToID[strings.ToUpper(name)]
			if !ok {
				return fmt.Errorf("unknown color letter %q", name)
			}
			converted := make([][3]byte, len(swatches))
			for i, sw := range swatches {
				for c := 0; c < 3; c++ {
					if sw[c] < 0 || sw[c] > 255 {
						return fmt.Errorf("color %s swatch %d channel %d out of range: %d", name, i, c, sw[c])
					}
					converted[i][c] = byte(sw[c])
				}
			}
			refs[color] = converted
		}

		fmt.Fprintf(os.Stderr, "building table from %d reference colors...\n", len(refs))
		table := scan.BuildNearestReferenceTable(refs)

		out, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer out.Close()

		if err := table.WriteTo(out); err != nil {
			return fmt.Errorf("write table: %w", err)
		}

		fmt.Printf("wrote %s\n", outPath)
		return nil
	},
}

func parseBGRTriple(s string) (byte, byte, byte, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected b,g,r, got %q", s)
	}
	vals := [3]byte{}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return 0, 0, 0, fmt.Errorf("invalid channel value %q", p)
		}
		vals[i] = byte(v)
	}
	return vals[0], vals[1], vals[2], nil
}

func init() {
	tableShowCmd.Flags().StringP("table", "t", "", "path to a scoring table")
	tableBuildCmd.Flags().StringP("out", "o", "", "output path for the built table")
	tableCmd.AddCommand(tableShowCmd)
	tableCmd.AddCommand(tableBuildCmd)
	rootCmd.AddCommand(tableCmd)
}
