package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nakamura-oss/cubescan/internal/cfen"
	"github.com/nakamura-oss/cubescan/internal/scan"
)

var matchCmd = &cobra.Command{
	Use:   "match <scan-file>",
	Short: "Resolve 54 BGR facelet samples into a cube's facelet string",
	Long: `Match reads 54 raw BGR samples (one per facelet, in canonical
U-R-F-D-L-B reading order) from a scan file and a scoring table, then
runs the constraint-propagation matcher to produce the 54-character
facelet string.

The scan file is either a JSON array of 54 [b, g, r] triples, or plain
text with one "b g r" line per facelet.

Pass --compact to print the run-length-encoded form (e.g. "U9/R9/F9/D9/L9/B9"
for a solved cube) instead of the raw 54-character string.

Examples:
  cubescan match scan.json --table colors.tbl
  cubescan match scan.txt --table colors.tbl --compact`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tablePath, _ := cmd.Flags().GetString("table")
		if tablePath == "" {
			return fmt.Errorf("--table is required")
		}
		compact, _ := cmd.Flags().GetBool("compact")

		samples, err := readScanFile(args[0])
		if err != nil {
			return fmt.Errorf("read scan file: %w", err)
		}

		table, err := loadScoreTable(tablePath)
		if err != nil {
			return fmt.Errorf("load score table: %w", err)
		}

		m := scan.NewMatcher(table)
		facelets, err := scan.MatchOrError(m, samples)
		if err != nil {
			return fmt.Errorf("match: %w", err)
		}

		if compact {
			encoded, err := cfen.Encode(facelets)
			if err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			fmt.Println(encoded)
			return nil
		}

		fmt.Println(facelets)
		return nil
	},
}

func loadScoreTable(path string) (*scan.ScoreTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scan.ReadScoreTable(f)
}

type scanFileJSON struct {
	Samples [][3]int `json:"samples"`
}

// readScanFile parses either a JSON {"samples": [[b,g,r], ...]} document
// or a plain-text "b g r" per line file into exactly 54 BGR samples.
func readScanFile(path string) ([scan.NumFacelets][3]byte, error) {
	var out [scan.NumFacelets][3]byte

	data, err := os.ReadFile(path)
	if err != nil {
		return out, err
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		var doc scanFileJSON
		if strings.HasPrefix(trimmed, "[") {
			if err := json.Unmarshal([]byte(trimmed), &doc.Samples); err != nil {
				return out, fmt.Errorf("parse JSON samples array: %w", err)
			}
		} else if err := json.Unmarshal([]byte(trimmed), &doc); err != nil {
			return out, fmt.Errorf("parse JSON scan document: %w", err)
		}
		if len(doc.Samples) != scan.NumFacelets {
			return out, fmt.Errorf("expected %d samples, got %d", scan.NumFacelets, len(doc.Samples))
		}
		for i, s := range doc.Samples {
			for c := 0; c < 3; c++ {
				if s[c] < 0 || s[c] > 255 {
					return out, fmt.Errorf("sample %d channel %d out of byte range: %d", i, c, s[c])
				}
				out[i][c] = byte(s[c])
			}
		}
		return out, nil
	}

	scanner := bufio.NewScanner(strings.NewReader(trimmed))
	i := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return out, fmt.Errorf("line %d: expected 3 fields, got %d", i+1, len(fields))
		}
		if i >= scan.NumFacelets {
			return out, fmt.Errorf("more than %d sample lines in scan file", scan.NumFacelets)
		}
		for c, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil || v < 0 || v > 255 {
				return out, fmt.Errorf("line %d: invalid channel value %q", i+1, field)
			}
			out[i][c] = byte(v)
		}
		i++
	}
	if err := scanner.Err(); err != nil {
		return out, err
	}
	if i != scan.NumFacelets {
		return out, fmt.Errorf("expected %d sample lines, got %d", scan.NumFacelets, i)
	}
	return out, nil
}

func init() {
	matchCmd.Flags().StringP("table", "t", "", "path to a scoring table built by 'table build'")
	matchCmd.Flags().Bool("compact", false, "print the run-length-encoded facelet string instead of the raw one")
	rootCmd.AddCommand(matchCmd)
}
