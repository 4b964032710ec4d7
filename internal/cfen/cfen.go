// Package cfen implements a compact facelet encoding notation: a
// run-length-encoded textual form of the 54-character U/R/F/D/L/B facelet
// string scan.Matcher produces, plus support for partially-resolved scans
// where some facelets carry the wildcard '?' instead of a color letter.
package cfen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/nakamura-oss/cubescan/internal/scan"
)

// stickersPerFace is fixed: cubescan only ever matches a standard 3x3x3
// cube, so unlike the notation this package is descended from there is no
// per-cube dimension to track.
const stickersPerFace = 9

// wildcard marks a facelet that a partial scan left unresolved.
const wildcard = '?'

// Encode run-length-encodes a 54-character facelet string (U-R-F-D-L-B
// reading order, 9 facelets per face) into its compact form, e.g. a solved
// cube becomes "U9/R9/F9/D9/L9/B9".
//
// facelets may contain '?' for facelets a partial scan left unresolved;
// Encode does not otherwise validate its input's color letters.
func Encode(facelets string) (string, error) {
	if len(facelets) != scan.NumFacelets {
		return "", fmt.Errorf("expected %d facelets, got %d", scan.NumFacelets, len(facelets))
	}

	var sb strings.Builder
	for face := 0; face < 6; face++ {
		if face > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(compactFace(facelets[face*stickersPerFace : (face+1)*stickersPerFace]))
	}
	return sb.String(), nil
}

func compactFace(face string) string {
	var sb strings.Builder
	current := face[0]
	count := 1

	flush := func() {
		sb.WriteByte(current)
		if count > 1 {
			sb.WriteString(strconv.Itoa(count))
		}
	}

	for i := 1; i < len(face); i++ {
		if face[i] == current {
			count++
			continue
		}
		flush()
		current = face[i]
		count = 1
	}
	flush()
	return sb.String()
}

var faceTokenRE = regexp.MustCompile(`([URFDLB?])(\d*)`)

// Decode parses a compact facelet encoding back into its 54-character
// facelet string.
func Decode(compact string) (string, error) {
	faceStrs := strings.Split(compact, "/")
	if len(faceStrs) != 6 {
		return "", fmt.Errorf("expected 6 faces separated by '/', got %d", len(faceStrs))
	}

	var sb strings.Builder
	for i, faceStr := range faceStrs {
		facelets, err := decodeFace(faceStr)
		if err != nil {
			return "", fmt.Errorf("face %d: %w", i, err)
		}
		sb.WriteString(facelets)
	}
	return sb.String(), nil
}

func decodeFace(faceStr string) (string, error) {
	matches := faceTokenRE.FindAllStringSubmatch(faceStr, -1)
	if len(matches) == 0 {
		return "", fmt.Errorf("no valid color tokens found in %q", faceStr)
	}

	var reconstructed strings.Builder
	var out strings.Builder
	for _, match := range matches {
		reconstructed.WriteString(match[0])

		count := 1
		if match[2] != "" {
			var err error
			count, err = strconv.Atoi(match[2])
			if err != nil || count < 1 {
				return "", fmt.Errorf("invalid run count %q", match[2])
			}
		}
		for i := 0; i < count; i++ {
			out.WriteByte(match[1][0])
		}
	}

	if reconstructed.String() != faceStr {
		return "", fmt.Errorf("failed to parse entire face string %q, parsed %q", faceStr, reconstructed.String())
	}
	if out.Len() != stickersPerFace {
		return "", fmt.Errorf("face %q decodes to %d facelets, want %d", faceStr, out.Len(), stickersPerFace)
	}
	return out.String(), nil
}

// HasUnresolved reports whether a facelet string (compact or expanded)
// still carries any wildcard facelets.
func HasUnresolved(facelets string) bool {
	return strings.ContainsRune(facelets, wildcard)
}
