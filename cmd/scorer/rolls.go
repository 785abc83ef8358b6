package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	bowlerr "github.com/KirkDiggler/tenpin/internal/errors"
	"github.com/KirkDiggler/tenpin/internal/services/scoring"
)

// parseRolls reads pin counts separated by commas or whitespace
func parseRolls(text string) ([]int, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	rolls := make([]int, 0, len(fields))
	for i, field := range fields {
		pins, err := strconv.Atoi(field)
		if err != nil {
			return nil, bowlerr.InvalidArgumentf("roll %d: %q is not a number of pins", i+1, field).
				WithMeta("roll", i+1)
		}
		rolls = append(rolls, pins)
	}

	return rolls, nil
}

// loadRollFile reads one game from a file. Lines starting with # are
// ignored and the player is named after the file.
func loadRollFile(path string) (*scoring.ScoreRollsInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, bowlerr.Wrapf(err, "failed to read %s", path)
	}

	var body strings.Builder
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		body.WriteString(line)
		body.WriteString("\n")
	}

	rolls, err := parseRolls(body.String())
	if err != nil {
		return nil, bowlerr.Wrapf(err, "failed to parse %s", path).WithMeta("file", path)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &scoring.ScoreRollsInput{PlayerName: name, Rolls: rolls}, nil
}
