package output

import (
	"fmt"
	"strings"
)

// LevelRenderOptions configures level rendering behavior
type LevelRenderOptions struct {
	Colored bool
}

// RenderLevels formats merge levels as one "Level N: a, b" line per
// level, optionally colored with a per-level palette color.
func RenderLevels(levels [][]string, opts LevelRenderOptions) string {
	var sb strings.Builder
	for i, level := range levels {
		line := fmt.Sprintf("Level %d: %s", i, strings.Join(level, ", "))
		if opts.Colored {
			line = ColorForLevel(line, i)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
