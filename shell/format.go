package shell

import (
	"strings"
)

// noneValue is printed for an absent element.
const noneValue = "None"

func formatOptional(value string, exists bool) string {
	if !exists {
		return noneValue
	}

	return value
}

func formatBool(value bool) string {
	if value {
		return "True"
	}

	return "False"
}

// formatSequence renders tokens as a bracketed list of quoted strings, e.g. ['1', '2'].
func formatSequence(values []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, value := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quote(value))
	}
	b.WriteByte(']')

	return b.String()
}

// quote wraps the value in single quotes, or double quotes if it contains a single quote only.
func quote(value string) string {
	if strings.Contains(value, "'") && !strings.Contains(value, `"`) {
		return `"` + value + `"`
	}

	return "'" + strings.ReplaceAll(strings.ReplaceAll(value, `\`, `\\`), "'", `\'`) + "'"
}
