package migration

import (
	"fmt"
	"strings"
)

// EnumValues builds an ENUM/SET constraint from raw values: each value is
// single-quoted with embedded quotes doubled, and values are joined by ",".
func EnumValues(values ...string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}
	return strings.Join(quoted, ",")
}

// ParseEnumValues is the inverse of EnumValues. It also accepts backslash
// escapes and whitespace between values.
func ParseEnumValues(constraint string) ([]string, error) {
	var values []string
	i := 0
	for i < len(constraint) {
		for i < len(constraint) && (constraint[i] == ' ' || constraint[i] == ',') {
			i++
		}
		if i >= len(constraint) {
			break
		}
		if constraint[i] != '\'' {
			return nil, fmt.Errorf("invalid enum/set value list %q: expected quote at offset %d", constraint, i)
		}
		i++

		var b strings.Builder
		closed := false
		for i < len(constraint) {
			c := constraint[i]
			if c == '\\' {
				if i+1 >= len(constraint) {
					return nil, fmt.Errorf("invalid escape in %q", constraint)
				}
				b.WriteByte(constraint[i+1])
				i += 2
				continue
			}
			if c == '\'' {
				if i+1 < len(constraint) && constraint[i+1] == '\'' {
					b.WriteByte('\'')
					i += 2
					continue
				}
				i++
				closed = true
				break
			}
			b.WriteByte(c)
			i++
		}
		if !closed {
			return nil, fmt.Errorf("unterminated value in %q", constraint)
		}

		values = append(values, b.String())
	}
	return values, nil
}
