package gotemplate

import (
	"strings"

	"github.com/flosch/pongo2/v6"
)

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("bullet") {
		_ = pongo2.RegisterFilter("bullet", filterBullet)
	}
	if !pongo2.FilterExists("indent") {
		_ = pongo2.RegisterFilter("indent", filterIndent)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterBullet prefixes the value with "• ", or with the parameter when one is
// given.
func filterBullet(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	marker := "• "
	if param != nil && !param.IsNil() && param.String() != "" {
		marker = param.String()
	}
	return pongo2.AsValue(marker + in.String()), nil
}

// filterIndent prefixes every non-empty line with param spaces (default 2).
func filterIndent(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	width := 2
	if param != nil && !param.IsNil() && param.IsInteger() {
		width = param.Integer()
	}
	pad := strings.Repeat(" ", width)

	lines := strings.Split(in.String(), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return pongo2.AsValue(strings.Join(lines, "\n")), nil
}
