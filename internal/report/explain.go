package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/yacobolo/tenox"
)

// PrintExplain describes what each class would do.
func PrintExplain(w io.Writer, explanations []tenox.Explanation, useColors bool) {
	for i, ex := range explanations {
		if i > 0 {
			fmt.Fprintln(w, "")
		}
		printExplanation(w, ex, useColors)
	}
}

func printExplanation(w io.Writer, ex tenox.Explanation, useColors bool) {
	fmt.Fprintln(w, RenderStyle(StyleCyan, ex.Class, useColors))

	if !ex.Matched {
		fmt.Fprintln(w, RenderStyle(StyleGray, "  not a utility class", useColors))
		return
	}

	tok := ex.Token
	fmt.Fprintf(w, "  prefix: %s\n", orDash(tok.Prefix))
	fmt.Fprintf(w, "  type:   %s\n", tok.Type)
	fmt.Fprintf(w, "  value:  %s\n", tok.Value)
	fmt.Fprintf(w, "  unit:   %s\n", orDash(tok.Unit))

	mode := ex.Mode.String()
	switch ex.Mode {
	case tenox.ModeInert:
		mode = RenderStyle(StyleYellow, mode, useColors)
	default:
		mode = RenderStyle(StyleGreen, mode, useColors)
	}
	fmt.Fprintf(w, "  mode:   %s\n", mode)

	if ex.Breakpoint != nil {
		state := "inactive"
		if ex.Active {
			state = "active"
		}
		fmt.Fprintf(w, "  range:  %s (%s)\n", formatRange(*ex.Breakpoint), state)
	}

	for _, t := range ex.Targets {
		if t.Kind == tenox.KindDirect {
			continue
		}
		fmt.Fprintf(w, "  kind:   %s %s\n", t.Kind, RenderStyle(StyleGray, t.Func, useColors))
	}

	if len(ex.Writes) == 0 {
		return
	}
	groups := CategorizeWrites(ex.Writes)
	for _, cat := range Categories {
		writes := groups[cat]
		if len(writes) == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s\n", cat)
		for _, cw := range writes {
			fmt.Fprintf(w, "    %s: %s;\n", cw.Property, cw.Value)
		}
	}
}

func formatRange(bp tenox.Breakpoint) string {
	lo, hi := "0", "∞"
	if bp.Min != nil {
		lo = strconv.FormatFloat(*bp.Min, 'f', -1, 64)
	}
	if bp.Max != nil {
		hi = strconv.FormatFloat(*bp.Max, 'f', -1, 64)
	}
	return lo + "px – " + hi + "px"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
