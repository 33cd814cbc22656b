package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/array-bridge/cast"
	"github.com/wippyai/array-bridge/dtype"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	dtypeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	rejectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// plainOut disables styling for pipes and -plain.
var plainOut bool

func render(st lipgloss.Style, s string) string {
	if plainOut {
		return s
	}
	return st.Render(s)
}

func main() {
	var (
		width = flag.Int("width", 0, "Platform integer width to resolve against (32 or 64, default: this platform)")
		casts = flag.Bool("casts", false, "Also print the bulk-construction cast matrix")
		plain = flag.Bool("plain", false, "Disable styling")
	)
	flag.Parse()

	plainOut = *plain || !term.IsTerminal(int(os.Stdout.Fd()))

	tbl, err := table(*width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printMappings(tbl)
	if *casts {
		fmt.Println()
		printCasts(tbl)
	}
}

func table(width int) (*dtype.Table, error) {
	if width == 0 {
		return dtype.Default(), nil
	}
	return dtype.New(width)
}

func printMappings(tbl *dtype.Table) {
	fmt.Println(render(titleStyle, fmt.Sprintf("Type mappings (%d-bit platform integer)", tbl.NativeWidth())))
	fmt.Println()

	kinds := []dtype.ElementKind{
		dtype.KindBool, dtype.KindInt8, dtype.KindInt16, dtype.KindInt32,
		dtype.KindInt64, dtype.KindNativeInt, dtype.KindFloat32,
		dtype.KindFloat64, dtype.KindChar16,
	}
	for _, k := range kinds {
		fmt.Printf("  %s -> %s\n",
			render(kindStyle, fmt.Sprintf("%-12s", k.String())),
			render(dtypeStyle, tbl.Canonical(k).String()))
	}
	fmt.Println()

	fmt.Println(render(titleStyle, "Engine dtypes and matching host kinds"))
	fmt.Println()
	dtypes := []dtype.DType{
		dtype.Bool, dtype.Int8, dtype.Uint8, dtype.Int16, dtype.Uint16,
		dtype.Int32, dtype.Uint32, dtype.Int64, dtype.Uint64,
		dtype.Float32, dtype.Float64, dtype.Str1,
	}
	for _, dt := range dtypes {
		var names []string
		for _, k := range tbl.MatchingKinds(dt) {
			names = append(names, k.String())
		}
		line := render(noteStyle, "(engine only)")
		if len(names) > 0 {
			line = render(kindStyle, strings.Join(names, ", "))
		}
		fmt.Printf("  %s -> %s\n", render(dtypeStyle, fmt.Sprintf("%-12s", dt.String())), line)
	}
}

func printCasts(tbl *dtype.Table) {
	fmt.Println(render(titleStyle, "Bulk-construction cast matrix (source row, destination column)"))
	fmt.Println()

	kinds := []dtype.ElementKind{
		dtype.KindBool, dtype.KindInt8, dtype.KindInt16, dtype.KindInt32,
		dtype.KindInt64, dtype.KindFloat32, dtype.KindFloat64,
	}
	fmt.Printf("  %-10s", "")
	for _, dst := range kinds {
		fmt.Printf("%-18s", dst.String())
	}
	fmt.Println()

	for _, src := range kinds {
		fmt.Printf("  %s", render(kindStyle, fmt.Sprintf("%-10s", src.String())))
		for _, dst := range kinds {
			outcome, reason := cast.Classify(src, dst, tbl)
			cell := fmt.Sprintf("%-18s", outcome.String())
			if outcome == cast.NarrowReject {
				cell = render(rejectStyle, fmt.Sprintf("%-18s", "reject:"+reason.String()))
			}
			fmt.Print(cell)
		}
		fmt.Println()
	}
	fmt.Println()
	fmt.Println(render(noteStyle, "reject applies to bulk construction; element assignment wraps or truncates instead"))
}
