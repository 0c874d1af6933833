// Command kernelinfo prints CPU capabilities and the kernel variants
// registered for each operation, marking which variant dispatch would
// select at a given buffer alignment.
//
// Usage:
//
//	kernelinfo [flags] [operation ...]
//
// Without arguments it prints every operation.
//
// Examples:
//
//	kernelinfo
//	kernelinfo -features
//	kernelinfo -align 8 dot_product
//	kernelinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-kernels/buffer"
	"github.com/cwbudde/algo-kernels/cpu"
	"github.com/cwbudde/algo-kernels/registry"

	// Pull in the arch variant registrations for this platform.
	_ "github.com/cwbudde/algo-kernels"
)

type variantRow struct {
	name     string
	level    cpu.SIMDLevel
	priority int
	align    int
}

type opEntry struct {
	name     string
	rows     func() []variantRow
	selected func(f cpu.Features, align int) string
}

var operations = []opEntry{
	{
		name: registry.DeinterleaveRealInt16.Name(),
		rows: func() []variantRow { return rowsOf(registry.DeinterleaveRealInt16.Variants()) },
		selected: func(f cpu.Features, align int) string {
			if v := registry.DeinterleaveRealInt16.Select(f, align); v != nil {
				return v.Name
			}
			return ""
		},
	},
	{
		name: registry.DotProduct.Name(),
		rows: func() []variantRow { return rowsOf(registry.DotProduct.Variants()) },
		selected: func(f cpu.Features, align int) string {
			if v := registry.DotProduct.Select(f, align); v != nil {
				return v.Name
			}
			return ""
		},
	},
}

func rowsOf[F any](vs []registry.Variant[F]) []variantRow {
	rows := make([]variantRow, len(vs))
	for i, v := range vs {
		rows[i] = variantRow{name: v.Name, level: v.SIMDLevel, priority: v.Priority, align: v.Align}
	}
	return rows
}

func main() {
	align := flag.Int("align", buffer.Alignment(), "effective buffer alignment in bytes for selection")
	features := flag.Bool("features", false, "print CPU features only")
	list := flag.Bool("list", false, "list operation names")
	generic := flag.Bool("generic", false, "evaluate selection with SIMD disabled")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: kernelinfo [flags] [operation ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints CPU capabilities and registered kernel variants.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints every operation.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo -features\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo -align 8 dot_product\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	hw := cpu.DetectFeatures()
	if *generic {
		hw.ForceGeneric = true
	}

	printFeatures(hw)

	if *features {
		return
	}

	entries := resolveEntries(flag.Args())
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching operations\n")
		os.Exit(1)
	}

	for _, e := range entries {
		fmt.Println()
		printVariants(e, hw, *align)
	}
}

func printList() {
	names := make([]string, len(operations))
	for i, e := range operations {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []opEntry {
	if len(names) == 0 {
		return operations
	}

	byName := make(map[string]opEntry, len(operations))
	for _, e := range operations {
		byName[e.name] = e
	}

	var result []opEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown operation %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printFeatures(f cpu.Features) {
	fmt.Printf("Architecture:        %s\n", f.Architecture)
	if f.Vendor != "" {
		fmt.Printf("Vendor:              %s\n", f.Vendor)
	}
	if f.Brand != "" {
		fmt.Printf("Brand:               %s\n", f.Brand)
	}
	fmt.Printf("SSE2:                %s\n", yesNo(f.HasSSE2))
	fmt.Printf("SSE3:                %s\n", yesNo(f.HasSSE3))
	fmt.Printf("AVX:                 %s\n", yesNo(f.HasAVX))
	fmt.Printf("FMA:                 %s\n", yesNo(f.HasFMA))
	fmt.Printf("AVX2:                %s\n", yesNo(f.HasAVX2))
	fmt.Printf("AVX-512:             %s\n", yesNo(f.HasAVX512))
	fmt.Printf("NEON:                %s\n", yesNo(f.HasNEON))
	if f.ForceGeneric {
		fmt.Printf("ForceGeneric:        yes\n")
	}
	fmt.Printf("Preferred alignment: %d bytes\n", buffer.Alignment())
}

func printVariants(e opEntry, hw cpu.Features, align int) {
	selected := e.selected(hw, align)

	fmt.Printf("%s (selection at align %d)\n", e.name, align)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Variant\tLevel\tPriority\tAlign\tEligible\tSelected\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "-------\t-----\t--------\t-----\t--------\t--------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, row := range e.rows() {
		alignStr := "any"
		if row.align > 0 {
			alignStr = fmt.Sprintf("%d", row.align)
		}
		eligible := cpu.Supports(hw, row.level) && row.align <= align
		marker := ""
		if row.name == selected {
			marker = "*"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
			row.name,
			row.level,
			row.priority,
			alignStr,
			yesNo(eligible),
			marker,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
