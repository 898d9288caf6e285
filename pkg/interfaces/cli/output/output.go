// Package output renders resolution reports for the CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/okale/chainplan/pkg/domain/entities"
	"github.com/okale/chainplan/pkg/plan"
)

// Options controls report rendering.
type Options struct {
	Format string           // "text" or "json"
	Depth  *plan.ChainDepth // optional chain-depth section
}

// Render writes the report to w in the configured format.
func Render(w io.Writer, report *plan.Report, opts Options) error {
	switch opts.Format {
	case "", "text":
		return renderText(w, report, opts)
	case "json":
		return renderJSON(w, report, opts)
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}
}

// formatRate trims a rate to a display-exact decimal, avoiding binary
// float dust in the printed figures.
func formatRate(r plan.Rate) string {
	return r.Decimal().Round(6).String()
}

func formatCount(c plan.Count) string {
	return c.Decimal().Round(6).String()
}

func renderText(w io.Writer, report *plan.Report, opts Options) error {
	var b strings.Builder

	b.WriteString("═══════════════════════════════════════════════════════════════\n")
	b.WriteString("                 PRODUCTION CHAIN REQUIREMENTS\n")
	b.WriteString("═══════════════════════════════════════════════════════════════\n\n")

	fmt.Fprintf(&b, "Target: %s @ %s/s\n\n", report.Target, formatRate(report.TargetRate))

	b.WriteString("MATERIALS\n")
	b.WriteString("────────────────────────────────────────────────────────────────\n")
	for _, material := range report.Materials() {
		rq := report.Requirements[material]
		if len(rq.Buildings) == 0 {
			fmt.Fprintf(&b, "%-28s %10s/s  (raw)\n", material, formatRate(rq.Rate))
			continue
		}
		fmt.Fprintf(&b, "%-28s %10s/s\n", material, formatRate(rq.Rate))
		for _, name := range sortedRecipeNames(rq.Buildings) {
			count := rq.Buildings[name]
			fmt.Fprintf(&b, "  %-26s %10s buildings (need %d)\n",
				name, formatCount(count), count.Ceil())
		}
	}
	b.WriteString("\n")

	totals := report.TotalBuildings()
	if len(totals) > 0 {
		b.WriteString("BUILDING TOTALS\n")
		b.WriteString("────────────────────────────────────────────────────────────────\n")
		for _, name := range sortedRecipeNames(totals) {
			count := totals[name]
			fmt.Fprintf(&b, "%-28s %10s  (need %d)\n", name, formatCount(count), count.Ceil())
		}
		b.WriteString("\n")
	}

	if opts.Depth != nil {
		path := make([]string, len(opts.Depth.Path))
		for i, m := range opts.Depth.Path {
			path[i] = string(m)
		}
		fmt.Fprintf(&b, "Longest chain: %d levels (%s)\n\n", opts.Depth.Depth, strings.Join(path, " -> "))
	}

	if len(report.Warnings) > 0 {
		b.WriteString("WARNINGS\n")
		b.WriteString("────────────────────────────────────────────────────────────────\n")
		for _, warning := range report.Warnings {
			fmt.Fprintf(&b, "  - %s\n", warning)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// jsonReport is the wire shape of a rendered report. Rates and counts are
// decimal strings; ceil counts are whole numbers.
type jsonReport struct {
	Target     string          `json:"target"`
	TargetRate string          `json:"target_rate"`
	Materials  []jsonMaterial  `json:"materials"`
	Buildings  []jsonBuilding  `json:"building_totals,omitempty"`
	Warnings   []string        `json:"warnings,omitempty"`
	ChainDepth *jsonChainDepth `json:"chain_depth,omitempty"`
}

type jsonMaterial struct {
	Material  string         `json:"material"`
	Rate      string         `json:"rate"`
	Raw       bool           `json:"raw"`
	Buildings []jsonBuilding `json:"buildings,omitempty"`
}

type jsonBuilding struct {
	Recipe string `json:"recipe"`
	Count  string `json:"count"`
	Ceil   int64  `json:"ceil"`
}

type jsonChainDepth struct {
	Depth int      `json:"depth"`
	Path  []string `json:"path"`
}

func renderJSON(w io.Writer, report *plan.Report, opts Options) error {
	doc := jsonReport{
		Target:     string(report.Target),
		TargetRate: formatRate(report.TargetRate),
	}

	for _, material := range report.Materials() {
		rq := report.Requirements[material]
		entry := jsonMaterial{
			Material: string(material),
			Rate:     formatRate(rq.Rate),
			Raw:      len(rq.Buildings) == 0,
		}
		for _, name := range sortedRecipeNames(rq.Buildings) {
			count := rq.Buildings[name]
			entry.Buildings = append(entry.Buildings, jsonBuilding{
				Recipe: string(name),
				Count:  formatCount(count),
				Ceil:   count.Ceil(),
			})
		}
		doc.Materials = append(doc.Materials, entry)
	}

	totals := report.TotalBuildings()
	for _, name := range sortedRecipeNames(totals) {
		count := totals[name]
		doc.Buildings = append(doc.Buildings, jsonBuilding{
			Recipe: string(name),
			Count:  formatCount(count),
			Ceil:   count.Ceil(),
		})
	}

	for _, warning := range report.Warnings {
		doc.Warnings = append(doc.Warnings, warning.String())
	}

	if opts.Depth != nil {
		path := make([]string, len(opts.Depth.Path))
		for i, m := range opts.Depth.Path {
			path[i] = string(m)
		}
		doc.ChainDepth = &jsonChainDepth{Depth: opts.Depth.Depth, Path: path}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

func sortedRecipeNames(counts map[entities.RecipeName]plan.Count) []entities.RecipeName {
	names := make([]entities.RecipeName, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
