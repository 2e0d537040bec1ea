package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/LambdaTest/covcompare/pkg/core"
	"github.com/LambdaTest/covcompare/pkg/errs"
	"github.com/LambdaTest/covcompare/pkg/global"
	"github.com/LambdaTest/covcompare/pkg/service/coverage"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"
)

// Formats lists the output formats accepted by Write.
var Formats = []string{global.MarkdownOutput, global.TableOutput, global.JSONOutput, global.YAMLOutput}

type changeView struct {
	Path   string            `json:"path" yaml:"path"`
	Old    *float64          `json:"old" yaml:"old"`
	New    float64           `json:"new" yaml:"new"`
	Delta  float64           `json:"delta" yaml:"delta"`
	Status core.ChangeStatus `json:"status" yaml:"status"`
}

type summaryView struct {
	BaselineTotal float64      `json:"baseline_total" yaml:"baseline_total"`
	CurrentTotal  float64      `json:"current_total" yaml:"current_total"`
	Delta         float64      `json:"delta" yaml:"delta"`
	Changes       []changeView `json:"changes" yaml:"changes"`
}

func newSummaryView(c core.Comparison) summaryView {
	view := summaryView{
		BaselineTotal: c.BaselineTotal,
		CurrentTotal:  c.CurrentTotal,
		Delta:         coverage.Round(c.CurrentTotal - c.BaselineTotal),
		Changes:       make([]changeView, 0, len(c.Changes)),
	}
	for _, change := range c.Changes {
		cv := changeView{Path: change.Path, Old: change.Old, New: change.New, Status: change.Status()}
		if change.Old != nil {
			cv.Delta = coverage.Round(change.New - *change.Old)
		}
		view.Changes = append(view.Changes, cv)
	}
	return view
}

// Write prints c to w in the given format.
func Write(w io.Writer, c core.Comparison, format string) error {
	switch format {
	case global.MarkdownOutput, "":
		return writeMarkdown(w, c)
	case global.TableOutput:
		return writeTable(w, c)
	case global.JSONOutput:
		return writeJSON(w, newSummaryView(c))
	case global.YAMLOutput:
		return writeYAML(w, newSummaryView(c))
	default:
		return errs.ErrInvalidConfig(fmt.Sprintf("unknown output format %q, expected one of %s", format, strings.Join(Formats, ", ")))
	}
}

func writeMarkdown(w io.Writer, c core.Comparison) error {
	body := Render(c)
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	_, err := io.WriteString(w, body)
	return err
}

// writeTable prints the changes as a terminal table followed by the total.
func writeTable(w io.Writer, c core.Comparison) error {
	if len(c.Changes) == 0 {
		_, err := fmt.Fprintln(w, Unchanged)
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"File", "Before", "After", "Delta", "Status"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	red := color.New(color.FgRed).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	var data [][]string
	for _, change := range c.Changes {
		before, delta := "-", "-"
		status := string(change.Status())
		switch change.Status() {
		case core.Added:
			status = yellow(status)
		case core.Regressed:
			before = twoDecimals(*change.Old)
			delta = red(fmt.Sprintf("-%s", twoDecimals(*change.Old-change.New)))
			status = red(status)
		default:
			before = twoDecimals(*change.Old)
			delta = green(fmt.Sprintf("+%s", twoDecimals(change.New-*change.Old)))
			status = green(status)
		}
		data = append(data, []string{change.Path, before, twoDecimals(change.New), delta, status})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, Title(c))
	return err
}

func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, data any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}
