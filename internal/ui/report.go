package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"recode/internal/model"
	"recode/internal/pipeline"
	"recode/internal/util"
	"recode/internal/util/format"
)

// PlanReport lists the output and ffmpeg command each input would get.
func PlanReport(sum pipeline.Summary, maxWidth int) string {
	rows := make([][]string, 0, len(sum.Outcomes))
	for _, o := range sum.Outcomes {
		rows = append(rows, []string{
			filepath.Base(o.Input),
			o.Output,
			o.Result.String(),
			util.ShellQuote(o.Command),
		})
	}
	return RenderTable([]string{"Input", "Output", "Result", "Command"}, rows, nil, maxWidth)
}

// SummaryReport renders one row per processed file followed by a headline.
func SummaryReport(sum pipeline.Summary, elapsed time.Duration, maxWidth int, st Styles) string {
	var b strings.Builder
	if len(sum.Outcomes) > 0 {
		rows := make([][]string, 0, len(sum.Outcomes))
		for _, o := range sum.Outcomes {
			rows = append(rows, summaryRow(o))
		}
		b.WriteString(RenderTable(
			[]string{"Input", "Output", "Result", "Size", "Time", "Note"},
			rows,
			[]Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignLeft},
			maxWidth,
		))
		b.WriteString("\n")
	}
	b.WriteString(Headline(sum, elapsed, st))
	return b.String()
}

func summaryRow(o model.JobOutcome) []string {
	row := []string{filepath.Base(o.Input), "", o.Result.String(), "", "", ""}
	if o.Output != "" {
		row[1] = filepath.Base(o.Output)
	}
	if o.Result == model.Succeeded {
		row[3] = format.Bytes(o.Bytes)
	}
	if o.Elapsed > 0 {
		row[4] = format.Elapsed(o.Elapsed)
	}
	switch {
	case o.Err != nil:
		row[5] = o.Err.Error()
	case len(o.Warnings) > 0:
		row[5] = strings.Join(o.Warnings, "; ")
	}
	return row
}

// Headline is the one-line outcome of a run.
func Headline(sum pipeline.Summary, elapsed time.Duration, st Styles) string {
	title, style := "Done", st.Success
	switch {
	case sum.Interrupted:
		title, style = "Interrupted", st.Warning
	case sum.Failed > 0:
		style = st.Error
	}
	counts := fmt.Sprintf("%d succeeded, %d skipped, %d failed", sum.Succeeded, sum.Skipped, sum.Failed)
	detail := fmt.Sprintf(" (%s written in %s)", format.Bytes(sum.OutputBytes), format.Elapsed(elapsed))
	return style.Render(title+":") + " " + counts + st.Faint.Render(detail)
}
