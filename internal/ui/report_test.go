package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"recode/internal/model"
	"recode/internal/pipeline"
)

func TestSummaryReport(t *testing.T) {
	sum := pipeline.Summary{
		Outcomes: []model.JobOutcome{
			{Input: "/in/a.mkv", Output: "/in/a_192k.mp4", Result: model.Succeeded, Bytes: 2048, Elapsed: 61 * time.Second},
			{Input: "/in/notes.txt", Result: model.SkippedNotVideo},
			{Input: "/in/b.mkv", Output: "/in/b_192k.mp4", Result: model.FailedExecutor, Err: errors.New("ffmpeg exited with status 1")},
		},
		Succeeded:   1,
		Skipped:     1,
		Failed:      1,
		OutputBytes: 2048,
	}
	out := SummaryReport(sum, 90*time.Second, 0, DefaultStyles())

	wantContains := []string{
		"a.mkv", "a_192k.mp4", "succeeded", "2.0 KiB", "00:01:01",
		"notes.txt", "skipped (not a video)",
		"ffmpeg exited with status 1",
		"1 succeeded, 1 skipped, 1 failed",
		"00:01:30",
	}
	for _, s := range wantContains {
		if !strings.Contains(out, s) {
			t.Errorf("report missing %q:\n%s", s, out)
		}
	}
	if strings.Contains(out, "/in/a_192k.mp4") {
		t.Errorf("summary should show base names only:\n%s", out)
	}
}

func TestSummaryReport_Empty(t *testing.T) {
	out := SummaryReport(pipeline.Summary{}, 0, 0, DefaultStyles())
	if strings.Contains(out, "Input") {
		t.Errorf("empty summary should have no table:\n%s", out)
	}
	if !strings.Contains(out, "0 succeeded, 0 skipped, 0 failed") {
		t.Errorf("headline missing:\n%s", out)
	}
}

func TestHeadline_Interrupted(t *testing.T) {
	out := Headline(pipeline.Summary{Interrupted: true}, time.Second, DefaultStyles())
	if !strings.Contains(out, "Interrupted:") {
		t.Errorf("Headline() = %q", out)
	}
}

func TestPlanReport(t *testing.T) {
	sum := pipeline.Summary{Outcomes: []model.JobOutcome{{
		Input:   "/in/a.mkv",
		Output:  "/in/a_192k.mp4",
		Result:  model.Planned,
		Command: []string{"ffmpeg", "-i", "/in/a.mkv", "-c:v", "hevc_amf", "/in/a_192k.mp4"},
	}}}
	out := PlanReport(sum, 0)
	for _, s := range []string{"/in/a_192k.mp4", "planned", "ffmpeg -i /in/a.mkv -c:v hevc_amf"} {
		if !strings.Contains(out, s) {
			t.Errorf("plan missing %q:\n%s", s, out)
		}
	}
}

func TestRenderTable_PadsShortRows(t *testing.T) {
	out := RenderTable([]string{"A", "B"}, [][]string{{"only"}}, []Align{AlignRight}, 0)
	if !strings.Contains(out, "only") || !strings.Contains(out, "B") {
		t.Errorf("RenderTable() = %q", out)
	}
	if RenderTable(nil, nil, nil, 0) != "" {
		t.Error("no headers should render nothing")
	}
}
