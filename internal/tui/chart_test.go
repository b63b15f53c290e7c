package tui

import (
	"strings"
	"testing"
	"time"
)

func sizedChart(w, h int) ChartModel {
	c := NewChartModel()
	c.SetSize(w, h)
	return c
}

func TestChartModel_SetSizeFitsHistories(t *testing.T) {
	c := sizedChart(50, 15)
	if got, want := c.cpuHistory.Cap(), 50-sparklineWidth; got != want {
		t.Errorf("cpu cap = %d, want %d", got, want)
	}
	if got, want := c.memHistory.Cap(), 50-sparklineWidth; got != want {
		t.Errorf("mem cap = %d, want %d", got, want)
	}
	if got, want := c.progressHistory.Cap(), (50-4)*2; got != want {
		t.Errorf("progress cap = %d, want %d", got, want)
	}

	// Too narrow for sparklines: capacities stay where they were.
	c.SetSize(10, 15)
	if c.cpuHistory.Cap() != 50-sparklineWidth {
		t.Errorf("cpu cap changed to %d on a narrow panel", c.cpuHistory.Cap())
	}
}

func TestChartModel_AddDataPoint(t *testing.T) {
	c := sizedChart(50, 10)
	c.AddDataPoint(0.9, 0.2, 40*time.Second)
	c.AddDataPoint(0.9, 0.6, 12*time.Second)

	if c.averageProgress != 0.6 || c.eta != 12*time.Second {
		t.Errorf("average/eta = %v/%v", c.averageProgress, c.eta)
	}
	if got := c.progressHistory.Values(); len(got) != 2 || got[0] != 20 || got[1] != 60 {
		t.Errorf("progress history = %v, want [20 60]", got)
	}
}

func TestChartModel_ResetAndDone(t *testing.T) {
	c := sizedChart(50, 15)
	c.AddDataPoint(0.5, 0.5, time.Second)
	c.UpdateSysStats(30, 70)
	c.SetDone(3 * time.Second)
	if !c.done || c.averageProgress != 1 {
		t.Errorf("SetDone left done=%v average=%v", c.done, c.averageProgress)
	}

	c.Reset()
	if c.done || c.averageProgress != 0 || c.eta != 0 || c.elapsed != 0 {
		t.Errorf("Reset left state %+v", c)
	}
	for name, h := range map[string]*History{"progress": c.progressHistory, "cpu": c.cpuHistory, "mem": c.memHistory} {
		if h.Len() != 0 {
			t.Errorf("%s history has %d samples after Reset", name, h.Len())
		}
	}
}

func TestChartModel_RenderProgressBar(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		progress float64
		want     []string
		empty    bool
	}{
		{"half", 50, 0.5, []string{"█", "░", " 50.0%"}, false},
		{"zero", 50, 0, []string{"░", "  0.0%"}, false},
		{"full", 50, 1, []string{"█", "100.0%"}, false},
		{"too narrow", 17, 0.5, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := sizedChart(tt.width, 10)
			c.AddDataPoint(tt.progress, tt.progress, 0)
			bar := c.renderProgressBar()
			if tt.empty {
				if bar != "" {
					t.Errorf("bar = %q, want empty", bar)
				}
				return
			}
			for _, s := range tt.want {
				if !strings.Contains(bar, s) {
					t.Errorf("bar %q missing %q", bar, s)
				}
			}
		})
	}
}

func TestChartModel_View(t *testing.T) {
	c := sizedChart(50, 15)
	c.AddDataPoint(0.3, 0.3, 20*time.Second)
	c.UpdateSysStats(40, 55)

	view := c.View()
	for _, want := range []string{"Progress Chart", "ETA:", "20s", "CPU", "MEM", "40.0%", "55.0%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	c.SetDone(1500 * time.Millisecond)
	view = c.View()
	if !strings.Contains(view, "Done in") || !strings.Contains(view, "1.5s") {
		t.Errorf("finished view missing elapsed time:\n%s", view)
	}
	if strings.Contains(view, "ETA:") {
		t.Error("finished view still shows an ETA")
	}
}

func TestChartModel_View_HidesSparklinesWhenShort(t *testing.T) {
	c := sizedChart(50, sparklineMinHeight-1)
	c.UpdateSysStats(40, 55)
	if view := c.View(); strings.Contains(view, "CPU") || strings.Contains(view, "MEM") {
		t.Errorf("short panel shows sparklines:\n%s", view)
	}
}
