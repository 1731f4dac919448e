package ramHealth

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/monobilisim/rammon/common"
)

// Report is everything shown for one cycle
type Report struct {
	Hostname  string
	Memory    MemorySnapshot
	Processes ProcessMemoryEstimate
	Advisory  Advisory
	Time      time.Time
}

// NewReport builds a report and derives its advisory from the memory snapshot
func NewReport(hostname string, snapshot MemorySnapshot, estimate ProcessMemoryEstimate, now time.Time) Report {
	return Report{
		Hostname:  hostname,
		Memory:    snapshot,
		Processes: estimate,
		Advisory:  AdvisoryFor(snapshot.UsedPercent),
		Time:      now,
	}
}

// Title of the status box
func (r Report) Title() string {
	if r.Hostname == "" {
		return "rammon - RAM monitor"
	}
	return "rammon - RAM monitor @ " + r.Hostname
}

// Render formats the report as a fixed layout box
func (r Report) Render() string {
	var sb strings.Builder

	sb.WriteString(common.SectionTitle("Memory"))
	sb.WriteString("\n")
	sb.WriteString(common.ListItem("Total RAM", fmt.Sprintf("%d GB", r.Memory.TotalGB)))
	sb.WriteString("\n")
	sb.WriteString(common.ListItem("Used RAM", fmt.Sprintf("%d GB (%.1f%%)", r.Memory.UsedGB, r.Memory.UsedPercent)))
	sb.WriteString("\n")
	sb.WriteString(common.ListItem("Free RAM", fmt.Sprintf("%d GB", r.Memory.FreeGB)))
	sb.WriteString("\n")
	sb.WriteString(common.ListItem("Browsers/editors", fmt.Sprintf("~%d GB", r.Processes.GB)))
	sb.WriteString("\n")

	sb.WriteString(common.Separator())
	sb.WriteString("\n")
	sb.WriteString(common.ColoredLine(r.Advisory.Message(), r.Advisory.Color()))
	sb.WriteString("\n")
	sb.WriteString(common.Separator())
	sb.WriteString("\n")

	sb.WriteString(common.ListItem("Last update", r.Time.Format("15:04:05")))
	sb.WriteString("\n")
	sb.WriteString(common.ListItem("Exit", "Press Ctrl+C to exit"))

	return common.DisplayBox(r.Title(), sb.String())
}

// Display redraws the whole screen with the report
func Display(w io.Writer, r Report) error {
	common.ClearScreen(w)
	_, err := fmt.Fprintln(w, r.Render())
	return err
}
