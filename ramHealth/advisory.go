package ramHealth

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/monobilisim/rammon/common"
)

// Advisory is the action suggested for the current memory pressure
type Advisory int

const (
	Nominal Advisory = iota
	Notice
	Warning
	Critical
)

// Upper bounds (inclusive) of the lower bands
const (
	NoticeThreshold   = 70.0
	WarningThreshold  = 80.0
	CriticalThreshold = 90.0
)

// AdvisoryFor maps a utilization percentage to an advisory. A value exactly on
// a threshold stays in the lower band.
func AdvisoryFor(usedPercent float64) Advisory {
	switch {
	case usedPercent > CriticalThreshold:
		return Critical
	case usedPercent > WarningThreshold:
		return Warning
	case usedPercent > NoticeThreshold:
		return Notice
	default:
		return Nominal
	}
}

func (a Advisory) String() string {
	switch a {
	case Critical:
		return "Critical"
	case Warning:
		return "Warning"
	case Notice:
		return "Notice"
	default:
		return "Nominal"
	}
}

// Message is the advisory line shown to the user
func (a Advisory) Message() string {
	switch a {
	case Critical:
		return "CRITICAL! Save your work and free memory IMMEDIATELY!"
	case Warning:
		return "WARNING! Consider closing heavy applications"
	case Notice:
		return "Tip: save your work and get ready to free memory"
	default:
		return "RAM OK - you can keep working"
	}
}

// Color used when rendering the advisory line
func (a Advisory) Color() lipgloss.Color {
	switch a {
	case Critical:
		return common.ErrorColor
	case Warning:
		return common.WarningColor
	case Notice:
		return common.SecondaryColor
	default:
		return common.SuccessColor
	}
}
