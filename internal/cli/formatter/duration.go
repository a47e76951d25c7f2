package formatter

import "fmt"

// FormatShiftDuration renders total seconds the way the shift list shows
// them: "H hodin M minut S sekund" from an hour up, "M minut S sekund"
// from a minute up, otherwise "S sekund".
func FormatShiftDuration(t int) string {
	h := t / 3600
	m := (t % 3600) / 60
	s := t % 60

	switch {
	case t >= 3600:
		return fmt.Sprintf("%d hodin %d minut %d sekund", h, m, s)
	case t >= 60:
		return fmt.Sprintf("%d minut %d sekund", m, s)
	default:
		return fmt.Sprintf("%d sekund", t)
	}
}

// FormatSeconds is the raw readout of the open shift's timer.
func FormatSeconds(t int) string {
	return fmt.Sprintf("%d sekund", t)
}
