package formatter

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatShiftDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0 sekund"},
		{45, "45 sekund"},
		{59, "59 sekund"},
		{60, "1 minut 0 sekund"},
		{125, "2 minut 5 sekund"},
		{3599, "59 minut 59 sekund"},
		{3600, "1 hodin 0 minut 0 sekund"},
		{3661, "1 hodin 1 minut 1 sekund"},
		{90061, "25 hodin 1 minut 1 sekund"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatShiftDuration(tt.seconds))
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "125 sekund", FormatSeconds(125))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"#", "JMÉNO"}, [][]string{{"1", "Ana"}, {"10", "Petr"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 4)
	assert.Contains(t, lines[2], "Ana")
	assert.Contains(t, lines[3], "Petr")
	assert.Equal(t, strings.Index(lines[2], "Ana"), strings.Index(lines[3], "Petr"))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderBox_IncludesTitleAndContent(t *testing.T) {
	out := RenderBox("Seznam směn", "Ana")
	assert.Contains(t, out, "Seznam směn")
	assert.Contains(t, out, "Ana")
}

func TestTimerIndicator(t *testing.T) {
	assert.Contains(t, TimerIndicator(true), "běží")
	assert.Contains(t, TimerIndicator(false), "zastaveno")
}

func TestErrorLine(t *testing.T) {
	assert.Contains(t, ErrorLine(errors.New("boom")), "Chyba: boom")
}
