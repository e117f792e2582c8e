package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/shepherd-cli/shepherd/internal/app"
	"github.com/shepherd-cli/shepherd/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestNewFormatter(t *testing.T) {
	f := NewFormatter()
	assert.NotNil(t, f)
	assert.Equal(t, FormatCLI, f.Format)
	assert.Equal(t, ColorAuto, f.ColorMode)
}

func TestFormatterIsColorEnabled(t *testing.T) {
	t.Run("color_always", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorAlways}
		assert.True(t, f.IsColorEnabled())
	})

	t.Run("color_never", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorNever}
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("color_auto_non_terminal", func(t *testing.T) {
		var buf bytes.Buffer
		f := &Formatter{
			Writer:    &buf,
			ColorMode: ColorAuto,
		}
		// Buffer is not a terminal
		assert.False(t, f.IsColorEnabled())
	})
}

func TestFormatterJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}

	data := map[string]string{"key": "value"}
	err := f.JSON(data)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"key": "value"`)
}

func TestFormatRelativeDay(t *testing.T) {
	now := time.Date(2024, 3, 13, 10, 0, 0, 0, time.Local)

	assert.Equal(t, "Today", FormatRelativeDay(now.Add(5*time.Hour), now))
	assert.Equal(t, "Tomorrow", FormatRelativeDay(now.AddDate(0, 0, 1), now))
	assert.Equal(t, "2024-03-20", FormatRelativeDay(now.AddDate(0, 0, 7), now))
}

func TestCLIFormatterToast(t *testing.T) {
	var buf bytes.Buffer
	c := NewCLIFormatter(&Formatter{Writer: &buf, ColorMode: ColorNever})

	c.Toast("Save failed", "disk full", app.SeverityError)
	assert.Contains(t, buf.String(), "✗ Save failed: disk full")

	buf.Reset()
	c.Toast("Member added", "", app.SeveritySuccess)
	assert.Equal(t, "✓ Member added\n", buf.String())
}

func TestCLIFormatterStatuses(t *testing.T) {
	c := NewCLIFormatter(&Formatter{ColorMode: ColorNever})

	assert.Equal(t, "urgent", c.CallStatus(model.CallUrgent))
	assert.Equal(t, "draft", c.SermonStatus(model.SermonDraft))
	assert.Equal(t, "pending", c.VisitStatus(model.VisitPending))
}

func TestPrintCallSheet(t *testing.T) {
	var buf bytes.Buffer
	c := NewCLIFormatter(&Formatter{Writer: &buf, ColorMode: ColorNever})

	t.Run("empty_sheet", func(t *testing.T) {
		buf.Reset()
		c.PrintCallSheet(nil, 0, 0)
		assert.Contains(t, buf.String(), "No members on the call sheet")
	})

	t.Run("with_entries", func(t *testing.T) {
		buf.Reset()
		m := model.NewMember("Mary Smith", time.Now())
		m.Phone = "555-0100"
		entries := []app.CallEntry{{
			Call:   &model.WeeklyCall{MemberID: m.ID, Status: model.CallUrgent},
			Member: m,
		}}
		c.PrintCallSheet(entries, 0, 1)
		out := buf.String()
		assert.Contains(t, out, "Mary Smith")
		assert.Contains(t, out, "urgent")
		assert.Contains(t, out, "0 of 1 calls done")
	})
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	c := NewCLIFormatter(&Formatter{Writer: &buf, ColorMode: ColorNever})

	c.PrintTable([]string{"NAME", "STATUS"}, []TableRow{
		{Columns: []string{"Mary", "todo"}},
		{Columns: []string{"John", "done"}},
	})

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Mary")
	assert.Contains(t, out, "John")
}

func TestTruncateCell(t *testing.T) {
	assert.Equal(t, "Mary", truncateCell("Mary", 10))
	assert.Equal(t, "Mary Eli…", truncateCell("Mary Elizabeth", 9))
	assert.Equal(t, "ab", truncateCell("ab", 1))
}

func TestPadCell(t *testing.T) {
	assert.Equal(t, "Mary    ", padCell("Mary", 8))
	assert.Equal(t, "Mary Elizabeth", padCell("Mary Elizabeth", 8))
}

func TestWidestColumn(t *testing.T) {
	assert.Equal(t, 1, widestColumn([]int{4, 12, 6}))
	assert.Equal(t, 0, widestColumn([]int{7, 7}))
}
