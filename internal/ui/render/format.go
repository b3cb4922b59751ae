package render

import (
	"fmt"
	"strings"
	"time"

	statepkg "github.com/kk-code-lab/filex/internal/state"
)

// Column identifies one column of the file listing.
type Column int

const (
	ColumnName Column = iota
	ColumnType
	ColumnSize
	ColumnCreated
)

var defaultColumns = []Column{ColumnName, ColumnType, ColumnSize, ColumnCreated}

var columnNames = map[string]Column{
	"name":    ColumnName,
	"type":    ColumnType,
	"size":    ColumnSize,
	"created": ColumnCreated,
}

// ParseColumns maps configured column names to Columns. Unknown names are
// skipped; an empty or entirely unknown list yields the default layout.
func ParseColumns(names []string) []Column {
	if len(names) == 0 {
		return defaultColumns
	}
	var cols []Column
	for _, name := range names {
		if c, ok := columnNames[strings.ToLower(strings.TrimSpace(name))]; ok {
			cols = append(cols, c)
		}
	}
	if len(cols) == 0 {
		return defaultColumns
	}
	return cols
}

// Title returns the column header label.
func (c Column) Title() string {
	switch c {
	case ColumnName:
		return "Name"
	case ColumnType:
		return "Type"
	case ColumnSize:
		return "Size"
	case ColumnCreated:
		return "Created"
	default:
		return ""
	}
}

// Width returns the fixed display width of the column.
func (c Column) Width() int {
	switch c {
	case ColumnName:
		return 40
	case ColumnType:
		return 10
	case ColumnSize:
		return 12
	case ColumnCreated:
		return 22
	default:
		return 0
	}
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006 03:04 pm")
}

func columnText(entry statepkg.FileEntry, c Column) string {
	switch c {
	case ColumnName:
		return entry.Name
	case ColumnType:
		return entry.Kind.String()
	case ColumnSize:
		// Only regular files carry a size.
		if !entry.IsFile() {
			return ""
		}
		return formatSize(entry.Size)
	case ColumnCreated:
		return formatTimestamp(entry.Modified)
	default:
		return ""
	}
}

// formatPosition renders the cursor position as "04/17", zero-padding the
// numerator to the denominator's width.
func formatPosition(cursor, total int) string {
	if total == 0 {
		return "0/0"
	}
	width := len(fmt.Sprintf("%d", total))
	return fmt.Sprintf("%0*d/%d", width, cursor+1, total)
}

func formatStatusLine(state *statepkg.AppState) string {
	var b strings.Builder
	b.WriteString("   ")
	b.WriteString(formatPosition(state.Cursor, len(state.Files)))
	if n := state.SelectedCount(); n > 0 {
		fmt.Fprintf(&b, "   %d sel", n)
	}
	if state.Message != nil && state.Message.Text != "" {
		b.WriteString("   ")
		b.WriteString(state.Message.Text)
	}
	return b.String()
}
