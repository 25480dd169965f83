package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/wippyai/msggen/schema"
)

var (
	headerCellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4"))
)

// layoutTable renders the field layout of one message or struct.
func layoutTable(fields []schema.Field, styled bool) string {
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		count, elem := "", ""
		if f.SizeField >= 0 {
			count = fields[f.SizeField].Name()
		}
		if arr, ok := f.Descriptor.(schema.ArrayDescriptor); ok {
			elem = strconv.FormatUint(uint64(arr.ElementSize()), 10)
		}
		rows = append(rows, []string{
			f.Name(),
			typeLabel(f),
			strconv.FormatUint(uint64(f.Offset), 10),
			strconv.FormatUint(uint64(f.WireSize()), 10),
			elem,
			count,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FIELD", "TYPE", "OFFSET", "SIZE", "ELEM", "COUNT").
		Rows(rows...)
	if styled {
		t = t.Border(lipgloss.RoundedBorder()).
			BorderStyle(borderStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerCellStyle
				}
				return cellStyle
			})
	}
	return t.Render()
}

func typeLabel(f schema.Field) string {
	switch d := f.Descriptor.(type) {
	case *schema.Struct:
		return "struct " + d.StructType().Name
	case *schema.StructArray:
		return "struct-array " + d.StructType().Name
	case *schema.ByteArray:
		return fmt.Sprintf("byte-array[%d]", d.Size())
	}
	return f.Kind().String()
}

// printLayout writes every struct and message layout. Colors and rounded
// borders are used only when styled is set.
func printLayout(w io.Writer, s *schema.Schema, styled bool) error {
	title := func(text string) string {
		if styled {
			return titleStyle.Render(text)
		}
		return text
	}

	fmt.Fprintf(w, "endian %s, strings %s\n\n", s.Endian, s.Encoding)
	for _, st := range s.Structs {
		fmt.Fprintf(w, "%s (size %d)\n", title("struct "+st.Name), st.Size)
		fmt.Fprintln(w, layoutTable(st.Fields, styled))
		fmt.Fprintln(w)
	}
	for _, m := range s.Messages {
		ro := ""
		if m.Readonly {
			ro = ", readonly"
		}
		fmt.Fprintf(w, "%s (header %d, fixed %d%s)\n", title(m.Name), m.HeaderSize, m.FixedSize, ro)
		if _, err := fmt.Fprintln(w, layoutTable(m.Fields, styled)); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}
