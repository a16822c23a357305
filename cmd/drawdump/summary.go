package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/go-theft-auto/imcore"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	textStyle   = cellStyle.Foreground(lipgloss.Color("3"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderSummary formats dd as terminal tables.
func renderSummary(dd *imcore.DrawData, withCmds bool) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("display %gx%g  lists %d  cmds %d  vtx %d  idx %d",
		dd.DisplaySize.X, dd.DisplaySize.Y, len(dd.CmdLists), dd.CmdCount(), dd.TotalVtxCount, dd.TotalIdxCount)))
	b.WriteByte('\n')
	b.WriteString(newTable([]string{"list", "cmds", "vtx", "idx", "text runs"}, listRows(dd), nil).Render())
	if withCmds {
		b.WriteByte('\n')
		rows := cmdRows(dd)
		b.WriteString(newTable([]string{"list", "cmd", "elems", "tex", "clip", "text"}, rows, func(row int) bool {
			return rows[row][5] != ""
		}).Render())
	}
	return b.String()
}

func newTable(headers []string, rows [][]string, highlight func(row int) bool) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case highlight != nil && highlight(row):
				return textStyle
			}
			return cellStyle
		})
}

func listRows(dd *imcore.DrawData) [][]string {
	rows := make([][]string, 0, len(dd.CmdLists))
	for i, dl := range dd.CmdLists {
		runs := 0
		for _, c := range dl.CmdBuffer {
			if c.Text != nil {
				runs++
			}
		}
		rows = append(rows, []string{
			fmt.Sprint(i), fmt.Sprint(len(dl.CmdBuffer)), fmt.Sprint(len(dl.VtxBuffer)),
			fmt.Sprint(len(dl.IdxBuffer)), fmt.Sprint(runs),
		})
	}
	return rows
}

func cmdRows(dd *imcore.DrawData) [][]string {
	var rows [][]string
	for i, dl := range dd.CmdLists {
		for j, c := range dl.CmdBuffer {
			text := ""
			if c.Text != nil {
				text = fmt.Sprintf("%q", c.Text.Text)
			}
			rows = append(rows, []string{
				fmt.Sprint(i), fmt.Sprint(j), fmt.Sprint(c.ElemCount), fmt.Sprint(c.TextureID),
				fmt.Sprintf("%g,%g %g,%g", c.ClipRect[0], c.ClipRect[1], c.ClipRect[2], c.ClipRect[3]),
				text,
			})
		}
	}
	return rows
}
