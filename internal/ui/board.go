package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rafaelcosta/taskboard/internal/board"
	"github.com/rafaelcosta/taskboard/internal/domain"
)

// BoardModel renders the workflow columns and tracks which card the user is
// on. One column per stage, with a sliding window when the terminal is too
// narrow for all eleven.
type BoardModel struct {
	columns     []board.Column
	focusedCol  int
	selectedRow []int
	colOffset   int
	styles      Styles
}

func NewBoardModel(styles Styles) BoardModel {
	cols := board.DefaultColumns()
	return BoardModel{
		columns:     cols,
		selectedRow: make([]int, len(cols)),
		styles:      styles,
	}
}

// SetCards repartitions the (already filtered) cards into columns and clamps
// the per-column selection.
func (b *BoardModel) SetCards(cards []domain.Card) {
	b.columns = board.GroupByStatus(board.DefaultColumns(), cards)
	for i := range b.columns {
		if b.selectedRow[i] >= len(b.columns[i].Cards) {
			if n := len(b.columns[i].Cards); n > 0 {
				b.selectedRow[i] = n - 1
			} else {
				b.selectedRow[i] = 0
			}
		}
	}
}

func (b *BoardModel) MoveDown() {
	if n := len(b.columns[b.focusedCol].Cards); n > 0 && b.selectedRow[b.focusedCol] < n-1 {
		b.selectedRow[b.focusedCol]++
	}
}

func (b *BoardModel) MoveUp() {
	if b.selectedRow[b.focusedCol] > 0 {
		b.selectedRow[b.focusedCol]--
	}
}

func (b *BoardModel) MoveRight() {
	if b.focusedCol < len(b.columns)-1 {
		b.focusedCol++
	}
}

func (b *BoardModel) MoveLeft() {
	if b.focusedCol > 0 {
		b.focusedCol--
	}
}

// SelectedCard returns the card under the cursor, or nil.
func (b *BoardModel) SelectedCard() *domain.Card {
	col := b.columns[b.focusedCol]
	row := b.selectedRow[b.focusedCol]
	if len(col.Cards) > 0 && row < len(col.Cards) {
		return &col.Cards[row]
	}
	return nil
}

// TotalCount returns how many cards the board currently shows.
func (b *BoardModel) TotalCount() int {
	total := 0
	for _, col := range b.columns {
		total += len(col.Cards)
	}
	return total
}

// View renders the visible window of columns.
func (b *BoardModel) View(width, height int) string {
	colWidth := 26
	visible := width / (colWidth + 2)
	if visible < 1 {
		visible = 1
	}
	if visible > len(b.columns) {
		visible = len(b.columns)
	}

	// Slide the window so the focused column stays in view.
	if b.focusedCol < b.colOffset {
		b.colOffset = b.focusedCol
	}
	if b.focusedCol >= b.colOffset+visible {
		b.colOffset = b.focusedCol - visible + 1
	}

	colHeight := height - 3
	if colHeight < 5 {
		colHeight = 5
	}

	var rendered []string
	for i := b.colOffset; i < b.colOffset+visible && i < len(b.columns); i++ {
		rendered = append(rendered, b.renderColumn(i, colWidth, colHeight))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (b *BoardModel) renderColumn(idx, colWidth, colHeight int) string {
	col := b.columns[idx]
	focused := idx == b.focusedCol

	headerStyle := b.styles.Header
	borderStyle := b.styles.ColumnBorder
	if focused {
		headerStyle = b.styles.FocusedHeader
		borderStyle = b.styles.FocusedBorder
	}
	header := headerStyle.Width(colWidth).Render(
		fmt.Sprintf("%s (%d)", col.Title, len(col.Cards)))

	// Two lines per card inside the column body.
	visibleRows := (colHeight - 2) / 2
	if visibleRows < 1 {
		visibleRows = 1
	}
	sel := b.selectedRow[idx]
	start := 0
	if sel >= visibleRows {
		start = sel - visibleRows + 1
	}
	end := start + visibleRows
	if end > len(col.Cards) {
		end = len(col.Cards)
	}

	var rows []string
	for row := start; row < end; row++ {
		card := col.Cards[row]
		line1 := fmt.Sprintf("%s #%d %s",
			issueIcon(string(card.IssueType)),
			card.CardNumber,
			priorityIcon(string(card.Priority)))
		title := card.Title
		if len([]rune(title)) > colWidth-2 {
			title = string([]rune(title)[:colWidth-3]) + "…"
		}
		entry := b.styles.CardMeta.Render(line1) + "\n" + b.styles.CardTitle.Render(title)
		if focused && row == sel {
			entry = b.styles.SelectedCard.Width(colWidth).Render(entry)
		}
		rows = append(rows, entry)
	}
	if len(col.Cards) > visibleRows {
		rows = append(rows, b.styles.ScrollHint.Width(colWidth).Render(
			fmt.Sprintf("↕ %d/%d", sel+1, len(col.Cards))))
	}

	body := borderStyle.Width(colWidth).Height(colHeight).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.JoinVertical(lipgloss.Center, header, body)
}
