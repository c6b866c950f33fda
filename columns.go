package main

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type column interface {
	SetSize(width, height int)
	Update(msg tea.Msg) (column, tea.Cmd)
	View(styles styles, focused bool) string
	Title() string
	FocusValue() string
}

type listEntry struct {
	title   string
	desc    string
	payload any
}

func (e listEntry) Title() string       { return e.title }
func (e listEntry) Description() string { return e.desc }
func (e listEntry) FilterValue() string { return e.title }

type selectableColumn struct {
	title       string
	model       list.Model
	width       int
	height      int
	onSelect    func(entry listEntry) tea.Cmd
	onHighlight func(entry listEntry) tea.Cmd
}

func newSelectableColumn(title string, items []list.Item, width int, s styles, onSelect func(listEntry) tea.Cmd) *selectableColumn {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = s.listSel
	delegate.Styles.SelectedDesc = s.listSel.Copy().Faint(true)
	delegate.Styles.NormalTitle = s.listItem
	delegate.Styles.NormalDesc = s.listItem.Foreground(palette.textMuted)

	m := list.New(items, delegate, width, 20)
	m.Title = title
	m.SetShowStatusBar(false)
	m.SetFilteringEnabled(false)
	m.SetShowHelp(false)
	m.SetShowPagination(false)
	m.SetShowTitle(false)

	return &selectableColumn{
		title:    title,
		model:    m,
		width:    width,
		onSelect: onSelect,
	}
}

func (c *selectableColumn) SetItems(items []list.Item) {
	c.model.SetItems(items)
	if len(items) > 0 {
		c.model.Select(0)
	}
}

// SelectKey moves the cursor to the entry whose payload key matches,
// falling back to the first entry.
func (c *selectableColumn) SelectKey(key string, keyOf func(listEntry) string) {
	for idx, item := range c.model.Items() {
		if entry, ok := item.(listEntry); ok && keyOf(entry) == key {
			c.model.Select(idx)
			return
		}
	}
	if len(c.model.Items()) > 0 {
		c.model.Select(0)
	}
}

func (c *selectableColumn) SetHighlightFunc(fn func(listEntry) tea.Cmd) {
	c.onHighlight = fn
}

func (c *selectableColumn) SetSize(width, height int) {
	c.width = width
	if height < 3 {
		height = 3
	}
	c.height = height
	c.model.SetSize(width, height-2)
}

func (c *selectableColumn) Update(msg tea.Msg) (column, tea.Cmd) {
	prev := c.model.Index()
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "enter" && c.onSelect != nil {
			if item, ok := c.model.SelectedItem().(listEntry); ok {
				return c, c.onSelect(item)
			}
		}
	}
	var cmd tea.Cmd
	c.model, cmd = c.model.Update(msg)
	if c.model.Index() != prev && c.onHighlight != nil {
		if item, ok := c.model.SelectedItem().(listEntry); ok {
			if run := c.onHighlight(item); run != nil {
				if cmd != nil {
					return c, tea.Batch(cmd, run)
				}
				return c, run
			}
		}
	}
	return c, cmd
}

func (c *selectableColumn) View(s styles, focused bool) string {
	body := lipgloss.JoinVertical(lipgloss.Left, s.columnTitle.Render(c.title), c.model.View())
	if focused {
		return s.panelFocused.Width(c.width).Render(body)
	}
	return s.panel.Width(c.width).Render(body)
}

func (c *selectableColumn) Title() string {
	return c.title
}

func (c *selectableColumn) FocusValue() string {
	if item, ok := c.model.SelectedItem().(listEntry); ok {
		return item.title
	}
	return ""
}

// quotesTableColumn renders the saved-quote ledger. The visible columns
// depend on the manager unlock: locked sessions see date, category, issue
// and total only.
type quotesTableColumn struct {
	title       string
	table       table.Model
	width       int
	height      int
	quotes      []savedQuote
	managerView bool
	onDelete    func(savedQuote) tea.Cmd
}

func newQuotesTableColumn(title string) *quotesTableColumn {
	model := table.New(
		table.WithColumns(quoteTableColumns(false, 80)),
		table.WithFocused(true),
		table.WithHeight(8),
	)
	tStyles := table.DefaultStyles()
	tStyles.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.textMuted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(palette.border).
		Padding(0, 1)
	tStyles.Cell = lipgloss.NewStyle().
		Padding(0, 1)
	tStyles.Selected = lipgloss.NewStyle().
		Foreground(palette.text).
		Background(palette.selection).
		Padding(0, 1)
	model.SetStyles(tStyles)

	return &quotesTableColumn{
		title: title,
		table: model,
	}
}

func quoteTableColumns(managerView bool, width int) []table.Column {
	if managerView {
		issueWidth := width - 96
		if issueWidth < 18 {
			issueWidth = 18
		}
		return []table.Column{
			{Title: "Date", Width: 14},
			{Title: "Category", Width: 12},
			{Title: "Issue", Width: issueWidth},
			{Title: "Rate", Width: 8},
			{Title: "Hours", Width: 6},
			{Title: "Trip", Width: 7},
			{Title: "Parts", Width: 8},
			{Title: "Qty", Width: 5},
			{Title: "Mk%", Width: 6},
			{Title: "Tax%", Width: 6},
			{Title: "Total", Width: 10},
		}
	}
	issueWidth := width - 44
	if issueWidth < 20 {
		issueWidth = 20
	}
	return []table.Column{
		{Title: "Date", Width: 14},
		{Title: "Category", Width: 14},
		{Title: "Issue", Width: issueWidth},
		{Title: "Total", Width: 10},
	}
}

func (c *quotesTableColumn) SetOnDelete(fn func(savedQuote) tea.Cmd) {
	c.onDelete = fn
}

// SetRows rebuilds the table for the current ledger and view. The cursor
// snaps back to the newest entry.
func (c *quotesTableColumn) SetRows(quotes []savedQuote, managerView bool) {
	c.quotes = quotes
	c.managerView = managerView
	c.table.SetColumns(quoteTableColumns(managerView, c.width))

	rows := make([]table.Row, len(quotes))
	for i, q := range quotes {
		date := q.SavedAt.Format("Jan 2 15:04")
		issue := truncateCell(q.Issue, 60)
		if managerView {
			rows[i] = table.Row{
				date, q.Category, issue,
				formatAmount(q.LaborRate),
				formatAmount(q.LaborHours),
				formatAmount(q.TripFee),
				formatAmount(q.PartsCost),
				formatAmount(q.Quantity),
				formatAmount(q.MarkupPct),
				formatAmount(q.TaxPct),
				formatCurrency(q.Total),
			}
		} else {
			rows[i] = table.Row{date, q.Category, issue, formatCurrency(q.Total)}
		}
	}
	c.table.SetRows(rows)
	if len(rows) > 0 {
		c.table.SetCursor(0)
	}
}

func (c *quotesTableColumn) SelectedQuote() (savedQuote, bool) {
	if len(c.quotes) == 0 {
		return savedQuote{}, false
	}
	idx := c.table.Cursor()
	if idx < 0 || idx >= len(c.quotes) {
		return savedQuote{}, false
	}
	return c.quotes[idx], true
}

func (c *quotesTableColumn) SetSize(width, height int) {
	if width < 40 {
		width = 40
	}
	if height < 5 {
		height = 5
	}
	c.width = width
	c.height = height
	c.table.SetColumns(quoteTableColumns(c.managerView, width))
	c.table.SetHeight(height - 3)
}

func (c *quotesTableColumn) Update(msg tea.Msg) (column, tea.Cmd) {
	var cmds []tea.Cmd

	var cmd tea.Cmd
	c.table, cmd = c.table.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "d", "delete", "backspace":
			if q, ok := c.SelectedQuote(); ok && c.onDelete != nil {
				cmds = append(cmds, c.onDelete(q))
			}
		}
	}

	return c, tea.Batch(cmds...)
}

func (c *quotesTableColumn) View(s styles, focused bool) string {
	title := c.title
	if !c.managerView {
		title += " (totals only)"
	}
	body := lipgloss.JoinVertical(lipgloss.Left, s.columnTitle.Render(title), c.table.View())
	if focused {
		return s.panelFocused.Width(c.width).Render(body)
	}
	return s.panel.Width(c.width).Render(body)
}

func (c *quotesTableColumn) Title() string {
	return c.title
}

func (c *quotesTableColumn) FocusValue() string {
	if q, ok := c.SelectedQuote(); ok {
		return quoteSummary(q)
	}
	return ""
}

func truncateCell(value string, width int) string {
	if width <= 1 || len(value) <= width {
		return value
	}
	runes := []rune(value)
	if len(runes) <= width {
		return value
	}
	return string(runes[:width-1]) + "…"
}
