package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/paradigm/internal/model"
)

// Simple delegate for scanned file list items.
type fileDelegate struct{}

func (d fileDelegate) Height() int  { return 1 }
func (d fileDelegate) Spacing() int { return 0 }
func (d fileDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d fileDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()

	// Four count columns of width 4 plus spacing.
	width := lm.Width() - 24

	var pathStyle, countStyle lipgloss.Style

	if isSelected {
		pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(4).
			Align(lipgloss.Right)
	} else {
		pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(4).
			Align(lipgloss.Right)
	}

	line := fmt.Sprintf("%s %s %s %s  %s",
		countStyle.Render(fmt.Sprintf("%d", file.counts.Classes)),
		countStyle.Render(fmt.Sprintf("%d", file.counts.Methods)),
		countStyle.Render(fmt.Sprintf("%d", file.counts.Functions)),
		countStyle.Render(fmt.Sprintf("%d", file.counts.Arrows)),
		pathStyle.Render(truncateToWidth(file.path, width)),
	)
	_, _ = fmt.Fprint(w, line)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// scanModel drives the interactive scan view: a spinner and progress bar
// while files stream in, then the summary with a browsable per-file list.
type scanModel struct {
	width    int
	height   int
	spin     spinner.Model
	bar      progress.Model
	fileList list.Model

	dir      string
	excludes []string
	found    int
	scanned  int

	report m.Report
	done   bool
}

func newScanModel() scanModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	bar := progress.New(progress.WithDefaultGradient())

	fileList := list.New([]list.Item{}, fileDelegate{}, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path…"

	return scanModel{
		spin:     spin,
		bar:      bar,
		fileList: fileList,
	}
}

func (sm scanModel) Init() tea.Cmd {
	return sm.spin.Tick
}

func (sm scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.width = msg.Width
		sm.height = msg.Height
		sm.fileList.SetWidth(sm.width)
		sm.bar.Width = sm.width - 8

	case spinner.TickMsg:
		if sm.done {
			return sm, nil
		}

		sm.spin, cmd = sm.spin.Update(msg)

		return sm, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return sm, tea.Quit
		default:
			if !sm.done {
				return sm, nil
			}

			var newList list.Model

			newList, cmd = sm.fileList.Update(msg)
			sm.fileList = newList

			return sm, cmd
		}

	case scanStartedMsg:
		sm.dir = msg.dir
		sm.excludes = msg.excludes

	case filesFoundMsg:
		sm.found = msg.count

	case fileScannedMsg:
		sm.scanned++
		sm.fileList.InsertItem(len(sm.fileList.Items()), fileItem{
			path:   string(msg.file.Path),
			counts: msg.file.Counts,
		})

	case summaryMsg:
		sm = sm.handleSummaryMsg(msg)
	}

	return sm, cmd
}

func (sm scanModel) handleSummaryMsg(msg summaryMsg) scanModel {
	sm.report = msg.report
	sm.done = true

	items := make([]list.Item, 0, len(msg.files))
	for _, file := range msg.files {
		items = append(items, fileItem{path: string(file.Path), counts: file.Counts})
	}

	sm.fileList.SetItems(items)

	return sm
}

func (sm scanModel) View() string {
	if !sm.done {
		return sm.scanningView()
	}

	return sm.summaryView()
}

func (sm scanModel) scanningView() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	title := titleStyle.Render("🔍 Paradigm Scan")
	status := statusStyle.Render(fmt.Sprintf("%s Scanning %s", sm.spin.View(), sm.dir))

	pct := 0.0
	if sm.found > 0 {
		pct = float64(sm.scanned) / float64(sm.found)
	}

	barStyle := lipgloss.NewStyle().Padding(0, 0, 1, 2)
	bar := barStyle.Render(fmt.Sprintf("%s %d/%d", sm.bar.ViewAs(pct), sm.scanned, sm.found))

	return lipgloss.JoinVertical(lipgloss.Left, title, status, bar)
}

func (sm scanModel) summaryView() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan

	title := titleStyle.Render("🔍 Paradigm Scan")

	summary := summaryStyle.Render(fmt.Sprintf(
		"OOP: %s   FP: %s   Ratio (OOP:FP): %s   Files: %s",
		accentStyle.Render(fmt.Sprintf("%d", sm.report.OOP.Total)),
		accentStyle.Render(fmt.Sprintf("%d", sm.report.FP.Total)),
		accentStyle.Render(sm.report.RatioDisplay()+":1"),
		accentStyle.Render(fmt.Sprintf("%d", sm.report.Files)),
	))

	table := sm.renderTable()

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(sm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		table,
		footer,
	)
}

func (sm scanModel) renderTable() string {
	listHeight := sm.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := sm.width - 6

	sm.fileList.SetHeight(listHeight)
	sm.fileList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%4s %4s %4s %4s  %s", "Cls", "Mth", "Fn", "Arw", "File Path"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			sm.fileList.View(),
		),
	)
}
