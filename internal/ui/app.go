// Package ui is the terminal front end of the board. It only renders
// snapshots and forwards user actions to the store; every rule lives in the
// core packages.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rafaelcosta/taskboard/internal/board"
	"github.com/rafaelcosta/taskboard/internal/domain"
	"github.com/rafaelcosta/taskboard/internal/store"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Advance  key.Binding
	Retreat  key.Binding
	Search   key.Binding
	ClearMsg key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "cartão acima")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "cartão abaixo")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "coluna anterior")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "próxima coluna")),
		Advance:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "avançar cartão")),
		Retreat:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "voltar cartão")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "buscar")),
		ClearMsg: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "limpar")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "ajuda")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "sair")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Advance, k.Retreat, k.Search, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Advance, k.Retreat, k.Search},
		{k.ClearMsg, k.Help, k.Quit},
	}
}

// Model is the top-level bubbletea model for the board view.
type Model struct {
	store *store.Store
	user  domain.TeamMember

	board     BoardModel
	filters   board.Filters
	search    textinput.Model
	searching bool

	keys   keyMap
	help   help.Model
	styles Styles

	message string
	isError bool

	width  int
	height int
}

func NewModel(s *store.Store, user domain.TeamMember) Model {
	search := textinput.New()
	search.Placeholder = "buscar por título, descrição ou label"
	search.CharLimit = 80

	m := Model{
		store:  s,
		user:   user,
		board:  NewBoardModel(DefaultStyles()),
		search: search,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: DefaultStyles(),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) refresh() {
	cards := m.store.Cards()
	var visible []domain.Card
	for i := range cards {
		if board.MatchCard(&cards[i], m.filters, board.SprintAll) {
			visible = append(visible, cards[i])
		}
	}
	m.board.SetCards(visible)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			m.board.MoveUp()
		case key.Matches(msg, m.keys.Down):
			m.board.MoveDown()
		case key.Matches(msg, m.keys.Left):
			m.board.MoveLeft()
		case key.Matches(msg, m.keys.Right):
			m.board.MoveRight()
		case key.Matches(msg, m.keys.Advance):
			m.moveSelected(+1)
		case key.Matches(msg, m.keys.Retreat):
			m.moveSelected(-1)
		case key.Matches(msg, m.keys.Search):
			m.searching = true
			m.search.Focus()
			return m, textinput.Blink
		case key.Matches(msg, m.keys.ClearMsg):
			m.message = ""
			m.filters.SearchText = ""
			m.search.SetValue("")
			m.refresh()
		}
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		if msg.String() == "esc" {
			m.search.SetValue("")
		}
		m.filters.SearchText = m.search.Value()
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.filters.SearchText = m.search.Value()
	m.refresh()
	return m, cmd
}

// moveSelected shifts the selected card one stage forward or back through the
// workflow, surfacing the permission engine's verdict in the footer.
func (m *Model) moveSelected(delta int) {
	card := m.board.SelectedCard()
	if card == nil {
		return
	}
	target, ok := adjacentStatus(card.Status, delta)
	if !ok {
		return
	}
	moved, err := m.store.MoveCard(card.ID, target, m.user)
	if err != nil {
		m.message = err.Error()
		m.isError = true
		return
	}
	m.message = fmt.Sprintf("Cartão #%d movido para %s", moved.CardNumber, moved.Status.DisplayName())
	m.isError = false
	m.refresh()
}

func adjacentStatus(s domain.Status, delta int) (domain.Status, bool) {
	for i, status := range domain.AllStatuses {
		if status == s {
			j := i + delta
			if j < 0 || j >= len(domain.AllStatuses) {
				return "", false
			}
			return domain.AllStatuses[j], true
		}
	}
	return "", false
}

func (m Model) View() string {
	header := fmt.Sprintf("Taskboard — %s (%s) — %d cartões",
		m.user.Name, m.user.Role, m.board.TotalCount())

	boardHeight := m.height - 6
	if boardHeight < 8 {
		boardHeight = 8
	}
	boardView := m.board.View(m.width, boardHeight)

	var footer string
	switch {
	case m.searching:
		footer = m.search.View()
	case m.message != "":
		if m.isError {
			footer = m.styles.ErrorMsg.Render(m.message)
		} else {
			footer = m.styles.Footer.Render(m.message)
		}
	default:
		footer = m.styles.Footer.Render(m.capacityLine())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		boardView,
		footer,
		m.help.View(m.keys),
	)
}

// capacityLine summarizes the active sprint's point budget.
func (m Model) capacityLine() string {
	sprint, ok := m.store.ActiveSprint()
	if !ok {
		return "Nenhuma sprint ativa"
	}
	allocated := 0
	for _, c := range m.store.SprintCards(sprint.Name) {
		allocated += c.StoryPoints
	}
	return fmt.Sprintf("%s: %d/%d pontos alocados (%d pts/dev)",
		sprint.Name, allocated, sprint.Capacity, sprint.StoryPointsPerDeveloper)
}
