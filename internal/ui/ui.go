package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/backstage/internal/directory"
	"github.com/desertthunder/backstage/internal/models"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ChartView ViewState = iota
	CatalogView
	SimilarView
)

// Model represents the TUI application state.
type Model struct {
	ctx            context.Context
	view           ViewState
	engine         *directory.Engine
	width          int
	height         int
	chartList      list.Model
	trackList      list.Model
	similarList    list.Model
	selectedArtist *models.ArtistProfile
	err            error
	help           help.Model
	keys           keyMap
}

type chartFetchedMsg struct {
	listing []models.PublicProfile
}

type catalogFetchedMsg struct {
	artist *models.ArtistProfile
	tracks []models.CatalogTrack
	err    error
}

type similarFetchedMsg struct {
	artist  *models.ArtistProfile
	results []models.SimilarityResult
	err     error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, engine *directory.Engine) *Model {
	return &Model{
		ctx:    ctx,
		view:   ChartView,
		engine: engine,
		help:   help.New(),
		keys:   newKeyMap(),
	}
}

// Init initializes the TUI by fetching the popularity chart.
func (m *Model) Init() tea.Cmd {
	return m.fetchChart()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.chartList.Width() == 0 {
			m.chartList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.trackList.Width() == 0 {
			m.trackList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.similarList.Width() == 0 {
			m.similarList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case ChartView:
			return m.handleChartKeys(msg)
		case CatalogView, SimilarView:
			return m.handleDetailKeys(msg)
		}

	case chartFetchedMsg:
		items := make([]list.Item, len(msg.listing))
		for i, artist := range msg.listing {
			items[i] = artistItem{artist: artist}
		}
		m.chartList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.chartList.Title = "Popularity Chart"
		m.chartList.SetSize(m.width-4, m.height-8)
		return m, nil

	case catalogFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = ChartView
			return m, nil
		}
		m.selectedArtist = msg.artist
		items := make([]list.Item, len(msg.tracks))
		for i, track := range msg.tracks {
			items[i] = trackItem{track: track}
		}
		m.trackList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.trackList.Title = fmt.Sprintf("Catalog of '%s'", msg.artist.Name)
		m.trackList.SetSize(m.width-4, m.height-8)
		m.view = CatalogView
		return m, nil

	case similarFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = ChartView
			return m, nil
		}
		m.selectedArtist = msg.artist
		items := make([]list.Item, len(msg.results))
		for i, result := range msg.results {
			items[i] = similarItem{result: result}
		}
		m.similarList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.similarList.Title = fmt.Sprintf("Artists similar to '%s'", msg.artist.Name)
		m.similarList.SetSize(m.width-4, m.height-8)
		m.view = SimilarView
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case ChartView:
		return m.renderChart()
	case CatalogView:
		return m.renderCatalog()
	case SimilarView:
		return m.renderSimilar()
	default:
		return ""
	}
}

func (m *Model) handleChartKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if item, ok := m.chartList.SelectedItem().(artistItem); ok {
			return m, m.fetchCatalog(item.artist.ID)
		}
	case "s":
		if item, ok := m.chartList.SelectedItem().(artistItem); ok {
			return m, m.fetchSimilar(item.artist.ID)
		}
	}

	var cmd tea.Cmd
	m.chartList, cmd = m.chartList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = ChartView
		return m, nil
	case "s":
		if m.view == CatalogView && m.selectedArtist != nil {
			return m, m.fetchSimilar(m.selectedArtist.ID)
		}
	}

	return m.updateLists(msg)
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ChartView:
		m.chartList, cmd = m.chartList.Update(msg)
	case CatalogView:
		m.trackList, cmd = m.trackList.Update(msg)
	case SimilarView:
		m.similarList, cmd = m.similarList.Update(msg)
	}
	return m, cmd
}

func (m *Model) fetchChart() tea.Cmd {
	return func() tea.Msg {
		return chartFetchedMsg{listing: m.engine.List(m.ctx, 0)}
	}
}

func (m *Model) fetchCatalog(id string) tea.Cmd {
	return func() tea.Msg {
		artist, _, err := m.engine.Get(m.ctx, id)
		if err != nil {
			return catalogFetchedMsg{err: err}
		}
		return catalogFetchedMsg{artist: artist, tracks: directory.GenerateCatalog(artist)}
	}
}

func (m *Model) fetchSimilar(id string) tea.Cmd {
	return func() tea.Msg {
		artist, _, err := m.engine.Get(m.ctx, id)
		if err != nil {
			return similarFetchedMsg{err: err}
		}

		results, err := m.engine.Similar(m.ctx, id, 0)
		if err != nil {
			return similarFetchedMsg{err: err}
		}
		return similarFetchedMsg{artist: artist, results: results}
	}
}

func (m *Model) renderChart() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.similar, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.chartList.View(), helpView)
}

func (m *Model) renderCatalog() string {
	helpKeys := []key.Binding{m.keys.similar, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.trackList.View(), helpView)
}

func (m *Model) renderSimilar() string {
	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.similarList.View(), helpView)
}
