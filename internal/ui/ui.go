package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/octopus-synapse/techcatalog/internal/catalog"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	AreaListView ViewState = iota
	NicheListView
	SkillListView
	LanguageListView
)

// Model represents the TUI application state.
type Model struct {
	view         ViewState
	queries      *catalog.Queries
	width        int
	height       int
	areaList     list.Model
	nicheList    list.Model
	skillList    list.Model
	languageList list.Model
	selectedArea *catalog.AreaView
	err          error
	help         help.Model
	keys         keyMap
}

type areasFetchedMsg struct {
	areas []catalog.AreaView
	err   error
}

type nichesFetchedMsg struct {
	area   catalog.AreaView
	niches []catalog.NicheView
	err    error
}

type skillsFetchedMsg struct {
	niche  catalog.NicheView
	skills []catalog.SkillView
	err    error
}

type languagesFetchedMsg struct {
	languages []catalog.LanguageView
	err       error
}

// NewModel creates a new TUI model reading from the provided query layer.
func NewModel(queries *catalog.Queries) *Model {
	return &Model{
		view:    AreaListView,
		queries: queries,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init initializes the TUI by fetching the area listing.
func (m *Model) Init() tea.Cmd {
	return m.fetchAreas()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, l := range []*list.Model{&m.areaList, &m.nicheList, &m.skillList, &m.languageList} {
			if l.Width() == 0 {
				l.SetSize(msg.Width-4, msg.Height-8)
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case areasFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		items := make([]list.Item, len(msg.areas))
		for i, area := range msg.areas {
			items[i] = areaItem{area: area}
		}
		m.areaList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.areaList.Title = "Tech Areas"
		m.areaList.SetSize(m.width-4, m.height-8)
		return m, nil

	case nichesFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = AreaListView
			return m, nil
		}
		m.selectedArea = &msg.area
		items := make([]list.Item, len(msg.niches))
		for i, niche := range msg.niches {
			items[i] = nicheItem{niche: niche}
		}
		m.nicheList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.nicheList.Title = fmt.Sprintf("Niches in %s", msg.area.NameEn)
		m.nicheList.SetSize(m.width-4, m.height-8)
		m.view = NicheListView
		return m, nil

	case skillsFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = NicheListView
			return m, nil
		}
		items := make([]list.Item, len(msg.skills))
		for i, skill := range msg.skills {
			items[i] = skillItem{skill: skill}
		}
		m.skillList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.skillList.Title = fmt.Sprintf("Skills in %s", msg.niche.NameEn)
		m.skillList.SetSize(m.width-4, m.height-8)
		m.view = SkillListView
		return m, nil

	case languagesFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = AreaListView
			return m, nil
		}
		items := make([]list.Item, len(msg.languages))
		for i, lang := range msg.languages {
			items[i] = languageItem{language: lang}
		}
		m.languageList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.languageList.Title = "Programming Languages"
		m.languageList.SetSize(m.width-4, m.height-8)
		m.view = LanguageListView
		return m, nil
	}

	return m.updateLists(msg)
}

// handleKeys routes key presses by the active view.
func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.quit) {
		return m, tea.Quit
	}

	switch m.view {
	case AreaListView:
		if key.Matches(msg, m.keys.languages) {
			return m, m.fetchLanguages()
		}
		if key.Matches(msg, m.keys.enter) {
			if item, ok := m.areaList.SelectedItem().(areaItem); ok {
				return m, m.fetchNiches(item.area)
			}
		}
	case NicheListView:
		if key.Matches(msg, m.keys.back) {
			m.view = AreaListView
			return m, nil
		}
		if key.Matches(msg, m.keys.enter) {
			if item, ok := m.nicheList.SelectedItem().(nicheItem); ok {
				return m, m.fetchSkills(item.niche)
			}
		}
	case SkillListView:
		if key.Matches(msg, m.keys.back) {
			m.view = NicheListView
			return m, nil
		}
	case LanguageListView:
		if key.Matches(msg, m.keys.back) {
			m.view = AreaListView
			return m, nil
		}
	}

	return m.updateLists(msg)
}

// updateLists forwards messages to the list owning the active view.
func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case AreaListView:
		m.areaList, cmd = m.areaList.Update(msg)
	case NicheListView:
		m.nicheList, cmd = m.nicheList.Update(msg)
	case SkillListView:
		m.skillList, cmd = m.skillList.Update(msg)
	case LanguageListView:
		m.languageList, cmd = m.languageList.Update(msg)
	}
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	var body string
	switch m.view {
	case AreaListView:
		body = m.areaList.View()
	case NicheListView:
		body = m.nicheList.View()
	case SkillListView:
		body = m.skillList.View()
	case LanguageListView:
		body = m.languageList.View()
	}

	return body + "\n" + m.help.View(m.keys)
}

func (m *Model) fetchAreas() tea.Cmd {
	return func() tea.Msg {
		areas, err := m.queries.ListAreas()
		return areasFetchedMsg{areas: areas, err: err}
	}
}

func (m *Model) fetchNiches(area catalog.AreaView) tea.Cmd {
	return func() tea.Msg {
		niches, err := m.queries.ListNichesByArea(area.Type)
		return nichesFetchedMsg{area: area, niches: niches, err: err}
	}
}

func (m *Model) fetchSkills(niche catalog.NicheView) tea.Cmd {
	return func() tea.Msg {
		skills, err := m.queries.ListSkillsByNiche(niche.Slug)
		return skillsFetchedMsg{niche: niche, skills: skills, err: err}
	}
}

func (m *Model) fetchLanguages() tea.Cmd {
	return func() tea.Msg {
		languages, err := m.queries.ListLanguages()
		return languagesFetchedMsg{languages: languages, err: err}
	}
}
