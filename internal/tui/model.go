package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"inkwell/internal/model"
	"inkwell/internal/prompt"
	"inkwell/internal/stats"
	"inkwell/internal/store"
)

type mode int

const (
	modeList mode = iota
	modeNewStory
	modeEdit
)

type styleSet struct {
	title    lipgloss.Style
	selected lipgloss.Style
	dim      lipgloss.Style
	body     lipgloss.Style
	footer   lipgloss.Style
	warning  lipgloss.Style
}

func newStyles(darkMode bool) styleSet {
	accent := lipgloss.Color("#C89A3A")
	body := lipgloss.Color("#2E2E2E")
	dim := lipgloss.Color("#8C8C8C")
	if darkMode {
		body = lipgloss.Color("#F0F0F0")
		dim = lipgloss.Color("#6E6E6E")
	}
	return styleSet{
		title:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		selected: lipgloss.NewStyle().Foreground(accent),
		dim:      lipgloss.NewStyle().Foreground(dim),
		body:     lipgloss.NewStyle().Foreground(body),
		footer:   lipgloss.NewStyle().Foreground(dim),
		warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")),
	}
}

// Model implements the Bubble Tea writing UI. All state changes go through
// the store; the model only renders what the store returns.
type Model struct {
	store   *store.Store
	styles  styleSet
	prompts []string
	gen     *prompt.Generator

	currentPrompt string

	width  int
	height int

	mode   mode
	cursor int

	titleInput textinput.Model
	paraInput  textarea.Model

	editingID int64
	// Word count of the edited story when the session started; used to
	// compute the words added when the session ends.
	sessionBaseWords int

	status string
}

// NewModel constructs the writing TUI model. The prompts are shown when
// starting a new story; nil falls back to the built-in set.
func NewModel(st *store.Store, prompts []string) *Model {
	prefs := st.Preferences()

	ti := textinput.New()
	ti.Placeholder = "Story title"
	ti.CharLimit = 120

	ta := textarea.New()
	ta.Placeholder = "Write a paragraph, ctrl+s to keep it"
	ta.ShowLineNumbers = false

	return &Model{
		store:      st,
		styles:     newStyles(prefs.DarkMode),
		prompts:    prompts,
		gen:        prompt.New(),
		titleInput: ti,
		paraInput:  ta,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.paraInput.SetWidth(m.contentWidth())
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeList:
			return m.updateList(msg)
		case modeNewStory:
			return m.updateNewStory(msg)
		case modeEdit:
			return m.updateEdit(msg)
		}
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	stories := m.store.Stories()
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(stories)-1 {
			m.cursor++
		}
	case "n":
		m.mode = modeNewStory
		m.currentPrompt = m.gen.Pick(m.prompts)
		m.titleInput.SetValue("")
		m.titleInput.Focus()
	case "d":
		if m.cursor < len(stories) {
			m.noteErr(m.store.DeleteStory(stories[m.cursor].ID))
			if m.cursor > 0 {
				m.cursor--
			}
		}
	case "enter":
		if m.cursor < len(stories) {
			m.openEditor(stories[m.cursor])
		}
	}
	return m, nil
}

func (m *Model) updateNewStory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = modeList
		m.titleInput.Blur()
		return m, nil
	case "enter":
		title := strings.TrimSpace(m.titleInput.Value())
		if title == "" {
			return m, nil
		}
		story, err := m.store.CreateStory(model.Story{Title: title, Status: "drafting"})
		m.noteErr(err)
		m.titleInput.Blur()
		m.openEditor(story)
		return m, nil
	}
	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

func (m *Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.closeEditor()
		return m, nil
	case "ctrl+s":
		m.commitParagraph()
		return m, nil
	case "ctrl+g":
		m.toggleSession()
		return m, nil
	}
	var cmd tea.Cmd
	m.paraInput, cmd = m.paraInput.Update(msg)
	return m, cmd
}

func (m *Model) openEditor(story model.Story) {
	m.noteErr(m.store.SetCurrentStory(&story))
	m.editingID = story.ID
	m.mode = modeEdit
	m.paraInput.Reset()
	m.paraInput.SetWidth(m.contentWidth())
	m.paraInput.Focus()
}

func (m *Model) closeEditor() {
	m.paraInput.Blur()
	m.noteErr(m.store.SetCurrentStory(nil))
	m.mode = modeList
}

func (m *Model) commitParagraph() {
	content := strings.TrimRight(m.paraInput.Value(), "\n")
	if strings.TrimSpace(content) == "" {
		return
	}
	m.noteErr(m.store.AddParagraph(m.editingID, content))
	m.paraInput.Reset()
	if m.store.Session() != nil {
		m.noteErr(m.store.UpdateSessionProgress(m.store.StoryWordCount(m.editingID)))
	}
}

func (m *Model) toggleSession() {
	sess := m.store.Session()
	if sess == nil {
		m.sessionBaseWords = m.store.StoryWordCount(m.editingID)
		goal := m.store.Preferences().SessionGoal
		m.noteErr(m.store.StartWritingSession(m.editingID, goal))
		// Progress deltas are relative to the previous call, so anchor the
		// counter at the story's current size.
		m.noteErr(m.store.UpdateSessionProgress(m.sessionBaseWords))
		m.status = fmt.Sprintf("session started, goal %d words", goal)
		return
	}
	added := m.store.StoryWordCount(m.editingID) - m.sessionBaseWords
	if added < 0 {
		added = 0
	}
	m.noteErr(m.store.EndWritingSession(added, ""))
	m.status = fmt.Sprintf("session ended, %d words added", added)
}

// noteErr surfaces persistence warnings in the status line. The store has
// already applied the change in memory.
func (m *Model) noteErr(err error) {
	if err != nil {
		m.status = err.Error()
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch m.mode {
	case modeList:
		body = m.viewList()
	case modeNewStory:
		body = m.viewNewStory()
	case modeEdit:
		body = m.viewEdit()
	}
	footer := m.renderFooter()
	if m.status != "" {
		footer = m.styles.warning.Render(m.status) + "\n" + footer
	}
	return body + "\n\n" + footer
}

func (m *Model) viewList() string {
	stories := m.store.Stories()
	var b strings.Builder
	b.WriteString(m.styles.title.Render("inkwell"))
	b.WriteString("\n\n")
	if len(stories) == 0 {
		b.WriteString(m.styles.dim.Render("No stories yet. Press n to start one."))
		return b.String()
	}
	for i, story := range stories {
		line := fmt.Sprintf("%s  %s", story.Title, m.styles.dim.Render(storyMeta(story, m.store.StoryWordCount(story.ID))))
		if i == m.cursor {
			line = m.styles.selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func storyMeta(story model.Story, words int) string {
	status := story.Status
	if status == "" {
		status = "draft"
	}
	return fmt.Sprintf("[%s, %d words]", status, words)
}

func (m *Model) viewNewStory() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("New story"))
	b.WriteString("\n\n")
	if m.currentPrompt != "" {
		b.WriteString(m.styles.dim.Render(wrapText("Prompt: "+m.currentPrompt, m.contentWidth())))
		b.WriteString("\n\n")
	}
	b.WriteString(m.titleInput.View())
	return b.String()
}

func (m *Model) viewEdit() string {
	story, ok := m.store.Story(m.editingID)
	if !ok {
		return m.styles.warning.Render("story is gone")
	}
	width := m.contentWidth()
	var b strings.Builder
	b.WriteString(m.styles.title.Render(story.Title))
	b.WriteString("\n\n")
	for _, p := range story.Paragraphs {
		b.WriteString(m.styles.body.Render(wrapText(p.Content, width)))
		b.WriteString("\n\n")
	}
	b.WriteString(m.paraInput.View())
	return b.String()
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 72
	}
	width := int(float64(m.width) * 0.8)
	if width < 20 {
		width = 20
	}
	return width
}

func (m *Model) renderFooter() string {
	var segments []string
	switch m.mode {
	case modeList:
		segments = append(segments, "n new", "enter open", "d delete", "q quit")
	case modeNewStory:
		segments = append(segments, "enter create", "esc cancel")
	case modeEdit:
		segments = append(segments, "ctrl+s keep paragraph", "ctrl+g session", "esc back")
		if m.store.Preferences().ShowWordCount {
			segments = append(segments, fmt.Sprintf("%d words", m.store.StoryWordCount(m.editingID)))
		}
		if sess := m.store.Session(); sess != nil {
			progress := stats.GoalProgress(sess.WordCount-m.sessionBaseWords, sess.SessionGoal)
			segments = append(segments, fmt.Sprintf("goal %s %d%%", stats.ProgressBar(progress, 10), int(progress*100)))
		}
	}
	if a := m.store.Analytics(); a.StreakDays > 0 && m.mode == modeList {
		segments = append(segments, fmt.Sprintf("streak %dd", a.StreakDays))
	}
	return m.styles.footer.Render(strings.Join(segments, "  ·  "))
}
