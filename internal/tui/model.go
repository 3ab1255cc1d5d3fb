package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Veraticus/grocer/internal/cli"
	"github.com/Veraticus/grocer/internal/inventory"
	"github.com/Veraticus/grocer/internal/model"
	"github.com/Veraticus/grocer/internal/service"
	"github.com/Veraticus/grocer/internal/tui/themes"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Screen represents the view currently shown.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenAdd
	ScreenRemove
	ScreenReport
)

var menuItems = []string{"Add Item", "Remove Item", "Display Inventory", "Exit"}

var (
	addFields    = []string{"Name", "Price", "Quantity", "Category"}
	removeFields = []string{"Name", "Category"}
)

// Field positions on the add form.
const (
	fieldName = iota
	fieldPrice
	fieldQuantity
	fieldCategory
)

// Model holds the TUI state.
type Model struct {
	ctx        context.Context
	err        error
	inventory  service.Inventory
	formatter  inventory.PriceFormatter
	validator  *inventory.Validator
	logger     *slog.Logger
	theme      themes.Theme
	keymap     KeyMap
	help       help.Model
	status     string
	labels     []string
	report     []string
	inputs     []textinput.Model
	cursor     int
	focus      int
	width      int
	height     int
	screen     Screen
	statusTone cli.Tone
	quitting   bool
	// pending is set while an inventory command is in flight.
	pending bool
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, cfg Config) Model {
	h := help.New()
	h.Width = cfg.Width

	return Model{
		ctx:       ctx,
		inventory: cfg.Inventory,
		formatter: cfg.Formatter,
		validator: inventory.NewValidator(),
		logger:    slog.Default().With("session_id", uuid.NewString()),
		theme:     cfg.Theme,
		keymap:    DefaultKeyMap(),
		help:      h,
		width:     cfg.Width,
		height:    cfg.Height,
		screen:    ScreenMenu,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Err returns the inventory failure that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Screen returns the screen currently shown.
func (m Model) Screen() Screen {
	return m.screen
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case itemAddedMsg:
		return m.handleItemAdded(msg)

	case itemRemovedMsg:
		return m.handleItemRemoved(msg)

	case reportLoadedMsg:
		if msg.err != nil {
			return m.fail(fmt.Errorf("failed to load inventory: %w", msg.err))
		}
		m.pending = false
		m.report = msg.lines
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.pending {
			return m, nil
		}
	}

	switch m.screen {
	case ScreenMenu:
		return m.updateMenu(msg)
	case ScreenAdd, ScreenRemove:
		return m.updateForm(msg)
	case ScreenReport:
		return m.updateReport(msg)
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keymap.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keymap.Select):
		return m.choose(m.cursor + 1)
	case key.Matches(keyMsg, m.keymap.Quit):
		return m.choose(cli.ChoiceExit)
	case keyMsg.Type == tea.KeyRunes:
		choice, err := strconv.Atoi(string(keyMsg.Runes))
		if err != nil {
			m.setStatus(cli.ToneError, cli.MsgInvalidNumber)
			return m, nil
		}
		return m.choose(choice)
	}

	return m, nil
}

// choose acts on a numbered menu choice.
func (m Model) choose(choice int) (tea.Model, tea.Cmd) {
	m.setStatus(cli.TonePlain, "")

	switch choice {
	case cli.ChoiceAdd:
		cmd := m.openForm(ScreenAdd, addFields)
		return m, cmd
	case cli.ChoiceRemove:
		cmd := m.openForm(ScreenRemove, removeFields)
		return m, cmd
	case cli.ChoiceDisplay:
		m.screen = ScreenReport
		m.report = nil
		m.pending = true
		return m, m.loadReport()
	case cli.ChoiceExit:
		m.setStatus(cli.ToneInfo, cli.MsgExiting)
		m.quitting = true
		return m, tea.Quit
	default:
		m.setStatus(cli.ToneError, cli.MsgInvalidChoice)
		return m, nil
	}
}

func (m *Model) openForm(screen Screen, labels []string) tea.Cmd {
	m.screen = screen
	m.labels = labels
	m.inputs = make([]textinput.Model, len(labels))
	for i, label := range labels {
		input := textinput.New()
		input.Prompt = ""
		input.Placeholder = strings.ToLower(label)
		input.Cursor.SetMode(cursor.CursorStatic)
		m.inputs[i] = input
	}
	return m.setFocus(0)
}

// setFocus focuses input i, wrapping around the form.
func (m *Model) setFocus(i int) tea.Cmd {
	n := len(m.inputs)
	m.focus = (i%n + n) % n

	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
			continue
		}
		m.inputs[j].Blur()
	}
	return cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keymap.Back):
			m.backToMenu()
			return m, nil
		case key.Matches(keyMsg, m.keymap.Select):
			if m.focus == len(m.inputs)-1 {
				return m.submit()
			}
			cmd := m.setFocus(m.focus + 1)
			return m, cmd
		case key.Matches(keyMsg, m.keymap.Next):
			cmd := m.setFocus(m.focus + 1)
			return m, cmd
		case key.Matches(keyMsg, m.keymap.Prev):
			cmd := m.setFocus(m.focus - 1)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	values := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		values[i] = strings.TrimSpace(input.Value())
	}

	if m.screen == ScreenRemove {
		m.pending = true
		return m, m.removeItem(values[0], values[1])
	}

	price, err := decimal.NewFromString(values[fieldPrice])
	if err != nil {
		m.setStatus(cli.ToneError, cli.MsgInvalidPrice)
		cmd := m.setFocus(fieldPrice)
		return m, cmd
	}

	quantity, err := strconv.Atoi(values[fieldQuantity])
	if err != nil {
		m.setStatus(cli.ToneError, cli.MsgInvalidNumber)
		cmd := m.setFocus(fieldQuantity)
		return m, cmd
	}

	item := model.InventoryItem{
		Name:     values[fieldName],
		Price:    price,
		Quantity: quantity,
		Category: values[fieldCategory],
	}

	if err := m.validator.Validate(item); err != nil {
		var validationErr *inventory.ValidationError
		if !errors.As(err, &validationErr) {
			return m.fail(err)
		}
		m.logger.Debug("rejected item", "field", validationErr.Field, "name", item.Name)
		m.setStatus(cli.ToneWarning, validationErr.Message)
		return m, nil
	}

	m.pending = true
	return m, m.addItem(item)
}

func (m Model) updateReport(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, m.keymap.Back) || key.Matches(keyMsg, m.keymap.Quit) || key.Matches(keyMsg, m.keymap.Select) {
		m.backToMenu()
	}
	return m, nil
}

func (m Model) handleItemAdded(msg itemAddedMsg) (tea.Model, tea.Cmd) {
	m.pending = false
	if msg.err != nil {
		return m.fail(fmt.Errorf("failed to add item: %w", msg.err))
	}

	m.logger.Info("item added", "name", msg.item.Name, "category", msg.item.Category)
	m.backToMenu()
	m.setStatus(cli.ToneSuccess, cli.MsgItemAdded)
	return m, nil
}

func (m Model) handleItemRemoved(msg itemRemovedMsg) (tea.Model, tea.Cmd) {
	m.pending = false
	if msg.err != nil {
		return m.fail(fmt.Errorf("failed to remove item: %w", msg.err))
	}

	m.backToMenu()
	if !msg.found {
		m.setStatus(cli.ToneError, cli.MsgItemNotFound)
		return m, nil
	}

	m.logger.Info("item removed", "name", msg.item.Name, "category", msg.item.Category)
	m.setStatus(cli.ToneSuccess, cli.MsgItemRemoved)
	return m, nil
}

// fail ends the session on an inventory failure.
func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.logger.Error("inventory operation failed", "error", err)
	m.err = err
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) backToMenu() {
	m.screen = ScreenMenu
	m.inputs = nil
	m.labels = nil
	m.focus = 0
}

func (m *Model) setStatus(tone cli.Tone, text string) {
	m.statusTone = tone
	m.status = text
}
