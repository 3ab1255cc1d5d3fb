package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/Veraticus/grocer/internal/inventory"
	"github.com/Veraticus/grocer/internal/model"
	"github.com/Veraticus/grocer/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Menu choices.
const (
	ChoiceAdd     = 1
	ChoiceRemove  = 2
	ChoiceDisplay = 3
	ChoiceExit    = 4
)

// Menu text.
const (
	MenuText = "1. Add Item\n2. Remove Item\n3. Display Inventory\n4. Exit"

	MsgItemAdded      = "Item added to inventory."
	MsgItemRemoved    = "Item removed from inventory."
	MsgItemNotFound   = "Item not found in inventory."
	MsgInvalidChoice  = "Invalid choice."
	MsgExiting        = "Exiting the program."
	MsgInvalidNumber  = "Please enter a valid number."
	MsgInvalidPrice   = "Please enter a valid price."
	promptChoice      = "Enter your choice:"
	promptName        = "Enter item name:"
	promptPrice       = "Enter item price:"
	promptQuantity    = "Enter item quantity:"
	promptCategory    = "Enter item category:"
	sessionIDLogField = "session_id"
)

// Menu runs the interactive add/remove/display loop over an inventory.
type Menu struct {
	writer    io.Writer
	reader    *LineReader
	inventory service.Inventory
	validator *inventory.Validator
	formatter inventory.PriceFormatter
	logger    *slog.Logger
}

// NewMenu creates a menu reading from reader and writing to writer.
func NewMenu(reader io.Reader, writer io.Writer, inv service.Inventory, formatter inventory.PriceFormatter) *Menu {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Menu{
		reader:    NewLineReader(reader),
		writer:    writer,
		inventory: inv,
		validator: inventory.NewValidator(),
		formatter: formatter,
		logger:    slog.Default().With(sessionIDLogField, uuid.NewString()),
	}
}

// Run shows the menu until the user exits or input ends.
// Bad input is reported and re-prompted; only inventory failures and
// cancellation end the session with an error.
func (m *Menu) Run(ctx context.Context) error {
	m.logger.Debug("menu session started")

	for {
		choice, err := m.readNumber(ctx, MenuText+"\n"+promptChoice, MsgInvalidNumber)
		if err != nil {
			return m.finish(err)
		}

		exit, err := m.dispatch(ctx, choice)
		if err != nil {
			return m.finish(err)
		}
		if exit {
			m.logger.Debug("menu session ended")
			return nil
		}

		m.println("")
	}
}

func (m *Menu) dispatch(ctx context.Context, choice int) (bool, error) {
	switch choice {
	case ChoiceAdd:
		return false, m.addItem(ctx)
	case ChoiceRemove:
		return false, m.removeItem(ctx)
	case ChoiceDisplay:
		return false, inventory.Display(ctx, m.writer, m.inventory, m.formatter)
	case ChoiceExit:
		m.println(MsgExiting)
		return true, nil
	default:
		m.println(Styled(ToneError, MsgInvalidChoice))
		return false, nil
	}
}

func (m *Menu) addItem(ctx context.Context) error {
	name, err := m.readLine(ctx, promptName)
	if err != nil {
		return err
	}

	price, err := m.readPrice(ctx)
	if err != nil {
		return err
	}

	quantity, err := m.readNumber(ctx, promptQuantity, MsgInvalidNumber)
	if err != nil {
		return err
	}

	category, err := m.readLine(ctx, promptCategory)
	if err != nil {
		return err
	}

	item := model.InventoryItem{
		Name:     name,
		Price:    price,
		Quantity: quantity,
		Category: category,
	}

	if err := m.validator.Validate(item); err != nil {
		var validationErr *inventory.ValidationError
		if !errors.As(err, &validationErr) {
			return err
		}
		m.logger.Debug("rejected item", "field", validationErr.Field, "name", item.Name)
		m.println(Styled(ToneWarning, validationErr.Message))
		return nil
	}

	if err := m.inventory.AddItem(ctx, item); err != nil {
		return fmt.Errorf("failed to add item: %w", err)
	}

	m.logger.Info("item added", "name", item.Name, "category", item.Category)
	m.println(Styled(ToneSuccess, MsgItemAdded))
	return nil
}

func (m *Menu) removeItem(ctx context.Context) error {
	name, err := m.readLine(ctx, promptName)
	if err != nil {
		return err
	}

	category, err := m.readLine(ctx, promptCategory)
	if err != nil {
		return err
	}

	item, err := m.inventory.FindItem(ctx, name, category)
	if err != nil {
		return fmt.Errorf("failed to find item: %w", err)
	}
	if item == nil {
		m.println(Styled(ToneError, MsgItemNotFound))
		return nil
	}

	if err := m.inventory.RemoveItem(ctx, *item); err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}

	m.logger.Info("item removed", "name", item.Name, "category", item.Category)
	m.println(Styled(ToneSuccess, MsgItemRemoved))
	return nil
}

func (m *Menu) readLine(ctx context.Context, prompt string) (string, error) {
	m.println(Styled(TonePrompt, prompt))
	return m.reader.ReadLine(ctx)
}

// readNumber prompts until the input parses as an integer.
func (m *Menu) readNumber(ctx context.Context, prompt, retryMessage string) (int, error) {
	for {
		input, err := m.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(input)
		if err == nil {
			return n, nil
		}

		m.logger.Debug("rejected number", "input", input)
		m.println(Styled(ToneError, retryMessage))
	}
}

// readPrice prompts until the input parses as a decimal.
func (m *Menu) readPrice(ctx context.Context) (decimal.Decimal, error) {
	for {
		input, err := m.readLine(ctx, promptPrice)
		if err != nil {
			return decimal.Zero, err
		}

		price, err := decimal.NewFromString(input)
		if err == nil {
			return price, nil
		}

		m.logger.Debug("rejected price", "input", input)
		m.println(Styled(ToneError, MsgInvalidPrice))
	}
}

// finish maps the error that ended the loop to Run's result.
func (m *Menu) finish(err error) error {
	if errors.Is(err, io.EOF) {
		m.logger.Debug("input ended, closing menu")
		return nil
	}
	m.logger.Debug("menu stopped", "error", err)
	return err
}

func (m *Menu) println(text string) {
	if _, err := fmt.Fprintln(m.writer, text); err != nil {
		m.logger.Warn("Failed to write output", "error", err)
	}
}
