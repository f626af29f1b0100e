// Package menu implements the interactive, numbered text menu of notebook.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/notebook/pkg/core"
)

// Menu choices.
const (
	ChoiceShow   = "1"
	ChoiceAdd    = "2"
	ChoiceEdit   = "3"
	ChoiceDelete = "4"
	ChoiceExit   = "5"
)

// User-facing messages.
const (
	NoNotesMessage   = "No notes."
	AddedMessage     = "Note added."
	EditedMessage    = "Note edited."
	DeletedMessage   = "Note deleted."
	NotFoundMessage  = "Note not found."
	InvalidIDMessage = "Invalid note ID: please enter a positive whole number."
	InvalidChoice    = "Invalid choice. Please try again."
	ReadOnlyMessage  = "The notebook is read-only; changes are disabled."
)

const (
	header         = "===== Notes ====="
	choicePrompt   = "Choose an action (1-5): "
	titlePrompt    = "Enter note title: "
	bodyPrompt     = "Enter note text: "
	newTitlePrompt = "Enter new note title: "
	newBodyPrompt  = "Enter new note text: "
	editIDPrompt   = "Enter the ID of the note to edit: "
	deleteIDPrompt = "Enter the ID of the note to delete: "
)

// maxLineSize bounds a single answer; bufio's default of 64 KiB is too small
// for pasted note text.
const maxLineSize = 4 << 20

var menuItems = []string{
	ChoiceShow + ". Show notes",
	ChoiceAdd + ". Add note",
	ChoiceEdit + ". Edit note",
	ChoiceDelete + ". Delete note",
	ChoiceExit + ". Exit",
}

type styles struct {
	header  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

// newStyles binds the styles to out, so colours are dropped automatically
// when out is not a terminal.
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Menu is the interactive front end over a core.Store.
type Menu struct {
	store  *core.Store
	in     *bufio.Scanner
	out    io.Writer
	styles styles
}

// New creates a Menu reading answers from in and writing to out.
func New(store *core.Store, in io.Reader, out io.Writer) *Menu {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	return &Menu{
		store:  store,
		in:     scanner,
		out:    out,
		styles: newStyles(out),
	}
}

// Run shows the menu until the user picks Exit or input ends.
// Store failures are reported to the user and the loop continues; only
// input or output errors end Run with a non-nil error.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.displayMenu()
		choice, err := m.prompt(choicePrompt)
		if err != nil {
			return ignoreEOF(err)
		}

		switch strings.TrimSpace(choice) {
		case ChoiceShow:
			err = m.showNotes(ctx)
		case ChoiceAdd:
			err = m.addNote(ctx)
		case ChoiceEdit:
			err = m.editNote(ctx)
		case ChoiceDelete:
			err = m.deleteNote(ctx)
		case ChoiceExit:
			return nil
		default:
			m.fail(InvalidChoice)
		}
		if err != nil {
			return ignoreEOF(err)
		}

		fmt.Fprintln(m.out)
	}
}

func (m *Menu) displayMenu() {
	fmt.Fprintln(m.out, m.styles.header.Render(header))
	for _, item := range menuItems {
		fmt.Fprintln(m.out, item)
	}
}

func (m *Menu) showNotes(ctx context.Context) error {
	return WriteNotes(m.out, m.store.List(ctx), FormatText)
}

func (m *Menu) addNote(ctx context.Context) error {
	title, err := m.prompt(titlePrompt)
	if err != nil {
		return err
	}
	body, err := m.prompt(bodyPrompt)
	if err != nil {
		return err
	}

	n, err := m.store.Add(ctx, title, body)
	if err != nil {
		m.report(err)
		return nil
	}
	m.succeed(fmt.Sprintf("%s (ID %d)", AddedMessage, n.ID))
	return nil
}

func (m *Menu) editNote(ctx context.Context) error {
	id, ok, err := m.promptID(editIDPrompt)
	if err != nil || !ok {
		return err
	}
	title, err := m.prompt(newTitlePrompt)
	if err != nil {
		return err
	}
	body, err := m.prompt(newBodyPrompt)
	if err != nil {
		return err
	}

	if _, err := m.store.Edit(ctx, id, title, body); err != nil {
		m.report(err)
		return nil
	}
	m.succeed(EditedMessage)
	return nil
}

func (m *Menu) deleteNote(ctx context.Context) error {
	id, ok, err := m.promptID(deleteIDPrompt)
	if err != nil || !ok {
		return err
	}

	if err := m.store.Delete(ctx, id); err != nil {
		m.report(err)
		return nil
	}
	m.succeed(DeletedMessage)
	return nil
}

// prompt writes label and returns the next input line without its newline.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(m.in.Text(), "\r"), nil
}

// promptID asks for a note ID. Invalid input is reported to the user and
// yields ok == false.
func (m *Menu) promptID(label string) (id int, ok bool, err error) {
	line, err := m.prompt(label)
	if err != nil {
		return 0, false, err
	}
	id, err = core.ParseID(line)
	if err != nil {
		m.fail(InvalidIDMessage)
		return 0, false, nil
	}
	return id, true, nil
}

// report turns a store error into a user message.
func (m *Menu) report(err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		m.fail(NotFoundMessage)
	case errors.Is(err, core.ErrReadOnly):
		m.fail(ReadOnlyMessage)
	case errors.Is(err, core.ErrInvalidID):
		m.fail(InvalidIDMessage)
	default:
		m.fail(fmt.Sprintf("Error: %v", err))
	}
}

func (m *Menu) succeed(msg string) {
	fmt.Fprintln(m.out, m.styles.success.Render(msg))
}

func (m *Menu) fail(msg string) {
	fmt.Fprintln(m.out, m.styles.failure.Render(msg))
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
