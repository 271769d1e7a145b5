// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/MKhiriev/webex-troubleshooter/internal/logger"
	"github.com/MKhiriev/webex-troubleshooter/internal/service"
	"github.com/MKhiriev/webex-troubleshooter/models"
)

// TUI is the line-oriented troubleshooting shell.
type TUI struct {
	troubleshoot service.ClientTroubleshootService

	in     *bufio.Reader
	term   *os.File
	out    io.Writer
	styles styles

	logger *logger.Logger
}

// New creates a shell reading operator input from in and writing to out.
// When in is a terminal the token prompt is masked.
func New(services *service.ClientServices, in io.Reader, out io.Writer, log *logger.Logger) (*TUI, error) {
	if services == nil || services.TroubleshootService == nil {
		return nil, ErrNoServices
	}
	if log == nil {
		log = logger.Nop()
	}

	t := &TUI{
		troubleshoot: services.TroubleshootService,
		in:           bufio.NewReader(in),
		out:          out,
		styles:       newStyles(out),
		logger:       log,
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t.term = f
	}

	return t, nil
}

// ReadToken asks for the access token until a non-blank one is entered.
// It returns io.EOF when input ends and [ErrUserQuit] when the masked prompt
// is aborted.
func (t *TUI) ReadToken(ctx context.Context) (models.Session, error) {
	for {
		raw, err := t.readTokenOnce(ctx)
		if err != nil {
			return models.Session{}, err
		}

		session := models.NewSession(raw)
		if !session.Empty() {
			t.logger.Debug().Msg("token entered")
			return session, nil
		}
		t.println(msgEmptyToken)
	}
}

func (t *TUI) readTokenOnce(ctx context.Context) (string, error) {
	if t.term == nil {
		return t.prompt(promptToken)
	}

	program := tea.NewProgram(newTokenModel(),
		tea.WithContext(ctx),
		tea.WithInput(t.term),
		tea.WithOutput(t.out),
	)
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("token prompt: %w", err)
	}

	m, ok := final.(tokenModel)
	if !ok || m.quit {
		return "", ErrUserQuit
	}
	return m.Value(), nil
}

// MainLoop renders the menu and dispatches choices until Exit is chosen or
// input ends. Operation failures are reported to the operator and never end
// the loop.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) error {
	for {
		t.print(renderMenu(t.styles))

		choice, err := t.prompt(promptOption)
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case "0":
			t.checkConnection(ctx, session)
		case "1":
			t.showProfile(ctx, session)
		case "2":
			t.showRooms(ctx, session)
		case "3":
			err = t.createRoom(ctx, session)
		case "4":
			err = t.sendMessage(ctx, session)
		case "5":
			t.println(msgExit)
			return nil
		default:
			t.println(msgInvalidOption)
		}

		if err != nil {
			return endOfInput(err)
		}
	}
}

func (t *TUI) checkConnection(ctx context.Context, session models.Session) {
	if _, err := t.troubleshoot.CheckConnection(ctx, session); err != nil {
		t.reportFailure(err, msgConnectionFailed)
		return
	}
	t.println(t.styles.success.Render(msgConnectionOK))
}

func (t *TUI) showProfile(ctx context.Context, session models.Session) {
	person, err := t.troubleshoot.Profile(ctx, session)
	if err != nil {
		t.reportFailure(err, msgUserFailed)
		return
	}
	t.print(renderProfile(t.styles, person))
}

func (t *TUI) showRooms(ctx context.Context, session models.Session) {
	rooms, err := t.troubleshoot.ListRooms(ctx, session)
	if err != nil {
		t.reportFailure(err, msgRoomsFailed)
		return
	}
	t.print(renderRoomList(t.styles, rooms))
}

func (t *TUI) createRoom(ctx context.Context, session models.Session) error {
	title, err := t.prompt(promptRoomTitle)
	if err != nil {
		return err
	}

	room, err := t.troubleshoot.CreateRoom(ctx, session, title)
	if err != nil {
		t.reportFailure(err, msgCreateRoomFailed)
		return nil
	}
	t.print(renderCreatedRoom(t.styles, room))
	return nil
}

func (t *TUI) sendMessage(ctx context.Context, session models.Session) error {
	rooms, err := t.troubleshoot.ListRooms(ctx, session)
	if err != nil {
		t.reportFailure(err, msgRoomsFailed)
		return nil
	}
	if len(rooms) == 0 {
		t.println(msgNoRoomsToMessage)
		return nil
	}
	t.print(renderRoomChoices(t.styles, rooms))

	choice, err := t.prompt(promptRoomChoice)
	if err != nil {
		return err
	}

	room, err := service.SelectRoom(rooms, choice)
	if err != nil {
		t.logger.Debug().Str("choice", choice).Msg("invalid room choice")
		t.println(msgInvalidRoomChoice)
		return nil
	}

	text, err := t.prompt(promptMessageText)
	if err != nil {
		return err
	}

	if err = t.troubleshoot.SendMessage(ctx, session, room.ID, text); err != nil {
		t.reportFailure(err, msgMessageFailed)
		return nil
	}
	t.println(t.styles.success.Render(msgMessageSent))
	return nil
}

// reportFailure prints the diagnostic line followed by the advisory.
func (t *TUI) reportFailure(err error, advisory string) {
	t.println(t.styles.error.Render("Error: " + err.Error()))
	t.println(advisory)
}

// prompt writes label and reads one line without its line terminator. A
// final line not ended by a newline is still returned.
func (t *TUI) prompt(label string) (string, error) {
	t.print(label)

	line, err := t.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (t *TUI) print(s string) {
	fmt.Fprint(t.out, s)
}

func (t *TUI) println(s string) {
	fmt.Fprintln(t.out, s)
}

// endOfInput turns a closed input stream into a normal end of the loop.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
