package textcmd

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/user/cultivation-life/internal/interfaces"
	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxChoices = 9

// Interpreter maps slash commands onto the game's command surface and
// answers with formatted text.
type Interpreter struct {
	game      interfaces.Game
	formatter *MessageFormatter
	Logger    *zap.Logger
}

// NewInterpreter creates a new interpreter for the game
func NewInterpreter(game interfaces.Game) *Interpreter {
	return &Interpreter{
		game:      game,
		formatter: NewMessageFormatter(),
		Logger:    zap.NewNop(),
	}
}

// Process handles one command and returns the reply
func (in *Interpreter) Process(command string) string {
	// Clean and normalize command
	command = cleanCommand(command)

	if !strings.HasPrefix(command, "/") {
		return "Commands must start with '/'. Type /help to see the available commands."
	}
	command = strings.TrimPrefix(command, "/")

	in.Logger.Debug("Processing command", zap.String("command", command))

	switch command {
	case "help", "?":
		return in.formatter.FormatHelp()
	case "start", "begin":
		return in.handleStart()
	case "restart":
		in.game.Reset()
		return in.formatter.FormatWelcome()
	case "continue", "next":
		return in.handleContinue()
	case "status":
		return in.handleStatus()
	case "history":
		return in.handleHistory()
	}

	if index, ok := parseChoice(command); ok {
		return in.handleChoice(index)
	}

	return "Unknown command. Type /help to see the available commands."
}

func (in *Interpreter) handleStart() string {
	snap := in.game.Snapshot()
	if snap.Started() && !snap.IsGameOver {
		return "You are already on the path. Type /status to look at yourself or /restart to start over."
	}

	event := in.game.Begin()
	return in.formatter.FormatEvent(event, in.game.Snapshot())
}

func (in *Interpreter) handleContinue() string {
	snap := in.game.Snapshot()
	switch {
	case !snap.Started():
		return "You have not started yet. Type /start to begin."
	case snap.IsGameOver:
		return in.formatter.FormatEnding(snap)
	case !snap.ShowResultScreen:
		return "Nothing to continue. " + in.formatter.FormatEvent(snap.CurrentEvent, snap)
	}

	event := in.game.Advance()
	return in.formatter.FormatEvent(event, in.game.Snapshot())
}

func (in *Interpreter) handleStatus() string {
	snap := in.game.Snapshot()
	if !snap.Started() {
		return "You have not started yet. Type /start to begin."
	}
	return in.formatter.FormatStatus(snap)
}

func (in *Interpreter) handleHistory() string {
	return in.formatter.FormatHistory(in.game.Snapshot())
}

func (in *Interpreter) handleChoice(index int) string {
	snap := in.game.Snapshot()
	switch {
	case !snap.Started():
		return "You have not started yet. Type /start to begin."
	case snap.IsGameOver:
		return in.formatter.FormatEnding(snap)
	case snap.ShowResultScreen:
		return "Type /continue first."
	}

	if !in.game.Choose(index) {
		choices := len(snap.CurrentEvent.Choices)
		if choices == 0 {
			return "There is nothing to choose here."
		}
		return fmt.Sprintf("That choice does not exist. Pick between /a and /%c.", 'a'+choices-1)
	}

	snap = in.game.Snapshot()
	if snap.IsGameOver {
		return in.formatter.FormatEnding(snap)
	}
	return in.formatter.FormatResult(snap.PendingResult)
}

// parseChoice accepts a letter a-i or a digit 1-9 and returns the zero-based
// choice index
func parseChoice(command string) (int, bool) {
	if len(command) != 1 {
		return 0, false
	}
	if c := command[0]; c >= 'a' && c < 'a'+maxChoices {
		return int(c - 'a'), true
	}
	if n, err := strconv.Atoi(command); err == nil && n >= 1 && n <= maxChoices {
		return n - 1, true
	}
	return 0, false
}

// cleanCommand normalizes and cleans a command string
func cleanCommand(command string) string {
	// Convert to lowercase and remove extra whitespace
	command = strings.ToLower(strings.TrimSpace(command))

	// Group chats prefix commands with "/ "
	if strings.HasPrefix(command, "/ ") {
		command = "/" + strings.TrimSpace(strings.TrimPrefix(command, "/ "))
	}

	// Remove accents
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), command)
	if err != nil {
		return command
	}
	return stripped
}
