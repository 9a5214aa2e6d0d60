package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/user/cultivation-life/internal/interfaces"
	"github.com/user/cultivation-life/internal/textcmd"
	"go.uber.org/zap"
)

// CommandRequest is the body of a text command
type CommandRequest struct {
	Command string `json:"command"`
}

// CommandResponse carries the formatted reply to a text command
type CommandResponse struct {
	Reply string `json:"reply"`
}

// ErrorResponse is returned with every non-2xx status
type ErrorResponse struct {
	Error string `json:"error"`
}

// GameHandler exposes the game's read and command surfaces over HTTP
type GameHandler struct {
	game        interfaces.Game
	interpreter *textcmd.Interpreter
	logger      *zap.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(game interfaces.Game, logger *zap.Logger) *GameHandler {
	interpreter := textcmd.NewInterpreter(game)
	interpreter.Logger = logger.Named("textcmd")

	return &GameHandler{
		game:        game,
		interpreter: interpreter,
		logger:      logger,
	}
}

// Routes registers the game endpoints on the router
func (h *GameHandler) Routes(r chi.Router) {
	r.Get("/state", h.State)
	r.Post("/begin", h.Begin)
	r.Post("/advance", h.Advance)
	r.Post("/reset", h.Reset)
	r.Post("/choices/{index}", h.Choose)
	r.Post("/command", h.Command)
}

// State returns the current snapshot
func (h *GameHandler) State(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.game.Snapshot())
}

// Begin starts a new playthrough
func (h *GameHandler) Begin(w http.ResponseWriter, r *http.Request) {
	h.game.Begin()
	h.writeJSON(w, r, http.StatusOK, h.game.Snapshot())
}

// Advance dismisses the result screen. Calling it without a pending result
// leaves the game unchanged.
func (h *GameHandler) Advance(w http.ResponseWriter, r *http.Request) {
	h.game.Advance()
	h.writeJSON(w, r, http.StatusOK, h.game.Snapshot())
}

// Reset returns the game to the welcome screen
func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.game.Reset()
	h.writeJSON(w, r, http.StatusOK, h.game.Snapshot())
}

// Choose resolves a choice of the current event
func (h *GameHandler) Choose(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.logger.Warn("Invalid choice index",
			zap.String("path", r.URL.Path),
			zap.Error(err))
		h.writeJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: "choice index must be an integer"})
		return
	}

	if !h.game.Choose(index) {
		h.writeJSON(w, r, http.StatusConflict, ErrorResponse{Error: "choice ignored"})
		return
	}

	h.writeJSON(w, r, http.StatusOK, h.game.Snapshot())
}

// Command runs a slash command through the text interpreter
func (h *GameHandler) Command(w http.ResponseWriter, r *http.Request) {
	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid command body", zap.Error(err))
		h.writeJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: "expected JSON with a 'command' field"})
		return
	}
	if req.Command == "" {
		h.writeJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: "command cannot be empty"})
		return
	}

	h.writeJSON(w, r, http.StatusOK, CommandResponse{Reply: h.interpreter.Process(req.Command)})
}

func (h *GameHandler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Error encoding response",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
}
