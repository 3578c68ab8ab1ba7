package v1alpha1

import (
	"net/http"

	"github.com/KirkDiggler/forge-api/internal/errors"
	"github.com/KirkDiggler/forge-api/internal/orchestrators/dice"
)

// DiceHandlerConfig holds dependencies for the dice handler
type DiceHandlerConfig struct {
	DiceService dice.Service
}

// Validate ensures all required dependencies are present
func (c *DiceHandlerConfig) Validate() error {
	if c.DiceService == nil {
		return errors.InvalidArgument("dice service is required")
	}
	return nil
}

// DiceHandler serves the playtest dice routes
type DiceHandler struct {
	diceService dice.Service
}

// NewDiceHandler creates a new dice handler with the given configuration
func NewDiceHandler(cfg *DiceHandlerConfig) (*DiceHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &DiceHandler{
		diceService: cfg.DiceService,
	}, nil
}

// Register mounts the dice routes on mux
func (h *DiceHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1alpha1/dice/rolls", h.Roll)
	mux.HandleFunc("POST /v1alpha1/dice/items/{id}/attributes", h.RollItemAttributes)
	mux.HandleFunc("GET /v1alpha1/dice/rolls/{entity}/{context}", h.GetSession)
	mux.HandleFunc("DELETE /v1alpha1/dice/rolls/{entity}/{context}", h.ClearSession)
}

// RollRequestJSON is the wire form of a roll request
type RollRequestJSON struct {
	EntityID    string `json:"entity_id"`
	Context     string `json:"context"`
	Notation    string `json:"notation"`
	Description string `json:"description,omitempty"`
	Modifier    int32  `json:"modifier,omitempty"`
}

// RollResponseJSON is the wire form of a roll response
type RollResponseJSON struct {
	Roll    DiceRollJSON     `json:"roll"`
	Session *DiceSessionJSON `json:"session"`
}

// Roll handles POST /v1alpha1/dice/rolls
func (h *DiceHandler) Roll(w http.ResponseWriter, r *http.Request) {
	var body RollRequestJSON
	if err := decodeJSON(r, &body); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	output, err := h.diceService.RollDice(r.Context(), &dice.RollDiceInput{
		EntityID:    body.EntityID,
		Context:     body.Context,
		Notation:    body.Notation,
		Description: body.Description,
		Modifier:    body.Modifier,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, RollResponseJSON{
		Roll:    diceRollToJSON(output.Roll),
		Session: diceSessionToJSON(output.Session),
	})
}

// RollAttributesResponseJSON is the wire form of an item playtest response
type RollAttributesResponseJSON struct {
	Rolls   []DiceRollJSON   `json:"rolls"`
	Session *DiceSessionJSON `json:"session"`
}

// RollItemAttributes handles POST /v1alpha1/dice/items/{id}/attributes
func (h *DiceHandler) RollItemAttributes(w http.ResponseWriter, r *http.Request) {
	output, err := h.diceService.RollItemAttributes(r.Context(), &dice.RollItemAttributesInput{
		ItemID: r.PathValue("id"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	resp := RollAttributesResponseJSON{
		Rolls:   []DiceRollJSON{},
		Session: diceSessionToJSON(output.Session),
	}
	for _, roll := range output.Rolls {
		resp.Rolls = append(resp.Rolls, diceRollToJSON(roll))
	}

	writeJSON(w, http.StatusCreated, resp)
}

// GetSession handles GET /v1alpha1/dice/rolls/{entity}/{context}
func (h *DiceHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	output, err := h.diceService.GetRollSession(r.Context(), &dice.GetRollSessionInput{
		EntityID: r.PathValue("entity"),
		Context:  r.PathValue("context"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, diceSessionToJSON(output.Session))
}

// ClearSessionResponseJSON is the wire form of a session clear response
type ClearSessionResponseJSON struct {
	RollsDeleted int32 `json:"rolls_deleted"`
}

// ClearSession handles DELETE /v1alpha1/dice/rolls/{entity}/{context}
func (h *DiceHandler) ClearSession(w http.ResponseWriter, r *http.Request) {
	output, err := h.diceService.ClearRollSession(r.Context(), &dice.ClearRollSessionInput{
		EntityID: r.PathValue("entity"),
		Context:  r.PathValue("context"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ClearSessionResponseJSON{RollsDeleted: output.RollsDeleted})
}
