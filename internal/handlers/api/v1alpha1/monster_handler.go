package v1alpha1

import (
	"net/http"
	"strconv"

	"github.com/KirkDiggler/forge-api/internal/errors"
	"github.com/KirkDiggler/forge-api/internal/orchestrators/monster"
)

// MonsterHandlerConfig holds dependencies for the monster handler
type MonsterHandlerConfig struct {
	MonsterService monster.Service
}

// Validate ensures all required dependencies are present
func (c *MonsterHandlerConfig) Validate() error {
	if c.MonsterService == nil {
		return errors.InvalidArgument("monster service is required")
	}
	return nil
}

// MonsterHandler serves the summoning circle routes
type MonsterHandler struct {
	monsterService monster.Service
}

// NewMonsterHandler creates a new monster handler with the given configuration
func NewMonsterHandler(cfg *MonsterHandlerConfig) (*MonsterHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &MonsterHandler{
		monsterService: cfg.MonsterService,
	}, nil
}

// Register mounts the monster routes on mux
func (h *MonsterHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1alpha1/monsters", h.Create)
	mux.HandleFunc("GET /v1alpha1/monsters", h.List)
	mux.HandleFunc("GET /v1alpha1/monsters/{id}", h.Get)
	mux.HandleFunc("PUT /v1alpha1/monsters/{id}", h.Update)
	mux.HandleFunc("DELETE /v1alpha1/monsters/{id}", h.Delete)
	mux.HandleFunc("GET /v1alpha1/monsters/{id}/statblock", h.StatBlock)
}

// Create handles POST /v1alpha1/monsters
func (h *MonsterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body MonsterJSON
	if err := decodeJSON(r, &body); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	entity, err := monsterFromJSON(&body)
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	output, err := h.monsterService.CreateMonster(r.Context(), &monster.CreateMonsterInput{Monster: entity})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, monsterToJSON(output.Monster))
}

// List handles GET /v1alpha1/monsters with an optional ?tier= filter
func (h *MonsterHandler) List(w http.ResponseWriter, r *http.Request) {
	var tier int32
	if raw := r.URL.Query().Get("tier"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			errors.WriteHTTP(w, errors.InvalidArgumentf("invalid tier: %s", raw))
			return
		}
		tier = int32(parsed)
	}

	output, err := h.monsterService.ListMonsters(r.Context(), &monster.ListMonstersInput{Tier: tier})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	monsters := make([]*MonsterJSON, 0, len(output.Monsters))
	for _, entity := range output.Monsters {
		monsters = append(monsters, monsterToJSON(entity))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"monsters": monsters})
}

// Get handles GET /v1alpha1/monsters/{id}
func (h *MonsterHandler) Get(w http.ResponseWriter, r *http.Request) {
	output, err := h.monsterService.GetMonster(r.Context(), &monster.GetMonsterInput{ID: r.PathValue("id")})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, monsterToJSON(output.Monster))
}

// Update handles PUT /v1alpha1/monsters/{id}
func (h *MonsterHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body MonsterJSON
	if err := decodeJSON(r, &body); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	entity, err := monsterFromJSON(&body)
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	entity.ID = r.PathValue("id")

	output, err := h.monsterService.UpdateMonster(r.Context(), &monster.UpdateMonsterInput{Monster: entity})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, monsterToJSON(output.Monster))
}

// Delete handles DELETE /v1alpha1/monsters/{id}
func (h *MonsterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.monsterService.DeleteMonster(r.Context(), &monster.DeleteMonsterInput{ID: r.PathValue("id")}); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// StatBlock handles GET /v1alpha1/monsters/{id}/statblock
func (h *MonsterHandler) StatBlock(w http.ResponseWriter, r *http.Request) {
	output, err := h.monsterService.RenderStatBlock(r.Context(), &monster.RenderStatBlockInput{ID: r.PathValue("id")})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statBlockToJSON(output.Block))
}
