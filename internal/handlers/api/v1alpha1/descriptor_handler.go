package v1alpha1

import (
	"net/http"

	"github.com/KirkDiggler/forge-api/internal/engine"
	"github.com/KirkDiggler/forge-api/internal/errors"
	"github.com/KirkDiggler/forge-api/internal/orchestrators/descriptor"
)

// DescriptorHandlerConfig holds dependencies for the descriptor handler
type DescriptorHandlerConfig struct {
	DescriptorService descriptor.Service
}

// Validate ensures all required dependencies are present
func (c *DescriptorHandlerConfig) Validate() error {
	if c.DescriptorService == nil {
		return errors.InvalidArgument("descriptor service is required")
	}
	return nil
}

// DescriptorHandler serves the descriptor template authoring routes
type DescriptorHandler struct {
	descriptorService descriptor.Service
}

// NewDescriptorHandler creates a new descriptor handler with the given configuration
func NewDescriptorHandler(cfg *DescriptorHandlerConfig) (*DescriptorHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &DescriptorHandler{
		descriptorService: cfg.DescriptorService,
	}, nil
}

// Register mounts the descriptor routes on mux
func (h *DescriptorHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1alpha1/descriptors", h.Create)
	mux.HandleFunc("GET /v1alpha1/descriptors", h.List)
	mux.HandleFunc("GET /v1alpha1/descriptors/{id}", h.Get)
	mux.HandleFunc("PUT /v1alpha1/descriptors/{id}", h.Update)
	mux.HandleFunc("DELETE /v1alpha1/descriptors/{id}", h.Delete)
	mux.HandleFunc("POST /v1alpha1/descriptors/validate", h.Validate)
	mux.HandleFunc("POST /v1alpha1/descriptors/preview", h.Preview)
}

// Create handles POST /v1alpha1/descriptors
func (h *DescriptorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body DescriptorJSON
	if err := decodeJSON(r, &body); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	output, err := h.descriptorService.CreateTemplate(r.Context(), &descriptor.CreateTemplateInput{
		Template: descriptorFromJSON(&body),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, descriptorToJSON(output.Template))
}

// List handles GET /v1alpha1/descriptors?kind=
func (h *DescriptorHandler) List(w http.ResponseWriter, r *http.Request) {
	output, err := h.descriptorService.ListTemplates(r.Context(), &descriptor.ListTemplatesInput{
		Kind: r.URL.Query().Get("kind"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	templates := make([]*DescriptorJSON, 0, len(output.Templates))
	for _, tmpl := range output.Templates {
		templates = append(templates, descriptorToJSON(tmpl))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"descriptors": templates})
}

// Get handles GET /v1alpha1/descriptors/{id}
func (h *DescriptorHandler) Get(w http.ResponseWriter, r *http.Request) {
	output, err := h.descriptorService.GetTemplate(r.Context(), &descriptor.GetTemplateInput{ID: r.PathValue("id")})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, descriptorToJSON(output.Template))
}

// Update handles PUT /v1alpha1/descriptors/{id}
func (h *DescriptorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body DescriptorJSON
	if err := decodeJSON(r, &body); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	tmpl := descriptorFromJSON(&body)
	tmpl.ID = r.PathValue("id")

	output, err := h.descriptorService.UpdateTemplate(r.Context(), &descriptor.UpdateTemplateInput{Template: tmpl})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, descriptorToJSON(output.Template))
}

// Delete handles DELETE /v1alpha1/descriptors/{id}
func (h *DescriptorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.descriptorService.DeleteTemplate(r.Context(), &descriptor.DeleteTemplateInput{ID: r.PathValue("id")}); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ValidateResponseJSON is the wire form of a passing validation check
type ValidateResponseJSON struct {
	Valid  bool     `json:"valid"`
	Tokens []string `json:"tokens"`
}

// Validate handles POST /v1alpha1/descriptors/validate. A template that
// fails validation gets the usual error payload with field details.
func (h *DescriptorHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var body DescriptorJSON
	if err := decodeJSON(r, &body); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	output, err := h.descriptorService.ValidateTemplate(r.Context(), &descriptor.ValidateTemplateInput{
		Template: descriptorFromJSON(&body),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ValidateResponseJSON{
		Valid:  true,
		Tokens: output.Tokens,
	})
}

// PreviewRequestJSON is the wire form of a preview request
type PreviewRequestJSON struct {
	Template string         `json:"template"`
	Context  engine.Context `json:"context,omitempty"`
}

// PreviewResponseJSON is the wire form of a preview response
type PreviewResponseJSON struct {
	Rendered string   `json:"rendered"`
	Tokens   []string `json:"tokens"`
}

// Preview handles POST /v1alpha1/descriptors/preview
func (h *DescriptorHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var body PreviewRequestJSON
	if err := decodeJSON(r, &body); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	output, err := h.descriptorService.Preview(r.Context(), &descriptor.PreviewInput{
		Template: body.Template,
		Context:  body.Context,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PreviewResponseJSON{
		Rendered: output.Rendered,
		Tokens:   output.Tokens,
	})
}
