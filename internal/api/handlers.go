package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sitegen_server/internal/ai"
	"sitegen_server/internal/intent"
	"sitegen_server/internal/publish"
	"sitegen_server/internal/render"
	"sitegen_server/internal/types"
)

// APIHandler holds dependencies for API endpoints. The refiner may be
// nil when no API key is configured; every deterministic path still
// works then.
type APIHandler struct {
	refiner   *ai.Refiner
	renderer  *render.Renderer
	publisher *publish.Publisher
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(refiner *ai.Refiner, renderer *render.Renderer, publisher *publish.Publisher) *APIHandler {
	return &APIHandler{
		refiner:   refiner,
		renderer:  renderer,
		publisher: publisher,
	}
}

// --- Structs for API Requests/Responses ---

type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	ProjectID string `json:"projectId"`
	// Mode "ai" requests LLM refinement of the heuristic draft.
	Mode string `json:"mode"`
}

type ChatUI struct {
	Reply string `json:"reply"`
}

type ChatNext struct {
	Action string `json:"action"`
}

type ChatResponse struct {
	Success   bool               `json:"success"`
	ProjectID string             `json:"projectId"`
	UI        ChatUI             `json:"ui"`
	Spec      *types.WebsiteSpec `json:"spec"`
	Next      ChatNext           `json:"next"`
	// Note carries non-fatal diagnostics, e.g. a failed refinement.
	Note string `json:"note,omitempty"`
}

type RenderRequest struct {
	Spec   *types.WebsiteSpec `json:"spec"`
	Blocks []types.Block      `json:"blocks"`
}

type RenderResponse struct {
	Success bool   `json:"success"`
	HTML    string `json:"html"`
}

type PublishRequest struct {
	ProjectID string             `json:"projectId"`
	Spec      *types.WebsiteSpec `json:"spec"`
	Blocks    []types.Block      `json:"blocks"`
}

type PublishResponse struct {
	Success   bool   `json:"success"`
	ProjectID string `json:"projectId"`
	URL       string `json:"url"`
}

// --- API Handlers ---

// POST /api/chat
func (h *APIHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "invalid_request", "error": "Invalid request body: " + err.Error()})
		return
	}

	projectID := req.ProjectID
	if projectID == "" {
		projectID = uuid.New().String()
	}
	log.Printf("chat turn for project %s (mode=%q)", projectID, req.Mode)

	draft := intent.Extract(req.Message)
	spec := intent.Normalize(draft)

	note := ""
	if req.Mode == "ai" {
		if h.refiner == nil {
			log.Printf("chat: AI mode requested for project %s but no credentials configured", projectID)
			c.JSON(http.StatusInternalServerError, gin.H{"code": "missing_credentials", "error": types.ErrMissingCredentials.Error()})
			return
		}
		refined, err := h.refiner.Refine(c.Request.Context(), spec, req.Message)
		if err != nil {
			// Recover locally: keep the heuristic draft and report the
			// failure as a diagnostic note, never as an error.
			log.Printf("chat: refinement for project %s failed, keeping draft: %v", projectID, err)
			note = "Die KI-Verfeinerung war nicht verfügbar; der Entwurf basiert auf der Texterkennung."
		} else {
			spec = intent.Merge(spec, refined)
		}
	}

	c.JSON(http.StatusOK, ChatResponse{
		Success:   true,
		ProjectID: projectID,
		UI:        ChatUI{Reply: intent.Reply(spec)},
		Spec:      spec,
		Next:      ChatNext{Action: "render"},
		Note:      note,
	})
}

// POST /api/render
func (h *APIHandler) Render(c *gin.Context) {
	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "invalid_request", "error": "Invalid request body: " + err.Error()})
		return
	}

	html, err := h.renderPayload(&req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, RenderResponse{Success: true, HTML: html})
}

// POST /api/publish
func (h *APIHandler) Publish(c *gin.Context) {
	var req PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "invalid_request", "error": "Invalid request body: " + err.Error()})
		return
	}

	html, err := h.renderPayload(&RenderRequest{Spec: req.Spec, Blocks: req.Blocks})
	if err != nil {
		h.renderError(c, err)
		return
	}

	projectID := req.ProjectID
	if projectID == "" {
		projectID = uuid.New().String()
	}
	url, err := h.publisher.PublishSite(c.Request.Context(), projectID, html)
	if err != nil {
		log.Printf("publish: project %s failed: %v", projectID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "publish_failed", "error": "Failed to publish the rendered site"})
		return
	}

	c.JSON(http.StatusOK, PublishResponse{Success: true, ProjectID: projectID, URL: url})
}

// renderPayload picks the render path for the given payload: full spec,
// blocks, or neither (a validation error).
func (h *APIHandler) renderPayload(req *RenderRequest) (string, error) {
	switch {
	case req.Spec != nil:
		return h.renderer.RenderDocument(req.Spec)
	case req.Blocks != nil:
		return h.renderer.RenderBlocksDocument(req.Blocks, types.Theme{Primary: types.ColorBlue})
	default:
		return "", types.NewValidationError("missing_payload", "request carries neither a spec nor a blocks array")
	}
}

// renderError maps renderer errors onto HTTP responses.
func (h *APIHandler) renderError(c *gin.Context, err error) {
	var validationErr *types.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"code": validationErr.Code, "error": validationErr.Message})
		return
	}
	log.Printf("render: unexpected failure: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"code": "render_failed", "error": "Failed to render the document"})
}
