package serve

import (
	"net/http"
	"strconv"

	"github.com/dtnitsch/page-digest/internal/messaging"
	"github.com/labstack/echo/v4"
)

// Handler exposes the message router over HTTP. Routes are tab-scoped the
// same way the messages are: the path's tab id keys the state store.
type Handler struct {
	router *messaging.Router
}

func NewHandler(router *messaging.Router) *Handler {
	return &Handler{router: router}
}

func (h *Handler) Register(e *echo.Echo) {
	e.POST("/v1/tabs/:tab/summarize", h.Summarize)
	e.GET("/v1/tabs/:tab/summary", h.CurrentSummary)
	e.GET("/v1/tabs/:tab/badge", h.Badge)
	e.DELETE("/v1/tabs/:tab", h.Forget)
	e.POST("/v1/page-text", h.PageText)
	e.GET("/healthz", h.Health)
}

// POST /v1/tabs/:tab/summarize
func (h *Handler) Summarize(c echo.Context) error {
	tabID, err := tabParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tab id"})
	}

	var req messaging.SummarizeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	req.TabID = tabID

	resp := h.router.Summarize(c.Request().Context(), req)
	if !resp.Success {
		return c.JSON(http.StatusBadGateway, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

// GET /v1/tabs/:tab/summary
func (h *Handler) CurrentSummary(c echo.Context) error {
	tabID, err := tabParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tab id"})
	}
	return c.JSON(http.StatusOK, h.router.CurrentSummary(tabID))
}

// GET /v1/tabs/:tab/badge
func (h *Handler) Badge(c echo.Context) error {
	tabID, err := tabParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tab id"})
	}
	return c.JSON(http.StatusOK, h.router.Badge(tabID))
}

// DELETE /v1/tabs/:tab
func (h *Handler) Forget(c echo.Context) error {
	tabID, err := tabParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tab id"})
	}
	h.router.Forget(tabID)
	return c.NoContent(http.StatusNoContent)
}

// POST /v1/page-text
func (h *Handler) PageText(c echo.Context) error {
	var req messaging.PageTextRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url is required"})
	}

	resp := h.router.PageText(c.Request().Context(), req)
	if !resp.Success {
		return c.JSON(http.StatusBadGateway, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

// GET /healthz
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func tabParam(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("tab"))
}
