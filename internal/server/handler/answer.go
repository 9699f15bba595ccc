package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kiss2smiles/wdqa/internal/graph"
	"github.com/kiss2smiles/wdqa/internal/qa"
)

// Answerer resolves a candidate graph into canonical answer strings.
type Answerer interface {
	Answer(ctx context.Context, g *graph.Graph) (*qa.Result, error)
}

// NewAnswerHandler runs the full pipeline for a posted graph. A backend
// fault surfaces as an empty answer list: callers see "no answer found" and
// "knowledge base unreachable" identically.
func NewAnswerHandler(answerer Answerer) func(echo.Context) error {
	return func(c echo.Context) error {
		var g graph.Graph
		if err := c.Bind(&g); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}

		result, err := answerer.Answer(c.Request().Context(), &g)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		return c.JSON(http.StatusOK, result)
	}
}
