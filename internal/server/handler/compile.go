package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kiss2smiles/wdqa/internal/graph"
	"github.com/kiss2smiles/wdqa/internal/sparql"
)

// CompileResponse carries the assembled query text and the variables its
// projection exposes.
type CompileResponse struct {
	Query         string   `json:"query"`
	FreeVariables []string `json:"freeVariables"`
}

// NewCompileHandler compiles a posted graph without executing it.
func NewCompileHandler() func(echo.Context) error {
	return func(c echo.Context) error {
		var g graph.Graph
		if err := c.Bind(&g); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}

		query, err := sparql.Assemble(&g, true)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		return c.JSON(http.StatusOK, CompileResponse{
			Query:         query,
			FreeVariables: sparql.FreeVariables(&g, true, true, true),
		})
	}
}
