package server

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/kiss2smiles/wdqa/internal"
	"github.com/kiss2smiles/wdqa/internal/qa"
	"github.com/kiss2smiles/wdqa/internal/server/handler"
	"github.com/kiss2smiles/wdqa/internal/wikidata"
)

func InitServer(config *internal.Config, logger *slog.Logger) (*echo.Echo, error) {
	e := echo.New()

	labels, err := wikidata.LoadEntityMap(config.EntityMapPath)
	if err != nil {
		logger.Warn("entity map unavailable, canonicalization falls back to raw identifiers",
			"path", config.EntityMapPath, "error", err)
		labels = wikidata.LabelMap{}
	}
	answerer := qa.NewAnswerer(wikidata.NewClient(config), labels, logger)

	e.GET("/health", handler.NewHealthHandler())
	e.POST("/graph/compile", handler.NewCompileHandler())
	e.POST("/graph/answer", handler.NewAnswerHandler(answerer))

	return e, nil
}
