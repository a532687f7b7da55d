package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driven"
	"github.com/custodia-labs/scout/internal/logger"
)

// EngineProbe attempts to build a preferred similarity engine. A probe
// that cannot serve returns an error wrapping domain.ErrEngineUnavailable.
type EngineProbe func(ctx context.Context) (driven.SimilarityEngine, error)

// LexicalFactory builds the fallback engine. It cannot fail.
type LexicalFactory func() driven.SimilarityEngine

// EngineSelection is the outcome of startup engine selection.
type EngineSelection struct {
	Engine   driven.SimilarityEngine
	Warnings []string // Reasons preferred engines were rejected.
	FellBack bool     // True if a probe was tried and rejected.
}

// SelectEngine tries each probe in order and returns the first engine
// that builds. When every probe fails, or none is given, the lexical
// engine is returned. Selection never returns an error: rejection
// reasons are logged as warnings and kept on the result.
func SelectEngine(ctx context.Context, lexical LexicalFactory, probes ...EngineProbe) *EngineSelection {
	logger.Section("Engine Selection")

	result := &EngineSelection{}
	for _, probe := range probes {
		if probe == nil {
			continue
		}
		engine, err := probe(ctx)
		if err == nil && engine != nil {
			logger.Debug("selected %s engine", engine.Meta().Type)
			result.Engine = engine
			return result
		}
		if err == nil {
			err = fmt.Errorf("%w: probe returned no engine", domain.ErrEngineUnavailable)
		}
		if !errors.Is(err, domain.ErrEngineUnavailable) {
			err = fmt.Errorf("%w: %w", domain.ErrEngineUnavailable, err)
		}
		logger.Warn("%v; falling back to lexical engine", err)
		result.Warnings = append(result.Warnings, err.Error())
		result.FellBack = true
	}

	result.Engine = lexical()
	logger.Debug("selected %s engine", result.Engine.Meta().Type)
	return result
}
