package catalog

import (
	"errors"
	"fmt"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/models"
)

// Failure kinds of a single catalog query. None of them leave Lookup; they
// are recorded as attempts and the next catalog is tried.
var (
	ErrNotMapped = errors.New("no catalog identifier for name")
	ErrNotFound  = errors.New("catalog has no matching entry")
	ErrTransport = errors.New("catalog unreachable")
	ErrParse     = errors.New("unexpected catalog response")
)

// LookupError represents a failed query against one catalog.
type LookupError struct {
	Catalog    models.CatalogSource
	Identifier string
	Err        error
}

func (e *LookupError) Error() string {
	if e.Identifier != "" {
		return fmt.Sprintf("catalog %s: %s: %v", e.Catalog, e.Identifier, e.Err)
	}
	return fmt.Sprintf("catalog %s: %v", e.Catalog, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Outcome maps an error returned by a catalog to the attempt outcome shown
// in diagnostics. Errors of unknown kind count as transport failures.
func Outcome(err error) models.AttemptOutcome {
	switch {
	case err == nil:
		return models.OutcomeMatched
	case errors.Is(err, ErrNotMapped):
		return models.OutcomeNotMapped
	case errors.Is(err, ErrNotFound):
		return models.OutcomeNotFound
	case errors.Is(err, ErrParse):
		return models.OutcomeParse
	default:
		return models.OutcomeTransport
	}
}
