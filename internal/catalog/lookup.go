package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/models"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/normalize"
)

// Lookup queries the registered catalogs in priority order and returns the
// first match.
type Lookup struct {
	registry *Registry
	logger   *zap.Logger
}

// NewLookup creates a lookup over the catalogs of registry.
func NewLookup(registry *Registry, logger *zap.Logger) *Lookup {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Lookup{registry: registry, logger: logger.Named("lookup")}
}

// Registry returns the catalogs this lookup walks.
func (l *Lookup) Registry() *Registry {
	return l.registry
}

// Lookup finds the latest version of softwareName. Catalog failures never
// surface as an error: they are recorded in the match's Attempts and the
// next catalog is tried. The error is only set when ctx is done.
func (l *Lookup) Lookup(ctx context.Context, softwareName string) (models.CatalogMatch, error) {
	result := models.CatalogMatch{Name: softwareName}

	key := normalize.Normalize(softwareName)
	if key == "" {
		result.Error = "software name is empty after normalization"
		return result, nil
	}
	log := l.logger.With(zap.String("software", softwareName), zap.String("key", key))

	var attempts []models.CatalogAttempt
	for _, c := range l.registry.All() {
		if err := ctx.Err(); err != nil {
			result.Attempts = attempts
			return result, err
		}

		source := c.Info().ID
		id, ok := c.Resolve(key)
		if !ok {
			attempts = append(attempts, models.CatalogAttempt{
				Source:  source,
				Outcome: models.OutcomeNotMapped,
				Error:   ErrNotMapped.Error(),
			})
			continue
		}

		match, err := c.Fetch(ctx, id)
		if err == nil && match == nil {
			err = fmt.Errorf("%w: empty response", ErrNotFound)
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				result.Attempts = attempts
				return result, ctxErr
			}
			lerr := &LookupError{Catalog: source, Identifier: id, Err: err}
			attempts = append(attempts, models.CatalogAttempt{
				Source:     source,
				Identifier: id,
				Outcome:    Outcome(err),
				Error:      lerr.Error(),
			})
			log.Debug("Catalog attempt failed",
				zap.String("catalog", string(source)),
				zap.String("identifier", id),
				zap.Error(lerr))
			continue
		}

		attempts = append(attempts, models.CatalogAttempt{
			Source:     source,
			Identifier: id,
			Outcome:    models.OutcomeMatched,
		})
		found := *match
		found.Found = true
		found.Source = source
		found.Identifier = id
		if found.Name == "" {
			found.Name = softwareName
		}
		found.Error = ""
		found.Attempts = attempts
		log.Debug("Catalog match",
			zap.String("catalog", string(source)),
			zap.String("identifier", id),
			zap.String("version", found.Version))
		return found, nil
	}

	result.Attempts = attempts
	result.Error = summarize(attempts)
	return result, nil
}

// summarize tells unmapped names apart from unreachable catalogs.
func summarize(attempts []models.CatalogAttempt) string {
	var unmapped, missing, failed []string
	for _, a := range attempts {
		switch a.Outcome {
		case models.OutcomeNotMapped:
			unmapped = append(unmapped, string(a.Source))
		case models.OutcomeNotFound:
			missing = append(missing, string(a.Source))
		default:
			failed = append(failed, string(a.Source))
		}
	}
	if len(attempts) == 0 {
		return "no catalogs registered"
	}
	if len(failed) == 0 && len(missing) == 0 {
		return "not mapped in any catalog"
	}
	var parts []string
	if len(unmapped) > 0 {
		parts = append(parts, "not mapped: "+strings.Join(unmapped, ", "))
	}
	if len(missing) > 0 {
		parts = append(parts, "not found: "+strings.Join(missing, ", "))
	}
	if len(failed) > 0 {
		parts = append(parts, "unreachable: "+strings.Join(failed, ", "))
	}
	return strings.Join(parts, "; ")
}
