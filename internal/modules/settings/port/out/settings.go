package out

import (
	"context"

	"japa/internal/modules/settings/domain"
)

// SettingsStore loads whatever record exists, filling absent fields with
// defaults. Catalog repair is left to the caller.
type SettingsStore interface {
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
}
