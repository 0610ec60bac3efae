package out

import (
	"context"

	"japa/internal/modules/transliteration/domain"
)

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

type Host interface {
	CheckLifecycle(ctx context.Context, manifest domain.Manifest) error
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	Transliterate(ctx context.Context, manifest domain.Manifest, req domain.Request) (string, error)
}
