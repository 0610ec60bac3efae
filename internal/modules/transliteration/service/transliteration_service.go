package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"japa/internal/modules/transliteration/domain"
	"japa/internal/modules/transliteration/dto"
	translitout "japa/internal/modules/transliteration/port/out"
	apperrors "japa/internal/platform/errors"
)

type TransliterationService struct {
	store translitout.ManifestStore
	host  translitout.Host
	log   zerolog.Logger
}

func NewTransliterationService(store translitout.ManifestStore, host translitout.Host, log zerolog.Logger) *TransliterationService {
	return &TransliterationService{store: store, host: host, log: log}
}

// Transliterate asks each enabled transliterator that supports the language,
// in manifest order, and returns the first answer.
func (s *TransliterationService) Transliterate(ctx context.Context, req domain.Request) (string, string, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return "", "", err
	}
	var lastErr error
	for _, m := range manifests {
		if !m.Enabled || !m.Supports(req.Language) {
			continue
		}
		if err := checksumMatches(m.Binary, m.SHA256); err != nil {
			s.log.Warn().Err(err).Str("plugin", m.Name).Msg("skip transliterator")
			lastErr = err
			continue
		}
		text, err := s.host.Transliterate(ctx, m, req)
		if err != nil {
			if ctx.Err() != nil {
				return "", "", ctx.Err()
			}
			s.log.Warn().Err(err).Str("plugin", m.Name).Msg("transliterator failed")
			lastErr = err
			continue
		}
		return text, m.Name, nil
	}
	if lastErr != nil {
		return "", "", fmt.Errorf("%w: %v", apperrors.ErrTransliteratorUnavailable, lastErr)
	}
	return "", "", fmt.Errorf("%w: none configured for %s", apperrors.ErrTransliteratorUnavailable, req.Language)
}

func (s *TransliterationService) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]dto.DoctorResult, 0, len(manifests))
	for _, m := range manifests {
		result := dto.DoctorResult{Name: m.Name, Version: m.Version}
		if err := m.Validate(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		binaryOK := fileExists(m.Binary)
		result.BinaryReachable = binaryOK
		checksumOK := false
		if binaryOK {
			checksumOK = checksumMatches(m.Binary, m.SHA256) == nil
		}
		result.ChecksumValid = checksumOK
		if binaryOK && checksumOK && m.Enabled && s.host != nil {
			if err := s.host.CheckLifecycle(ctx, m); err != nil {
				result.Error = err.Error()
			} else {
				result.LifecycleOK = true
			}
		}
		if !binaryOK {
			result.Error = fmt.Sprintf("binary does not exist: %s", m.Binary)
		}
		if binaryOK && !checksumOK {
			result.Error = "checksum mismatch"
		}
		if result.Error == "" && !m.Enabled {
			result.Error = domain.ErrPluginDisabled.Error()
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *TransliterationService) loadValidated(ctx context.Context) ([]domain.Manifest, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	for _, m := range manifests {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[m.Name]; ok {
			return nil, fmt.Errorf("duplicate transliterator name: %s", m.Name)
		}
		seen[m.Name] = struct{}{}
	}
	return manifests, nil
}

func checksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read transliterator binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	if hex.EncodeToString(hash[:]) != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
