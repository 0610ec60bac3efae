// Command catalog-transliterator is a transliterator plugin that knows the
// built-in chant presets. It answers for preset names in every catalog
// language and declines anything else.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-plugin"

	settingsdomain "japa/internal/modules/settings/domain"
	pluginrpc "japa/internal/modules/transliteration/adapter/out/rpc"
)

type server struct {
	catalog settingsdomain.Catalog
}

func (s *server) GetMetadata(_ context.Context, _ *pluginrpc.Empty) (*pluginrpc.Metadata, error) {
	languages := make([]string, 0, len(s.catalog.Languages))
	for _, l := range s.catalog.Languages {
		languages = append(languages, l.Name)
	}
	return &pluginrpc.Metadata{Name: "catalog", Version: "1.0.0", Languages: languages}, nil
}

func (s *server) Transliterate(_ context.Context, in *pluginrpc.TransliterateRequest) (*pluginrpc.TransliterateResponse, error) {
	native, ok := lookup(s.catalog, in.Text, in.Language)
	if !ok {
		return nil, fmt.Errorf("no transliteration for %q in %s", in.Text, in.Language)
	}
	return &pluginrpc.TransliterateResponse{Text: native}, nil
}

// lookup matches whole preset names, then renders a phrase word by word when
// every word is itself a preset name.
func lookup(catalog settingsdomain.Catalog, text, language string) (string, bool) {
	var languageID string
	for _, l := range catalog.Languages {
		if strings.EqualFold(l.Name, strings.TrimSpace(language)) {
			languageID = l.ID
			break
		}
	}
	if languageID == "" {
		return "", false
	}
	presets := catalog.Chants[languageID]
	find := func(word string) (string, bool) {
		for _, p := range presets {
			if strings.EqualFold(p.Name, word) {
				return p.NativeName, true
			}
		}
		return "", false
	}
	phrase := strings.Join(strings.Fields(text), " ")
	if native, ok := find(phrase); ok {
		return native, true
	}
	words := strings.Fields(phrase)
	if len(words) < 2 {
		return "", false
	}
	rendered := make([]string, 0, len(words))
	for _, w := range words {
		native, ok := find(w)
		if !ok {
			return "", false
		}
		rendered = append(rendered, native)
	}
	return strings.Join(rendered, " "), true
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: pluginrpc.HandshakeConfig,
		Plugins:         pluginrpc.PluginMap(&server{catalog: settingsdomain.DefaultCatalog()}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
