package out

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	pluginrpc "japa/internal/modules/transliteration/adapter/out/rpc"
	"japa/internal/modules/transliteration/domain"
	translitout "japa/internal/modules/transliteration/port/out"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 5 * time.Second
)

// GRPCHost starts the plugin process for every call and kills it afterwards.
// Transliteration is rare (one call per settled edit), so nothing is pooled.
type GRPCHost struct {
	logger hclog.Logger
}

// NewGRPCHost routes plugin process output through logger; nil discards it.
func NewGRPCHost(logger hclog.Logger) translitout.Host {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &GRPCHost{logger: logger}
}

func (h *GRPCHost) CheckLifecycle(ctx context.Context, manifest domain.Manifest) error {
	_, err := h.GetMetadata(ctx, manifest)
	return err
}

func (h *GRPCHost) GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return domain.Metadata{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()
	meta, err := client.GetMetadata(callCtx)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("get metadata: %w", err)
	}
	return domain.Metadata{Name: meta.Name, Version: meta.Version, Languages: meta.Languages}, nil
}

func (h *GRPCHost) Transliterate(ctx context.Context, manifest domain.Manifest, req domain.Request) (string, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return "", err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()
	response, err := client.Transliterate(callCtx, &pluginrpc.TransliterateRequest{Text: req.Text, Language: req.Language})
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %s", domain.ErrPluginTimeout, manifest.Name)
		}
		return "", fmt.Errorf("transliterate: %w", err)
	}
	text := strings.TrimSpace(response.Text)
	if text == "" {
		return "", domain.ErrNoResult
	}
	return text, nil
}

func (h *GRPCHost) connect(manifest domain.Manifest) (pluginrpc.TransliteratorClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  pluginrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          pluginrpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           h.logger.Named(manifest.Name),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start transliterator: %w", err)
	}
	raw, err := rpcClient.Dispense(pluginrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense transliterator: %w", err)
	}
	typed, ok := raw.(pluginrpc.TransliteratorClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("transliterator rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func (h *GRPCHost) callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
