package rpc

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey        = "transliterator"
	serviceName         = "japa.transliterator.v1.Transliterator"
	jsonCodecName       = "json"
	methodGetMetadata   = "/" + serviceName + "/GetMetadata"
	methodTransliterate = "/" + serviceName + "/Transliterate"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "JAPA_TRANSLITERATOR",
	MagicCookieValue: "japa",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Metadata struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Languages []string `json:"languages"`
}

type TransliterateRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type TransliterateResponse struct {
	Text string `json:"text"`
}

type TransliteratorServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	Transliterate(ctx context.Context, in *TransliterateRequest) (*TransliterateResponse, error)
}

type TransliteratorClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	Transliterate(ctx context.Context, in *TransliterateRequest) (*TransliterateResponse, error)
}

type transliteratorClient struct {
	conn *grpc.ClientConn
}

func NewTransliteratorClient(conn *grpc.ClientConn) TransliteratorClient {
	return &transliteratorClient{conn: conn}
}

func (c *transliteratorClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	out := &Metadata{}
	if err := c.conn.Invoke(ctx, methodGetMetadata, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *transliteratorClient) Transliterate(ctx context.Context, in *TransliterateRequest) (*TransliterateResponse, error) {
	out := &TransliterateResponse{}
	if err := c.conn.Invoke(ctx, methodTransliterate, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterTransliteratorServer(server grpc.ServiceRegistrar, impl TransliteratorServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*TransliteratorServer)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "GetMetadata",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.GetMetadata(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetMetadata}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.GetMetadata(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "Transliterate",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &TransliterateRequest{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.Transliterate(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodTransliterate}
					handler := func(ctx context.Context, req any) (any, error) {
						typed, ok := req.(*TransliterateRequest)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.Transliterate(ctx, typed)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "schemas/transliterator-v1.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl TransliteratorServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterTransliteratorServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewTransliteratorClient(conn), nil
}

func PluginMap(impl TransliteratorServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
