package rpc

import "encoding/json"

// jsonCodec lets the gRPC server exchange the plain message structs in
// this package without generated protobuf artifacts.  The server is
// created with grpc.ForceServerCodec(Codec()) so every unary call is
// (de)serialized as JSON.
type jsonCodec struct{}

// Codec returns the codec used by the typed RPC server.
func Codec() jsonCodec { return jsonCodec{} }

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return "json" }
