// Package proto declares the TodoKeeper gRPC service: request and response
// messages, the service descriptor, a server interface with an Unimplemented
// base and a client stub.
//
// Messages are plain Go structs carried by the "json" codec registered in
// this package. Clients select it per call through grpc.CallContentSubtype;
// the stub returned by NewTodoKeeperServiceClient does that already.
package proto
