// Package memory provides mutex-guarded in-memory implementations of the
// server repositories. They mirror the PostgreSQL semantics closely enough
// to exercise services and the gRPC layer without a database.
package memory
