// Package wire frames vote diffs in protobuf wire format so the simulator
// can account for the bytes a real gossip transport would move per exchange.
// Proposals and voters are framed in ascending order, which makes the
// encoding of a diff deterministic.
package wire
