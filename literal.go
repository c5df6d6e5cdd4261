package sickl

import "math"

// Literal payloads are stored as raw little-endian bytes, the same shape as
// the original's `memcpy`-based ASTNode literal union (AST.h). These
// encode/decode helpers are the Go equivalent of that raw copy.

func encodeBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

func decodeBool(b []byte) bool { return b[0] != 0 }

func encodeInt32(v int32) []byte {
	u := uint32(v)
	return []byte{byte(u), byte(u >> 8), byte(u >> 16), byte(u >> 24)}
}

func decodeInt32(b []byte) int32 {
	u := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return int32(u)
}

func encodeUInt32(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func decodeUInt32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func encodeFloat32(v float32) []byte {
	return encodeUInt32(math.Float32bits(v))
}

func decodeFloat32(b []byte) float32 {
	return math.Float32frombits(decodeUInt32(b))
}
