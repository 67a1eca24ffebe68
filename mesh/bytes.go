package mesh

import (
	"encoding/binary"
	"math"
)

// Stride is the byte size of one [Vertex] in the GPU vertex buffer:
// two float32 position components followed by two float32 texture
// coordinates. Must match the vertex layout of the sprite shader.
const Stride = 16

// Bytes serializes vertices to the little-endian layout the vertex buffer
// expects. The result is len(verts) * Stride bytes.
func Bytes(verts []Vertex) []byte {
	buf := make([]byte, len(verts)*Stride)
	le := binary.LittleEndian
	for i, v := range verts {
		off := i * Stride
		le.PutUint32(buf[off+0:off+4], math.Float32bits(v.Pos[0]))
		le.PutUint32(buf[off+4:off+8], math.Float32bits(v.Pos[1]))
		le.PutUint32(buf[off+8:off+12], math.Float32bits(v.TexCoords[0]))
		le.PutUint32(buf[off+12:off+16], math.Float32bits(v.TexCoords[1]))
	}
	return buf
}
