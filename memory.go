package shishua

import (
	"io"
	"sync"
)

// streamChunkSize is the size of the buffers WriteStream fills and writes.
// It is a multiple of BlockSize so full chunks bypass the generator buffer.
const streamChunkSize = 512 * BlockSize // 64 KB

// chunkPool recycles WriteStream buffers to minimize allocations.
var chunkPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, streamChunkSize)
		return &buf
	},
}

// allocateChunk acquires a chunk buffer from the pool.
func allocateChunk() *[]byte {
	return chunkPool.Get().(*[]byte)
}

// releaseChunk returns a chunk buffer to the pool.
func releaseChunk(buf *[]byte) {
	if buf != nil && len(*buf) == streamChunkSize {
		chunkPool.Put(buf)
	}
}

// WriteStream writes the next n bytes of g's stream to w and returns the
// number of bytes written. A negative n writes until w returns an error.
//
// If w fails or accepts fewer bytes than offered, the bytes it did not
// take are still consumed from the stream.
func WriteStream(w io.Writer, g *Generator, n int64) (int64, error) {
	buf := allocateChunk()
	defer releaseChunk(buf)

	var written int64
	for n < 0 || written < n {
		chunk := *buf
		if n >= 0 && n-written < int64(len(chunk)) {
			chunk = chunk[:n-written]
		}

		g.Fill(chunk)

		m, err := w.Write(chunk)
		written += int64(m)
		if err != nil {
			return written, err
		}
		if m != len(chunk) {
			return written, io.ErrShortWrite
		}
	}

	return written, nil
}
