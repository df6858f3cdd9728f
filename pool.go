package sqlstage

import (
	"github.com/valyala/bytebufferpool"
)

var bufPool bytebufferpool.Pool

func getBuffer() *bytebufferpool.ByteBuffer {
	return bufPool.Get()
}

func putBuffer(buf *bytebufferpool.ByteBuffer) {
	bufPool.Put(buf)
}
