package container

import "encoding/binary"

// Hand-assembled container fixtures. The flatbuffer metadata follows the
// wire format field by field: root offset, vtable (vtable length, table
// length, per-field offsets), inline scalars, and unsigned relative
// offsets for tables and vectors. Positions are fixed so the expected
// layout numbers in the tests can be checked by hand.

func p16(b []byte, pos int, v uint16) { binary.LittleEndian.PutUint16(b[pos:], v) }
func p32(b []byte, pos int, v uint32) { binary.LittleEndian.PutUint32(b[pos:], v) }
func p64(b []byte, pos int, v uint64) { binary.LittleEndian.PutUint64(b[pos:], v) }

func pu16s(b []byte, pos int, vs ...uint16) {
	for i, v := range vs {
		p16(b, pos+2*i, v)
	}
}

// buildBinsrcFixture is an 11-row, two-column (uint32, uint64) binsrc file
// with the data block at offset 40.
func buildBinsrcFixture() []byte {
	file := make([]byte, 40+44+88)
	copy(file, binsrcMagic)
	p32(file, 8, 40)  // data_offset
	p32(file, 12, 11) // n_rows
	file[16] = 2      // n_cols
	for i := 0; i < 11; i++ {
		binary.LittleEndian.PutUint32(file[40+4*i:], uint32(i*3))
		binary.LittleEndian.PutUint64(file[84+8*i:], uint64(i*7))
	}
	return file
}

// buildFeatherFixture is an 11-row, two-column (uint32, uint64) Feather v1
// file: leading magic, the column buffers at offsets 8 and 56 (the uint32
// buffer padded to 8 bytes), the CTable metadata flatbuffer, its length,
// and the trailing magic.
func buildFeatherFixture() []byte {
	file := make([]byte, 144+200+4+4)
	copy(file, featherMagic)
	for i := 0; i < 11; i++ {
		binary.LittleEndian.PutUint32(file[8+4*i:], uint32(i*3))
		binary.LittleEndian.PutUint64(file[56+8*i:], uint64(i*7))
	}

	meta := file[144 : 144+200]
	p32(meta, 0, 24)                          // root -> CTable
	pu16s(meta, 8, 12, 20, 0, 8, 16, 4)      // CTable vtable
	p32(meta, 24, 16)                         // CTable soffset
	p32(meta, 28, 1)                          // version
	p64(meta, 32, 11)                         // num_rows
	p32(meta, 40, 4)                          // columns -> vector at 44
	p32(meta, 44, 2)                          // columns length
	p32(meta, 48, 16)                         // columns[0] -> 64
	p32(meta, 52, 28)                         // columns[1] -> 80
	pu16s(meta, 56, 8, 8, 0, 4)               // Column vtable (columns[0])
	p32(meta, 64, 8)                          // Column soffset
	p32(meta, 68, 36)                         // values -> 104
	pu16s(meta, 72, 8, 8, 0, 4)               // Column vtable (columns[1])
	p32(meta, 80, 8)                          // Column soffset
	p32(meta, 84, 76)                         // values -> 160
	pu16s(meta, 88, 16, 40, 0, 0, 8, 16, 24, 32) // PrimitiveArray vtable
	p32(meta, 104, 16)                        // PrimitiveArray soffset
	p64(meta, 112, 8)                         // offset
	p64(meta, 120, 11)                        // length
	p64(meta, 128, 0)                         // null_count
	p64(meta, 136, 44)                        // total_bytes
	pu16s(meta, 144, 16, 40, 0, 0, 8, 16, 24, 32) // PrimitiveArray vtable
	p32(meta, 160, 16)                        // PrimitiveArray soffset
	p64(meta, 168, 56)                        // offset
	p64(meta, 176, 11)                        // length
	p64(meta, 184, 0)                         // null_count
	p64(meta, 192, 88)                        // total_bytes

	p32(file, 344, 200) // metadata length
	copy(file[348:], featherMagic)
	return file
}

// buildArrowFixture is an 11-row, two-column (uint32, uint64) Arrow IPC
// file holding a single record batch at offset 8: continuation marker,
// metadata length, Message flatbuffer with a RecordBatch header listing
// a zero-length validity buffer and a value buffer per column, the
// 8-byte-aligned body, the Footer flatbuffer, its length, and the
// trailing magic.
func buildArrowFixture() []byte {
	file := make([]byte, 288+56+4+6)
	copy(file, arrowMagic)
	p32(file, 8, arrowContinuation)
	p32(file, 12, 136) // metadata length

	meta := file[16 : 16+136]
	p32(meta, 0, 16)                     // root -> Message
	pu16s(meta, 4, 12, 20, 4, 6, 16, 8)  // Message vtable
	p32(meta, 16, 12)                    // Message soffset
	p16(meta, 20, 4)                     // version
	meta[22] = arrowHdrRecordBatch       // header type
	p64(meta, 24, 136)                   // bodyLength
	p32(meta, 32, 16)                    // header -> RecordBatch at 48
	pu16s(meta, 36, 10, 16, 8, 0, 4)     // RecordBatch vtable
	p32(meta, 48, 12)                    // RecordBatch soffset
	p32(meta, 52, 16)                    // buffers -> vector at 68
	p64(meta, 56, 11)                    // length
	p32(meta, 68, 4)                     // buffers count
	p64(meta, 72, 0)                     // validity 0: offset
	p64(meta, 80, 0)                     // validity 0: length
	p64(meta, 88, 0)                     // values 0: offset
	p64(meta, 96, 44)                    // values 0: length
	p64(meta, 104, 48)                   // validity 1: offset
	p64(meta, 112, 0)                    // validity 1: length
	p64(meta, 120, 48)                   // values 1: offset
	p64(meta, 128, 88)                   // values 1: length

	for i := 0; i < 11; i++ {
		binary.LittleEndian.PutUint32(file[152+4*i:], uint32(i*3))
		binary.LittleEndian.PutUint64(file[200+8*i:], uint64(i*7))
	}

	footer := file[288 : 288+56]
	p32(footer, 0, 16)                   // root -> Footer
	pu16s(footer, 4, 12, 8, 0, 0, 0, 4)  // Footer vtable
	p32(footer, 16, 12)                  // Footer soffset
	p32(footer, 20, 8)                   // recordBatches -> vector at 28
	p32(footer, 28, 1)                   // recordBatches count
	p64(footer, 32, 8)                   // Block.offset
	p32(footer, 40, 144)                 // Block.metaDataLength
	p64(footer, 48, 136)                 // Block.bodyLength

	p32(file, 344, 56) // footer length
	copy(file[348:], arrowMagic[:6])
	return file
}
