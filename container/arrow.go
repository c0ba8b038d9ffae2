package container

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Arrow IPC file parsing. The parser never decodes the schema: it walks
// the footer to the single record batch, then takes the batch's buffer
// offsets and lengths verbatim. Caller-supplied column widths (or, when
// absent, the row count) disambiguate the element width of each buffer.
//
// Field ids below follow the Arrow File.fbs/Message.fbs tables:
// Footer{version, schema, dictionaries, recordBatches}, Block struct
// {offset i64, metaDataLength i32, bodyLength i64}, Message{version,
// header_type, header, bodyLength}, RecordBatch{length, nodes, buffers,
// compression}, Buffer struct {offset i64, length i64}.

var arrowMagic = []byte("ARROW1\x00\x00")

const (
	arrowBlockSize      = 24
	arrowBufferSize     = 16
	arrowContinuation   = 0xFFFFFFFF
	arrowHdrRecordBatch = 3
)

func isArrowFile(data []byte) bool {
	return len(data) >= len(arrowMagic) && bytes.Equal(data[:len(arrowMagic)], arrowMagic)
}

func parseArrow(data []byte, ctbytes []uint8) (*Layout, error) {
	size := uint64(len(data))
	if size < uint64(len(arrowMagic))+4+6 {
		return nil, fmt.Errorf("%w: arrow file too short for a footer", ErrBadContainer)
	}
	if !bytes.Equal(data[size-6:], arrowMagic[:6]) {
		return nil, fmt.Errorf("%w: missing trailing arrow magic", ErrBadContainer)
	}
	footerLen := uint64(binary.LittleEndian.Uint32(data[size-10:]))
	if footerLen == 0 || footerLen > size-10-uint64(len(arrowMagic)) {
		return nil, fmt.Errorf("%w: arrow footer length %d out of range", ErrBadContainer, footerLen)
	}
	footerStart := size - 10 - footerLen
	footer, ok := fbRoot(data[footerStart : size-10])
	if !ok {
		return nil, fmt.Errorf("%w: unreadable arrow footer", ErrBadContainer)
	}
	blocks, nblocks, ok := footer.vectorField(3, arrowBlockSize)
	if !ok || nblocks == 0 {
		return nil, fmt.Errorf("%w: arrow footer lists no record batches", ErrBadContainer)
	}
	if nblocks != 1 {
		return nil, fmt.Errorf("%w: %d record batches; a sorted data block must be a single batch", ErrBadContainer, nblocks)
	}
	msgOffset := fbI64(footer.buf, blocks)
	if msgOffset < 0 || uint64(msgOffset)+8 > size {
		return nil, fmt.Errorf("%w: record batch offset %d out of range", ErrBadContainer, msgOffset)
	}

	// Encapsulated message framing: an optional 0xFFFFFFFF continuation
	// marker, the metadata length, the metadata flatbuffer, then the body
	// aligned to 8 bytes.
	metaStart := uint64(msgOffset) + 4
	metaLen := uint64(binary.LittleEndian.Uint32(data[msgOffset:]))
	if metaLen == arrowContinuation {
		metaStart += 4
		if metaStart > size {
			return nil, fmt.Errorf("%w: truncated record batch message", ErrBadContainer)
		}
		metaLen = uint64(binary.LittleEndian.Uint32(data[metaStart-4:]))
	}
	if metaLen == 0 || metaLen > size-metaStart {
		return nil, fmt.Errorf("%w: record batch metadata length %d out of range", ErrBadContainer, metaLen)
	}
	msg, ok := fbRoot(data[metaStart : metaStart+metaLen])
	if !ok {
		return nil, fmt.Errorf("%w: unreadable record batch message", ErrBadContainer)
	}
	if msg.uint8Field(1, 0) != arrowHdrRecordBatch {
		return nil, fmt.Errorf("%w: footer block does not point at a record batch", ErrBadContainer)
	}
	batch, ok := msg.tableField(2)
	if !ok {
		return nil, fmt.Errorf("%w: record batch header missing", ErrBadContainer)
	}
	if batch.slot(3) != 0 {
		return nil, fmt.Errorf("%w: compressed record batches are not searchable in place", ErrBadContainer)
	}
	nrows := batch.int64Field(0, -1)
	if nrows <= 0 {
		return nil, fmt.Errorf("%w: record batch declares %d rows", ErrBadContainer, nrows)
	}
	buffers, nbufs, ok := batch.vectorField(2, arrowBufferSize)
	if !ok || nbufs == 0 {
		return nil, fmt.Errorf("%w: record batch lists no buffers", ErrBadContainer)
	}
	bodyStart := pad8(metaStart + metaLen)

	// Zero-length buffers are the validity bitmaps of null-free columns;
	// the remaining buffers hold the column values in declared order.
	type buf struct{ off, length uint64 }
	values := make([]buf, 0, nbufs)
	for i := uint32(0); i < nbufs; i++ {
		boff := fbI64(batch.buf, buffers+arrowBufferSize*i)
		blen := fbI64(batch.buf, buffers+arrowBufferSize*i+8)
		if boff < 0 || blen < 0 {
			return nil, fmt.Errorf("%w: negative buffer coordinates", ErrBadContainer)
		}
		if blen == 0 {
			continue
		}
		abs := bodyStart + uint64(boff)
		if abs+uint64(blen) > size {
			return nil, fmt.Errorf("%w: buffer [%d, %d) exceeds the %d-byte mapping", ErrBadContainer, abs, abs+uint64(blen), size)
		}
		if n := len(values); n > 0 && abs < values[n-1].off+values[n-1].length {
			return nil, fmt.Errorf("%w: record batch buffers out of order", ErrBadContainer)
		}
		values = append(values, buf{off: abs, length: uint64(blen)})
	}
	if len(values) == 0 || len(values) > MaxCols {
		return nil, fmt.Errorf("%w: %d value buffers in record batch", ErrBadContainer, len(values))
	}
	if len(ctbytes) != 0 && len(ctbytes) != len(values) {
		return nil, &WidthMismatchError{Col: -1, Want: uint64(len(values)), Got: uint64(len(ctbytes))}
	}

	colBytes := make([]uint8, len(values))
	colOffsets := make([]uint64, len(values))
	for i, v := range values {
		got := v.length / uint64(nrows)
		if len(ctbytes) != 0 {
			want := uint64(ctbytes[i])
			if v.length != want*uint64(nrows) && v.length != pad8(want*uint64(nrows)) {
				return nil, &WidthMismatchError{Col: i, Want: got, Got: want}
			}
			colBytes[i] = ctbytes[i]
		} else {
			if got == 0 || v.length%uint64(nrows) != 0 || !validWidth(uint8(got)) {
				return nil, fmt.Errorf("%w: buffer %d holds %d bytes for %d rows", ErrBadContainer, i, v.length, nrows)
			}
			colBytes[i] = uint8(got)
		}
		colOffsets[i] = v.off
	}
	last := values[len(values)-1]
	return &Layout{
		DataOffset: values[0].off,
		DataLength: last.off + last.length - values[0].off,
		NRows:      uint64(nrows),
		ColBytes:   colBytes,
		ColOffsets: colOffsets,
	}, nil
}
