package container

import "encoding/binary"

// Minimal flatbuffers accessors, sufficient to walk the Arrow file footer
// and the Feather v1 metadata: root resolution, vtable field lookup,
// inline scalars, indirect tables and vectors. Every access is bounds
// checked against the metadata buffer; a failed lookup reports absence
// rather than panicking, and the parsers translate absence into
// ErrBadContainer. Schemas are deliberately not decoded.

type fbTable struct {
	buf []byte
	pos uint32
}

// fbRoot resolves the root table of a flatbuffer.
func fbRoot(buf []byte) (fbTable, bool) {
	if len(buf) < 8 {
		return fbTable{}, false
	}
	root := binary.LittleEndian.Uint32(buf)
	if int64(root)+4 > int64(len(buf)) {
		return fbTable{}, false
	}
	return fbTable{buf: buf, pos: root}, true
}

// slot returns the absolute position of a field inside the table, or 0
// when the field is absent or the vtable is out of bounds.
func (t fbTable) slot(field int) uint32 {
	if int64(t.pos)+4 > int64(len(t.buf)) {
		return 0
	}
	soffset := int32(binary.LittleEndian.Uint32(t.buf[t.pos:]))
	vpos := int64(t.pos) - int64(soffset)
	if vpos < 0 || vpos+4 > int64(len(t.buf)) {
		return 0
	}
	vlen := binary.LittleEndian.Uint16(t.buf[vpos:])
	fo := int64(4 + 2*field)
	if fo+2 > int64(vlen) || vpos+fo+2 > int64(len(t.buf)) {
		return 0
	}
	off := binary.LittleEndian.Uint16(t.buf[vpos+fo:])
	if off == 0 {
		return 0
	}
	return t.pos + uint32(off)
}

func (t fbTable) uint8Field(field int, def uint8) uint8 {
	p := t.slot(field)
	if p == 0 || int64(p)+1 > int64(len(t.buf)) {
		return def
	}
	return t.buf[p]
}

func (t fbTable) int32Field(field int, def int32) int32 {
	p := t.slot(field)
	if p == 0 || int64(p)+4 > int64(len(t.buf)) {
		return def
	}
	return int32(binary.LittleEndian.Uint32(t.buf[p:]))
}

func (t fbTable) int64Field(field int, def int64) int64 {
	p := t.slot(field)
	if p == 0 || int64(p)+8 > int64(len(t.buf)) {
		return def
	}
	return int64(binary.LittleEndian.Uint64(t.buf[p:]))
}

// tableField follows an indirect field to a nested table.
func (t fbTable) tableField(field int) (fbTable, bool) {
	p := t.slot(field)
	if p == 0 || int64(p)+4 > int64(len(t.buf)) {
		return fbTable{}, false
	}
	target := int64(p) + int64(binary.LittleEndian.Uint32(t.buf[p:]))
	if target+4 > int64(len(t.buf)) {
		return fbTable{}, false
	}
	return fbTable{buf: t.buf, pos: uint32(target)}, true
}

// vectorField follows an indirect field to a vector and returns the
// position of its first element and the element count. elemSize is the
// inline element size (offset size for vectors of tables).
func (t fbTable) vectorField(field int, elemSize int) (uint32, uint32, bool) {
	p := t.slot(field)
	if p == 0 || int64(p)+4 > int64(len(t.buf)) {
		return 0, 0, false
	}
	vpos := int64(p) + int64(binary.LittleEndian.Uint32(t.buf[p:]))
	if vpos+4 > int64(len(t.buf)) {
		return 0, 0, false
	}
	count := binary.LittleEndian.Uint32(t.buf[vpos:])
	elems := vpos + 4
	if elems+int64(count)*int64(elemSize) > int64(len(t.buf)) {
		return 0, 0, false
	}
	return uint32(elems), count, true
}

// vectorTable resolves element i of a vector of tables.
func (t fbTable) vectorTable(elems uint32, i uint32) (fbTable, bool) {
	p := int64(elems) + 4*int64(i)
	if p+4 > int64(len(t.buf)) {
		return fbTable{}, false
	}
	target := p + int64(binary.LittleEndian.Uint32(t.buf[p:]))
	if target+4 > int64(len(t.buf)) {
		return fbTable{}, false
	}
	return fbTable{buf: t.buf, pos: uint32(target)}, true
}

// fbI64 reads a struct-inline int64 at pos.
func fbI64(buf []byte, pos uint32) int64 {
	return int64(binary.LittleEndian.Uint64(buf[pos:]))
}
