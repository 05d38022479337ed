package ir

import (
	"encoding/binary"
	"hash/maphash"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node consistent with [Equal]: quote
// styles are ignored, named attribute order is ignored and sections hash
// like documents.  Hashes are stable within a process only.
//
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(seed)

	var b [8]byte
	switch n.Type {
	case TextType:
		h.WriteByte(byte(TextType))
		h.WriteString(n.String)
	case TagType:
		h.WriteByte(byte(TagType))
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
		// order independent
		var named uint64
		for i, k := range n.Fields {
			named += pairHash(k.Hash(), n.Named[i].Hash())
		}
		binary.LittleEndian.PutUint64(b[:], named)
		h.Write(b[:])
	case SectionType, DocumentType:
		h.WriteByte(byte(SectionType))
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}

func pairHash(k, v uint64) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], k)
	binary.LittleEndian.PutUint64(b[8:], v)
	h.Write(b[:])
	return h.Sum64()
}
