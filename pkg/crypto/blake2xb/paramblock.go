package blake2xb

import "encoding/binary"

// paramBlockSize is the fixed wire size of a BLAKE2b/BLAKE2X parameter
// block (RFC 7693 section 2.5).
const paramBlockSize = 64

// unknownXOFDigestLen is the sentinel stored in the wire parameter
// block's xof_digest_len field to mean "not yet known, must be supplied
// to Finish".
const unknownXOFDigestLen uint32 = 0xFFFFFFFF

// paramBlock mirrors the 64-byte BLAKE2X parameter block layout
// byte-for-byte (see SPEC_FULL.md §6):
//
//	offset  size  field
//	0       1     digest_len
//	1       1     key_len
//	2       1     fanout
//	3       1     depth
//	4       4     leaf_len (LE u32)
//	8       4     node_off (LE u32)
//	12      4     xof_digest_len (LE u32)
//	16      1     node_depth
//	17      1     inner_len
//	18      14    reserved
//	32      16    salt
//	48      16    personality
type paramBlock struct {
	digestLen    uint8
	keyLen       uint8
	fanout       uint8
	depth        uint8
	leafLen      uint32
	nodeOff      uint32
	xofDigestLen uint32
	nodeDepth    uint8
	innerLen     uint8
	salt         [16]byte
	personality  [16]byte
}

// bytes renders the parameter block to its 64-byte little-endian wire
// form.
func (p *paramBlock) bytes() [paramBlockSize]byte {
	var b [paramBlockSize]byte
	b[0] = p.digestLen
	b[1] = p.keyLen
	b[2] = p.fanout
	b[3] = p.depth
	binary.LittleEndian.PutUint32(b[4:8], p.leafLen)
	binary.LittleEndian.PutUint32(b[8:12], p.nodeOff)
	binary.LittleEndian.PutUint32(b[12:16], p.xofDigestLen)
	b[16] = p.nodeDepth
	b[17] = p.innerLen
	// b[18:32] reserved, left zero.
	copy(b[32:48], p.salt[:])
	copy(b[48:64], p.personality[:])
	return b
}

// initialChainValue computes the initial BLAKE2b chain value for this
// parameter block: IV XOR the little-endian parameter block read as
// eight u64 words.
func (p *paramBlock) initialChainValue() [8]uint64 {
	raw := p.bytes()
	var h [8]uint64
	for i := 0; i < 8; i++ {
		h[i] = iv[i] ^ leUint64(raw[i*8:i*8+8])
	}
	return h
}

func leUint64(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

func putLeUint64(b []byte, v uint64) {
	binary.LittleEndian.PutUint64(b, v)
}
