package catalog

import (
	fmt "fmt"
	io "io"
	math_bits "math/bits"

	proto "github.com/gogo/protobuf/proto"
)

// CatalogState is the persisted header record of a verdict catalog.
// It is hand-maintained but wire-compatible with a proto3 message whose
// fields carry the tags below, so the on-disk format is stable across
// regeneration.
type CatalogState struct {
	MajorVers  int32 `protobuf:"varint,1,opt,name=MajorVers,proto3" json:"MajorVers,omitempty"`
	MinorVers  int32 `protobuf:"varint,2,opt,name=MinorVers,proto3" json:"MinorVers,omitempty"`
	NumChecked int64 `protobuf:"varint,3,opt,name=NumChecked,proto3" json:"NumChecked,omitempty"`
	NumNo      int64 `protobuf:"varint,4,opt,name=NumNo,proto3" json:"NumNo,omitempty"`
	NumMaybe   int64 `protobuf:"varint,5,opt,name=NumMaybe,proto3" json:"NumMaybe,omitempty"`
	NumYes     int64 `protobuf:"varint,6,opt,name=NumYes,proto3" json:"NumYes,omitempty"`
}

func (m *CatalogState) Reset()         { *m = CatalogState{} }
func (m *CatalogState) String() string { return proto.CompactTextString(m) }
func (*CatalogState) ProtoMessage()    {}

func (m *CatalogState) Size() (n int) {
	if m == nil {
		return 0
	}
	if m.MajorVers != 0 {
		n += 1 + sovState(uint64(m.MajorVers))
	}
	if m.MinorVers != 0 {
		n += 1 + sovState(uint64(m.MinorVers))
	}
	if m.NumChecked != 0 {
		n += 1 + sovState(uint64(m.NumChecked))
	}
	if m.NumNo != 0 {
		n += 1 + sovState(uint64(m.NumNo))
	}
	if m.NumMaybe != 0 {
		n += 1 + sovState(uint64(m.NumMaybe))
	}
	if m.NumYes != 0 {
		n += 1 + sovState(uint64(m.NumYes))
	}
	return n
}

func (m *CatalogState) Marshal() (dAtA []byte, err error) {
	size := m.Size()
	dAtA = make([]byte, size)
	n, err := m.MarshalToSizedBuffer(dAtA[:size])
	if err != nil {
		return nil, err
	}
	return dAtA[:n], nil
}

func (m *CatalogState) MarshalToSizedBuffer(dAtA []byte) (int, error) {
	i := len(dAtA)
	if m.NumYes != 0 {
		i = encodeVarintState(dAtA, i, uint64(m.NumYes))
		i--
		dAtA[i] = 0x30
	}
	if m.NumMaybe != 0 {
		i = encodeVarintState(dAtA, i, uint64(m.NumMaybe))
		i--
		dAtA[i] = 0x28
	}
	if m.NumNo != 0 {
		i = encodeVarintState(dAtA, i, uint64(m.NumNo))
		i--
		dAtA[i] = 0x20
	}
	if m.NumChecked != 0 {
		i = encodeVarintState(dAtA, i, uint64(m.NumChecked))
		i--
		dAtA[i] = 0x18
	}
	if m.MinorVers != 0 {
		i = encodeVarintState(dAtA, i, uint64(m.MinorVers))
		i--
		dAtA[i] = 0x10
	}
	if m.MajorVers != 0 {
		i = encodeVarintState(dAtA, i, uint64(m.MajorVers))
		i--
		dAtA[i] = 0x8
	}
	return len(dAtA) - i, nil
}

func (m *CatalogState) Unmarshal(dAtA []byte) error {
	l := len(dAtA)
	iNdEx := 0
	for iNdEx < l {
		var wire uint64
		if err := readVarintState(dAtA, l, &iNdEx, &wire); err != nil {
			return err
		}
		fieldNum := int32(wire >> 3)
		wireType := int(wire & 0x7)
		if wireType != 0 {
			if err := skipFieldState(dAtA, l, &iNdEx, wireType); err != nil {
				return err
			}
			continue
		}
		var v uint64
		if err := readVarintState(dAtA, l, &iNdEx, &v); err != nil {
			return err
		}
		switch fieldNum {
		case 1:
			m.MajorVers = int32(v)
		case 2:
			m.MinorVers = int32(v)
		case 3:
			m.NumChecked = int64(v)
		case 4:
			m.NumNo = int64(v)
		case 5:
			m.NumMaybe = int64(v)
		case 6:
			m.NumYes = int64(v)
		}
	}
	return nil
}

func sovState(x uint64) (n int) {
	return (math_bits.Len64(x|1) + 6) / 7
}

func encodeVarintState(dAtA []byte, offset int, v uint64) int {
	offset -= sovState(v)
	base := offset
	for v >= 1<<7 {
		dAtA[offset] = uint8(v&0x7f | 0x80)
		v >>= 7
		offset++
	}
	dAtA[offset] = uint8(v)
	return base
}

func readVarintState(dAtA []byte, l int, iNdEx *int, out *uint64) error {
	var v uint64
	for shift := uint(0); ; shift += 7 {
		if shift >= 64 {
			return fmt.Errorf("catalog state: varint overflow")
		}
		if *iNdEx >= l {
			return io.ErrUnexpectedEOF
		}
		b := dAtA[*iNdEx]
		*iNdEx++
		v |= uint64(b&0x7f) << shift
		if b < 0x80 {
			break
		}
	}
	*out = v
	return nil
}

func skipFieldState(dAtA []byte, l int, iNdEx *int, wireType int) error {
	switch wireType {
	case 1:
		*iNdEx += 8
	case 2:
		var n uint64
		if err := readVarintState(dAtA, l, iNdEx, &n); err != nil {
			return err
		}
		*iNdEx += int(n)
	case 5:
		*iNdEx += 4
	default:
		return fmt.Errorf("catalog state: unknown wire type %d", wireType)
	}
	if *iNdEx > l {
		return io.ErrUnexpectedEOF
	}
	return nil
}
