package graphfile

import (
	"bufio"
	"encoding/binary"
	"io"
)

// encodeAdjacency writes the CSR header plus the four data blocks to w.
// forward and backward are indexed by vertex id (0..vertexCount-1) and
// must already be sorted ascending and deduplicated per row; encodeAdjacency
// only checks the two invariants the format's writer is required to
// assert (§4.A): a non-empty forward row never contains vertex 0, and the
// total forward edge count equals the total backward edge count.
func encodeAdjacency(w io.Writer, vertexCount uint32, forward, backward [][]uint32) error {
	var edgeCount uint64
	for _, row := range forward {
		for _, v := range row {
			if v == 0 {
				return ErrAdjacencyInvariant
			}
		}
		edgeCount += uint64(len(row))
	}
	var backwardCount uint64
	for _, row := range backward {
		backwardCount += uint64(len(row))
	}
	if edgeCount != backwardCount {
		return ErrAdjacencyInvariant
	}
	if edgeCount > 1<<32-1 {
		return ErrAdjacencyInvariant
	}

	bw := bufio.NewWriter(w)
	var hdr [headerSize]byte
	binary.LittleEndian.PutUint32(hdr[0:4], magic)
	binary.LittleEndian.PutUint32(hdr[4:8], 0)
	binary.LittleEndian.PutUint32(hdr[8:12], vertexCount)
	binary.LittleEndian.PutUint32(hdr[12:16], uint32(edgeCount))
	if _, err := bw.Write(hdr[:]); err != nil {
		return err
	}

	if err := writeIndexAndEdges(bw, vertexCount, forward); err != nil {
		return err
	}
	if err := writeIndexAndEdges(bw, vertexCount, backward); err != nil {
		return err
	}
	return bw.Flush()
}

// writeIndexAndEdges writes one CSR block: the vertexCount+1 cumulative
// index followed by the concatenated edge rows.
func writeIndexAndEdges(bw *bufio.Writer, vertexCount uint32, rows [][]uint32) error {
	var buf [4]byte
	var offset uint32
	for v := uint32(0); v < vertexCount; v++ {
		binary.LittleEndian.PutUint32(buf[:], offset)
		if _, err := bw.Write(buf[:]); err != nil {
			return err
		}
		offset += uint32(len(rows[v]))
	}
	binary.LittleEndian.PutUint32(buf[:], offset)
	if _, err := bw.Write(buf[:]); err != nil {
		return err
	}

	for v := uint32(0); v < vertexCount; v++ {
		for _, w := range rows[v] {
			binary.LittleEndian.PutUint32(buf[:], w)
			if _, err := bw.Write(buf[:]); err != nil {
				return err
			}
		}
	}
	return nil
}
