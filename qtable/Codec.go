package qtable

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/samuelfneumann/mephistophelia/action"
	"github.com/samuelfneumann/mephistophelia/perception"
)

// Binary layout, all integers little endian:
//
//	header: magic "MQTB" | version u16 | actions u8 | rows u64
//	row:    kind u8 | key length u16 | key | actions × float64
//
// A Position key is x i64 | y i64. A Radar key is one byte per slot
// holding symbol<<1 | nearest.
const (
	magic   = "MQTB"
	version = uint16(1)

	positionKeyLen = 16
	radarKeyLen    = perception.Slots
)

// ErrCorrupt is returned, wrapped, when decoding data that is not a
// valid serialised QTable
var ErrCorrupt = errors.New("corrupt q-table data")

// MarshalBinary implements encoding.BinaryMarshaler. Rows are written
// in the order they were created.
func (q *QTable) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(magic)

	le := binary.LittleEndian
	buf.Write(le.AppendUint16(nil, version))
	buf.WriteByte(uint8(action.Count))
	buf.Write(le.AppendUint64(nil, uint64(len(q.states))))

	for _, s := range q.states {
		key, err := encodeKey(s)
		if err != nil {
			return nil, fmt.Errorf("marshalBinary: %v", err)
		}
		buf.WriteByte(uint8(s.Kind()))
		buf.Write(le.AppendUint16(nil, uint16(len(key))))
		buf.Write(key)

		for _, value := range q.rows[s] {
			buf.Write(le.AppendUint64(nil, math.Float64bits(value)))
		}
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The receiver
// is replaced wholesale, and only if the whole of data decodes
// successfully; on error the receiver is left untouched.
func (q *QTable) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)

	head := make([]byte, len(magic))
	if _, err := io.ReadFull(r, head); err != nil || string(head) != magic {
		return fmt.Errorf("unmarshalBinary: bad magic: %w", ErrCorrupt)
	}

	var (
		ver     uint16
		actions uint8
		count   uint64
	)
	if err := readAll(r, &ver, &actions, &count); err != nil {
		return fmt.Errorf("unmarshalBinary: header: %w", err)
	}
	if ver != version {
		return fmt.Errorf("unmarshalBinary: unsupported version %d: %w",
			ver, ErrCorrupt)
	}
	if int(actions) != action.Count {
		return fmt.Errorf("unmarshalBinary: table has %d actions, want %d: %w",
			actions, action.Count, ErrCorrupt)
	}

	// Every row takes at least this many bytes, which bounds count
	// before anything is allocated from it
	minRow := 3 + 8*action.Count
	if count > uint64(r.Len()/minRow) {
		return fmt.Errorf("unmarshalBinary: %d rows cannot fit in %d bytes: %w",
			count, r.Len(), ErrCorrupt)
	}

	table := &QTable{
		rows:   make(map[perception.State]*Row, count),
		states: make([]perception.State, 0, count),
	}
	for i := uint64(0); i < count; i++ {
		var (
			kind   uint8
			keyLen uint16
		)
		if err := readAll(r, &kind, &keyLen); err != nil {
			return fmt.Errorf("unmarshalBinary: row %d: %w", i, err)
		}

		key := make([]byte, keyLen)
		if _, err := io.ReadFull(r, key); err != nil {
			return fmt.Errorf("unmarshalBinary: row %d key: %w", i, ErrCorrupt)
		}
		s, err := decodeKey(perception.Kind(kind), key)
		if err != nil {
			return fmt.Errorf("unmarshalBinary: row %d: %w", i, err)
		}

		var row Row
		if err := binary.Read(r, binary.LittleEndian, &row); err != nil {
			return fmt.Errorf("unmarshalBinary: row %d values: %w", i, ErrCorrupt)
		}

		if !table.Ensure(s) {
			return fmt.Errorf("unmarshalBinary: duplicate state %v: %w", s,
				ErrCorrupt)
		}
		*table.rows[s] = row
	}

	if r.Len() != 0 {
		return fmt.Errorf("unmarshalBinary: %d trailing bytes: %w", r.Len(),
			ErrCorrupt)
	}

	*q = *table
	return nil
}

func readAll(r io.Reader, data ...interface{}) error {
	for _, d := range data {
		if err := binary.Read(r, binary.LittleEndian, d); err != nil {
			return ErrCorrupt
		}
	}
	return nil
}

func encodeKey(s perception.State) ([]byte, error) {
	switch state := s.(type) {
	case perception.Position:
		key := binary.LittleEndian.AppendUint64(nil, uint64(int64(state.X)))
		return binary.LittleEndian.AppendUint64(key, uint64(int64(state.Y))), nil

	case perception.Radar:
		key := make([]byte, radarKeyLen)
		for i, reading := range state {
			key[i] = uint8(reading.Symbol) << 1
			if reading.Nearest {
				key[i] |= 1
			}
		}
		return key, nil
	}

	return nil, fmt.Errorf("cannot encode state of type %T", s)
}

func decodeKey(kind perception.Kind, key []byte) (perception.State, error) {
	switch kind {
	case perception.PositionKind:
		if len(key) != positionKeyLen {
			return nil, fmt.Errorf("position key of %d bytes: %w", len(key),
				ErrCorrupt)
		}
		x := int64(binary.LittleEndian.Uint64(key[:8]))
		y := int64(binary.LittleEndian.Uint64(key[8:]))
		return perception.Position{X: int(x), Y: int(y)}, nil

	case perception.RadarKind:
		if len(key) != radarKeyLen {
			return nil, fmt.Errorf("radar key of %d bytes: %w", len(key),
				ErrCorrupt)
		}

		var state perception.Radar
		nearest := 0
		for i, b := range key {
			symbol := perception.Symbol(b >> 1)
			if !symbol.Valid() {
				return nil, fmt.Errorf("radar slot %d has symbol %d: %w", i,
					b>>1, ErrCorrupt)
			}
			state[i] = perception.Reading{Symbol: symbol, Nearest: b&1 == 1}
			if state[i].Nearest {
				nearest++
			}
		}
		if nearest != 1 {
			return nil, fmt.Errorf("radar key has %d nearest probes: %w",
				nearest, ErrCorrupt)
		}
		return state, nil
	}

	return nil, fmt.Errorf("unknown state kind %d: %w", kind, ErrCorrupt)
}
