package envelope

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/kopaki-io/kopaki/internal/crypto"
	kerrors "github.com/kopaki-io/kopaki/internal/errors"
)

// magic is the 4-byte file signature identifying a Kopaki envelope.
const magic = "KPKE"

// CurrentVersion is the envelope format version this build reads and writes.
// The value must be incremented for every change that breaks compatibility
// with the existing binary layout.
const CurrentVersion uint8 = 1

// AlgorithmArgon2id identifies argon2id as the key derivation algorithm.
const AlgorithmArgon2id uint8 = 1

// minSize is magic(4) + version(1) + algorithm(1).
const minSize = 6

// Envelope is the versioned on-disk container binding KDF parameters, nonce,
// ciphertext, and authentication tag. An envelope is immutable once written;
// every save produces a new one that atomically replaces the old file.
type Envelope struct {
	Version    uint8
	Algorithm  uint8
	KDF        crypto.Params
	Nonce      []byte
	Ciphertext []byte
	Tag        []byte
}

// New returns an envelope at the current version for the given KDF params.
// Nonce, Ciphertext, and Tag are filled in by the caller after sealing.
func New(kdf crypto.Params) *Envelope {
	return &Envelope{
		Version:   CurrentVersion,
		Algorithm: AlgorithmArgon2id,
		KDF:       kdf,
	}
}

// AssociatedData returns the header bytes authenticated alongside the
// ciphertext: magic, version, algorithm, and the full KDF parameter block.
// Binding these prevents silent downgrade or cost-parameter substitution.
// The nonce is an AEAD input and needs no separate binding.
func (e *Envelope) AssociatedData() []byte {
	var buf bytes.Buffer
	e.writeHeader(&buf)
	return buf.Bytes()
}

func (e *Envelope) writeHeader(buf *bytes.Buffer) {
	buf.WriteString(magic)
	buf.WriteByte(e.Version)
	buf.WriteByte(e.Algorithm)

	var u32 [4]byte
	binary.BigEndian.PutUint32(u32[:], e.KDF.Time)
	buf.Write(u32[:])
	binary.BigEndian.PutUint32(u32[:], e.KDF.Memory)
	buf.Write(u32[:])
	buf.WriteByte(e.KDF.Threads)

	writeField16(buf, e.KDF.Salt)
}

// Marshal serializes the envelope to its binary form. The layout is
// self-describing: every variable-length field carries a length prefix, so
// no external metadata is needed to read the file back.
func (e *Envelope) Marshal() ([]byte, error) {
	if len(e.KDF.Salt) > math.MaxUint16 || len(e.Nonce) > math.MaxUint16 || len(e.Tag) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: field exceeds length prefix", kerrors.ErrEnvelopeCorrupt)
	}
	if uint64(len(e.Ciphertext)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: ciphertext exceeds length prefix", kerrors.ErrEnvelopeCorrupt)
	}

	var buf bytes.Buffer
	buf.Grow(minSize + 11 + len(e.KDF.Salt) + len(e.Nonce) + len(e.Ciphertext) + len(e.Tag) + 10)
	e.writeHeader(&buf)
	writeField16(&buf, e.Nonce)
	writeField32(&buf, e.Ciphertext)
	writeField16(&buf, e.Tag)
	return buf.Bytes(), nil
}

// Unmarshal parses a binary envelope. The version is checked first: unknown
// versions fail closed with ErrUnsupportedVersion before anything else is
// read. All returned byte slices are copies, detached from the input.
func Unmarshal(data []byte) (*Envelope, error) {
	if len(data) < minSize {
		return nil, fmt.Errorf("%w: file too short", kerrors.ErrEnvelopeCorrupt)
	}
	if string(data[:4]) != magic {
		return nil, fmt.Errorf("%w: bad magic bytes", kerrors.ErrEnvelopeCorrupt)
	}

	e := &Envelope{Version: data[4], Algorithm: data[5]}
	if e.Version != CurrentVersion {
		return nil, fmt.Errorf("%w: version %d", kerrors.ErrUnsupportedVersion, e.Version)
	}
	if e.Algorithm != AlgorithmArgon2id {
		return nil, fmt.Errorf("%w: KDF algorithm %d", kerrors.ErrUnsupportedVersion, e.Algorithm)
	}

	rest := data[minSize:]
	if len(rest) < 9 {
		return nil, fmt.Errorf("%w: truncated KDF parameters", kerrors.ErrEnvelopeCorrupt)
	}
	e.KDF.Time = binary.BigEndian.Uint32(rest[0:4])
	e.KDF.Memory = binary.BigEndian.Uint32(rest[4:8])
	e.KDF.Threads = rest[8]
	rest = rest[9:]

	var err error
	if e.KDF.Salt, rest, err = readField16(rest); err != nil {
		return nil, err
	}
	if e.Nonce, rest, err = readField16(rest); err != nil {
		return nil, err
	}
	if e.Ciphertext, rest, err = readField32(rest); err != nil {
		return nil, err
	}
	if e.Tag, rest, err = readField16(rest); err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", kerrors.ErrEnvelopeCorrupt, len(rest))
	}
	return e, nil
}

func writeField16(buf *bytes.Buffer, b []byte) {
	var l [2]byte
	binary.BigEndian.PutUint16(l[:], uint16(len(b)))
	buf.Write(l[:])
	buf.Write(b)
}

func writeField32(buf *bytes.Buffer, b []byte) {
	var l [4]byte
	binary.BigEndian.PutUint32(l[:], uint32(len(b)))
	buf.Write(l[:])
	buf.Write(b)
}

func readField16(data []byte) (field, rest []byte, err error) {
	if len(data) < 2 {
		return nil, nil, fmt.Errorf("%w: truncated length prefix", kerrors.ErrEnvelopeCorrupt)
	}
	n := int(binary.BigEndian.Uint16(data))
	data = data[2:]
	if len(data) < n {
		return nil, nil, fmt.Errorf("%w: field shorter than its length prefix", kerrors.ErrEnvelopeCorrupt)
	}
	return bytes.Clone(data[:n]), data[n:], nil
}

func readField32(data []byte) (field, rest []byte, err error) {
	if len(data) < 4 {
		return nil, nil, fmt.Errorf("%w: truncated length prefix", kerrors.ErrEnvelopeCorrupt)
	}
	n := binary.BigEndian.Uint32(data)
	data = data[4:]
	if uint64(len(data)) < uint64(n) {
		return nil, nil, fmt.Errorf("%w: field shorter than its length prefix", kerrors.ErrEnvelopeCorrupt)
	}
	return bytes.Clone(data[:n]), data[n:], nil
}
