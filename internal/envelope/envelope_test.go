package envelope

import (
	"bytes"
	"errors"
	"testing"

	"github.com/kopaki-io/kopaki/internal/crypto"
	kerrors "github.com/kopaki-io/kopaki/internal/errors"
)

func sampleEnvelope() *Envelope {
	e := New(crypto.Params{
		Profile: crypto.Profile{Time: 3, Memory: 64 * 1024, Threads: 4},
		Salt:    bytes.Repeat([]byte{0xAB}, crypto.SaltSize),
	})
	e.Nonce = bytes.Repeat([]byte{0x01}, crypto.NonceSize)
	e.Ciphertext = []byte("opaque ciphertext bytes")
	e.Tag = bytes.Repeat([]byte{0x02}, crypto.TagSize)
	return e
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	env := sampleEnvelope()
	blob, err := env.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	parsed, err := Unmarshal(blob)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if parsed.Version != env.Version || parsed.Algorithm != env.Algorithm {
		t.Errorf("version/algorithm mismatch: %+v vs %+v", parsed, env)
	}
	if parsed.KDF.Time != env.KDF.Time || parsed.KDF.Memory != env.KDF.Memory || parsed.KDF.Threads != env.KDF.Threads {
		t.Errorf("KDF params mismatch: %+v vs %+v", parsed.KDF, env.KDF)
	}
	if !bytes.Equal(parsed.KDF.Salt, env.KDF.Salt) ||
		!bytes.Equal(parsed.Nonce, env.Nonce) ||
		!bytes.Equal(parsed.Ciphertext, env.Ciphertext) ||
		!bytes.Equal(parsed.Tag, env.Tag) {
		t.Error("byte fields did not round trip")
	}

	// The layout is canonical: re-marshaling reproduces the input exactly.
	again, err := parsed.Marshal()
	if err != nil {
		t.Fatalf("re-Marshal failed: %v", err)
	}
	if !bytes.Equal(again, blob) {
		t.Error("re-marshaled envelope differs from original bytes")
	}
}

func TestUnmarshalRejectsBadMagic(t *testing.T) {
	blob, err := sampleEnvelope().Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	blob[0] = 'X'
	if _, err := Unmarshal(blob); !errors.Is(err, kerrors.ErrEnvelopeCorrupt) {
		t.Errorf("expected ErrEnvelopeCorrupt, got %v", err)
	}
}

func TestUnmarshalRejectsUnknownVersion(t *testing.T) {
	blob, err := sampleEnvelope().Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	blob[4] = 99
	if _, err := Unmarshal(blob); !errors.Is(err, kerrors.ErrUnsupportedVersion) {
		t.Errorf("expected ErrUnsupportedVersion, got %v", err)
	}
}

func TestUnmarshalRejectsUnknownAlgorithm(t *testing.T) {
	blob, err := sampleEnvelope().Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	blob[5] = 7
	if _, err := Unmarshal(blob); !errors.Is(err, kerrors.ErrUnsupportedVersion) {
		t.Errorf("expected ErrUnsupportedVersion, got %v", err)
	}
}

func TestUnmarshalRejectsTruncation(t *testing.T) {
	blob, err := sampleEnvelope().Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	for n := 0; n < len(blob); n++ {
		if _, err := Unmarshal(blob[:n]); err == nil {
			t.Errorf("truncation to %d bytes was accepted", n)
		}
	}
}

func TestUnmarshalRejectsTrailingBytes(t *testing.T) {
	blob, err := sampleEnvelope().Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	blob = append(blob, 0x00)
	if _, err := Unmarshal(blob); !errors.Is(err, kerrors.ErrEnvelopeCorrupt) {
		t.Errorf("expected ErrEnvelopeCorrupt, got %v", err)
	}
}

func TestAssociatedDataBindsHeader(t *testing.T) {
	env := sampleEnvelope()
	base := env.AssociatedData()

	bumped := *env
	bumped.Version = 2
	if bytes.Equal(base, bumped.AssociatedData()) {
		t.Error("associated data does not cover the version")
	}

	retuned := *env
	retuned.KDF.Memory = 1024
	if bytes.Equal(base, retuned.AssociatedData()) {
		t.Error("associated data does not cover KDF cost parameters")
	}

	resalted := *env
	resalted.KDF.Salt = bytes.Repeat([]byte{0xCD}, crypto.SaltSize)
	if bytes.Equal(base, resalted.AssociatedData()) {
		t.Error("associated data does not cover the salt")
	}
}

func TestUnmarshalCopiesInput(t *testing.T) {
	blob, err := sampleEnvelope().Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	parsed, err := Unmarshal(blob)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	for i := range blob {
		blob[i] = 0xFF
	}
	if !bytes.Equal(parsed.Nonce, bytes.Repeat([]byte{0x01}, crypto.NonceSize)) {
		t.Error("parsed envelope aliases the input buffer")
	}
}

func FuzzUnmarshal(f *testing.F) {
	blob, err := sampleEnvelope().Marshal()
	if err != nil {
		f.Fatalf("Marshal failed: %v", err)
	}
	f.Add(blob)
	f.Add([]byte(magic))
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		env, err := Unmarshal(data)
		if err != nil {
			return
		}
		// Anything accepted must re-marshal to the exact input.
		out, err := env.Marshal()
		if err != nil {
			t.Fatalf("accepted envelope failed to marshal: %v", err)
		}
		if !bytes.Equal(out, data) {
			t.Fatal("accepted envelope did not round trip")
		}
	})
}
