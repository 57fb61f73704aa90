package semihost

import (
	"github.com/willf/bitset"

	"github.com/pgavlin/semihost/abi"
)

// Extensions reports the optional semihosting features a host supports.
type Extensions struct {
	n    int
	bits *bitset.BitSet
}

// Extensions reads the host's feature bitmap from the features pseudo-file.
// A file that does not start with the feature magic yields ErrBadMagic.
func (c *Client) Extensions() (*Extensions, error) {
	var ext *Extensions
	err := c.WithFile(abi.FeaturesPath, abi.ModeReadBinary, func(f *File) error {
		var magic [len(abi.FeatureMagic)]byte
		rem, err := f.ReadRaw(magic[:])
		if err != nil {
			return err
		}
		if rem != 0 || magic != abi.FeatureMagic {
			return ErrBadMagic
		}

		var features [abi.MaxFeatureBytes]byte
		rem, err = f.ReadRaw(features[:])
		if err != nil {
			return err
		}
		ext = NewExtensions(features[:len(features)-rem])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ext, nil
}

// NewExtensions builds an extension set from feature bytes.
func NewExtensions(features []byte) *Extensions {
	bits := bitset.New(uint(len(features)) * 8)
	for i, b := range features {
		for j := 0; j < 8; j++ {
			if b&(1<<j) != 0 {
				bits.Set(uint(i*8 + j))
			}
		}
	}
	return &Extensions{n: len(features), bits: bits}
}

// IsSupported returns true if bit of feature byte index is set. Bytes past the
// end of the bitmap read as zero.
func (e *Extensions) IsSupported(index, bit int) bool {
	if index < 0 || bit < 0 || bit > 7 {
		return false
	}
	return e.bits.Test(uint(index*8 + bit))
}

// Supports reports whether f is supported.
func (e *Extensions) Supports(f abi.Feature) bool {
	return e.IsSupported(f.Byte, f.Bit)
}

// ExitExtended reports whether SYS_EXIT_EXTENDED is available.
func (e *Extensions) ExitExtended() bool {
	return e.Supports(abi.FeatureExitExtended)
}

// StdoutStderr reports whether Client.Stderr opens a stream separate from
// Client.Stdout.
func (e *Extensions) StdoutStderr() bool {
	return e.Supports(abi.FeatureStdoutStderr)
}

// Bytes returns the feature bytes read from the host.
func (e *Extensions) Bytes() []byte {
	b := make([]byte, e.n)
	for i := range b {
		for j := 0; j < 8; j++ {
			if e.bits.Test(uint(i*8 + j)) {
				b[i] |= 1 << j
			}
		}
	}
	return b
}
