package abi

import "fmt"

// OpenMode selects how a file is opened. The numeric values match the order of
// the fopen mode strings and are passed to the host unchanged.
type OpenMode uintptr

const (
	ModeRead             OpenMode = 0  // r
	ModeReadBinary       OpenMode = 1  // rb
	ModeReadWrite        OpenMode = 2  // r+
	ModeReadWriteBinary  OpenMode = 3  // r+b
	ModeWrite            OpenMode = 4  // w
	ModeWriteBinary      OpenMode = 5  // wb
	ModeWriteRead        OpenMode = 6  // w+
	ModeWriteReadBinary  OpenMode = 7  // w+b
	ModeAppend           OpenMode = 8  // a
	ModeAppendBinary     OpenMode = 9  // ab
	ModeAppendRead       OpenMode = 10 // a+
	ModeAppendReadBinary OpenMode = 11 // a+b
)

var modeStrings = [...]string{"r", "rb", "r+", "r+b", "w", "wb", "w+", "w+b", "a", "ab", "a+", "a+b"}

func (m OpenMode) String() string {
	if int(m) < len(modeStrings) {
		return modeStrings[m]
	}
	return fmt.Sprintf("OpenMode(%d)", uintptr(m))
}

// ParseOpenMode parses an fopen mode string. Both "r+b" and "rb+" are accepted.
func ParseOpenMode(s string) (OpenMode, error) {
	switch s {
	case "rb+":
		return ModeReadWriteBinary, nil
	case "wb+":
		return ModeWriteReadBinary, nil
	case "ab+":
		return ModeAppendReadBinary, nil
	}
	for i, ms := range modeStrings {
		if ms == s {
			return OpenMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown open mode '%v'", s)
}
