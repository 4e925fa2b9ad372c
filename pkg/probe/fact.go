// Package probe collects platform layout facts relevant to shared-memory
// IPC: sizes of POSIX synchronization primitive types, values of their
// special constants, and companion memory/host facts.
//
// Facts are grouped into named sections held in a Registry and gathered by a
// Collector. The sync section reproduces the classic C diagnostic that
// prints sizeof(sem_t) and friends; memory and host sections add the
// surrounding layout context (page size, cache line size, /dev/shm
// capacity, host identity).
package probe

import (
	"strconv"
	"time"
)

// FactKind describes how a fact's value should be interpreted and rendered.
type FactKind uint8

const (
	// FactSize is a sizeof() result in bytes.
	FactSize FactKind = iota
	// FactAddress is an address-like sentinel, rendered in hex.
	FactAddress
	// FactFlag is a small integer constant such as PTHREAD_PROCESS_SHARED.
	FactFlag
	// FactCount is a cardinality, e.g. logical CPU count.
	FactCount
	// FactBytes is a byte quantity that is not a sizeof() result.
	FactBytes
	// FactText is a string-valued fact carried in Str.
	FactText
)

var factKindNames = []string{
	"size",
	"address",
	"flag",
	"count",
	"bytes",
	"text",
}

func (k FactKind) String() string {
	if int(k) < len(factKindNames) {
		return factKindNames[k]
	}
	return "unknown"
}

// Fact is a single observed platform value.
type Fact struct {
	Name  string
	Kind  FactKind
	Value uint64
	Str   string
}

// FormatValue renders the fact's value the way the text output prints it:
// hex for addresses, decimal for numeric kinds, verbatim for text.
func (f Fact) FormatValue() string {
	switch f.Kind {
	case FactAddress:
		return "0x" + strconv.FormatUint(f.Value, 16)
	case FactText:
		return f.Str
	default:
		return strconv.FormatUint(f.Value, 10)
	}
}

// Section is the result of probing one named group of facts. Err is set
// when the section's probe failed; Facts is nil in that case.
type Section struct {
	Name  string
	Facts []Fact
	Err   error
}

// Report is an ordered collection result. Section order follows registry
// registration order regardless of how collection was scheduled.
type Report struct {
	GOOS        string
	GOARCH      string
	CollectedAt time.Time
	Sections    []Section
}

// Failed reports whether any section in the report carries an error.
func (r *Report) Failed() bool {
	for i := range r.Sections {
		if r.Sections[i].Err != nil {
			return true
		}
	}
	return false
}
