package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/poiesic/landscape/core"
)

// Key prefixes for different data types
const (
	vectorPrefix         = "embvec"
	assessmentPrefix     = "assess"
	assessmentDatePrefix = "assessd"
)

// makeVectorKey generates a key for a cached embedding by candidate ID.
func makeVectorKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", vectorPrefix, id))
}

// makeAssessmentKey generates a key for an assessment record by ID.
func makeAssessmentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", assessmentPrefix, id))
}

// makeAssessmentDateKey generates a composite key for the date index.
// Format: prefix:timestamp:id
func makeAssessmentDateKey(timestamp time.Time, id core.ID) []byte {
	prefix := assessmentDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialAssessmentDateKey generates a partial key for date range scans.
// Format: prefix:timestamp
func makePartialAssessmentDateKey(timestamp time.Time) []byte {
	prefix := assessmentDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}
