package core

import (
	"time"

	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the types the storage layer persists.
// The persisted surface is small enough that generated code is not worth a
// codegen step.

// IDMUS serializes ID values.
var IDMUS = idMUS{}

// VectorMUS serializes embedding vectors.
var VectorMUS = ord.NewSliceSer[float32](raw.Float32)

// AssessmentRecordMUS serializes archived assessment records.
var AssessmentRecordMUS = assessmentRecordMUS{}

var (
	_ mus.Serializer[ID]               = IDMUS
	_ mus.Serializer[AssessmentRecord] = AssessmentRecordMUS
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type assessmentRecordMUS struct{}

func (assessmentRecordMUS) Marshal(record AssessmentRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(record.Id, bs)
	n += ord.String.Marshal(record.TopicTitle, bs[n:])
	n += varint.Uint64.Marshal(uint64(record.CreatedAt.UnixMicro()), bs[n:])
	n += ord.String.Marshal(record.Payload, bs[n:])
	return n
}

func (assessmentRecordMUS) Unmarshal(bs []byte) (record AssessmentRecord, n int, err error) {
	var n1 int
	record.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return record, n, err
	}
	record.TopicTitle, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return record, n, err
	}
	var micros uint64
	micros, n1, err = varint.Uint64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return record, n, err
	}
	record.CreatedAt = time.UnixMicro(int64(micros)).UTC()
	record.Payload, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return record, n, err
}

func (assessmentRecordMUS) Size(record AssessmentRecord) (size int) {
	size = IDMUS.Size(record.Id)
	size += ord.String.Size(record.TopicTitle)
	size += varint.Uint64.Size(uint64(record.CreatedAt.UnixMicro()))
	size += ord.String.Size(record.Payload)
	return size
}

func (assessmentRecordMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return n, err
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return n, err
	}
	n1, err = varint.Uint64.Skip(bs[n:])
	n += n1
	if err != nil {
		return n, err
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return n, err
}
