package step

import (
	"errors"
	"fmt"
)

// MinRecords is the shortest valid log: an initial and a terminal record.
const MinRecords = 2

// ErrShortLog is returned by Finish when fewer than MinRecords were emitted.
var ErrShortLog = errors.New("step: log needs an initial and a terminal record")

// Log is the replay log of one generator run. It is immutable: every
// accessor returns copies, so callers cannot change what later readers see.
type Log struct {
	algorithm string
	structure Structure
	records   []Record
	summary   Summary
}

// Algorithm returns the generator name ("bfs", "dfs", "kruskal", "prim").
func (l *Log) Algorithm() string { return l.algorithm }

// Structure returns the kind of working structure the records snapshot.
func (l *Log) Structure() Structure { return l.structure }

// Len returns the number of records. A nil Log has length 0.
func (l *Log) Len() int {
	if l == nil {
		return 0
	}

	return len(l.records)
}

// At returns a copy of record i and true, or a zero Record and false when
// i is out of range.
func (l *Log) At(i int) (Record, bool) {
	if l == nil || i < 0 || i >= len(l.records) {
		return Record{}, false
	}

	return l.records[i].Clone(), true
}

// Last returns a copy of the terminal record.
func (l *Log) Last() Record {
	return l.records[len(l.records)-1].Clone()
}

// Records returns a copy of every record in order.
func (l *Log) Records() []Record {
	out := make([]Record, len(l.records))
	for i, r := range l.records {
		out[i] = r.Clone()
	}

	return out
}

// Summary returns the run outcome.
func (l *Log) Summary() Summary { return l.summary.clone() }

// Recorder accumulates records during one generator run.
// It is not safe for concurrent use; generators are single-threaded.
type Recorder struct {
	algorithm string
	structure Structure
	records   []Record
}

// NewRecorder starts an empty recording for the named algorithm.
func NewRecorder(algorithm string, s Structure) *Recorder {
	return &Recorder{algorithm: algorithm, structure: s, records: make([]Record, 0, 16)}
}

// Emit appends a deep copy of r. The caller may keep mutating the slices
// it passed in; the stored record does not change.
func (rc *Recorder) Emit(r Record) {
	rc.records = append(rc.records, r.Clone())
}

// Len returns the number of records emitted so far.
func (rc *Recorder) Len() int { return len(rc.records) }

// Finish seals the recording into a Log with the given summary.
// The Recorder must not be used afterwards.
func (rc *Recorder) Finish(sum Summary) (*Log, error) {
	if len(rc.records) < MinRecords {
		return nil, fmt.Errorf("%w: got %d", ErrShortLog, len(rc.records))
	}
	sum.Algorithm = rc.algorithm
	l := &Log{
		algorithm: rc.algorithm,
		structure: rc.structure,
		records:   rc.records,
		summary:   sum.clone(),
	}
	rc.records = nil

	return l, nil
}
