// Package trace records runner events as a msgpack stream so headless runs
// can be inspected or diffed later.
package trace

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/lane-runner/internal/games/runner"
)

// Kind names a record type.
type Kind string

const (
	KindHeader  Kind = "header"
	KindPlayer  Kind = "player"
	KindSpawn   Kind = "spawn"
	KindMove    Kind = "move"
	KindRemove  Kind = "remove"
	KindScore   Kind = "score"
	KindState   Kind = "state"
	KindSummary Kind = "summary"
)

// Record is one entry in a trace. Fields that do not apply to a kind are zero.
type Record struct {
	Kind   Kind    `msgpack:"k"`
	Tick   uint64  `msgpack:"t"`
	ID     uint64  `msgpack:"id,omitempty"`
	Lane   int     `msgpack:"l,omitempty"`
	Size   float64 `msgpack:"sz,omitempty"`
	Depth  float64 `msgpack:"d,omitempty"`
	Height float64 `msgpack:"h,omitempty"`
	Score  int     `msgpack:"sc,omitempty"`
	State  string  `msgpack:"st,omitempty"`
	Seed   int64   `msgpack:"seed,omitempty"`
	Time   float64 `msgpack:"time,omitempty"`
}

// Writer is a runner.Presenter that encodes every event it receives.
// The first encode error is kept and later writes are dropped.
type Writer struct {
	enc   *msgpack.Encoder
	tick  uint64
	moves bool
	err   error
}

var _ runner.Presenter = (*Writer)(nil)

// NewWriter creates a trace writer. Obstacle move events are by far the
// most frequent and are only written when moves is set.
func NewWriter(w io.Writer, moves bool) *Writer {
	return &Writer{enc: msgpack.NewEncoder(w), moves: moves}
}

// SetTick stamps subsequent records with tick n.
func (w *Writer) SetTick(n uint64) {
	w.tick = n
}

// Err returns the first error encountered while writing.
func (w *Writer) Err() error {
	return w.err
}

// WriteHeader writes the record that opens a trace.
func (w *Writer) WriteHeader(seed int64) error {
	w.write(Record{Kind: KindHeader, Seed: seed})
	return w.err
}

// WriteSummary writes the record that closes a trace.
func (w *Writer) WriteSummary(s runner.Snapshot) error {
	w.write(Record{
		Kind:  KindSummary,
		Tick:  s.Tick,
		Score: s.Score,
		State: s.State.String(),
		Depth: s.Player.Depth,
		Time:  s.Time,
	})
	return w.err
}

func (w *Writer) write(r Record) {
	if w.err != nil {
		return
	}
	if r.Tick == 0 {
		r.Tick = w.tick
	}
	if err := w.enc.Encode(&r); err != nil {
		w.err = fmt.Errorf("trace: encode %s: %w", r.Kind, err)
	}
}

func (w *Writer) OnPlayerMoved(lane int, depth, height float64) {
	w.write(Record{Kind: KindPlayer, Lane: lane, Depth: depth, Height: height})
}

func (w *Writer) OnObstacleSpawned(id runner.ObstacleID, lane int, size, depth float64) {
	w.write(Record{Kind: KindSpawn, ID: uint64(id), Lane: lane, Size: size, Depth: depth})
}

func (w *Writer) OnObstacleMoved(id runner.ObstacleID, depth float64) {
	if !w.moves {
		return
	}
	w.write(Record{Kind: KindMove, ID: uint64(id), Depth: depth})
}

func (w *Writer) OnObstacleRemoved(id runner.ObstacleID) {
	w.write(Record{Kind: KindRemove, ID: uint64(id)})
}

func (w *Writer) OnScoreChanged(score int) {
	w.write(Record{Kind: KindScore, Score: score})
}

func (w *Writer) OnStateChanged(state runner.RunState) {
	w.write(Record{Kind: KindState, State: state.String()})
}

// Read decodes every record in r until EOF.
func Read(r io.Reader) ([]Record, error) {
	dec := msgpack.NewDecoder(r)
	var out []Record
	for {
		var rec Record
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("trace: decode record %d: %w", len(out), err)
		}
		out = append(out, rec)
	}
}

// Count tallies records by kind.
func Count(records []Record) map[Kind]int {
	counts := make(map[Kind]int)
	for _, r := range records {
		counts[r.Kind]++
	}
	return counts
}
