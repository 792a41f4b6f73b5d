// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"errors"

	"github.com/veldspar/strata/soil"
)

// ErrPoolExhausted is returned when the run pool's free list is empty.
// The pool never grows; mass must not be lost silently, so callers see
// the failure and decide.
var ErrPoolExhausted = errors.New("terrain: run pool exhausted")

// RunID indexes a Run inside a Pool's backing array.
type RunID int32

// NilRun marks an empty column top or the end of a list.
const NilRun RunID = -1

// Run is a contiguous deposit of one soil type inside a column.
// Floor of a run equals floor plus height of the run below; the bottom
// run's floor is 0.
type Run struct {
	Type       soil.Type
	Height     float32
	Floor      float32
	Saturation float32

	// below links to the next run down the column, and doubles as the
	// free-list link while the run is pooled.
	below RunID
}

// Pool is a fixed-capacity arena of Runs reused via a free list.
// Free() + InUse() == Cap() at all times.
type Pool struct {
	runs []Run
	free RunID
	used int
}

func NewPool(capacity int) *Pool {
	p := &Pool{
		runs: make([]Run, capacity),
	}
	p.Reset()
	return p
}

// Get dequeues a free run, sets its height and type, and clears its
// saturation. Returns ErrPoolExhausted if the free list is empty.
func (p *Pool) Get(height float32, typ soil.Type) (RunID, error) {
	id := p.free
	if id == NilRun {
		return NilRun, ErrPoolExhausted
	}
	run := &p.runs[id]
	p.free = run.below

	run.Type = typ
	run.Height = height
	run.Floor = 0
	run.Saturation = 0
	run.below = NilRun

	p.used++
	return id, nil
}

// Release fully resets a run and returns it to the free list. Mandatory
// before reuse; no stale state may leak between columns.
func (p *Pool) Release(id RunID) {
	run := &p.runs[id]
	*run = Run{below: p.free}
	p.free = id
	p.used--
}

// Reset rebuilds the free list over the whole backing array without
// discarding it.
func (p *Pool) Reset() {
	for i := range p.runs {
		p.runs[i] = Run{below: RunID(i) - 1}
	}
	if len(p.runs) > 0 {
		p.free = RunID(len(p.runs) - 1)
	} else {
		p.free = NilRun
	}
	p.used = 0
}

func (p *Pool) Cap() int {
	return len(p.runs)
}

func (p *Pool) Free() int {
	return len(p.runs) - p.used
}

func (p *Pool) InUse() int {
	return p.used
}

func (p *Pool) run(id RunID) *Run {
	return &p.runs[id]
}
