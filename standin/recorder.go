/*
 * Copyright 2026 The standin Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package standin

import (
	"fmt"
	"sync/atomic"
)

var tick uint64 //global counter ordering calls across doubles

// An Invocation is one recorded method call. Seq starts at 0 and is
// strictly increasing per Double; records are never mutated or removed.
type Invocation struct {
	Method string
	Args   []interface{}
	Seq    int

	tick uint64
}

func (inv Invocation) String() string {
	return fmt.Sprintf("#%d %s(%v)", inv.Seq, inv.Method, inv.Args)
}

// Recorder is the append-only invocation log of one Double.
type Recorder struct {
	d       *Double
	records []*Invocation
}

func newRecorder(d *Double) *Recorder {
	return &Recorder{d: d}
}

func (r *Recorder) record(methodName string, args []interface{}) *Invocation {
	inv := &Invocation{
		Method: methodName,
		Args:   args,
		Seq:    len(r.records),
		tick:   atomic.AddUint64(&tick, 1),
	}
	r.records = append(r.records, inv)
	return inv
}

// All returns a snapshot of the log. The snapshot reflects all calls up
// to the moment of the query and can be read repeatedly without side
// effects.
func (r *Recorder) All() []Invocation {
	snapshot := make([]Invocation, len(r.records))
	for i, inv := range r.records {
		snapshot[i] = *inv
	}
	return snapshot
}

func (r *Recorder) forMethod(m *method) RecordedCalls {
	var subset []*Invocation
	for _, inv := range r.records {
		if inv.Method == m.m.Name {
			subset = append(subset, inv)
		}
	}
	return &recordedCalls{m: m, recorded: subset, desc: fmt.Sprintf("all calls to %v", m)}
}

// RecordedCalls represents a set of recorded invocations to be verified.
// All queries are read-only; none of them claims records.
type RecordedCalls interface {
	/*
		Matching returns the subset of calls whose arguments match.

		Matchers are converted exactly as for StubbedCall.Matching.
	*/
	Matching(matchers ...interface{}) RecordedCalls

	/*
		Slice returns a subset of these calls, including the call at index
		from and excluding the call at index to, like a go slice. Ranges
		beyond the end of the set are truncated rather than failing.
	*/
	Slice(from int, to int) RecordedCalls

	// After returns the subset of these calls invoked after all of
	// otherCalls (which may belong to another Double)
	After(otherCalls RecordedCalls) RecordedCalls

	// Expect asserts the number of calls in this set
	Expect(expect Expectation)

	// NumCalls returns the number of calls in this set.
	// Prefer Expect() over asserting the result of NumCalls()
	NumCalls() int

	calls() []*Invocation
}

type recordedCalls struct {
	m        *method
	recorded []*Invocation
	desc     string
}

func (c *recordedCalls) calls() []*Invocation {
	return c.recorded
}

func (c *recordedCalls) String() string {
	return c.desc
}

func (c *recordedCalls) NumCalls() int {
	return len(c.recorded)
}

func (c *recordedCalls) subset(calls []*Invocation, desc string) RecordedCalls {
	return &recordedCalls{m: c.m, recorded: calls, desc: fmt.Sprintf("%s within %s", desc, c.desc)}
}

func (c *recordedCalls) Matching(matchers ...interface{}) RecordedCalls {
	t := c.m.t()
	t.Helper()
	matcher := NewMatcherForMethod(t, c.m.m, matchers...)

	var subset []*Invocation
	for _, inv := range c.recorded {
		if matcher.Matches(inv.Args...) {
			subset = append(subset, inv)
		}
	}
	return c.subset(subset, fmt.Sprintf("calls matching %v", matcher))
}

func (c *recordedCalls) Slice(from int, to int) RecordedCalls {
	t := c.m.t()
	if from < 0 || to < 0 || from > to {
		t.Fatalf("Invalid Slice of RecordedCalls %v[%d:%d]", c, from, to)
	}
	l := len(c.recorded)
	if from > l {
		from = l
	}
	if to > l {
		to = l
	}
	return c.subset(c.recorded[from:to], fmt.Sprintf("slice[%d:%d] of", from, to))
}

func (c *recordedCalls) After(otherCalls RecordedCalls) RecordedCalls {
	other := otherCalls.calls()

	// every call is after an empty set
	subset := c.recorded
	if len(other) > 0 {
		lastTick := other[len(other)-1].tick
		subset = nil
		for _, inv := range c.recorded {
			if inv.tick > lastTick {
				subset = append(subset, inv)
			}
		}
	}
	return c.subset(subset, fmt.Sprintf("calls after {%v}", otherCalls))
}

func (c *recordedCalls) Expect(expect Expectation) {
	t := c.m.t()
	t.Helper()
	if count := len(c.recorded); !expect.Met(count) {
		t.Errorf("%v expected %v, found %d calls", c, expect, count)
	}
}
