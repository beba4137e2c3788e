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

import "fmt"

/*
A Verifier asserts interaction expectations over a Double's recorded log.

Each Verify call counts the unclaimed records matching a method name (and
optionally arguments) and, on success, claims them, so the same
interaction can never satisfy two expectations. VerifyNoMoreInteractions
then detects any record left unclaimed. Verification is order-independent
among calls to the same method.
*/
type Verifier struct {
	d       *Double
	claimed map[int]bool
}

func newVerifier(d *Double) *Verifier {
	return &Verifier{d: d, claimed: make(map[int]bool)}
}

// Verify is shorthand for VerifyTimes(methodName, 1, matchers...)
func (v *Verifier) Verify(methodName string, matchers ...interface{}) {
	v.d.t.Helper()
	v.VerifyTimes(methodName, 1, matchers...)
}

/*
VerifyTimes asserts that methodName was invoked exactly times times among
the records not yet claimed by earlier Verify calls, optionally narrowed
to particular arguments. Matchers are converted exactly as for
StubbedCall.Matching.

On success the matching records are claimed. On failure the test fails
with a VerificationError carrying the expected and found counts and the
remaining unclaimed records.
*/
func (v *Verifier) VerifyTimes(methodName string, times int, matchers ...interface{}) {
	t := v.d.t
	t.Helper()

	m, found := v.d.methods[methodName]
	if !found {
		t.Fatalf("%v", &UnsupportedCapabilityError{Double: v.d.String(), Method: methodName})
		return
	}

	var matcher MethodArgsMatcher
	if len(matchers) > 0 {
		matcher = NewMatcherForMethod(t, m.m, matchers...)
	}

	var matched []*Invocation
	for _, inv := range v.d.recorder.records {
		if inv.Method != methodName || v.claimed[inv.Seq] {
			continue
		}
		if matcher != nil && !matcher.Matches(inv.Args...) {
			continue
		}
		matched = append(matched, inv)
	}

	if len(matched) != times {
		desc := m.String()
		if matcher != nil {
			desc = fmt.Sprintf("%s matching %v", desc, matcher)
		}
		t.Errorf("%v", &VerificationError{
			Subject:   desc,
			Expected:  times,
			Actual:    len(matched),
			Unclaimed: v.unclaimed(),
		})
		return
	}

	for _, inv := range matched {
		v.claimed[inv.Seq] = true
	}
}

// VerifyNoMoreInteractions fails the test unless every recorded
// invocation on the Double has been claimed by an earlier Verify call.
func (v *Verifier) VerifyNoMoreInteractions() {
	t := v.d.t
	t.Helper()
	if unclaimed := v.unclaimed(); len(unclaimed) > 0 {
		t.Errorf("%v", &VerificationError{
			Subject:   v.d.String(),
			Expected:  0,
			Actual:    len(unclaimed),
			Unclaimed: unclaimed,
		})
	}
}

func (v *Verifier) unclaimed() []Invocation {
	var unclaimed []Invocation
	for _, inv := range v.d.recorder.records {
		if !v.claimed[inv.Seq] {
			unclaimed = append(unclaimed, *inv)
		}
	}
	return unclaimed
}
