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
	"strings"
)

// NotStubbedError reports an invocation that no behavior rule matched on
// a double without a backing instance. Fatal to the test; a double never
// silently returns defaults for an unspecified call.
type NotStubbedError struct {
	Method string
	Args   []interface{}
}

func (e *NotStubbedError) Error() string {
	return fmt.Sprintf("not stubbed: no behavior rule matches %s(%v)", e.Method, e.Args)
}

// UnsupportedCapabilityError reports a call to a method that is not part
// of the double's interface. Fatal; indicates a programming error in the
// test or the double's setup.
type UnsupportedCapabilityError struct {
	Double string
	Method string
}

func (e *UnsupportedCapabilityError) Error() string {
	return fmt.Sprintf("unsupported capability: %s has no method %s", e.Double, e.Method)
}

// VerificationError reports an interaction expectation that does not
// hold, carrying the expected vs found counts and the unclaimed records
// for diagnostics.
type VerificationError struct {
	Subject   string
	Expected  int
	Actual    int
	Unclaimed []Invocation
}

func (e *VerificationError) Error() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "verification failed: %s expected %s, found %d", e.Subject, callCount(e.Expected), e.Actual)
	if len(e.Unclaimed) > 0 {
		sb.WriteString("; unverified interactions:")
		for _, inv := range e.Unclaimed {
			fmt.Fprintf(&sb, "\n\t%v", inv)
		}
	}
	return sb.String()
}

func callCount(n int) string {
	switch n {
	case 0:
		return "never"
	case 1:
		return "1 call"
	default:
		return fmt.Sprintf("%d calls", n)
	}
}
