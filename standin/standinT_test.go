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
	"regexp"
	"testing"
)

// TDouble is a Double of T itself, used to observe how the library
// reports failures.
type TDouble struct {
	T
	*Double
}

// NewTDouble stubs Helper and Logf up front since every Invoke on a
// double backed by the TDouble touches them.
func NewTDouble(t *testing.T, configs ...func(c *Double)) *TDouble {
	td := &TDouble{Double: NewDouble(t, (*T)(nil), configs...)}
	td.Double.Stub("Helper")
	td.Double.Stub("Logf")
	return td
}

func (t *TDouble) Errorf(format string, args ...interface{}) {
	t.Double.T().Helper()
	t.Invoke("Errorf", format, args)
}

func (t *TDouble) Fatalf(format string, args ...interface{}) {
	t.Double.T().Helper()
	t.Invoke("Fatalf", format, args)
}

// FakeFatalf panics like the real Fatalf stops the test, so failure
// paths stay unreachable past the fatal call.
func (t *TDouble) FakeFatalf(format string, args ...interface{}) {
	t.Double.T().Helper()
	panic(fmt.Errorf(format, args...))
}

func (t *TDouble) Logf(format string, args ...interface{}) {
	t.Double.T().Helper()
	t.Invoke("Logf", format, args)
}

func (t *TDouble) Helper() {
	t.Invoke("Helper")
}

func printfMatcher(re string) Matcher {
	exp := regexp.MustCompile(re)
	f := func(format string, args ...interface{}) bool {
		return exp.MatchString(fmt.Sprintf(format, args...))
	}
	return Func(f, fmt.Sprintf("/%s/", re))
}
