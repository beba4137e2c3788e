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

type api interface {
	call(in string) int
	other() int
	empty()
	test(i int, s string) (int, error)
	variadic(i int, slist ...string)
}

type apiDouble struct {
	api
	*Double
}

func (a *apiDouble) call(in string) int {
	a.Double.T().Helper()
	return a.Invoke("call", in)[0].(int)
}

func (a *apiDouble) other() int {
	a.Double.T().Helper()
	return a.Invoke("other")[0].(int)
}

func (a *apiDouble) empty() {
	a.Double.T().Helper()
	a.Invoke("empty")
}

func (a *apiDouble) test(i int, s string) (r int, e error) {
	a.Double.T().Helper()
	returns := a.Invoke("test", i, s)
	r, _ = returns[0].(int)
	e, _ = returns[1].(error)
	return
}

func (a *apiDouble) variadic(i int, s ...string) {
	a.Double.T().Helper()
	a.Invoke("variadic", i, s)
}

func newApiDouble(t T, configs ...func(c *Double)) *apiDouble {
	return &apiDouble{Double: NewDouble(t, (*api)(nil), configs...)}
}

func TestNewDouble_FailsImmediatelyIfNotAnInterface(t *testing.T) {
	tDouble := NewTDouble(t)

	tDouble.Fake("Fatalf", tDouble.FakeFatalf)
	defer func() {
		recover()
		tDouble.Double.Recorded("Fatalf").Matching(printfMatcher(`pointer to nil interface`)).Expect(Once())
	}()
	NewDouble(tDouble, "string not interface")
	t.Errorf("Expect unreachable")
}

func TestDouble_Stub_FailsFatallyForBadInputs(t *testing.T) {
	type badInputs struct {
		name        string
		bad         func(d *apiDouble)
		expectedMsg string
	}

	tests := []badInputs{
		{"InvalidMethod", func(d *apiDouble) { d.Stub("notamethod") }, "notamethod"},
		{"InvalidReturns", func(d *apiDouble) { d.Stub("other").Returning("notanint") }, "string"},
		{"InvalidMatcher", func(d *apiDouble) { d.Stub("other").Matching(Func(func(i int) bool { return true })) }, "no arguments"},
		{"TooManyMatchers", func(d *apiDouble) { d.Stub("call").Matching("a", "b") }, "not more than 1"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			tDouble := NewTDouble(t)
			tDouble.Fake("Fatalf", tDouble.FakeFatalf)
			defer func() {
				recover()
				tDouble.Double.Recorded("Fatalf").Matching(printfMatcher(test.expectedMsg)).Expect(Once())
			}()

			d := newApiDouble(tDouble)
			test.bad(d)
			t.Errorf("Expect unreachable")
		})
	}
}

func TestDouble_MostRecentMatchingRuleWins(t *testing.T) {
	d := newApiDouble(t)

	s1 := d.Stub("call").Matching("second").Returning(1)
	assertMatch(t, s1, "call.*matching.*second")
	s2 := d.Stub("call").Returning(99)
	assertNotMatch(t, s2, "matching")

	// the later catch-all shadows the earlier specific rule
	if i := d.call("second"); i != 99 {
		t.Errorf("Expected d.call to return 99, got %d", i)
	}

	d.Stub("call").Matching("third").Returning(3)

	if i := d.call("third"); i != 3 {
		t.Errorf("Expected d.call to return 3, got %d", i)
	}
	if i := d.call("anything else"); i != 99 {
		t.Errorf("Expected d.call to fall back to 99, got %d", i)
	}
}

func TestDouble_ResolutionIsDeterministicAndNonConsuming(t *testing.T) {
	d := newApiDouble(t)

	d.Stub("call").Returning(7)
	d.Stub("call").Matching("special").Returning(42)

	for i := 0; i < 3; i++ {
		if v := d.call("special"); v != 42 {
			t.Errorf("Expected rule to resolve to 42 on call %d, got %d", i, v)
		}
		if v := d.call("plain"); v != 7 {
			t.Errorf("Expected rule to resolve to 7 on call %d, got %d", i, v)
		}
	}
}

func TestDouble_NotStubbedIsFatal(t *testing.T) {
	tDouble := NewTDouble(t)
	tDouble.Fake("Fatalf", tDouble.FakeFatalf)

	d := newApiDouble(tDouble)
	d.Stub("call").Matching("only this").Returning(1)

	defer func() {
		recover()
		tDouble.Double.Recorded("Fatalf").Matching(printfMatcher(`not stubbed.*call`)).Expect(Once())
	}()
	d.call("something else")
	t.Errorf("Expect unreachable")
}

func TestDouble_UnknownMethodIsFatal(t *testing.T) {
	tDouble := NewTDouble(t)
	tDouble.Fake("Fatalf", tDouble.FakeFatalf)

	d := newApiDouble(tDouble)

	defer func() {
		recover()
		tDouble.Double.Recorded("Fatalf").Matching(printfMatcher(`unsupported capability.*nosuch`)).Expect(Once())
	}()
	d.Invoke("nosuch")
	t.Errorf("Expect unreachable")
}

func TestDouble_StubWithoutReturningYieldsZeroValues(t *testing.T) {
	d := newApiDouble(t)
	d.Stub("test")

	r, e := d.test(1, "x")
	if r != 0 || e != nil {
		t.Errorf("Expected zero values, got %d, %v", r, e)
	}
}

func TestDouble_SequencedReturns(t *testing.T) {
	d := newApiDouble(t)
	d.Stub("call").Returning(Sequence(Values(1), Values(2), Values(3)))

	for want := 1; want <= 3; want++ {
		if i := d.call("x"); i != want {
			t.Errorf("Expected sequenced return %d, got %d", want, i)
		}
	}
}

func TestDouble_SequenceExhaustionIsFatal(t *testing.T) {
	tDouble := NewTDouble(t)
	tDouble.Fake("Fatalf", tDouble.FakeFatalf)

	d := newApiDouble(tDouble)
	d.Stub("call").Returning(Sequence(Values(1)))

	defer func() {
		recover()
		tDouble.Double.Recorded("Fatalf").Matching(printfMatcher(`sequence exhausted`)).Expect(Once())
	}()
	d.call("first")
	d.call("second")
	t.Errorf("Expect unreachable")
}

func TestDouble_Fake(t *testing.T) {
	d := newApiDouble(t)
	d.Fake("call", func(s string) int { return len(s) })
	d.Fake("empty", func() {})

	if i := d.call("1234567"); i != 7 {
		t.Errorf("Expected fake to be invoked returning 7, got %d", i)
	}
	if i := d.call("hello"); i != 5 {
		t.Errorf("Expected fake to be invoked returning 5, got %d", i)
	}
	d.empty()

	d.Recorded("call").Expect(Twice())
	d.Recorded("call").Matching("hello").Expect(Once())
	d.Recorded("empty").Expect(Once())
}

func TestDouble_FakeTakesPrecedenceOverRules(t *testing.T) {
	d := newApiDouble(t)
	d.Stub("call").Returning(99)
	d.Fake("call", func(s string) int { return 1 })

	if i := d.call("x"); i != 1 {
		t.Errorf("Expected fake to win over the behavior rule, got %d", i)
	}
}

func TestDouble_FakeFailsFatallyForBadImplementations(t *testing.T) {
	type badInputs struct {
		name        string
		method      string
		bad         interface{}
		expectedMsg string
	}

	tests := []badInputs{
		{"NotAFunc", "call", "notAFunction", "func"},
		{"NotAMethod", "nomethod", nil, "nomethod"},
		{"InvalidArgTypes", "call", func(i int) int { return 0 }, "string.*int"},
		{"TooManyArgs", "call", func(s string, i int) int { return 0 }, "expects.*1.*found.*2"},
		{"TooFewArgs", "call", func() int { return 0 }, "expects.*1.*found.*0"},
		{"InvalidReturnTypes", "call", func(s string) string { return "" }, "int.*string"},
		{"TooFewReturns", "call", func(s string) {}, `expects.*1.*found.*0`},
		{"TooManyReturns", "call", func(s string) (string, error) { return "", nil }, "expects.*1.*found.*2"},
		{"NotVariadic", "variadic", func(i int, s []string) {}, "variadic"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			tDouble := NewTDouble(t)
			tDouble.Fake("Fatalf", tDouble.FakeFatalf)
			defer func() {
				recover()
				tDouble.Double.Recorded("Fatalf").Matching(printfMatcher(test.expectedMsg)).Expect(Once())
			}()

			d := newApiDouble(tDouble)
			d.Fake(test.method, test.bad)
			t.Errorf("Expect unreachable")
		})
	}
}

func TestDouble_FakeFailsFatallyIfInstalledTwice(t *testing.T) {
	tDouble := NewTDouble(t)
	tDouble.Fake("Fatalf", tDouble.FakeFatalf)

	d := newApiDouble(tDouble)
	d.Fake("call", func(s string) int { return 0 })

	defer func() {
		recover()
		tDouble.Double.Recorded("Fatalf").Matching(printfMatcher(`already installed`)).Expect(Once())
	}()
	d.Fake("call", func(s string) int { return 1 })
	t.Errorf("Expect unreachable")
}

func TestDouble_TracesCalls(t *testing.T) {
	tDouble := NewTDouble(t)

	d := newApiDouble(tDouble, func(c *Double) {
		c.EnableTrace()
	})
	d.Stub("call").Returning(11)
	d.call("traced")

	tDouble.Double.Recorded("Logf").Matching(printfMatcher(`Called.*call.*traced.*11`)).Expect(Once())
}

func assertMatch(t *testing.T, s interface{}, re string) {
	t.Helper()
	toMatch := fmt.Sprint(s)
	if matched, err := regexp.MatchString(re, toMatch); err != nil {
		t.Errorf("error %s trying to match /%s/ to %s", err.Error(), re, toMatch)
	} else if !matched {
		t.Errorf("expected %s to match /%s/", toMatch, re)
	}
}

func assertNotMatch(t *testing.T, s interface{}, re string) {
	t.Helper()
	toMatch := fmt.Sprint(s)
	if matched, err := regexp.MatchString(re, toMatch); err != nil {
		t.Errorf("error %s trying to not match /%s/ to %s", err.Error(), re, toMatch)
	} else if matched {
		t.Errorf("expected %s not to match /%s/", toMatch, re)
	}
}
