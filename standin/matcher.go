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
	"reflect"
	"strings"
)

// Matcher is used to match a full argument list or one argument at a time
type Matcher interface {

	//Matches returns true if the arg (or args) matches this matcher
	Matches(args ...interface{}) bool
}

// MethodArgsMatcher is a Matcher that can validate usage against a reflect.Method
type MethodArgsMatcher interface {
	Matcher
	//ForMethod uses t to assert suitability of this matcher to match the method signature of m
	ForMethod(t T, m reflect.Method)
}

// A SingleArgMatcher is a Matcher that can validate usage against a reflect.Type
type SingleArgMatcher interface {
	Matcher

	//ForType uses t to assert suitability of this matcher to match a single argument of type ft
	ForType(t T, ft reflect.Type)
}

// A CombinationMatcher is a Matcher that can validate usage for both methods and types
type CombinationMatcher interface {
	Matcher
	ForMethod(t T, m reflect.Method)
	ForType(t T, ft reflect.Type)
}

func singleArgMatcher(matcher interface{}) SingleArgMatcher {
	switch typed := matcher.(type) {
	case SingleArgMatcher:
		return typed
	case reflect.Type:
		return IsA(typed)
	default:
		if reflect.TypeOf(matcher).Kind() == reflect.Func {
			return Func(matcher)
		}
		return Eql(matcher)
	}
}

/*
NewMatcherForMethod builds a MethodArgsMatcher for forMethod from a
heterogeneous matcher list and validates it against the method signature.

An empty list matches anything. A leading func becomes a Func() matcher
over the whole argument list. A single MethodArgsMatcher is used as is.
Everything else is converted per argument (Matcher as is, reflect.Type to
IsA, func to Func, plain value to Eql) and combined with Args().
*/
func NewMatcherForMethod(t T, forMethod reflect.Method, matchers ...interface{}) (result MethodArgsMatcher) {
	t.Helper()
	if forMethod.Type.NumIn() == 0 {
		t.Fatalf("Cannot build matcher for %v which takes no arguments", forMethod)
	}

	if len(matchers) == 0 {
		return All()
	}

	if reflect.TypeOf(matchers[0]).Kind() == reflect.Func {
		result = Func(matchers[0], matchers[1:]...)
	} else if len(matchers) == 1 {
		if m, isMatcher := matchers[0].(MethodArgsMatcher); isMatcher {
			result = m
		} else {
			result = Args(singleArgMatcher(matchers[0]))
		}
	} else {
		converted := make([]Matcher, len(matchers))
		for i, m := range matchers {
			converted[i] = singleArgMatcher(m)
		}
		result = Args(converted...)
	}

	result.ForMethod(t, forMethod)
	return
}

type funcMatcher struct {
	reflect.Value
	explanation string
}

/*
Func returns a matcher from the arbitrary function f.

When used as a method args matcher, f(...) bool must have an argument
signature compatible with the stubbed method. When used as a single arg
matcher, f must be a func(x T) bool where T is assignable from the
corresponding argument. An optional explanation describes what is matched.
*/
func Func(f interface{}, explanation ...interface{}) CombinationMatcher {
	explain := fmt.Sprintf("%T", f)
	if len(explanation) > 0 {
		explain = fmt.Sprint(explanation...)
	}
	return &funcMatcher{reflect.ValueOf(f), explain}
}

func (f *funcMatcher) String() string {
	return f.explanation
}

func (f *funcMatcher) Matches(args ...interface{}) bool {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			ft := f.Value.Type()
			if ft.IsVariadic() && i >= ft.NumIn()-1 {
				in[i] = reflect.Zero(ft.In(ft.NumIn() - 1))
			} else {
				in[i] = reflect.Zero(ft.In(i))
			}
		} else {
			in[i] = reflect.ValueOf(arg)
		}
	}

	if f.Value.Type().IsVariadic() {
		return f.CallSlice(in)[0].Interface().(bool)
	}
	return f.Call(in)[0].Interface().(bool)
}

func (f *funcMatcher) ForMethod(t T, m reflect.Method) {
	t.Helper()
	ft := f.Value.Type()
	if ft.Kind() != reflect.Func || ft.NumOut() != 1 || ft.Out(0).Kind() != reflect.Bool {
		t.Fatalf("Expected Func(...) bool, have %v", ft)
	}
	AssertMethodInputs(t, m, ft)
}

func (f *funcMatcher) ForType(t T, ft reflect.Type) {
	t.Helper()
	vt := f.Value.Type()
	if vt.Kind() != reflect.Func || vt.NumIn() != 1 || vt.NumOut() != 1 || vt.Out(0).Kind() != reflect.Bool {
		t.Fatalf("%v expected to be a function of 1 arg returning bool, got %v", f, vt)
	}
	if !ft.AssignableTo(vt.In(0)) {
		t.Fatalf("Argument to %v expected to be assignable from %v, got %v", f, ft, vt.In(0))
	}
}

type argumentsMatcher struct {
	matchers []Matcher
}

// Args builds a method arguments matcher from a list of single-argument
// matchers, applied positionally. Arguments beyond the list always match.
func Args(matchers ...Matcher) MethodArgsMatcher {
	return &argumentsMatcher{matchers}
}

func (a *argumentsMatcher) Matches(args ...interface{}) bool {
	for i := 0; i < len(a.matchers) && i < len(args); i++ {
		if !a.matchers[i].Matches(args[i]) {
			return false
		}
	}
	return true
}

func (a *argumentsMatcher) ForMethod(t T, m reflect.Method) {
	t.Helper()
	methodType := m.Type

	if len(a.matchers) > methodType.NumIn() {
		t.Fatalf("%v requires not more than %d argument matchers, have %d", m, methodType.NumIn(), len(a.matchers))
	}

	for i, matcher := range a.matchers {
		sam, ok := matcher.(SingleArgMatcher)
		if !ok {
			t.Fatalf("Cannot validate %v as SingleArgMatcher for %v", matcher, methodType.In(i))
		}
		sam.ForType(t, methodType.In(i))
	}
}

func (a *argumentsMatcher) String() string {
	parts := make([]string, len(a.matchers))
	for i, m := range a.matchers {
		parts[i] = fmt.Sprint(m)
	}
	return "Args(" + strings.Join(parts, ",") + ")"
}

// Eql matches a single argument v via reflect.DeepEqual
func Eql(v interface{}) SingleArgMatcher {
	return Func(func(arg interface{}) bool {
		return reflect.DeepEqual(arg, v)
	}, "Eql", "(", v, ")")
}

type anyMatcher struct{}

func (anyMatcher) String() string { return "Any" }

func (anyMatcher) Matches(...interface{}) bool { return true }

func (anyMatcher) ForType(T, reflect.Type) {}

// Any is the wildcard: it matches a single argument of any value.
func Any() SingleArgMatcher {
	return anyMatcher{}
}

// IsA matches a single argument whose type is AssignableTo or Implements
// the type of x (or x itself when x is already a reflect.Type). The typed
// counterpart of the Any wildcard.
func IsA(x interface{}) SingleArgMatcher {
	rt, isType := x.(reflect.Type)
	if !isType {
		rt = reflect.TypeOf(x)
	}
	return Func(func(arg interface{}) bool {
		argT := reflect.TypeOf(arg)
		if argT == nil {
			return false
		}
		if rt.Kind() == reflect.Interface {
			return argT.Implements(rt)
		}
		return argT.AssignableTo(rt)
	}, "IsA", "(", rt, ")")
}

type nilMatcher struct{}

func (nilMatcher) String() string { return "Nil" }

func (nilMatcher) Matches(args ...interface{}) bool {
	arg := args[0]
	if arg == nil {
		return true
	}
	v := reflect.ValueOf(arg)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}

func (nilMatcher) ForType(t T, ft reflect.Type) {
	t.Helper()
	switch ft.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
	default:
		t.Fatalf("Type %v cannot be nil", ft)
	}
}

// Nil matches a single argument of any nil-able type to be nil
func Nil() SingleArgMatcher {
	return nilMatcher{}
}

type allMatcher struct {
	matchers []Matcher
}

// All matches if all the matchers match (and matches everything when
// given none).
func All(matchers ...Matcher) CombinationMatcher {
	return &allMatcher{matchers}
}

func (a *allMatcher) Matches(args ...interface{}) bool {
	for _, m := range a.matchers {
		if !m.Matches(args...) {
			return false
		}
	}
	return true
}

func (a *allMatcher) ForMethod(t T, m reflect.Method) {
	t.Helper()
	for _, matcher := range a.matchers {
		mam, ok := matcher.(MethodArgsMatcher)
		if !ok {
			t.Fatalf("Cannot use %v as MethodArgsMatcher", matcher)
		}
		mam.ForMethod(t, m)
	}
}

func (a *allMatcher) ForType(t T, ft reflect.Type) {
	t.Helper()
	for _, matcher := range a.matchers {
		sam, ok := matcher.(SingleArgMatcher)
		if !ok {
			t.Fatalf("Cannot use %v as SingleArgMatcher", matcher)
		}
		sam.ForType(t, ft)
	}
}

func (a *allMatcher) String() string {
	parts := make([]string, len(a.matchers))
	for i, m := range a.matchers {
		parts[i] = fmt.Sprint(m)
	}
	return "All{" + strings.Join(parts, ",") + "}"
}

type notMatcher struct {
	Matcher
}

func (n notMatcher) String() string {
	return fmt.Sprintf("Not(%v)", n.Matcher)
}

func (n notMatcher) Matches(args ...interface{}) bool {
	return !n.Matcher.Matches(args...)
}

func (n notMatcher) ForType(t T, ft reflect.Type) {
	t.Helper()
	if sam, ok := n.Matcher.(SingleArgMatcher); ok {
		sam.ForType(t, ft)
	} else {
		t.Fatalf("Cannot use %v as SingleArgMatcher", n.Matcher)
	}
}

func (n notMatcher) ForMethod(t T, m reflect.Method) {
	t.Helper()
	if mam, ok := n.Matcher.(MethodArgsMatcher); ok {
		mam.ForMethod(t, m)
	} else {
		t.Fatalf("Cannot use %v as MethodArgsMatcher", n.Matcher)
	}
}

// Not negates matcher
func Not(matcher Matcher) CombinationMatcher {
	return notMatcher{matcher}
}
