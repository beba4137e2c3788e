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
)

// T is compatible with builtin testing.T
type T interface {
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Logf(format string, args ...interface{})
	Helper()
}

/*
A Double is an object that substitutes for a concrete implementation of an
interface during a test.

Setup phase

Behavior rules are declared with Stub(), optionally narrowed to particular
arguments with Matching() and given canned results with Returning(). A
working implementation for a single method can be installed with Fake().
A Double created with NewSpy additionally carries a real backing instance.

Exercise phase

Every invocation is appended to the call recorder, then answered by the
first source that can serve it: an installed fake, the most recently
declared matching behavior rule, or (for spies) the real instance. An
invocation no source can answer fails the test fatally; a Double never
invents return values.

Verify phase

Assertions over the recorded log go either through the claim-consuming
Verifier() or through the read-only Recorded() subset queries.
*/
type Double struct {
	t            T
	forInterface reflect.Type
	methods      map[string]*method
	behavior     *BehaviorTable
	recorder     *Recorder
	verifier     *Verifier
	delegate     reflect.Value
	trace        bool
}

/*
NewDouble constructs a Double for an interface, called by the specific
wrapper implementations (usually generated with doublegen).

forInterface is expected to be the nil implementation of an interface -
(*Iface)(nil)

configurators can enable tracing before the double is first exercised.
*/
func NewDouble(t T, forInterface interface{}, configurators ...func(*Double)) *Double {
	doubleFor := reflect.TypeOf(forInterface)

	if doubleFor == nil || doubleFor.Kind() != reflect.Ptr || doubleFor.Elem().Kind() != reflect.Interface {
		t.Fatalf("Expecting '%v' to be a pointer to nil interface", forInterface)
	}
	doubleFor = doubleFor.Elem()

	double := &Double{
		t:            t,
		forInterface: doubleFor,
		methods:      make(map[string]*method, doubleFor.NumMethod()),
	}

	for i := 0; i < doubleFor.NumMethod(); i++ {
		m := doubleFor.Method(i)
		double.methods[m.Name] = newMethod(double, m)
	}

	double.behavior = newBehaviorTable(double)
	double.recorder = newRecorder(double)

	for _, c := range configurators {
		c(double)
	}

	return double
}

/*
NewSpy constructs a Double wrapping a real backing instance.

Invocations are recorded exactly as for any other Double, but when no
behavior rule matches they are delegated to real and its results returned,
instead of failing the test.
*/
func NewSpy(t T, forInterface interface{}, real interface{}, configurators ...func(*Double)) *Double {
	double := NewDouble(t, forInterface, configurators...)

	backing := reflect.ValueOf(real)
	if !backing.IsValid() || !backing.Type().Implements(double.forInterface) {
		t.Fatalf("Expecting '%v' to implement %v", real, double.forInterface)
	}
	double.delegate = backing

	return double
}

// EnableTrace logs all received method calls via T.Logf
func (d *Double) EnableTrace() {
	d.trace = true
}

func (d *Double) String() string {
	return fmt.Sprintf("DoubleFor(%v)", d.forInterface)
}

func (d *Double) T() T {
	return d.t
}

/*
Stub appends a behavior rule for methodName on Double d and returns it for
fluent configuration with Matching() and Returning().

Rules are kept in declaration order and never replaced; at invocation time
the most recently declared rule whose matcher accepts the arguments wins.
A rule declared without Returning() yields zero values for each output.
*/
func (d *Double) Stub(methodName string) *StubbedCall {
	m, found := d.methods[methodName]
	if !found {
		d.t.Fatalf("%v", &UnsupportedCapabilityError{Double: d.String(), Method: methodName})
		return nil
	}
	return d.behavior.add(m)
}

/*
Fake installs a working implementation for methodName, which must match the
method's signature. Only one fake may be installed per method, and it takes
precedence over behavior rules. Calls to a faked method are still recorded.
*/
func (d *Double) Fake(methodName string, impl interface{}) {
	m, found := d.methods[methodName]
	if !found {
		d.t.Fatalf("%v", &UnsupportedCapabilityError{Double: d.String(), Method: methodName})
		return
	}
	m.installFake(impl)
}

/*
Invoke is called by wrapper implementations to record and answer the
invocation of a method.

An invocation of a method outside the interface, or one that no fake, rule
or backing instance can answer, fatally fails the test.
*/
func (d *Double) Invoke(methodName string, args ...interface{}) []interface{} {
	d.t.Helper()

	m, found := d.methods[methodName]
	if !found {
		d.t.Fatalf("%v", &UnsupportedCapabilityError{Double: d.String(), Method: methodName})
		return nil
	}

	d.recorder.record(methodName, args)

	returns, err := m.dispatch(args)
	if err != nil {
		d.t.Fatalf("%v", err)
		return nil
	}

	if d.trace {
		d.t.Logf("Called %v(%v) => %v", m, args, returns)
	}
	AssertMethodReturnValues(d.t, m.m, returns)
	return returns
}

// AllRecords returns a snapshot of every invocation recorded on this
// Double, in call order. Reading the log has no side effects.
func (d *Double) AllRecords() []Invocation {
	return d.recorder.All()
}

/*
Recorded returns the read-only set of recorded calls to methodName,
available for subset queries and count expectations.

Unlike the Verifier, Recorded queries never claim records.
*/
func (d *Double) Recorded(methodName string) RecordedCalls {
	m, found := d.methods[methodName]
	if !found {
		d.t.Fatalf("%v", &UnsupportedCapabilityError{Double: d.String(), Method: methodName})
		return nil
	}
	return d.recorder.forMethod(m)
}

// Verifier returns the claim-consuming verifier for this Double. The same
// verifier is returned on every call, so claims accumulate across
// successive Verify calls.
func (d *Double) Verifier() *Verifier {
	if d.verifier == nil {
		d.verifier = newVerifier(d)
	}
	return d.verifier
}

// VerifyNoMoreInteractions is shorthand for Verifier().VerifyNoMoreInteractions()
func (d *Double) VerifyNoMoreInteractions() {
	d.t.Helper()
	d.Verifier().VerifyNoMoreInteractions()
}
