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

// method holds the signature of one interface method and any fake
// implementation installed for it.
type method struct {
	receiver *Double
	m        reflect.Method
	fake     reflect.Value
}

func newMethod(d *Double, m reflect.Method) *method {
	return &method{receiver: d, m: m}
}

func (m *method) t() T {
	return m.receiver.t
}

func (m *method) String() string {
	return fmt.Sprintf("%v.%s", m.receiver, m.m.Name)
}

func (m *method) Reflect() reflect.Method {
	return m.m
}

func (m *method) installFake(impl interface{}) {
	t := m.t()
	t.Helper()
	if m.fake.IsValid() {
		t.Fatalf("Fake already installed for %v", m)
	}
	implF := reflect.ValueOf(impl)
	AssertMethodInputs(t, m.m, implF.Type())
	AssertMethodOutputs(t, m.m, implF.Type())
	m.fake = implF
}

// dispatch answers a recorded invocation. Precedence: installed fake,
// then the behavior table, then the spy's backing instance. An
// invocation nothing can answer is a NotStubbedError.
func (m *method) dispatch(args []interface{}) ([]interface{}, error) {
	if m.fake.IsValid() {
		return m.call(m.fake, args), nil
	}

	if rv, matched := m.receiver.behavior.resolve(m.m.Name, args); matched {
		returns, err := rv.Receive()
		if err != nil {
			return nil, fmt.Errorf("no return values available for %v(%v): %s", m, args, err.Error())
		}
		return returns, nil
	}

	if m.receiver.delegate.IsValid() {
		return m.call(m.receiver.delegate.MethodByName(m.m.Name), args), nil
	}

	return nil, &NotStubbedError{Method: m.String(), Args: args}
}

// call invokes fn with args via reflection. Wrapper implementations pass
// the collected variadic slice as the final argument, so variadic
// methods go through CallSlice. nil arguments are replaced by the zero
// value of the parameter type.
func (m *method) call(fn reflect.Value, args []interface{}) []interface{} {
	fnType := fn.Type()
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			var paramType reflect.Type
			if fnType.IsVariadic() && i >= fnType.NumIn()-1 {
				paramType = fnType.In(fnType.NumIn() - 1)
			} else {
				paramType = fnType.In(i)
			}
			in[i] = reflect.Zero(paramType)
		} else {
			in[i] = reflect.ValueOf(arg)
		}
	}

	var out []reflect.Value
	if fnType.IsVariadic() {
		out = fn.CallSlice(in)
	} else {
		out = fn.Call(in)
	}

	if len(out) == 0 {
		return nil
	}
	returns := make([]interface{}, len(out))
	for i, v := range out {
		returns[i] = v.Interface()
	}
	return returns
}
