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
	"errors"
	"reflect"
)

// ReturnValues implementations generate values in response to invocations
// answered by a behavior rule
type ReturnValues interface {

	//Receive is called when a method is exercised
	//
	// non nil error response will fatally terminate the test
	Receive() ([]interface{}, error)
}

// ValidatingReturnValues can additionally check themselves against the
// stubbed method's signature at declaration time
type ValidatingReturnValues interface {
	ReturnValues
	ForMethod(t T, method reflect.Method)
}

// NewReturnsForMethod converts values into a ReturnValues for forMethod,
// validating against the signature where possible. A single ReturnValues
// implementation passes through unconverted.
func NewReturnsForMethod(t T, forMethod reflect.Method, values ...interface{}) (rv ReturnValues) {
	if len(values) == 1 {
		var isRv bool
		if rv, isRv = values[0].(ReturnValues); !isRv {
			rv = Values(values...)
		}
	} else {
		rv = Values(values...)
	}
	if validating, ok := rv.(ValidatingReturnValues); ok {
		validating.ForMethod(t, forMethod)
	}
	return
}

type fixedReturnValues []interface{}

func (v fixedReturnValues) Receive() ([]interface{}, error) {
	return v, nil
}

func (v fixedReturnValues) ForMethod(t T, m reflect.Method) {
	AssertMethodReturnValues(t, m, v)
}

// Values stores a fixed set of values returned for every invocation
func Values(values ...interface{}) ReturnValues {
	return fixedReturnValues(values)
}

type zeroReturnValues []reflect.Type

func (zv zeroReturnValues) Receive() ([]interface{}, error) {
	if len(zv) == 0 {
		return nil, nil
	}
	results := make([]interface{}, len(zv))
	for i, rt := range zv {
		results[i] = reflect.Zero(rt).Interface()
	}
	return results, nil
}

// ZeroValues repeatedly returns the zeroed values for the outputs of
// methodType. Used for rules declared without Returning().
func ZeroValues(methodType reflect.Type) ReturnValues {
	results := make([]reflect.Type, methodType.NumOut())
	for i := 0; i < methodType.NumOut(); i++ {
		results[i] = methodType.Out(i)
	}
	return zeroReturnValues(results)
}

type sequencedReturnValues struct {
	values []ReturnValues
	next   int
}

// Sequence returns values from each of 'values' in turn, one per
// invocation. Once exhausted, further invocations fatally fail the test.
func Sequence(values ...ReturnValues) ReturnValues {
	return &sequencedReturnValues{values: values}
}

func (s *sequencedReturnValues) Receive() ([]interface{}, error) {
	if s.next >= len(s.values) {
		return nil, errors.New("sequence exhausted")
	}
	rv := s.values[s.next]
	s.next++
	return rv.Receive()
}

func (s *sequencedReturnValues) ForMethod(t T, m reflect.Method) {
	for _, rv := range s.values {
		if validating, ok := rv.(ValidatingReturnValues); ok {
			validating.ForMethod(t, m)
		}
	}
}
