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
)

/*
A StubbedCall is one behavior rule: a method, an argument matcher and the
return values served when the matcher accepts an invocation.

Setup phase

Configure the matcher with Matching() and the results with Returning().
By default a StubbedCall matches any arguments and returns zero values
for all outputs.

Exercise phase

The most recently declared StubbedCall matching the invocation arguments
provides the output values. Rules are consulted independently per call
and are never consumed.
*/
type StubbedCall struct {
	*method
	matcher MethodArgsMatcher
	returns ReturnValues
}

/*
Matching narrows this rule to a given set of arguments.

If the first matcher is a MethodArgsMatcher it is used directly (the test
will fatally fail if more matchers are sent). If the first matcher is a
func it is wrapped with Func(). Otherwise each matcher is converted via
Eql() or Func() and the list is sent to Args().
*/
func (c *StubbedCall) Matching(matchers ...interface{}) *StubbedCall {
	t := c.t()
	t.Helper()
	c.matcher = NewMatcherForMethod(t, c.m, matchers...)
	return c
}

/*
Returning sets the canned return values for this rule.

A single ReturnValues implementation is used as is; anything else is
converted via Values() and checked against the method signature.
*/
func (c *StubbedCall) Returning(returnValues ...interface{}) *StubbedCall {
	t := c.t()
	t.Helper()
	c.returns = NewReturnsForMethod(t, c.m, returnValues...)
	return c
}

func (c *StubbedCall) matches(args []interface{}) bool {
	if c.matcher != nil {
		return c.matcher.Matches(args...)
	}
	return true
}

func (c *StubbedCall) String() string {
	if c.matcher != nil {
		return fmt.Sprintf("%v matching %v", c.method, c.matcher)
	}
	return c.method.String()
}

// BehaviorTable stores the behavior rules for one Double, in declaration
// order.
type BehaviorTable struct {
	d     *Double
	rules []*StubbedCall
}

func newBehaviorTable(d *Double) *BehaviorTable {
	return &BehaviorTable{d: d}
}

func (bt *BehaviorTable) add(m *method) *StubbedCall {
	rule := &StubbedCall{method: m}
	bt.rules = append(bt.rules, rule)
	return rule
}

// resolve scans the rules in reverse declaration order and returns the
// return values of the first rule that accepts args, so a later specific
// rule takes precedence over an earlier general one.
func (bt *BehaviorTable) resolve(methodName string, args []interface{}) (ReturnValues, bool) {
	for i := len(bt.rules) - 1; i >= 0; i-- {
		rule := bt.rules[i]
		if rule.m.Name != methodName || !rule.matches(args) {
			continue
		}
		if rule.returns == nil {
			return ZeroValues(rule.m.Type), true
		}
		return rule.returns, true
	}
	return nil, false
}
