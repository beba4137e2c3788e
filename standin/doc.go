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

/*
Package standin is a minimal test-double library for Go.

A Double implements an interface and substitutes for the real thing
during a test. Behavior rules supply canned return values, every
invocation is recorded, and recorded interactions can be verified after
exercising the system under test.

See the canonical sources on test doubles...

* http://xunitpatterns.com/Test%20Double.html

* https://martinfowler.com/articles/mocksArentStubs.html

Stubbing

A behavior rule associates an argument pattern with canned return values.
Rules are consulted independently on every call; the most recently
declared matching rule wins, so a later specific rule overrides an
earlier general one. A call no rule matches fails the test fatally
rather than returning invented defaults.

 func Test_Stub(t *testing.T) {
	d := NewPaymentServiceDouble(t) // a generated wrapper over standin.Double

	d.Stub("Approve").Returning(false)
	d.Stub("Approve").Matching("4111111111111111", Any()).Returning(true)

	// Exercise the system under test substituting d for the real service
	// ...
 }

Verification

The Verifier checks interactions after the exercise phase, in the manner
of behavioral (interaction-based) testing. Each Verify claims the records
it matched, and VerifyNoMoreInteractions detects anything left unclaimed.

 func Test_Verify(t *testing.T) {
	d := NewPaymentServiceDouble(t)
	d.Stub("Approve").Returning(true)

	// Exercise...

	v := d.Verifier()
	v.Verify("Approve", "4111111111111111", 500.00)
	v.VerifyNoMoreInteractions()
 }

Spying

A spy wraps a real instance: calls are recorded and delegated to the
real implementation, whose results are returned.

 func Test_Spy(t *testing.T) {
	d := NewIntListSpy(t, SliceList{1, 2, 3})

	// Exercise...

	d.Recorded("Get").Matching(2).Expect(Once())
 }

Faking

A fake installs a working implementation for a single method. Calls are
still recorded and can be verified like any other.

 func Test_Fake(t *testing.T) {
	d := NewIntListDouble(t)
	d.Fake("Get", func(i int) int { return i * 10 })

	// Exercise...
 }

Wrapper types for an interface follow a fixed shape (embed the interface
and *Double, forward each method through Invoke) and can be generated
with the doublegen command.
*/
package standin
