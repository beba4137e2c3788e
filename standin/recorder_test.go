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
	"strings"
	"testing"
)

func TestRecorder_SequenceNumbersAreGapless(t *testing.T) {
	d := newApiDouble(t)
	d.Stub("call").Returning(0)
	d.Stub("other").Returning(0)

	d.call("a")
	d.other()
	d.call("b")
	d.call("c")

	records := d.AllRecords()
	if len(records) != 4 {
		t.Fatalf("Expected 4 records, got %d", len(records))
	}
	for i, inv := range records {
		if inv.Seq != i {
			t.Errorf("Expected record %d to have Seq %d, got %d", i, i, inv.Seq)
		}
	}
	if records[1].Method != "other" {
		t.Errorf("Expected record 1 to be other, got %s", records[1].Method)
	}
}

func TestRecorder_AllIsAReadOnlySnapshot(t *testing.T) {
	d := newApiDouble(t)
	d.Stub("call").Returning(0)

	d.call("a")
	snap := d.AllRecords()
	d.call("b")

	if len(snap) != 1 {
		t.Errorf("Expected snapshot to keep 1 record, got %d", len(snap))
	}
	if len(d.AllRecords()) != 2 {
		t.Errorf("Expected 2 records after second call, got %d", len(d.AllRecords()))
	}
	// reading twice observes the same thing
	if len(d.AllRecords()) != 2 {
		t.Errorf("Expected repeated reads to be side effect free")
	}
}

func TestRecordedCalls_Subsets(t *testing.T) {
	d := newApiDouble(t)
	d.Stub("call").Returning(0)

	d.call("first")
	d.call("second")
	d.call("third")

	calls := d.Recorded("call")
	calls.Expect(Exactly(3))

	calls.Matching("second").Expect(Once())
	calls.Matching(func(in string) bool { return strings.HasSuffix(in, "d") }).Expect(Twice())

	calls.Slice(0, 0).Expect(Never())
	calls.Slice(5, 8).Expect(Never())
	calls.Slice(0, 5).Expect(Exactly(3))
	calls.Slice(1, 2).Matching("second").Expect(Once())

	second := calls.Matching("second")
	calls.After(second).Expect(Once())
	calls.After(second).Matching("third").Expect(Once())
	calls.After(calls.Slice(0, 0)).Expect(Exactly(3))
}

func TestRecordedCalls_AfterSpansDoubles(t *testing.T) {
	d1 := newApiDouble(t)
	d2 := newApiDouble(t)
	d1.Stub("call").Returning(0)
	d2.Stub("call").Returning(0)

	d1.call("before")
	d2.call("pivot")
	d1.call("after")

	d1.Recorded("call").After(d2.Recorded("call")).Expect(Once())
	d1.Recorded("call").After(d2.Recorded("call")).Matching("after").Expect(Once())
}

func TestRecordedCalls_ExpectReportsFailure(t *testing.T) {
	tDouble := NewTDouble(t)
	tDouble.Stub("Errorf")

	d := newApiDouble(tDouble)
	d.Stub("call").Returning(0)
	d.call("only once")

	d.Recorded("call").Expect(Twice())

	tDouble.Double.Recorded("Errorf").Matching(printfMatcher(`call expected exactly 2, found 1 calls`)).Expect(Once())
}

func TestRecordedCalls_InvalidSliceIsFatal(t *testing.T) {
	tDouble := NewTDouble(t)
	tDouble.Fake("Fatalf", tDouble.FakeFatalf)

	d := newApiDouble(tDouble)
	d.Stub("call").Returning(0)

	defer func() {
		recover()
		tDouble.Double.Recorded("Fatalf").Matching(printfMatcher(`Invalid Slice`)).Expect(Once())
	}()
	d.Recorded("call").Slice(3, 1)
	t.Errorf("Expect unreachable")
}
