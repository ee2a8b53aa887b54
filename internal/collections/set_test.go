// Copyright 2025 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collections

import "testing"

func TestSetOfContainsGivenElements(t *testing.T) {
	s := SetOf("a", "b", "c")
	for _, elem := range []string{"a", "b", "c"} {
		if !s.Contains(elem) {
			t.Errorf("expected Set to contain %q", elem)
		}
	}
	if s.Contains("d") {
		t.Error("expected Set not to contain \"d\"")
	}
}

func TestSetOfDeduplicates(t *testing.T) {
	s := SetOf("a", "a", "b")
	if len(s) != 2 {
		t.Errorf("expected 2 elements, got %d", len(s))
	}
}

func TestSetAdd(t *testing.T) {
	s := make(Set[string])
	s.Add("x")
	if !s.Contains("x") {
		t.Error("expected Set to contain \"x\" after Add")
	}
}

func TestFindDuplicates(t *testing.T) {
	input := []string{"PORTNAME", "COMMENT", "PORTNAME", "MAINTAINER"}
	expected := []string{"PORTNAME"}

	result := FindDuplicates(input)
	if len(result) != len(expected) {
		t.Fatalf("FindDuplicates length mismatch: expected %d, got %d", len(expected), len(result))
	}
	for i := range expected {
		if result[i] != expected[i] {
			t.Errorf("FindDuplicates failed at index %d: expected %q, got %q", i, expected[i], result[i])
		}
	}
}

func TestFindDuplicatesNoneFound(t *testing.T) {
	if got := FindDuplicates([]string{"PORTNAME", "COMMENT"}); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
