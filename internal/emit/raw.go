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

package emit

import "github.com/portfmt/portfmt/internal/rawlines"

// Raw passes the buffer through verbatim, in source order, with no
// alignment or reconciliation against the token stream. Only meaningful
// when the stream has not been mutated by an edit pass (spec §4.5).
func Raw(buf *rawlines.Buffer) []string {
	return buf.All()
}
