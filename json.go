// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package worddiff

import (
	"encoding/json"
	"errors"
)

// wireRun is the JSON representation of a run. Unchanged runs carry neither flag.
type wireRun struct {
	Value   string `json:"value"`
	Added   bool   `json:"added,omitempty"`
	Removed bool   `json:"removed,omitempty"`
}

// MarshalJSON implements [json.Marshaler]. A run is encoded as an object with a "value" and an
// "added" or "removed" flag set to true for added and removed runs respectively.
func (r Run) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireRun{
		Value:   r.Value,
		Added:   r.Tag == Added,
		Removed: r.Tag == Removed,
	})
}

// UnmarshalJSON implements [json.Unmarshaler]. It's the inverse of [Run.MarshalJSON].
func (r *Run) UnmarshalJSON(data []byte) error {
	var w wireRun
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch {
	case w.Added && w.Removed:
		return errors.New("worddiff: run is both added and removed")
	case w.Added:
		*r = Run{Value: w.Value, Tag: Added}
	case w.Removed:
		*r = Run{Value: w.Value, Tag: Removed}
	default:
		*r = Run{Value: w.Value, Tag: Unchanged}
	}
	return nil
}
