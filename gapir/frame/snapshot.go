// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package frame

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gfxreplay/glretrace/core/log"
	"github.com/gfxreplay/glretrace/gapis/capture"
	"github.com/golang/protobuf/jsonpb"
	"github.com/golang/protobuf/ptypes"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/structpb"
)

// StateSource describes the live replay state. Values must be representable
// as protobuf struct values.
type StateSource interface {
	Snapshot() map[string]interface{}
}

// Selection is a set of frame numbers. Frames are numbered from 1.
type Selection struct {
	all    bool
	ranges [][2]uint64
}

// ParseSelection parses a comma separated list of frame numbers and
// inclusive ranges, such as "1,5,10-12". "*" selects every frame and an
// empty string selects none.
func ParseSelection(s string) (Selection, error) {
	sel := Selection{}
	s = strings.TrimSpace(s)
	if s == "" {
		return sel, nil
	}
	if s == "*" {
		sel.all = true
		return sel, nil
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		lo, hi, isRange := strings.Cut(part, "-")
		first, err := strconv.ParseUint(lo, 10, 64)
		if err != nil {
			return Selection{}, errors.Wrapf(err, "Bad frame %q", part)
		}
		last := first
		if isRange {
			if last, err = strconv.ParseUint(hi, 10, 64); err != nil {
				return Selection{}, errors.Wrapf(err, "Bad frame range %q", part)
			}
		}
		if last < first {
			return Selection{}, errors.Errorf("Empty frame range %q", part)
		}
		sel.ranges = append(sel.ranges, [2]uint64{first, last})
	}
	sort.Slice(sel.ranges, func(i, j int) bool { return sel.ranges[i][0] < sel.ranges[j][0] })
	return sel, nil
}

// Contains returns true if frame is selected.
func (s Selection) Contains(frame uint64) bool {
	if s.all {
		return true
	}
	for _, r := range s.ranges {
		if frame < r[0] {
			return false
		}
		if frame <= r[1] {
			return true
		}
	}
	return false
}

// Empty returns true if no frame is selected.
func (s Selection) Empty() bool {
	return !s.all && len(s.ranges) == 0
}

// Snapshotter writes the replay state to Dir as JSON at the end of the
// selected frames.
type Snapshotter struct {
	// Source is the state that is written.
	Source StateSource
	// Frames selects the frames that are written.
	Frames Selection
	// Dir is the directory the snapshots are written to.
	Dir string
	// Now returns the time snapshots are stamped with. Defaults to time.Now.
	Now func() time.Time

	frame uint64
}

// FrameComplete writes a snapshot if the frame that just ended is selected.
// Failures are logged and do not stop replay.
func (s *Snapshotter) FrameComplete(ctx context.Context, call *capture.Call) {
	s.frame++
	if !s.Frames.Contains(s.frame) {
		return
	}
	path, err := s.write(call)
	if err != nil {
		log.W(ctx, "Snapshot of frame %d failed: %v", s.frame, err)
		return
	}
	log.I(ctx, "Wrote snapshot of frame %d to %v", s.frame, path)
}

func (s *Snapshotter) write(call *capture.Call) (string, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	text, err := Snapshot(s.Source, s.frame, call, now())
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.Dir, fmt.Sprintf("frame_%06d.json", s.frame))
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", errors.Wrap(err, "Writing snapshot")
	}
	return path, nil
}

// Snapshot returns the JSON description of source at the end of frame.
func Snapshot(source StateSource, frame uint64, call *capture.Call, at time.Time) (string, error) {
	fields := map[string]interface{}{}
	if source != nil {
		for k, v := range source.Snapshot() {
			fields[k] = v
		}
	}
	ts, err := ptypes.TimestampProto(at)
	if err != nil {
		return "", errors.Wrap(err, "Stamping snapshot")
	}
	fields["frame"] = int64(frame)
	fields["call"] = call.Name
	fields["callId"] = int64(call.ID)
	fields["timestamp"] = ptypes.TimestampString(ts)

	st, err := structpb.NewStruct(fields)
	if err != nil {
		return "", errors.Wrap(err, "Converting snapshot")
	}
	m := jsonpb.Marshaler{Indent: "  "}
	return m.MarshalToString(st)
}
