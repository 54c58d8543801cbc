// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_Compare(t *testing.T) {
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		left  Clock
		right Clock
		want  int
	}{
		{
			name:  "earlier time",
			left:  Clock{At: base, DeviceID: "z", Sequence: 9},
			right: Clock{At: base.Add(time.Nanosecond), DeviceID: "a", Sequence: 1},
			want:  -1,
		},
		{
			name:  "later time",
			left:  Clock{At: base.Add(time.Second), DeviceID: "a", Sequence: 1},
			right: Clock{At: base, DeviceID: "z", Sequence: 9},
			want:  1,
		},
		{
			name:  "same time breaks on device",
			left:  Clock{At: base, DeviceID: "device-a", Sequence: 5},
			right: Clock{At: base, DeviceID: "device-b", Sequence: 1},
			want:  -1,
		},
		{
			name:  "same time and device breaks on sequence",
			left:  Clock{At: base, DeviceID: "device-a", Sequence: 7},
			right: Clock{At: base, DeviceID: "device-a", Sequence: 3},
			want:  1,
		},
		{
			name:  "equal",
			left:  Clock{At: base, DeviceID: "device-a", Sequence: 3},
			right: Clock{At: base, DeviceID: "device-a", Sequence: 3},
			want:  0,
		},
		{
			name:  "same instant in another zone",
			left:  Clock{At: base.In(time.FixedZone("UTC+3", 3*3600)), DeviceID: "device-a", Sequence: 1},
			right: Clock{At: base, DeviceID: "device-a", Sequence: 1},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.left.Compare(tt.right))
			assert.Equal(t, -tt.want, tt.right.Compare(tt.left))
		})
	}
}

func TestEntryLess(t *testing.T) {
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	entry := func(id, device string, seq int64, at time.Time) ChangelogEntry {
		return ChangelogEntry{ID: id, DeviceID: device, Sequence: seq, CreatedAt: at}
	}

	tests := []struct {
		name string
		a, b ChangelogEntry
		want bool
	}{
		{
			name: "created earlier",
			a:    entry("2", "device-b", 2, base),
			b:    entry("1", "device-a", 1, base.Add(time.Millisecond)),
			want: true,
		},
		{
			name: "tie on time goes to device",
			a:    entry("2", "device-b", 1, base),
			b:    entry("1", "device-a", 9, base),
			want: false,
		},
		{
			name: "tie on time and device goes to sequence",
			a:    entry("2", "device-a", 1, base),
			b:    entry("1", "device-a", 2, base),
			want: true,
		},
		{
			name: "full clock tie goes to id",
			a:    entry("e-1", "device-a", 1, base),
			b:    entry("e-2", "device-a", 1, base),
			want: true,
		},
		{
			name: "identical entries",
			a:    entry("e-1", "device-a", 1, base),
			b:    entry("e-1", "device-a", 1, base),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EntryLess(tt.a, tt.b))
		})
	}
}
