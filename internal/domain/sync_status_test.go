package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySync(t *testing.T) {
	tests := []struct {
		name   string
		ahead  int
		behind int
		want   SyncKind
	}{
		{"both zero", 0, 0, SyncInSync},
		{"ahead only", 2, 0, SyncAhead},
		{"behind only", 0, 3, SyncBehind},
		{"both nonzero", 1, 4, SyncDiverged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifySync(tt.ahead, tt.behind)
			assert.Equal(t, tt.want, got.Kind)
			if tt.want == SyncAhead || tt.want == SyncDiverged {
				assert.Equal(t, tt.ahead, got.Ahead)
			}
			if tt.want == SyncBehind || tt.want == SyncDiverged {
				assert.Equal(t, tt.behind, got.Behind)
			}
		})
	}
}

func TestSyncStatus_RequiresConfirmation(t *testing.T) {
	tests := []struct {
		name   string
		status SyncStatus
		want   bool
	}{
		{"in sync", SyncStatus{Kind: SyncInSync}, false},
		{"ahead only", SyncStatus{Kind: SyncAhead, Ahead: 2}, false},
		{"behind", SyncStatus{Kind: SyncBehind, Behind: 3}, true},
		{"diverged", SyncStatus{Kind: SyncDiverged, Ahead: 1, Behind: 1}, true},
		{"no upstream", NoUpstream(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.RequiresConfirmation())
		})
	}
}

func TestSyncStatus_String(t *testing.T) {
	assert.Equal(t, "in sync", SyncStatus{Kind: SyncInSync}.String())
	assert.Equal(t, "ahead 2", SyncStatus{Kind: SyncAhead, Ahead: 2}.String())
	assert.Equal(t, "behind 3", SyncStatus{Kind: SyncBehind, Behind: 3}.String())
	assert.Equal(t, "diverged +1/-4", SyncStatus{Kind: SyncDiverged, Ahead: 1, Behind: 4}.String())
	assert.Equal(t, "no upstream", NoUpstream().String())
}
