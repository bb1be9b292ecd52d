package entity

import (
	"testing"
	"time"
)

func TestAdPosition_Valid(t *testing.T) {
	for _, p := range []AdPosition{PositionHomepageTop, PositionSidebar, PositionInline, PositionHeader, PositionFooter} {
		if !p.Valid() {
			t.Errorf("%q should be valid", p)
		}
	}
	if AdPosition("popup").Valid() {
		t.Error("popup should be invalid")
	}
}

func TestAd_Running(t *testing.T) {
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	before := now.Add(-24 * time.Hour)
	after := now.Add(24 * time.Hour)

	tests := []struct {
		name string
		ad   Ad
		want bool
	}{
		{name: "active without window", ad: Ad{IsActive: true}, want: true},
		{name: "inactive", ad: Ad{IsActive: false}, want: false},
		{name: "inside window", ad: Ad{IsActive: true, StartDate: &before, EndDate: &after}, want: true},
		{name: "not started", ad: Ad{IsActive: true, StartDate: &after}, want: false},
		{name: "expired", ad: Ad{IsActive: true, EndDate: &before}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ad.Running(now); got != tt.want {
				t.Errorf("Running() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRole_Valid(t *testing.T) {
	if !RoleAdmin.Valid() || !RoleEditor.Valid() || !RoleAuthor.Valid() {
		t.Error("known roles must be valid")
	}
	if Role("root").Valid() {
		t.Error("root should be invalid")
	}
}
