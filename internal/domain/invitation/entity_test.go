package invitation

import (
	"testing"
	"time"
)

func TestIsExpired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	cases := []struct {
		name      string
		expiresAt *time.Time
		want      bool
	}{
		{"no expiry", nil, false},
		{"future expiry", &future, false},
		{"past expiry", &past, true},
	}
	for _, c := range cases {
		inv := Invitation{ExpiresAt: c.expiresAt}
		if got := inv.IsExpired(); got != c.want {
			t.Errorf("%s: IsExpired() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestCanBeAccepted(t *testing.T) {
	future := time.Now().Add(time.Hour)
	past := time.Now().Add(-time.Hour)

	cases := []struct {
		name string
		inv  Invitation
		want bool
	}{
		{"pending and current", Invitation{Status: StatusPending, ExpiresAt: &future}, true},
		{"pending but expired", Invitation{Status: StatusPending, ExpiresAt: &past}, false},
		{"already accepted", Invitation{Status: StatusAccepted, ExpiresAt: &future}, false},
		{"marked expired", Invitation{Status: StatusExpired, ExpiresAt: &future}, false},
	}
	for _, c := range cases {
		if got := c.inv.CanBeAccepted(); got != c.want {
			t.Errorf("%s: CanBeAccepted() = %v, want %v", c.name, got, c.want)
		}
	}
}
