package domain

import "testing"

func TestOwnership(t *testing.T) {
	tests := []struct {
		name    string
		who     Identity
		ownerID string
		want    Relation
	}{
		{"owner", Identity{ID: "u1"}, "u1", Owner},
		{"admin owner is owner", Identity{ID: "u1", IsAdmin: true}, "u1", Owner},
		{"admin non-owner", Identity{ID: "u2", IsAdmin: true}, "u1", Admin},
		{"stranger", Identity{ID: "u2"}, "u1", Neither},
		{"empty caller id never owns", Identity{ID: ""}, "", Neither},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ownership(tt.who, tt.ownerID); got != tt.want {
				t.Fatalf("Ownership(%v, %q) = %v, want %v", tt.who, tt.ownerID, got, tt.want)
			}
		})
	}
}

func TestCanModify(t *testing.T) {
	if !CanModify(Identity{ID: "u1"}, "u1") {
		t.Fatalf("owner should be allowed")
	}
	if !CanModify(Identity{ID: "u2", IsAdmin: true}, "u1") {
		t.Fatalf("admin should be allowed")
	}
	if CanModify(Identity{ID: "u2"}, "u1") {
		t.Fatalf("stranger should be denied")
	}
}

func TestAssetHasRemote(t *testing.T) {
	if DefaultAvatar().HasRemote() {
		t.Fatalf("default avatar must not look deletable")
	}
	empty := ""
	if (Asset{URL: "x", RemoteID: &empty}).HasRemote() {
		t.Fatalf("empty remote id must not look deletable")
	}
	id := "folder/img"
	if !(Asset{URL: "x", RemoteID: &id}).HasRemote() {
		t.Fatalf("remote-backed asset should report HasRemote")
	}
}

func TestPostLikedBy(t *testing.T) {
	p := Post{Likes: []string{"a", "b"}}
	if !p.LikedBy("a") {
		t.Fatalf("expected member")
	}
	if p.LikedBy("c") {
		t.Fatalf("expected non-member")
	}
}
