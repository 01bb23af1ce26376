package domain

// Identity is the authenticated caller extracted from a verified credential.
// It carries only what authorization decisions need.
type Identity struct {
	ID      string
	IsAdmin bool
}

// Relation classifies a caller against a record owner.
type Relation int

const (
	// Neither means the caller is not the owner and not an admin.
	Neither Relation = iota
	// Owner means the caller owns the record. Ownership wins over admin
	// status when both hold.
	Owner
	// Admin means the caller is an administrator but not the owner.
	Admin
)

// Ownership classifies who against the record's owner id. It is a pure
// decision over the two values; no store lookup happens here.
func Ownership(who Identity, ownerID string) Relation {
	if who.ID != "" && who.ID == ownerID {
		return Owner
	}
	if who.IsAdmin {
		return Admin
	}
	return Neither
}

// CanModify reports whether who may mutate a record owned by ownerID under
// the owner-or-admin policy.
func CanModify(who Identity, ownerID string) bool {
	return Ownership(who, ownerID) != Neither
}
