package domain

// DefaultAvatarURL is the profile photo every account starts with. It is a
// shared static image, not a remote object this service owns.
const DefaultAvatarURL = "https://media.istockphoto.com/id/476085198/photo/businessman-silhouette-as-avatar-or-default-profile-picture.jpg"

// Asset is an image reference. RemoteID is the remote store's handle; nil
// marks an asset this service does not own remotely (the default avatar) and
// must never delete.
type Asset struct {
	URL      string  `json:"url"`
	RemoteID *string `json:"public_id"`
}

// HasRemote reports whether the asset points at a remote object we own.
func (a Asset) HasRemote() bool {
	return a.RemoteID != nil && *a.RemoteID != ""
}

// DefaultAvatar returns the placeholder profile photo.
func DefaultAvatar() Asset {
	return Asset{URL: DefaultAvatarURL}
}
