package auth

// Identity is a user as asserted by an external sign-in provider.
type Identity struct {
	Provider string
	Subject  string
	Email    string
	// Claims holds the verified ID-token payload, returned to the client as-is.
	Claims map[string]any
}

// UserKey is the opaque per-user key used for saved phrases.
func (i Identity) UserKey() string {
	return i.Provider + ":" + i.Subject
}
