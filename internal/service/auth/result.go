package auth

// AuthResult is returned on successful sign-in.
type AuthResult struct {
	AccessToken string
	// User is the verified ID-token payload.
	User map[string]any
}
