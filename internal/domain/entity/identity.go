package entity

// Identity is an authenticated session reference returned by the
// identity provider.
type Identity struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
}
