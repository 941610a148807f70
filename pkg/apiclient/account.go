package apiclient

// OpenID is the identity subset returned by the backend's authentication
// provider.
type OpenID struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Picture     string `json:"picture"`
}

// Account is an OpenID record plus the token pair stored for it.
// AccessToken may be empty; the backend sends null when it has none.
type Account struct {
	OpenID       OpenID `json:"openid"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Validate checks the fields every account must carry.
func (a Account) Validate() error {
	if a.OpenID.ID == "" {
		return &SchemaError{Index: -1, Field: "openid.id", Reason: "required"}
	}
	if a.OpenID.Email == "" {
		return &SchemaError{Index: -1, Field: "openid.email", Reason: "required"}
	}
	return nil
}
