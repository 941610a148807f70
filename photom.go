// Package photom provides a client for the photom authentication API.
//
// Example usage:
//
//	c, err := photom.NewClient(os.Getenv("PUBLIC_API_URL"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	accounts, err := c.ListAccounts(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The client lives in pkg/apiclient; this package re-exports the parts most
// callers need.
package photom

import "github.com/photom/photom/pkg/apiclient"

// Client issues requests against the photom API.
type Client = apiclient.Client

// Option configures a Client.
type Option = apiclient.Option

// Account is a stored account as returned by the listing endpoint.
type Account = apiclient.Account

// OpenID is the identity part of an Account.
type OpenID = apiclient.OpenID

// DefaultBaseURL is used when NewClient is given an empty base URL.
const DefaultBaseURL = apiclient.DefaultBaseURL

// NewClient creates a Client for baseURL. See apiclient.New.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	return apiclient.New(baseURL, opts...)
}
