package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

const accountsPath = "/auth/"

// ListAccounts fetches every account stored by the backend. It issues the
// same request as Get(ctx, "/auth/") and validates each element; a body that
// is not a list of accounts yields a *SchemaError.
func (c *Client) ListAccounts(ctx context.Context) ([]Account, error) {
	var accounts []Account
	if err := c.GetInto(ctx, accountsPath, &accounts); err != nil {
		return nil, err
	}

	for i, a := range accounts {
		if err := a.Validate(); err != nil {
			var schemaErr *SchemaError
			if errors.As(err, &schemaErr) {
				indexed := *schemaErr
				indexed.Index = i
				return nil, &indexed
			}
			return nil, err
		}
	}
	return accounts, nil
}

// DeleteAccount issues a DELETE for the account identified by email. The
// email is escaped as a single path segment.
//
// The raw response is returned without decoding and its status is not
// inspected. The caller must close the response body.
func (c *Client) DeleteAccount(ctx context.Context, email string) (*http.Response, error) {
	return c.do(ctx, http.MethodDelete, accountsPath+url.PathEscape(email), nil)
}
