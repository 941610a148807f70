// Package apiclient provides an HTTP client for the photom authentication backend.
//
// The client wraps a base URL and exposes generic JSON primitives ([Client.Get],
// [Client.Post]) plus account methods layered on top of them
// ([Client.ListAccounts], [Client.DeleteAccount]).
//
// # Usage
//
// Build one client at startup and pass it to the code that needs it:
//
//	c, err := apiclient.New(os.Getenv("PUBLIC_API_URL"),
//	    apiclient.WithLogger(logger),
//	)
//	if err != nil {
//	    return err
//	}
//
//	accounts, err := c.ListAccounts(ctx)
//	if err != nil {
//	    return err
//	}
//
// An empty base URL selects [DefaultBaseURL].
//
// # Status codes
//
// By default the client does not inspect HTTP status codes: a 4xx or 5xx
// response whose body is valid JSON is returned like any other response.
// Enable [WithStatusCheck] to turn non-2xx responses into [*StatusError].
// [Client.DeleteAccount] returns the raw response and never inspects it.
//
// # Errors
//
// Failures are reported as [*NetworkError], [*DecodeError], [*SchemaError]
// or [*StatusError]; use errors.As to tell them apart.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package apiclient
