package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/photom/photom/pkg/apiclient"
)

// Accounts writes accounts as a table. Tokens are masked.
func Accounts(w io.Writer, accounts []apiclient.Account) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Email", "Name", "ID", "Access Token", "Refresh Token"})
	table.SetAutoWrapText(false)
	for _, a := range accounts {
		table.Append([]string{
			a.OpenID.Email,
			a.OpenID.DisplayName,
			a.OpenID.ID,
			MaskToken(a.AccessToken),
			MaskToken(a.RefreshToken),
		})
	}
	table.Render()
}

// MaskToken hides all but the last four characters of a token.
func MaskToken(token string) string {
	switch {
	case token == "":
		return ""
	case len(token) <= 4:
		return "*****"
	default:
		return "*****" + token[len(token)-4:]
	}
}
