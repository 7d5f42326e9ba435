package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

func renderLoading(w io.Writer) {
	fmt.Fprintln(w, "⠋ working...")
}

func renderLogin(w io.Writer, lastError string) {
	fmt.Fprintln(w, "== Sign in ==")
	if lastError != "" {
		fmt.Fprintf(w, "! %s\n", lastError)
	}
	fmt.Fprintln(w, "Type 'login' to sign in.")
}

func renderProfile(w io.Writer, u *models.User) {
	if u == nil {
		return
	}
	fmt.Fprintln(w, "== Profile ==")
	fmt.Fprintf(w, " [%s]  %s\n", u.Initial(), u.FullName())

	rows := []struct{ label, value string }{
		{"email", u.Email},
		{"username", u.Username},
		{"phone", u.Phone},
		{"city", u.Address.City},
		{"street", street(u.Address)},
		{"zipcode", u.Address.Zipcode},
	}
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		fmt.Fprintf(w, " %-9s %s\n", r.label+":", r.value)
	}
}

func street(a models.Address) string {
	if a.Number == 0 {
		return a.Street
	}
	return strings.TrimSpace(fmt.Sprintf("%d %s", a.Number, a.Street))
}
