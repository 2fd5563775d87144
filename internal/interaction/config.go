package interaction

// DefaultClients is the static client table the in-memory engine is
// configured with, mirroring the relying parties registered with the
// authorization server.
func DefaultClients() []Client {
	return []Client{
		{
			ID:               "mvc",
			Name:             "MVC Client",
			EnableLocalLogin: true,
			RedirectURIs: []string{
				"http://localhost:5100/signin-oidc",
			},
			PostLogoutRedirectURIs: []string{
				"http://localhost:5100/signout-callback-oidc",
			},
		},
		{
			ID:               "spa",
			Name:             "SPA Client",
			EnableLocalLogin: true,
			RedirectURIs: []string{
				"http://localhost:5104/",
			},
			PostLogoutRedirectURIs: []string{
				"http://localhost:5104/",
			},
		},
	}
}
