package handler

import "html/template"

// The account pages are deliberately minimal server-rendered forms;
// this service has no client-side assets of its own.
const (
	loginTemplate = `<!DOCTYPE html>
<html><head><title>Login</title></head><body>
<h1>Login</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if .EnableLocalLogin}}
<form method="post" action="/account/login">
  <input type="hidden" name="returnUrl" value="{{.ReturnURL}}">
  <label>Email <input type="email" name="email" value="{{.Email}}"></label>
  <label>Password <input type="password" name="password"></label>
  <label><input type="checkbox" name="rememberMe" value="true" {{if .RememberMe}}checked{{end}}> Remember me</label>
  <button type="submit">Sign in</button>
</form>
{{else}}
<p>Local login is disabled for this client.</p>
{{end}}
</body></html>`

	logoutTemplate = `<!DOCTYPE html>
<html><head><title>Logout</title></head><body>
<h1>Logout</h1>
<p>Would you like to log out?</p>
<form method="post" action="/account/logout">
  <input type="hidden" name="logoutId" value="{{.LogoutID}}">
  <button type="submit">Yes, log me out</button>
</form>
</body></html>`

	registerTemplate = `<!DOCTYPE html>
<html><head><title>Register</title></head><body>
<h1>Register</h1>
{{range .Errors}}<p class="error">{{.}}</p>{{end}}
<form method="post" action="/account/register">
  <input type="hidden" name="returnUrl" value="{{.ReturnURL}}">
  <label>Email <input type="email" name="email" value="{{.Email}}"></label>
  <label>Password <input type="password" name="password"></label>
  <label>Confirm password <input type="password" name="confirmPassword"></label>
  <button type="submit">Create account</button>
</form>
</body></html>`

	indexTemplate = `<!DOCTYPE html>
<html><head><title>Identity</title></head><body>
<h1>Identity Service</h1>
<p><a href="/account/login">Login</a> | <a href="/account/register">Register</a></p>
</body></html>`

	errorTemplate = `<!DOCTYPE html>
<html><head><title>Error</title></head><body>
<h1>Error</h1>
<p>{{.Message}}</p>
</body></html>`
)

// Templates builds the HTML template set the router renders from.
func Templates() *template.Template {
	t := template.New("account")
	template.Must(t.New("login").Parse(loginTemplate))
	template.Must(t.New("logout").Parse(logoutTemplate))
	template.Must(t.New("register").Parse(registerTemplate))
	template.Must(t.New("index").Parse(indexTemplate))
	template.Must(t.New("error").Parse(errorTemplate))
	return t
}

type loginView struct {
	ReturnURL        string
	Email            string
	RememberMe       bool
	EnableLocalLogin bool
	Error            string
}

type logoutView struct {
	LogoutID string
}

type registerView struct {
	ReturnURL string
	Email     string
	Errors    []string
}

type errorView struct {
	Message string
}
