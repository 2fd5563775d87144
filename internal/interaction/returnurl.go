package interaction

// ReturnURLValidator is the open-redirect gate. Every redirect the
// login and logout flows issue from caller-supplied input must pass
// through it; rejected targets fall back to the application root.
type ReturnURLValidator struct {
	engine Service
}

func NewReturnURLValidator(engine Service) *ReturnURLValidator {
	return &ReturnURLValidator{engine: engine}
}

// IsSafeReturnUrl reports whether url may be redirected to literally.
// It never vouches for a URL the engine does not know.
func (v *ReturnURLValidator) IsSafeReturnUrl(url string) bool {
	return v.engine.IsKnownReturnTarget(url)
}
