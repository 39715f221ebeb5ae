package registration

import (
	"context"

	"github.com/camp-buscape/registration-api/internal/cep"
)

// Session ties a Form to its postal-code resolver for the lifetime of
// one filling of the form. Typing into the postal-code field triggers a
// lookup once all 8 digits are present; the resolver's generation guard
// makes sure a slow response for an earlier code never lands on top of
// a later one.
type Session struct {
	Form     *Form
	resolver *cep.Resolver
}

func NewSession(form *Form, resolver *cep.Resolver) *Session {
	return &Session{Form: form, resolver: resolver}
}

// SetCEP masks and stores the postal-code value and, when it completes
// the code, resolves the address into the draft. Lookup failures are
// silent: address fields keep whatever they held.
func (s *Session) SetCEP(ctx context.Context, value string) {
	code, lookup := s.Form.SetCEP(value)
	if !lookup {
		return
	}
	addr, apply, err := s.resolver.Resolve(ctx, code)
	if err != nil || !apply {
		return
	}
	s.Form.ApplyAddress(addr)
}
