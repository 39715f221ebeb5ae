package registration

import "fmt"

// ValidationError names the first field that blocks submission.
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate enforces the required-field policy. It runs before any store
// call; a failing draft never reaches the backend.
func Validate(d Draft) error {
	required := []struct {
		field Field
		value string
	}{
		{FieldChildName, d.ChildName},
		{FieldChildBirthDate, d.ChildBirthDate},
		{FieldSeason, d.Season},
		{FieldPeriod, d.Period},
		{FieldEmergencyContactName, d.EmergencyContactName},
		{FieldEmergencyContactPhone, d.EmergencyContactPhone},
	}
	for _, r := range required {
		if r.value == "" {
			return &ValidationError{Field: r.field, Message: "campo obrigatório"}
		}
	}
	// Naming the authorized person is only required once third-party
	// pickup has been authorized.
	if d.AuthorizeThirdParty == Yes && d.AuthorizedPersonName == "" {
		return &ValidationError{Field: FieldAuthorizedPersonName, Message: "obrigatório quando a retirada por terceiros é autorizada"}
	}
	return nil
}
