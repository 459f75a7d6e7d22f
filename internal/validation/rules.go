// Package validation checks request payloads against an explicit per-entity
// table of field rules before anything reaches the service layer.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"crud_testbench/internal/models"
)

// FieldRule binds one field to a validator tag and the message shown when it fails.
type FieldRule struct {
	Field    string
	Required bool   // must be present on insert
	Tag      string // go-playground/validator tag, e.g. "email"
	Message  string
}

// Schema is the ordered rule table of one entity.
type Schema []FieldRule

// RecordSchema mirrors the records insert schema.
var RecordSchema = Schema{
	{Field: "name", Required: true, Tag: "min=1", Message: "Name is required"},
	{Field: "email", Required: true, Tag: "email", Message: "Please enter a valid email address"},
	{Field: "role", Tag: "oneof=admin editor viewer", Message: "Role must be admin, editor, or viewer"},
	{Field: "status", Tag: "oneof=active inactive", Message: "Status must be active or inactive"},
	{Field: "notes", Tag: "max=10000", Message: "Notes must be at most 10000 characters"},
}

// FieldError is a single failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects every failed rule of a payload.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

var validate = validator.New()

// Check evaluates the schema against a field lookup. Missing fields only
// fail when partial is false and the rule is required.
func (s Schema) Check(lookup func(field string) (string, bool), partial bool) Errors {
	var errs Errors
	for _, rule := range s {
		value, ok := lookup(rule.Field)
		if !ok {
			if rule.Required && !partial {
				errs = append(errs, FieldError{Field: rule.Field, Message: rule.Message})
			}
			continue
		}
		if err := validate.Var(value, rule.Tag); err != nil {
			errs = append(errs, FieldError{Field: rule.Field, Message: rule.Message})
		}
	}
	return errs
}

// RecordPayload is the JSON body of POST and PUT /api/records. Pointers
// distinguish an absent field from an empty one.
type RecordPayload struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

func (p RecordPayload) lookup(field string) (string, bool) {
	var v *string
	switch field {
	case "name":
		v = p.Name
	case "email":
		v = p.Email
	case "role":
		v = p.Role
	case "status":
		v = p.Status
	case "notes":
		v = p.Notes
	}
	if v == nil {
		return "", false
	}
	return *v, true
}

func (p RecordPayload) normalized() RecordPayload {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		p.Name = &name
	}
	if p.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*p.Email))
		p.Email = &email
	}
	return p
}

// RecordInsert validates a create payload and builds the store input.
func RecordInsert(p RecordPayload) (models.RecordInput, error) {
	p = p.normalized()
	if errs := RecordSchema.Check(p.lookup, false); len(errs) > 0 {
		return models.RecordInput{}, errs
	}

	in := models.RecordInput{
		Name:   *p.Name,
		Email:  *p.Email,
		Role:   models.RoleViewer,
		Status: models.RecordActive,
		Notes:  p.Notes,
	}
	if p.Role != nil {
		in.Role = models.RecordRole(*p.Role)
	}
	if p.Status != nil {
		in.Status = models.RecordStatus(*p.Status)
	}
	return in, nil
}

// RecordUpdate validates a partial payload; only present fields are checked.
func RecordUpdate(p RecordPayload) (models.RecordPatch, error) {
	p = p.normalized()
	if errs := RecordSchema.Check(p.lookup, true); len(errs) > 0 {
		return models.RecordPatch{}, errs
	}

	patch := models.RecordPatch{
		Name:  p.Name,
		Email: p.Email,
		Notes: p.Notes,
	}
	if p.Role != nil {
		role := models.RecordRole(*p.Role)
		patch.Role = &role
	}
	if p.Status != nil {
		status := models.RecordStatus(*p.Status)
		patch.Status = &status
	}
	return patch, nil
}
