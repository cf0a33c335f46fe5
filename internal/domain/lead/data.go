package lead

import "time"

// Field identifies one input of the request form, in tab order.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldCompany
	FieldServiceType
	FieldDescription
)

var fieldKeys = [...]string{"name", "email", "company", "serviceType", "description"}

// Fields lists every input in tab order.
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldCompany, FieldServiceType, FieldDescription}
}

// Key is the wire name of the field.
func (f Field) Key() string {
	if f < 0 || int(f) >= len(fieldKeys) {
		return ""
	}
	return fieldKeys[f]
}

// FieldForKey maps a wire name back to its Field.
func FieldForKey(key string) (Field, bool) {
	for i, k := range fieldKeys {
		if k == key {
			return Field(i), true
		}
	}
	return 0, false
}

// FormData is what a visitor types into the request form.
type FormData struct {
	Name        string      `json:"name" validate:"required"`
	Email       string      `json:"email" validate:"required,email"`
	Company     string      `json:"company" validate:"required"`
	ServiceType ServiceType `json:"serviceType" validate:"required,service_type"`
	Description string      `json:"description" validate:"required"`
}

// Value returns the current content of field.
func (d FormData) Value(field Field) string {
	switch field {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldCompany:
		return d.Company
	case FieldServiceType:
		return string(d.ServiceType)
	case FieldDescription:
		return d.Description
	default:
		return ""
	}
}

// IsEmpty reports whether every field is blank.
func (d FormData) IsEmpty() bool {
	return d == FormData{}
}

// Ack confirms a submission was received.
type Ack struct {
	Reference  string    `json:"reference"`
	ReceivedAt time.Time `json:"receivedAt"`
}
