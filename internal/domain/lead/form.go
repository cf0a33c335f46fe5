package lead

import (
	"errors"
	"fmt"
)

// FailureMessage is shown for every failed submission, whatever the cause.
const FailureMessage = "An error occurred while submitting your request. Please try again."

var (
	// ErrAlreadySubmitting is returned by BeginSubmit while a submission is
	// in flight.
	ErrAlreadySubmitting = errors.New("a submission is already in progress")
	// ErrNotSubmitting is returned when a result arrives with no submission
	// in flight.
	ErrNotSubmitting = errors.New("no submission in progress")
	// ErrNotEditable is returned when editing the form while the success
	// view is shown.
	ErrNotEditable = errors.New("form is not editable")
)

// StatusKind enumerates the lifecycle phases of a request form.
type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusSubmitting
	StatusSubmitted
	StatusFailed
)

func (k StatusKind) String() string {
	switch k {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSubmitted:
		return "submitted"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("StatusKind(%d)", int(k))
	}
}

// Status is the current phase plus the failure message or acknowledgement
// that came with it.
type Status struct {
	Kind    StatusKind
	Message string
	Ack     Ack
}

// ShowsForm reports whether the form (rather than the success view) is
// rendered.
func (s Status) ShowsForm() bool {
	return s.Kind != StatusSubmitted
}

// Form is the request form state machine:
//
//	idle ──submit──▶ submitting ──ok──▶ submitted ──reset──▶ idle
//	                     │
//	                     └──error──▶ failed ──submit──▶ submitting
type Form struct {
	data   FormData
	status Status
}

// NewForm returns an idle form with empty fields.
func NewForm() *Form {
	return &Form{}
}

// Data returns a copy of the field values.
func (f *Form) Data() FormData {
	return f.data
}

// Status returns the current phase.
func (f *Form) Status() Status {
	return f.status
}

// SetField replaces the value of one field. Service types are stored as
// given; Validate rejects unknown ones at submit time.
func (f *Form) SetField(field Field, value string) error {
	if f.status.Kind == StatusSubmitted {
		return ErrNotEditable
	}

	switch field {
	case FieldName:
		f.data.Name = value
	case FieldEmail:
		f.data.Email = value
	case FieldCompany:
		f.data.Company = value
	case FieldServiceType:
		f.data.ServiceType = ServiceType(value)
	case FieldDescription:
		f.data.Description = value
	default:
		return fmt.Errorf("unknown field %d", int(field))
	}
	return nil
}

// BeginSubmit validates the fields and moves to submitting. It returns the
// snapshot to hand to the submission service. Invalid input leaves the
// status unchanged.
func (f *Form) BeginSubmit() (FormData, error) {
	switch f.status.Kind {
	case StatusSubmitting:
		return FormData{}, ErrAlreadySubmitting
	case StatusSubmitted:
		return FormData{}, ErrNotEditable
	}

	if err := Validate(f.data); err != nil {
		return FormData{}, err
	}

	f.status = Status{Kind: StatusSubmitting}
	return f.data, nil
}

// Complete records a successful submission and clears every field.
func (f *Form) Complete(ack Ack) error {
	if f.status.Kind != StatusSubmitting {
		return ErrNotSubmitting
	}
	f.data = FormData{}
	f.status = Status{Kind: StatusSubmitted, Ack: ack}
	return nil
}

// Fail records a failed submission. Fields are kept so the visitor can
// retry; the cause is not surfaced.
func (f *Form) Fail(error) error {
	if f.status.Kind != StatusSubmitting {
		return ErrNotSubmitting
	}
	f.status = Status{Kind: StatusFailed, Message: FailureMessage}
	return nil
}

// Reset leaves the success view for a fresh, empty form.
func (f *Form) Reset() {
	if f.status.Kind != StatusSubmitted {
		return
	}
	f.data = FormData{}
	f.status = Status{Kind: StatusIdle}
}
