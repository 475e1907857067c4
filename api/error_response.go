package api

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrorField describes one invalid request field in an [ErrorResponse].
type ErrorField struct {
	FieldName    string `json:"field_name"`
	ErrorMessage string `json:"error_message"`
}

type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []ErrorField `json:"fields,omitempty"`
}

func NewErrorResponse(err error, fields ...ErrorField) ErrorResponse {
	return ErrorResponse{Error: err.Error(), Fields: fields}
}

// ExtractErrorFields turns validator errors into per-field messages.
// Non-validation errors yield no fields.
func ExtractErrorFields(err error) []ErrorField {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make([]ErrorField, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, ErrorField{
			FieldName:    fe.Field(),
			ErrorMessage: getBindingErrorMessage(fe.Tag(), fe.Param(), fe.Value()),
		})
	}

	return fields
}

// getBindingErrorMessage maps a validator tag to a human readable message.
// param and value are accepted for call-site symmetry; the messages stay
// generic on purpose so they never echo user input back.
func getBindingErrorMessage(tag string, _ string, _ any) string {
	switch tag {
	case "required":
		return "this field is required"
	case "min":
		return "value is too short"
	case "max":
		return "value is too long"
	case "len":
		return "invalid length"
	case "email":
		return "invalid email address"
	case "url":
		return "invalid URL format"
	case "alphanum":
		return "must contain only letters and numbers"
	case "alpha":
		return "must contain only letters"
	case "numeric":
		return "must contain only numbers"
	case "gte":
		return "must be greater than or equal to the allowed minimum"
	case "lte":
		return "must be less than or equal to the allowed maximum"
	case "gt":
		return "must be greater than the allowed minimum"
	case "lt":
		return "must be less than the allowed maximum"
	case "oneof":
		return "must be one of the allowed values"
	case "uuid":
		return "invalid UUID format"
	case "ip":
		return "invalid IP address"
	case "ipv4":
		return "invalid IPv4 address"
	case "ipv6":
		return "invalid IPv6 address"
	case "startswith":
		return "must start with the required prefix"
	case "endswith":
		return "must end with the required suffix"
	default:
		return "invalid input"
	}
}

func extractErrorFromBuffer(buf *bytes.Buffer) (*ErrorResponse, error) {
	var resp ErrorResponse
	if err := json.NewDecoder(buf).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
