package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err:  &AppError{Code: ErrCodeNotFound, Message: "student not found"},
			want: "student not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeUpstream,
				Message: "failed to load classes",
				Cause:   errors.New("connection refused"),
			},
			want: "failed to load classes: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_UnwrapAndAs(t *testing.T) {
	cause := errors.New("underlying error")
	wrapped := fmt.Errorf("outer: %w", Wrap(cause, ErrCodeConflict, "already linked"))

	if !errors.Is(wrapped, cause) {
		t.Fatalf("errors.Is should reach the cause")
	}
	if !IsConflict(wrapped) {
		t.Errorf("IsConflict() = false, want true")
	}
	if got := Message(wrapped, "fallback"); got != "already linked" {
		t.Errorf("Message() = %q, want %q", got, "already linked")
	}
	if got := Message(cause, "fallback"); got != "fallback" {
		t.Errorf("Message() = %q, want fallback", got)
	}
}

func TestWrap_Nil(t *testing.T) {
	if Wrap(nil, ErrCodeInternal, "x") != nil {
		t.Errorf("Wrap(nil) should be nil")
	}
}

func TestValidationField(t *testing.T) {
	err := ValidationField("cpf", "document is required")
	if !IsValidation(err) {
		t.Errorf("IsValidation() = false")
	}
	if GetField(err) != "cpf" {
		t.Errorf("GetField() = %q, want cpf", GetField(err))
	}
	if GetCode(errors.New("plain")) != "" {
		t.Errorf("GetCode(plain) should be empty")
	}
}

func TestFromStatus(t *testing.T) {
	tests := []struct {
		status  int
		message string
		code    ErrorCode
		want    string
	}{
		{http.StatusNotFound, "", ErrCodeNotFound, MsgNotFound},
		{http.StatusConflict, "CPF já cadastrado", ErrCodeConflict, "CPF já cadastrado"},
		{http.StatusBadRequest, "", ErrCodeValidation, MsgGeneric},
		{http.StatusUnauthorized, "", ErrCodeUnauthorized, MsgUnauthorized},
		{http.StatusForbidden, "", ErrCodeForbidden, MsgForbidden},
		{http.StatusInternalServerError, "", ErrCodeUpstream, MsgUnavailable},
		{http.StatusGatewayTimeout, "", ErrCodeTimeout, MsgTimeout},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := FromStatus(tt.status, tt.message, nil)
			if err.Code != tt.code {
				t.Errorf("Code = %v, want %v", err.Code, tt.code)
			}
			if err.Message != tt.want {
				t.Errorf("Message = %q, want %q", err.Message, tt.want)
			}
		})
	}
}

func TestFromTransport(t *testing.T) {
	if !IsTimeout(FromTransport(context.DeadlineExceeded)) {
		t.Errorf("deadline should map to timeout")
	}
	if !IsCanceled(FromTransport(fmt.Errorf("get: %w", context.Canceled))) {
		t.Errorf("cancel should map to canceled")
	}
	if !IsUpstream(FromTransport(errors.New("dial tcp: refused"))) {
		t.Errorf("dial failure should map to upstream")
	}
	if FromTransport(nil) != nil {
		t.Errorf("nil should stay nil")
	}
}
