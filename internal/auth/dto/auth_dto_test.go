package dto

import (
	"testing"

	apperror "github.com/debugg-er/zootube-api-sub000/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestRegisterInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   RegisterInput
		wantErr bool
	}{
		{"valid", RegisterInput{Username: "alice_01", Email: "Alice@Example.com ", Password: "password1"}, false},
		{"short username", RegisterInput{Username: "al", Email: "a@example.com", Password: "password1"}, true},
		{"bad username chars", RegisterInput{Username: "alice!", Email: "a@example.com", Password: "password1"}, true},
		{"bad email", RegisterInput{Username: "alice", Email: "not-an-email", Password: "password1"}, true},
		{"short password", RegisterInput{Username: "alice", Email: "a@example.com", Password: "short"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				assert.True(t, apperror.IsKind(err, apperror.KindValidation))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRegisterInput_ValidateNormalizesEmail(t *testing.T) {
	in := RegisterInput{Username: " bob ", Email: " Bob@Example.COM", Password: "password1"}
	assert.NoError(t, in.Validate())
	assert.Equal(t, "bob", in.Username)
	assert.Equal(t, "bob@example.com", in.Email)
}

func TestLoginInput_Validate(t *testing.T) {
	assert.Error(t, (&LoginInput{Email: "", Password: "x"}).Validate())
	assert.Error(t, (&LoginInput{Email: "a@example.com"}).Validate())
	assert.NoError(t, (&LoginInput{Email: "a@example.com", Password: "x"}).Validate())
}

func TestChangePasswordInput_Validate(t *testing.T) {
	assert.Error(t, (&ChangePasswordInput{NewPassword: "password1"}).Validate())
	assert.Error(t, (&ChangePasswordInput{OldPassword: "old", NewPassword: "short"}).Validate())
	assert.NoError(t, (&ChangePasswordInput{OldPassword: "old", NewPassword: "password1"}).Validate())
}
