package errs_test

import (
	"errors"
	"testing"

	"laborders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("email", "lab@example.com")

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, "lab@example.com", err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object already exists: lab@example.com", err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})

	t.Run("NewObjectAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key value")
		err := errs.NewObjectAlreadyExistsErrorWithCause("email", "lab@example.com", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object already exists: param is: email, value is: lab@example.com (cause: duplicate key value)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("state")

		assert.Equal(t, "state", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: state", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("state", cause)

		assert.Equal(t, "state", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: state (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("text", errors.New("hello\nworld"))
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("lab")

		assert.Equal(t, "lab", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: lab", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("lab", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: lab (cause: missing required field)", err.Error())
	})
}

func TestInvalidCredentialsError(t *testing.T) {
	t.Run("NewInvalidCredentialsError", func(t *testing.T) {
		err := errs.NewInvalidCredentialsError()

		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid credentials", err.Error())
		assert.Equal(t, errs.ErrInvalidCredentials, err.Unwrap())
	})

	t.Run("NewInvalidCredentialsErrorWithCause", func(t *testing.T) {
		cause := errors.New("hash mismatch")
		err := errs.NewInvalidCredentialsErrorWithCause(cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "invalid credentials (cause: hash mismatch)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrObjectAlreadyExists)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrInvalidCredentials)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "object already exists", errs.ErrObjectAlreadyExists.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invalid credentials", errs.ErrInvalidCredentials.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("orderId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		alreadyExistsErr := errs.NewObjectAlreadyExistsError("email", "lab@example.com")
		require.ErrorIs(t, alreadyExistsErr, errs.ErrObjectAlreadyExists)

		valueInvalidErr := errs.NewValueIsInvalidError("state")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueRequiredErr := errs.NewValueIsRequiredError("lab")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		invalidCredentialsErr := errs.NewInvalidCredentialsError()
		require.ErrorIs(t, invalidCredentialsErr, errs.ErrInvalidCredentials)
	})
}
