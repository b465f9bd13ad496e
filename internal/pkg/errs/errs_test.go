package errs_test

import (
	"errors"
	"testing"

	"digisales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderName", "table-5-lunch")

		assert.Equal(t, "orderName", err.ParamName)
		assert.Equal(t, "table-5-lunch", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: table-5-lunch", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderName", "table-5-lunch", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderName, ID is: table-5-lunch (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("price")

		assert.Equal(t, "price", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: price", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("price", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: price (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("guestCount", 0, 1, 100)

		assert.Equal(t, "guestCount", err.ParamName)
		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, "value is invalid: 0 is guestCount, min value is 1, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("tableID")

		assert.Equal(t, "tableID", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: tableID", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("tableID", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: tableID (cause: missing required field)", err.Error())
	})
}

func TestNameConflictError(t *testing.T) {
	t.Run("NewNameConflictError", func(t *testing.T) {
		err := errs.NewNameConflictError("orderName", "table-5-lunch")

		assert.Equal(t, "orderName", err.ParamName)
		assert.Equal(t, "table-5-lunch", err.Name)
		assert.Equal(t, "name already exists: table-5-lunch", err.Error())
		assert.Equal(t, errs.ErrNameConflict, err.Unwrap())
	})

	t.Run("NewNameConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicated key not allowed")
		err := errs.NewNameConflictErrorWithCause("orderName", "table-5-lunch", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "name already exists: table-5-lunch (cause: duplicated key not allowed)", err.Error())
	})
}

func TestTerminalStateError(t *testing.T) {
	t.Run("NewTerminalStateError", func(t *testing.T) {
		err := errs.NewTerminalStateError("order 42", "served")

		assert.Equal(t, "order 42", err.ParamName)
		assert.Equal(t, "served", err.Status)
		assert.Equal(t, "status is terminal: order 42 is served", err.Error())
		assert.Equal(t, errs.ErrTerminalState, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "name already exists", errs.ErrNameConflict.Error())
		assert.Equal(t, "status is terminal", errs.ErrTerminalState.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderName", "x"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("price"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("guestCount", 0, 1, 100), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("tableID"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewNameConflictError("orderName", "x"), errs.ErrNameConflict)
		require.ErrorIs(t, errs.NewTerminalStateError("order", "cancelled"), errs.ErrTerminalState)
	})
}
