package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/sortdemo/internal/element"
	"github.com/dusk-indust/sortdemo/internal/sorting"
)

// requireErrors asserts that err is an Errors list of length n and returns it.
func requireErrors(t *testing.T, err error, n int) Errors {
	t.Helper()
	var errs Errors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, n, "errors: %v", errs)
	return errs
}

func TestValidate_Empty(t *testing.T) {
	cfg, err := Validate(nil)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrEmptyArguments)
	requireErrors(t, err, 1)
}

func TestValidate_Defaults(t *testing.T) {
	cfg, err := Validate([]string{"v=3,1,2"})
	require.NoError(t, err)

	assert.Equal(t, sorting.Selection, cfg.Algorithm)
	assert.Equal(t, Ascending, cfg.Order)
	assert.Equal(t, InputUnset, cfg.Input)
	assert.False(t, cfg.Random())
	assert.Nil(t, cfg.Speed)
	assert.Nil(t, cfg.KindHint)
	require.NotNil(t, cfg.Values)
	assert.Equal(t, []int64{3, 1, 2}, cfg.Values.Ints)
}

func TestValidate_AllKeys(t *testing.T) {
	args := []string{"a=q", "t=N", "o=za", "in=m", "v=5,3,8,1", "s=250"}
	cfg, err := Validate(args)
	require.NoError(t, err)

	assert.Equal(t, sorting.Quick, cfg.Algorithm)
	assert.Equal(t, Descending, cfg.Order)
	assert.Equal(t, InputManual, cfg.Input)
	require.NotNil(t, cfg.KindHint)
	assert.Equal(t, element.Integer, *cfg.KindHint)
	require.NotNil(t, cfg.Speed)
	assert.Equal(t, 250, *cfg.Speed)

	require.Len(t, cfg.Arguments, len(args))
	for i, arg := range cfg.Arguments {
		assert.Equal(t, args[i], arg.String())
	}
}

func TestValidate_AcceptedValues(t *testing.T) {
	tests := map[string][]string{
		"a":  {"S", "s", "Q", "q", "B", "b"},
		"o":  {"AZ", "az", "ZA", "za"},
		"in": {"M", "m", "r"},
		"t":  {"N", "n", "C", "c"},
		"s":  {"100", "555", "1000"},
	}

	for key, values := range tests {
		for _, v := range values {
			t.Run(key+"="+v, func(t *testing.T) {
				_, err := Validate([]string{key + "=" + v})
				assert.NoError(t, err)
			})
		}
	}
}

func TestValidate_RejectedValues(t *testing.T) {
	tests := map[string][]string{
		"a":  {"x", "SS", "quick"},
		"o":  {"Az", "zA", "asc"},
		"in": {"R", "x", "manual"},
		"t":  {"x", "int"},
		"s":  {"99", "1001", "0", "-5", "fast", "1e3"},
	}

	for key, values := range tests {
		for _, v := range values {
			t.Run(key+"="+v, func(t *testing.T) {
				_, err := Validate([]string{key + "=" + v})
				errs := requireErrors(t, err, 1)

				var invalid *InvalidValueError
				require.ErrorAs(t, errs[0], &invalid)
				assert.Equal(t, key, invalid.Key)
				assert.Equal(t, v, invalid.Value)
			})
		}
	}
}

func TestValidate_SpeedBoundaries(t *testing.T) {
	for _, v := range []string{"s=100", "s=1000"} {
		_, err := Validate([]string{v})
		assert.NoError(t, err, v)
	}
	for _, v := range []string{"s=99", "s=1001"} {
		_, err := Validate([]string{v})
		assert.Error(t, err, v)
	}
}

func TestValidate_TypeHomogeneity(t *testing.T) {
	_, err := Validate([]string{"v=1,2,3"})
	assert.NoError(t, err)

	cfg, err := Validate([]string{"v=a,b,c"})
	require.NoError(t, err)
	assert.Equal(t, element.Character, cfg.Values.Kind)

	_, err = Validate([]string{"v=1,2,a"})
	errs := requireErrors(t, err, 1)
	var mismatch *TypeMismatchError
	require.ErrorAs(t, errs[0], &mismatch)
	assert.Equal(t, "1,2,a", mismatch.Value)
}

func TestValidate_MultiCharacterValue(t *testing.T) {
	_, err := Validate([]string{"v=ab,c"})
	errs := requireErrors(t, err, 1)

	var invalid *InvalidValueError
	require.ErrorAs(t, errs[0], &invalid)
	assert.Equal(t, "v", invalid.Key)

	var token *element.InvalidTokenError
	assert.ErrorAs(t, errs[0], &token)
}

func TestValidate_MalformedTokens(t *testing.T) {
	for _, tok := range []string{"a", "a=", "=q", "a=q=s", "=", ""} {
		t.Run(tok, func(t *testing.T) {
			_, err := Validate([]string{tok})
			errs := requireErrors(t, err, 1)

			var malformed *MalformedTokenError
			require.ErrorAs(t, errs[0], &malformed)
			assert.Equal(t, tok, malformed.Token)
		})
	}
}

func TestValidate_UnrecognizedKey(t *testing.T) {
	_, err := Validate([]string{"x=1"})
	errs := requireErrors(t, err, 1)

	var unknown *UnrecognizedKeyError
	require.ErrorAs(t, errs[0], &unknown)
	assert.Equal(t, "x", unknown.Key)
	assert.Equal(t, "unrecognized argument: x", unknown.Error())
}

func TestValidate_CollectsEveryError(t *testing.T) {
	args := []string{"a=z", "bogus", "v=1,x", "k=2", "o=AZ", "s=5"}
	cfg, err := Validate(args)
	assert.Nil(t, cfg)

	errs := requireErrors(t, err, 5)
	assert.IsType(t, &InvalidValueError{}, errs[0])
	assert.IsType(t, &MalformedTokenError{}, errs[1])
	assert.IsType(t, &TypeMismatchError{}, errs[2])
	assert.IsType(t, &UnrecognizedKeyError{}, errs[3])
	assert.IsType(t, &InvalidValueError{}, errs[4])
}

func TestValidate_LaterKeyWins(t *testing.T) {
	cfg, err := Validate([]string{"a=q", "a=b", "o=za", "o=az"})
	require.NoError(t, err)
	assert.Equal(t, sorting.Bubble, cfg.Algorithm)
	assert.Equal(t, Ascending, cfg.Order)
}

func TestValidate_RandomWithValues(t *testing.T) {
	cfg, err := Validate([]string{"in=r", "v=b,a"})
	require.NoError(t, err)
	assert.True(t, cfg.Random())
	assert.NotNil(t, cfg.Values)
}

func TestValidateWith_Defaults(t *testing.T) {
	defaults := Defaults{Algorithm: sorting.Bubble, Order: Descending}

	cfg, err := ValidateWith([]string{"v=1"}, defaults)
	require.NoError(t, err)
	assert.Equal(t, sorting.Bubble, cfg.Algorithm)
	assert.Equal(t, Descending, cfg.Order)

	cfg, err = ValidateWith([]string{"v=1", "a=s", "o=az"}, defaults)
	require.NoError(t, err)
	assert.Equal(t, sorting.Selection, cfg.Algorithm)
	assert.Equal(t, Ascending, cfg.Order)

	cfg, err = ValidateWith([]string{"v=1"}, Defaults{})
	require.NoError(t, err)
	assert.Equal(t, Ascending, cfg.Order, "empty order falls back to ascending")
}

func TestErrors_Message(t *testing.T) {
	errs := Errors{
		&UnrecognizedKeyError{Key: "x"},
		&InvalidValueError{Key: "s", Value: "5"},
	}
	assert.Equal(t, "unrecognized argument: x; invalid value for 's': 5", errs.Error())
	assert.True(t, errors.Is(Errors{ErrEmptyArguments}, ErrEmptyArguments))
}

func TestParseOrder(t *testing.T) {
	o, err := ParseOrder("za")
	require.NoError(t, err)
	assert.Equal(t, Descending, o)

	_, err = ParseOrder("Za")
	assert.Error(t, err)
}
