package validator

import (
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" validate:"required"`
	Hex   string `json:"hex" validate:"required,hexadecimal,len=4"`
	Level string `mapstructure:"level" validate:"oneof=debug info"`
	Count int    `validate:"gte=1,lte=8"`
}

func validSample() sample {
	return sample{Name: "a", Hex: "beef", Level: "info", Count: 2}
}

// TestValidatorCreation covers the shared and fresh instances
func TestValidatorCreation(t *testing.T) {
	assert.NotNil(t, Validate())
	assert.Same(t, Validate(), Validate())
	assert.NotNil(t, New(WithTagName("validate")))
}

func TestValidStruct(t *testing.T) {
	s := validSample()
	assert.NoError(t, New().Struct(&s))
}

func TestNilTarget(t *testing.T) {
	assert.Error(t, New().Struct(nil))
}

func TestValidationErrors(t *testing.T) {
	s := sample{Name: "", Hex: "xyz1", Level: "trace", Count: 0}

	err := New().Struct(&s)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	ve, ok := err.(ValidationErrors)
	require.True(t, ok)
	assert.True(t, ve.HasErrors())
	assert.Len(t, ve.Errors(), 4)

	assert.ElementsMatch(t, []string{"name", "hex", "level", "Count"}, Fields(err))
	assert.True(t, HasFieldError(err, "hex"))
	assert.False(t, HasFieldError(err, "missing"))
	assert.Contains(t, err.Error(), "required")
	assert.NotEmpty(t, ErrorsToString(ve.Errors(), " | "))
}

func TestCustomValidation(t *testing.T) {
	even := func(fl validator.FieldLevel) bool {
		return fl.Field().Len()%2 == 0
	}
	v := New(WithValidation("even", even, "{0} must have an even length"))

	type target struct {
		Value string `json:"value" validate:"even"`
	}

	assert.NoError(t, v.Struct(&target{Value: "ab"}))

	err := v.Struct(&target{Value: "abc"})
	require.Error(t, err)
	assert.Equal(t, "value must have an even length", err.Error())
}

func TestValidateVar(t *testing.T) {
	v := New().GetValidator()
	assert.NoError(t, v.Var("0a1B", "hexadecimal"))
	assert.Error(t, v.Var("0g", "hexadecimal"))
}

func TestConcurrentAccess(t *testing.T) {
	v := New()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := validSample()
			assert.NoError(t, v.Struct(&s))
		}()
	}
	wg.Wait()
}

func BenchmarkValidation(b *testing.B) {
	v := New()
	s := validSample()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Struct(&s)
	}
}
