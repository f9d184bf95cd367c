package tag

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type level int

func (l *level) UnmarshalText(b []byte) error {
	switch string(b) {
	case "debug":
		*l = 1
	case "info":
		*l = 2
	default:
		return errors.New("unknown level")
	}
	return nil
}

type inner struct {
	Path string `default:"/tmp"`
	Size int    `default:"64"`
}

type sample struct {
	Name     string        `default:"ecies"`
	Workers  int           `default:"4"`
	Ratio    float64       `default:"0.5"`
	Enabled  bool          `default:"true"`
	Timeout  time.Duration `default:"5s"`
	Tags     []string      `default:"a, b"`
	Limit    *uint         `default:"9"`
	Level    level         `default:"info"`
	Inner    inner
	Optional *inner
	Custom   string `env:"CUSTOM"`
	hidden   string `default:"never"`
}

func TestApplyDefaults(t *testing.T) {
	var s sample
	require.NoError(t, ApplyDefaults(&s))

	assert.Equal(t, "ecies", s.Name)
	assert.Equal(t, 4, s.Workers)
	assert.Equal(t, 0.5, s.Ratio)
	assert.True(t, s.Enabled)
	assert.Equal(t, 5*time.Second, s.Timeout)
	assert.Equal(t, []string{"a", "b"}, s.Tags)
	require.NotNil(t, s.Limit)
	assert.Equal(t, uint(9), *s.Limit)
	assert.Equal(t, level(2), s.Level)
	assert.Equal(t, inner{Path: "/tmp", Size: 64}, s.Inner)
	require.NotNil(t, s.Optional)
	assert.Equal(t, "/tmp", s.Optional.Path)
	assert.Empty(t, s.Custom)
	assert.Empty(t, s.hidden)
}

func TestApplyDefaultsKeepsValues(t *testing.T) {
	s := sample{Name: "set", Workers: 1, Inner: inner{Size: 1}}
	require.NoError(t, ApplyDefaults(&s))

	assert.Equal(t, "set", s.Name)
	assert.Equal(t, 1, s.Workers)
	assert.Equal(t, 1, s.Inner.Size)
	assert.Equal(t, "/tmp", s.Inner.Path)
}

func TestApplyDefaultsCustomTag(t *testing.T) {
	var s struct {
		Name string `env:"CUSTOM"`
	}
	require.NoError(t, ApplyDefaults(&s, WithTagName("env")))
	assert.Equal(t, "CUSTOM", s.Name)
}

func TestApplyDefaultsErrors(t *testing.T) {
	var s sample
	assert.ErrorIs(t, ApplyDefaults(s), ErrTargetMustBePointer)
	assert.ErrorIs(t, ApplyDefaults((*sample)(nil)), ErrTargetIsNil)

	n := 1
	assert.ErrorIs(t, ApplyDefaults(&n), ErrTargetMustBePointer)

	assert.ErrorIs(t, ApplyDefaults(&s, WithMaxDepth(1)), ErrMaxDepthExceeded)

	var bad struct {
		Workers int `default:"many"`
	}
	err := ApplyDefaults(&bad)
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "Workers", fe.Path)
}
