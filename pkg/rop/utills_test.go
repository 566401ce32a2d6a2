package rop_test

import (
	stderrors "errors"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/ib-77/ropt/pkg/rop"
)

func TestIsNil(t *testing.T) {
	t.Parallel()

	var (
		ptr   *int
		slice []int
		m     map[int]int
		ch    chan int
		fn    func()
		err   error
	)
	x := 1

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"untyped nil", nil, true},
		{"nil pointer", ptr, true},
		{"nil slice", slice, true},
		{"nil map", m, true},
		{"nil chan", ch, true},
		{"nil func", fn, true},
		{"nil error", err, true},
		{"pointer", &x, false},
		{"empty slice", []int{}, false},
		{"zero int", 0, false},
		{"empty string", "", false},
		{"struct", struct{}{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, rop.IsNil(tt.v))
		})
	}
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	a, b := errors.New("a"), errors.New("b")

	assert.Empty(t, rop.GetErrors(nil))
	assert.Equal(t, []error{a}, rop.GetErrors(a))
	assert.Equal(t, []error{a, b}, rop.GetErrors(stderrors.Join(a, b)))
}

func TestAsError(t *testing.T) {
	t.Parallel()

	cause := errors.New("x")
	assert.Equal(t, cause, rop.AsError(cause))

	var pe *rop.PanicError
	assert.ErrorAs(t, rop.AsError("boom"), &pe)
	assert.Equal(t, "boom", pe.Value)
	assert.EqualError(t, pe, "panic: boom")
}
