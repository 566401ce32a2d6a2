package rop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/ropt/pkg/rop"
)

func TestMembershipPredicates(t *testing.T) {
	t.Parallel()

	ok := rop.Ok("v")
	failed := rop.ErrMsg[float64]("bad")
	some := rop.Some(struct{}{})
	none := rop.None[[]byte]()

	var nilResult *rop.Result[int]
	var nilOption *rop.Option[int]

	tests := []struct {
		name                        string
		x                           any
		isOk, isErr, isSome, isNone bool
	}{
		{"ok", ok, true, false, false, false},
		{"pointer to ok", &ok, true, false, false, false},
		{"err", failed, false, true, false, false},
		{"some", some, false, false, true, false},
		{"pointer to some", &some, false, false, true, false},
		{"none", none, false, false, false, true},
		{"zero result", rop.Result[int]{}, false, true, false, false},
		{"nil", nil, false, false, false, false},
		{"nil result pointer", nilResult, false, false, false, false},
		{"nil option pointer", nilOption, false, false, false, false},
		{"int", 5, false, false, false, false},
		{"string", "Ok", false, false, false, false},
		{"struct", struct{ ok bool }{true}, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.isOk, rop.IsOkResult(tt.x), "IsOkResult")
			assert.Equal(t, tt.isErr, rop.IsErrResult(tt.x), "IsErrResult")
			assert.Equal(t, tt.isSome, rop.IsSomeOption(tt.x), "IsSomeOption")
			assert.Equal(t, tt.isNone, rop.IsNoneOption(tt.x), "IsNoneOption")
		})
	}
}
