package helper_test

import (
	"testing"

	"github.com/on-the-ground/memoize_ive_go/shared/helper"

	"github.com/stretchr/testify/assert"
)

func TestGetTypedValueOf2(t *testing.T) {
	v, ok := helper.GetTypedValueOf2[int](func() (any, bool) { return 3, true })
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = helper.GetTypedValueOf2[int](func() (any, bool) { return "3", true })
	assert.False(t, ok)

	_, ok = helper.GetTypedValueOf2[int](func() (any, bool) { return nil, false })
	assert.False(t, ok)
}
