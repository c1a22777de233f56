package registry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.ktest/pkg/ktest"
)

func TestDefaultRegistry_PreservesOrder(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < 10; i++ {
		name := fmt.Sprintf("test-%d", i)
		r.Register(ktest.Test{Name: name, Fn: func() {}})
	}

	all := r.All()
	require.Len(t, all, 10)
	for i, tc := range all {
		assert.Equal(t, fmt.Sprintf("test-%d", i), tc.Name)
	}
}

func TestDefaultRegistry_AllowsDuplicateNames(t *testing.T) {
	r := NewRegistry()
	r.Register(ktest.Test{Name: "dup", Fn: func() {}})
	r.Register(ktest.Test{Name: "dup", Fn: func() {}})

	assert.Equal(t, 2, r.Count())
}

func TestDefaultRegistry_AllReturnsCopy(t *testing.T) {
	r := NewRegistry()
	r.Register(ktest.Test{Name: "a", Fn: func() {}})

	all := r.All()
	all[0].Name = "mutated"

	assert.Equal(t, "a", r.All()[0].Name)
}

func TestDefaultRegistry_Clear(t *testing.T) {
	r := NewRegistry()
	r.Register(ktest.Test{Name: "a", Fn: func() {}})
	require.Equal(t, 1, r.Count())

	r.Clear()
	assert.Equal(t, 0, r.Count())
	assert.Empty(t, r.All())
}

func TestAdd_RegistersWithDefault(t *testing.T) {
	Default.Clear()
	defer Default.Clear()

	ok := Add("alpha", func() {})
	assert.True(
		t, ok,
		"Add must return true for init-time registration",
	)

	ok = Add("beta", func() {})
	require.True(t, ok)

	all := Default.All()
	require.Len(t, all, 2)
	assert.Equal(t, "alpha", all[0].Name)
	assert.Equal(t, "beta", all[1].Name)
}
