package identity

import (
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserID(t *testing.T) {
	gen := NewUUIDGenerator()

	id := gen.NewUserID()
	assert.True(t, strings.HasPrefix(id, "USER-"))
	assert.Len(t, id, len("USER-")+32)
	assert.Equal(t, strings.ToUpper(id), id)
	assert.NotEqual(t, id, gen.NewUserID())
}

func TestNewProductID(t *testing.T) {
	gen := NewUUIDGenerator()

	id := gen.NewProductID()
	assert.True(t, strings.HasPrefix(id, "PROD-"))
	assert.Len(t, id, len("PROD-")+8)
}

func TestNewOrderID_SortsByCreationTime(t *testing.T) {
	gen := NewUUIDGenerator()

	var ids []string
	for i := 0; i < 5; i++ {
		id, err := gen.NewOrderID()
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(id, "ORD-"))
		ids = append(ids, id)
		time.Sleep(2 * time.Millisecond)
	}

	assert.True(t, sort.StringsAreSorted(ids), "order ids must sort in creation order")
}
