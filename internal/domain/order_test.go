package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderCanBeCancelled(t *testing.T) {
	tests := []struct {
		status OrderStatus
		want   bool
	}{
		{StatusCreated, true},
		{StatusConfirmed, true},
		{StatusCompleted, false},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			order := &Order{Status: tt.status}
			assert.Equal(t, tt.want, order.CanBeCancelled())
		})
	}
}

func TestOrderIsFinished(t *testing.T) {
	assert.False(t, (&Order{Status: StatusCreated}).IsFinished())
	assert.False(t, (&Order{Status: StatusConfirmed}).IsFinished())
	assert.True(t, (&Order{Status: StatusCompleted}).IsFinished())
	assert.True(t, (&Order{Status: StatusCancelled}).IsFinished())
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range ValidStatuses {
		assert.True(t, IsValidStatus(s))
	}
	assert.False(t, IsValidStatus("pending"))
	assert.False(t, IsValidStatus(""))
}

func TestValidPartySize(t *testing.T) {
	assert.False(t, ValidPartySize(0))
	assert.True(t, ValidPartySize(MinPeoplePerBooking))
	assert.True(t, ValidPartySize(8))
	assert.True(t, ValidPartySize(MaxPeoplePerBooking))
	assert.False(t, ValidPartySize(MaxPeoplePerBooking+1))
}

func TestOrdersFilterOffset(t *testing.T) {
	assert.Equal(t, int64(0), OrdersFilter{Page: 0, Limit: 10}.Offset())
	assert.Equal(t, int64(0), OrdersFilter{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, int64(10), OrdersFilter{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, int64(50), OrdersFilter{Page: 6, Limit: 10}.Offset())
}
