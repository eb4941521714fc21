package eventor

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeList(t *testing.T) {
	assert.Equal(t, ",1,2,3", EncodeList([]int64{1, 2, 3}))
	assert.Equal(t, ",42", EncodeList([]int{42}))
	assert.Equal(t, ",a,b", EncodeList([]string{"a", "b"}))
	assert.Equal(t, "", EncodeList([]int64{}))
	assert.Equal(t, "", EncodeList[int64](nil))
}

func TestEncodeList_CommaCount(t *testing.T) {
	for n := 1; n <= 10; n++ {
		ids := make([]int64, n)
		for i := range ids {
			ids[i] = int64(i + 100)
		}
		got := EncodeList(ids)
		assert.NotEmpty(t, got)
		assert.True(t, strings.HasPrefix(got, ","))
		assert.Equal(t, n, strings.Count(got, ","))
	}
}

func TestEncodeList_NamedTypesUseCode(t *testing.T) {
	got := EncodeList([]Classification{ClassificationNational, ClassificationClub})
	assert.Equal(t, ",2,5", got)
}

func TestFormatBool(t *testing.T) {
	assert.Equal(t, "true", formatBool(true))
	assert.Equal(t, "false", formatBool(false))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, time.May, 4, 9, 30, 15, 0, time.UTC)
	assert.Equal(t, "2024-05-04", FormatDate(ts))
	assert.Equal(t, "2024-05-04 09:30:15", FormatTimestamp(ts))
}

func TestParams(t *testing.T) {
	q := newParams()
	q.setDefault("fromDate", "", DefaultFromDate)
	q.setDefault("toDate", "2024-12-31", DefaultToDate)
	q.setOptionalID("eventRaceId", 0)
	q.setOptionalInt("top", 0)
	q.setOptionalID("eventId", 7)
	setList(q, "eventIds", []int64{})
	setList(q, "personIds", []int64{5, 6})

	assert.Equal(t, DefaultFromDate, q.Get("fromDate"))
	assert.Equal(t, "2024-12-31", q.Get("toDate"))
	assert.False(t, q.Has("eventRaceId"))
	assert.False(t, q.Has("top"))
	assert.False(t, q.Has("eventIds"))
	assert.Equal(t, "7", q.Get("eventId"))
	assert.Equal(t, ",5,6", q.Get("personIds"))
}
