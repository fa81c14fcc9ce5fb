package datetime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/extensioncollection/kit/pkg/datetime"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	ts := time.Date(2023, time.July, 11, 9, 5, 3, 0, time.UTC)
	assert.Equal(t, "2023-07-11 09:05:03", datetime.Format(ts))
	assert.Equal(t, "2023-07-11 09:05:03", datetime.Format(ts, ""))
	assert.Equal(t, "2023-07-11", datetime.Format(ts, time.DateOnly))
	assert.Equal(t, "2023.07.11", datetime.Format(ts, "2006.01.02"))
}

func TestToKST(t *testing.T) {
	t.Parallel()

	utc := time.Date(2023, time.July, 11, 20, 30, 0, 0, time.UTC)
	kst := datetime.ToKST(utc)

	assert.True(t, kst.Equal(utc), "conversion must keep the instant")
	assert.Equal(t, "KST", kst.Location().String())
	assert.Equal(t, 12, kst.Day())
	assert.Equal(t, 5, kst.Hour())
	assert.Equal(t, "2023-07-12 05:30:00", datetime.FormatKST(utc))

	name, offset := kst.Zone()
	assert.Equal(t, "KST", name)
	assert.Equal(t, 9*60*60, offset)
}

func TestGet(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, time.February, 29, 23, 59, 58, 0, time.UTC)
	assert.Equal(t, 2024, datetime.Get(ts, datetime.Year))
	assert.Equal(t, 2, datetime.Get(ts, datetime.Month))
	assert.Equal(t, 29, datetime.Get(ts, datetime.Day))
	assert.Equal(t, 23, datetime.Get(ts, datetime.Hour))
	assert.Equal(t, 59, datetime.Get(ts, datetime.Minute))
	assert.Equal(t, 58, datetime.Get(ts, datetime.Second))
	assert.Equal(t, 5, datetime.Get(ts, datetime.Weekday))
	assert.Equal(t, 1, datetime.Get(time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC), datetime.Weekday))
	assert.Equal(t, 7, datetime.Get(time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), datetime.Weekday))
	assert.Equal(t, 0, datetime.Get(ts, datetime.Component(0)))

	assert.Equal(t, map[datetime.Component]int{
		datetime.Year:  2024,
		datetime.Month: 2,
		datetime.Day:   29,
	}, datetime.Components(ts, datetime.Year, datetime.Month, datetime.Day))
	assert.Empty(t, datetime.Components(ts))
}

func TestBreakdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seconds int
		want    datetime.Span
	}{
		{0, datetime.Span{}},
		{59, datetime.Span{Total: 59, Seconds: 59}},
		{61, datetime.Span{Total: 61, Minutes: 1, Seconds: 1}},
		{3600, datetime.Span{Total: 3600, Hours: 1}},
		{3725, datetime.Span{Total: 3725, Hours: 1, Minutes: 2, Seconds: 5}},
		{86400, datetime.Span{Total: 86400, Days: 1, Hours: 24}},
		{90061, datetime.Span{Total: 90061, Days: 1, Hours: 25, Minutes: 1, Seconds: 1}},
	}

	for _, tt := range tests {
		got := datetime.Breakdown(tt.seconds)
		assert.Equal(t, tt.want, got, "seconds=%d", tt.seconds)
		assert.Equal(t, time.Duration(tt.seconds)*time.Second, got.Duration())
	}

	assert.Equal(t, 1, datetime.Breakdown(90061).HoursOfDay())
	assert.Equal(t, datetime.Breakdown(3725), datetime.BreakdownDuration(3725*time.Second+400*time.Millisecond))
}
