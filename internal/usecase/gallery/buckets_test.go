package gallery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateBucket(t *testing.T) {
	// Friday
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want string
		rule bucketRule
	}{
		{
			name: "same day",
			date: time.Date(2024, time.March, 15, 8, 30, 0, 0, time.UTC),
			want: "Today",
			rule: bucketToday,
		},
		{
			name: "previous day",
			date: time.Date(2024, time.March, 14, 23, 59, 0, 0, time.UTC),
			want: "Yesterday",
			rule: bucketYesterday,
		},
		{
			name: "same week names the weekday",
			date: time.Date(2024, time.March, 12, 10, 0, 0, 0, time.UTC),
			want: "Tuesday",
			rule: bucketWeekday,
		},
		{
			name: "sunday starts the week",
			date: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			want: "Sunday",
			rule: bucketWeekday,
		},
		{
			name: "saturday before belongs to the previous week",
			date: time.Date(2024, time.March, 9, 23, 0, 0, 0, time.UTC),
			want: "March 9",
			rule: bucketMonthDay,
		},
		{
			name: "same year drops the year",
			date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: "January 1",
			rule: bucketMonthDay,
		},
		{
			name: "other year keeps the year",
			date: time.Date(2023, time.March, 10, 12, 0, 0, 0, time.UTC),
			want: "March 10, 2023",
			rule: bucketFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rule := dateBucket(tt.date, now)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rule, rule)
		})
	}
}

func TestDateBucketConvertsToViewerLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	now := time.Date(2024, time.March, 15, 7, 0, 0, 0, loc)

	// 22:00 UTC on the 14th is already the 15th at UTC+10.
	got, rule := dateBucket(time.Date(2024, time.March, 14, 22, 0, 0, 0, time.UTC), now)

	assert.Equal(t, "Today", got)
	assert.Equal(t, bucketToday, rule)
}

func TestSameWeekBounds(t *testing.T) {
	// Friday; week runs Sunday March 10 through Saturday March 16
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, sameWeek(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), now))
	assert.True(t, sameWeek(time.Date(2024, time.March, 16, 23, 59, 59, 0, time.UTC), now))
	assert.False(t, sameWeek(time.Date(2024, time.March, 9, 23, 59, 59, 0, time.UTC), now))
	assert.False(t, sameWeek(time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC), now))
}
