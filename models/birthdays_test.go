package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestBirthdaysOn(t *testing.T) {
	clients := []Client{
		{Name: "March 15", BirthDate: date(1990, time.March, 15)},
		{Name: "March 16", BirthDate: date(1990, time.March, 16)},
		{Name: "Also March 15, different year", BirthDate: date(1955, time.March, 15)},
		{Name: "No birth date"},
	}

	today := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
	matches := BirthdaysOn(today, clients)

	require.Len(t, matches, 2)
	require.Equal(t, "March 15", matches[0].Name)
	require.Equal(t, "Also March 15, different year", matches[1].Name)
}

func TestBirthdaysOn_NoMatches(t *testing.T) {
	clients := []Client{
		{Name: "December 31", BirthDate: date(2000, time.December, 31)},
	}

	today := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	require.Empty(t, BirthdaysOn(today, clients))
}

func TestBirthdaysOn_LeapDay(t *testing.T) {
	clients := []Client{
		{Name: "Leap baby", BirthDate: date(1996, time.February, 29)},
	}

	leapToday := time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC)
	require.Len(t, BirthdaysOn(leapToday, clients), 1)

	nonLeapToday := time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)
	require.Empty(t, BirthdaysOn(nonLeapToday, clients))
}
