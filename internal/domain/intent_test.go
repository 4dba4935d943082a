package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingIntentMetadataRoundTrip(t *testing.T) {
	intent := BookingIntent{
		CarID:       42,
		PickupDate:  time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC),
		DropoffDate: time.Date(2025, 4, 22, 0, 0, 0, 0, time.UTC),
		PickupTime:  "10:00",
		DropoffTime: "18:00",
		Location:    "Union Station",
		UserID:      "user-7",
	}

	res := ParseIntentMetadata(intent.Metadata())

	assert.True(t, res.Complete())
	assert.Equal(t, int64(42), res.Intent.CarID)
	assert.Equal(t, "user-7", res.Intent.UserID)
	assert.Equal(t, intent.PickupDate, res.Intent.PickupDate)
	assert.Equal(t, intent.DropoffDate, res.Intent.DropoffDate)
	assert.Equal(t, "10:00", res.Intent.PickupTime)
	assert.Equal(t, "Union Station", res.Intent.Location)
}

func TestParseIntentMetadata_EmptyMapDefaults(t *testing.T) {
	res := ParseIntentMetadata(map[string]string{})

	assert.False(t, res.Complete())
	assert.Equal(t, GuestUserID, res.Intent.UserID)
	assert.Equal(t, int64(0), res.Intent.CarID)
	assert.True(t, res.Intent.PickupDate.IsZero())
	assert.Contains(t, res.Missing, MetaCarID)
	assert.Contains(t, res.Missing, MetaLocation)
}

func TestParseIntentMetadata_MalformedFieldsDoNotFail(t *testing.T) {
	res := ParseIntentMetadata(map[string]string{
		MetaUserID:      "user-1",
		MetaCarID:       "not-a-number",
		MetaPickupDate:  "20-04-2025",
		MetaDropoffDate: "2025-04-22",
		MetaPickupTime:  "10:00",
		MetaDropoffTime: "18:00",
		MetaLocation:    "Square One Mall",
	})

	assert.False(t, res.Complete())
	assert.Equal(t, int64(0), res.Intent.CarID)
	assert.True(t, res.Intent.PickupDate.IsZero())
	assert.Equal(t, time.Date(2025, 4, 22, 0, 0, 0, 0, time.UTC), res.Intent.DropoffDate)
	assert.Contains(t, res.Missing, MetaCarID)
	assert.Contains(t, res.Missing, MetaPickupDate)
	assert.NotContains(t, res.Missing, MetaDropoffDate)
}

func TestValidPickupLocation(t *testing.T) {
	assert.True(t, ValidPickupLocation("Union Station"))
	assert.False(t, ValidPickupLocation("Moon Base"))
}
