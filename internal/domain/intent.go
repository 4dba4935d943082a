package domain

import (
	"strconv"
	"time"
)

const DateLayout = "2006-01-02"

// Metadata keys attached to the provider checkout session. The session
// metadata is a flat string map, so every intent field is serialized to a
// string and parsed back on the webhook side.
const (
	MetaUserID      = "userId"
	MetaCarID       = "carId"
	MetaPickupDate  = "pickupDate"
	MetaDropoffDate = "dropoffDate"
	MetaPickupTime  = "pickupTime"
	MetaDropoffTime = "dropoffTime"
	MetaLocation    = "location"
)

// BookingIntent is the set of booking facts captured at checkout time and
// carried through the payment session as metadata. The amount is fixed when
// the session is created and is never recomputed from car pricing later.
type BookingIntent struct {
	CarID       int64
	PickupDate  time.Time
	DropoffDate time.Time
	PickupTime  string
	DropoffTime string
	Location    string
	UserID      string
	AmountCents int64
	Currency    string
}

// Metadata serializes the intent to the flat string map the provider
// accepts. Amount and currency ride on the session itself, not here.
func (i BookingIntent) Metadata() map[string]string {
	return map[string]string{
		MetaUserID:      i.UserID,
		MetaCarID:       strconv.FormatInt(i.CarID, 10),
		MetaPickupDate:  i.PickupDate.Format(DateLayout),
		MetaDropoffDate: i.DropoffDate.Format(DateLayout),
		MetaPickupTime:  i.PickupTime,
		MetaDropoffTime: i.DropoffTime,
		MetaLocation:    i.Location,
	}
}

// IntentParseResult is the outcome of parsing session metadata back into an
// intent. Missing lists the fields that were absent or unparsable and got a
// default instead; the parse itself never fails, because the provider would
// retry the whole webhook indefinitely over one malformed field.
type IntentParseResult struct {
	Intent  BookingIntent
	Missing []string
}

func (r IntentParseResult) Complete() bool {
	return len(r.Missing) == 0
}

// ParseIntentMetadata reads the intent fields back out of provider session
// metadata. Identifiers fall back to explicit markers (GuestUserID, car id
// 0); other fields fall back to zero values.
func ParseIntentMetadata(md map[string]string) IntentParseResult {
	res := IntentParseResult{}

	res.Intent.UserID = md[MetaUserID]
	if res.Intent.UserID == "" {
		res.Intent.UserID = GuestUserID
		res.Missing = append(res.Missing, MetaUserID)
	}

	if id, err := strconv.ParseInt(md[MetaCarID], 10, 64); err == nil && id > 0 {
		res.Intent.CarID = id
	} else {
		res.Missing = append(res.Missing, MetaCarID)
	}

	if d, err := time.Parse(DateLayout, md[MetaPickupDate]); err == nil {
		res.Intent.PickupDate = d
	} else {
		res.Missing = append(res.Missing, MetaPickupDate)
	}

	if d, err := time.Parse(DateLayout, md[MetaDropoffDate]); err == nil {
		res.Intent.DropoffDate = d
	} else {
		res.Missing = append(res.Missing, MetaDropoffDate)
	}

	res.Intent.PickupTime = md[MetaPickupTime]
	if res.Intent.PickupTime == "" {
		res.Missing = append(res.Missing, MetaPickupTime)
	}

	res.Intent.DropoffTime = md[MetaDropoffTime]
	if res.Intent.DropoffTime == "" {
		res.Missing = append(res.Missing, MetaDropoffTime)
	}

	res.Intent.Location = md[MetaLocation]
	if res.Intent.Location == "" {
		res.Missing = append(res.Missing, MetaLocation)
	}

	return res
}
