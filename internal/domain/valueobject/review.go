package valueobject

import (
	"fmt"
	"strconv"
	"strings"
)

// ReviewType - направление отзыва.
type ReviewType string

const (
	ReviewTypeHostToGuest ReviewType = "host-to-guest"
	ReviewTypeGuestToHost ReviewType = "guest-to-host"
)

func (t ReviewType) IsValid() bool {
	switch t {
	case ReviewTypeHostToGuest, ReviewTypeGuestToHost:
		return true
	}
	return false
}

// ReviewStatus управляет видимостью отзыва на публичном сайте.
type ReviewStatus string

const (
	ReviewStatusPublished ReviewStatus = "published"
	ReviewStatusAwaiting  ReviewStatus = "awaiting"
)

func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusPublished, ReviewStatusAwaiting:
		return true
	}
	return false
}

func (s ReviewStatus) IsPublic() bool {
	return s == ReviewStatusPublished
}

// Channel - код канала бронирования у вендора.
// Неизвестные коды сохраняются как есть, но IsKnown для них false.
type Channel int

const (
	ChannelUnknown         Channel = 0
	ChannelDirect          Channel = 2000
	ChannelHomeaway        Channel = 2002
	ChannelBookingcom      Channel = 2005
	ChannelExpedia         Channel = 2007
	ChannelHomeawayical    Channel = 2009
	ChannelVrboical        Channel = 2010
	ChannelBookingengine   Channel = 2013
	ChannelCustomIcal      Channel = 2015
	ChannelTripadvisorical Channel = 2016
	ChannelWordpress       Channel = 2017
	ChannelAirbnbOfficial  Channel = 2018
	ChannelMarriott        Channel = 2019
	ChannelPartner         Channel = 2020
	ChannelGds             Channel = 2021
	ChannelGoogle          Channel = 2022
)

var channelNames = map[Channel]string{
	ChannelDirect:          "direct",
	ChannelHomeaway:        "homeaway",
	ChannelBookingcom:      "bookingcom",
	ChannelExpedia:         "expedia",
	ChannelHomeawayical:    "homeawayical",
	ChannelVrboical:        "vrboical",
	ChannelBookingengine:   "bookingengine",
	ChannelCustomIcal:      "customical",
	ChannelTripadvisorical: "tripadvisorical",
	ChannelWordpress:       "wordpress",
	ChannelAirbnbOfficial:  "airbnbofficial",
	ChannelMarriott:        "marriott",
	ChannelPartner:         "partner",
	ChannelGds:             "gds",
	ChannelGoogle:          "google",
}

func (c Channel) IsKnown() bool {
	_, ok := channelNames[c]
	return ok
}

func (c Channel) String() string {
	if name, ok := channelNames[c]; ok {
		return name
	}
	return "unknown(" + strconv.Itoa(int(c)) + ")"
}

// UnmarshalJSON принимает код и числом, и строкой: вендор бывает непоследователен.
func (c *Channel) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*c = ChannelUnknown
		return nil
	}
	code, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("channel: некорректный код %q", raw)
	}
	*c = Channel(code)
	return nil
}

// Category - категория оценки внутри отзыва.
type Category string

const (
	CategoryCleanliness       Category = "cleanliness"
	CategoryCommunication     Category = "communication"
	CategoryRespectHouseRules Category = "respect_house_rules"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryCleanliness, CategoryCommunication, CategoryRespectHouseRules:
		return true
	}
	return false
}

// SortBy - ключ сортировки отзывов.
type SortBy string

const (
	SortBySubmittedAt SortBy = "submittedAt"
	SortByRating      SortBy = "Rating"
)

// ParseSortBy принимает значения без учёта регистра.
func ParseSortBy(raw string) (SortBy, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "submittedat":
		return SortBySubmittedAt, true
	case "rating":
		return SortByRating, true
	}
	return "", false
}

// SortOrder - направление сортировки.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

func ParseSortOrder(raw string) (SortOrder, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "asc":
		return SortOrderAsc, true
	case "desc":
		return SortOrderDesc, true
	}
	return "", false
}
