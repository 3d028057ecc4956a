// Package domain defines the entities persisted in MongoDB. IDs are UUIDs
// assigned at creation and never change; CreatedAt is set once and
// UpdatedAt refreshed on every mutation.
package domain

import "time"

// GalleryType decides which object-store prefix a gallery image lives under.
type GalleryType string

const (
	GalleryTypeMenu     GalleryType = "MENU"
	GalleryTypeServices GalleryType = "SERVICES"
	GalleryTypeTeam     GalleryType = "TEAM"
	GalleryTypeReviews  GalleryType = "REVIEWS"
	GalleryTypeGallery  GalleryType = "GALLERY"
)

var galleryTypes = []GalleryType{
	GalleryTypeMenu, GalleryTypeServices, GalleryTypeTeam,
	GalleryTypeReviews, GalleryTypeGallery,
}

func (t GalleryType) Valid() bool {
	for _, v := range galleryTypes {
		if t == v {
			return true
		}
	}
	return false
}

// EventType classifies quotes and reviews by occasion.
type EventType string

const (
	EventTypeWedding      EventType = "WEDDING"
	EventTypeBirthday     EventType = "BIRTHDAY"
	EventTypeCorporate    EventType = "CORPORATE"
	EventTypeAnniversary  EventType = "ANNIVERSARY"
	EventTypeHousewarming EventType = "HOUSEWARMING"
	EventTypeOther        EventType = "OTHER"
)

// TopPick is one aspect of the service a reviewer singles out.
type TopPick string

const (
	TopPickFood         TopPick = "FOOD"
	TopPickService      TopPick = "SERVICE"
	TopPickPresentation TopPick = "PRESENTATION"
	TopPickAmbience     TopPick = "AMBIENCE"
	TopPickValue        TopPick = "VALUE"
)

// Menu is a catering package. ImageID references an asset uploaded
// elsewhere; it is unique across the collection but not lifecycle-managed
// by this resource.
type Menu struct {
	ID          string    `bson:"_id" json:"id"`
	ImageID     string    `bson:"imageId" json:"imageId"`
	Name        string    `bson:"name" json:"name"`
	Price       float64   `bson:"price" json:"price"`
	Description string    `bson:"description" json:"description"`
	Items       []string  `bson:"items" json:"items"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Gallery owns its asset: ImageID is the object-store key itself, created
// with the record and destroyed with it.
type Gallery struct {
	ID          string      `bson:"_id" json:"id"`
	ImageID     string      `bson:"imageId" json:"imageId"`
	Type        GalleryType `bson:"type" json:"type"`
	Name        string      `bson:"name" json:"name"`
	Description string      `bson:"description" json:"description"`
	CreatedAt   time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// Quote is a customer request for an event estimate.
type Quote struct {
	ID                string    `bson:"_id" json:"id"`
	FullName          string    `bson:"fullName" json:"fullName"`
	PhoneNumber       string    `bson:"phoneNumber" json:"phoneNumber"`
	Email             string    `bson:"email" json:"email"`
	EventDate         time.Time `bson:"eventDate" json:"eventDate"`
	EventType         EventType `bson:"eventType" json:"eventType"`
	ExpectedGuests    int       `bson:"expectedGuests" json:"expectedGuests"`
	AdditionalDetails string    `bson:"additionalDetails,omitempty" json:"additionalDetails,omitempty"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Review is customer feedback on a past event. ImageID is a reference,
// like Menu's.
type Review struct {
	ID          string    `bson:"_id" json:"id"`
	ImageID     string    `bson:"imageId" json:"imageId"`
	Timeline    string    `bson:"timeline" json:"timeline"`
	GuestsCount int       `bson:"guestsCount" json:"guestsCount"`
	Stars       int       `bson:"stars" json:"stars"`
	Comments    string    `bson:"comments" json:"comments"`
	TopPicks    []TopPick `bson:"topPicks" json:"topPicks"`
	EventType   EventType `bson:"type" json:"eventType"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
