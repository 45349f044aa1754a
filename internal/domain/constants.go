package domain

const (
	RoleAdmin  = "ADMIN"
	RoleEditor = "EDITOR"
)

const (
	DonationCreated   = "CREATED"
	DonationCompleted = "COMPLETED"
	DonationFailed    = "FAILED"
)

const (
	VolunteerStatusNew       = "NEW"
	VolunteerStatusContacted = "CONTACTED"
)

// DonationCategories are the cause labels offered on the donation page.
// Free-text categories from the client are accepted as well; this list only
// drives display grouping.
var DonationCategories = []string{
	"Education",
	"Healthcare",
	"Nutrition",
	"Women Empowerment",
	"General Fund",
}
