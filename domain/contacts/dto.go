package contacts

// SyncContactRequest is the payload the profile service posts whenever a
// participant's primary email changes.
type SyncContactRequest struct {
	ID           int    `json:"id" binding:"required,gt=0"`
	PrimaryEmail string `json:"primary_email" binding:"required,email,max=255"`
}
