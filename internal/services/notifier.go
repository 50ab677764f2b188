package services

// DataUpdateListener is notified when task data changed outside the
// listener's own control, so a rendering collaborator can re-run
// Refresh on its list. Notifications are delivered synchronously on the
// calling flow of control.
type DataUpdateListener interface {
	DidUpdateData()
}
