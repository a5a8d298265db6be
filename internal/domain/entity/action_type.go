package entity

// VersionActionType records which engine operation produced a recipe version.
type VersionActionType string

const (
	ActionCreate  VersionActionType = "CREATE"
	ActionUpdate  VersionActionType = "UPDATE"
	ActionDelete  VersionActionType = "DELETE"
	ActionRefresh VersionActionType = "REFRESH"
	ActionRestore VersionActionType = "RESTORE"
)
