package resputil

type ErrorCode int

const (
	OK ErrorCode = 0

	// General
	InvalidRequest ErrorCode = 40001

	// Record does not resolve
	NotFound ErrorCode = 40401

	// Business-key collision (duplicate projectNo)
	Conflict ErrorCode = 40901

	// Storage/driver failure; detail is logged server-side, the client
	// gets a generic message
	StorageError ErrorCode = 50001

	// Indicates laziness of the developer
	// Frontend will directly print the message without any translation
	NotSpecified ErrorCode = 99999
)
