package constants

const (
	ERROR_INPUT                = "Invalid input"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read validated input"

	NOT_FOUND_RECORDS = "Record not found"
	FILM_NOT_FOUND    = "Film not found"

	MISSING_LOGIN_INPUT    = "Email and password are required"
	INVALID_EMAIL          = "User with this email does not exist"
	INVALID_PASSWORD       = "Wrong password"
	INVALID_OLD_PASSWORD   = "Wrong current password"
	EMAIL_ALREADY_EXISTS   = "User with this email already exists"
	PASSWORDS_DO_NOT_MATCH = "Passwords do not match"
	PASSWORD_TOO_SHORT     = "Password must be at least 6 characters"
	CAN_NOT_HASH_PASSWORD  = "Cannot hash password"
	UNAUTHORIZED           = "Authentication required"

	INVALID_ACCESS_CODE = "Invalid access code"
	CREATE_FILM_FAILED  = "Failed to create film"
	INVALID_MEDIA_TYPE  = "Invalid media type"

	DATA_INPUT_IS_NOT_NUMBER = "Parameter must be a number"
)

// Minimum search query length below which search returns an empty result
// without touching the store.
const MIN_SEARCH_LENGTH = 3

const DEFAULT_PAGE_SIZE = 5

// Year bounds. The creation form rejects anything before 1895 while the
// read-side serializer accepts back to 1888 (first film ever recorded).
// Both bounds are enforced independently at their own layers.
const (
	MIN_FILM_YEAR_CREATE = 1895
	MIN_FILM_YEAR_READ   = 1888
)

const (
	MEDIA_TYPE_MOVIE  = "movie"
	MEDIA_TYPE_SERIES = "series"
)
