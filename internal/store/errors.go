package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrItemNotSaved is returned when an upsert completes without error but
	// affects no rows.
	ErrItemNotSaved = errors.New("item was not saved")

	// ErrDeviceNotFound is returned when a device state lookup or update
	// targets a device that was never registered or was unregistered.
	ErrDeviceNotFound = errors.New("device was not found")

	// ErrUnknownItemType is returned when an item type has no table binding.
	ErrUnknownItemType = errors.New("no storage for item type")

	// ErrCorruptDeviceState is returned when persisted queue contents cannot
	// be decoded.
	ErrCorruptDeviceState = errors.New("corrupt device state")

	// ErrUnknownDevicesBackend is returned by [NewStorages] for a device
	// backend it cannot open.
	ErrUnknownDevicesBackend = errors.New("unsupported devices backend")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared (e.g. syntax error or connection issue).
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing a prepared DML
	// statement (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

// Filesystem errors of the device state backend.
var (
	ErrReadingDeviceFile = errors.New("failed to read device state file")
	ErrWritingDeviceFile = errors.New("failed to write device state file")
	ErrLockingDevice     = errors.New("failed to lock device state")
)
