package store

import "errors"

// Sentinel errors returned by [Folder] implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrArtifactNotFound is returned when a named artifact does not exist
	// in the folder.
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrArtifactExists is returned by CreateFile when the artifact is
	// already present.
	ErrArtifactExists = errors.New("artifact already exists")

	// ErrInvalidArtifactName is returned when a name is empty, "." or "..",
	// or contains a path separator.
	ErrInvalidArtifactName = errors.New("invalid artifact name")

	// ErrFolderNotFound is returned when the folder path does not exist.
	ErrFolderNotFound = errors.New("folder not found")

	// ErrNotADirectory is returned when the folder path is not a directory.
	ErrNotADirectory = errors.New("folder path is not a directory")
)

// Errors returned by [FolderHandleRepository].
var (
	// ErrHandleNotFound is returned when no folder handle is stored under
	// the requested key.
	ErrHandleNotFound = errors.New("folder handle not found")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan folder handle row")
)
