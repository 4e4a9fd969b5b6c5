package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// SelectionMode represents how countries are admitted into a run.
	SelectionMode string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
	SVGOut     OutputMode = "svg"
)

// All selection modes supported.
const (
	ThresholdSelection SelectionMode = "threshold"
	ListSelection      SelectionMode = "list"
	NoSelection        SelectionMode = "none" // default
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default
)

// Defaults shared by the CLI, the MCP server and the renderers.
const (
	DefaultSmoothingWindow = 5
	DefaultSmoothingDegree = 2
	DefaultVisibility      = 5 // points at or below this count are not drawn on a log axis
	DefaultAPIURL          = "https://api.covid19api.com"
	SentinelPrefix         = "-" // summary identifiers starting with this are invalid
	DateLabelFormat        = "02/01/2006"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
	SVGOut:     {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
