package sqlite

// Every collection is stored as JSON documents; position preserves insertion order across restarts.
const schema = `
BEGIN TRANSACTION;

CREATE TABLE
	IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		body TEXT NOT NULL
	);

CREATE TABLE
	IF NOT EXISTS statues (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		body TEXT NOT NULL
	);

CREATE TABLE
	IF NOT EXISTS annotations (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		body TEXT NOT NULL
	);

CREATE TABLE
	IF NOT EXISTS comments (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		body TEXT NOT NULL
	);

CREATE TABLE
	IF NOT EXISTS tours (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		body TEXT NOT NULL
	);

CREATE TABLE
	IF NOT EXISTS sponsors (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		body TEXT NOT NULL
	);

CREATE TABLE
	IF NOT EXISTS purchases (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		body TEXT NOT NULL
	);

COMMIT;
`

const (
	usersTable       = "users"
	statuesTable     = "statues"
	annotationsTable = "annotations"
	commentsTable    = "comments"
	toursTable       = "tours"
	sponsorsTable    = "sponsors"
	purchasesTable   = "purchases"
)
