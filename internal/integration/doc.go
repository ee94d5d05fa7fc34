// Package integration exercises the catalog services against a real
// PostgreSQL database. Set LIBRARY_TEST_DATABASE_URL to a disposable
// database to run it; every test resets the schema with goose first.
package integration
