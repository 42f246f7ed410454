// Package database turns loaded connection settings into the strings the
// provisioning tooling hands to operators and drivers:
//   - DSN: go-sql-driver/mysql connection strings
//   - SandboxName: unique per-run database names
//   - GrantStatements: recommended granter-account SQL, rendered as text
//
// Nothing in this package opens a connection or executes SQL.
package database
