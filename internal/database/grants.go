package database

import (
	"fmt"

	"github.com/rickgao/orthocfg/internal/config"
)

// GrantStatements renders the recommended grants for the account that
// provisions per-run sandbox databases. dbPattern is the schema pattern the
// grants cover; empty means every sandbox under DefaultSandboxPrefix. The
// statements are returned as text for an operator to review and run against
// the server; the password is never interpolated.
func GrantStatements(settings config.ConnectionSettings, dbPattern string) []string {
	if dbPattern == "" {
		dbPattern = DefaultSandboxPrefix + `\_%`
	}
	account := fmt.Sprintf("'%s'@'%%'", settings.User)
	return []string{
		fmt.Sprintf("CREATE USER IF NOT EXISTS %s IDENTIFIED BY '<password>';", account),
		fmt.Sprintf("GRANT CREATE, DROP ON `%s`.* TO %s;", dbPattern, account),
		fmt.Sprintf("GRANT ALL PRIVILEGES ON `%s`.* TO %s;", dbPattern, account),
		"FLUSH PRIVILEGES;",
	}
}
