package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/openwhistle/tipline/model"
	"github.com/openwhistle/tipline/store"
	"github.com/openwhistle/tipline/utils"
	"github.com/openwhistle/tipline/utils/dotenv"
	. "github.com/openwhistle/tipline/utils/log"
	"golang.org/x/term"
	"gorm.io/gorm"
)

const (
	actionInitDB           = "init-db"
	actionAddJournalist    = "add-journalist"
	actionDeleteJournalist = "delete-journalist"
)

var (
	action   = flag.String("action", "", "'init-db', 'add-journalist' or 'delete-journalist'")
	username = flag.String("username", "", "journalist username for add/delete")
	isAdmin  = flag.Bool("admin", false, "grant the new journalist admin access")
)

var validActions = []string{actionInitDB, actionAddJournalist, actionDeleteJournalist}

func init() {
	Log.Info("manage tool initialized")
}

func main() {
	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}
	flag.Parse()

	if !utils.ContainsString(validActions, *action) {
		fmt.Fprintf(os.Stderr, "unknown action %q, want one of %s\n", *action, strings.Join(validActions, ", "))
		os.Exit(2)
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		Log.Fatal("cannot connect to database: ", err)
	}

	switch *action {
	case actionInitDB:
		utils.DatabaseSetupAndMigration(db)
		Log.Info("database migrated")
	case actionAddJournalist:
		addJournalist(db, *username, *isAdmin)
	case actionDeleteJournalist:
		deleteJournalist(db, *username)
	}
}

// readPassword prompts for the new account's password on stdin without
// echoing it back. The plaintext goes straight into NewJournalist and is not
// kept around.
func readPassword() string {
	fmt.Fprint(os.Stderr, "password: ")
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			Log.Fatal("cannot read password: ", err)
		}
		return strings.TrimSpace(string(raw))
	}
	// stdin is piped, as in scripted provisioning; read one line.
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		Log.Fatal("no password supplied")
	}
	return strings.TrimSpace(scanner.Text())
}

func addJournalist(db *gorm.DB, username string, isAdmin bool) {
	if username == "" {
		Log.Fatal("add-journalist requires -username")
	}
	journalist, err := model.NewJournalist(username, readPassword(), isAdmin)
	if err != nil {
		Log.Fatal("cannot provision journalist: ", err)
	}
	// The unique index on username makes a duplicate fail here instead of
	// overwriting the existing account.
	if err := store.NewSession(db).Create(journalist); err != nil {
		Log.Fatal("cannot create journalist ", username, ": ", err)
	}
	Log.Info("journalist ", username, " created")
}

func deleteJournalist(db *gorm.DB, username string) {
	if username == "" {
		Log.Fatal("delete-journalist requires -username")
	}
	sess := store.NewSession(db)
	var journalist model.Journalist
	if err := sess.ExactlyOne(&journalist, "username = ?", username); err != nil {
		if store.IsNotFound(err) {
			Log.Fatal("no journalist named ", username)
		}
		Log.Fatal("cannot look up journalist ", username, ": ", err)
	}
	if err := sess.DB().Delete(&journalist).Error; err != nil {
		Log.Fatal("cannot delete journalist ", username, ": ", err)
	}
	Log.Info("journalist ", username, " deleted")
}
