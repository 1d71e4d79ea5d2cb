// database_utils should be the canonical place to put shared DB utils.
// It should not include:
// 1. Any util that doesn't manipulate DB
// 2. Any util that contains business logic
package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/openwhistle/tipline/model"
)

const (
	EnginePostgres = "postgres"
	EngineSqlite   = "sqlite"

	TestDBPrefix         = "testonlydb_"
	TestDBNameCharLength = 8
)

// GormTransaction is the callback function used during db.Transaction in Gorm.
type GormTransaction func(tx *gorm.DB) error

// GetDBConnection gets a connection to the database specified by env.
// DATABASE_ENGINE selects the engine: "sqlite" opens DATABASE_FILE,
// "postgres" (the default when unset) connects with the DB_* variables.
func GetDBConnection() (*gorm.DB, error) {
	engine := os.Getenv("DATABASE_ENGINE")
	if engine == "" {
		engine = EnginePostgres
	}
	switch engine {
	case EngineSqlite:
		return getSqliteDB(os.Getenv("DATABASE_FILE"))
	case EnginePostgres:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASS"), os.Getenv("DB_NAME"), os.Getenv("DB_PORT"))
		return getDB(dsn)
	default:
		return nil, fmt.Errorf("unknown DATABASE_ENGINE %q", engine)
	}
}

func getDB(connectionString string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

func getSqliteDB(file string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(file), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// DatabaseSetupAndMigration migrates all record kinds of the identity core.
func DatabaseSetupAndMigration(db *gorm.DB) {
	err := db.AutoMigrate(
		&model.Source{},
		&model.Submission{},
		&model.SourceStar{},
		&model.Journalist{},
	)
	if err != nil {
		panic("failed to migrate database")
	}
}

// CreateTempTestDB creates a throwaway sqlite database for one test case,
// migrated and ready, and tears it down with the test. Tests never need a
// running postgres server. Note that this function should only be called in
// a testing environment with test state manager testing.T.
func CreateTempTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	file := filepath.Join(t.TempDir(), TestDBPrefix+RandomAlphabetString(TestDBNameCharLength)+".db")
	db, err := getSqliteDB(file)
	if err != nil {
		log.Fatalln("fail to create temp DB: ", err)
	}
	DatabaseSetupAndMigration(db)
	t.Cleanup(func() {
		// Proactively clean up the DB connection instead of deferring to GC.
		// Otherwise we might exceed the max open file limit in test runs.
		conn, _ := db.DB()
		conn.Close()
	})
	return db
}
