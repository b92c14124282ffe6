package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"quill/app/config"
	"quill/app/repositories"
)

var osExit = os.Exit

// backupTime stamps backup file names.
var backupTime = time.Now

// HandleCommand handles database subcommands and returns an exit code.
func HandleCommand(cfg *config.Config, args []string) int {
	if len(args) < 1 {
		printDbHelp()
		osExit(1)
		return 1
	}

	cmd := args[0]
	switch cmd {
	case "clean":
		return clean(cfg)
	case "init":
		return initDb(cfg)
	case "backup":
		return backup(cfg)
	case "restore":
		if len(args) < 2 {
			fmt.Println("Error: backup file path required for restore")
			osExit(1)
			return 1
		}
		return restore(cfg, args[1])
	case "help":
		printDbHelp()
		return 0
	default:
		fmt.Printf("Unknown db command: %s\n\n", cmd)
		printDbHelp()
		osExit(1)
		return 1
	}
}

// printDbHelp prints help for database subcommands.
func printDbHelp() {
	helpText := `Usage: quill db <command>

Commands:
  init                            Initialize a new empty database
  clean                           Delete every record in the database
  backup                          Create a backup of the database
  restore <file>                  Restore database from backup
  help                            Display this help message
`
	fmt.Println(helpText)
}

// clean deletes every record, sequences included, keeping the database itself.
func clean(cfg *config.Config) int {
	if !exists(cfg.DataDir) {
		fmt.Println("Database is already clean (does not exist)")
		return 0
	}

	if !confirm("Are you sure you want to clean the database? This cannot be undone.") {
		fmt.Println("Operation cancelled")
		return 1
	}

	store, err := openStore(cfg.DataDir)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		return 1
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		fmt.Printf("Failed to clean database: %v\n", err)
		return 1
	}
	fmt.Println("Database cleaned successfully")
	return 0
}

// initDb initializes a new empty database.
func initDb(cfg *config.Config) int {
	if exists(cfg.DataDir) {
		fmt.Println("Database already exists. Use 'clean' first if you want to reinitialize.")
		return 1
	}

	store, err := openStore(cfg.DataDir)
	if err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		return 1
	}
	defer store.Close()

	fmt.Println("Database initialized successfully")
	return 0
}

// backup writes a full backup of the database into the backup directory.
func backup(cfg *config.Config) int {
	if !exists(cfg.DataDir) {
		fmt.Println("No database exists to backup")
		return 1
	}

	if err := os.MkdirAll(cfg.BackupDir, 0755); err != nil {
		fmt.Printf("Failed to create backup directory: %v\n", err)
		return 1
	}

	store, err := openStore(cfg.DataDir)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		return 1
	}
	defer store.Close()

	backupFile := filepath.Join(cfg.BackupDir, fmt.Sprintf("backup_%d.db", backupTime().UnixNano()))
	if err := writeBackup(store, backupFile); err != nil {
		os.Remove(backupFile)
		os.Remove(backupFile + checksumExt)
		fmt.Printf("Failed to backup database: %v\n", err)
		return 1
	}

	fmt.Printf("Database backed up successfully to %s\n", backupFile)
	return 0
}

// writeBackup writes the backup and its checksum sidecar. On error the
// caller removes whatever was written.
func writeBackup(store *repositories.Store, backupFile string) error {
	f, err := os.Create(backupFile)
	if err != nil {
		return fmt.Errorf("create backup file: %w", err)
	}

	sum := newChecksum()
	if _, err := store.Backup(io.MultiWriter(f, sum)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close backup file: %w", err)
	}
	if err := writeChecksum(backupFile, sum); err != nil {
		return fmt.Errorf("write backup checksum: %w", err)
	}
	return nil
}

// restore replaces the database with the contents of a backup file. The
// backup is loaded into a staging directory first, so the existing database
// is only replaced once the load has succeeded.
func restore(cfg *config.Config, backupFile string) int {
	fi, err := os.Stat(backupFile)
	if err != nil {
		fmt.Printf("Backup file does not exist: %s\n", backupFile)
		return 1
	}
	if fi.Size() == 0 {
		fmt.Printf("Backup file is empty: %s\n", backupFile)
		return 1
	}
	if err := verifyChecksum(backupFile); err != nil {
		fmt.Printf("Backup file is corrupt: %v\n", err)
		return 1
	}

	if exists(cfg.DataDir) && !confirm("Existing database found. Do you want to replace it?") {
		fmt.Println("Operation cancelled")
		return 1
	}

	staged, err := stageRestore(cfg.DataDir, backupFile)
	if err != nil {
		fmt.Printf("Failed to restore database: %v\n", err)
		return 1
	}
	if err := replaceDir(staged, cfg.DataDir); err != nil {
		os.RemoveAll(staged)
		fmt.Printf("Failed to replace database: %v\n", err)
		return 1
	}

	fmt.Println("Database restored successfully")
	return 0
}

// stageRestore loads backupFile into a fresh directory next to dataDir and
// returns its path.
func stageRestore(dataDir, backupFile string) (string, error) {
	parent := filepath.Dir(dataDir)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return "", err
	}
	staged, err := os.MkdirTemp(parent, filepath.Base(dataDir)+".restore-")
	if err != nil {
		return "", err
	}
	if err := loadBackup(staged, backupFile); err != nil {
		os.RemoveAll(staged)
		return "", err
	}
	return staged, nil
}

func loadBackup(dir, backupFile string) error {
	f, err := os.Open(backupFile)
	if err != nil {
		return err
	}
	defer f.Close()

	store, err := openStore(dir)
	if err != nil {
		return err
	}
	if err := store.Restore(f); err != nil {
		store.Close()
		return err
	}
	return store.Close()
}

// replaceDir moves staged to dataDir. An existing dataDir is set aside
// first and put back if the move fails.
func replaceDir(staged, dataDir string) error {
	var old string
	if exists(dataDir) {
		old = staged + ".old"
		if err := os.Rename(dataDir, old); err != nil {
			return err
		}
	}
	if err := os.Rename(staged, dataDir); err != nil {
		if old != "" {
			os.Rename(old, dataDir)
		}
		return err
	}
	if old != "" {
		return os.RemoveAll(old)
	}
	return nil
}
