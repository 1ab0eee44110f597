// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// Paths holds all application path configurations.
type Paths struct {
	configDir       string
	configFileName  string
	summaryFileName string
	dbFileName      string
	statusFileName  string
	logFileName     string

	// Computed absolute paths
	dataDir         string
	configFilePath  string
	summaryFilePath string
	dbFilePath      string
	statusFilePath  string
	logFilePath     string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = &Paths{
			configDir:       "sith",
			configFileName:  "config.json",
			summaryFileName: "summary.json",
			dbFileName:      "sith.db",
			statusFileName:  "status.json",
			logFileName:     "sith.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().configDir
}

// DataDir is the directory holding the summary, status file and logs.
func DataDir() string {
	return Must().dataDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func SummaryFilePath() string {
	return Must().summaryFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func StatusFilePath() string {
	return Must().statusFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

// LegacySummaryPaths lists summary files written by earlier releases, most
// recent layout first.
func LegacySummaryPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	return []string{
		filepath.Join(home, ".sith", "summary.json"),
		filepath.Join(home, ".khanh_clock_summary.json"),
	}
}

// LegacyConfigPath is the config location used before the XDG layout.
func LegacyConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".sith", "config.json")
}

func (p *Paths) applyEnvironmentOverrides() {
	sithEnv := strings.TrimSpace(os.Getenv("SITH_ENV"))
	if sithEnv != "" {
		p.configFileName = fmt.Sprintf("config_%s.json", sithEnv)
		p.summaryFileName = fmt.Sprintf("summary_%s.json", sithEnv)
		p.dbFileName = fmt.Sprintf("sith_%s.db", sithEnv)
		p.statusFileName = fmt.Sprintf("status_%s.json", sithEnv)
		p.logFileName = fmt.Sprintf("sith_%s.log", sithEnv)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return err
	}

	p.dataDir = dataDir

	p.summaryFilePath = filepath.Join(dataDir, p.summaryFileName)

	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)

	p.statusFilePath = filepath.Join(dataDir, p.statusFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}
