package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"src.repoman.dev/pkg/cli/histutil"
	"src.repoman.dev/pkg/edit"
	"src.repoman.dev/pkg/fsutil"
	"src.repoman.dev/pkg/prog"
	"src.repoman.dev/pkg/store"
)

// InteractConfig keeps configuration for the interactive mode.
type InteractConfig struct {
	*prog.Config
	Handler Handler
}

// Interact runs an interactive session until end of input, Ctrl-C, Ctrl-D or
// one of the commands exit and quit. History is loaded at the start and saved
// at the end; failing to do either is reported but doesn't stop the session.
// If loading fails, the session keeps its history in memory only.
func Interact(fds [3]*os.File, cfg *InteractConfig) {
	hist := histutil.New()
	hist.SetRestoreDraft(cfg.History.RestoreDraft)

	st, closeStore, err := openHistoryStore(cfg.Config)
	if err != nil {
		fmt.Fprintln(fds[2], "Warning: can't open history:", err)
		fmt.Fprintln(fds[2], "History will not be saved.")
	} else {
		defer closeStore()
		err := hist.Load(st, cfg.History.MaxEntries)
		if errors.Is(err, fs.ErrNotExist) {
			logger.Println("no history yet")
		} else if err != nil {
			// Saving would overwrite the history that failed to load.
			fmt.Fprintln(fds[2], "Warning: can't load history:", err)
			fmt.Fprintln(fds[2], "History will not be saved.")
			st = nil
		}
		if a, ok := st.(histutil.Appender); ok {
			hist.SetAppender(a)
		}
	}

	reposDir, err := ReposDir(cfg.Config)
	if err != nil {
		logger.Println("can't locate repos dir:", err)
	}
	ed := edit.NewEditor(fds[0], fds[1], hist, NewCompleter(Commands, reposDir))

	for {
		line, ok := ed.ReadLine(cfg.Prompt)
		if !ok {
			break
		}
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		if words[0] == "exit" || words[0] == "quit" {
			break
		}
		cfg.Handler(fds, hist, words)
	}

	if st != nil {
		if err := hist.Save(st, cfg.History.MaxEntries); err != nil {
			fmt.Fprintln(fds[2], "Warning: can't save history:", err)
		}
	}
}

// openHistoryStore opens the database when one is configured, and the
// history file otherwise.
func openHistoryStore(cfg *prog.Config) (histutil.Store, func(), error) {
	if cfg.History.DB != "" {
		db, err := store.NewStore(cfg.History.DB)
		if err != nil {
			return nil, nil, err
		}
		logger.Println("history in database", cfg.History.DB)
		return db, func() {
			if err := db.Close(); err != nil {
				logger.Println("close database:", err)
			}
		}, nil
	}
	path, err := HistoryPath(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Println("history in", fsutil.TildeAbbr(path))
	return histutil.FileStore(path), func() {}, nil
}
