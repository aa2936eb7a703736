package config

import "os"

type Journal struct {
	Filename   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

func (j Journal) Enabled() bool {
	return j.Filename != ""
}

// NewJournal reads the game journal settings. The journal is disabled when
// MINES_JOURNAL_FILE is not set.
func NewJournal() (*Journal, error) {
	j := &Journal{
		Filename:   os.Getenv("MINES_JOURNAL_FILE"),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}

	for key, dst := range map[string]*int{
		"MINES_JOURNAL_MAX_SIZE":    &j.MaxSize,
		"MINES_JOURNAL_MAX_BACKUPS": &j.MaxBackups,
		"MINES_JOURNAL_MAX_AGE":     &j.MaxAge,
	} {
		v, ok, err := lookupInt(key)
		if err != nil {
			return nil, err
		}
		if ok {
			*dst = v
		}
	}

	return j, nil
}
