package graphic

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// normalizeTerminal works around TERMINFO settings termbox cannot handle.
// Some combinations of TERMINFO with a tmux TERM make termbox fail to init.
//
// Returns a function that restores the original environment.
func normalizeTerminal() (func(), error) {
	prevTERMINFO, hadTERMINFO := os.LookupEnv("TERMINFO")

	if !hadTERMINFO || !strings.HasPrefix(os.Getenv("TERM"), "tmux") {
		return func() {}, nil
	}

	if err := os.Unsetenv("TERMINFO"); err != nil {
		return nil, errors.Wrap(err, "failed to unset TERMINFO")
	}

	restore := func() {
		os.Setenv("TERMINFO", prevTERMINFO)
	}

	return restore, nil
}
