// Package obs contains observability utilities such as logging.
package obs

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// InitLogger configures the standard logrus logger.
func InitLogger(out io.Writer, level, format string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	switch strings.ToLower(format) {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("invalid log format %q", format)
	}

	log.SetOutput(out)
	log.SetLevel(lvl)
	return nil
}
