package utils

import (
	"io"

	"github.com/MrSnakeDoc/folio/internal/logger"
)

// CloseLogged closes c and reports the outcome under name.
// Use on shutdown paths where a failed close is worth knowing about.
func CloseLogged(c io.Closer, name string, log logger.Logger) error {
	if err := c.Close(); err != nil {
		log.Warn("failed to close",
			logger.String("resource", name),
			logger.Error(err))
		return err
	}
	log.Debug("closed cleanly", logger.String("resource", name))
	return nil
}
