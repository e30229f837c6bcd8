package utils

import (
	"errors"
	"testing"

	"github.com/MrSnakeDoc/folio/internal/logger"
)

type closer struct {
	err    error
	closed int
}

func (c *closer) Close() error {
	c.closed++
	return c.err
}

func TestCloseLogged(t *testing.T) {
	ok := &closer{}
	if err := CloseLogged(ok, "ok", logger.Nop()); err != nil || ok.closed != 1 {
		t.Errorf("CloseLogged() = %v, closed %d times", err, ok.closed)
	}

	boom := errors.New("boom")
	bad := &closer{err: boom}
	if err := CloseLogged(bad, "bad", logger.Nop()); !errors.Is(err, boom) {
		t.Errorf("CloseLogged() = %v, want %v", err, boom)
	}
}
