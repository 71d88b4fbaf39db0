package randomart

import (
	"github.com/signatory-io/randomart/logger"
)

// Renderer draws fingerprints using a fixed mode. It holds no mutable state
// and may be used concurrently.
type Renderer struct {
	Mode Mode
	Log  logger.Logger
}

func (r *Renderer) getLog() logger.Logger {
	if r.Log == nil {
		return logger.Discard
	}
	return r.Log
}

func (r *Renderer) Render(fingerprint []byte) (string, error) {
	return r.RenderTitled("", fingerprint)
}

// RenderTitled is like Render but puts the title into the top border
func (r *Renderer) RenderTitled(title string, fingerprint []byte) (string, error) {
	log := r.getLog()
	f, err := NewField(r.Mode)
	if err != nil {
		log.Error(err)
		return "", err
	}
	f.Walk(fingerprint)

	row, col := f.Position()
	log.WithFields(map[string]any{
		"fingerprint_len": len(fingerprint),
		"end_row":         row,
		"end_col":         col,
	}).Debug("fingerprint rendered")

	return f.Title(title), nil
}
