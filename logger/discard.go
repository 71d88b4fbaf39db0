package logger

type discard struct{}

// Discard drops every message
var Discard Logger = discard{}

func (discard) With(string, any) Logger          { return discard{} }
func (discard) WithFields(map[string]any) Logger { return discard{} }
func (discard) Logf(Level, string, ...any)       {}
func (discard) Log(Level, ...any)                {}
func (discard) Errorf(string, ...any)            {}
func (discard) Error(...any)                     {}
func (discard) Warnf(string, ...any)             {}
func (discard) Warn(...any)                      {}
func (discard) Infof(string, ...any)             {}
func (discard) Info(...any)                      {}
func (discard) Debugf(string, ...any)            {}
func (discard) Debug(...any)                     {}
func (discard) Tracef(string, ...any)            {}
func (discard) Trace(...any)                     {}
