package financeiro

import "github.com/jhoicas/Financeiro-api/pkg/logger"

// Notifier avisos al usuario (éxito, información, error).
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Error(msg string)
}

// LogNotifier escribe los avisos en el logger de la aplicación.
type LogNotifier struct {
	log *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	if log == nil {
		log = logger.Nop()
	}
	return &LogNotifier{log: log.Component("SCREEN")}
}

func (n *LogNotifier) Success(msg string) { n.log.Info().Str("kind", "success").Msg(msg) }
func (n *LogNotifier) Info(msg string)    { n.log.Info().Str("kind", "info").Msg(msg) }
func (n *LogNotifier) Error(msg string)   { n.log.Error().Str("kind", "error").Msg(msg) }
